// Package agent provides the default data collection agent: a thin HTTP
// client for daily market candles plus a rough sentiment heuristic over daily
// returns. It deliberately avoids retries, caching, and rate limiting; the
// orchestration layer treats it as a replaceable collaborator.
package agent
