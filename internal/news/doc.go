// Package news provides a credential-free headline scraper. It queries a
// public news search page, extracts headline links with goquery, and can
// persist the collected rows as CSV for later analysis.
package news
