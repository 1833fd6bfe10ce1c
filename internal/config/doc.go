// Package config resolves named settings from the process environment with
// typed defaults. Accessors are grouped by domain (financial APIs, social
// APIs, AI/ML, datastores, application, notification, security, proxy) and
// every accessor carries a hardcoded default: a missing environment entry
// never fails, it falls back.
//
// Typed parsing is deliberately fail-soft: an unparseable boolean or integer
// silently resolves to the supplied default. Operationally a bad value should
// degrade the feature, not crash the process.
//
// The environment is re-read on every call; there is no caching layer.
package config
