package config

// Domain-grouped accessors. Each is a pure lookup with a fixed default; none
// validates value shape (a malformed URL is passed through untouched).

// Financial data API keys.

// FinnhubAPIKey returns the Finnhub API key, empty when unset.
func (c *Config) FinnhubAPIKey() string { return c.Get(EnvFinnhubAPIKey, "") }

// OpenBBToken returns the OpenBB platform token, empty when unset.
func (c *Config) OpenBBToken() string { return c.Get(EnvOpenBBToken, "") }

// SECAPIKey returns the SEC API key, empty when unset.
func (c *Config) SECAPIKey() string { return c.Get(EnvSECAPIKey, "") }

// FMPAPIKey returns the Financial Modeling Prep API key, empty when unset.
func (c *Config) FMPAPIKey() string { return c.Get(EnvFMPAPIKey, "") }

// Social media API keys.

// RedditClientID returns the Reddit client ID, empty when unset.
func (c *Config) RedditClientID() string { return c.Get(EnvRedditClientID, "") }

// RedditClientSecret returns the Reddit client secret, empty when unset.
func (c *Config) RedditClientSecret() string { return c.Get(EnvRedditClientSecret, "") }

// RedditUserAgent returns the Reddit user agent string.
func (c *Config) RedditUserAgent() string { return c.Get(EnvRedditUserAgent, DefaultRedditUserAgent) }

// TwitterBearerToken returns the Twitter bearer token, empty when unset.
func (c *Config) TwitterBearerToken() string { return c.Get(EnvTwitterBearerToken, "") }

// AI/ML API keys.

// OpenAIAPIKey returns the OpenAI API key, empty when unset.
func (c *Config) OpenAIAPIKey() string { return c.Get(EnvOpenAIAPIKey, "") }

// LangSmithAPIKey returns the LangSmith API key, empty when unset.
func (c *Config) LangSmithAPIKey() string { return c.Get(EnvLangSmithAPIKey, "") }

// HuggingFaceAPIKey returns the Hugging Face API key, empty when unset.
func (c *Config) HuggingFaceAPIKey() string { return c.Get(EnvHuggingFaceAPIKey, "") }

// Datastore settings.

// DatabaseURL returns the relational database URL, empty when unset.
func (c *Config) DatabaseURL() string { return c.Get(EnvDatabaseURL, "") }

// MongoDBURI returns the MongoDB URI, empty when unset.
func (c *Config) MongoDBURI() string { return c.Get(EnvMongoDBURI, "") }

// QdrantURL returns the Qdrant cluster URL, empty when unset.
func (c *Config) QdrantURL() string { return c.Get(EnvQdrantURL, "") }

// QdrantClusterKey returns the Qdrant cluster key, empty when unset.
func (c *Config) QdrantClusterKey() string { return c.Get(EnvQdrantClusterKey, "") }

// Application settings.

// Environment returns the deployment environment name.
func (c *Config) Environment() string { return c.Get(EnvEnvironment, DefaultEnvironment) }

// Debug reports whether debug mode is enabled.
func (c *Config) Debug() bool { return c.GetBool(EnvDebug, false) }

// LogLevel returns the configured log level name.
func (c *Config) LogLevel() string { return c.Get(EnvLogLevel, DefaultLogLevel) }

// DataDir returns the output/data directory path.
func (c *Config) DataDir() string { return c.Get(EnvDataDir, DefaultDataDir) }

// CacheEnabled reports whether caching is enabled. The flag is read but not
// enforced anywhere; it is carried for configuration completeness.
func (c *Config) CacheEnabled() bool { return c.GetBool(EnvCacheEnabled, true) }

// CacheTTL returns the cache TTL in seconds.
func (c *Config) CacheTTL() int { return c.GetInt(EnvCacheTTL, DefaultCacheTTL) }

// RateLimitEnabled reports whether rate limiting is enabled. Like
// CacheEnabled, the flag is read but not enforced.
func (c *Config) RateLimitEnabled() bool { return c.GetBool(EnvRateLimitEnabled, true) }

// MaxRequestsPerMinute returns the request budget per minute.
func (c *Config) MaxRequestsPerMinute() int {
	return c.GetInt(EnvMaxRequestsPerMinute, DefaultMaxRequestsPerMinute)
}

// MetricsAddr returns the diagnostics server listen address, empty when the
// server is disabled.
func (c *Config) MetricsAddr() string { return c.Get(EnvMetricsAddr, "") }

// Notification settings.

// SMTPServer returns the SMTP server host, empty when unset.
func (c *Config) SMTPServer() string { return c.Get(EnvSMTPServer, "") }

// SMTPPort returns the SMTP server port.
func (c *Config) SMTPPort() int { return c.GetInt(EnvSMTPPort, DefaultSMTPPort) }

// EmailUsername returns the notification email username, empty when unset.
func (c *Config) EmailUsername() string { return c.Get(EnvEmailUsername, "") }

// EmailPassword returns the notification email password, empty when unset.
func (c *Config) EmailPassword() string { return c.Get(EnvEmailPassword, "") }

// SlackWebhookURL returns the Slack webhook URL, empty when unset.
func (c *Config) SlackWebhookURL() string { return c.Get(EnvSlackWebhookURL, "") }

// Security settings.

// SecretKey returns the application secret key, empty when unset.
func (c *Config) SecretKey() string { return c.Get(EnvSecretKey, "") }

// JWTSecretKey returns the JWT signing key, empty when unset.
func (c *Config) JWTSecretKey() string { return c.Get(EnvJWTSecretKey, "") }

// JWTExpirationHours returns the JWT expiry in hours.
func (c *Config) JWTExpirationHours() int {
	return c.GetInt(EnvJWTExpirationHours, DefaultJWTExpirationHours)
}

// Proxy settings.

// HTTPProxy returns the HTTP proxy URL, empty when unset.
func (c *Config) HTTPProxy() string { return c.Get(EnvHTTPProxy, "") }

// HTTPSProxy returns the HTTPS proxy URL, empty when unset.
func (c *Config) HTTPSProxy() string { return c.Get(EnvHTTPSProxy, "") }

// SSLVerifyDisabled reports whether TLS certificate verification is disabled.
func (c *Config) SSLVerifyDisabled() bool { return c.GetBool(EnvDisableSSLVerify, false) }

// Snapshot returns a curated map of non-sensitive settings for diagnostics
// and logging. Credential and key fields are deliberately excluded; callers
// needing to reference a credential should go through MaskSecret.
//
// Returns:
//   - map[string]any: Setting name to resolved value.
func (c *Config) Snapshot() map[string]any {
	return map[string]any{
		"environment":             c.Environment(),
		"debug":                   c.Debug(),
		"log_level":               c.LogLevel(),
		"data_dir":                c.DataDir(),
		"cache_enabled":           c.CacheEnabled(),
		"cache_ttl":               c.CacheTTL(),
		"rate_limit_enabled":      c.RateLimitEnabled(),
		"max_requests_per_minute": c.MaxRequestsPerMinute(),
		"ssl_verify_disabled":     c.SSLVerifyDisabled(),
	}
}

// ValidateRequired reports, for each supplied key, whether a non-empty value
// is present in the environment. Values themselves are never revealed.
//
// Parameters:
//   - keys: The environment variable names to check.
//
// Returns:
//   - map[string]bool: Key name to presence.
func (c *Config) ValidateRequired(keys []string) map[string]bool {
	results := make(map[string]bool, len(keys))
	for _, key := range keys {
		results[key] = c.Get(key, "") != ""
	}
	return results
}
