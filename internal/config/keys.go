// This file names every recognized environment variable and provides
// credential masking for diagnostic output.

package config

// Financial data API keys.
const (
	EnvFinnhubAPIKey = "FINNHUB_API_KEY"
	EnvOpenBBToken   = "OPENBB_PAT"
	EnvSECAPIKey     = "SEC_API_KEY"
	EnvFMPAPIKey     = "FMP_API_KEY"
)

// Social media API keys.
const (
	EnvRedditClientID     = "REDDIT_CLIENT_ID"
	EnvRedditClientSecret = "REDDIT_CLIENT_SECRET"
	EnvRedditUserAgent    = "REDDIT_USER_AGENT"
	EnvTwitterBearerToken = "TWITTER_BEARER_TOKEN"
)

// AI/ML API keys.
const (
	EnvOpenAIAPIKey      = "OPENAI_API_KEY"
	EnvLangSmithAPIKey   = "LANGSMITH_API_KEY"
	EnvHuggingFaceAPIKey = "HUGGINGFACE_API_KEY"
)

// Datastore settings.
const (
	EnvDatabaseURL      = "DATABASE_URL"
	EnvMongoDBURI       = "MONGODB_URI"
	EnvQdrantURL        = "QDRANT_URL"
	EnvQdrantClusterKey = "QDRANT_CLUSTER_KEY"
)

// Application settings.
const (
	EnvEnvironment          = "ENVIRONMENT"
	EnvDebug                = "DEBUG"
	EnvLogLevel             = "LOG_LEVEL"
	EnvDataDir              = "DATA_DIR"
	EnvCacheEnabled         = "CACHE_ENABLED"
	EnvCacheTTL             = "CACHE_TTL"
	EnvRateLimitEnabled     = "RATE_LIMIT_ENABLED"
	EnvMaxRequestsPerMinute = "MAX_REQUESTS_PER_MINUTE"
	EnvMetricsAddr          = "METRICS_ADDR"
)

// Notification settings.
const (
	EnvSMTPServer      = "SMTP_SERVER"
	EnvSMTPPort        = "SMTP_PORT"
	EnvEmailUsername   = "EMAIL_USERNAME"
	EnvEmailPassword   = "EMAIL_PASSWORD"
	EnvSlackWebhookURL = "SLACK_WEBHOOK_URL"
)

// Security settings.
const (
	EnvSecretKey          = "SECRET_KEY"
	EnvJWTSecretKey       = "JWT_SECRET_KEY"
	EnvJWTExpirationHours = "JWT_EXPIRATION_HOURS"
)

// Proxy settings.
const (
	EnvHTTPProxy        = "HTTP_PROXY"
	EnvHTTPSProxy       = "HTTPS_PROXY"
	EnvDisableSSLVerify = "DISABLE_SSL_VERIFY"
)

// Default values for settings with non-empty defaults.
const (
	DefaultEnvironment          = "development"
	DefaultLogLevel             = "info"
	DefaultDataDir              = "./output"
	DefaultRedditUserAgent      = "finagent/1.0"
	DefaultCacheTTL             = 3600
	DefaultMaxRequestsPerMinute = 60
	DefaultSMTPPort             = 587
	DefaultJWTExpirationHours   = 24
)

// MaskSecret returns a masked rendering of a credential for display.
// Short values are fully masked; longer values keep the first three and last
// four characters so a human can tell which key is configured without the
// log exposing it.
//
// Parameters:
//   - value: The credential value, possibly empty.
//
// Returns:
//   - string: The masked value, or "(not set)" when empty.
func MaskSecret(value string) string {
	if value == "" {
		return "(not set)"
	}
	if len(value) <= 12 {
		return "***"
	}
	return value[:3] + "..." + value[len(value)-4:]
}
