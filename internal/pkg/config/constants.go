package config

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Database type constants
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)

// OCR provider constants
const (
	GeminiOCRProvider = "gemini"
	NoneOCRProvider   = "none"
)

// Token signing algorithms accepted from the identity provider
const (
	AuthAlgorithmRS256 = "RS256"
	AuthAlgorithmHS256 = "HS256"
)

// EnvPrefix is the prefix of environment variables overriding file settings.
const EnvPrefix = "HADES"
