package config

// Application info.
const (
	AppName    = "classboard"
	AppVersion = "1.0.0"
)

// Default settings.
const (
	DefaultServerPort        = ":8080"
	DefaultStoreDriver       = "memory"
	DefaultRedisAddr         = "localhost:6379"
	DefaultLogLevel          = "info"
	DefaultSessionTTLMinutes = 12 * 60
	DefaultSessionSecret     = "classboard-dev-secret"
)
