package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer         string // Required: issuer claim for session tokens
	Origin         string // Frontend base URL invite links point at
	BootstrapToken string // Optional: token required to perform bootstrap

	SigningKeyFile string        // Optional: path to Ed25519 key PEM (empty: ephemeral key)
	SessionTTL     time.Duration // Session token lifetime (default: 24h)

	DatabaseFile string // Optional: path to SQLite database file (default: ./portal.db)
	PepperFile   string // Optional: path to pepper file for password hashing (default: ./pepper)

	MailAPIURL    string        // Optional: email provider base URL (default: Resend)
	MailAPIKey    string        // Email provider API key; empty disables delivery
	MailFrom      string        // Sender address for invite email
	RemoteTimeout time.Duration // Bound on email provider calls (default: 15s)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired invite sweep interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:         os.Getenv("PORTAL_ISSUER"),
		Origin:         getEnvOrDefault("PORTAL_ORIGIN", "http://localhost:3000"),
		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),

		SigningKeyFile: os.Getenv("PORTAL_SIGNING_KEY_FILE"),
		SessionTTL:     getEnvDurationOrDefault("PORTAL_SESSION_TTL", 24*time.Hour),

		DatabaseFile: getEnvOrDefault("PORTAL_DATABASE_FILE", "portal.db"),
		PepperFile:   getEnvOrDefault("PORTAL_PEPPER_FILE", "pepper"),

		MailAPIURL:    os.Getenv("PORTAL_MAIL_API_URL"),
		MailAPIKey:    os.Getenv("PORTAL_MAIL_API_KEY"),
		MailFrom:      getEnvOrDefault("PORTAL_MAIL_FROM", "Portal <no-reply@localhost>"),
		RemoteTimeout: getEnvDurationOrDefault("PORTAL_REMOTE_TIMEOUT", 15*time.Second),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "portal"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are read as seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
