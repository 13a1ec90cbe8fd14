package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSessionTTL is the canonical session lifetime. Sessions are not
// renewed on use; after this window the cookie token is treated as absent.
const DefaultSessionTTL = 24 * time.Hour

// Config holds all configuration for the application.
// It is constructed once in main and passed explicitly to every component.
type Config struct {
	Environment        string
	Port               string
	DBUrl              string
	UseInMemoryStorage bool
	SessionSecret      string
	SessionTTL         time.Duration
	AllowedOrigins     []string

	EmailProvider    string
	EmailFromAddress string
	EmailFromName    string
	ContactInbox     string
	SESRegion        string
	SESAccessKeyID   string
	SESSecretKey     string
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file if not in production; in production
// we rely on system environment variables only.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:      env,
		Port:             os.Getenv("PORT"),
		DBUrl:            os.Getenv("DATABASE_URL"),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		SessionTTL:       DefaultSessionTTL,
		EmailProvider:    os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress: os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:    os.Getenv("EMAIL_FROM_NAME"),
		ContactInbox:     os.Getenv("CONTACT_INBOX"),
		SESRegion:        os.Getenv("SES_REGION"),
		SESAccessKeyID:   os.Getenv("SES_ACCESS_KEY_ID"),
		SESSecretKey:     os.Getenv("SES_SECRET_ACCESS_KEY"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "noop"
	}

	// The storage backing is decided once here and fixed for the process
	// lifetime: explicit opt-in, no database configured, or development.
	cfg.UseInMemoryStorage = os.Getenv("USE_IN_MEMORY_STORAGE") == "true" ||
		cfg.DBUrl == "" ||
		env == "development"

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}
