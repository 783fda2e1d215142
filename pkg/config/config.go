package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string
	DatabaseDSN string

	JWTSecret string
	JWTExpiry time.Duration

	GithubClientID     string
	GithubClientSecret string

	BackendURL  string
	FrontendURL string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	SupportEmail string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtExpiry := 8 * time.Hour
	if exp := os.Getenv("JWT_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			jwtExpiry = parsed
		}
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		JWTSecret: os.Getenv("TOKEN_SECRET_KEY"),
		JWTExpiry: jwtExpiry,

		GithubClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		GithubClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),

		BackendURL:  getEnv("BACKEND_URL", "http://localhost:8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		SupportEmail: os.Getenv("SUPPORT_EMAIL"),
	}
}

// Validate fails fast on configuration the server cannot run without.
// A missing JWT secret would mean issuing tokens anyone can forge, so the
// process refuses to start instead of degrading.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("TOKEN_SECRET_KEY is required")
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN is required")
	}
	return nil
}

// GithubOAuthEnabled reports whether the GitHub login routes can be registered.
func (c *Config) GithubOAuthEnabled() bool {
	return c.GithubClientID != "" && c.GithubClientSecret != ""
}

// IsProduction controls the Secure flag on auth cookies.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
