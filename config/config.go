package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment    string
	Port           string
	StaticDir      string
	AllowedOrigins []string

	EmailProvider    string
	EmailFromAddress string
	EmailFromName    string
	SESRegion        string
	SESAccessKeyID   string
	SESSecretKey     string
}

// Load loads configuration from environment variables. Outside production it
// attempts to load a .env file first; a missing .env is not an error because
// deployments rely on real environment variables.
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
		StaticDir:        os.Getenv("STATIC_DIR"),
		EmailProvider:    os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress: os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:    os.Getenv("EMAIL_FROM_NAME"),
		SESRegion:        os.Getenv("AWS_SES_REGION"),
		SESAccessKeyID:   os.Getenv("AWS_SES_ACCESS_KEY_ID"),
		SESSecretKey:     os.Getenv("AWS_SES_SECRET_ACCESS_KEY"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	// Defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static"
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "noop"
	}
	if cfg.EmailFromName == "" {
		cfg.EmailFromName = "Mergington High School Activities"
	}

	return cfg, nil
}
