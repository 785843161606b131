package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// S3 image storage; empty bucket keeps images as database blobs only
	S3Bucket  string
	AWSRegion string
}

// LoadConfig creates a Config from environment variables, with Docker
// secrets as the fallback for sensitive values outside CI.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getenv("SERVER_PORT", "8080"),
		ServerHost: getenv("SERVER_HOST", "0.0.0.0"),
		DBDriver:   getenv("DB_DRIVER", "postgres"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     firstOf(os.Getenv("DB_USER"), readSecret("db_user")),
		DBPassword: firstOf(os.Getenv("DB_PASSWORD"), readSecret("db_password")),
		DBName:     getenv("DB_NAME", "platepost"),
		DBSSLMode:  getenv("DB_SSL_MODE", "disable"),
		RedisHost:  getenv("REDIS_HOST", "localhost"),
		RedisPort:  getenv("REDIS_PORT", "6379"),
		RedisURL:   os.Getenv("REDIS_URL"),
		JWTSecret:  firstOf(os.Getenv("JWT_SECRET"), readSecret("jwt_secret")),
		S3Bucket:   os.Getenv("S3_BUCKET_NAME"),
		AWSRegion:  os.Getenv("AWS_REGION"),
	}
	cfg.RedisPassword = firstOf(os.Getenv("REDIS_PASSWORD"), readSecret("redis_password"))
	cfg.RedisDB = 0

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func getenv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
