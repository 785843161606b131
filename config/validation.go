package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that everything the server cannot run without is
// present. Production refuses to start with a missing JWT secret; other
// environments warn through the error only when the database coordinates
// are incomplete.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		errors = append(errors, "database host, port and name are required")
	}
	if cfg.JWTSecret == "" {
		if IsProduction() {
			errors = append(errors, "jwt secret is required in production")
		} else {
			cfg.JWTSecret = "development-secret"
		}
	}
	if cfg.S3Bucket != "" && cfg.AWSRegion == "" {
		errors = append(errors, "AWS_REGION is required when S3_BUCKET_NAME is set")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}
