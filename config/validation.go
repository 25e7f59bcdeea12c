package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that the loaded configuration is usable before the
// server starts. Secrets are required outside development so a misconfigured
// deploy fails fast instead of serving unsigned tokens.
func ValidateConfig(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", cfg.ServerPort)
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return fmt.Errorf("database configuration is incomplete")
	}
	if cfg.FrontendOrigin == "" {
		return fmt.Errorf("FRONTEND_ORIGIN must not be empty")
	}
	if IsProduction() {
		if cfg.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if cfg.DBPassword == "" {
			return fmt.Errorf("DB_PASSWORD is required in production")
		}
	}
	return nil
}
