// Package config has the configuration file for the app
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Port                 string
	Address              string
	Env                  string
	LogLevel             string
	MaxRequestBody       int64  // Maximum request body size in bytes
	MaxHeaderSize        int64  // Maximum header size in bytes
	OpenFDABaseURL       string // Base URL of the drug-label service
	OpenFDATimeoutSecs   int    // Timeout for safety lookups, in seconds
	SafetyCacheSize      int    // Capacity of the safety-info LRU cache
	DefaultLocation      string // Location used when a query omits one
	AlertIntervalMinutes int    // How often price alerts are re-evaluated
}

// Load loads and validates configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                 getEnvWithDefault("PORT", "8000"),
		Address:              getEnvWithDefault("ADDRESS", "127.0.0.1"),
		Env:                  getEnvWithDefault("ENV", "dev"),
		LogLevel:             getEnvWithDefault("LOG_LEVEL", "info"),
		MaxRequestBody:       getInt64EnvWithDefault("MAX_REQUEST_BODY", 1048576), // 1MB default
		MaxHeaderSize:        getInt64EnvWithDefault("MAX_HEADER_SIZE", 1048576),  // 1MB default
		OpenFDABaseURL:       getEnvWithDefault("OPENFDA_BASE_URL", "https://api.fda.gov"),
		OpenFDATimeoutSecs:   getIntEnvWithDefault("OPENFDA_TIMEOUT_SECONDS", 3),
		SafetyCacheSize:      getIntEnvWithDefault("SAFETY_CACHE_SIZE", 100),
		DefaultLocation:      getEnvWithDefault("DEFAULT_LOCATION", "Delhi"),
		AlertIntervalMinutes: getIntEnvWithDefault("ALERT_INTERVAL_MINUTES", 15),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// validateConfig validates all configuration values
func validateConfig(cfg *Config) error {
	if err := validatePort(cfg.Port); err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	if err := validateAddress(cfg.Address); err != nil {
		return fmt.Errorf("invalid ADDRESS: %w", err)
	}

	if err := validateEnv(cfg.Env); err != nil {
		return fmt.Errorf("invalid ENV: %w", err)
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := validateSizeLimit(cfg.MaxRequestBody, "MAX_REQUEST_BODY"); err != nil {
		return fmt.Errorf("invalid MAX_REQUEST_BODY: %w", err)
	}

	if err := validateSizeLimit(cfg.MaxHeaderSize, "MAX_HEADER_SIZE"); err != nil {
		return fmt.Errorf("invalid MAX_HEADER_SIZE: %w", err)
	}

	if !strings.HasPrefix(cfg.OpenFDABaseURL, "http://") && !strings.HasPrefix(cfg.OpenFDABaseURL, "https://") {
		return fmt.Errorf("invalid OPENFDA_BASE_URL: must start with http:// or https://, got: %s", cfg.OpenFDABaseURL)
	}

	if cfg.OpenFDATimeoutSecs < 1 || cfg.OpenFDATimeoutSecs > 30 {
		return fmt.Errorf("invalid OPENFDA_TIMEOUT_SECONDS: must be between 1 and 30, got: %d", cfg.OpenFDATimeoutSecs)
	}

	if cfg.SafetyCacheSize < 1 || cfg.SafetyCacheSize > 10000 {
		return fmt.Errorf("invalid SAFETY_CACHE_SIZE: must be between 1 and 10000, got: %d", cfg.SafetyCacheSize)
	}

	if strings.TrimSpace(cfg.DefaultLocation) == "" {
		return fmt.Errorf("invalid DEFAULT_LOCATION: cannot be empty")
	}

	if cfg.AlertIntervalMinutes < 1 || cfg.AlertIntervalMinutes > 1440 {
		return fmt.Errorf("invalid ALERT_INTERVAL_MINUTES: must be between 1 and 1440, got: %d", cfg.AlertIntervalMinutes)
	}

	return nil
}

// validatePort validates the PORT environment variable
func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid number: %w", err)
	}

	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	// Check for privileged ports
	if portNum < 1024 {
		return fmt.Errorf("PORT %d is privileged (less than 1024), use ports 1024-65535", portNum)
	}

	return nil
}

// validateAddress validates the ADDRESS environment variable
func validateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("ADDRESS cannot be empty")
	}

	// Check for localhost/loopback addresses first
	if address == "127.0.0.1" || address == "::1" || address == "localhost" {
		return nil
	}

	if ip := net.ParseIP(address); ip == nil {
		return fmt.Errorf("ADDRESS must be a valid IP address or 'localhost', got: %s", address)
	}

	return nil
}

// validateEnv validates the ENV environment variable
func validateEnv(env string) error {
	if env == "" {
		return fmt.Errorf("ENV cannot be empty")
	}

	validEnvs := []string{"dev", "staging", "prod", "test"}
	env = strings.ToLower(env)

	for _, validEnv := range validEnvs {
		if env == validEnv {
			return nil
		}
	}

	return fmt.Errorf("ENV must be one of: %v, got: %s", validEnvs, env)
}

// validateLogLevel validates the LOG_LEVEL environment variable
func validateLogLevel(logLevel string) error {
	if logLevel == "" {
		return fmt.Errorf("LOG_LEVEL cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	logLevel = strings.ToLower(logLevel)

	for _, level := range validLevels {
		if logLevel == level {
			return nil
		}
	}

	return fmt.Errorf("LOG_LEVEL must be one of: %v, got: %s", validLevels, logLevel)
}

// validateSizeLimit validates size limit configuration values
func validateSizeLimit(size int64, configName string) error {
	if size <= 0 {
		return fmt.Errorf("%s must be positive, got: %d", configName, size)
	}

	if size > 100*1024*1024 { // 100MB
		return fmt.Errorf("%s is too large (max 100MB), got: %d bytes", configName, size)
	}

	return nil
}

// getEnvWithDefault gets an environment variable with a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnvWithDefault gets an environment variable as int with a default value
func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getInt64EnvWithDefault gets an environment variable as int64 with a default value
func getInt64EnvWithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
