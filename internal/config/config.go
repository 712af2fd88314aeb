package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Compute ComputeConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// ComputeConfig holds serving-layer budgets for compute requests. The core
// itself carries no limits beyond the sample-count range; capping
// concurrency is this layer's job.
type ComputeConfig struct {
	MaxConcurrent int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:  loadServerConfig(),
		Compute: loadComputeConfig(),
	}
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

func loadComputeConfig() ComputeConfig {
	return ComputeConfig{
		MaxConcurrent: int64(getEnvIntOrDefault("COMPUTE_MAX_CONCURRENT", 8)),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return fmt.Errorf("PORT must be numeric: %q", config.Server.Port)
	}
	if config.Compute.MaxConcurrent < 1 {
		return fmt.Errorf("COMPUTE_MAX_CONCURRENT must be at least 1")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
