package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Solva
type Config struct {
	Environment string         `toml:"environment"`
	Server      ServerConfig   `toml:"server"`
	Storage     StorageConfig  `toml:"storage"`
	Logging     LoggingConfig  `toml:"logging"`
	Analysis    AnalysisConfig `toml:"analysis"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds the BadgerHold data directory.
type StorageConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// AnalysisConfig holds engine defaults applied when a request omits them.
type AnalysisConfig struct {
	DefaultREMPercent float64            `toml:"default_rem_percent"`
	DefaultCACPercent float64            `toml:"default_cac_percent"`
	DefaultWeights    map[string]float64 `toml:"default_weights"`
}

// IsProduction returns true when running with the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NewDefaultConfig returns a config populated with development defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8380,
		},
		Storage: StorageConfig{
			Path: "./data",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Analysis: AnalysisConfig{
			DefaultREMPercent: 0,
			DefaultCACPercent: 0,
			DefaultWeights:    map[string]float64{},
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("SOLVA_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("SOLVA_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("SOLVA_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("SOLVA_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("SOLVA_DATA_PATH"); path != "" {
		config.Storage.Path = filepath.Join(path, "analyses")
	}
}
