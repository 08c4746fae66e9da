package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings. Values come from the environment,
// optionally overridden by a YAML file named in QRSTUDIO_CONFIG.
type Config struct {
	Port        int    `yaml:"port" json:"port"`
	DBPath      string `yaml:"db_path" json:"db_path"`           // SQLite database file
	UploadsPath string `yaml:"uploads_path" json:"uploads_path"` // Directory for uploaded logos
	BaseURL     string `yaml:"base_url" json:"base_url"`         // Public prefix for derived upload URLs

	// URL-shortening upstream (Kutt)
	KuttAPIKey  string `yaml:"kutt_api_key" json:"kutt_api_key"`
	KuttBaseURL string `yaml:"kutt_base_url" json:"kutt_base_url"`
	ShortDomain string `yaml:"short_domain" json:"short_domain"`

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"` // DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`
	LogConsole bool   `yaml:"log_console" json:"log_console"`
}

// Load builds the configuration from environment variables, applying the
// QRSTUDIO_CONFIG YAML file on top when one is set.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnvInt("PORT", 8080),
		DBPath:      getEnv("DB_PATH", "/data/db.sqlite"),
		UploadsPath: getEnv("UPLOADS_PATH", "/uploads"),
		BaseURL:     getEnv("BASE_URL", ""),
		KuttAPIKey:  getEnv("KUTT_API_KEY", ""),
		KuttBaseURL: getEnv("KUTT_BASE_URL", "http://kutt:3000"),
		ShortDomain: getEnv("SHORT_DOMAIN", "https://mifi.me"),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFile:     getEnv("LOG_FILE", ""),
		LogConsole:  getEnv("LOG_CONSOLE", "true") == "true",
	}

	if path := os.Getenv("QRSTUDIO_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return cfg, nil
}

// Addr returns the listen address for the configured port
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
