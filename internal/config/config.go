package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	CSRF     CSRFConfig
	Rates    RatesConfig
	Client   ClientConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// CSRFConfig holds the fernet key used to sign CSRF tokens.
// An empty key makes the server generate a random one at startup,
// which invalidates outstanding tokens on restart.
type CSRFConfig struct {
	Key string
}

// RatesConfig holds configuration for the exchange rate refresh job.
type RatesConfig struct {
	URL      string
	Schedule string
}

// ClientConfig holds configuration for the dashboard client.
type ClientConfig struct {
	BaseURL string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/invest_manager.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		CSRF: CSRFConfig{
			Key: getEnv("CSRF_KEY", ""),
		},
		Rates: RatesConfig{
			URL:      getEnv("RATES_URL", "https://open.er-api.com"),
			Schedule: getEnv("RATES_SCHEDULE", "@daily"),
		},
		Client: ClientConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:5001"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
