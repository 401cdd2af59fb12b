// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Transport   string
	Host        string
	Port        int
	DBPath      string
	CatalogPath string // optional YAML food list replacing the built-in table
}

// Load reads .env files (if any) into the environment, then builds a
// Config from environment variables with defaults.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	port, err := strconv.Atoi(getEnv("HEALTH_CALC_PORT", "8012"))
	if err != nil {
		return nil, fmt.Errorf("invalid HEALTH_CALC_PORT: %w", err)
	}

	cfg := &Config{
		Transport:   getEnv("HEALTH_CALC_TRANSPORT", "http"),
		Host:        getEnv("HEALTH_CALC_HOST", "0.0.0.0"),
		Port:        port,
		DBPath:      getEnv("HEALTH_CALC_DB_PATH", ":memory:"),
		CatalogPath: getEnv("HEALTH_CALC_FOOD_CATALOG", ""),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Transport != "http" {
		return fmt.Errorf("unsupported transport %q", c.Transport)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.DBPath == "" {
		return fmt.Errorf("database path is required")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
