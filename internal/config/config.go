package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Stats storage backends
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken     string
	BotPassword  string
	VocabPath    string
	AdvanceDelay time.Duration
	Stats        StatsConfig
	Database     DatabaseConfig
}

// StatsConfig selects and configures the stats storage backend
type StatsConfig struct {
	Backend string
	Path    string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	advanceMs, err := strconv.Atoi(getEnv("ADVANCE_DELAY_MS", "2500"))
	if err != nil || advanceMs <= 0 {
		return nil, fmt.Errorf("ADVANCE_DELAY_MS must be a positive integer")
	}

	cfg := &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		BotPassword:  os.Getenv("BOT_PASSWORD"),
		VocabPath:    os.Getenv("VOCAB_PATH"),
		AdvanceDelay: time.Duration(advanceMs) * time.Millisecond,
		Stats: StatsConfig{
			Backend: getEnv("STATS_BACKEND", BackendFile),
			Path:    getEnv("STATS_PATH", "data/stats.json"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "wortquiz"),
			User:     getEnv("DB_USER", "wortquiz"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.VocabPath == "" {
		return nil, fmt.Errorf("VOCAB_PATH is required")
	}

	switch cfg.Stats.Backend {
	case BackendFile:
		if cfg.Stats.Path == "" {
			return nil, fmt.Errorf("STATS_PATH is required for the file backend")
		}
	case BackendPostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required for the postgres backend")
		}
	default:
		return nil, fmt.Errorf("unknown STATS_BACKEND %q", cfg.Stats.Backend)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
