package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// configEnvKeys are all environment variables Load reads
var configEnvKeys = []string{
	"BOT_TOKEN", "BOT_PASSWORD", "VOCAB_PATH", "ADVANCE_DELAY_MS",
	"STATS_BACKEND", "STATS_PATH",
	"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
}

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range configEnvKeys {
		key := key
		original, had := os.LookupEnv(key)
		os.Unsetenv(key)
		if had {
			t.Cleanup(func() { os.Setenv(key, original) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
	}
	for key, value := range env {
		os.Setenv(key, value)
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_Defaults(t *testing.T) {
	withEnv(t, map[string]string{
		"BOT_TOKEN":    "token",
		"BOT_PASSWORD": "secret",
		"VOCAB_PATH":   "vocab.json",
	})

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Stats.Backend)
	assert.Equal(t, "data/stats.json", cfg.Stats.Path)
	assert.Equal(t, 2500*time.Millisecond, cfg.AdvanceDelay)
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoad_PostgresBackend(t *testing.T) {
	withEnv(t, map[string]string{
		"BOT_TOKEN":        "token",
		"BOT_PASSWORD":     "secret",
		"VOCAB_PATH":       "vocab.json",
		"STATS_BACKEND":    "postgres",
		"DB_PASSWORD":      "dbpass",
		"ADVANCE_DELAY_MS": "1000",
	})

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.Stats.Backend)
	assert.Equal(t, time.Second, cfg.AdvanceDelay)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing bot token",
			env: map[string]string{
				"BOT_PASSWORD": "secret",
				"VOCAB_PATH":   "vocab.json",
			},
		},
		{
			name: "missing bot password",
			env: map[string]string{
				"BOT_TOKEN":  "token",
				"VOCAB_PATH": "vocab.json",
			},
		},
		{
			name: "missing vocab path",
			env: map[string]string{
				"BOT_TOKEN":    "token",
				"BOT_PASSWORD": "secret",
			},
		},
		{
			name: "postgres backend without db password",
			env: map[string]string{
				"BOT_TOKEN":     "token",
				"BOT_PASSWORD":  "secret",
				"VOCAB_PATH":    "vocab.json",
				"STATS_BACKEND": "postgres",
			},
		},
		{
			name: "unknown backend",
			env: map[string]string{
				"BOT_TOKEN":     "token",
				"BOT_PASSWORD":  "secret",
				"VOCAB_PATH":    "vocab.json",
				"STATS_BACKEND": "redis",
			},
		},
		{
			name: "invalid advance delay",
			env: map[string]string{
				"BOT_TOKEN":        "token",
				"BOT_PASSWORD":     "secret",
				"VOCAB_PATH":       "vocab.json",
				"ADVANCE_DELAY_MS": "soon",
			},
		},
		{
			name: "negative advance delay",
			env: map[string]string{
				"BOT_TOKEN":        "token",
				"BOT_PASSWORD":     "secret",
				"VOCAB_PATH":       "vocab.json",
				"ADVANCE_DELAY_MS": "-5",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withEnv(t, tt.env)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
