package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/prodajalna/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "store.json", cfg.StoreFile)
	assert.Equal(t, "users.json", cfg.UsersFile)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "admin123", cfg.AdminPassword)
	assert.Zero(t, cfg.SessionTTL, "sessions last until logout unless a TTL is set")
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PRODAJALNA_STORE_FILE", "/tmp/inv.json")
	t.Setenv("PRODAJALNA_SESSION_TTL", "15m")
	t.Setenv("PRODAJALNA_BCRYPT_COST", "12")
	t.Setenv("PRODAJALNA_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/inv.json", cfg.StoreFile)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"cost too low", "PRODAJALNA_BCRYPT_COST", "3"},
		{"cost too high", "PRODAJALNA_BCRYPT_COST", "40"},
		{"negative ttl", "PRODAJALNA_SESSION_TTL", "-1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			assert.ErrorIs(t, err, config.ErrInvalidValue)
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad duration", "PRODAJALNA_SESSION_TTL", "soon"},
		{"bad int", "PRODAJALNA_BCRYPT_COST", "ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

type requiredConfig struct {
	Name    string `env:"NAME"`
	Enabled bool   `env:"ENABLED" default:"false"`
	Ignored string
}

func TestParse_Required(t *testing.T) {
	var cfg requiredConfig
	err := config.Parse(&cfg, "TEST")
	assert.ErrorIs(t, err, config.ErrVarNotSet)

	t.Setenv("TEST_NAME", "x")
	t.Setenv("TEST_ENABLED", "true")
	require.NoError(t, config.Parse(&cfg, "TEST"))
	assert.Equal(t, "x", cfg.Name)
	assert.True(t, cfg.Enabled)
}

func TestParse_UnsupportedType(t *testing.T) {
	var cfg struct {
		Ratio float64 `env:"RATIO" default:"0.5"`
	}
	assert.ErrorIs(t, config.Parse(&cfg, "TEST"), config.ErrUnsupportedVarType)
}

func TestParse_NotAPointer(t *testing.T) {
	assert.ErrorIs(t, config.Parse(requiredConfig{}, "TEST"), config.ErrInvalidConfig)
}
