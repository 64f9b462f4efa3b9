package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/applemath/internal/session"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvName, EnvMode, EnvMaxQuestions, EnvSeed, EnvDebugLog} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Ashley", cfg.LearnerName)
	assert.Equal(t, "classic", cfg.Mode)
	assert.Equal(t, 20, cfg.MaxQuestions)
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.DebugLog)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvName, "Sam")
	t.Setenv(EnvMode, "endless")
	t.Setenv(EnvMaxQuestions, "5")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvDebugLog, "/tmp/applemath.log")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "Sam", cfg.LearnerName)
	assert.Equal(t, session.ModeEndless, cfg.SessionMode())
	assert.Equal(t, 5, cfg.MaxQuestions)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "/tmp/applemath.log", cfg.DebugLog)
}

func TestFromEnv_BadNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMaxQuestions, "twenty")
	_, err := FromEnv()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	clearEnv(t)
	t.Setenv(EnvSeed, "x")
	_, err = FromEnv()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_DotEnvDoesNotOverrideEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APPLEMATH_NAME=FromFile\nAPPLEMATH_MAX_QUESTIONS=7\n"), 0o600))
	t.Setenv(EnvName, "FromEnv")
	t.Cleanup(func() { os.Unsetenv(EnvMaxQuestions) })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "FromEnv", cfg.LearnerName)
	assert.Equal(t, 7, cfg.MaxQuestions)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"endless", func(c *Config) { c.Mode = "Endless" }, true},
		{"empty name", func(c *Config) { c.LearnerName = "  " }, false},
		{"bad mode", func(c *Config) { c.Mode = "speedrun" }, false},
		{"zero limit", func(c *Config) { c.MaxQuestions = 0 }, false},
		{"negative limit", func(c *Config) { c.MaxQuestions = -3 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}
