package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/applemath/internal/session"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultLearnerName is the learner greeted when no name is configured.
const DefaultLearnerName = "Ashley"

// DefaultEnvFile is the dotenv file read by Load when present.
const DefaultEnvFile = ".env"

// Environment variables.
const (
	EnvName         = "APPLEMATH_NAME"
	EnvMode         = "APPLEMATH_MODE"
	EnvMaxQuestions = "APPLEMATH_MAX_QUESTIONS"
	EnvSeed         = "APPLEMATH_SEED"
	EnvDebugLog     = "APPLEMATH_DEBUG_LOG"
)

// Config holds the quiz settings.
type Config struct {
	// LearnerName is used in greetings and feedback.
	LearnerName string

	// Mode is "classic" or "endless". Default: "classic".
	Mode string

	// MaxQuestions bounds a classic session. Default: 20.
	MaxQuestions int

	// Seed seeds question generation. Zero seeds from the clock.
	Seed int64

	// DebugLog is a file that receives diagnostics. Empty discards them.
	DebugLog string
}

// DefaultConfig returns a Config with the classic defaults.
func DefaultConfig() Config {
	return Config{
		LearnerName:  DefaultLearnerName,
		Mode:         string(session.ModeClassic),
		MaxQuestions: session.DefaultMaxQuestions,
	}
}

// Load reads envFile (if it exists) into the environment without overriding
// variables that are already set, then builds a Config from the environment.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if n := os.Getenv(EnvName); n != "" {
		cfg.LearnerName = n
	}
	if m := os.Getenv(EnvMode); m != "" {
		cfg.Mode = m
	}
	if v := os.Getenv(EnvMaxQuestions); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q is not a number: %w", EnvMaxQuestions, v, ErrInvalidConfig)
		}
		cfg.MaxQuestions = n
	}
	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q is not a number: %w", EnvSeed, v, ErrInvalidConfig)
		}
		cfg.Seed = n
	}
	if p := os.Getenv(EnvDebugLog); p != "" {
		cfg.DebugLog = p
	}

	return cfg, nil
}

// SessionMode returns the parsed mode. Call Validate first.
func (c Config) SessionMode() session.Mode {
	m, err := session.ParseMode(c.Mode)
	if err != nil {
		return session.ModeClassic
	}
	return m
}

// Validate checks that the settings can start a session.
func (c Config) Validate() error {
	if strings.TrimSpace(c.LearnerName) == "" {
		return fmt.Errorf("learner name is required: %w", ErrInvalidConfig)
	}
	if _, err := session.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if c.MaxQuestions <= 0 {
		return fmt.Errorf("max questions must be positive, got %d: %w", c.MaxQuestions, ErrInvalidConfig)
	}
	return nil
}
