// Package config loads the adminui command settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/hay-kot/criterio"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	// ErrDotenv is returned when an explicitly requested .env file cannot be read.
	ErrDotenv = errors.New("failed to load dotenv file")
)

// Config holds the settings shared by every adminui command. Flags override
// these values.
type Config struct {
	// Definitions is the directory walked for page definition files.
	Definitions string `env:"ADMINUI_DEFINITIONS" envDefault:"admin"`
	// Locale selects translated validation messages.
	Locale string `env:"ADMINUI_LOCALE" envDefault:"en"`
	// Translations is an optional YAML/JSON file of locale -> key -> message.
	Translations string `env:"ADMINUI_TRANSLATIONS"`
	LogLevel     string `env:"ADMINUI_LOG_LEVEL" envDefault:"info"`
	LogFile      string `env:"ADMINUI_LOG_FILE"`
	// MaxAttempts bounds interactive re-prompts per field; 0 is unlimited.
	MaxAttempts int `env:"ADMINUI_MAX_ATTEMPTS" envDefault:"0"`
}

var defaultEnvLoaded sync.Once

// Load reads Config from the environment after loading a .env file from the
// working directory, if one exists.
func Load() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})
	return parse()
}

// LoadFile is Load with an explicit dotenv file, which must exist. Variables
// already set in the environment win over the file.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil {
		return Config{}, errors.Join(ErrDotenv, err)
	}
	return parse()
}

func parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Validate checks values the environment parser cannot.
func (c Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("definitions", c.Definitions, notBlank),
		criterio.Run("log_level", c.LogLevel, logLevel),
		nonNegative("max_attempts", c.MaxAttempts),
	)
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be empty")
	}
	return nil
}

func logLevel(s string) error {
	if _, err := zerolog.ParseLevel(s); err != nil {
		return fmt.Errorf("unknown level %q", s)
	}
	return nil
}

func nonNegative(field string, n int) error {
	if n < 0 {
		return criterio.NewFieldErrors(field, fmt.Errorf("must be >= 0, got %d", n))
	}
	return nil
}
