package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-adminui/internal/config"
	"github.com/goliatone/go-adminui/internal/logging"
	"github.com/goliatone/go-adminui/pkg/feedback"
	"github.com/goliatone/go-adminui/pkg/loader"
	"github.com/goliatone/go-adminui/pkg/registry"
)

// Flags holds global settings resolved from the environment and flags.
type Flags struct {
	EnvFile      string
	Definitions  string
	Locale       string
	Translations string
	LogLevel     string
	LogFile      string
	MaxAttempts  int

	// Logger is set up in the Before hook.
	Logger zerolog.Logger
	// Registry receives every loaded page.
	Registry *registry.Registry
}

// NewFlags seeds flag defaults from cfg.
func NewFlags(cfg config.Config) *Flags {
	return &Flags{
		Definitions:  cfg.Definitions,
		Locale:       cfg.Locale,
		Translations: cfg.Translations,
		LogLevel:     cfg.LogLevel,
		LogFile:      cfg.LogFile,
		MaxAttempts:  cfg.MaxAttempts,
		Logger:       zerolog.Nop(),
		Registry:     registry.New(),
	}
}

// Config returns the flags as a config.Config for validation.
func (f *Flags) Config() config.Config {
	return config.Config{
		Definitions:  f.Definitions,
		Locale:       f.Locale,
		Translations: f.Translations,
		LogLevel:     f.LogLevel,
		LogFile:      f.LogFile,
		MaxAttempts:  f.MaxAttempts,
	}
}

// LoadPages loads every definition under the definitions directory into the
// flags' registry.
func (f *Flags) LoadPages() (*loader.Set, error) {
	info, err := os.Stat(f.Definitions)
	if err != nil {
		return nil, fmt.Errorf("definitions: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("definitions: %s is not a directory", f.Definitions)
	}

	f.Registry.Reset()
	set, err := loader.LoadFS(os.DirFS(f.Definitions), loader.Options{Registry: f.Registry})
	if err != nil {
		return nil, err
	}
	log := f.Log("loader")
	log.Debug().
		Str("dir", f.Definitions).
		Int("pages", len(set.Pages())).
		Msg("definitions loaded")
	return set, nil
}

// FeedbackOptions builds message options, loading the translations file when
// one is configured.
func (f *Flags) FeedbackOptions() (feedback.Options, error) {
	opts := feedback.Options{Locale: f.Locale}
	if f.Translations == "" {
		return opts, nil
	}

	data, err := os.ReadFile(f.Translations)
	if err != nil {
		return opts, fmt.Errorf("translations: %w", err)
	}
	tr, err := feedback.ParseTranslations(data)
	if err != nil {
		return opts, err
	}
	opts.Translator = tr
	opts.OnMissing = func(locale, key, fallback string, err error) string {
		log := f.Log("feedback")
		log.Debug().Str("locale", locale).Str("key", key).Msg("missing translation")
		return fallback
	}
	return opts, nil
}

// Log returns the logger tagged with a component name.
func (f *Flags) Log(component string) zerolog.Logger {
	return logging.Component(f.Logger, component)
}
