package feedback

import (
	"errors"
	"strings"

	"github.com/goliatone/go-adminui/pkg/validation"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// Translator is configured.
var ErrMissingTranslator = errors.New("feedback: translator not configured")

// Translator resolves a message key for a locale. Implementations may use
// args for interpolation.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate calls fn.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MapTranslator serves translations from a locale -> key -> message map.
// Messages may contain {param} placeholders.
type MapTranslator map[string]map[string]string

// Translate looks the key up for locale, then for the locale's language.
func (m MapTranslator) Translate(locale, key string, args ...any) (string, error) {
	for _, candidate := range localeCandidates(locale) {
		if msg, ok := m[candidate][key]; ok {
			return msg, nil
		}
	}
	return "", errors.New("feedback: missing translation for " + key)
}

func localeCandidates(locale string) []string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil
	}
	out := []string{locale}
	for _, sep := range []string{"_", "-"} {
		if idx := strings.Index(locale, sep); idx > 0 {
			out = append(out, locale[:idx])
			break
		}
	}
	return out
}

// MissingTranslationHandler decides the message used when translation fails.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

func missingTranslationDefault(_, _, fallback string, _ error) string {
	return fallback
}

// Options configures Map.
type Options struct {
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
	// Labels names fields in the summary notice; ids are used when absent.
	Labels map[string]string
}

// Localize returns the message for res in opts.Locale. Valid results map to
// an empty string.
func Localize(res validation.Result, opts Options) string {
	if res.Valid {
		return ""
	}
	key := res.TranslationKey()
	if key == "" {
		return res.Error
	}
	return translate(opts.Locale, key, res.Error, res.Params, opts.Translator, opts.OnMissing)
}

func translate(locale, key, fallback string, params map[string]any, t Translator, onMissing MissingTranslationHandler) string {
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	if t == nil {
		return onMissing(locale, key, fallback, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key, params)
	if err == nil && strings.TrimSpace(result) != "" {
		return validation.Interpolate(result, params)
	}
	return onMissing(locale, key, fallback, err)
}
