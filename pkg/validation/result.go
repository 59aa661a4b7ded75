package validation

import (
	"sort"
	"strings"
)

// Result is the outcome of validating one value. Error is empty iff Valid.
type Result struct {
	Valid  bool           `json:"valid"`
	Error  string         `json:"error,omitempty"`
	Code   string         `json:"code,omitempty"`
	Params map[string]any `json:"params,omitempty"`
}

// OK returns a passing result.
func OK() Result {
	return Result{Valid: true}
}

// Fail returns a failing result for code using its default message.
func Fail(code string, params map[string]any) Result {
	return Result{
		Valid:  false,
		Error:  Message(code, params),
		Code:   code,
		Params: params,
	}
}

// TranslationKey returns the key used to localise the result message.
func (r Result) TranslationKey() string {
	if r.Valid || r.Code == "" {
		return ""
	}
	return "validation." + r.Code
}

// Choice is a single selectable option. Keys are opaque.
type Choice struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// Choices is an ordered option list.
type Choices []Choice

// ChoicesFromMap builds a Choices list from a key/label map, sorted by key so
// the order is deterministic.
func ChoicesFromMap(m map[string]string) Choices {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(Choices, 0, len(keys))
	for _, key := range keys {
		out = append(out, Choice{Key: key, Label: m[key]})
	}
	return out
}

// Has reports whether key matches one of the choices exactly.
func (c Choices) Has(key string) bool {
	for _, choice := range c {
		if choice.Key == key {
			return true
		}
	}
	return false
}

// Keys returns the choice keys in order.
func (c Choices) Keys() []string {
	if len(c) == 0 {
		return nil
	}
	out := make([]string, 0, len(c))
	for _, choice := range c {
		out = append(out, choice.Key)
	}
	return out
}

// Label returns the label for key, falling back to the key itself.
func (c Choices) Label(key string) string {
	for _, choice := range c {
		if choice.Key == key {
			if strings.TrimSpace(choice.Label) != "" {
				return choice.Label
			}
			return key
		}
	}
	return key
}

// Options configures a validator run. Nil bounds are not enforced.
type Options struct {
	Required  bool
	Min       *float64
	Max       *float64
	MinLength *int
	MaxLength *int
	Multiple  bool
	Choices   Choices
}

// Validator judges a value.
type Validator interface {
	Validate(value any, opts Options) Result
}

// Func adapts a plain function into a Validator.
type Func func(value any, opts Options) Result

// Validate calls fn.
func (fn Func) Validate(value any, opts Options) Result {
	if fn == nil {
		return OK()
	}
	return fn(value, opts)
}

// Chain runs validators in order and returns the first failing result. Nil
// entries are skipped.
func Chain(validators ...Validator) Validator {
	return Func(func(value any, opts Options) Result {
		for _, v := range validators {
			if v == nil {
				continue
			}
			if res := v.Validate(value, opts); !res.Valid {
				return res
			}
		}
		return OK()
	})
}
