package field

import (
	"github.com/goliatone/go-adminui/pkg/sanitize"
	"github.com/goliatone/go-adminui/pkg/validation"
)

// Config is the declarative part of a field.
type Config struct {
	ID          string             `json:"id"`
	Kind        Kind               `json:"kind"`
	Label       string             `json:"label,omitempty"`
	Description string             `json:"description,omitempty"`
	Placeholder string             `json:"placeholder,omitempty"`
	Default     any                `json:"default,omitempty"`
	Choices     validation.Choices `json:"choices,omitempty"`
	Required    bool               `json:"required"`
	Min         *float64           `json:"min,omitempty"`
	Max         *float64           `json:"max,omitempty"`
	MinLength   *int               `json:"minLength,omitempty"`
	MaxLength   *int               `json:"maxLength,omitempty"`
	Multiple    bool               `json:"multiple,omitempty"`
	InputType   InputType          `json:"inputType,omitempty"`
	Rows        int                `json:"rows,omitempty"`
}

// Field is a configured input plus its pipeline state.
type Field struct {
	cfg       Config
	sanitizer sanitize.Sanitizer
	validator validation.Validator

	state  State
	value  any
	result validation.Result
}

func newField(id string, kind Kind) *Field {
	return &Field{
		cfg:    Config{ID: id, Kind: kind},
		result: validation.OK(),
	}
}

// New builds a field of the given kind. Builders such as TextInput are
// shorthands for New.
func New(id string, kind Kind) *Field {
	f := newField(id, kind)
	switch kind {
	case KindText:
		f.cfg.InputType = InputText
	case KindTextArea:
		f.cfg.Rows = 5
	case KindToggle:
		f.cfg.Default = false
	}
	return f
}

// TextInput starts a single-line text field.
func TextInput(id string) *Field { return New(id, KindText) }

// TextArea starts a multi-line text field.
func TextArea(id string) *Field { return New(id, KindTextArea) }

// Toggle starts an on/off switch.
func Toggle(id string) *Field { return New(id, KindToggle) }

// Select starts a drop-down. Call Multiple(true) for a multi-select.
func Select(id string) *Field { return New(id, KindSelect) }

// Checkbox starts a checkbox. Without options it is a single on/off box;
// with options it is a checkbox group submitting a list of keys.
func Checkbox(id string) *Field { return New(id, KindCheckbox) }

// Color starts a hex color picker.
func Color(id string) *Field { return New(id, KindColor) }

// Label sets the text shown next to the input and used in feedback.
func (f *Field) Label(label string) *Field {
	f.cfg.Label = label
	return f
}

// Description sets help text shown below the input.
func (f *Field) Description(desc string) *Field {
	f.cfg.Description = desc
	return f
}

// Placeholder sets the hint shown in an empty input.
func (f *Field) Placeholder(placeholder string) *Field {
	f.cfg.Placeholder = placeholder
	return f
}

// Default sets the value a pristine or reset field holds.
func (f *Field) Default(value any) *Field {
	f.cfg.Default = value
	return f
}

// Options appends choices.
func (f *Field) Options(choices ...validation.Choice) *Field {
	f.cfg.Choices = append(f.cfg.Choices, choices...)
	return f
}

// OptionsMap appends choices from a key/label map, sorted by key.
func (f *Field) OptionsMap(m map[string]string) *Field {
	f.cfg.Choices = append(f.cfg.Choices, validation.ChoicesFromMap(m)...)
	return f
}

// Required makes an empty submission fail with the required code.
func (f *Field) Required(required bool) *Field {
	f.cfg.Required = required
	return f
}

// Min sets the inclusive lower bound for number inputs.
func (f *Field) Min(min float64) *Field {
	f.cfg.Min = &min
	return f
}

// Max sets the inclusive upper bound for number inputs.
func (f *Field) Max(max float64) *Field {
	f.cfg.Max = &max
	return f
}

// MinLength sets the minimum length in runes for text values.
func (f *Field) MinLength(n int) *Field {
	f.cfg.MinLength = &n
	return f
}

// MaxLength sets the maximum length in runes for text values.
func (f *Field) MaxLength(n int) *Field {
	f.cfg.MaxLength = &n
	return f
}

// Multiple turns a select into a multi-select submitting a list of keys.
func (f *Field) Multiple(multiple bool) *Field {
	f.cfg.Multiple = multiple
	return f
}

// InputType refines a text input. It also selects the default
// sanitizer/validator pair.
func (f *Field) InputType(t InputType) *Field {
	f.cfg.InputType = t
	return f
}

// Rows sets the visible height of a textarea.
func (f *Field) Rows(rows int) *Field {
	f.cfg.Rows = rows
	return f
}

// WithSanitizer replaces the kind's default sanitizer.
func (f *Field) WithSanitizer(s sanitize.Sanitizer) *Field {
	f.sanitizer = s
	return f
}

// WithValidator replaces the kind's default validator.
func (f *Field) WithValidator(v validation.Validator) *Field {
	f.validator = v
	return f
}

// ID returns the field identifier.
func (f *Field) ID() string { return f.cfg.ID }

// Kind returns the field kind.
func (f *Field) Kind() Kind { return f.cfg.Kind }

// Config returns a copy of the field configuration.
func (f *Field) Config() Config {
	cfg := f.cfg
	cfg.Choices = append(validation.Choices(nil), f.cfg.Choices...)
	return cfg
}

// IsGroup reports whether the field submits a list of keys.
func (f *Field) IsGroup() bool {
	switch f.cfg.Kind {
	case KindSelect:
		return f.cfg.Multiple
	case KindCheckbox:
		return len(f.cfg.Choices) > 0
	}
	return false
}
