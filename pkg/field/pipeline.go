package field

import (
	"github.com/goliatone/go-adminui/pkg/sanitize"
	"github.com/goliatone/go-adminui/pkg/validation"
)

// Sanitizer returns the sanitizer in effect: the one set with WithSanitizer
// or the kind's default.
func (f *Field) Sanitizer() sanitize.Sanitizer {
	if f.sanitizer != nil {
		return f.sanitizer
	}
	return defaultSanitizer(f)
}

// Validator returns the validator in effect: the one set with WithValidator
// or the kind's default.
func (f *Field) Validator() validation.Validator {
	if f.validator != nil {
		return f.validator
	}
	return defaultValidator(f)
}

// ValidationOptions derives validator options from the configuration.
func (f *Field) ValidationOptions() validation.Options {
	return validation.Options{
		Required:  f.cfg.Required,
		Min:       f.cfg.Min,
		Max:       f.cfg.Max,
		MinLength: f.cfg.MinLength,
		MaxLength: f.cfg.MaxLength,
		Multiple:  f.IsGroup(),
		Choices:   f.cfg.Choices,
	}
}

// Sanitize cleans raw without touching field state.
func (f *Field) Sanitize(raw any) any {
	return f.Sanitizer().Sanitize(raw)
}

// Validate judges an already sanitized value without touching field state.
func (f *Field) Validate(value any) validation.Result {
	return f.Validator().Validate(value, f.ValidationOptions())
}

// Process runs raw through the sanitizer then the validator, keeping the
// sanitized value and the result on the field.
func (f *Field) Process(raw any) validation.Result {
	f.value = f.Sanitize(raw)
	f.state = StateSanitized

	f.result = f.Validate(f.value)
	if f.result.Valid {
		f.state = StateValid
	} else {
		f.state = StateInvalid
	}
	return f.result
}

// Reset returns the field to its pristine state.
func (f *Field) Reset() {
	f.state = StatePristine
	f.value = nil
	f.result = validation.OK()
}

// State reports the pipeline state.
func (f *Field) State() State { return f.state }

// Value returns the last sanitized value, or the default while pristine.
func (f *Field) Value() any {
	if f.state == StatePristine {
		return f.cfg.Default
	}
	return f.value
}

// Result returns the last validation result. Pristine fields report valid.
func (f *Field) Result() validation.Result { return f.result }

func defaultSanitizer(f *Field) sanitize.Sanitizer {
	switch f.cfg.Kind {
	case KindTextArea:
		return sanitize.TextArea
	case KindToggle:
		return sanitize.Bool
	case KindSelect:
		if f.IsGroup() {
			return sanitize.Keys
		}
		return sanitize.Key
	case KindCheckbox:
		if f.IsGroup() {
			return sanitize.Keys
		}
		return sanitize.Bool
	case KindColor:
		return sanitize.Color
	}

	switch f.cfg.InputType {
	case InputNumber:
		return sanitize.Number
	case InputEmail:
		return sanitize.Email
	case InputPassword:
		return sanitize.None
	default:
		return sanitize.Text
	}
}

func defaultValidator(f *Field) validation.Validator {
	switch f.cfg.Kind {
	case KindTextArea:
		return validation.Chain(validation.RequiredValidator, validation.LengthValidator)
	case KindToggle:
		return validation.RequiredValidator
	case KindSelect:
		return validation.OneOfValidator
	case KindCheckbox:
		if f.IsGroup() {
			return validation.OneOfValidator
		}
		return validation.AcceptedValidator
	case KindColor:
		return validation.ColorValidator
	}

	switch f.cfg.InputType {
	case InputNumber:
		return validation.NumericValidator
	case InputEmail:
		return validation.Chain(validation.EmailValidator, validation.LengthValidator)
	case InputURL:
		return validation.Chain(validation.URLValidator, validation.LengthValidator)
	default:
		return validation.Chain(validation.RequiredValidator, validation.LengthValidator)
	}
}
