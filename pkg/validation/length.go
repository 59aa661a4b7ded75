package validation

import "unicode/utf8"

// Length enforces MinLength/MaxLength on string values, counted in runes.
// Empty values and non-strings are left to the other validators.
func Length(value any, opts Options) Result {
	if opts.MinLength == nil && opts.MaxLength == nil {
		return OK()
	}
	s, ok := value.(string)
	if !ok || s == "" {
		return OK()
	}

	n := utf8.RuneCountInString(s)
	if opts.MinLength != nil && n < *opts.MinLength {
		return Fail(CodeMinLength, map[string]any{"min": *opts.MinLength})
	}
	if opts.MaxLength != nil && n > *opts.MaxLength {
		return Fail(CodeMaxLength, map[string]any{"max": *opts.MaxLength})
	}
	return OK()
}

// LengthValidator exposes Length as a Validator.
var LengthValidator Validator = Func(Length)
