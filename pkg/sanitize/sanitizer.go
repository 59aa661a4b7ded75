package sanitize

// Sanitizer cleans a raw value.
type Sanitizer interface {
	Sanitize(value any) any
}

// Func adapts a plain function into a Sanitizer.
type Func func(value any) any

// Sanitize calls fn.
func (fn Func) Sanitize(value any) any {
	if fn == nil {
		return value
	}
	return fn(value)
}

// None returns values untouched.
var None Sanitizer = Func(func(value any) any { return value })

// Apply runs value through every sanitizer in order. Nil entries are skipped.
func Apply(value any, sanitizers ...Sanitizer) any {
	result := value
	for _, s := range sanitizers {
		if s == nil {
			continue
		}
		result = s.Sanitize(result)
	}
	return result
}

// Compose builds a reusable pipeline out of sanitizers.
func Compose(sanitizers ...Sanitizer) Sanitizer {
	return Func(func(value any) any {
		return Apply(value, sanitizers...)
	})
}

// Strings lifts a string transform into a Sanitizer. Non-string values pass
// through unchanged.
func Strings(fn func(string) string) Sanitizer {
	return Func(func(value any) any {
		if s, ok := value.(string); ok && fn != nil {
			return fn(s)
		}
		return value
	})
}
