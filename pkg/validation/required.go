package validation

// Required fails when opts.Required is set and value is empty. It is the
// first step of every composite validator in this package.
func Required(value any, opts Options) Result {
	if opts.Required && IsEmpty(value) {
		return Fail(CodeRequired, nil)
	}
	return OK()
}

// RequiredValidator exposes Required as a Validator.
var RequiredValidator Validator = Func(Required)

// Accepted is the required check for a single checkbox, where an unchecked
// box arrives as false. With opts.Required set only true passes.
func Accepted(value any, opts Options) Result {
	if !opts.Required {
		return OK()
	}
	if checked, ok := value.(bool); ok && checked {
		return OK()
	}
	return Fail(CodeRequired, nil)
}

// AcceptedValidator exposes Accepted as a Validator.
var AcceptedValidator Validator = Func(Accepted)
