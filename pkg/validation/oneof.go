package validation

import "strconv"

// OneOf checks option membership. Single selects must submit one of the
// option keys; multi selects (opts.Multiple) must submit a list whose every
// element is an option key.
func OneOf(value any, opts Options) Result {
	if res := Required(value, opts); !res.Valid {
		return res
	}
	if IsEmpty(value) {
		return OK()
	}

	if !opts.Multiple {
		key, ok := choiceKey(value)
		if !ok || !opts.Choices.Has(key) {
			return Fail(CodeOption, nil)
		}
		return OK()
	}

	items, ok := asList(value)
	if !ok {
		return Fail(CodeFormat, nil)
	}
	for _, item := range items {
		key, ok := choiceKey(item)
		if !ok || !opts.Choices.Has(key) {
			return Fail(CodeOption, nil)
		}
	}
	return OK()
}

// OneOfValidator exposes OneOf as a Validator.
var OneOfValidator Validator = Func(OneOf)

// choiceKey stringifies scalar submissions so numeric keys submitted as JSON
// numbers still match.
func choiceKey(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}
