package validation

import "regexp"

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether s is a #rgb or #rrggbb color.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// Color checks that a non-empty value is a hex color.
func Color(value any, opts Options) Result {
	if res := Required(value, opts); !res.Valid {
		return res
	}
	if IsEmpty(value) {
		return OK()
	}
	s, ok := value.(string)
	if !ok || !IsHexColor(s) {
		return Fail(CodeColor, nil)
	}
	return OK()
}

// ColorValidator exposes Color as a Validator.
var ColorValidator Validator = Func(Color)
