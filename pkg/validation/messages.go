package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// Failure codes reported in Result.Code.
const (
	CodeRequired  = "required"
	CodeNumeric   = "numeric"
	CodeMin       = "min"
	CodeMax       = "max"
	CodeEmail     = "email"
	CodeOption    = "option"
	CodeFormat    = "format"
	CodeColor     = "color"
	CodeURL       = "url"
	CodeMinLength = "minlength"
	CodeMaxLength = "maxlength"
)

var defaultMessages = map[string]string{
	CodeRequired:  "This field is required.",
	CodeNumeric:   "Please enter a valid number.",
	CodeMin:       "Value must be at least {min}.",
	CodeMax:       "Value must be no more than {max}.",
	CodeEmail:     "Please enter a valid email address.",
	CodeOption:    "Invalid option selected.",
	CodeFormat:    "Invalid format.",
	CodeColor:     "Please enter a valid hex color.",
	CodeURL:       "Please enter a valid URL.",
	CodeMinLength: "Value must be at least {min} characters long.",
	CodeMaxLength: "Value must be no more than {max} characters long.",
}

// Message returns the default English message for code with {param}
// placeholders replaced. Unknown codes fall back to a generic message.
func Message(code string, params map[string]any) string {
	tmpl, ok := defaultMessages[code]
	if !ok {
		tmpl = "Invalid value."
	}
	return Interpolate(tmpl, params)
}

// Interpolate replaces {name} placeholders in tmpl with params values.
func Interpolate(tmpl string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(params)*2)
	for key, value := range params {
		pairs = append(pairs, "{"+key+"}", formatParam(value))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

func formatParam(value any) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
