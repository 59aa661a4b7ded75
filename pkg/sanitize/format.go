package sanitize

import (
	"strings"

	"github.com/goliatone/go-adminui/pkg/validation"
)

// Email trims and strips markup, lowercasing the domain part. Local parts are
// case-sensitive and kept.
var Email Sanitizer = Func(func(value any) any {
	s, ok := scalarString(value)
	if !ok {
		return value
	}
	s = CleanText(s)
	s = strings.ReplaceAll(s, " ", "")
	at := strings.LastIndex(s, "@")
	if at < 0 {
		return s
	}
	return s[:at] + "@" + strings.ToLower(s[at+1:])
})

// Number trims numeric strings and passes numbers through. Anything else is
// turned into text so the numeric validator can reject it.
var Number Sanitizer = Func(func(value any) any {
	switch v := value.(type) {
	case string:
		return CleanText(v)
	case nil:
		return ""
	}
	if _, ok := validation.ToFloat(value); ok {
		return value
	}
	if s, ok := scalarString(value); ok {
		return CleanText(s)
	}
	return value
})

// Bool maps checkbox/toggle submissions to a bool. "1", "true", "on", "yes"
// (any case) and non-zero numbers are true; everything else is false.
var Bool Sanitizer = Func(func(value any) any {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "on", "yes":
			return true
		}
		return false
	}
	if f, ok := validation.ToFloat(value); ok {
		return f != 0
	}
	return false
})

// Color keeps #rgb/#rrggbb colors (lowercased) and empties anything else.
var Color Sanitizer = Func(func(value any) any {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	if !validation.IsHexColor(s) {
		return ""
	}
	return strings.ToLower(s)
})
