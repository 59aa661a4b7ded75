package sanitize

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy

	whitespaceRun = regexp.MustCompile(`\s+`)
	blankRun      = regexp.MustCompile(`[ \t\f\v]+`)
)

func strictPolicy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// StripMarkup removes every HTML element (and the contents of script/style
// elements) and decodes entities, returning plain text.
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}
	cleaned := strictPolicy().Sanitize(s)
	return html.UnescapeString(cleaned)
}

// CleanText turns s into a single line of plain text: markup stripped,
// control characters dropped, whitespace runs collapsed and trimmed.
func CleanText(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = StripMarkup(s)
	s = removeControl(s, false)
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CleanMultiline is CleanText for multi-line input: line breaks survive,
// runs of blanks inside a line collapse to one space.
func CleanMultiline(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = StripMarkup(s)
	s = removeControl(s, true)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(blankRun.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func removeControl(s string, keepNewlines bool) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' && keepNewlines {
			return r
		}
		if r == '\t' || r == '\n' || r == '\r' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// scalarString renders scalars as text. Lists are reported as not scalar.
func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case bool:
		if v {
			return "1", true
		}
		return "", true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// Text sanitizes single-line text input. Lists and other non-scalars are
// returned as-is so validators can reject their shape.
var Text Sanitizer = Func(func(value any) any {
	s, ok := scalarString(value)
	if !ok {
		return value
	}
	return CleanText(s)
})

// TextArea sanitizes multi-line text input.
var TextArea Sanitizer = Func(func(value any) any {
	s, ok := scalarString(value)
	if !ok {
		return value
	}
	return CleanMultiline(s)
})

// CleanKey trims surrounding whitespace from an option key. Keys are opaque,
// so nothing inside them is touched.
func CleanKey(s string) string {
	return strings.TrimSpace(s)
}

// Key sanitizes a single option key. Numbers are formatted so they can match
// numeric keys; lists are returned as-is.
var Key Sanitizer = Func(func(value any) any {
	s, ok := scalarString(value)
	if !ok {
		return value
	}
	return CleanKey(s)
})

// Keys sanitizes a list of option keys into []string. Scalars are left
// untouched so a multi-select validator can report a format error; nil
// becomes an empty list.
var Keys Sanitizer = Func(func(value any) any {
	if value == nil {
		return []string{}
	}
	switch v := value.(type) {
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, CleanKey(item))
		}
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := scalarString(item)
			if !ok {
				return value
			}
			out = append(out, CleanKey(s))
		}
		return out
	default:
		return value
	}
})
