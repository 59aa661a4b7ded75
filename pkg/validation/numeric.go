package validation

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Numeric checks that a non-empty value is a number within the optional
// inclusive Min/Max bounds.
func Numeric(value any, opts Options) Result {
	if res := Required(value, opts); !res.Valid {
		return res
	}
	if IsEmpty(value) {
		return OK()
	}

	number, ok := ToFloat(value)
	if !ok {
		return Fail(CodeNumeric, nil)
	}
	if opts.Min != nil && number < *opts.Min {
		return Fail(CodeMin, map[string]any{"min": *opts.Min})
	}
	if opts.Max != nil && number > *opts.Max {
		return Fail(CodeMax, map[string]any{"max": *opts.Max})
	}
	return OK()
}

// NumericValidator exposes Numeric as a Validator.
var NumericValidator Validator = Func(Numeric)

// ToFloat converts numeric values and numeric strings to float64. Strings may
// carry surrounding whitespace, a sign, a fraction and an exponent; booleans,
// lists and anything else are rejected.
func ToFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		trimmed := strings.TrimSpace(v)
		if !numericPattern.MatchString(trimmed) {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
