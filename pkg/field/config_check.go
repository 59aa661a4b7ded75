package field

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// Check reports configuration mistakes: a missing id, an unknown kind or input
// type, selects and multi-selects without options, duplicate option keys, and
// inverted bounds. Field paths in the returned criterio.FieldErrors are
// prefixed with the field id.
func (f *Field) Check() error {
	var errs criterio.FieldErrorsBuilder
	prefix := f.cfg.ID
	if strings.TrimSpace(prefix) == "" {
		prefix = "field"
		errs = errs.Append("field.id", errors.New("id is required"))
	}

	if _, ok := ParseKind(string(f.cfg.Kind)); !ok {
		errs = errs.Append(prefix+".kind", fmt.Errorf("unknown kind %q", f.cfg.Kind))
	}
	if f.cfg.Kind == KindText {
		if _, ok := ParseInputType(string(f.cfg.InputType)); !ok {
			errs = errs.Append(prefix+".input_type", fmt.Errorf("unknown input type %q", f.cfg.InputType))
		}
	}

	if f.cfg.Kind == KindSelect && len(f.cfg.Choices) == 0 {
		errs = errs.Append(prefix+".options", errors.New("select requires at least one option"))
	}
	if f.cfg.Multiple && f.cfg.Kind != KindSelect && f.cfg.Kind != KindCheckbox {
		errs = errs.Append(prefix+".multiple", fmt.Errorf("multiple is not supported by %s fields", f.cfg.Kind))
	}

	seen := make(map[string]struct{}, len(f.cfg.Choices))
	for i, choice := range f.cfg.Choices {
		if _, dup := seen[choice.Key]; dup {
			errs = errs.Append(fmt.Sprintf("%s.options[%d]", prefix, i), fmt.Errorf("duplicate option key %q", choice.Key))
			continue
		}
		seen[choice.Key] = struct{}{}
	}

	if f.cfg.Min != nil && f.cfg.Max != nil && *f.cfg.Min > *f.cfg.Max {
		errs = errs.Append(prefix+".min", fmt.Errorf("min %v is greater than max %v", *f.cfg.Min, *f.cfg.Max))
	}
	if f.cfg.MinLength != nil && f.cfg.MaxLength != nil && *f.cfg.MinLength > *f.cfg.MaxLength {
		errs = errs.Append(prefix+".min_length", fmt.Errorf("min_length %d is greater than max_length %d", *f.cfg.MinLength, *f.cfg.MaxLength))
	}

	return errs.ToError()
}
