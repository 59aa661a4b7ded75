package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/goliatone/go-adminui/pkg/field"
)

// Built-in layout type names.
const (
	TypeTabs      = "tabs"
	TypeAccordion = "accordion"
)

// Section is one tab or accordion panel.
type Section struct {
	ID     string
	Title  string
	Fields []*field.Field
}

// Layout is a grouping component holding ordered sections.
type Layout interface {
	ID() string
	Type() string
	Sections() []Section
	AddSection(id, title string, fields ...*field.Field)
	Fields() []*field.Field
	Check() error
}

// Base implements the section bookkeeping shared by layouts. Custom layouts
// can embed it.
type Base struct {
	id       string
	typ      string
	sections []Section
}

// NewBase returns a Base with the given id and type name.
func NewBase(id, typ string) Base {
	return Base{id: id, typ: typ}
}

func (b *Base) ID() string   { return b.id }
func (b *Base) Type() string { return b.typ }

// Sections returns a copy of the sections in declaration order.
func (b *Base) Sections() []Section {
	out := make([]Section, len(b.sections))
	for i, s := range b.sections {
		s.Fields = append([]*field.Field(nil), s.Fields...)
		out[i] = s
	}
	return out
}

// AddSection appends a section.
func (b *Base) AddSection(id, title string, fields ...*field.Field) {
	b.sections = append(b.sections, Section{
		ID:     id,
		Title:  title,
		Fields: append([]*field.Field(nil), fields...),
	})
}

// Section looks up a section by id.
func (b *Base) Section(id string) (Section, bool) {
	for _, s := range b.sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Fields flattens every section's fields in order.
func (b *Base) Fields() []*field.Field {
	var out []*field.Field
	for _, s := range b.sections {
		out = append(out, s.Fields...)
	}
	return out
}

// Check reports a missing id, missing or duplicate section ids, and nil
// fields.
func (b *Base) Check() error {
	var errs criterio.FieldErrorsBuilder
	prefix := b.id
	if strings.TrimSpace(prefix) == "" {
		prefix = "layout"
		errs = errs.Append("layout.id", errors.New("id is required"))
	}

	seen := make(map[string]struct{}, len(b.sections))
	for i, s := range b.sections {
		path := fmt.Sprintf("%s.sections[%d]", prefix, i)
		if strings.TrimSpace(s.ID) == "" {
			errs = errs.Append(path+".id", errors.New("id is required"))
		} else if _, dup := seen[s.ID]; dup {
			errs = errs.Append(path+".id", fmt.Errorf("duplicate section %q", s.ID))
		}
		seen[s.ID] = struct{}{}

		for j, f := range s.Fields {
			if f == nil {
				errs = errs.Append(fmt.Sprintf("%s.fields[%d]", path, j), errors.New("field is nil"))
			}
		}
	}
	return errs.ToError()
}

// builderFrom reopens a FieldErrors error so subtypes can append to it.
func builderFrom(err error) criterio.FieldErrorsBuilder {
	var b criterio.FieldErrorsBuilder
	if err == nil {
		return b
	}
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			b = b.Append(fe.Field, fe.Err)
		}
		return b
	}
	return b.Append("layout", err)
}
