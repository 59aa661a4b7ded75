package layout

import (
	"fmt"

	"github.com/goliatone/go-adminui/pkg/field"
)

// Accordion stacks collapsible panels.
type Accordion struct {
	Base
	open []string
}

// NewAccordion starts an accordion layout.
func NewAccordion(id string) *Accordion {
	return &Accordion{Base: NewBase(id, TypeAccordion)}
}

// Panel appends a panel.
func (a *Accordion) Panel(id, title string, fields ...*field.Field) *Accordion {
	a.AddSection(id, title, fields...)
	return a
}

// Open marks panels expanded by default.
func (a *Accordion) Open(ids ...string) *Accordion {
	a.open = append(a.open, ids...)
	return a
}

// OpenPanels returns the ids of panels expanded by default.
func (a *Accordion) OpenPanels() []string {
	return append([]string(nil), a.open...)
}

// Check extends Base.Check with the open panel references.
func (a *Accordion) Check() error {
	errs := builderFrom(a.Base.Check())
	for i, id := range a.open {
		if _, ok := a.Section(id); !ok {
			errs = errs.Append(fmt.Sprintf("%s.open[%d]", a.id, i), fmt.Errorf("unknown panel %q", id))
		}
	}
	return errs.ToError()
}
