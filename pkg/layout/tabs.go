package layout

import (
	"fmt"

	"github.com/goliatone/go-adminui/pkg/field"
)

// Tabs shows one section at a time, selected by tab.
type Tabs struct {
	Base
	active string
}

// NewTabs starts a tabbed layout.
func NewTabs(id string) *Tabs {
	return &Tabs{Base: NewBase(id, TypeTabs)}
}

// Tab appends a tab.
func (t *Tabs) Tab(id, title string, fields ...*field.Field) *Tabs {
	t.AddSection(id, title, fields...)
	return t
}

// Active selects the tab shown first.
func (t *Tabs) Active(id string) *Tabs {
	t.active = id
	return t
}

// ActiveTab returns the selected tab id, defaulting to the first tab.
func (t *Tabs) ActiveTab() string {
	if t.active != "" {
		return t.active
	}
	if len(t.sections) > 0 {
		return t.sections[0].ID
	}
	return ""
}

// Check extends Base.Check with the active tab reference.
func (t *Tabs) Check() error {
	errs := builderFrom(t.Base.Check())
	if t.active != "" {
		if _, ok := t.Section(t.active); !ok {
			errs = errs.Append(t.id+".active", fmt.Errorf("unknown tab %q", t.active))
		}
	}
	return errs.ToError()
}
