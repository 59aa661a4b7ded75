package page

import (
	"strings"

	"github.com/goliatone/go-adminui/pkg/field"
	"github.com/goliatone/go-adminui/pkg/layout"
)

// Context is where a metabox is placed on its screen.
type Context string

const (
	ContextNormal   Context = "normal"
	ContextSide     Context = "side"
	ContextAdvanced Context = "advanced"
)

// Priority orders metaboxes within a context.
type Priority string

const (
	PriorityHigh    Priority = "high"
	PriorityDefault Priority = "default"
	PriorityLow     Priority = "low"
)

func validContext(c Context) bool {
	switch c {
	case ContextNormal, ContextSide, ContextAdvanced:
		return true
	}
	return false
}

func validPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityDefault, PriorityLow:
		return true
	}
	return false
}

// ParseContext reads a context name. An empty name means normal.
func ParseContext(s string) (Context, bool) {
	c := Context(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return ContextNormal, true
	}
	return c, validContext(c)
}

// ParsePriority reads a priority name. An empty name means default.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return PriorityDefault, true
	}
	return p, validPriority(p)
}

// Metabox is a titled box of fields attached to one or more screens.
type Metabox struct {
	id       string
	title    string
	context  Context
	priority Priority
	screens  []string
	content  content
}

// NewMetabox starts a metabox in the normal context with default priority.
func NewMetabox(id, title string) *Metabox {
	return &Metabox{
		id:       id,
		title:    title,
		context:  ContextNormal,
		priority: PriorityDefault,
	}
}

// Context sets where on the screen the box is placed.
func (m *Metabox) Context(c Context) *Metabox {
	m.context = c
	return m
}

// Priority sets the box order within its context.
func (m *Metabox) Priority(p Priority) *Metabox {
	m.priority = p
	return m
}

// Screens sets the screens (post types, page ids) the box appears on.
func (m *Metabox) Screens(screens ...string) *Metabox {
	m.screens = append(m.screens, screens...)
	return m
}

// Field appends loose fields.
func (m *Metabox) Field(fields ...*field.Field) *Metabox {
	m.content.addFields(fields...)
	return m
}

// Layout appends layouts.
func (m *Metabox) Layout(layouts ...layout.Layout) *Metabox {
	m.content.addLayouts(layouts...)
	return m
}

func (m *Metabox) ID() string { return m.id }
func (m *Metabox) Title() string { return m.title }
func (m *Metabox) PlacementContext() Context { return m.context }
func (m *Metabox) PlacementPriority() Priority { return m.priority }
func (m *Metabox) ScreenIDs() []string { return append([]string(nil), m.screens...) }

// Layouts returns the metabox layouts in declaration order.
func (m *Metabox) Layouts() []layout.Layout { return m.content.layouts() }

// Fields flattens loose fields and layout fields in declaration order.
func (m *Metabox) Fields() []*field.Field { return m.content.fields() }
