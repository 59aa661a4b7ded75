package page

import (
	"github.com/goliatone/go-adminui/pkg/field"
	"github.com/goliatone/go-adminui/pkg/layout"
	"github.com/goliatone/go-adminui/pkg/sanitize"
)

// DefaultCapability is the capability required when none is set.
const DefaultCapability = "manage_options"

// Page is an admin screen holding fields, layouts and metaboxes.
type Page struct {
	id         string
	title      string
	menuTitle  string
	capability string
	menuSlug   string
	parent     string
	position   *int
	icon       string
	content    content
	metaboxes  []*Metabox
}

// New starts a page. The menu slug defaults to the id.
func New(id, title string) *Page {
	return &Page{
		id:         id,
		title:      title,
		capability: DefaultCapability,
		menuSlug:   id,
	}
}

// MenuTitle sets the menu label when it differs from the page title.
func (p *Page) MenuTitle(title string) *Page {
	p.menuTitle = title
	return p
}

// Capability sets the capability required to see the page.
func (p *Page) Capability(capability string) *Page {
	p.capability = capability
	return p
}

// MenuSlug overrides the slug, which defaults to the id.
func (p *Page) MenuSlug(slug string) *Page {
	p.menuSlug = slug
	return p
}

// Parent makes the page a submenu of the given parent slug.
func (p *Page) Parent(slug string) *Page {
	p.parent = slug
	return p
}

// Position sets the menu position.
func (p *Page) Position(position int) *Page {
	p.position = &position
	return p
}

// Icon sets the menu icon. Unsupported or unsafe values are dropped; see
// sanitize.Icon for the accepted forms.
func (p *Page) Icon(icon string) *Page {
	p.icon = sanitize.Icon(icon)
	return p
}

// Field appends loose fields.
func (p *Page) Field(fields ...*field.Field) *Page {
	p.content.addFields(fields...)
	return p
}

// Layout appends layouts.
func (p *Page) Layout(layouts ...layout.Layout) *Page {
	p.content.addLayouts(layouts...)
	return p
}

// Metabox appends metaboxes.
func (p *Page) Metabox(boxes ...*Metabox) *Page {
	p.metaboxes = append(p.metaboxes, boxes...)
	return p
}

func (p *Page) ID() string { return p.id }
func (p *Page) Title() string { return p.title }
func (p *Page) CapabilityName() string { return p.capability }
func (p *Page) Slug() string { return p.menuSlug }
func (p *Page) ParentSlug() string { return p.parent }
func (p *Page) IconName() string { return p.icon }
func (p *Page) IsSubmenu() bool { return p.parent != "" }
func (p *Page) Layouts() []layout.Layout { return p.content.layouts() }
func (p *Page) Metaboxes() []*Metabox { return append([]*Metabox(nil), p.metaboxes...) }

// MenuLabel returns the menu title, falling back to the page title.
func (p *Page) MenuLabel() string {
	if p.menuTitle != "" {
		return p.menuTitle
	}
	return p.title
}

// MenuPosition returns the menu position, if set.
func (p *Page) MenuPosition() (int, bool) {
	if p.position == nil {
		return 0, false
	}
	return *p.position, true
}

// Fields flattens every field on the page: loose fields and layouts in
// declaration order, then metaboxes.
func (p *Page) Fields() []*field.Field {
	out := p.content.fields()
	for _, m := range p.metaboxes {
		out = append(out, m.Fields()...)
	}
	return out
}

// FieldByID finds a field anywhere on the page.
func (p *Page) FieldByID(id string) (*field.Field, bool) {
	for _, f := range p.Fields() {
		if f.ID() == id {
			return f, true
		}
	}
	return nil, false
}
