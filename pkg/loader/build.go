package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/goliatone/go-adminui/pkg/field"
	"github.com/goliatone/go-adminui/pkg/layout"
	"github.com/goliatone/go-adminui/pkg/page"
	"github.com/goliatone/go-adminui/pkg/validation"
)

// builder turns a Document into pages, collecting definition errors keyed by
// document path.
type builder struct {
	opts Options
	errs criterio.FieldErrorsBuilder

	// field ids seen on the current page, mapped to their first path
	seen map[string]string
}

func build(doc Document, opts Options) ([]*page.Page, error) {
	b := &builder{opts: opts}

	pages := make([]*page.Page, 0, len(doc.Pages))
	ids := make(map[string]struct{}, len(doc.Pages))
	for i, def := range doc.Pages {
		path := fmt.Sprintf("pages[%d]", i)
		id := strings.TrimSpace(def.ID)
		if id != "" {
			if _, dup := ids[id]; dup {
				b.fail(path+".id", fmt.Errorf("duplicate page %q", id))
			}
			ids[id] = struct{}{}
		}
		pages = append(pages, b.page(def, path))
	}

	if err := b.errs.ToError(); err != nil {
		return nil, err
	}

	// cross-cutting checks the positional pass does not cover
	for i, p := range pages {
		b.merge(fmt.Sprintf("pages[%d]", i), "", p.Check())
	}
	if err := b.errs.ToError(); err != nil {
		return nil, err
	}
	return pages, nil
}

func (b *builder) fail(path string, err error) {
	b.errs = b.errs.Append(path, err)
}

// merge re-keys criterio errors reported under an item's own id prefix onto
// the document path of that item.
func (b *builder) merge(path, prefix string, err error) {
	if err == nil {
		return
	}
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		b.fail(path, err)
		return
	}
	for _, fe := range fieldErrs {
		name := fe.Field
		if prefix != "" {
			name = strings.TrimPrefix(name, prefix+".")
		}
		b.fail(path+"."+name, fe.Err)
	}
}

func (b *builder) page(def PageDef, path string) *page.Page {
	b.seen = make(map[string]string)

	id := strings.TrimSpace(def.ID)
	if id == "" {
		b.fail(path+".id", errors.New("id is required"))
	}
	if strings.TrimSpace(def.Title) == "" {
		b.fail(path+".title", errors.New("title is required"))
	}

	p := page.New(id, def.Title)
	if def.MenuTitle != "" {
		p.MenuTitle(def.MenuTitle)
	}
	if def.Capability != "" {
		p.Capability(def.Capability)
	}
	if def.MenuSlug != "" {
		p.MenuSlug(def.MenuSlug)
	}
	if def.Parent != "" {
		p.Parent(def.Parent)
	}
	if def.Position != nil {
		p.Position(*def.Position)
	}
	if def.Icon != "" {
		p.Icon(def.Icon)
	}

	p.Field(b.fields(def.Fields, path+".fields")...)
	p.Layout(b.layouts(def.Layouts, path+".layouts")...)

	for i, boxDef := range def.Metaboxes {
		if box := b.metabox(boxDef, fmt.Sprintf("%s.metaboxes[%d]", path, i)); box != nil {
			p.Metabox(box)
		}
	}
	return p
}

func (b *builder) metabox(def MetaboxDef, path string) *page.Metabox {
	id := strings.TrimSpace(def.ID)
	if id == "" {
		b.fail(path+".id", errors.New("id is required"))
	}

	box := page.NewMetabox(id, def.Title)
	if ctx, ok := page.ParseContext(def.Context); ok {
		box.Context(ctx)
	} else {
		b.fail(path+".context", fmt.Errorf("unknown context %q", def.Context))
	}
	if prio, ok := page.ParsePriority(def.Priority); ok {
		box.Priority(prio)
	} else {
		b.fail(path+".priority", fmt.Errorf("unknown priority %q", def.Priority))
	}
	if len(def.Screens) > 0 {
		box.Screens(def.Screens...)
	}

	box.Field(b.fields(def.Fields, path+".fields")...)
	box.Layout(b.layouts(def.Layouts, path+".layouts")...)
	return box
}

func (b *builder) layouts(defs []LayoutDef, path string) []layout.Layout {
	out := make([]layout.Layout, 0, len(defs))
	for i, def := range defs {
		if l := b.layout(def, fmt.Sprintf("%s[%d]", path, i)); l != nil {
			out = append(out, l)
		}
	}
	return out
}

func (b *builder) layout(def LayoutDef, path string) layout.Layout {
	id := strings.TrimSpace(def.ID)
	typ := strings.ToLower(strings.TrimSpace(def.Type))
	if typ == "" {
		typ = layout.TypeTabs
	}

	l, err := b.opts.Layouts.New(typ, id)
	if err != nil {
		b.fail(path+".type", err)
		return nil
	}

	for i, section := range def.Sections {
		sectionPath := fmt.Sprintf("%s.sections[%d]", path, i)
		l.AddSection(strings.TrimSpace(section.ID), section.Title, b.fields(section.Fields, sectionPath+".fields")...)
	}

	switch typed := l.(type) {
	case *layout.Tabs:
		if def.Active != "" {
			typed.Active(strings.TrimSpace(def.Active))
		}
		if len(def.Open) > 0 {
			b.fail(path+".open", errors.New("open applies to accordion layouts"))
		}
	case *layout.Accordion:
		if len(def.Open) > 0 {
			typed.Open(def.Open...)
		}
		if def.Active != "" {
			b.fail(path+".active", errors.New("active applies to tabs layouts"))
		}
	}

	prefix := id
	if prefix == "" {
		prefix = "layout"
	}
	b.merge(path, prefix, l.Check())
	return l
}

func (b *builder) fields(defs []FieldDef, path string) []*field.Field {
	out := make([]*field.Field, 0, len(defs))
	for i, def := range defs {
		out = append(out, b.field(def, fmt.Sprintf("%s[%d]", path, i)))
	}
	return out
}

func (b *builder) field(def FieldDef, path string) *field.Field {
	id := strings.TrimSpace(def.ID)
	kind, _ := b.opts.Widgets.Resolve(def.descriptor())

	f := field.New(id, kind).
		Label(def.Label).
		Description(def.Description).
		Placeholder(def.Placeholder).
		Options(validation.Choices(def.Options)...).
		Required(def.Required).
		Multiple(def.Multiple)

	if def.Default != nil {
		f.Default(def.Default)
	}
	if def.Min != nil {
		f.Min(*def.Min)
	}
	if def.Max != nil {
		f.Max(*def.Max)
	}
	if def.MinLength != nil {
		f.MinLength(*def.MinLength)
	}
	if def.MaxLength != nil {
		f.MaxLength(*def.MaxLength)
	}
	if def.InputType != "" {
		f.InputType(field.InputType(strings.ToLower(strings.TrimSpace(def.InputType))))
	}
	if def.Rows > 0 {
		f.Rows(def.Rows)
	}

	prefix := id
	if prefix == "" {
		prefix = "field"
	}
	b.merge(path, prefix, f.Check())

	if id != "" {
		if first, dup := b.seen[id]; dup {
			b.fail(path+".id", fmt.Errorf("duplicate field id %q (first defined at %s)", id, first))
		} else {
			b.seen[id] = path
		}
	}
	return f
}
