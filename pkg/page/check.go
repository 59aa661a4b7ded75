package page

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// Check validates the page configuration: ids, metabox placement, every
// field and layout, and uniqueness of field ids across the whole page.
func (p *Page) Check() error {
	var errs criterio.FieldErrorsBuilder
	if strings.TrimSpace(p.id) == "" {
		errs = errs.Append("page.id", errors.New("id is required"))
	}
	if strings.TrimSpace(p.menuSlug) == "" {
		errs = errs.Append(p.id+".menu_slug", errors.New("menu slug is required"))
	}

	errs = p.content.check(p.id+".content", errs)
	for _, l := range p.Layouts() {
		errs = appendErr(errs, p.id+".layouts."+l.ID(), l.Check())
	}

	boxes := make(map[string]struct{}, len(p.metaboxes))
	for i, m := range p.metaboxes {
		path := fmt.Sprintf("%s.metaboxes[%d]", p.id, i)
		if strings.TrimSpace(m.id) == "" {
			errs = errs.Append(path+".id", errors.New("id is required"))
		} else if _, dup := boxes[m.id]; dup {
			errs = errs.Append(path+".id", fmt.Errorf("duplicate metabox %q", m.id))
		}
		boxes[m.id] = struct{}{}

		if !validContext(m.context) {
			errs = errs.Append(path+".context", fmt.Errorf("unknown context %q", m.context))
		}
		if !validPriority(m.priority) {
			errs = errs.Append(path+".priority", fmt.Errorf("unknown priority %q", m.priority))
		}
		errs = m.content.check(path+".content", errs)
		for _, l := range m.Layouts() {
			errs = appendErr(errs, path+".layouts."+l.ID(), l.Check())
		}
	}

	seen := make(map[string]struct{})
	for _, f := range p.Fields() {
		errs = appendErr(errs, p.id+".fields", f.Check())
		if f.ID() == "" {
			continue
		}
		if _, dup := seen[f.ID()]; dup {
			errs = errs.Append(p.id+".fields."+f.ID(), fmt.Errorf("duplicate field id %q", f.ID()))
		}
		seen[f.ID()] = struct{}{}
	}

	return errs.ToError()
}

// appendErr merges nested criterio errors under prefix.
func appendErr(b criterio.FieldErrorsBuilder, prefix string, err error) criterio.FieldErrorsBuilder {
	if err == nil {
		return b
	}
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			b = b.Append(prefix+"."+fe.Field, fe.Err)
		}
		return b
	}
	return b.Append(prefix, err)
}
