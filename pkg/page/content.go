package page

import (
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/goliatone/go-adminui/pkg/field"
	"github.com/goliatone/go-adminui/pkg/layout"
)

// item is one declared child: either a field or a layout.
type item struct {
	field    *field.Field
	layout   layout.Layout
	isLayout bool
}

// content keeps fields and layouts interleaved in declaration order.
type content struct {
	items []item
}

func (c *content) addFields(fields ...*field.Field) {
	for _, f := range fields {
		c.items = append(c.items, item{field: f})
	}
}

func (c *content) addLayouts(layouts ...layout.Layout) {
	for _, l := range layouts {
		c.items = append(c.items, item{layout: l, isLayout: true})
	}
}

func (c *content) layouts() []layout.Layout {
	var out []layout.Layout
	for _, it := range c.items {
		if it.layout != nil {
			out = append(out, it.layout)
		}
	}
	return out
}

// fields flattens declared fields and layout sections. Nil entries are
// skipped here and reported by check.
func (c *content) fields() []*field.Field {
	var out []*field.Field
	for _, it := range c.items {
		switch {
		case it.field != nil:
			out = append(out, it.field)
		case it.layout != nil:
			for _, f := range it.layout.Fields() {
				if f != nil {
					out = append(out, f)
				}
			}
		}
	}
	return out
}

// check reports nil fields and layouts handed to the builders.
func (c *content) check(path string, errs criterio.FieldErrorsBuilder) criterio.FieldErrorsBuilder {
	for i, it := range c.items {
		at := fmt.Sprintf("%s[%d]", path, i)
		switch {
		case it.isLayout && it.layout == nil:
			errs = errs.Append(at, errors.New("layout is nil"))
		case !it.isLayout && it.field == nil:
			errs = errs.Append(at, errors.New("field is nil"))
		}
	}
	return errs
}
