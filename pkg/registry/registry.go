// Package registry keeps built pages, layouts and fields by id so an
// integrator can register them with the host admin later.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-adminui/pkg/field"
	"github.com/goliatone/go-adminui/pkg/layout"
	"github.com/goliatone/go-adminui/pkg/page"
)

// Kind names the item families stored in a Registry.
type Kind string

const (
	KindPage   Kind = "page"
	KindLayout Kind = "layout"
	KindField  Kind = "field"
)

// ErrNotFound is returned when an id is not registered for a kind.
var ErrNotFound = errors.New("registry: not found")

// Registry stores items by kind and id, providing discovery and duplication
// safeguards. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	items map[Kind]map[string]any
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{items: make(map[Kind]map[string]any)}
}

// normalizeID is applied on every write and lookup so ids differing only in
// surrounding whitespace address the same entry.
func normalizeID(id string) string {
	return strings.TrimSpace(id)
}

func (r *Registry) add(kind Kind, id string, item any) error {
	id = normalizeID(id)
	if id == "" {
		return fmt.Errorf("registry: %s id is required", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bucket, ok := r.items[kind]
	if !ok {
		bucket = make(map[string]any)
		r.items[kind] = bucket
	}
	if _, exists := bucket[id]; exists {
		return fmt.Errorf("registry: %s %q already registered", kind, id)
	}
	bucket[id] = item
	return nil
}

func (r *Registry) get(kind Kind, id string) (any, error) {
	id = normalizeID(id)

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[kind][id]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrNotFound, kind, id)
	}
	return item, nil
}

// AddPage registers a page.
func (r *Registry) AddPage(p *page.Page) error {
	if p == nil {
		return errors.New("registry: page is required")
	}
	return r.add(KindPage, p.ID(), p)
}

// AddLayout registers a layout.
func (r *Registry) AddLayout(l layout.Layout) error {
	if l == nil {
		return errors.New("registry: layout is required")
	}
	return r.add(KindLayout, l.ID(), l)
}

// AddField registers a field.
func (r *Registry) AddField(f *field.Field) error {
	if f == nil {
		return errors.New("registry: field is required")
	}
	return r.add(KindField, f.ID(), f)
}

// Register adds a page, layout or field, dispatching on its type.
func (r *Registry) Register(item any) error {
	switch v := item.(type) {
	case *page.Page:
		return r.AddPage(v)
	case *field.Field:
		return r.AddField(v)
	case layout.Layout:
		return r.AddLayout(v)
	default:
		return fmt.Errorf("registry: unsupported item %T", item)
	}
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(item any) {
	if err := r.Register(item); err != nil {
		panic(err)
	}
}

// Page retrieves a page by id.
func (r *Registry) Page(id string) (*page.Page, error) {
	item, err := r.get(KindPage, id)
	if err != nil {
		return nil, err
	}
	return item.(*page.Page), nil
}

// Layout retrieves a layout by id.
func (r *Registry) Layout(id string) (layout.Layout, error) {
	item, err := r.get(KindLayout, id)
	if err != nil {
		return nil, err
	}
	return item.(layout.Layout), nil
}

// Field retrieves a field by id.
func (r *Registry) Field(id string) (*field.Field, error) {
	item, err := r.get(KindField, id)
	if err != nil {
		return nil, err
	}
	return item.(*field.Field), nil
}

// Has reports whether id is registered for kind.
func (r *Registry) Has(kind Kind, id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[kind][normalizeID(id)]
	return ok
}

// List returns the sorted ids registered for kind.
func (r *Registry) List(kind Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.items[kind]))
	for id := range r.items[kind] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Pages returns every registered page sorted by id.
func (r *Registry) Pages() []*page.Page {
	ids := r.List(KindPage)
	out := make([]*page.Page, 0, len(ids))
	for _, id := range ids {
		if p, err := r.Page(id); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// Reset drops every item.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[Kind]map[string]any)
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
	})
	return defaultReg
}
