package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrUnknownType is returned when no factory is registered for a type.
	ErrUnknownType = errors.New("layout: unknown type")
	// ErrDuplicateType is returned when a type name is registered twice.
	ErrDuplicateType = errors.New("layout: type already registered")
)

// Factory builds an empty layout with the given id.
type Factory func(id string) Layout

// Types maps layout type names to factories. The zero value is not usable;
// call NewTypes.
type Types struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewTypes returns a registry with the tabs and accordion types registered.
func NewTypes() *Types {
	t := &Types{factories: make(map[string]Factory)}
	t.MustRegister(TypeTabs, func(id string) Layout { return NewTabs(id) })
	t.MustRegister(TypeAccordion, func(id string) Layout { return NewAccordion(id) })
	return t
}

// Register adds a factory under name.
func (t *Types) Register(name string, factory Factory) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("layout: type name is required")
	}
	if factory == nil {
		return fmt.Errorf("layout: factory for %q is nil", name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.factories[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateType, name)
	}
	t.factories[name] = factory
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (t *Types) MustRegister(name string, factory Factory) {
	if err := t.Register(name, factory); err != nil {
		panic(err)
	}
}

// New builds a layout of the named type.
func (t *Types) New(name, id string) (Layout, error) {
	t.mu.RLock()
	factory, ok := t.factories[strings.TrimSpace(name)]
	t.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	l := factory(id)
	if l == nil {
		return nil, fmt.Errorf("layout: factory for %q returned nil", name)
	}
	return l, nil
}

// Has reports whether name is registered.
func (t *Types) Has(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.factories[name]
	return ok
}

// Names returns the registered type names, sorted.
func (t *Types) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.factories))
	for name := range t.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	defaultTypesOnce sync.Once
	defaultTypes     *Types
)

// DefaultTypes returns the process-wide type registry.
func DefaultTypes() *Types {
	defaultTypesOnce.Do(func() {
		defaultTypes = NewTypes()
	})
	return defaultTypes
}
