package widgets

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-adminui/pkg/field"
)

// Descriptor is the shape-level view of a field definition the registry
// inspects when a definition does not name its kind.
type Descriptor struct {
	ID string
	// Hint is an explicit kind (the definition's "type"); it always wins.
	Hint       string
	Default    any
	HasChoices bool
	Multiple   bool
	Rows       int
	InputType  string
}

// Matcher decides whether a kind should handle the supplied descriptor.
type Matcher func(desc Descriptor) bool

type rule struct {
	kind     field.Kind
	priority int
	match    Matcher
	order    int
}

// Registry selects field kinds for definitions based on explicit hints or
// registered matchers. Higher priority wins; ties fall back to registration
// order. When nothing matches, Resolve falls back to text.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher for kind with the provided priority. Empty kinds
// and nil matchers are ignored.
func (r *Registry) Register(kind field.Kind, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := field.Kind(strings.TrimSpace(string(kind)))
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		kind:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the kind for desc and whether it came from a hint or a
// matcher. Unmatched descriptors resolve to text with ok=false.
func (r *Registry) Resolve(desc Descriptor) (field.Kind, bool) {
	if hint := strings.ToLower(strings.TrimSpace(desc.Hint)); hint != "" {
		return field.Kind(hint), true
	}
	if r == nil {
		return field.KindText, false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(desc) {
			return entry.kind, true
		}
	}
	return field.KindText, false
}

var hexDefault = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func (r *Registry) registerBuiltins() {
	r.Register(field.KindToggle, 90, func(desc Descriptor) bool {
		_, ok := desc.Default.(bool)
		return ok && !desc.HasChoices
	})

	r.Register(field.KindCheckbox, 80, func(desc Descriptor) bool {
		return desc.HasChoices && desc.Multiple
	})

	r.Register(field.KindSelect, 70, func(desc Descriptor) bool {
		return desc.HasChoices
	})

	r.Register(field.KindColor, 60, func(desc Descriptor) bool {
		s, ok := desc.Default.(string)
		return ok && hexDefault.MatchString(strings.TrimSpace(s))
	})

	r.Register(field.KindTextArea, 50, func(desc Descriptor) bool {
		return desc.Rows > 0
	})
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared registry with built-in matchers.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
	})
	return defaultReg
}
