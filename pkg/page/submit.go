package page

import (
	"sort"

	"github.com/goliatone/go-adminui/pkg/validation"
)

// Submission is the outcome of applying submitted values to a page.
type Submission struct {
	PageID  string                       `json:"page"`
	Values  map[string]any               `json:"values"`
	Results map[string]validation.Result `json:"results"`
	// Order lists field ids in page order.
	Order []string `json:"order"`
}

// Valid reports whether every field passed.
func (s Submission) Valid() bool {
	for _, res := range s.Results {
		if !res.Valid {
			return false
		}
	}
	return true
}

// Errors maps invalid field ids to their messages.
func (s Submission) Errors() map[string]string {
	out := make(map[string]string)
	for id, res := range s.Results {
		if !res.Valid {
			out[id] = res.Error
		}
	}
	return out
}

// Invalid returns the ids of failing fields in page order.
func (s Submission) Invalid() []string {
	var out []string
	for _, id := range s.Order {
		if res, ok := s.Results[id]; ok && !res.Valid {
			out = append(out, id)
		}
	}
	return out
}

// Unknown returns submitted keys that match no field on the page, sorted.
func (p *Page) Unknown(values map[string]any) []string {
	known := make(map[string]struct{})
	for _, f := range p.Fields() {
		known[f.ID()] = struct{}{}
	}
	var out []string
	for key := range values {
		if _, ok := known[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// Submit runs every field of the page through its pipeline with the value
// submitted under its id. Fields missing from values receive nil, which
// unchecks toggles and checkboxes. Keys matching no field are ignored.
func (p *Page) Submit(values map[string]any) Submission {
	fields := p.Fields()
	sub := Submission{
		PageID:  p.id,
		Values:  make(map[string]any, len(fields)),
		Results: make(map[string]validation.Result, len(fields)),
		Order:   make([]string, 0, len(fields)),
	}

	for _, f := range fields {
		if f == nil {
			continue
		}
		res := f.Process(values[f.ID()])
		sub.Values[f.ID()] = f.Value()
		sub.Results[f.ID()] = res
		sub.Order = append(sub.Order, f.ID())
	}
	return sub
}
