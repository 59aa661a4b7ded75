package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-adminui/pkg/validation"
	"github.com/goliatone/go-adminui/pkg/widgets"
)

// Document is the top-level shape of a definition file.
type Document struct {
	Pages []PageDef `json:"pages" yaml:"pages"`
}

// PageDef declares one admin page.
type PageDef struct {
	ID         string       `json:"id" yaml:"id"`
	Title      string       `json:"title" yaml:"title"`
	MenuTitle  string       `json:"menu_title" yaml:"menu_title"`
	Capability string       `json:"capability" yaml:"capability"`
	MenuSlug   string       `json:"menu_slug" yaml:"menu_slug"`
	Parent     string       `json:"parent" yaml:"parent"`
	Position   *int         `json:"position" yaml:"position"`
	Icon       string       `json:"icon" yaml:"icon"`
	Fields     []FieldDef   `json:"fields" yaml:"fields"`
	Layouts    []LayoutDef  `json:"layouts" yaml:"layouts"`
	Metaboxes  []MetaboxDef `json:"metaboxes" yaml:"metaboxes"`
}

// FieldDef declares one field. Type may be omitted and is then inferred.
type FieldDef struct {
	ID          string     `json:"id" yaml:"id"`
	Type        string     `json:"type" yaml:"type"`
	Label       string     `json:"label" yaml:"label"`
	Description string     `json:"description" yaml:"description"`
	Placeholder string     `json:"placeholder" yaml:"placeholder"`
	Default     any        `json:"default" yaml:"default"`
	Required    bool       `json:"required" yaml:"required"`
	Min         *float64   `json:"min" yaml:"min"`
	Max         *float64   `json:"max" yaml:"max"`
	MinLength   *int       `json:"min_length" yaml:"min_length"`
	MaxLength   *int       `json:"max_length" yaml:"max_length"`
	Multiple    bool       `json:"multiple" yaml:"multiple"`
	InputType   string     `json:"input_type" yaml:"input_type"`
	Rows        int        `json:"rows" yaml:"rows"`
	Options     OptionList `json:"options" yaml:"options"`
}

func (d FieldDef) descriptor() widgets.Descriptor {
	return widgets.Descriptor{
		ID:         d.ID,
		Hint:       d.Type,
		Default:    d.Default,
		HasChoices: len(d.Options) > 0,
		Multiple:   d.Multiple,
		Rows:       d.Rows,
		InputType:  d.InputType,
	}
}

// LayoutDef declares a layout. Active applies to tabs, Open to accordions.
type LayoutDef struct {
	ID       string       `json:"id" yaml:"id"`
	Type     string       `json:"type" yaml:"type"`
	Active   string       `json:"active" yaml:"active"`
	Open     []string     `json:"open" yaml:"open"`
	Sections []SectionDef `json:"sections" yaml:"sections"`
}

// SectionDef declares a tab or panel.
type SectionDef struct {
	ID     string     `json:"id" yaml:"id"`
	Title  string     `json:"title" yaml:"title"`
	Fields []FieldDef `json:"fields" yaml:"fields"`
}

// MetaboxDef declares a metabox.
type MetaboxDef struct {
	ID       string      `json:"id" yaml:"id"`
	Title    string      `json:"title" yaml:"title"`
	Context  string      `json:"context" yaml:"context"`
	Priority string      `json:"priority" yaml:"priority"`
	Screens  []string    `json:"screens" yaml:"screens"`
	Fields   []FieldDef  `json:"fields" yaml:"fields"`
	Layouts  []LayoutDef `json:"layouts" yaml:"layouts"`
}

// OptionList accepts options as a list of {key, label} objects, a list of
// plain keys (used as their own label) or a key: label mapping. Document order
// is kept in every form.
type OptionList validation.Choices

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*o = nil
		return nil
	}

	switch trimmed[0] {
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		out := make(OptionList, 0, len(raw))
		for idx, item := range raw {
			var key string
			if err := json.Unmarshal(item, &key); err == nil {
				out = append(out, validation.Choice{Key: key, Label: key})
				continue
			}
			var choice validation.Choice
			if err := json.Unmarshal(item, &choice); err != nil {
				return fmt.Errorf("option %d: %w", idx, err)
			}
			out = append(out, choice)
		}
		*o = out
		return nil
	case '{':
		out, err := orderedJSONObject(trimmed)
		if err != nil {
			return err
		}
		*o = out
		return nil
	default:
		return fmt.Errorf("options must be a list or an object")
	}
}

func orderedJSONObject(data []byte) (OptionList, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	var out OptionList
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		var label string
		if err := dec.Decode(&label); err != nil {
			return nil, fmt.Errorf("option %q: %w", key, err)
		}
		out = append(out, validation.Choice{Key: key, Label: label})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *OptionList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		out := make(OptionList, 0, len(node.Content))
		for idx, item := range node.Content {
			if item.Kind == yaml.ScalarNode {
				out = append(out, validation.Choice{Key: item.Value, Label: item.Value})
				continue
			}
			var choice validation.Choice
			if err := item.Decode(&choice); err != nil {
				return fmt.Errorf("option %d: %w", idx, err)
			}
			out = append(out, choice)
		}
		*o = out
		return nil
	case yaml.MappingNode:
		out := make(OptionList, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if value.Kind != yaml.ScalarNode {
				return fmt.Errorf("option %q: label must be a string (line %d)", key.Value, value.Line)
			}
			out = append(out, validation.Choice{Key: key.Value, Label: value.Value})
		}
		*o = out
		return nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" || strings.TrimSpace(node.Value) == "" {
			*o = nil
			return nil
		}
	}
	return fmt.Errorf("options must be a list or a mapping (line %d)", node.Line)
}
