package feedback

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseTranslations reads a locale -> key -> message document in JSON or
// YAML:
//
//	es:
//	  validation.required: Este campo es obligatorio.
//	  validation.min: Debe ser al menos {min}.
func ParseTranslations(data []byte) (MapTranslator, error) {
	if strings.TrimSpace(string(data)) == "" {
		return MapTranslator{}, nil
	}

	var out MapTranslator
	if err := json.Unmarshal(data, &out); err == nil {
		return out, nil
	}
	out = nil
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("feedback: parse translations: %w", err)
	}
	if out == nil {
		out = MapTranslator{}
	}
	return out, nil
}

// LoadTranslations reads and parses a translations file from fsys.
func LoadTranslations(fsys fs.FS, path string) (MapTranslator, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("feedback: read translations %s: %w", path, err)
	}
	return ParseTranslations(data)
}
