package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// readValues reads a submitted-values document (JSON or YAML object) from
// path, or from stdin when path is "-".
func readValues(path string, stdin io.Reader) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	return parseValues(data)
}

func parseValues(data []byte) (map[string]any, error) {
	if strings.TrimSpace(string(data)) == "" {
		return map[string]any{}, nil
	}

	var values map[string]any
	if err := json.Unmarshal(data, &values); err == nil {
		return values, nil
	}
	values = nil
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse values: invalid JSON or YAML: %w", err)
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}
