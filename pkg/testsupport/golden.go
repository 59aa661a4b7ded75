// Package testsupport holds fixture and golden-file helpers shared by package
// tests.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// UpdateGoldens reports whether golden files should be rewritten instead of
// compared.
func UpdateGoldens() bool {
	return os.Getenv("UPDATE_GOLDENS") != ""
}

// MustReadFixture returns the contents of a fixture file.
func MustReadFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

// WriteGolden writes value as indented JSON to path when UPDATE_GOLDENS is
// set. It reports whether the file was written.
func WriteGolden(t *testing.T, path string, value any) bool {
	t.Helper()
	if !UpdateGoldens() {
		return false
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertJSONGolden compares got against the JSON golden at path. Both sides
// are normalised through encoding/json, so formatting and omitted zero values
// do not matter.
func AssertJSONGolden(t *testing.T, path string, got any) {
	t.Helper()
	if WriteGolden(t, path, got) {
		return
	}

	var want any
	if err := json.Unmarshal(MustReadFixture(t, path), &want); err != nil {
		t.Fatalf("unmarshal golden %s: %v", path, err)
	}

	payload, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal value: %v", err)
	}
	var normalised any
	if err := json.Unmarshal(payload, &normalised); err != nil {
		t.Fatalf("normalise value: %v", err)
	}

	if diff := cmp.Diff(want, normalised); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}
