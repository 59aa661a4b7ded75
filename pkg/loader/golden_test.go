package loader

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-adminui/pkg/field"
	"github.com/goliatone/go-adminui/pkg/testsupport"
)

type pageSnapshot struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Parent string         `json:"parent,omitempty"`
	Fields []field.Config `json:"fields"`
}

func snapshot(set *Set) []pageSnapshot {
	var out []pageSnapshot
	for _, p := range set.Pages() {
		snap := pageSnapshot{ID: p.ID(), Title: p.Title(), Parent: p.ParentSlug()}
		for _, f := range p.Fields() {
			snap.Fields = append(snap.Fields, f.Config())
		}
		out = append(out, snap)
	}
	return out
}

func TestLoad_Golden(t *testing.T) {
	src := filepath.Join("testdata", "reading.yaml")
	set, err := Load(testsupport.MustReadFixture(t, src), src, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	testsupport.AssertJSONGolden(t, filepath.Join("testdata", "reading.golden.json"), snapshot(set))
}
