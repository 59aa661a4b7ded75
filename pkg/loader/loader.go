package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-adminui/pkg/layout"
	"github.com/goliatone/go-adminui/pkg/page"
	"github.com/goliatone/go-adminui/pkg/registry"
	"github.com/goliatone/go-adminui/pkg/widgets"
)

// ErrDuplicatePage is returned when two files define the same page id.
var ErrDuplicatePage = errors.New("loader: duplicate page")

// Options configures how definitions are turned into pages.
type Options struct {
	// Widgets infers kinds for fields without a type. Defaults to
	// widgets.Default().
	Widgets *widgets.Registry
	// Layouts resolves layout type names. Defaults to layout.DefaultTypes().
	Layouts *layout.Types
	// Registry, when set, receives every loaded page once loading succeeds.
	Registry *registry.Registry
}

func (o Options) withDefaults() Options {
	if o.Widgets == nil {
		o.Widgets = widgets.Default()
	}
	if o.Layouts == nil {
		o.Layouts = layout.DefaultTypes()
	}
	return o
}

// Set holds the pages built from one or more definition files.
type Set struct {
	pages   []*page.Page
	byID    map[string]*page.Page
	sources map[string]string
}

func newSet() *Set {
	return &Set{
		byID:    make(map[string]*page.Page),
		sources: make(map[string]string),
	}
}

// Pages returns the loaded pages in load order.
func (s *Set) Pages() []*page.Page {
	if s == nil {
		return nil
	}
	return append([]*page.Page(nil), s.pages...)
}

// Page returns the page with id.
func (s *Set) Page(id string) (*page.Page, bool) {
	if s == nil {
		return nil, false
	}
	p, ok := s.byID[id]
	return p, ok
}

// Source reports the file a page was defined in.
func (s *Set) Source(id string) string {
	if s == nil {
		return ""
	}
	return s.sources[id]
}

// Empty reports whether the set holds any pages.
func (s *Set) Empty() bool {
	return s == nil || len(s.pages) == 0
}

func (s *Set) add(p *page.Page, source string) error {
	if prev, exists := s.sources[p.ID()]; exists {
		return fmt.Errorf("%w %q (files %s and %s)", ErrDuplicatePage, p.ID(), prev, source)
	}
	s.pages = append(s.pages, p)
	s.byID[p.ID()] = p
	s.sources[p.ID()] = source
	return nil
}

// LoadFS walks fsys and builds pages from every .json, .yaml and .yml file.
// When fsys is nil or holds no definition files the returned set is empty.
func LoadFS(fsys fs.FS, opts Options) (*Set, error) {
	opts = opts.withDefaults()
	set := newSet()
	if fsys == nil {
		return set, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("loader: read %s: %w", path, err)
		}
		return loadInto(set, data, path, opts)
	})
	if err != nil {
		return nil, err
	}

	if err := register(set, opts.Registry); err != nil {
		return nil, err
	}
	return set, nil
}

// Load builds pages from a single document. source names the document in
// error messages.
func Load(data []byte, source string, opts Options) (*Set, error) {
	opts = opts.withDefaults()
	set := newSet()
	if err := loadInto(set, data, source, opts); err != nil {
		return nil, err
	}
	if err := register(set, opts.Registry); err != nil {
		return nil, err
	}
	return set, nil
}

func loadInto(set *Set, data []byte, source string, opts Options) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	pages, err := build(doc, opts)
	if err != nil {
		return fmt.Errorf("loader: %s: %w", source, err)
	}
	for _, p := range pages {
		if err := set.add(p, source); err != nil {
			return err
		}
	}
	return nil
}

func register(set *Set, reg *registry.Registry) error {
	if reg == nil {
		return nil
	}
	for _, p := range set.pages {
		if err := reg.AddPage(p); err != nil {
			return fmt.Errorf("loader: register page %q: %w", p.ID(), err)
		}
	}
	return nil
}

func parseDocument(data []byte, source string) (Document, error) {
	var doc Document
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("loader: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = Document{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("loader: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return doc, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
