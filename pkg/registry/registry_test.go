package registry

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-adminui/pkg/field"
	"github.com/goliatone/go-adminui/pkg/layout"
	"github.com/goliatone/go-adminui/pkg/page"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := New()

	p := page.New("settings", "Settings")
	tabs := layout.NewTabs("tabs")
	f := field.Color("accent")

	for _, item := range []any{p, tabs, f} {
		if err := reg.Register(item); err != nil {
			t.Fatalf("register %T: %v", item, err)
		}
	}

	gotPage, err := reg.Page("settings")
	if err != nil || gotPage != p {
		t.Fatalf("page lookup: %v", err)
	}
	gotLayout, err := reg.Layout("tabs")
	if err != nil || gotLayout.ID() != "tabs" {
		t.Fatalf("layout lookup: %v", err)
	}
	gotField, err := reg.Field("accent")
	if err != nil || gotField != f {
		t.Fatalf("field lookup: %v", err)
	}

	if !reg.Has(KindField, "accent") || reg.Has(KindPage, "accent") {
		t.Fatalf("Has should be scoped by kind")
	}
}

func TestRegistry_IDsAreTrimmedOnLookup(t *testing.T) {
	reg := New()
	p := page.New(" padded ", "Padded")
	reg.MustRegister(p)

	for _, id := range []string{"padded", " padded ", "padded\t"} {
		got, err := reg.Page(id)
		if err != nil || got != p {
			t.Fatalf("lookup %q: %v", id, err)
		}
		if !reg.Has(KindPage, id) {
			t.Fatalf("Has(%q) should be true", id)
		}
	}
	if diff := cmp.Diff([]string{"padded"}, reg.List(KindPage)); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_Errors(t *testing.T) {
	reg := New()
	reg.MustRegister(page.New("settings", "Settings"))

	if err := reg.Register(page.New("settings", "Again")); err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := reg.Register(field.TextInput(" ")); err == nil {
		t.Fatalf("expected empty id error")
	}
	if err := reg.Register("nope"); err == nil {
		t.Fatalf("expected unsupported item error")
	}
	if _, err := reg.Page("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("MustRegister should panic on duplicates")
		}
	}()
	reg.MustRegister(page.New("settings", "Settings"))
}

func TestRegistry_ListAndReset(t *testing.T) {
	reg := New()
	reg.MustRegister(page.New("b", "B"))
	reg.MustRegister(page.New("a", "A"))

	if diff := cmp.Diff([]string{"a", "b"}, reg.List(KindPage)); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if got := len(reg.Pages()); got != 2 {
		t.Fatalf("expected 2 pages, got %d", got)
	}

	reg.Reset()
	if got := reg.List(KindPage); len(got) != 0 {
		t.Fatalf("expected empty registry, got %v", got)
	}
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	reg := New()
	var wg sync.WaitGroup
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_ = reg.AddField(field.TextInput(id))
		}(id)
	}
	wg.Wait()

	if got := len(reg.List(KindField)); got != 8 {
		t.Fatalf("expected 8 fields, got %d", got)
	}
}

func TestDefault_Singleton(t *testing.T) {
	if Default() != Default() {
		t.Fatalf("expected one default registry")
	}
}
