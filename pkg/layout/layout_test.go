package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hay-kot/criterio"

	"github.com/goliatone/go-adminui/pkg/field"
)

func fieldIDs(fields []*field.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.ID())
	}
	return out
}

func TestTabs_FieldsFlattenInOrder(t *testing.T) {
	tabs := NewTabs("settings").
		Tab("general", "General", field.TextInput("title"), field.Toggle("enabled")).
		Tab("style", "Style", field.Color("accent"))

	if got := tabs.Type(); got != TypeTabs {
		t.Fatalf("type: want %q, got %q", TypeTabs, got)
	}
	if diff := cmp.Diff([]string{"title", "enabled", "accent"}, fieldIDs(tabs.Fields())); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if got := tabs.ActiveTab(); got != "general" {
		t.Fatalf("default active tab: want general, got %q", got)
	}
	if got := tabs.Active("style").ActiveTab(); got != "style" {
		t.Fatalf("active tab: want style, got %q", got)
	}
	if err := tabs.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestTabs_SectionsAreCopies(t *testing.T) {
	tabs := NewTabs("t").Tab("a", "A", field.TextInput("x"))
	sections := tabs.Sections()
	sections[0].Fields[0] = field.TextInput("replaced")

	if got := tabs.Fields()[0].ID(); got != "x" {
		t.Fatalf("sections should be copied, got %q", got)
	}
}

func TestAccordion_Check(t *testing.T) {
	acc := NewAccordion("faq").
		Panel("one", "One", field.TextArea("answer")).
		Panel("one", "Dup").
		Open("one", "missing")

	err := acc.Check()
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected field errors, got %v", err)
	}

	var paths []string
	for _, fe := range fieldErrs {
		paths = append(paths, fe.Field)
	}
	want := []string{"faq.sections[1].id", "faq.open[1]"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"one", "missing"}, acc.OpenPanels()); diff != "" {
		t.Fatalf("open panels mismatch (-want +got):\n%s", diff)
	}
}

func TestTabs_CheckUnknownActive(t *testing.T) {
	if err := NewTabs("t").Tab("a", "A").Active("b").Check(); err == nil {
		t.Fatalf("expected unknown active tab error")
	}
}

type cardLayout struct {
	Base
}

func TestTypes(t *testing.T) {
	types := NewTypes()

	if diff := cmp.Diff([]string{TypeAccordion, TypeTabs}, types.Names()); diff != "" {
		t.Fatalf("builtin names mismatch (-want +got):\n%s", diff)
	}

	l, err := types.New(TypeAccordion, "faq")
	if err != nil {
		t.Fatalf("new accordion: %v", err)
	}
	if _, ok := l.(*Accordion); !ok || l.ID() != "faq" {
		t.Fatalf("expected accordion faq, got %T %q", l, l.ID())
	}

	if _, err := types.New("carousel", "x"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}

	if err := types.Register(TypeTabs, func(id string) Layout { return NewTabs(id) }); !errors.Is(err, ErrDuplicateType) {
		t.Fatalf("expected ErrDuplicateType, got %v", err)
	}
	if err := types.Register("", func(id string) Layout { return NewTabs(id) }); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := types.Register("nil", nil); err == nil {
		t.Fatalf("expected nil factory error")
	}

	if err := types.Register("cards", func(id string) Layout {
		return &cardLayout{Base: NewBase(id, "cards")}
	}); err != nil {
		t.Fatalf("register cards: %v", err)
	}
	custom, err := types.New("cards", "deck")
	if err != nil {
		t.Fatalf("new cards: %v", err)
	}
	custom.AddSection("s1", "S1", field.Toggle("flag"))
	if diff := cmp.Diff([]string{"flag"}, fieldIDs(custom.Fields())); diff != "" {
		t.Fatalf("custom layout fields mismatch (-want +got):\n%s", diff)
	}
	if !types.Has("cards") {
		t.Fatalf("expected cards to be registered")
	}
}

func TestDefaultTypes_Singleton(t *testing.T) {
	if DefaultTypes() != DefaultTypes() {
		t.Fatalf("expected a single default registry")
	}
}
