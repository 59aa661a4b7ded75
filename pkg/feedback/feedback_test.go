package feedback

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-adminui/pkg/field"
	"github.com/goliatone/go-adminui/pkg/page"
	"github.com/goliatone/go-adminui/pkg/validation"
)

func samplePage() *page.Page {
	return page.New("general", "General").
		Field(field.TextInput("title").Label("Site title").Required(true)).
		Field(field.TextInput("email").Label("Admin email").InputType(field.InputEmail)).
		Field(field.TextInput("per_page").InputType(field.InputNumber).Min(1).Max(10))
}

func TestMap_FieldAndFormMessages(t *testing.T) {
	p := samplePage()
	sub := p.Submit(map[string]any{"title": "", "email": "nope", "per_page": "5"})

	got := Map(sub, Options{Labels: LabelsFor(p)})

	want := Mapping{
		Fields: map[string][]string{
			"title": {"This field is required."},
			"email": {"Please enter a valid email address."},
		},
		Form: []string{"Please correct the 2 highlighted fields: Site title, Admin email."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestMap_SingleFailureUsesIDWithoutLabel(t *testing.T) {
	sub := samplePage().Submit(map[string]any{"title": "x", "per_page": "99"})

	got := Map(sub, Options{})

	want := Mapping{
		Fields: map[string][]string{"per_page": {"Value must be no more than 10."}},
		Form:   []string{"Please correct the per_page field."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestMap_ValidSubmissionIsEmpty(t *testing.T) {
	sub := samplePage().Submit(map[string]any{"title": "x", "email": "a@b.co", "per_page": 3})

	got := Map(sub, Options{})
	if !got.Empty() {
		t.Fatalf("expected empty mapping, got %+v", got)
	}
}

func TestLocalize_UsesTranslatorAndInterpolates(t *testing.T) {
	translator := MapTranslator{
		"es": {
			"validation.required": "Este campo es obligatorio.",
			"validation.min":      "Debe ser al menos {min}.",
		},
	}
	opts := Options{Locale: "es_ES", Translator: translator}

	if got := Localize(validation.Fail(validation.CodeRequired, nil), opts); got != "Este campo es obligatorio." {
		t.Fatalf("unexpected required message %q", got)
	}
	if got := Localize(validation.Fail(validation.CodeMin, map[string]any{"min": 2.5}), opts); got != "Debe ser al menos 2.5." {
		t.Fatalf("unexpected min message %q", got)
	}
	if got := Localize(validation.Fail(validation.CodeEmail, nil), opts); got != "Please enter a valid email address." {
		t.Fatalf("expected fallback for missing key, got %q", got)
	}
	if got := Localize(validation.OK(), opts); got != "" {
		t.Fatalf("expected empty message for valid result, got %q", got)
	}
}

func TestLocalize_OnMissingHandler(t *testing.T) {
	var gotErr error
	var gotKey string
	opts := Options{
		Locale: "fr",
		OnMissing: func(locale, key, fallback string, err error) string {
			gotKey = key
			gotErr = err
			return "[" + key + "]"
		},
	}

	msg := Localize(validation.Fail(validation.CodeOption, nil), opts)
	if msg != "[validation.option]" {
		t.Fatalf("unexpected message %q", msg)
	}
	if gotKey != "validation.option" {
		t.Fatalf("unexpected key %q", gotKey)
	}
	if !errors.Is(gotErr, ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", gotErr)
	}
}

func TestMap_TranslatesSummary(t *testing.T) {
	translator := TranslatorFunc(func(locale, key string, args ...any) (string, error) {
		if key == KeySummaryOne {
			return "Corrige {fields}.", nil
		}
		return "", errors.New("missing")
	})
	sub := samplePage().Submit(map[string]any{"per_page": 3})

	got := Map(sub, Options{Translator: translator, Labels: map[string]string{"title": "Título"}})
	if diff := cmp.Diff([]string{"Corrige Título."}, got.Form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"This field is required."}, got.Fields["title"]); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeFormErrors(t *testing.T) {
	got := MergeFormErrors([]string{" Saved failed ", ""}, "Saved failed", "Retry later")
	want := []string{"Saved failed", "Retry later"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
	if MergeFormErrors(nil, " ") != nil {
		t.Fatalf("expected nil for blank messages")
	}
}

func TestParseTranslations(t *testing.T) {
	yamlDoc := []byte("es:\n  validation.required: Obligatorio.\nfr:\n  validation.required: Obligatoire.\n")
	got, err := ParseTranslations(yamlDoc)
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	msg, err := got.Translate("fr_CA", "validation.required")
	if err != nil || msg != "Obligatoire." {
		t.Fatalf("translate fr_CA: got %q err=%v", msg, err)
	}

	jsonDoc := []byte(`{"de": {"validation.email": "Ungültige E-Mail."}}`)
	got, err = ParseTranslations(jsonDoc)
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	if _, err := got.Translate("es", "validation.email"); err == nil {
		t.Fatalf("expected missing translation error")
	}

	if _, err := ParseTranslations([]byte("es: [broken")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadTranslations(t *testing.T) {
	fsys := fstest.MapFS{"i18n/es.yaml": {Data: []byte("es:\n  validation.option: Opción inválida.\n")}}

	tr, err := LoadTranslations(fsys, "i18n/es.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := Localize(validation.Fail(validation.CodeOption, nil), Options{Locale: "es", Translator: tr}); got != "Opción inválida." {
		t.Fatalf("unexpected message %q", got)
	}
	if _, err := LoadTranslations(fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected read error")
	}
}
