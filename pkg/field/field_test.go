package field

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hay-kot/criterio"

	"github.com/goliatone/go-adminui/pkg/sanitize"
	"github.com/goliatone/go-adminui/pkg/validation"
)

func TestProcess_StateTransitions(t *testing.T) {
	f := TextInput("age").InputType(InputNumber).Min(10).Max(20)
	if f.State() != StatePristine {
		t.Fatalf("new field should be pristine, got %s", f.State())
	}

	res := f.Process(" 5 ")
	if res.Valid {
		t.Fatalf("expected 5 to fail min=10")
	}
	if f.State() != StateInvalid {
		t.Fatalf("want invalid, got %s", f.State())
	}
	if got := f.Value(); got != "5" {
		t.Fatalf("sanitized value: want %q, got %#v", "5", got)
	}

	res = f.Process("15")
	if !res.Valid || res.Error != "" {
		t.Fatalf("expected 15 to pass, got %+v", res)
	}
	if f.State() != StateValid {
		t.Fatalf("want valid, got %s", f.State())
	}

	f.Reset()
	if f.State() != StatePristine || f.Value() != nil || !f.Result().Valid {
		t.Fatalf("reset did not restore pristine state: %s %#v %+v", f.State(), f.Value(), f.Result())
	}
}

func TestProcess_DefaultPairings(t *testing.T) {
	choices := []validation.Choice{{Key: "a", Label: "A"}, {Key: "b", Label: "B"}}

	cases := []struct {
		name      string
		field     *Field
		raw       any
		wantValue any
		wantCode  string
	}{
		{
			name:      "text strips markup",
			field:     TextInput("title"),
			raw:       " <em>Hello</em> world ",
			wantValue: "Hello world",
		},
		{
			name:     "required text",
			field:    TextInput("title").Required(true),
			raw:      "   ",
			wantCode: validation.CodeRequired,
		},
		{
			name:      "email input",
			field:     TextInput("mail").InputType(InputEmail),
			raw:       "not-an-email",
			wantValue: "not-an-email",
			wantCode:  validation.CodeEmail,
		},
		{
			name:      "url input",
			field:     TextInput("site").InputType(InputURL),
			raw:       "https://example.com",
			wantValue: "https://example.com",
		},
		{
			name:      "textarea keeps lines",
			field:     TextArea("bio"),
			raw:       "one\r\ntwo",
			wantValue: "one\ntwo",
		},
		{
			name:      "toggle missing is off",
			field:     Toggle("enabled"),
			raw:       nil,
			wantValue: false,
		},
		{
			name:      "toggle on",
			field:     Toggle("enabled"),
			raw:       "on",
			wantValue: true,
		},
		{
			name:      "select member",
			field:     Select("letter").Options(choices...),
			raw:       "a",
			wantValue: "a",
		},
		{
			name:      "select non member",
			field:     Select("letter").Options(choices...),
			raw:       "c",
			wantValue: "c",
			wantCode:  validation.CodeOption,
		},
		{
			name:      "multi select format",
			field:     Select("letters").Options(choices...).Multiple(true),
			raw:       "a",
			wantValue: "a",
			wantCode:  validation.CodeFormat,
		},
		{
			name:      "multi select members",
			field:     Select("letters").Options(choices...).Multiple(true),
			raw:       []any{"a", "b"},
			wantValue: []string{"a", "b"},
		},
		{
			name:      "select keys are opaque",
			field:     Select("mode").Options(validation.Choice{Key: "<none>", Label: "None"}, validation.Choice{Key: "two  words", Label: "Two"}),
			raw:       " two  words ",
			wantValue: "two  words",
		},
		{
			name:      "checkbox group",
			field:     Checkbox("letters").Options(choices...),
			raw:       []string{"a", "c"},
			wantValue: []string{"a", "c"},
			wantCode:  validation.CodeOption,
		},
		{
			name:      "single checkbox",
			field:     Checkbox("agree"),
			raw:       "1",
			wantValue: true,
		},
		{
			name:      "color normalised",
			field:     Color("accent"),
			raw:       "#ABCDEF",
			wantValue: "#abcdef",
		},
		{
			name:      "required color emptied by sanitizer",
			field:     Color("accent").Required(true),
			raw:       "blue",
			wantValue: "",
			wantCode:  validation.CodeRequired,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res := tc.field.Process(tc.raw)
			if res.Code != tc.wantCode {
				t.Fatalf("code: want %q, got %q (%+v)", tc.wantCode, res.Code, res)
			}
			if (tc.wantCode == "") != res.Valid {
				t.Fatalf("valid flag mismatch: %+v", res)
			}
			if tc.wantValue != nil {
				if diff := cmp.Diff(tc.wantValue, tc.field.Value()); diff != "" {
					t.Fatalf("value mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestProcess_RequiredSingleCheckbox(t *testing.T) {
	for _, raw := range []any{nil, "", "0", false} {
		f := Checkbox("agree").Required(true)
		res := f.Process(raw)
		if res.Valid || res.Code != validation.CodeRequired {
			t.Fatalf("raw %#v: want required failure, got %+v", raw, res)
		}
		if f.Value() != false {
			t.Fatalf("raw %#v: want false value, got %#v", raw, f.Value())
		}
	}

	f := Checkbox("agree").Required(true)
	if res := f.Process("on"); !res.Valid {
		t.Fatalf("checked box should pass, got %+v", res)
	}
	if res := Checkbox("agree").Process(nil); !res.Valid {
		t.Fatalf("optional unchecked box should pass, got %+v", res)
	}
}

func TestCustomPipeline(t *testing.T) {
	upper := sanitize.Strings(strings.ToUpper)
	onlyX := validation.Func(func(value any, _ validation.Options) validation.Result {
		if value == "X" {
			return validation.OK()
		}
		return validation.Fail("only_x", nil)
	})

	f := TextInput("code").WithSanitizer(upper).WithValidator(onlyX)
	if res := f.Process("x"); !res.Valid {
		t.Fatalf("expected custom pipeline to accept x, got %+v", res)
	}
	if res := f.Process("y"); res.Valid || res.Code != "only_x" {
		t.Fatalf("expected custom failure, got %+v", res)
	}
}

func TestValueDefaultsWhilePristine(t *testing.T) {
	f := Color("accent").Default("#000000")
	if f.Value() != "#000000" {
		t.Fatalf("expected default, got %#v", f.Value())
	}
	if Toggle("enabled").Value() != false {
		t.Fatalf("toggle default should be false")
	}
}

func TestConfig_ReturnsCopy(t *testing.T) {
	f := Select("letter").OptionsMap(map[string]string{"b": "B", "a": "A"}).Label("Letter")
	cfg := f.Config()
	cfg.Choices[0].Key = "mutated"

	want := Config{
		ID:      "letter",
		Kind:    KindSelect,
		Label:   "Letter",
		Choices: validation.Choices{{Key: "a", Label: "A"}, {Key: "b", Label: "B"}},
	}
	if diff := cmp.Diff(want, f.Config()); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestCheck(t *testing.T) {
	if err := TextInput("ok").Label("OK").Check(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	bad := Select("").
		Options(validation.Choice{Key: "a"}, validation.Choice{Key: "a"}).
		Min(5).Max(1)

	err := bad.Check()
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected criterio field errors, got %T %v", err, err)
	}

	var fields []string
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	want := []string{"field.id", "field.options[1]", "field.min"}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("field paths mismatch (-want +got):\n%s", diff)
	}

	if err := Select("empty").Check(); err == nil {
		t.Fatalf("select without options should fail")
	}
	if err := Toggle("t").Multiple(true).Check(); err == nil {
		t.Fatalf("multiple toggle should fail")
	}
}

func TestStateString(t *testing.T) {
	for state, want := range map[State]string{
		StatePristine:  "pristine",
		StateSanitized: "sanitized",
		StateValid:     "valid",
		StateInvalid:   "invalid",
		State(42):      "unknown",
	} {
		if got := state.String(); got != want {
			t.Fatalf("state %d: want %q, got %q", state, want, got)
		}
	}
}
