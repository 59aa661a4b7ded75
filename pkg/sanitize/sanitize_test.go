package sanitize_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goliatone/go-adminui/pkg/sanitize"
)

func TestText(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  any
	}{
		{name: "trims", input: "  hello  ", want: "hello"},
		{name: "strips tags", input: "<b>bold</b> text", want: "bold text"},
		{name: "drops script content", input: "hi<script>alert(1)</script>", want: "hi"},
		{name: "collapses whitespace", input: "a \n\t b", want: "a b"},
		{name: "decodes entities", input: "Tom &amp; Jerry", want: "Tom & Jerry"},
		{name: "drops control chars", input: "a\x07b", want: "ab"},
		{name: "nil", input: nil, want: ""},
		{name: "number", input: 12.5, want: "12.5"},
		{name: "int", input: 3, want: "3"},
		{name: "true", input: true, want: "1"},
		{name: "list untouched", input: []string{" a "}, want: []string{" a "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sanitize.Text.Sanitize(tc.input))
		})
	}
}

func TestTextArea(t *testing.T) {
	got := sanitize.TextArea.Sanitize("  line one  \r\n<i>line</i>   two\n")
	assert.Equal(t, "line one\nline two", got)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "a  b", sanitize.Key.Sanitize(" a  b "))
	assert.Equal(t, "<none>", sanitize.Key.Sanitize("<none>"))
	assert.Equal(t, "3", sanitize.Key.Sanitize(3))
	assert.Equal(t, "", sanitize.Key.Sanitize(nil))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "2"}, sanitize.Keys.Sanitize([]any{" a", float64(2)}))
	assert.Equal(t, []string{"<b>", "a  b"}, sanitize.Keys.Sanitize([]string{"<b>", " a  b "}), "keys are opaque")
	assert.Equal(t, []string{"x"}, sanitize.Keys.Sanitize([]string{"x "}))
	assert.Equal(t, []string{}, sanitize.Keys.Sanitize(nil))
	assert.Equal(t, "a", sanitize.Keys.Sanitize("a"), "scalars stay scalar")

	nested := []any{map[string]any{"k": "v"}}
	assert.Equal(t, nested, sanitize.Keys.Sanitize(nested))
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "User@example.com", sanitize.Email.Sanitize(" User@EXAMPLE.com "))
	assert.Equal(t, "not-an-email", sanitize.Email.Sanitize("not-an-email"))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "15", sanitize.Number.Sanitize(" 15 "))
	assert.Equal(t, 7, sanitize.Number.Sanitize(7))
	assert.Equal(t, "", sanitize.Number.Sanitize(nil))
}

func TestBool(t *testing.T) {
	for _, value := range []any{true, "1", "on", "YES", "true", 1, 2.5} {
		assert.Equal(t, true, sanitize.Bool.Sanitize(value), "%#v", value)
	}
	for _, value := range []any{false, "", "0", "off", nil, 0, []string{"1"}} {
		assert.Equal(t, false, sanitize.Bool.Sanitize(value), "%#v", value)
	}
}

func TestColor(t *testing.T) {
	assert.Equal(t, "#ffaa00", sanitize.Color.Sanitize(" #FFAA00 "))
	assert.Equal(t, "#abc", sanitize.Color.Sanitize("#ABC"))
	assert.Equal(t, "", sanitize.Color.Sanitize("red"))
	assert.Equal(t, "", sanitize.Color.Sanitize(42))
}

func TestComposeAndApply(t *testing.T) {
	upper := sanitize.Strings(strings.ToUpper)
	pipeline := sanitize.Compose(sanitize.Text, nil, upper)

	assert.Equal(t, "HELLO", pipeline.Sanitize("  <b>hello</b> "))
	assert.Equal(t, "X", sanitize.Apply(" x ", sanitize.Text, upper))
	assert.Equal(t, 5, upper.Sanitize(5))
	assert.Equal(t, "raw", sanitize.None.Sanitize("raw"))
}

func TestIcon(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "  ", want: ""},
		{name: "dashicon", input: " Dashicons-Admin-Generic ", want: "dashicons-admin-generic"},
		{name: "none", input: "none", want: "none"},
		{name: "url", input: "https://example.com/icon.png", want: "https://example.com/icon.png"},
		{name: "javascript url", input: "javascript:alert(1)", want: ""},
		{name: "relative path", input: "icon.png", want: ""},
		{name: "data uri", input: "data:image/svg+xml;base64,PHN2Zz48L3N2Zz4=", want: "data:image/svg+xml;base64,PHN2Zz48L3N2Zz4="},
		{name: "bad data uri", input: "data:image/svg+xml;base64,***", want: ""},
		{name: "dashicon with junk", input: "dashicons-x<script>", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sanitize.Icon(tc.input))
		})
	}
}

func TestIcon_InlineSVG(t *testing.T) {
	got := sanitize.Icon(`<svg width="20" height="20" onload="steal()"><path d="M0 0h20v20H0z" onclick="x()"></path><script>alert(1)</script></svg>`)

	assert.True(t, strings.HasPrefix(got, "<svg"), got)
	assert.Contains(t, got, `<path d="M0 0h20v20H0z"`)
	assert.NotContains(t, got, "onload")
	assert.NotContains(t, got, "onclick")
	assert.NotContains(t, got, "script")
	assert.NotContains(t, got, "alert")
}
