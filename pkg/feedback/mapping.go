package feedback

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-adminui/pkg/page"
)

// Notice summary keys, translatable like validation messages.
const (
	KeySummaryOne  = "feedback.summary.one"
	KeySummaryMany = "feedback.summary.many"
)

// Mapping splits a submission's failures into field-level and form-level
// messages.
type Mapping struct {
	Fields map[string][]string `json:"fields,omitempty"`
	Form   []string            `json:"form,omitempty"`
}

// Empty reports whether there is nothing to show.
func (m Mapping) Empty() bool {
	return len(m.Fields) == 0 && len(m.Form) == 0
}

// Map builds inline messages for every failing field of sub and a page-level
// notice summarising how many fields need attention.
func Map(sub page.Submission, opts Options) Mapping {
	mapping := Mapping{Fields: make(map[string][]string)}

	invalid := sub.Invalid()
	names := make([]string, 0, len(invalid))
	for _, id := range invalid {
		msg := strings.TrimSpace(Localize(sub.Results[id], opts))
		if msg != "" {
			mapping.Fields[id] = append(mapping.Fields[id], msg)
		}
		names = append(names, labelFor(id, opts.Labels))
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	if len(invalid) > 0 {
		mapping.Form = MergeFormErrors(nil, summary(names, opts))
	}
	return mapping
}

func summary(names []string, opts Options) string {
	params := map[string]any{
		"count":  len(names),
		"fields": strings.Join(names, ", "),
	}
	if len(names) == 1 {
		fallback := fmt.Sprintf("Please correct the %s field.", names[0])
		return translate(opts.Locale, KeySummaryOne, fallback, params, opts.Translator, opts.OnMissing)
	}
	fallback := fmt.Sprintf("Please correct the %d highlighted fields: %s.", len(names), strings.Join(names, ", "))
	return translate(opts.Locale, KeySummaryMany, fallback, params, opts.Translator, opts.OnMissing)
}

func labelFor(id string, labels map[string]string) string {
	if label := strings.TrimSpace(labels[id]); label != "" {
		return label
	}
	return id
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// LabelsFor collects field labels from a page for use in Options.Labels.
func LabelsFor(p *page.Page) map[string]string {
	out := make(map[string]string)
	if p == nil {
		return out
	}
	for _, f := range p.Fields() {
		if label := strings.TrimSpace(f.Config().Label); label != "" {
			out[f.ID()] = label
		}
	}
	return out
}
