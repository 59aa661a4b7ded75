package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-adminui/pkg/feedback"
	"github.com/goliatone/go-adminui/pkg/field"
	"github.com/goliatone/go-adminui/pkg/page"
	"github.com/goliatone/go-adminui/pkg/validation"
)

// Theme holds the prefix put in front of re-prompt messages.
type Theme struct {
	ErrorPrefix string
}

// Option configures a Filler.
type Option func(*Filler)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(f *Filler) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(f *Filler) {
		f.theme = theme
	}
}

// WithMaxAttempts bounds how often an invalid field is re-prompted. Zero
// means no limit.
func WithMaxAttempts(n int) Option {
	return func(f *Filler) {
		if n >= 0 {
			f.maxAttempts = n
		}
	}
}

// WithFeedback localises re-prompt messages.
func WithFeedback(opts feedback.Options) Option {
	return func(f *Filler) {
		f.feedback = opts
	}
}

// Filler walks a page's fields in a terminal, running every answer through
// the field pipeline and asking again until it is valid.
type Filler struct {
	driver      PromptDriver
	theme       Theme
	maxAttempts int
	feedback    feedback.Options
}

// New constructs a Filler using the survey driver unless overridden.
func New(options ...Option) *Filler {
	f := &Filler{theme: Theme{ErrorPrefix: "✗ "}}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.driver == nil {
		f.driver = NewSurveyDriver(nil)
	}
	return f
}

// Fill prompts for every field of p in page order and returns the resulting
// submission. Driver errors, including ErrAborted, stop the walk.
func (f *Filler) Fill(ctx context.Context, p *page.Page) (page.Submission, error) {
	if ctx == nil {
		return page.Submission{}, errors.New("prompt: context is required")
	}
	if p == nil {
		return page.Submission{}, errors.New("prompt: page is nil")
	}

	fields := p.Fields()
	sub := page.Submission{
		PageID:  p.ID(),
		Values:  make(map[string]any, len(fields)),
		Results: make(map[string]validation.Result, len(fields)),
		Order:   make([]string, 0, len(fields)),
	}

	for _, fld := range fields {
		if fld == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return page.Submission{}, err
		}

		res, err := f.fillField(ctx, fld)
		if err != nil {
			return page.Submission{}, err
		}
		sub.Values[fld.ID()] = fld.Value()
		sub.Results[fld.ID()] = res
		sub.Order = append(sub.Order, fld.ID())
	}
	return sub, nil
}

func (f *Filler) fillField(ctx context.Context, fld *field.Field) (validation.Result, error) {
	current := fld.Value()
	for attempt := 1; ; attempt++ {
		raw, err := f.ask(ctx, fld, current)
		if err != nil {
			return validation.Result{}, err
		}

		res := fld.Process(raw)
		if res.Valid {
			return res, nil
		}
		if f.maxAttempts > 0 && attempt >= f.maxAttempts {
			return res, fmt.Errorf("%w: %s", ErrTooManyAttempts, fld.ID())
		}

		msg := fmt.Sprintf("%s%s: %s", f.theme.ErrorPrefix, label(fld), feedback.Localize(res, f.feedback))
		if err := f.driver.Info(ctx, msg); err != nil {
			return validation.Result{}, err
		}
		current = raw
	}
}

func (f *Filler) ask(ctx context.Context, fld *field.Field, current any) (any, error) {
	cfg := fld.Config()
	q := Question{
		Message: label(fld),
		Help:    cfg.Description,
		Default: asString(current),
	}
	if cfg.Required {
		q.Message += " *"
	}

	switch cfg.Kind {
	case field.KindToggle:
		q.Checked = asBool(current)
		return f.driver.Confirm(ctx, q)

	case field.KindCheckbox, field.KindSelect:
		if cfg.Kind == field.KindCheckbox && !fld.IsGroup() {
			q.Checked = asBool(current)
			return f.driver.Confirm(ctx, q)
		}
		q.Choices = cfg.Choices
		q.Selected = asStrings(current)
		if fld.IsGroup() {
			return f.driver.MultiSelect(ctx, q)
		}
		return f.driver.Select(ctx, q)

	case field.KindTextArea:
		q.Check = f.answerCheck(fld)
		return f.driver.TextArea(ctx, q)

	default:
		q.Check = f.answerCheck(fld)
		if cfg.Kind == field.KindText && cfg.InputType == field.InputPassword {
			q.Default = ""
			return f.driver.Password(ctx, q)
		}
		return f.driver.Input(ctx, q)
	}
}

// answerCheck judges a typed answer with the field's own sanitizer and
// validator without touching field state.
func (f *Filler) answerCheck(fld *field.Field) func(string) error {
	return func(answer string) error {
		res := fld.Validate(fld.Sanitize(answer))
		if res.Valid {
			return nil
		}
		return errors.New(feedback.Localize(res, f.feedback))
	}
}

func label(fld *field.Field) string {
	if l := strings.TrimSpace(fld.Config().Label); l != "" {
		return l
	}
	return fld.ID()
}

func asString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func asBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "on", "yes":
			return true
		}
	}
	return false
}

func asStrings(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, asString(item))
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}
