package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-adminui/pkg/validation"
)

const selectPageSize = 10

// Question is one prompt for a field. Choices and Selected (option keys) are
// used by Select and MultiSelect, Checked by Confirm and Default by the text
// prompts. Check, when set, rejects a typed answer before it is returned.
type Question struct {
	Message  string
	Help     string
	Default  string
	Checked  bool
	Choices  validation.Choices
	Selected []string
	Check    func(answer string) error
}

// PromptDriver asks questions on behalf of a Filler. Select and MultiSelect
// answer with option keys, never with display labels.
type PromptDriver interface {
	Input(ctx context.Context, q Question) (string, error)
	Password(ctx context.Context, q Question) (string, error)
	TextArea(ctx context.Context, q Question) (string, error)
	Confirm(ctx context.Context, q Question) (bool, error)
	Select(ctx context.Context, q Question) (string, error)
	MultiSelect(ctx context.Context, q Question) ([]string, error)
	Info(ctx context.Context, msg string) error
}

// SurveyDriver answers questions on a terminal. Prompts are drawn on stderr
// so stdout stays free for command output.
type SurveyDriver struct {
	out  io.Writer
	opts []survey.AskOpt
}

// NewSurveyDriver returns a terminal driver writing Info messages to out, or
// stderr when out is nil.
func NewSurveyDriver(out io.Writer) *SurveyDriver {
	if out == nil {
		out = os.Stderr
	}
	return &SurveyDriver{
		out:  out,
		opts: []survey.AskOpt{survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)},
	}
}

func (d *SurveyDriver) Input(ctx context.Context, q Question) (string, error) {
	var answer string
	err := d.ask(ctx, &survey.Input{Message: q.Message, Help: q.Help, Default: q.Default}, &answer, q.Check)
	return answer, err
}

// Password never echoes nor pre-fills the previous answer.
func (d *SurveyDriver) Password(ctx context.Context, q Question) (string, error) {
	var answer string
	err := d.ask(ctx, &survey.Password{Message: q.Message, Help: q.Help}, &answer, q.Check)
	return answer, err
}

func (d *SurveyDriver) TextArea(ctx context.Context, q Question) (string, error) {
	var answer string
	err := d.ask(ctx, &survey.Multiline{Message: q.Message, Help: q.Help, Default: q.Default}, &answer, q.Check)
	return answer, err
}

func (d *SurveyDriver) Confirm(ctx context.Context, q Question) (bool, error) {
	var answer bool
	err := d.ask(ctx, &survey.Confirm{Message: q.Message, Help: q.Help, Default: q.Checked}, &answer, nil)
	return answer, err
}

// Select answers with the key of the picked option, or "" when the question
// has no choices.
func (d *SurveyDriver) Select(ctx context.Context, q Question) (string, error) {
	if len(q.Choices) == 0 {
		return "", ctx.Err()
	}
	labels := newOptionLabels(q.Choices)
	sel := &survey.Select{
		Message:  q.Message,
		Help:     q.Help,
		Options:  labels.list,
		PageSize: selectPageSize,
	}
	if len(q.Selected) > 0 {
		if label, ok := labels.byKey[q.Selected[0]]; ok {
			sel.Default = label
		}
	}

	var answer string
	if err := d.ask(ctx, sel, &answer, nil); err != nil {
		return "", err
	}
	return labels.byLabel[answer], nil
}

// MultiSelect answers with the keys of the picked options in option order.
func (d *SurveyDriver) MultiSelect(ctx context.Context, q Question) ([]string, error) {
	if len(q.Choices) == 0 {
		return nil, ctx.Err()
	}
	labels := newOptionLabels(q.Choices)
	sel := &survey.MultiSelect{
		Message:  q.Message,
		Help:     q.Help,
		Options:  labels.list,
		PageSize: selectPageSize,
	}
	var preselected []string
	for _, key := range q.Selected {
		if label, ok := labels.byKey[key]; ok {
			preselected = append(preselected, label)
		}
	}
	if len(preselected) > 0 {
		sel.Default = preselected
	}

	var answers []string
	if err := d.ask(ctx, sel, &answers, nil); err != nil {
		return nil, err
	}
	picked := make(map[string]bool, len(answers))
	for _, label := range answers {
		picked[label] = true
	}
	keys := make([]string, 0, len(answers))
	for _, label := range labels.list {
		if picked[label] {
			keys = append(keys, labels.byLabel[label])
		}
	}
	return keys, nil
}

func (d *SurveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func (d *SurveyDriver) ask(ctx context.Context, p survey.Prompt, response any, check func(string) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opts := append([]survey.AskOpt(nil), d.opts...)
	if check != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return check(s)
		}))
	}
	if err := survey.AskOne(p, response, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return ErrAborted
		}
		return fmt.Errorf("prompt: %w", err)
	}
	return nil
}

// optionLabels is the label list shown for a set of choices. Blank labels
// fall back to the key, and a label shared by several options gets its key
// appended so every answer resolves to exactly one option.
type optionLabels struct {
	list    []string
	byLabel map[string]string
	byKey   map[string]string
}

func newOptionLabels(choices validation.Choices) optionLabels {
	seen := make(map[string]int, len(choices))
	for _, c := range choices {
		seen[displayLabel(c)]++
	}

	out := optionLabels{
		list:    make([]string, 0, len(choices)),
		byLabel: make(map[string]string, len(choices)),
		byKey:   make(map[string]string, len(choices)),
	}
	for _, c := range choices {
		label := displayLabel(c)
		if seen[label] > 1 {
			label = fmt.Sprintf("%s (%s)", label, c.Key)
		}
		out.list = append(out.list, label)
		out.byLabel[label] = c.Key
		out.byKey[c.Key] = label
	}
	return out
}

func displayLabel(c validation.Choice) string {
	if l := strings.TrimSpace(c.Label); l != "" {
		return l
	}
	return c.Key
}
