package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveyConsole drives prompts through survey so interactive terminals get
// line editing. It should only be used when stdin is a terminal.
type SurveyConsole struct {
	opts []survey.AskOpt
	out  io.Writer
}

// SurveyOption configures a SurveyConsole.
type SurveyOption func(*SurveyConsole)

// WithStdio routes survey through explicit terminal streams.
func WithStdio(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) SurveyOption {
	return func(c *SurveyConsole) {
		c.opts = append(c.opts, survey.WithStdio(in, out, errOut))
		c.out = out
	}
}

// NewSurveyConsole constructs a survey-backed console writing messages to
// out.
func NewSurveyConsole(out io.Writer, options ...SurveyOption) *SurveyConsole {
	c := &SurveyConsole{out: out}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

func (c *SurveyConsole) Input(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	// survey renders its own trailing separator.
	q := &survey.Input{
		Message: strings.TrimSuffix(prompt, ": "),
	}
	if err := survey.AskOne(q, &out, c.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (c *SurveyConsole) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.out == nil {
		return ErrNotConfigured
	}
	_, err := fmt.Fprintln(c.out, msg)
	return err
}

func translateSurveyErr(err error) error {
	switch {
	case errors.Is(err, terminal.InterruptErr):
		return ErrAborted
	case errors.Is(err, io.EOF):
		return io.EOF
	}
	return err
}
