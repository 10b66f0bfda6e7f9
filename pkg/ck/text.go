package ck

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goliatone/go-clux/pkg/prompt"
)

var errEmpty = errors.New("empty answer")

// StringRule accepts any non-empty text, or, when pattern is set, text that
// pattern matches starting at its first character. The match does not have
// to cover the whole answer.
func StringRule(pattern string) (prompt.Rule[string], error) {
	rule := prompt.Rule[string]{
		Name:   "str",
		Prompt: "Enter a string",
		Help:   "Please enter a string.",
		Error:  "ERROR - Please enter a string.",
		Validate: func(text string) (string, error) {
			if text == "" {
				return "", prompt.Invalid(prompt.ReasonGeneric, errEmpty)
			}
			return text, nil
		},
	}
	if pattern == "" {
		return rule, nil
	}

	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return prompt.Rule[string]{}, prompt.Misconfigured("str", "regexp", err.Error())
	}
	rule.Help = "Please enter a string that matches the following pattern:\n{{ pattern }}"
	rule.Error = "ERROR: Please enter a string that matches the following pattern:\n{{ pattern }}"
	rule.Vars = map[string]any{"pattern": pattern}
	rule.Validate = func(text string) (string, error) {
		if !re.MatchString(text) {
			return "", prompt.Invalid(prompt.ReasonText, fmt.Errorf("%q does not match %q", text, pattern))
		}
		return text, nil
	}
	return rule, nil
}

var yesNo = map[string]string{
	"y":   "yes",
	"yes": "yes",
	"n":   "no",
	"no":  "no",
}

// YesNoRule maps y/yes and n/no, in any case, to "yes" or "no".
func YesNoRule() prompt.Rule[string] {
	return prompt.Rule[string]{
		Name:   "yorn",
		Prompt: "Yes or No",
		Help: "To respond in the affirmative, enter y, yes, Y, or YES.\n" +
			"To respond in the negative, enter n, no, N, or NO.",
		Error: "ERROR - Please enter yes or no.",
		Hint:  "y,n,?",
		Validate: func(text string) (string, error) {
			if answer, ok := yesNo[strings.ToLower(text)]; ok {
				return answer, nil
			}
			return "", prompt.Invalid(prompt.ReasonText, fmt.Errorf("%q is neither yes nor no", text))
		},
	}
}

// PathRule accepts absolute paths and returns them cleaned. Existence,
// permissions and file type are not checked.
func PathRule() prompt.Rule[string] {
	return prompt.Rule[string]{
		Name:   "path",
		Prompt: "Enter a pathname",
		Help:   "Enter an absolute pathname",
		Error:  "ERROR: Invalid pathname",
		Validate: func(text string) (string, error) {
			if !filepath.IsAbs(text) {
				return "", prompt.Invalid(prompt.ReasonGeneric, fmt.Errorf("%q is not absolute", text))
			}
			abs, err := filepath.Abs(text)
			if err != nil {
				return "", prompt.Invalid(prompt.ReasonGeneric, err)
			}
			return abs, nil
		},
	}
}

// StringConfig configures Prompter.String.
type StringConfig struct {
	Prompt  string
	Default *string
	Help    string
	Error   string
	NoQuit  bool
	// Regexp, when set, must match at the start of the answer.
	Regexp string
}

// String prompts for free text, optionally constrained by a pattern.
func (p *Prompter) String(ctx context.Context, cfg StringConfig) (string, error) {
	rule, err := StringRule(cfg.Regexp)
	if err != nil {
		return "", err
	}
	return prompt.Run(ctx, p.session(), rule,
		settings(cfg.Prompt, cfg.Help, cfg.Error, cfg.Default, cfg.NoQuit))
}

// YesNoConfig configures Prompter.YesNo.
type YesNoConfig struct {
	Prompt  string
	Default *string
	Help    string
	Error   string
	NoQuit  bool
}

// YesNo prompts for a yes or no answer and returns "yes" or "no".
func (p *Prompter) YesNo(ctx context.Context, cfg YesNoConfig) (string, error) {
	return prompt.Run(ctx, p.session(), YesNoRule(),
		settings(cfg.Prompt, cfg.Help, cfg.Error, cfg.Default, cfg.NoQuit))
}

// PathConfig configures Prompter.Path.
type PathConfig struct {
	Prompt  string
	Default *string
	Help    string
	Error   string
	NoQuit  bool
}

// Path prompts for an absolute pathname.
func (p *Prompter) Path(ctx context.Context, cfg PathConfig) (string, error) {
	return prompt.Run(ctx, p.session(), PathRule(),
		settings(cfg.Prompt, cfg.Help, cfg.Error, cfg.Default, cfg.NoQuit))
}
