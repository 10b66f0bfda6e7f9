package ck

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-clux/pkg/prompt"
)

const itemHelp = `
Enter the number of the menu item you wish to select, the token
which is associated with the menu item, or a partial string which
uniquely identifies the token for the menu item. Enter ?? to
reprint the menu.
`

const itemTextError = `
ERROR: Entry does not match available menu selection. Enter the number
of the menu item you wish to select, the token which is associated
with the menu item, or a partial string which uniquely identifies the
token for the menu item. Enter ?? to reprint the menu.
`

// ItemRule accepts a 1-based index into choices followed by invisible, or a
// case-insensitive prefix that matches exactly one of them.
func ItemRule(choices, invisible []string) (prompt.Rule[string], error) {
	if len(choices) == 0 {
		return prompt.Rule[string]{}, prompt.Misconfigured("item", "choices", "no choices given")
	}
	items := make([]string, 0, len(choices)+len(invisible))
	items = append(items, choices...)
	items = append(items, invisible...)

	return prompt.Rule[string]{
		Name:   "item",
		Prompt: "Enter selection",
		Help:   itemHelp,
		Error:  itemTextError,
		Errors: map[prompt.Reason]string{
			prompt.ReasonNumeric: "ERROR: Bad numeric choice specification",
			prompt.ReasonText:    itemTextError,
		},
		Hint: "?,??",
		Validate: func(text string) (string, error) {
			if n, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
				if n >= 1 && n <= len(items) {
					return items[n-1], nil
				}
				return "", prompt.Invalid(prompt.ReasonNumeric, fmt.Errorf("item %d not in [1, %d]", n, len(items)))
			}
			return uniquePrefix(items, text)
		},
	}, nil
}

// KeywordRule accepts a case-insensitive prefix that matches exactly one
// keyword.
func KeywordRule(keywords []string) (prompt.Rule[string], error) {
	if len(keywords) == 0 {
		return prompt.Rule[string]{}, prompt.Misconfigured("keywd", "keywords", "no keywords given")
	}
	items := append([]string(nil), keywords...)

	return prompt.Rule[string]{
		Name:   "keywd",
		Prompt: "Enter appropriate value",
		Help:   "Please enter one of the following keywords: {{ keywords }}",
		Error:  "ERROR: Please enter one of the following keywords: {{ keywords }}{{ quit }}",
		Hint:   "{{ keywords }},?",
		Vars:   map[string]any{"keywords": strings.Join(items, ",")},
		Validate: func(text string) (string, error) {
			return uniquePrefix(items, text)
		},
	}, nil
}

func uniquePrefix(items []string, text string) (string, error) {
	needle := strings.ToLower(text)
	var matches []string
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item), needle) {
			matches = append(matches, item)
		}
	}
	if len(matches) != 1 {
		return "", prompt.Invalid(prompt.ReasonText, fmt.Errorf("%q matches %d entries", text, len(matches)))
	}
	return matches[0], nil
}

// ItemConfig configures Prompter.Item.
type ItemConfig struct {
	Prompt  string
	Default *string
	Help    string
	Error   string
	NoQuit  bool
	// Label is printed above the menu when set.
	Label string
	// Choices are listed and selectable. Required.
	Choices []string
	// Invisible entries are selectable but never listed.
	Invisible []string
}

// Item prints a menu and prompts for one of its entries.
func (p *Prompter) Item(ctx context.Context, cfg ItemConfig) (string, error) {
	rule, err := ItemRule(cfg.Choices, cfg.Invisible)
	if err != nil {
		return "", err
	}
	menu := prompt.Menu{Label: cfg.Label, Choices: cfg.Choices}
	return prompt.RunMenu(ctx, p.session(), rule,
		settings(cfg.Prompt, cfg.Help, cfg.Error, cfg.Default, cfg.NoQuit), menu)
}

// KeywordConfig configures Prompter.Keyword.
type KeywordConfig struct {
	Prompt  string
	Default *string
	Help    string
	Error   string
	NoQuit  bool
	// Keywords lists the accepted answers. Required.
	Keywords []string
}

// Keyword prompts for one of a fixed list of keywords.
func (p *Prompter) Keyword(ctx context.Context, cfg KeywordConfig) (string, error) {
	rule, err := KeywordRule(cfg.Keywords)
	if err != nil {
		return "", err
	}
	return prompt.Run(ctx, p.session(), rule,
		settings(cfg.Prompt, cfg.Help, cfg.Error, cfg.Default, cfg.NoQuit))
}
