package ck

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-clux/internal/accounts"
	"github.com/goliatone/go-clux/pkg/prompt"
)

// GroupRule accepts any of names, case-insensitively, and returns it
// lowercased.
func GroupRule(names []string) prompt.Rule[string] {
	return prompt.Rule[string]{
		Name:     "gid",
		Prompt:   "Enter the name of an existing group",
		Help:     "Please enter one of the following group names: {{ groups }}",
		Error:    "ERROR - Please enter one of the following group names: {{ groups }}",
		Vars:     map[string]any{"groups": strings.Join(names, ", ")},
		Validate: memberOf(names),
	}
}

// UserRule accepts any of names, case-insensitively, and returns it
// lowercased.
func UserRule(names []string) prompt.Rule[string] {
	return prompt.Rule[string]{
		Name:     "uid",
		Prompt:   "Enter the name of an existing user",
		Help:     "Please enter one of the following user names: {{ users }}",
		Error:    "ERROR - Please enter one of the following user names: {{ users }}",
		Vars:     map[string]any{"users": strings.Join(names, ", ")},
		Validate: memberOf(names),
	}
}

func memberOf(names []string) func(string) (string, error) {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = struct{}{}
	}
	return func(text string) (string, error) {
		name := strings.ToLower(text)
		if _, ok := set[name]; ok {
			return name, nil
		}
		return "", prompt.Invalid(prompt.ReasonText, fmt.Errorf("unknown name %q", text))
	}
}

// AccountConfig configures Prompter.Group and Prompter.User.
type AccountConfig struct {
	Prompt  string
	Default *string
	Help    string
	Error   string
	NoQuit  bool
}

// Group prompts for the name of an existing group. The group database is
// read on every call; names starting with "_" are not offered.
func (p *Prompter) Group(ctx context.Context, cfg AccountConfig) (string, error) {
	names, err := accounts.Groups(ctx, p.accounts, p.groupFile)
	if err != nil {
		return "", err
	}
	return prompt.Run(ctx, p.session(), GroupRule(names),
		settings(cfg.Prompt, cfg.Help, cfg.Error, cfg.Default, cfg.NoQuit))
}

// User prompts for the name of an existing user. The user database is read
// on every call.
func (p *Prompter) User(ctx context.Context, cfg AccountConfig) (string, error) {
	names, err := accounts.Users(ctx, p.accounts, p.passwdFile)
	if err != nil {
		return "", err
	}
	return prompt.Run(ctx, p.session(), UserRule(names),
		settings(cfg.Prompt, cfg.Help, cfg.Error, cfg.Default, cfg.NoQuit))
}
