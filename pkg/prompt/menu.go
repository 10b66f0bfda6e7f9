package prompt

import (
	"context"
	"fmt"
)

// Menu is the visible part of a menu prompt. Items the rule accepts but that
// are not listed here are never printed.
type Menu struct {
	Label   string
	Choices []string
}

// RunMenu is Run for menu prompts: the menu is printed before the first
// prompt and again whenever the operator answers "??". "?" still prints the
// help text.
func RunMenu[T any](ctx context.Context, s Session, rule Rule[T], settings Settings[T], menu Menu) (T, error) {
	var zero T
	if err := s.check(rule.Name); err != nil {
		return zero, err
	}
	if rule.Validate == nil {
		return zero, Misconfigured(rule.Name, "validate", "validation function is required")
	}

	show := func(ctx context.Context) error {
		if menu.Label != "" {
			if err := s.Console.Info(ctx, menu.Label); err != nil {
				return err
			}
		}
		for i, choice := range menu.Choices {
			if err := s.Console.Info(ctx, fmt.Sprintf("%d: %s", i+1, choice)); err != nil {
				return err
			}
		}
		return nil
	}

	if err := show(ctx); err != nil {
		return zero, err
	}
	return loop(ctx, s, rule, settings, map[string]command{"??": show})
}
