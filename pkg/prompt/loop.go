package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-clux/pkg/console"
)

// command handles a reserved answer (such as "??") inside the loop.
type command func(ctx context.Context) error

// Run prompts until the answer validates, the default is taken, or the
// operator quits. It returns ErrUserQuit on "q", "quit" or end of input.
func Run[T any](ctx context.Context, s Session, rule Rule[T], settings Settings[T]) (T, error) {
	var zero T
	if err := s.check(rule.Name); err != nil {
		return zero, err
	}
	return loop(ctx, s, rule, settings, nil)
}

func loop[T any](ctx context.Context, s Session, rule Rule[T], settings Settings[T], commands map[string]command) (T, error) {
	var zero T
	if rule.Validate == nil {
		return zero, Misconfigured(rule.Name, "validate", "validation function is required")
	}

	t := resolveTexts(s, rule, settings)
	line := fmt.Sprintf("%s [%s]: ", t.prompt, t.hint)
	log := s.logger()

	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		answer, err := s.Console.Input(ctx, line)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, console.ErrAborted) {
				return zero, ErrUserQuit
			}
			return zero, fmt.Errorf("prompt: %s: read answer: %w", rule.Name, err)
		}

		if !settings.NoQuit && isQuit(answer) {
			return zero, ErrUserQuit
		}
		if answer == "?" {
			if err := s.Console.Info(ctx, t.help); err != nil {
				return zero, err
			}
			continue
		}
		if cmd, ok := commands[answer]; ok {
			if err := cmd(ctx); err != nil {
				return zero, err
			}
			continue
		}
		if answer == "" && settings.Default != nil {
			return *settings.Default, nil
		}

		value, err := rule.Validate(answer)
		if err == nil {
			return value, nil
		}

		var invalid *InvalidError
		if !errors.As(err, &invalid) {
			return zero, fmt.Errorf("prompt: %s: %w", rule.Name, err)
		}
		log.DebugContext(ctx, "rejected answer",
			"rule", rule.Name,
			"reason", invalid.Reason.String(),
			"cause", invalid.Err,
		)
		if err := s.Console.Info(ctx, t.errorFor(invalid.Reason)); err != nil {
			return zero, err
		}
	}
}

func (s Session) check(name string) error {
	if s.Console == nil {
		return fmt.Errorf("prompt: %s: %w", name, console.ErrNotConfigured)
	}
	return nil
}

func isQuit(answer string) bool {
	switch strings.ToLower(answer) {
	case "q", "quit":
		return true
	}
	return false
}
