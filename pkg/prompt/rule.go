package prompt

import (
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-clux/internal/templates"
	"github.com/goliatone/go-clux/pkg/console"
)

// Defaults shared by every rule that does not supply its own text.
const (
	DefaultPrompt = "Enter an appropriate value"
	DefaultHelp   = "Please enter a string which contains no embedded,\nleading or trailing spaces or tabs"
	DefaultError  = "ERROR: Please enter a string which contains no embedded,\nleading or trailing spaces or tabs."
	DefaultHint   = "?"
)

// Rule describes one kind of answer: how to validate it and what to say
// about it. Text fields are templates; {{ name }} placeholders resolve from
// Vars only.
type Rule[T any] struct {
	Name   string
	Prompt string
	Help   string
	Error  string
	// Hint lists the accepted tokens shown in brackets; ",q" is appended by
	// the loop unless quitting is disabled.
	Hint string
	// Errors overrides Error for specific rejection reasons.
	Errors map[Reason]string
	Vars   map[string]any
	// Validate maps raw text to the canonical value. Rejections must be
	// reported with an *InvalidError; any other error aborts the loop.
	Validate func(text string) (T, error)
}

// Settings carries the caller's per-call overrides. Empty text fields fall
// back to the rule's templates; a "~" inside an override is replaced with
// the rule's own text for that field.
type Settings[T any] struct {
	Prompt string
	Help   string
	Error  string
	// Default is returned verbatim, without validation, when the answer is
	// empty.
	Default *T
	// NoQuit treats "q" and "quit" as ordinary answers. End of input still
	// quits.
	NoQuit bool
}

// Session bundles the collaborators a loop needs.
type Session struct {
	Console   console.Console
	Logger    *slog.Logger
	Templates *templates.Engine
}

func (s Session) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return discardLogger
}

func (s Session) engine() *templates.Engine {
	if s.Templates != nil {
		return s.Templates
	}
	return templates.Default()
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// texts is the fully expanded wording for one call.
type texts struct {
	prompt string
	help   string
	hint   string
	errs   map[Reason]string
	err    string
}

func (t texts) errorFor(reason Reason) string {
	if msg, ok := t.errs[reason]; ok {
		return msg
	}
	return t.err
}

func resolveTexts[T any](s Session, rule Rule[T], settings Settings[T]) texts {
	engine := s.engine()
	// quit expands to the quit suffix shown in hints and error lists.
	vars := make(map[string]any, len(rule.Vars)+1)
	vars["quit"] = ",q"
	if settings.NoQuit {
		vars["quit"] = ""
	}
	for key, value := range rule.Vars {
		vars[key] = value
	}
	expand := func(override, builtin string) string {
		source := builtin
		if override != "" {
			source = strings.ReplaceAll(override, "~", builtin)
		}
		return engine.ExpandOrSource(source, vars)
	}

	hint := rule.Hint
	if hint == "" {
		hint = DefaultHint
	}
	if !settings.NoQuit {
		hint += ",q"
	}

	out := texts{
		prompt: expand(settings.Prompt, fallback(rule.Prompt, DefaultPrompt)),
		help:   expand(settings.Help, fallback(rule.Help, DefaultHelp)),
		hint:   engine.ExpandOrSource(hint, vars),
		err:    expand(settings.Error, fallback(rule.Error, DefaultError)),
	}
	// A caller-supplied error text wins over every reason-specific one.
	if settings.Error == "" && len(rule.Errors) > 0 {
		out.errs = make(map[Reason]string, len(rule.Errors))
		for reason, source := range rule.Errors {
			out.errs[reason] = engine.ExpandOrSource(source, vars)
		}
	}
	return out
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
