package ck

import (
	"io/fs"
	"log/slog"
	"strings"

	"github.com/goliatone/go-clux/internal/accounts"
	"github.com/goliatone/go-clux/internal/templates"
	"github.com/goliatone/go-clux/pkg/console"
	"github.com/goliatone/go-clux/pkg/prompt"
)

// Prompter runs validators against a console. It keeps no state between
// calls; account databases are re-read on every Group and User call.
type Prompter struct {
	console    console.Console
	logger     *slog.Logger
	templates  *templates.Engine
	accounts   fs.FS
	groupFile  string
	passwdFile string
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithConsole overrides the console used for prompting (stdin/stdout by
// default).
func WithConsole(c console.Console) Option {
	return func(p *Prompter) {
		if c != nil {
			p.console = c
		}
	}
}

// WithLogger routes debug records about rejected answers to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Prompter) {
		p.logger = logger
	}
}

// WithAccountFS reads the group and passwd databases from filesystem instead
// of the host root.
func WithAccountFS(filesystem fs.FS) Option {
	return func(p *Prompter) {
		if filesystem != nil {
			p.accounts = filesystem
		}
	}
}

// WithGroupFile overrides the group database path.
func WithGroupFile(path string) Option {
	return func(p *Prompter) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			p.groupFile = trimmed
		}
	}
}

// WithPasswdFile overrides the user database path.
func WithPasswdFile(path string) Option {
	return func(p *Prompter) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			p.passwdFile = trimmed
		}
	}
}

// New constructs a Prompter bound to stdin/stdout unless overridden.
func New(options ...Option) *Prompter {
	p := &Prompter{
		templates:  templates.Default(),
		accounts:   accounts.RootFS(),
		groupFile:  accounts.GroupFile,
		passwdFile: accounts.PasswdFile,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.console == nil {
		p.console = console.Stdio()
	}
	return p
}

func (p *Prompter) session() prompt.Session {
	return prompt.Session{
		Console:   p.console,
		Logger:    p.logger,
		Templates: p.templates,
	}
}

// Ptr returns a pointer to v, for optional config fields such as Default,
// Lower and Upper.
func Ptr[T any](v T) *T {
	return &v
}

func settings[T any](promptText, help, errText string, def *T, noQuit bool) prompt.Settings[T] {
	return prompt.Settings[T]{
		Prompt:  promptText,
		Help:    help,
		Error:   errText,
		Default: def,
		NoQuit:  noQuit,
	}
}
