package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"golang.org/x/term"

	"github.com/goliatone/go-clux/pkg/console"
)

// config holds the environment-level settings; per-prompt settings come from
// flags.
type config struct {
	Output     string `env:"CLUX_OUTPUT" envDefault:"text"`
	Console    string `env:"CLUX_CONSOLE" envDefault:"line"`
	GroupFile  string `env:"CLUX_GROUP_FILE" envDefault:"/etc/group"`
	PasswdFile string `env:"CLUX_PASSWD_FILE" envDefault:"/etc/passwd"`
	Debug      bool   `env:"CLUX_DEBUG"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// accountFiles resolves the account database paths against the working
// directory; the prompter reads them relative to the filesystem root.
func (c config) accountFiles() (group, passwd string, err error) {
	if group, err = filepath.Abs(c.GroupFile); err != nil {
		return "", "", fmt.Errorf("resolve group file %q: %w", c.GroupFile, err)
	}
	if passwd, err = filepath.Abs(c.PasswdFile); err != nil {
		return "", "", fmt.Errorf("resolve passwd file %q: %w", c.PasswdFile, err)
	}
	return group, passwd, nil
}

// newConsole picks the console implementation. Prompts always go to stderr
// so stdout carries only the answer.
func newConsole(kind string) (console.Console, error) {
	switch kind {
	case "line":
		return console.NewLineConsole(os.Stdin, os.Stderr), nil
	case "survey":
		return console.NewSurveyConsole(os.Stderr, console.WithStdio(os.Stdin, os.Stderr, os.Stderr)), nil
	case "", "auto":
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return newConsole("survey")
		}
		return newConsole("line")
	default:
		return nil, fmt.Errorf("unknown console %q (want auto, line or survey)", kind)
	}
}

func newLogger(debug bool, w io.Writer) *slog.Logger {
	if !debug {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
