// Command clux exposes the console validators to shell scripts. The answer is
// printed on stdout; prompts, help and errors go to stderr.
//
// Exit status: 0 answer printed, 1 runtime failure, 2 usage or configuration
// error, 3 the operator quit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/goliatone/go-clux/pkg/ck"
	"github.com/goliatone/go-clux/pkg/console"
	"github.com/goliatone/go-clux/pkg/prompt"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
	exitQuit  = 3
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("clux: ")

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}
	con, err := newConsole(cfg.Console)
	if err != nil {
		log.Fatalf("%v", err)
	}

	os.Exit(run(context.Background(), os.Args[1:], cfg, con, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, cfg config, con console.Console, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "clux: unknown command %q\n", args[0])
		usage(stderr)
		return exitUsage
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	c := &common{}
	c.register(fs, cfg.Output)
	exec := cmd.build(fs, c)
	if err := fs.Parse(args[1:]); err != nil {
		return exitUsage
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "d" {
			c.hasDefault = true
		}
	})

	format, err := parseOutputFormat(c.output)
	if err != nil {
		fmt.Fprintf(stderr, "clux: %v\n", err)
		return exitUsage
	}

	groupFile, passwdFile, err := cfg.accountFiles()
	if err != nil {
		fmt.Fprintf(stderr, "clux: %v\n", err)
		return exitError
	}

	p := ck.New(
		ck.WithConsole(con),
		ck.WithLogger(newLogger(cfg.Debug, stderr)),
		ck.WithGroupFile(groupFile),
		ck.WithPasswdFile(passwdFile),
	)

	answer, err := exec(ctx, p, fs.Args())
	switch {
	case err == nil:
	case errors.Is(err, prompt.ErrUserQuit):
		return exitQuit
	case errors.Is(err, prompt.ErrConfig), errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "clux: %v\n", err)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "clux: %v\n", err)
		return exitError
	}

	if err := writeAnswer(stdout, format, answer); err != nil {
		fmt.Fprintf(stderr, "clux: %v\n", err)
		return exitError
	}
	return exitOK
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: clux <command> [flags] [args]")
	fmt.Fprintln(w, "\ncommands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-6s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(w, "\nenvironment: CLUX_OUTPUT, CLUX_CONSOLE, CLUX_GROUP_FILE, CLUX_PASSWD_FILE, CLUX_DEBUG")
}
