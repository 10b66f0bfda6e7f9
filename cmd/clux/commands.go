package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/goliatone/go-clux/pkg/ck"
	"github.com/goliatone/go-clux/pkg/prompt"
)

var errUsage = errors.New("usage")

// common holds the flags every subcommand accepts.
type common struct {
	prompt     string
	def        string
	hasDefault bool
	help       string
	errText    string
	noQuit     bool
	output     string
}

func (c *common) register(fs *flag.FlagSet, output string) {
	fs.StringVar(&c.prompt, "p", "", "prompt text (~ inserts the default prompt)")
	fs.StringVar(&c.def, "d", "", "answer returned when the input is empty")
	fs.StringVar(&c.help, "h", "", "help text shown for ? (~ inserts the default help)")
	fs.StringVar(&c.errText, "e", "", "error text shown for invalid answers (~ inserts the default error)")
	fs.BoolVar(&c.noQuit, "Q", false, "treat q and quit as ordinary answers")
	fs.StringVar(&c.output, "o", output, "output format: text, json or yaml")
}

// defaultString returns the -d value when it was given.
func (c *common) defaultString() *string {
	if !c.hasDefault {
		return nil
	}
	return ck.Ptr(c.def)
}

// typedDefault parses -d with the rule's own validator so non-string
// validators receive a typed default.
func typedDefault[T any](c *common, rule prompt.Rule[T]) (*T, error) {
	if !c.hasDefault {
		return nil, nil
	}
	v, err := rule.Validate(c.def)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid default %q for %s", errUsage, c.def, rule.Name)
	}
	return &v, nil
}

// runner executes a subcommand after its flags are parsed.
type runner func(ctx context.Context, p *ck.Prompter, args []string) (any, error)

type command struct {
	summary string
	build   func(fs *flag.FlagSet, c *common) runner
}

var commands = map[string]command{
	"date":  {"prompt for a date", dateCmd},
	"gid":   {"prompt for an existing group name", groupCmd},
	"int":   {"prompt for an integer", intCmd},
	"item":  {"print a menu and prompt for an entry: item [flags] choice...", itemCmd},
	"keywd": {"prompt for a keyword: keywd [flags] keyword...", keywordCmd},
	"path":  {"prompt for an absolute pathname", pathCmd},
	"range": {"prompt for an integer within bounds", rangeCmd},
	"str":   {"prompt for a string", stringCmd},
	"time":  {"prompt for a time of day", timeCmd},
	"uid":   {"prompt for an existing user name", userCmd},
	"yorn":  {"prompt for yes or no", yesNoCmd},
}

func dateCmd(fs *flag.FlagSet, c *common) runner {
	layout := fs.String("f", ck.DefaultDateLayout, "date layout in Go time notation")
	return func(ctx context.Context, p *ck.Prompter, _ []string) (any, error) {
		def, err := typedDefault(c, ck.DateRule(*layout))
		if err != nil {
			return nil, err
		}
		return p.Date(ctx, ck.DateConfig{
			Prompt: c.prompt, Default: def, Help: c.help, Error: c.errText, NoQuit: c.noQuit,
			Layout: *layout,
		})
	}
}

func timeCmd(fs *flag.FlagSet, c *common) runner {
	layout := fs.String("f", ck.DefaultTimeLayout, "time layout in Go time notation")
	return func(ctx context.Context, p *ck.Prompter, _ []string) (any, error) {
		def, err := typedDefault(c, ck.TimeRule(*layout))
		if err != nil {
			return nil, err
		}
		return p.Time(ctx, ck.TimeConfig{
			Prompt: c.prompt, Default: def, Help: c.help, Error: c.errText, NoQuit: c.noQuit,
			Layout: *layout,
		})
	}
}

func intCmd(fs *flag.FlagSet, c *common) runner {
	base := fs.Int("b", 10, "numeric base (2-36)")
	return func(ctx context.Context, p *ck.Prompter, _ []string) (any, error) {
		rule, err := ck.IntRule(*base)
		if err != nil {
			return nil, err
		}
		def, err := typedDefault(c, rule)
		if err != nil {
			return nil, err
		}
		return p.Int(ctx, ck.IntConfig{
			Prompt: c.prompt, Default: def, Help: c.help, Error: c.errText, NoQuit: c.noQuit,
			Base: *base,
		})
	}
}

func rangeCmd(fs *flag.FlagSet, c *common) runner {
	base := fs.Int("b", 10, "numeric base (2-36)")
	lower := fs.Int("l", ck.DefaultLower, "lower bound, inclusive")
	upper := fs.Int("u", ck.DefaultUpper, "upper bound, inclusive")
	return func(ctx context.Context, p *ck.Prompter, _ []string) (any, error) {
		// Parse the default as a plain integer; it is returned even when
		// outside the bounds.
		rule, err := ck.IntRule(*base)
		if err != nil {
			return nil, err
		}
		def, err := typedDefault(c, rule)
		if err != nil {
			return nil, err
		}
		return p.Range(ctx, ck.RangeConfig{
			Prompt: c.prompt, Default: def, Help: c.help, Error: c.errText, NoQuit: c.noQuit,
			Lower: lower, Upper: upper, Base: *base,
		})
	}
}

func stringCmd(fs *flag.FlagSet, c *common) runner {
	pattern := fs.String("r", "", "regular expression the answer must match from its start")
	return func(ctx context.Context, p *ck.Prompter, _ []string) (any, error) {
		return p.String(ctx, ck.StringConfig{
			Prompt: c.prompt, Default: c.defaultString(), Help: c.help, Error: c.errText, NoQuit: c.noQuit,
			Regexp: *pattern,
		})
	}
}

func itemCmd(fs *flag.FlagSet, c *common) runner {
	label := fs.String("l", "", "label printed above the menu")
	invisible := fs.String("i", "", "comma-separated choices accepted but not listed")
	return func(ctx context.Context, p *ck.Prompter, args []string) (any, error) {
		return p.Item(ctx, ck.ItemConfig{
			Prompt: c.prompt, Default: c.defaultString(), Help: c.help, Error: c.errText, NoQuit: c.noQuit,
			Label:     *label,
			Choices:   args,
			Invisible: splitList(*invisible),
		})
	}
}

func keywordCmd(_ *flag.FlagSet, c *common) runner {
	return func(ctx context.Context, p *ck.Prompter, args []string) (any, error) {
		return p.Keyword(ctx, ck.KeywordConfig{
			Prompt: c.prompt, Default: c.defaultString(), Help: c.help, Error: c.errText, NoQuit: c.noQuit,
			Keywords: args,
		})
	}
}

func pathCmd(_ *flag.FlagSet, c *common) runner {
	return func(ctx context.Context, p *ck.Prompter, _ []string) (any, error) {
		return p.Path(ctx, ck.PathConfig{
			Prompt: c.prompt, Default: c.defaultString(), Help: c.help, Error: c.errText, NoQuit: c.noQuit,
		})
	}
}

func yesNoCmd(_ *flag.FlagSet, c *common) runner {
	return func(ctx context.Context, p *ck.Prompter, _ []string) (any, error) {
		return p.YesNo(ctx, ck.YesNoConfig{
			Prompt: c.prompt, Default: c.defaultString(), Help: c.help, Error: c.errText, NoQuit: c.noQuit,
		})
	}
}

func groupCmd(_ *flag.FlagSet, c *common) runner {
	return func(ctx context.Context, p *ck.Prompter, _ []string) (any, error) {
		return p.Group(ctx, ck.AccountConfig{
			Prompt: c.prompt, Default: c.defaultString(), Help: c.help, Error: c.errText, NoQuit: c.noQuit,
		})
	}
}

func userCmd(_ *flag.FlagSet, c *common) runner {
	return func(ctx context.Context, p *ck.Prompter, _ []string) (any, error) {
		return p.User(ctx, ck.AccountConfig{
			Prompt: c.prompt, Default: c.defaultString(), Help: c.help, Error: c.errText, NoQuit: c.noQuit,
		})
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
