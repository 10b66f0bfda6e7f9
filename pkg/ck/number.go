package ck

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-clux/pkg/prompt"
)

// Default range bounds match a signed 32-bit integer.
const (
	DefaultLower = math.MinInt32
	DefaultUpper = math.MaxInt32
)

// IntRule accepts integers written in base (10 when zero). Surrounding
// spaces are ignored; anything else that does not parse, including values
// that overflow int, is rejected.
func IntRule(base int) (prompt.Rule[int], error) {
	base, err := checkBase("int", base)
	if err != nil {
		return prompt.Rule[int]{}, err
	}
	rule := prompt.Rule[int]{
		Name:     "int",
		Prompt:   "Enter an integer",
		Help:     "Please enter an integer.",
		Error:    "ERROR - Please enter an integer.",
		Vars:     map[string]any{"base": base},
		Validate: func(text string) (int, error) { return parseInt(text, base) },
	}
	if base != 10 {
		rule.Help = "Please enter a base {{ base }} integer."
		rule.Error = "ERROR - Please enter a base {{ base }} integer."
	}
	return rule, nil
}

// RangeRule accepts integers with lower <= value <= upper.
func RangeRule(lower, upper, base int) (prompt.Rule[int], error) {
	base, err := checkBase("range", base)
	if err != nil {
		return prompt.Rule[int]{}, err
	}
	if lower > upper {
		return prompt.Rule[int]{}, prompt.Misconfigured("range", "lower",
			fmt.Sprintf("lower bound %d exceeds upper bound %d", lower, upper))
	}
	return prompt.Rule[int]{
		Name:   "range",
		Prompt: "Enter an integer",
		Help:   "Please enter an integer between {{ lower }} and {{ upper }}.",
		Error:  "ERROR - Please enter an integer between {{ lower }} and {{ upper }}.",
		Vars: map[string]any{
			"lower": strconv.FormatInt(int64(lower), base),
			"upper": strconv.FormatInt(int64(upper), base),
			"base":  base,
		},
		Validate: func(text string) (int, error) {
			v, err := parseInt(text, base)
			if err != nil {
				return 0, err
			}
			if v < lower || v > upper {
				return 0, prompt.Invalid(prompt.ReasonNumeric,
					fmt.Errorf("%d outside [%d, %d]", v, lower, upper))
			}
			return v, nil
		},
	}, nil
}

func checkBase(rule string, base int) (int, error) {
	if base == 0 {
		return 10, nil
	}
	if base < 2 || base > 36 {
		return 0, prompt.Misconfigured(rule, "base", fmt.Sprintf("base %d not in [2, 36]", base))
	}
	return base, nil
}

func parseInt(text string, base int) (int, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(text), base, strconv.IntSize)
	if err != nil {
		return 0, prompt.Invalid(prompt.ReasonGeneric, err)
	}
	return int(v), nil
}

// IntConfig configures Prompter.Int.
type IntConfig struct {
	Prompt  string
	Default *int
	Help    string
	Error   string
	NoQuit  bool
	// Base is the numeric base, 10 when zero.
	Base int
}

// Int prompts for an integer.
func (p *Prompter) Int(ctx context.Context, cfg IntConfig) (int, error) {
	rule, err := IntRule(cfg.Base)
	if err != nil {
		return 0, err
	}
	return prompt.Run(ctx, p.session(), rule,
		settings(cfg.Prompt, cfg.Help, cfg.Error, cfg.Default, cfg.NoQuit))
}

// RangeConfig configures Prompter.Range. Nil bounds default to DefaultLower
// and DefaultUpper.
type RangeConfig struct {
	Prompt  string
	Default *int
	Help    string
	Error   string
	NoQuit  bool
	Lower   *int
	Upper   *int
	Base    int
}

// Range prompts for an integer inside inclusive bounds.
func (p *Prompter) Range(ctx context.Context, cfg RangeConfig) (int, error) {
	lower, upper := DefaultLower, DefaultUpper
	if cfg.Lower != nil {
		lower = *cfg.Lower
	}
	if cfg.Upper != nil {
		upper = *cfg.Upper
	}
	rule, err := RangeRule(lower, upper, cfg.Base)
	if err != nil {
		return 0, err
	}
	return prompt.Run(ctx, p.session(), rule,
		settings(cfg.Prompt, cfg.Help, cfg.Error, cfg.Default, cfg.NoQuit))
}
