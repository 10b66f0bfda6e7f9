package ck

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-clux/pkg/prompt"
)

// Default layouts, in time package notation. Unpadded fields also accept
// zero-padded input.
const (
	DefaultDateLayout = "1/2/06"
	DefaultTimeLayout = "15:04:05"
)

// Date is a calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the date portion of t.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText renders the ISO 8601 form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Clock is a time of day without a date.
type Clock struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// ClockOf returns the time-of-day portion of t.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()}
}

func (c Clock) String() string {
	if c.Nanosecond != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", c.Hour, c.Minute, c.Second, c.Nanosecond)
	}
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// MarshalText renders the ISO 8601 form.
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// DateRule accepts dates written in layout (DefaultDateLayout when empty).
func DateRule(layout string) prompt.Rule[Date] {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return prompt.Rule[Date]{
		Name:   "date",
		Prompt: "Enter the date",
		Help:   "Please enter a date. Format is {{ format }}.",
		Error:  "ERROR - Please enter a date.  Format is {{ format }}.",
		Vars:   map[string]any{"format": layout},
		Validate: func(text string) (Date, error) {
			t, err := time.Parse(layout, text)
			if err != nil {
				return Date{}, prompt.Invalid(prompt.ReasonGeneric, err)
			}
			return DateOf(t), nil
		},
	}
}

// TimeRule accepts times of day written in layout (DefaultTimeLayout when
// empty).
func TimeRule(layout string) prompt.Rule[Clock] {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return prompt.Rule[Clock]{
		Name:   "time",
		Prompt: "Enter the time",
		Help:   "Please enter a time. Format is {{ format }}.",
		Error:  "ERROR - Please enter a time.  Format is {{ format }}.",
		Vars:   map[string]any{"format": layout},
		Validate: func(text string) (Clock, error) {
			t, err := time.Parse(layout, text)
			if err != nil {
				return Clock{}, prompt.Invalid(prompt.ReasonGeneric, err)
			}
			return ClockOf(t), nil
		},
	}
}

// DateConfig configures Prompter.Date.
type DateConfig struct {
	Prompt  string
	Default *Date
	Help    string
	Error   string
	NoQuit  bool
	// Layout is a time package layout; DefaultDateLayout when empty.
	Layout string
}

// Date prompts for a calendar date.
func (p *Prompter) Date(ctx context.Context, cfg DateConfig) (Date, error) {
	return prompt.Run(ctx, p.session(), DateRule(cfg.Layout),
		settings(cfg.Prompt, cfg.Help, cfg.Error, cfg.Default, cfg.NoQuit))
}

// TimeConfig configures Prompter.Time.
type TimeConfig struct {
	Prompt  string
	Default *Clock
	Help    string
	Error   string
	NoQuit  bool
	// Layout is a time package layout; DefaultTimeLayout when empty.
	Layout string
}

// Time prompts for a time of day.
func (p *Prompter) Time(ctx context.Context, cfg TimeConfig) (Clock, error) {
	return prompt.Run(ctx, p.session(), TimeRule(cfg.Layout),
		settings(cfg.Prompt, cfg.Help, cfg.Error, cfg.Default, cfg.NoQuit))
}
