// Package clux is the entry point for the interactive console validators.
// Each top-level function builds a fresh Prompter, runs one prompt, and keeps
// nothing afterwards; use New when several prompts share a console.
package clux

import (
	"context"

	"github.com/goliatone/go-clux/pkg/ck"
	"github.com/goliatone/go-clux/pkg/prompt"
)

// ErrUserQuit is returned when the operator quits a prompt.
var ErrUserQuit = prompt.ErrUserQuit

// Prompter aliases ck.Prompter for callers that only import the root package.
type Prompter = ck.Prompter

// Option aliases ck.Option.
type Option = ck.Option

// New exposes the Prompter constructor from the top-level module.
func New(options ...ck.Option) *ck.Prompter {
	return ck.New(options...)
}

// Date prompts for a calendar date (ckdate).
func Date(ctx context.Context, cfg ck.DateConfig, options ...ck.Option) (ck.Date, error) {
	return ck.New(options...).Date(ctx, cfg)
}

// Group prompts for an existing group name (ckgid).
func Group(ctx context.Context, cfg ck.AccountConfig, options ...ck.Option) (string, error) {
	return ck.New(options...).Group(ctx, cfg)
}

// Int prompts for an integer (ckint).
func Int(ctx context.Context, cfg ck.IntConfig, options ...ck.Option) (int, error) {
	return ck.New(options...).Int(ctx, cfg)
}

// Item prints a menu and prompts for one entry (ckitem).
func Item(ctx context.Context, cfg ck.ItemConfig, options ...ck.Option) (string, error) {
	return ck.New(options...).Item(ctx, cfg)
}

// Keyword prompts for one of a list of keywords (ckkeywd).
func Keyword(ctx context.Context, cfg ck.KeywordConfig, options ...ck.Option) (string, error) {
	return ck.New(options...).Keyword(ctx, cfg)
}

// Path prompts for an absolute pathname (ckpath).
func Path(ctx context.Context, cfg ck.PathConfig, options ...ck.Option) (string, error) {
	return ck.New(options...).Path(ctx, cfg)
}

// Range prompts for an integer within bounds (ckrange).
func Range(ctx context.Context, cfg ck.RangeConfig, options ...ck.Option) (int, error) {
	return ck.New(options...).Range(ctx, cfg)
}

// String prompts for text, optionally matching a pattern (ckstr).
func String(ctx context.Context, cfg ck.StringConfig, options ...ck.Option) (string, error) {
	return ck.New(options...).String(ctx, cfg)
}

// Time prompts for a time of day (cktime).
func Time(ctx context.Context, cfg ck.TimeConfig, options ...ck.Option) (ck.Clock, error) {
	return ck.New(options...).Time(ctx, cfg)
}

// User prompts for an existing user name (ckuid).
func User(ctx context.Context, cfg ck.AccountConfig, options ...ck.Option) (string, error) {
	return ck.New(options...).User(ctx, cfg)
}

// YesNo prompts for yes or no (ckyorn).
func YesNo(ctx context.Context, cfg ck.YesNoConfig, options ...ck.Option) (string, error) {
	return ck.New(options...).YesNo(ctx, cfg)
}
