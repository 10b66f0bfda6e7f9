package ck

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-clux/internal/accounts"
	"github.com/goliatone/go-clux/pkg/prompt"
	"github.com/goliatone/go-clux/pkg/testsupport"
)

var accountFS = fstest.MapFS{
	accounts.GroupFile: {Data: []byte("wheel:*:0:root\ndaemon:*:1:root\n_hidden:*:2:\n")},
	accounts.PasswdFile: {Data: []byte(
		"jsmith:x:1001:1000:Joe Smith,Room 1007,(234)555-8910,(234)555-0044,email:/home/jsmith:/bin/sh\n",
	)},
}

func newTestPrompter(answers ...string) (*Prompter, *testsupport.ScriptedConsole) {
	con := testsupport.NewScriptedConsole(answers...)
	return New(WithConsole(con), WithAccountFS(accountFS)), con
}

type call func(ctx context.Context, p *Prompter) (any, error)

var allValidators = map[string]call{
	"date": func(ctx context.Context, p *Prompter) (any, error) { return p.Date(ctx, DateConfig{}) },
	"int":  func(ctx context.Context, p *Prompter) (any, error) { return p.Int(ctx, IntConfig{}) },
	"range": func(ctx context.Context, p *Prompter) (any, error) {
		return p.Range(ctx, RangeConfig{Lower: Ptr(1), Upper: Ptr(10)})
	},
	"str": func(ctx context.Context, p *Prompter) (any, error) { return p.String(ctx, StringConfig{}) },
	"item": func(ctx context.Context, p *Prompter) (any, error) {
		return p.Item(ctx, ItemConfig{Choices: []string{"this", "that"}})
	},
	"keywd": func(ctx context.Context, p *Prompter) (any, error) {
		return p.Keyword(ctx, KeywordConfig{Keywords: []string{"this", "that"}})
	},
	"path":  func(ctx context.Context, p *Prompter) (any, error) { return p.Path(ctx, PathConfig{}) },
	"time":  func(ctx context.Context, p *Prompter) (any, error) { return p.Time(ctx, TimeConfig{}) },
	"yorn":  func(ctx context.Context, p *Prompter) (any, error) { return p.YesNo(ctx, YesNoConfig{}) },
	"gid":   func(ctx context.Context, p *Prompter) (any, error) { return p.Group(ctx, AccountConfig{}) },
	"uid":   func(ctx context.Context, p *Prompter) (any, error) { return p.User(ctx, AccountConfig{}) },
}

func TestValidators_Quit(t *testing.T) {
	for name, run := range allValidators {
		for _, script := range [][]string{{"q"}, {"QUIT"}, {}} {
			p, con := newTestPrompter(script...)
			_, err := run(context.Background(), p)
			if !errors.Is(err, prompt.ErrUserQuit) {
				t.Fatalf("%s %v: expected ErrUserQuit, got %v", name, script, err)
			}
			if len(con.Prompts) != 1 {
				t.Fatalf("%s %v: expected one prompt, got %d", name, script, len(con.Prompts))
			}
		}
	}
}

func TestValidators_DefaultReturnedVerbatim(t *testing.T) {
	ctx := context.Background()

	p, _ := newTestPrompter("")
	d, err := p.Date(ctx, DateConfig{Default: &Date{Year: 1, Month: 13, Day: 40}})
	if err != nil || d != (Date{Year: 1, Month: 13, Day: 40}) {
		t.Fatalf("date default: %v %v", d, err)
	}

	p, _ = newTestPrompter("")
	n, err := p.Range(ctx, RangeConfig{Lower: Ptr(1), Upper: Ptr(10), Default: Ptr(42)})
	if err != nil || n != 42 {
		t.Fatalf("range default: %v %v", n, err)
	}

	p, _ = newTestPrompter("")
	s, err := p.Item(ctx, ItemConfig{Choices: []string{"this"}, Default: Ptr("elsewhere")})
	if err != nil || s != "elsewhere" {
		t.Fatalf("item default: %v %v", s, err)
	}

	p, _ = newTestPrompter("")
	s, err = p.YesNo(ctx, YesNoConfig{Default: Ptr("maybe")})
	if err != nil || s != "maybe" {
		t.Fatalf("yorn default: %v %v", s, err)
	}

	p, _ = newTestPrompter("")
	s, err = p.Group(ctx, AccountConfig{Default: Ptr("nobody")})
	if err != nil || s != "nobody" {
		t.Fatalf("gid default: %v %v", s, err)
	}
}

func TestDate(t *testing.T) {
	p, con := newTestPrompter("9/10/11")
	got, err := p.Date(context.Background(), DateConfig{Prompt: "date"})
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	if want := (Date{Year: 2011, Month: time.September, Day: 10}); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if diff := cmp.Diff([]string{"date [?,q]: "}, con.Prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
	if len(con.Infos) != 0 {
		t.Fatalf("unexpected output %v", con.Infos)
	}
}

func TestDate_Retry(t *testing.T) {
	p, con := newTestPrompter("bad", "1/2/03")
	got, err := p.Date(context.Background(), DateConfig{Prompt: "date"})
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	if want := (Date{Year: 2003, Month: time.January, Day: 2}); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	want := []string{"ERROR - Please enter a date.  Format is 1/2/06."}
	if diff := cmp.Diff(want, con.Infos); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if got.String() != "2003-01-02" {
		t.Fatalf("String() = %q", got.String())
	}
}

func TestDate_CustomLayout(t *testing.T) {
	p, _ := newTestPrompter("2024-02-29")
	got, err := p.Date(context.Background(), DateConfig{Layout: "2006-01-02"})
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	if got != (Date{Year: 2024, Month: time.February, Day: 29}) {
		t.Fatalf("got %v", got)
	}
}

func TestTime(t *testing.T) {
	p, con := newTestPrompter("25:00:00", "9:10:11")
	got, err := p.Time(context.Background(), TimeConfig{Prompt: "time"})
	if err != nil {
		t.Fatalf("time: %v", err)
	}
	if want := (Clock{Hour: 9, Minute: 10, Second: 11}); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	want := []string{"ERROR - Please enter a time.  Format is 15:04:05."}
	if diff := cmp.Diff(want, con.Infos); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if got.String() != "09:10:11" {
		t.Fatalf("String() = %q", got.String())
	}
}

func TestInt(t *testing.T) {
	p, con := newTestPrompter("4x", "99999999999999999999999", " 42 ")
	got, err := p.Int(context.Background(), IntConfig{Prompt: "int"})
	if err != nil {
		t.Fatalf("int: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d", got)
	}
	if len(con.Infos) != 2 {
		t.Fatalf("expected two errors, got %v", con.Infos)
	}
}

func TestInt_Base(t *testing.T) {
	p, con := newTestPrompter("?", "ff")
	got, err := p.Int(context.Background(), IntConfig{Base: 16})
	if err != nil {
		t.Fatalf("int: %v", err)
	}
	if got != 255 {
		t.Fatalf("got %d", got)
	}
	if diff := cmp.Diff([]string{"Please enter a base 16 integer."}, con.Infos); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRange(t *testing.T) {
	p, con := newTestPrompter("4")
	got, err := p.Range(context.Background(), RangeConfig{Prompt: "int", Lower: Ptr(1), Upper: Ptr(10)})
	if err != nil || got != 4 {
		t.Fatalf("range: %d %v", got, err)
	}
	if len(con.Infos) != 0 {
		t.Fatalf("unexpected output %v", con.Infos)
	}

	p, con = newTestPrompter("42", "5")
	got, err = p.Range(context.Background(), RangeConfig{Prompt: "int", Lower: Ptr(1), Upper: Ptr(10)})
	if err != nil || got != 5 {
		t.Fatalf("range: %d %v", got, err)
	}
	want := []string{"ERROR - Please enter an integer between 1 and 10."}
	if diff := cmp.Diff(want, con.Infos); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"int [?,q]: ", "int [?,q]: "}, con.Prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestRange_DefaultBounds(t *testing.T) {
	p, con := newTestPrompter("2147483648", "-2147483648")
	got, err := p.Range(context.Background(), RangeConfig{})
	if err != nil || got != DefaultLower {
		t.Fatalf("range: %d %v", got, err)
	}
	want := []string{"ERROR - Please enter an integer between -2147483648 and 2147483647."}
	if diff := cmp.Diff(want, con.Infos); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	p, con := newTestPrompter("nope", "word123")
	got, err := p.String(context.Background(), StringConfig{Prompt: "str", Regexp: `\w+\d+`})
	if err != nil || got != "word123" {
		t.Fatalf("str: %q %v", got, err)
	}
	want := []string{"ERROR: Please enter a string that matches the following pattern:\n\\w+\\d+"}
	if diff := cmp.Diff(want, con.Infos); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestString_PrefixMatch(t *testing.T) {
	rule, err := StringRule(`\d+`)
	if err != nil {
		t.Fatalf("rule: %v", err)
	}
	if got, err := rule.Validate("123 and more"); err != nil || got != "123 and more" {
		t.Fatalf("prefix match should accept the full answer: %q %v", got, err)
	}
	if _, err := rule.Validate("x123"); !errors.Is(err, prompt.ErrInvalid) {
		t.Fatalf("match must start at the first character, got %v", err)
	}
	// Alternation must not escape the start anchor.
	rule, err = StringRule(`a|b`)
	if err != nil {
		t.Fatalf("rule: %v", err)
	}
	if _, err := rule.Validate("xb"); !errors.Is(err, prompt.ErrInvalid) {
		t.Fatalf("expected rejection, got %v", err)
	}
}

func TestString_NoPattern(t *testing.T) {
	p, con := newTestPrompter("", "  anything at all ")
	got, err := p.String(context.Background(), StringConfig{})
	if err != nil || got != "  anything at all " {
		t.Fatalf("str: %q %v", got, err)
	}
	if len(con.Infos) != 1 {
		t.Fatalf("empty answer should be rejected once, got %v", con.Infos)
	}
}

func TestItem(t *testing.T) {
	cases := []struct {
		answers []string
		want    string
		errors  []string
	}{
		{answers: []string{"1"}, want: "this"},
		{answers: []string{"that"}, want: "that"},
		{answers: []string{"THA"}, want: "that"},
		{answers: []string{"3"}, want: "other"},
		{answers: []string{"oth"}, want: "other"},
		{answers: []string{"th", "this"}, want: "this", errors: []string{itemTextError}},
		{answers: []string{"zzz", "2"}, want: "that", errors: []string{itemTextError}},
		{answers: []string{"9", "0", "1"}, want: "this", errors: []string{
			"ERROR: Bad numeric choice specification",
			"ERROR: Bad numeric choice specification",
		}},
	}

	for _, tc := range cases {
		p, con := newTestPrompter(tc.answers...)
		got, err := p.Item(context.Background(), ItemConfig{
			Prompt:    "menu",
			Label:     "items",
			Choices:   []string{"this", "that"},
			Invisible: []string{"other"},
		})
		if err != nil {
			t.Fatalf("%v: item: %v", tc.answers, err)
		}
		if got != tc.want {
			t.Fatalf("%v: got %q, want %q", tc.answers, got, tc.want)
		}
		wantOut := append([]string{"items", "1: this", "2: that"}, tc.errors...)
		if diff := cmp.Diff(wantOut, con.Infos); diff != "" {
			t.Fatalf("%v: output mismatch (-want +got):\n%s", tc.answers, diff)
		}
		if con.Prompts[0] != "menu [?,??,q]: " {
			t.Fatalf("prompt = %q", con.Prompts[0])
		}
	}
}

func TestItem_Redisplay(t *testing.T) {
	p, con := newTestPrompter("??", "1")
	if _, err := p.Item(context.Background(), ItemConfig{Choices: []string{"this", "that"}}); err != nil {
		t.Fatalf("item: %v", err)
	}
	want := []string{"1: this", "2: that", "1: this", "2: that"}
	if diff := cmp.Diff(want, con.Infos); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyword(t *testing.T) {
	p, con := newTestPrompter("that")
	got, err := p.Keyword(context.Background(), KeywordConfig{Prompt: "kw", Keywords: []string{"this", "that"}})
	if err != nil || got != "that" {
		t.Fatalf("keywd: %q %v", got, err)
	}
	if diff := cmp.Diff([]string{"kw [this,that,?,q]: "}, con.Prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
	if len(con.Infos) != 0 {
		t.Fatalf("unexpected output %v", con.Infos)
	}
}

func TestKeyword_Ambiguous(t *testing.T) {
	p, con := newTestPrompter("t", "thi")
	got, err := p.Keyword(context.Background(), KeywordConfig{Keywords: []string{"this", "that"}})
	if err != nil || got != "this" {
		t.Fatalf("keywd: %q %v", got, err)
	}
	want := []string{"ERROR: Please enter one of the following keywords: this,that,q"}
	if diff := cmp.Diff(want, con.Infos); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyword_NoQuit(t *testing.T) {
	p, con := newTestPrompter("x", "this")
	got, err := p.Keyword(context.Background(), KeywordConfig{Prompt: "kw", Keywords: []string{"this", "that"}, NoQuit: true})
	if err != nil || got != "this" {
		t.Fatalf("keywd: %q %v", got, err)
	}
	if diff := cmp.Diff([]string{"kw [this,that,?]: ", "kw [this,that,?]: "}, con.Prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
	want := []string{"ERROR: Please enter one of the following keywords: this,that"}
	if diff := cmp.Diff(want, con.Infos); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestYesNo(t *testing.T) {
	cases := map[string]string{
		"y": "yes", "Y": "yes", "yes": "yes", "YES": "yes", "Yes": "yes",
		"n": "no", "N": "no", "no": "no", "NO": "no",
	}
	for answer, want := range cases {
		p, con := newTestPrompter(answer)
		got, err := p.YesNo(context.Background(), YesNoConfig{Prompt: "ok"})
		if err != nil || got != want {
			t.Fatalf("%q: got %q %v", answer, got, err)
		}
		if con.Prompts[0] != "ok [y,n,?,q]: " {
			t.Fatalf("prompt = %q", con.Prompts[0])
		}
	}

	p, con := newTestPrompter("bad", "y")
	got, err := p.YesNo(context.Background(), YesNoConfig{})
	if err != nil || got != "yes" {
		t.Fatalf("yorn: %q %v", got, err)
	}
	if diff := cmp.Diff([]string{"ERROR - Please enter yes or no."}, con.Infos); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPath(t *testing.T) {
	p, con := newTestPrompter("etc/profile", "/etc/./profile")
	got, err := p.Path(context.Background(), PathConfig{Prompt: "path"})
	if err != nil || got != "/etc/profile" {
		t.Fatalf("path: %q %v", got, err)
	}
	if diff := cmp.Diff([]string{"ERROR: Invalid pathname"}, con.Infos); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestGroup(t *testing.T) {
	p, con := newTestPrompter("_hidden", "staff", "WHEEL")
	got, err := p.Group(context.Background(), AccountConfig{Prompt: "group"})
	if err != nil || got != "wheel" {
		t.Fatalf("gid: %q %v", got, err)
	}
	msg := "ERROR - Please enter one of the following group names: wheel, daemon"
	if diff := cmp.Diff([]string{msg, msg}, con.Infos); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestUser(t *testing.T) {
	p, con := newTestPrompter("JSmith")
	got, err := p.User(context.Background(), AccountConfig{Prompt: "user"})
	if err != nil || got != "jsmith" {
		t.Fatalf("uid: %q %v", got, err)
	}
	if diff := cmp.Diff([]string{"user [?,q]: "}, con.Prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}

	p, _ = newTestPrompter("root")
	if _, err := p.User(context.Background(), AccountConfig{}); !errors.Is(err, prompt.ErrUserQuit) {
		t.Fatalf("unknown user should be rejected until input ends, got %v", err)
	}
}

func TestAccounts_MissingDatabase(t *testing.T) {
	con := testsupport.NewScriptedConsole("wheel")
	p := New(WithConsole(con), WithAccountFS(accountFS), WithGroupFile("etc/nope"))
	if _, err := p.Group(context.Background(), AccountConfig{}); err == nil {
		t.Fatalf("expected read error")
	}
	if len(con.Prompts) != 0 {
		t.Fatalf("should fail before prompting")
	}
}

func TestConfigErrors(t *testing.T) {
	ctx := context.Background()
	cases := map[string]call{
		"item without choices": func(ctx context.Context, p *Prompter) (any, error) {
			return p.Item(ctx, ItemConfig{})
		},
		"keyword without keywords": func(ctx context.Context, p *Prompter) (any, error) {
			return p.Keyword(ctx, KeywordConfig{})
		},
		"inverted range": func(ctx context.Context, p *Prompter) (any, error) {
			return p.Range(ctx, RangeConfig{Lower: Ptr(10), Upper: Ptr(1)})
		},
		"bad regexp": func(ctx context.Context, p *Prompter) (any, error) {
			return p.String(ctx, StringConfig{Regexp: "("})
		},
		"bad base": func(ctx context.Context, p *Prompter) (any, error) {
			return p.Int(ctx, IntConfig{Base: 1})
		},
	}
	for name, run := range cases {
		t.Run(name, func(t *testing.T) {
			p, con := newTestPrompter("1")
			_, err := run(ctx, p)
			var cfgErr *prompt.ConfigError
			if !errors.As(err, &cfgErr) || !errors.Is(err, prompt.ErrConfig) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if len(con.Prompts) != 0 || len(con.Infos) != 0 {
				t.Fatalf("configuration errors must precede any console I/O")
			}
		})
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	item, _ := ItemRule([]string{"this", "that"}, nil)
	keywd, _ := KeywordRule([]string{"this", "that"})
	rng, _ := RangeRule(1, 10, 10)
	checks := []struct {
		name     string
		validate func(string) (any, error)
		text     string
	}{
		{"date", wrap(DateRule("").Validate), "9/10/11"},
		{"time", wrap(TimeRule("").Validate), "09:10:11"},
		{"range", wrap(rng.Validate), "7"},
		{"item", wrap(item.Validate), "that"},
		{"keywd", wrap(keywd.Validate), "this"},
		{"yorn", wrap(YesNoRule().Validate), "yes"},
		{"path", wrap(PathRule().Validate), "/etc/profile"},
		{"gid", wrap(GroupRule([]string{"wheel"}).Validate), "wheel"},
	}
	for _, c := range checks {
		first, err := c.validate(c.text)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		second, err := c.validate(c.text)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("%s: results differ (-first +second):\n%s", c.name, diff)
		}
	}
}

func wrap[T any](fn func(string) (T, error)) func(string) (any, error) {
	return func(text string) (any, error) {
		return fn(text)
	}
}
