// Package ck provides interactive console validators modeled on the classic
// ck* utilities: ckdate, ckgid, ckint, ckitem, ckkeywd, ckpath, ckrange,
// ckstr, cktime, ckuid and ckyorn.
//
// Each validator prompts with "{prompt} [{hint}]: ", re-prompts on invalid
// answers, prints help on "?", returns the configured default on an empty
// answer, and returns prompt.ErrUserQuit when the operator enters "q",
// "quit" or input ends:
//
//	p := ck.New()
//	n, err := p.Range(ctx, ck.RangeConfig{Prompt: "Pick", Lower: ck.Ptr(1), Upper: ck.Ptr(10)})
//	if errors.Is(err, prompt.ErrUserQuit) {
//		return nil
//	}
//
// The rule constructors (DateRule, IntRule, ...) expose the validation step
// on its own so callers can check text without prompting.
package ck
