// Package testsupport holds helpers shared by package tests.
package testsupport

import (
	"context"
	"io"
	"strings"
)

// ScriptedConsole replays canned answers and records everything the prompt
// loop writes. Once the script is exhausted Input reports io.EOF, which the
// loop treats as end of input.
type ScriptedConsole struct {
	Answers []string
	Prompts []string
	Infos   []string
	// Err, when set, is returned by Input instead of the next answer.
	Err error

	pos int
}

// NewScriptedConsole seeds a console with answers.
func NewScriptedConsole(answers ...string) *ScriptedConsole {
	return &ScriptedConsole{Answers: answers}
}

func (s *ScriptedConsole) Input(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.Prompts = append(s.Prompts, prompt)
	if s.Err != nil {
		return "", s.Err
	}
	if s.pos >= len(s.Answers) {
		return "", io.EOF
	}
	answer := s.Answers[s.pos]
	s.pos++
	return answer, nil
}

func (s *ScriptedConsole) Info(_ context.Context, msg string) error {
	s.Infos = append(s.Infos, msg)
	return nil
}

// Reads reports how many answers were consumed.
func (s *ScriptedConsole) Reads() int {
	return s.pos
}

// Output joins everything written with Info, one message per line.
func (s *ScriptedConsole) Output() string {
	return strings.Join(s.Infos, "\n")
}
