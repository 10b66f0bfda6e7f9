package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LineConsole reads answers line by line from an io.Reader and writes
// prompts and messages to an io.Writer. It works with pipes and redirected
// input as well as terminals.
type LineConsole struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineConsole wires a console to the given reader and writer.
func NewLineConsole(in io.Reader, out io.Writer) *LineConsole {
	return &LineConsole{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Stdio returns a LineConsole bound to standard input and standard output.
func Stdio() *LineConsole {
	return NewLineConsole(os.Stdin, os.Stdout)
}

func (c *LineConsole) Input(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c == nil || c.in == nil || c.out == nil {
		return "", ErrNotConfigured
	}
	if _, err := io.WriteString(c.out, prompt); err != nil {
		return "", err
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		// A final line without a terminator is still an answer.
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func (c *LineConsole) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c == nil || c.out == nil {
		return ErrNotConfigured
	}
	_, err := fmt.Fprintln(c.out, msg)
	return err
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
