package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrAborted is returned when the user cancels input.
var ErrAborted = errors.New("aborted by user")

const requiredHint = "A value is required."

// Prompter asks the user questions. Answers are trimmed of surrounding
// whitespace.
type Prompter interface {
	// AskRequired repeats the question until a non-blank answer is given.
	AskRequired(prompt string) (string, error)

	// AskOptional returns the answer, which may be empty.
	AskOptional(prompt string) (string, error)
}

// NewPrompter returns a TeaPrompter when both in and out are terminals and a
// LinePrompter otherwise.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if isTerminal(in) && isTerminal(out) {
		return NewTeaPrompter(in, out)
	}

	return NewLinePrompter(in, out)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && f != nil && term.IsTerminal(int(f.Fd()))
}

// LinePrompter reads one line per answer.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) AskRequired(prompt string) (string, error) {
	for {
		answer, err := p.AskOptional(prompt)
		if err != nil {
			return "", err
		}

		if answer != "" {
			return answer, nil
		}

		_, _ = fmt.Fprintln(p.out, requiredHint)
	}
}

func (p *LinePrompter) AskOptional(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if line == "" {
			_, _ = fmt.Fprintln(p.out)
			return "", ErrAborted
		}
	}

	return strings.TrimSpace(line), nil
}
