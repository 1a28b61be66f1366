package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/parser"
)

// ErrAborted is returned by a LineReader when the user cancels the line being
// entered (Ctrl-C under line editing). The loop discards the submission being
// collected and prompts afresh.
var ErrAborted = errors.New("input aborted")

// QuitCommand exits the loop when entered as the whole first line of a
// submission.
const QuitCommand = ":quit"

// LineReader supplies one line of interactive input per call, without its
// trailing newline. io.EOF ends the session.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// BufferedLineReader adapts a plain reader to LineReader for piped stdin and
// tests. Prompts are discarded: there is no terminal to show them on.
type BufferedLineReader struct {
	scanner *bufio.Scanner
}

func NewBufferedLineReader(r io.Reader) *BufferedLineReader {
	return &BufferedLineReader{scanner: bufio.NewScanner(r)}
}

func (r *BufferedLineReader) ReadLine(string) (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

// Collector accumulates the lines of one REPL submission and decides when
// they form a complete unit. Completeness is probed by an interactive parse:
// running out of tokens mid-construct means "keep collecting", while a hard
// error or a clean parse means the submission is ready (evaluation re-parses
// and reports the error properly).
type Collector struct {
	lines []string
}

// Collecting reports whether a partial submission is pending, i.e. whether
// the next prompt should be the continuation prompt.
func (c *Collector) Collecting() bool {
	return len(c.lines) > 0
}

// Push appends one line and reports whether the accumulated source is ready
// to evaluate.
func (c *Collector) Push(line string) bool {
	c.lines = append(c.lines, line)
	_, err := parser.ParseInteractive(c.Source())
	return err == nil || !parser.IsIncomplete(err)
}

// Source returns the accumulated submission text.
func (c *Collector) Source() string {
	return strings.Join(c.lines, "\n")
}

// Reset discards the pending submission.
func (c *Collector) Reset() {
	c.lines = c.lines[:0]
}

// RunREPL drives the interactive loop: collect lines until a submission is
// complete, evaluate it, report the value or error, repeat. Session bindings
// survive failed submissions. The loop ends on end of input or QuitCommand;
// the returned error is nil for both, non-nil only for a reader fault.
func (s *Session) RunREPL(lines LineReader) error {
	collector := &Collector{}
	for {
		prompt := s.config.Prompt
		if collector.Collecting() {
			prompt = s.config.Continuation
		}
		line, err := lines.ReadLine(prompt)
		switch {
		case errors.Is(err, ErrAborted):
			collector.Reset()
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		if !collector.Collecting() {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if trimmed == QuitCommand {
				return nil
			}
		}

		if !collector.Push(line) {
			continue
		}
		source := collector.Source()
		collector.Reset()

		result, err := s.EvalSource("repl", source)
		if err != nil {
			fmt.Fprintln(s.errOut, DescribeWithSource(err, source))
			continue
		}
		if result.Echo {
			fmt.Fprintln(s.out, formatResult(result.Value))
		}
	}
}
