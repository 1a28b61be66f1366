package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/driver"
)

func runRepl(opts cliOptions) int {
	session, err := newSession(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if !stdinIsTerminal() {
		if err := session.RunREPL(driver.NewBufferedLineReader(os.Stdin)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	fmt.Printf("%s\nCtrl-C cancels input, Ctrl-D exits. Type %s to exit.\n", cliVersion, driver.QuitCommand)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	historyPath := session.Config().History
	loadHistory(ln, historyPath)
	defer saveHistory(ln, historyPath)

	if err := session.RunREPL(&linerReader{ln: ln}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println()
	return 0
}

// linerReader adapts liner to driver.LineReader. Non-blank lines land in
// history as they are read.
type linerReader struct {
	ln *liner.State
}

func (r *linerReader) ReadLine(prompt string) (string, error) {
	line, err := r.ln.Prompt(prompt)
	switch {
	case errors.Is(err, liner.ErrPromptAborted):
		return "", driver.ErrAborted
	case errors.Is(err, io.EOF):
		return "", io.EOF
	case err != nil:
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		r.ln.AppendHistory(line)
	}
	return line, nil
}

func loadHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	if f, err := os.Open(path); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
}

func saveHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	if f, err := os.Create(path); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
}
