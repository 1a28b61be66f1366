package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/driver"
)

const defaultConfigFile = "reef.yml"

// loadConfig resolves the session settings: an explicit --config path must
// load, a reef.yml in the working directory loads when present, otherwise
// defaults apply. A --debug flag overrides whichever debug level the file set.
func loadConfig(opts cliOptions) (driver.Config, error) {
	cfg := driver.DefaultConfig()
	switch {
	case opts.configPath != "":
		loaded, err := driver.LoadConfig(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	default:
		if _, err := os.Stat(defaultConfigFile); err == nil {
			loaded, err := driver.LoadConfig(defaultConfigFile)
			if err != nil {
				return cfg, err
			}
			cfg = loaded
		}
	}
	if opts.debug >= 0 {
		cfg.Debug = opts.debug
	}
	return cfg, nil
}

func newSession(opts cliOptions) (*driver.Session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return driver.NewSession(cfg, os.Stdout, os.Stderr), nil
}

func runFile(path string, opts cliOptions) int {
	session, err := newSession(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := session.RunFile(path); err != nil {
		return 1
	}
	return 0
}

// runStdin evaluates everything on stdin as one file-mode unit, enabling
// `echo 'log 1;' | reef`.
func runStdin(opts cliOptions) int {
	session, err := newSession(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read stdin: %v\n", err)
		return 1
	}
	if err := session.RunSource("stdin", string(source)); err != nil {
		return 1
	}
	return 0
}

// runDefault picks the mode for a bare `reef`: interactive when stdin is a
// terminal, stdin-as-file otherwise.
func runDefault(opts cliOptions) int {
	if stdinIsTerminal() {
		return runRepl(opts)
	}
	return runStdin(opts)
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
