package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  reef run <file.reef> [--debug N] [--config PATH]")
	fmt.Fprintln(os.Stderr, "  reef <file.reef>")
	fmt.Fprintln(os.Stderr, "  reef repl [--debug N] [--config PATH]")
	fmt.Fprintln(os.Stderr, "  reef                 REPL on a terminal, otherwise evaluates stdin")
	fmt.Fprintln(os.Stderr, "  reef version")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Settings come from reef.yml in the working directory when present;")
	fmt.Fprintln(os.Stderr, "--config selects another file and --debug overrides the debug level.")
}
