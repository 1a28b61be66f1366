package main

import (
	"fmt"
	"os"
)

const cliVersion = "reef 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, remaining, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if len(remaining) == 0 {
		return runDefault(opts)
	}

	switch remaining[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliVersion)
		return 0
	case "run":
		if len(remaining) != 2 {
			fmt.Fprintln(os.Stderr, "reef run expects exactly one source file")
			return 2
		}
		return runFile(remaining[1], opts)
	case "repl":
		if len(remaining) != 1 {
			fmt.Fprintln(os.Stderr, "reef repl does not take arguments")
			return 2
		}
		return runRepl(opts)
	default:
		if len(remaining) != 1 {
			fmt.Fprintf(os.Stderr, "reef: unknown command %q\n", remaining[0])
			printUsage()
			return 2
		}
		// Bare `reef <file>` is shorthand for `reef run <file>`.
		return runFile(remaining[0], opts)
	}
}
