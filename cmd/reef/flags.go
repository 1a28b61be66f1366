package main

import (
	"fmt"
	"strconv"
	"strings"
)

// cliOptions carries the flags shared by every subcommand. Debug is -1 when
// the flag was not given so a config file value can win.
type cliOptions struct {
	debug      int
	configPath string
}

// parseFlags scans --debug and --config out of args, in any position, and
// returns the remaining arguments in order.
func parseFlags(args []string) (cliOptions, []string, error) {
	opts := cliOptions{debug: -1}
	remaining := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--debug":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--debug expects a value")
			}
			level, err := parseDebugValue(args[i+1])
			if err != nil {
				return opts, nil, err
			}
			opts.debug = level
			i++
		case strings.HasPrefix(arg, "--debug="):
			level, err := parseDebugValue(strings.TrimPrefix(arg, "--debug="))
			if err != nil {
				return opts, nil, err
			}
			opts.debug = level
		case arg == "--config":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--config expects a path")
			}
			opts.configPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			path := strings.TrimPrefix(arg, "--config=")
			if path == "" {
				return opts, nil, fmt.Errorf("--config expects a path")
			}
			opts.configPath = path
		default:
			remaining = append(remaining, arg)
		}
	}
	return opts, remaining, nil
}

func parseDebugValue(value string) (int, error) {
	level, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || level < 0 {
		return 0, fmt.Errorf("--debug expects a non-negative integer, got '%s'", value)
	}
	return level, nil
}
