package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// commands lists the subcommand names.
var commands = []string{"build", "init", "version", "help", "completion"}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	for _, c := range commands {
		if arg == c {
			return true
		}
	}
	return false
}

// wantsVerbose scans raw arguments for the verbose flag.
func wantsVerbose(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// runMain dispatches to a subcommand and returns the process exit code.
// Without a known command, the arguments are handled by build.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := "build", args
	if isCommand(args[0]) {
		cmd, rest = args[0], args[1:]
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "txt2epub %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env)
		return ExitSuccess
	case "completion":
		return report(env, runCompletion(rest, env))
	case "init":
		return report(env, runInit(rest, env))
	default:
		flags, positional, err := parseBuildFlags(rest)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return ExitSuccess
			}
			fmt.Fprintln(env.Stderr, err)
			return ExitUsage
		}
		return report(env, runBuild(ctx, positional, flags, env))
	}
}

// report prints err with its hint and maps it to an exit code.
func report(env *Environment, err error) int {
	if err == nil {
		return ExitSuccess
	}
	msg := err.Error()
	if hint := hintFor(err); hint != "" && !strings.Contains(msg, "hint:") {
		msg += hint
	}
	fmt.Fprintln(env.Stderr, "error: "+msg)
	return exitCodeFor(err)
}
