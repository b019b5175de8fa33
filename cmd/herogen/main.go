package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for CLI usage.
var (
	ErrUnexpectedArgs = errors.New("unexpected arguments")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

func main() {
	verbose := hasFlag(os.Args[1:], "-v", "--verbose")

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
// With no command, generate runs.
func runMain(ctx context.Context, args []string, env *Environment) int {
	cmd, rest := "generate", args[1:]
	if len(rest) > 0 && isCommand(rest[0]) {
		cmd, rest = rest[0], rest[1:]
	}

	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "herogen %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	}

	flags, positional, err := parseGenerateFlags(rest)
	if errors.Is(err, flag.ErrHelp) {
		printGenerateUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}
	if len(positional) > 0 {
		fmt.Fprintf(env.Stderr, "error: %v: %v\n", ErrUnexpectedArgs, positional)
		printGenerateUsage(env.Stderr)
		return ExitUsage
	}

	if err := runGenerate(ctx, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether arg names a subcommand rather than a flag.
func isCommand(arg string) bool {
	switch arg {
	case "generate", "doctor", "version", "help":
		return true
	}
	return false
}

// hasFlag reports whether any of names appears in args.
// Used before parsing, when only the verbose switch matters.
func hasFlag(args []string, names ...string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		for _, n := range names {
			if a == n {
				return true
			}
		}
	}
	return false
}
