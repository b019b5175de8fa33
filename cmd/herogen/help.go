package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: herogen [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Write the hero banner (default)")
	fmt.Fprintln(w, "  doctor     Check the logo, output directory and Chrome")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'herogen help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: herogen [generate] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a 1200x630 banner from a logo SVG.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <path>        Logo SVG (default public/logo.svg)")
	fmt.Fprintln(w, "  -o, --output <path>       Banner SVG (default public/hero_gen.svg)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/hero.svg.tmpl")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Text:")
	fmt.Fprintln(w, "      --title <s>           Title (default \"Pinned Casts\")")
	fmt.Fprintln(w, "      --subtitle <s>        Subtitle (default \"Dynamic View\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PNG:")
	fmt.Fprintln(w, "      --png                 Also write a .png beside the SVG (needs Chrome)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PNG timeout, applied to browser start-up")
	fmt.Fprintln(w, "                            (including a first-use download) and to rendering (default 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show extraction stats and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  HERO_CONFIG, HERO_INPUT, HERO_OUTPUT, HERO_ASSET_PATH, HERO_TIMEOUT")
	fmt.Fprintln(w, "  Precedence: defaults < config file < environment < flags")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: herogen doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that a banner can be generated.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -i, --input <path>        Logo SVG to inspect")
	fmt.Fprintln(w, "  -o, --output <path>       Banner path whose directory must be writable")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom template directory to inspect")
	fmt.Fprintln(w, "      --json                Output as JSON")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: herogen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: herogen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
