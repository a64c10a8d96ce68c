// Command mlint is the CLI driver for the style engine: it loads
// configuration, dispatches file analysis across a bounded worker pool,
// prints diagnostics, and optionally rewrites files in place or emits an
// HTML report.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		cmdCheck(os.Args[2:])
	case "fmt":
		cmdFmt(os.Args[2:])
	case "-h", "--help", "help":
		usage()
	default:
		_, _ = fmt.Fprintf(os.Stderr, "mlint: unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	_, _ = fmt.Fprintf(os.Stderr, `Usage: mlint <command> [arguments]

Commands:
  check   analyze files and report style diagnostics
  fmt     rewrite files in place, applying every auto-fixable rule

Run "mlint check -h" or "mlint fmt -h" for command-specific flags.
`)
}
