package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/btouchard/mlint/internal/config"
	"github.com/btouchard/mlint/internal/dispatch"
)

// cmdFmt is shorthand for "check --fix" restricted to every auto-fixable
// rule turned on, naming the teacher's existing fmt subcommand
// convention but generalized to this engine's token-buffer replay
// instead of the teacher's section-reordering rewrite.
func cmdFmt(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	workers := fs.Int("workers", 4, "maximum number of files analyzed concurrently")
	configPath := fs.String("config", "", "path to a TOML project configuration file")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: mlint fmt [flags] <files...>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "mlint: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	enableAutofixableRules(cfg)
	cfg.Fix = true

	results, err := dispatch.Run(context.Background(), fs.Args(), cfg, *workers)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "mlint: %v\n", err)
		os.Exit(1)
	}

	exitCode := 0
	for _, res := range results {
		if res.FixSkipped {
			_, _ = fmt.Fprintf(os.Stderr, "%s: not rewritten, file contains parse errors\n", res.Filename)
			exitCode = 1
			continue
		}
		if !res.Changed {
			continue
		}
		if err := os.WriteFile(res.Filename, []byte(res.Fixed), 0644); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "mlint: writing %s: %v\n", res.Filename, err)
			exitCode = 1
			continue
		}
		fmt.Printf("formatted %s\n", res.Filename)
	}
	os.Exit(exitCode)
}

// enableAutofixableRules turns on every optional rule whose Stage-3
// fix is a straightforward rewrite, matching fmt's "apply every
// auto-fixable rule" contract without requiring the caller to spell out
// each --whitespace-* flag individually.
func enableAutofixableRules(cfg *config.Config) {
	cfg.WhitespaceComma = true
	cfg.WhitespaceColon = true
	cfg.WhitespaceAssignment = true
	cfg.WhitespaceBrackets = true
	cfg.WhitespaceKeywords = true
	cfg.WhitespaceComments = true
	cfg.WhitespaceContinuation = true
	cfg.UselessContinuation = true
	cfg.DangerousContinuation = true
	cfg.OperatorWhitespace = true
	cfg.AnnotationWhitespace = true
	cfg.NoStartingNewline = true
	cfg.Indentation = true
}
