package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/btouchard/mlint/internal/ast"
	"github.com/btouchard/mlint/internal/config"
	"github.com/btouchard/mlint/internal/diag"
	"github.com/btouchard/mlint/internal/dispatch"
	"github.com/btouchard/mlint/internal/engine"
	"github.com/btouchard/mlint/internal/parser"
	"github.com/btouchard/mlint/internal/report"
	"github.com/btouchard/mlint/internal/token"
)

// stringList accumulates repeated occurrences of a flag, e.g.
// --copyright-entity "Acme" --copyright-entity "Acme Labs".
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fix := fs.Bool("fix", false, "rewrite files in place with every auto-fixable rule applied")
	noStyle := fs.Bool("no-style", false, "suppress style-severity diagnostics at the sink")
	tabWidth := fs.Int("tab-width", 0, "override tab_width (0 keeps the configured/default value)")
	lineLength := fs.Int("line-length", 0, "override line_length (0 keeps the configured/default value)")
	fileLength := fs.Int("file-length", 0, "override file_length (0 keeps the configured/default value)")
	configPath := fs.String("config", "", "path to a TOML project configuration file")
	htmlPath := fs.String("html", "", "write an aggregate HTML report to this path")
	debugDumpTree := fs.String("debug-dump-tree", "", "write a parse-tree dump for each file to this path")
	debugValidateLinks := fs.Bool("debug-validate-links", false, "verify every token's ast_link resolves after parsing")
	workers := fs.Int("workers", 4, "maximum number of files analyzed concurrently")
	var entities stringList
	fs.Var(&entities, "copyright-entity", "organization name the copyright notice must mention (repeatable)")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: mlint check [flags] <files...>\n\nFlags:\n")
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
	if *tabWidth > 0 {
		cfg.TabWidth = *tabWidth
	}
	if *lineLength > 0 {
		cfg.LineLength = *lineLength
	}
	if *fileLength > 0 {
		cfg.FileLength = *fileLength
	}
	cfg.Fix = *fix
	cfg.NoStyle = *noStyle
	cfg.ApplyEntities(entities)

	files := fs.Args()

	if *debugDumpTree != "" || *debugValidateLinks {
		runDebugPasses(files, *debugDumpTree, *debugValidateLinks)
	}

	results, err := dispatch.Run(context.Background(), files, cfg, *workers)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "mlint: %v\n", err)
		os.Exit(1)
	}

	exitCode := printResults(results, cfg.NoStyle)

	if *htmlPath != "" {
		if err := writeHTMLReport(*htmlPath, results); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "mlint: %v\n", err)
			exitCode = 1
		}
	}

	if cfg.Fix {
		for _, res := range results {
			if res.Changed {
				if err := os.WriteFile(res.Filename, []byte(res.Fixed), 0644); err != nil {
					_, _ = fmt.Fprintf(os.Stderr, "mlint: writing %s: %v\n", res.Filename, err)
					exitCode = 1
				}
			}
		}
	}

	os.Exit(exitCode)
}

func printResults(results []engine.Result, noStyle bool) int {
	exitCode := 0
	for _, res := range results {
		shown := 0
		for _, d := range res.Diagnostics {
			if noStyle && d.Severity == diag.Style {
				continue
			}
			fmt.Printf("%s:%d:%d: %s: %s\n", d.Pos.File, d.Pos.Line, d.Pos.ColStart, d.Severity, d.Message)
			shown++
		}
		if res.HasErrors {
			exitCode = 1
		} else if shown > 0 {
			exitCode = max(exitCode, 1)
		}
	}
	return exitCode
}

func writeHTMLReport(path string, results []engine.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating html report: %w", err)
	}
	defer func() { _ = f.Close() }()
	return report.WriteHTML(f, results)
}

// runDebugPasses performs a standalone parse over each file to satisfy
// --debug-dump-tree/--debug-validate-links, independent of the
// engine.AnalyzeFile pipeline (which does not expose the parse tree to
// its caller by design — these are debug-only escape hatches).
func runDebugPasses(files []string, dumpPath string, validateLinks bool) {
	var dump strings.Builder
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "mlint: %v\n", err)
			continue
		}
		p := parser.New(string(data), file)
		roots := p.Parse()

		if dumpPath != "" {
			dump.WriteString(file + ":\n")
			for _, n := range roots {
				dumpNode(&dump, p.Tree(), n, 1)
			}
		}

		if validateLinks {
			for _, tok := range p.Tokens() {
				if tok.ASTLink == token.NoLink {
					continue
				}
				if p.Tree().Get(ast.NodeID(tok.ASTLink)) == nil {
					_, _ = fmt.Fprintf(os.Stderr, "mlint: %s:%d:%d: dangling ast_link %d\n", file, tok.Pos.Line, tok.Pos.ColStart, tok.ASTLink)
				}
			}
		}
	}
	if dumpPath != "" {
		if err := os.WriteFile(dumpPath, []byte(dump.String()), 0644); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "mlint: writing %s: %v\n", dumpPath, err)
		}
	}
}

func dumpNode(w *strings.Builder, tree *ast.Tree, n ast.Node, depth int) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%s%T (indent=%d)\n", strings.Repeat("  ", depth), n, n.Indentation())

	var children []ast.Node
	switch v := n.(type) {
	case *ast.FuncDecl:
		children = v.Body
	case *ast.IfStmt:
		for _, b := range v.Branches {
			children = append(children, b.Body...)
		}
	case *ast.ForStmt:
		children = v.Body
	case *ast.ParforStmt:
		children = v.Body
	case *ast.WhileStmt:
		children = v.Body
	case *ast.SwitchStmt:
		for _, c := range v.Cases {
			children = append(children, c.Body...)
		}
	case *ast.ClassdefDecl:
		children = v.Body
	case *ast.PropertiesBlock:
		children = v.Body
	case *ast.MethodsBlock:
		children = v.Body
	case *ast.EventsBlock:
		children = v.Body
	case *ast.TryStmt:
		children = append(append([]ast.Node{}, v.Body...), v.CatchBody...)
	}
	for _, c := range children {
		dumpNode(w, tree, c, depth+1)
	}
}
