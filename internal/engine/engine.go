// Package engine wires the full analysis pipeline together for one file:
// Stage-1 file rules, Stage-2 line rules, lexing, tolerant parsing,
// Stage-3 token analysis, and — when requested — replay into corrected
// text. It is the `Analyze` entry point spec.md §4.7/§7 describes,
// grounded on `cmd/gmx/compile.go`'s staged compile() pipeline and
// `MH_Style.process_wp`'s stage ordering.
package engine

import (
	"fmt"

	"github.com/btouchard/mlint/internal/analyzer"
	"github.com/btouchard/mlint/internal/ast"
	"github.com/btouchard/mlint/internal/config"
	"github.com/btouchard/mlint/internal/diag"
	"github.com/btouchard/mlint/internal/lexer"
	"github.com/btouchard/mlint/internal/parser"
	"github.com/btouchard/mlint/internal/replay"
	"github.com/btouchard/mlint/internal/rules"
	"github.com/btouchard/mlint/internal/token"
)

// Result is the outcome of analyzing one file.
type Result struct {
	Filename    string
	Diagnostics []diag.Diagnostic

	// Fixed holds the rewritten source text when Fix was requested and
	// the file parsed cleanly enough to replay safely; Changed reports
	// whether Fixed differs from the original input.
	Fixed      string
	Changed    bool
	FixSkipped bool // Fix was requested but withheld due to parse errors

	HasErrors bool
	HasFatal  bool
}

// linesToDeleter is satisfied by rules.ConsecutiveBlanksRule; the engine
// type-asserts for it rather than widening the LineRule interface, since
// no other Stage-2 rule needs a post-pass side channel into the token
// buffer.
type linesToDeleter interface {
	LinesToDelete() []int
}

// AnalyzeFile runs every stage of spec.md's pipeline over one file's text.
// showContext controls whether diagnostics carry the offending source
// line, mirroring the CLI's --verbose-ish display toggle; it is not a
// project-file setting, so it travels as a parameter rather than a
// config.Config field. The returned error is reserved for internal
// consistency failures (an inconsistent rule registry); anything
// file-specific is reported as a Diagnostic inside Result.
func AnalyzeFile(filename, text string, cfg *config.Config, showContext bool) (Result, error) {
	lib, err := rules.BuildLibrary(cfg)
	if err != nil {
		return Result{}, fmt.Errorf("engine: %w", err)
	}

	h := diag.NewHandler(showContext, !cfg.NoStyle, cfg.Fix)

	l := lexer.New(text, filename)
	lines := l.Lines()

	for _, r := range lib.OnFile {
		r.Apply(h, cfg, filename, text, lines)
	}

	var blankLines []int
	for i, line := range lines {
		lineNo := i + 1
		for _, r := range lib.OnLine {
			r.Apply(h, cfg, filename, lineNo, line)
			if d, ok := r.(linesToDeleter); ok {
				blankLines = append(blankLines, d.LinesToDelete()...)
			}
		}
	}

	sourceText := text
	if cfg.Fix && cfg.TabWidth > 0 {
		l.CorrectTabs(cfg.TabWidth)
		sourceText = l.Text()
	}

	p := parser.New(sourceText, filename)
	p.Parse()
	toks := p.Tokens()

	for _, msg := range p.Errors() {
		h.Error(filePos(filename, toks), msg, false)
	}

	var tree *ast.Tree
	if len(p.Errors()) == 0 {
		tree = p.Tree()
	}

	markLinesForDeletion(toks, blankLines)

	analyzer.Analyze(toks, tree, cfg, h)

	if cfg.Fix && len(p.Errors()) > 0 {
		h.Error(filePos(filename, toks), "file is not auto-fixed because it contains parse errors", false)
	}

	h.SortBySourceOrder()

	res := Result{
		Filename:    filename,
		Diagnostics: h.Diagnostics,
		HasErrors:   h.HasErrors(),
		HasFatal:    h.HasFatal(),
	}

	if cfg.Fix {
		if len(p.Errors()) > 0 {
			res.FixSkipped = true
		} else {
			fixed := replay.Render(toks)
			res.Fixed = fixed
			res.Changed = fixed != text
		}
	}

	return res, nil
}

// markLinesForDeletion flags the NEWLINE token ending each surplus blank
// line so replay drops it, bridging Stage-2's line-oriented view of
// consecutive_blanks into the Stage-3 token buffer the replayer consumes.
func markLinesForDeletion(toks []token.Token, lineNos []int) {
	if len(lineNos) == 0 {
		return
	}
	want := make(map[int]bool, len(lineNos))
	for _, n := range lineNos {
		want[n] = true
	}
	for i := range toks {
		if toks[i].Kind == token.NEWLINE && want[toks[i].Pos.Line] {
			toks[i].Fix.Delete = true
		}
	}
}

func filePos(filename string, toks []token.Token) token.Position {
	for _, t := range toks {
		if t.Kind != token.EOF {
			return token.Position{File: filename, Line: t.Pos.Line}
		}
	}
	return token.Position{File: filename, Line: 1}
}
