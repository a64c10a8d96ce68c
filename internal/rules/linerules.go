package rules

import (
	"fmt"
	"strings"

	"github.com/btouchard/mlint/internal/config"
	"github.com/btouchard/mlint/internal/diag"
	"github.com/btouchard/mlint/internal/token"
)

// LineLengthRule emits when a physical line exceeds cfg.LineLength.
type LineLengthRule struct{}

func (r *LineLengthRule) Apply(h *diag.Handler, cfg *config.Config, filename string, lineNo int, line string) {
	if cfg.LineLength > 0 && len(line) > cfg.LineLength {
		pos := token.Position{File: filename, Line: lineNo, ColStart: cfg.LineLength, RawLine: line}
		h.StyleIssue(pos, fmt.Sprintf("line is %d characters long, exceeding the limit of %d", len(line), cfg.LineLength))
	}
}

// ConsecutiveBlanksRule carries a rolling is_blank flag across the calls
// for one file (spec.md §9 "Stateful line rules"); BuildLibrary creates a
// fresh instance per file, so this state never leaks between files.
type ConsecutiveBlanksRule struct {
	isBlank bool
	deleted []int
}

func (r *ConsecutiveBlanksRule) Apply(h *diag.Handler, cfg *config.Config, filename string, lineNo int, line string) {
	if strings.TrimSpace(line) != "" {
		r.isBlank = false
		return
	}
	if r.isBlank {
		pos := token.Position{File: filename, Line: lineNo}
		h.StyleIssue(pos, "more than one consecutive blank line", true)
		r.deleted = append(r.deleted, lineNo)
	}
	r.isBlank = true
}

// LinesToDelete returns the physical line numbers flagged as surplus
// blanks, consumed by the engine to mark the corresponding NEWLINE
// tokens for deletion before replay.
func (r *ConsecutiveBlanksRule) LinesToDelete() []int { return r.deleted }

// TabsRule emits at the column of the first tab character on a line. The
// auto-fix is realized by Lexer.CorrectTabs running before lexing
// (spec.md §4.3), not by any per-token fix directive here.
type TabsRule struct{}

func (r *TabsRule) Apply(h *diag.Handler, cfg *config.Config, filename string, lineNo int, line string) {
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		pos := token.Position{File: filename, Line: lineNo, ColStart: i + 1, RawLine: line}
		h.StyleIssue(pos, "line contains a tab character", true)
	}
}

// TrailingWhitespaceRule emits for a line ending in a space. The fix is
// realized for free: the lexer never emits a token for trailing
// whitespace, so the replayer's reconstruction from the token buffer
// never reintroduces it.
type TrailingWhitespaceRule struct{}

func (r *TrailingWhitespaceRule) Apply(h *diag.Handler, cfg *config.Config, filename string, lineNo int, line string) {
	if !strings.HasSuffix(line, " ") && !strings.HasSuffix(line, "\t") {
		return
	}
	trimmed := strings.TrimRight(line, " \t")
	if trimmed == "" {
		pos := token.Position{File: filename, Line: lineNo, RawLine: line}
		h.StyleIssue(pos, "whitespace on blank line", true)
		return
	}
	pos := token.Position{File: filename, Line: lineNo, ColStart: len(trimmed) + 1, ColEnd: len(line), RawLine: line}
	h.StyleIssue(pos, "trailing whitespace", true)
}
