// Package analyzer implements the Stage-3 token analyzer (spec.md §4.4),
// the largest component of the style engine: a single pass over the token
// buffer with one-token lookback/lookahead, AST-link-aware indentation,
// copyright-header recognition, and the punctuation/operator/comment/
// continuation spacing rules, all expressed as mutations of each token's
// Fix record for the replayer to honor.
package analyzer

import (
	"strings"

	"github.com/btouchard/mlint/internal/ast"
	"github.com/btouchard/mlint/internal/config"
	"github.com/btouchard/mlint/internal/diag"
	"github.com/btouchard/mlint/internal/token"
)

// Analyzer holds the state threaded through one left-to-right pass over a
// file's token buffer.
type Analyzer struct {
	toks []token.Token
	tree *ast.Tree
	cfg  *config.Config
	h    *diag.Handler

	statementStartIdx int // index into toks, or -1
	enclosingAST      ast.Node
}

// Analyze runs the full Stage-3 pass over toks, mutating their Fix
// records in place and appending diagnostics to h. tree may be nil (a
// parse error leaves parse_tree=none, per spec.md §7); indentation and
// operator-arity-dependent checks degrade gracefully in that case.
func Analyze(toks []token.Token, tree *ast.Tree, cfg *config.Config, h *diag.Handler) {
	a := &Analyzer{toks: toks, tree: tree, cfg: cfg, h: h, statementStartIdx: -1}
	a.run()
}

func (a *Analyzer) run() {
	// Justifications are registered in a pass of their own, ahead of any
	// diagnostic emission: a "mh:ignore_style" comment sits at the end of
	// its line, so suppression must not depend on emission having already
	// passed that point left to right (miss_hit's Message_Handler defers
	// suppression to print time for the same reason).
	for i := range a.toks {
		tok := &a.toks[i]
		if (tok.Kind == token.COMMENT || tok.Kind == token.CONTINUATION) && strings.Contains(tok.RawText, "mh:ignore_style") {
			a.h.RegisterJustification(tok)
		}
	}

	a.runCopyrightHeader()

	if len(a.toks) > 0 && a.toks[0].Kind == token.NEWLINE {
		a.noStartingNewline(0)
	}

	for i := range a.toks {
		tok := &a.toks[i]

		if tok.FirstInStatement {
			a.updateEnclosingAST(i)
			a.statementStartIdx = i
		}

		if tok.Anonymous {
			continue
		}

		a.punctuationSpacing(i)
		a.operatorSpacing(i)
		if tok.Kind == token.COMMENT {
			a.commentHygiene(i)
		}
		if tok.Kind == token.CONTINUATION {
			a.continuationSpacing(i)
		}
		if tok.FirstInLine && !tok.BlockComment {
			a.indentation(i)
		}
	}
}

// updateEnclosingAST applies spec.md §4.4's statement-start tracking: the
// enclosing AST context is (re)computed from the PREVIOUS statement-start
// token, right before the new one (at idx) takes over as current.
func (a *Analyzer) updateEnclosingAST(idx int) {
	if a.statementStartIdx < 0 {
		return
	}
	prev := &a.toks[a.statementStartIdx]
	if prev.Kind == token.KEYWORD && token.BlockTerminators[prev.Value] {
		a.enclosingAST = nil
		return
	}
	if a.tree != nil && prev.ASTLink != token.NoLink {
		if node := a.tree.Get(ast.NodeID(prev.ASTLink)); node != nil && node.CausesIndentation() {
			a.enclosingAST = node
		}
	}
}

func (a *Analyzer) noStartingNewline(idx int) {
	if !a.cfg.NoStartingNewline {
		return
	}
	tok := &a.toks[idx]
	a.h.StyleIssue(tok.Pos, "file must not start with a blank line", true)
	tok.Fix.Delete = true
}

// prevInLine/nextInLine return the previous/next tokens in the same physical line, or
// nil when the neighbor is absent or on a different line (spec.md §4.4
// prev_in_line / next_in_line).
func (a *Analyzer) prevInLine(idx int) *token.Token {
	if idx == 0 {
		return nil
	}
	prev := &a.toks[idx-1]
	if prev.Pos.Line != a.toks[idx].Pos.Line {
		return nil
	}
	return prev
}

func (a *Analyzer) nextInLine(idx int) *token.Token {
	if idx+1 >= len(a.toks) {
		return nil
	}
	next := &a.toks[idx+1]
	if next.Kind == token.NEWLINE || next.Pos.Line != a.toks[idx].Pos.Line {
		return nil
	}
	return next
}

// wsBefore/wsAfter return the column gap to the same-line neighbor, and
// whether that neighbor exists at all (spec.md §4.4 ws_before/ws_after).
func (a *Analyzer) wsBefore(idx int) (int, bool) {
	prev := a.prevInLine(idx)
	if prev == nil {
		return 0, false
	}
	return a.toks[idx].Pos.ColStart - prev.Pos.ColEnd - 1, true
}

func (a *Analyzer) wsAfter(idx int) (int, bool) {
	next := a.nextInLine(idx)
	if next == nil {
		return 0, false
	}
	return next.Pos.ColStart - a.toks[idx].Pos.ColEnd - 1, true
}
