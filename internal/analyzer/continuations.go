package analyzer

import "github.com/btouchard/mlint/internal/token"

// continuationSpacing implements the line-continuation rules of
// spec.md §4.4: whitespace_continuation, operator_after_continuation,
// useless_continuation, dangerous_continuation.
func (a *Analyzer) continuationSpacing(idx int) {
	tok := &a.toks[idx]

	if a.cfg.WhitespaceContinuation {
		if gap, ok := a.wsBefore(idx); ok && gap == 0 {
			a.h.StyleIssue(tok.Pos, "continuation must be preceded by whitespace", true)
			tok.Fix.EnsureWSBefore = true
		}
	}

	if next := a.afterContinuation(idx); next != nil {
		if a.cfg.OperatorAfterContinuation && next.FirstInLine && next.Kind == token.OPERATOR && next.Fix.BinaryOperator {
			a.h.StyleIssue(next.Pos, "binary operator must not start a continuation line")
		}

		if a.cfg.UselessContinuation {
			if next.Kind == token.NEWLINE || next.Kind == token.COMMENT {
				a.h.StyleIssue(tok.Pos, "useless line continuation", true)
				tok.Fix.ReplaceWithNewline = true
			}
		}
	}

	if idx > 0 && a.toks[idx-1].Fix.StatementTerminator && a.cfg.UselessContinuation {
		a.h.StyleIssue(tok.Pos, "useless line continuation after statement terminator", true)
		tok.Fix.Delete = true
	}

	// dangerous_continuation: the diagnostic fires whenever the preceding
	// token carries flag_continuations, regardless of whether the rule is
	// enabled; the fix (replacing it with a newline) only applies when the
	// rule is active, matching the original's fixed=False/fixed=True split.
	if idx > 0 && a.toks[idx-1].Fix.FlagContinuations {
		fixed := a.cfg.DangerousContinuation
		a.h.StyleIssue(tok.Pos, "continuation after a complete expression is easy to misread", fixed)
		if fixed {
			tok.Fix.ReplaceWithNewline = true
		}
	}
}

// afterContinuation returns the token that actually follows the
// continuation at idx for classification purposes. The lexer always
// emits a NEWLINE immediately after a continuation to close out its own
// physical line, so that mandatory NEWLINE is never itself the answer to
// "what follows this continuation" — it is skipped in favor of the first
// token of the continued line, the same way miss_hit's continuation
// token (which consumes that physical newline during lexing) exposes it
// directly as next_token. A continuation followed by a same-line comment
// (no intervening NEWLINE, because the comment consumed the rest of that
// line first) is returned as-is.
func (a *Analyzer) afterContinuation(idx int) *token.Token {
	if idx+1 >= len(a.toks) {
		return nil
	}
	next := &a.toks[idx+1]
	if next.Kind == token.NEWLINE {
		if idx+2 >= len(a.toks) {
			return nil
		}
		return &a.toks[idx+2]
	}
	return next
}
