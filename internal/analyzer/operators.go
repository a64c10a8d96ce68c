package analyzer

import "github.com/btouchard/mlint/internal/token"

var powerOps = map[string]bool{"^": true, ".^": true}
var suffixOps = map[string]bool{"'": true, ".'": true}

// operatorSpacing implements operator_whitespace (spec.md §4.4), driven by
// the parser-classified unary_operator/binary_operator flags. Suffix
// transpose operators are recognized by spelling, since our grammar only
// ever produces ' and .' in postfix position.
func (a *Analyzer) operatorSpacing(idx int) {
	if !a.cfg.OperatorWhitespace {
		return
	}
	tok := &a.toks[idx]
	if tok.Kind != token.OPERATOR {
		return
	}

	switch {
	case suffixOps[tok.Value]:
		if gap, ok := a.wsBefore(idx); ok && gap > 0 {
			a.h.StyleIssue(tok.Pos, tok.Value+" must not be preceded by whitespace", true)
			tok.Fix.EnsureTrimBefore = true
		}
	case powerOps[tok.Value]:
		if gap, ok := a.wsBefore(idx); ok && gap > 0 {
			a.h.StyleIssue(tok.Pos, tok.Value+" must not be preceded by whitespace", true)
			tok.Fix.EnsureTrimBefore = true
		}
		if gap, ok := a.wsAfter(idx); ok && gap > 0 {
			a.h.StyleIssue(tok.Pos, tok.Value+" must not be followed by whitespace", true)
			tok.Fix.EnsureTrimAfter = true
		}
	case tok.Fix.UnaryOperator:
		if gap, ok := a.wsAfter(idx); ok && gap > 0 {
			a.h.StyleIssue(tok.Pos, tok.Value+" must not be followed by whitespace", true)
			tok.Fix.EnsureTrimAfter = true
		}
	case tok.Fix.BinaryOperator:
		if gap, ok := a.wsBefore(idx); ok && gap != 1 {
			a.h.StyleIssue(tok.Pos, tok.Value+" must be preceded by exactly one space", true)
			tok.Fix.EnsureWSBefore = true
		}
		if gap, ok := a.wsAfter(idx); ok && gap != 1 {
			a.h.StyleIssue(tok.Pos, tok.Value+" must be followed by exactly one space", true)
			tok.Fix.EnsureWSAfter = true
		}
	}
}
