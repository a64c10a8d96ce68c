// Package replay rebuilds corrected source text from a mutated token
// buffer: the Stage-3 analyzer (and the Stage-1/2 rules, via the engine)
// attach FixRecord directives to tokens in place, and Render walks the
// buffer once to produce the rewritten file.
package replay

import (
	"strings"

	"github.com/btouchard/mlint/internal/token"
)

// Render replays toks (as produced by the lexer and mutated in place by
// the rule stages) into the corrected source text. toks may include a
// trailing EOF token, which contributes nothing of its own.
//
// Directive precedence on a single boundary, highest first: delete,
// replace_with_newline, correct_indent, ensure_trim_*, ensure_ws_*,
// add_newline. Only one of these ever actually applies to a given token
// or gap, since the analyzer never sets more than one directive that
// would conflict; the ordering here exists to make that contract
// explicit rather than to adjudicate simultaneous claims.
func Render(toks []token.Token) string {
	var out strings.Builder

	var prev *token.Token
	for i := range toks {
		tok := &toks[i]
		if tok.Kind == token.EOF {
			continue
		}

		if prev != nil {
			out.WriteString(gapBefore(prev, tok))
		}

		switch {
		case tok.Fix.Delete:
			// The token's own characters vanish; the whitespace on either
			// side of it is untouched, so prev still advances to this
			// token's position for the next boundary's gap math.
		case tok.Fix.ReplaceWithNewline:
			out.WriteString("\n")
		default:
			out.WriteString(tok.RawText)
		}

		if tok.Fix.AddNewline {
			out.WriteString("\n")
		}

		prev = tok
	}

	return enforceEOFNewline(out.String())
}

// gapBefore computes the separator text to emit between prev and cur.
// When cur starts a new physical line relative to prev, the gap is
// leading indentation (overridden by correct_indent when the analyzer
// computed one); otherwise it is intra-line horizontal whitespace
// (overridden by ensure_trim_*/ensure_ws_* when set).
func gapBefore(prev, cur *token.Token) string {
	if prev.Pos.Line != cur.Pos.Line {
		n := cur.Pos.ColStart - 1
		if cur.Fix.CorrectIndent != nil {
			n = *cur.Fix.CorrectIndent
		}
		if n < 0 {
			n = 0
		}
		return strings.Repeat(" ", n)
	}

	n := cur.Pos.ColStart - prev.Pos.ColEnd - 1
	if n < 0 {
		n = 0
	}

	trimBefore := cur.Fix.EnsureTrimBefore || prev.Fix.EnsureTrimAfter
	wsBefore := cur.Fix.EnsureWSBefore || prev.Fix.EnsureWSAfter

	switch {
	case trimBefore:
		n = 0
	case wsBefore:
		n = 1
	}

	return strings.Repeat(" ", n)
}

// enforceEOFNewline applies the eof_newlines contract to the fully
// rendered text: a non-empty file ends in exactly one newline, however
// many blank lines or missing newlines the source (or a preceding
// directive) left at the end.
func enforceEOFNewline(text string) string {
	if text == "" {
		return text
	}
	return strings.TrimRight(text, "\n") + "\n"
}
