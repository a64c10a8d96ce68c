package analyzer

import "github.com/btouchard/mlint/internal/token"

// punctuationSpacing implements the Punctuation spacing table of
// spec.md §4.4: COMMA, COLON, ASSIGNMENT, bracket openers/closers,
// whitespace-requiring keywords, and ANNOTATION.
func (a *Analyzer) punctuationSpacing(idx int) {
	tok := &a.toks[idx]
	switch tok.Kind {
	case token.COMMA:
		a.whitespaceComma(idx)
	case token.COLON:
		a.whitespaceColon(idx)
	case token.ASSIGNMENT:
		a.whitespaceAssignment(idx)
	case token.BRA, token.A_BRA, token.M_BRA:
		a.whitespaceOpener(idx)
	case token.KET, token.A_KET, token.M_KET:
		a.whitespaceCloser(idx)
	case token.KEYWORD:
		if token.KeywordsWithWS[tok.Value] {
			a.whitespaceKeyword(idx)
		}
	case token.ANNOTATION:
		a.annotationWhitespace(idx)
	}
}

func (a *Analyzer) whitespaceComma(idx int) {
	if !a.cfg.WhitespaceComma {
		return
	}
	tok := &a.toks[idx]
	if gap, ok := a.wsBefore(idx); ok && gap > 0 {
		a.h.StyleIssue(tok.Pos, "',' must not be preceded by whitespace", true)
		tok.Fix.EnsureTrimBefore = true
	}
	if gap, ok := a.wsAfter(idx); ok && gap != 1 {
		a.h.StyleIssue(tok.Pos, "',' must be followed by exactly one space", true)
		tok.Fix.EnsureWSAfter = true
	}
}

func (a *Analyzer) whitespaceColon(idx int) {
	if !a.cfg.WhitespaceColon {
		return
	}
	tok := &a.toks[idx]
	precededByComma := a.prevInLine(idx) != nil && a.prevInLine(idx).Kind == token.COMMA
	if !precededByComma {
		if gap, ok := a.wsBefore(idx); ok && gap > 0 {
			a.h.StyleIssue(tok.Pos, "':' must not be preceded by whitespace", true)
			tok.Fix.EnsureTrimBefore = true
		}
	}
	followedByContinuation := a.nextInLine(idx) != nil && a.nextInLine(idx).Kind == token.CONTINUATION
	if !followedByContinuation {
		if gap, ok := a.wsAfter(idx); ok && gap > 0 {
			a.h.StyleIssue(tok.Pos, "':' must not be followed by whitespace", true)
			tok.Fix.EnsureTrimAfter = true
		}
	}
}

func (a *Analyzer) whitespaceAssignment(idx int) {
	if !a.cfg.WhitespaceAssignment {
		return
	}
	tok := &a.toks[idx]
	if gap, ok := a.wsBefore(idx); ok && gap == 0 {
		a.h.StyleIssue(tok.Pos, "'=' must be preceeded by whitespace", true)
		tok.Fix.EnsureWSBefore = true
	}
	if gap, ok := a.wsAfter(idx); ok && gap == 0 {
		a.h.StyleIssue(tok.Pos, "'=' must be succeeded by whitespace", true)
		tok.Fix.EnsureWSAfter = true
	}
}

func (a *Analyzer) whitespaceOpener(idx int) {
	if !a.cfg.WhitespaceBrackets {
		return
	}
	tok := &a.toks[idx]
	next := a.nextInLine(idx)
	if next != nil && next.Kind == token.CONTINUATION {
		return
	}
	if gap, ok := a.wsAfter(idx); ok && gap > 0 {
		a.h.StyleIssue(tok.Pos, "no space allowed after "+tok.Value, true)
		tok.Fix.EnsureTrimAfter = true
	}
}

func (a *Analyzer) whitespaceCloser(idx int) {
	if !a.cfg.WhitespaceBrackets {
		return
	}
	tok := &a.toks[idx]
	if gap, ok := a.wsBefore(idx); ok && gap > 0 {
		a.h.StyleIssue(tok.Pos, "no space allowed before "+tok.Value, true)
		tok.Fix.EnsureTrimBefore = true
	}
}

func (a *Analyzer) whitespaceKeyword(idx int) {
	if !a.cfg.WhitespaceKeywords {
		return
	}
	tok := &a.toks[idx]
	if gap, ok := a.wsAfter(idx); ok && gap == 0 {
		a.h.StyleIssue(tok.Pos, tok.Value+" must be followed by whitespace", true)
		tok.Fix.EnsureWSAfter = true
	}
}

func (a *Analyzer) annotationWhitespace(idx int) {
	if !a.cfg.AnnotationWhitespace {
		return
	}
	tok := &a.toks[idx]
	if gap, ok := a.wsAfter(idx); ok && gap == 0 {
		a.h.StyleIssue(tok.Pos, "annotation must be followed by whitespace", true)
		tok.Fix.EnsureWSAfter = true
	}
}
