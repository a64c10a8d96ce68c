package analyzer

import (
	"regexp"
	"strings"
)

var (
	pragmaRe        = regexp.MustCompile(`^%#[a-zA-Z]`)
	pragmaGapRe     = regexp.MustCompile(`^%# +[a-zA-Z]`)
	swappedPragmaRe = regexp.MustCompile(`^% +#[a-zA-Z]`)
)

// commentHygiene implements whitespace_comments (spec.md §4.4): pragma and
// internal-pragma recognition, block-comment-delimiter exemption, the two
// "spurious gap" auto-fixes, body/lead separation, and whitespace before an
// inline trailing comment.
func (a *Analyzer) commentHygiene(idx int) {
	tok := &a.toks[idx]
	raw := tok.RawText
	lead := "%"
	if raw != "" {
		lead = raw[:1]
	}

	if pragmaRe.MatchString(raw) {
		return
	}
	if strings.HasPrefix(raw, "%|") {
		return
	}
	if tok.BlockComment {
		return
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == lead+"{" || trimmed == lead+"}" {
		return
	}

	if !a.cfg.WhitespaceComments {
		return
	}

	if pragmaGapRe.MatchString(raw) {
		a.h.StyleIssue(tok.Pos, "pragma must not contain whitespace between %# and the pragma", true)
		fixed := "%#" + strings.TrimLeft(raw[2:], " ")
		tok.RawText = fixed
		tok.Value = strings.TrimPrefix(fixed, lead)
		raw = fixed
	} else if swappedPragmaRe.MatchString(raw) {
		a.h.StyleIssue(tok.Pos, "pragma must not contain whitespace between % and #", true)
		fixed := "%#" + strings.TrimLeft(strings.TrimPrefix(raw, "%"), " #")
		tok.RawText = fixed
		tok.Value = strings.TrimPrefix(fixed, lead)
		raw = fixed
	} else if tok.Value != "" && !strings.HasPrefix(tok.Value, " ") {
		a.h.StyleIssue(tok.Pos, "comment body must be separated with whitespace from the starting "+lead, true)
		tok.RawText = lead + " " + tok.Value
		tok.Value = " " + tok.Value
	}

	if prev := a.prevInLine(idx); prev != nil {
		if gap, ok := a.wsBefore(idx); ok && gap == 0 {
			a.h.StyleIssue(tok.Pos, "comment must be preceded by whitespace", true)
			tok.Fix.EnsureWSBefore = true
		}
	}
}
