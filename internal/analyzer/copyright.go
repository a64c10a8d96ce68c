package analyzer

import (
	"regexp"
	"strings"

	"github.com/btouchard/mlint/internal/token"
)

// copyrightRe mirrors spec.md §4.4's recognition pattern verbatim.
var copyrightRe = regexp.MustCompile(`(\(c\) )?Copyright (\d\d\d\d-)?\d\d\d\d *(?P<org>.*)`)

// runCopyrightHeader implements the copyright_notice rule: it scans the
// leading run of comment tokens (skipping blank-line newlines between
// them) and emits exactly one diagnostic at the end of the header,
// following the five-outcome priority of spec.md §4.4.
func (a *Analyzer) runCopyrightHeader() {
	if !a.cfg.CopyrightNotice {
		return
	}

	var (
		sawComment bool
		conforming bool
		org        string
		looseMatch bool
		headerPos  token.Position
		havePos    bool
	)

	for i := range a.toks {
		tok := &a.toks[i]
		if tok.Kind == token.NEWLINE {
			continue
		}
		if tok.Kind != token.COMMENT && tok.Kind != token.ANNOTATION {
			break
		}
		sawComment = true
		if !havePos {
			headerPos = tok.Pos
			havePos = true
		}
		if m := copyrightRe.FindStringSubmatch(tok.RawText); m != nil {
			conforming = true
			org = m[len(m)-1]
		} else if a.looseCopyrightMatch(tok.RawText) {
			looseMatch = true
		}
	}

	if !sawComment {
		a.h.StyleIssue(a.filePos(), "file does not appear to contain any copyright header")
		return
	}

	if conforming {
		if len(a.cfg.CopyrightEntity) == 0 {
			return
		}
		trimmedOrg := strings.TrimSpace(org)
		for _, entity := range a.cfg.CopyrightEntity {
			if trimmedOrg == strings.TrimSpace(entity) {
				return
			}
		}
		a.h.StyleIssue(headerPos, "Copyright does not mention one of "+strings.Join(a.cfg.CopyrightEntity, ", "))
		return
	}

	if looseMatch {
		a.h.StyleIssue(headerPos, "Copyright notice not in right format")
		return
	}

	a.h.StyleIssue(headerPos, "No copyright notice found in header")
}

// looseCopyrightMatch is the two-tier fallback recovered from
// original_source/miss_hit/mh_style.py: a configured entity name matched
// case-insensitively takes priority over the generic "(c)"/"copyright"
// substrings.
func (a *Analyzer) looseCopyrightMatch(text string) bool {
	lower := strings.ToLower(text)
	for _, entity := range a.cfg.CopyrightEntity {
		if strings.Contains(lower, strings.ToLower(entity)) {
			return true
		}
	}
	return strings.Contains(lower, "(c)") || strings.Contains(lower, "copyright")
}

func (a *Analyzer) filePos() token.Position {
	if len(a.toks) > 0 {
		return token.Position{File: a.toks[0].Pos.File, Line: 1}
	}
	return token.Position{}
}
