package rules

import (
	"fmt"
	"strings"

	"github.com/btouchard/mlint/internal/config"
	"github.com/btouchard/mlint/internal/diag"
	"github.com/btouchard/mlint/internal/token"
)

// FileLengthRule emits when a file's line count exceeds cfg.FileLength.
// Not auto-fixable: there's no sensible mechanical shortening of a file.
type FileLengthRule struct{}

func (r *FileLengthRule) Apply(h *diag.Handler, cfg *config.Config, filename, fullText string, lines []string) {
	if cfg.FileLength > 0 && len(lines) > cfg.FileLength {
		pos := token.Position{File: filename, Line: len(lines)}
		h.StyleIssue(pos, fmt.Sprintf("file length of %d lines exceeds the limit of %d", len(lines), cfg.FileLength))
	}
}

// EOFNewlinesRule enforces exactly one trailing newline on non-empty
// output (spec.md §4.2, §4.5). lines comes from strings.Split, so a file
// ending in one newline already has one empty final element; a trailing
// blank line shows up as a second empty element before it.
type EOFNewlinesRule struct{}

func (r *EOFNewlinesRule) Apply(h *diag.Handler, cfg *config.Config, filename, fullText string, lines []string) {
	if len(lines) >= 3 && lines[len(lines)-1] == "" && lines[len(lines)-2] == "" {
		pos := token.Position{File: filename, Line: len(lines)}
		h.StyleIssue(pos, "trailing blank lines at end of file", true)
		return
	}
	if fullText != "" && !strings.HasSuffix(fullText, "\n") {
		pos := token.Position{File: filename, Line: len(lines)}
		h.StyleIssue(pos, "file should end with a new line", true)
	}
}
