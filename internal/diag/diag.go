// Package diag is the diagnostic sink every analysis stage appends to: the
// collaborator spec.md calls the Message_Handler. It owns suppression by
// justification comment and the display toggles the CLI exposes.
package diag

import (
	"fmt"
	"sort"

	"github.com/btouchard/mlint/internal/token"
)

// Severity classifies a Diagnostic the way spec.md §7 distinguishes style
// issues (always recoverable) from warnings and hard errors (failure to
// complete analysis of the file).
type Severity string

const (
	Style   Severity = "style"
	Warning Severity = "warning"
	Error   Severity = "error"
)

// Diagnostic is one reported finding, emitted in source order.
type Diagnostic struct {
	Severity Severity
	Pos      token.Position
	Message  string
	Fixed    bool
	Fatal    bool // only meaningful for Severity == Error
}

// Handler collects diagnostics for a single file analysis pass and applies
// justification suppression. Created fresh per file; never shared.
type Handler struct {
	ShowContext bool
	ShowStyle   bool
	AutoFix     bool

	Diagnostics []Diagnostic

	justified map[string]map[int]bool // file -> line -> justified
}

// NewHandler builds a handler with the given display toggles.
func NewHandler(showContext, showStyle, autoFix bool) *Handler {
	return &Handler{
		ShowContext: showContext,
		ShowStyle:   showStyle,
		AutoFix:     autoFix,
		justified:   make(map[string]map[int]bool),
	}
}

// RegisterJustification marks tok's line as carrying a suppression marker
// (spec.md §4.4 "mh:ignore_style"); diagnostics on that line are dropped.
func (h *Handler) RegisterJustification(tok *token.Token) {
	lines, ok := h.justified[tok.Pos.File]
	if !ok {
		lines = make(map[int]bool)
		h.justified[tok.Pos.File] = lines
	}
	lines[tok.Pos.Line] = true
}

func (h *Handler) isJustified(pos token.Position) bool {
	lines, ok := h.justified[pos.File]
	if !ok {
		return false
	}
	return lines[pos.Line]
}

// StyleIssue reports a style-severity diagnostic. fixed, if given, records
// whether an auto-fix was also scheduled for it (defaults to false).
func (h *Handler) StyleIssue(pos token.Position, message string, fixed ...bool) {
	f := false
	if len(fixed) > 0 {
		f = fixed[0]
	}
	if h.isJustified(pos) {
		return
	}
	h.Diagnostics = append(h.Diagnostics, Diagnostic{Severity: Style, Pos: pos, Message: message, Fixed: f})
}

// Warning reports a non-fatal anomaly. Justification suppresses these too,
// matching the original's blanket per-line suppression.
func (h *Handler) Warning(pos token.Position, message string) {
	if h.isJustified(pos) {
		return
	}
	h.Diagnostics = append(h.Diagnostics, Diagnostic{Severity: Warning, Pos: pos, Message: message})
}

// Error reports a failure to complete analysis of the file. fatal marks an
// unconditional internal-consistency failure (spec.md §7); errors are
// never suppressed by justification.
func (h *Handler) Error(pos token.Position, message string, fatal bool) {
	h.Diagnostics = append(h.Diagnostics, Diagnostic{Severity: Error, Pos: pos, Message: message, Fatal: fatal})
}

// HasErrors reports whether any Severity == Error diagnostic was recorded.
func (h *Handler) HasErrors() bool {
	for _, d := range h.Diagnostics {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// HasFatal reports whether any unconditional internal-consistency error
// was recorded (spec.md §7).
func (h *Handler) HasFatal() bool {
	for _, d := range h.Diagnostics {
		if d.Severity == Error && d.Fatal {
			return true
		}
	}
	return false
}

// SortBySourceOrder reorders Diagnostics ascending by (line, column), the
// ordering guarantee of spec.md §5. Stable so that, within one token,
// file-rule/line-rule/token-analyzer emission order (already the append
// order) is preserved.
func (h *Handler) SortBySourceOrder() {
	sort.SliceStable(h.Diagnostics, func(i, j int) bool {
		a, b := h.Diagnostics[i].Pos, h.Diagnostics[j].Pos
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.ColStart < b.ColStart
	})
}

// Format renders a diagnostic the way the CLI prints it, honoring
// ShowContext/ShowStyle.
func (h *Handler) Format(d Diagnostic) string {
	if d.Severity == Style && !h.ShowStyle {
		return ""
	}
	loc := fmt.Sprintf("%s:%d:%d", d.Pos.File, d.Pos.Line, d.Pos.ColStart)
	line := fmt.Sprintf("%s: %s: %s", loc, d.Severity, d.Message)
	if h.ShowContext && d.Pos.RawLine != "" {
		line += "\n    " + d.Pos.RawLine
	}
	return line
}
