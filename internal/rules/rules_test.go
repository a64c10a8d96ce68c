package rules

import (
	"testing"

	"github.com/btouchard/mlint/internal/config"
	"github.com/btouchard/mlint/internal/diag"
)

func TestBuildLibraryIncludesMandatoryRules(t *testing.T) {
	cfg := config.Default()
	lib, err := BuildLibrary(cfg)
	if err != nil {
		t.Fatalf("BuildLibrary: %v", err)
	}
	if len(lib.OnFile) != 2 {
		t.Fatalf("expected 2 mandatory file rules, got %d", len(lib.OnFile))
	}
	if len(lib.OnLine) != 4 {
		t.Fatalf("expected 4 mandatory line rules, got %d", len(lib.OnLine))
	}
}

func TestBuildLibraryFreshInstancesPerFile(t *testing.T) {
	cfg := config.Default()
	lib1, _ := BuildLibrary(cfg)
	lib2, _ := BuildLibrary(cfg)
	var r1, r2 *ConsecutiveBlanksRule
	for _, lr := range lib1.OnLine {
		if cb, ok := lr.(*ConsecutiveBlanksRule); ok {
			r1 = cb
		}
	}
	for _, lr := range lib2.OnLine {
		if cb, ok := lr.(*ConsecutiveBlanksRule); ok {
			r2 = cb
		}
	}
	if r1 == r2 {
		t.Fatalf("expected BuildLibrary to return distinct instances per call")
	}
}

func TestFileLengthRule(t *testing.T) {
	cfg := config.Default()
	cfg.FileLength = 2
	h := diag.NewHandler(false, true, false)
	lines := []string{"a", "b", "c"}
	(&FileLengthRule{}).Apply(h, cfg, "t.m", "a\nb\nc", lines)
	if len(h.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(h.Diagnostics))
	}
}

func TestEOFNewlinesTrailingBlankLines(t *testing.T) {
	cfg := config.Default()
	h := diag.NewHandler(false, true, false)
	lines := []string{"x = 1;", "", ""}
	(&EOFNewlinesRule{}).Apply(h, cfg, "t.m", "x = 1;\n\n\n", lines)
	if len(h.Diagnostics) != 1 || h.Diagnostics[0].Message != "trailing blank lines at end of file" {
		t.Fatalf("got %+v", h.Diagnostics)
	}
}

func TestEOFNewlinesMissingFinalNewline(t *testing.T) {
	cfg := config.Default()
	h := diag.NewHandler(false, true, false)
	lines := []string{"x = 1;"}
	(&EOFNewlinesRule{}).Apply(h, cfg, "t.m", "x = 1;", lines)
	if len(h.Diagnostics) != 1 || h.Diagnostics[0].Message != "file should end with a new line" {
		t.Fatalf("got %+v", h.Diagnostics)
	}
}

func TestEOFNewlinesCleanFileSilent(t *testing.T) {
	cfg := config.Default()
	h := diag.NewHandler(false, true, false)
	lines := []string{"x = 1;", ""}
	(&EOFNewlinesRule{}).Apply(h, cfg, "t.m", "x = 1;\n", lines)
	if len(h.Diagnostics) != 0 {
		t.Fatalf("expected silence, got %+v", h.Diagnostics)
	}
}

func TestLineLengthRule(t *testing.T) {
	cfg := config.Default()
	cfg.LineLength = 5
	h := diag.NewHandler(false, true, false)
	(&LineLengthRule{}).Apply(h, cfg, "t.m", 1, "abcdefgh")
	if len(h.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %+v", h.Diagnostics)
	}
}

func TestConsecutiveBlanksRuleFlagsSecondBlankOnly(t *testing.T) {
	cfg := config.Default()
	h := diag.NewHandler(false, true, false)
	r := &ConsecutiveBlanksRule{}
	r.Apply(h, cfg, "t.m", 1, "x = 1;")
	r.Apply(h, cfg, "t.m", 2, "")
	r.Apply(h, cfg, "t.m", 3, "")
	if len(h.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic for the second consecutive blank, got %d", len(h.Diagnostics))
	}
	if got := r.LinesToDelete(); len(got) != 1 || got[0] != 3 {
		t.Fatalf("expected line 3 marked for deletion, got %v", got)
	}
}

func TestConsecutiveBlanksRuleResetsOnContent(t *testing.T) {
	cfg := config.Default()
	h := diag.NewHandler(false, true, false)
	r := &ConsecutiveBlanksRule{}
	r.Apply(h, cfg, "t.m", 1, "")
	r.Apply(h, cfg, "t.m", 2, "x = 1;")
	r.Apply(h, cfg, "t.m", 3, "")
	if len(h.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostic when a blank run is broken by content, got %+v", h.Diagnostics)
	}
}

func TestTabsRule(t *testing.T) {
	cfg := config.Default()
	h := diag.NewHandler(false, true, false)
	(&TabsRule{}).Apply(h, cfg, "t.m", 1, "x\t= 1;")
	if len(h.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %+v", h.Diagnostics)
	}
}

func TestTrailingWhitespaceOnBlankLine(t *testing.T) {
	cfg := config.Default()
	h := diag.NewHandler(false, true, false)
	(&TrailingWhitespaceRule{}).Apply(h, cfg, "t.m", 1, "   ")
	if len(h.Diagnostics) != 1 || h.Diagnostics[0].Message != "whitespace on blank line" {
		t.Fatalf("got %+v", h.Diagnostics)
	}
}

func TestTrailingWhitespaceOnCodeLine(t *testing.T) {
	cfg := config.Default()
	h := diag.NewHandler(false, true, false)
	(&TrailingWhitespaceRule{}).Apply(h, cfg, "t.m", 1, "x = 1;   ")
	if len(h.Diagnostics) != 1 || h.Diagnostics[0].Message != "trailing whitespace" {
		t.Fatalf("got %+v", h.Diagnostics)
	}
}

func TestTrailingWhitespaceCleanLineSilent(t *testing.T) {
	cfg := config.Default()
	h := diag.NewHandler(false, true, false)
	(&TrailingWhitespaceRule{}).Apply(h, cfg, "t.m", 1, "x = 1;")
	if len(h.Diagnostics) != 0 {
		t.Fatalf("expected silence, got %+v", h.Diagnostics)
	}
}
