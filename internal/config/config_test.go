package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	c := Default()
	if c.FileLength != 1000 || c.LineLength != 120 || c.TabWidth != 4 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.WhitespaceComma || c.Indentation || c.CopyrightNotice {
		t.Fatalf("expected all optional rules disabled by default, got %+v", c)
	}
}

func TestMergeOverlayOverridesInts(t *testing.T) {
	base := Default()
	overlay := &Config{LineLength: 80}
	merged := Merge(base, overlay)
	if merged.LineLength != 80 {
		t.Errorf("got line length %d, want 80", merged.LineLength)
	}
	if merged.FileLength != 1000 {
		t.Errorf("expected file length to fall back to base, got %d", merged.FileLength)
	}
}

func TestMergeOverlayEnablesFlags(t *testing.T) {
	base := Default()
	overlay := &Config{WhitespaceComma: true, Indentation: true}
	merged := Merge(base, overlay)
	if !merged.WhitespaceComma || !merged.Indentation {
		t.Fatalf("expected overlay flags to enable rules, got %+v", merged)
	}
}

func TestLoadParsesTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mlint.toml")
	contents := "line_length = 100\nwhitespace_comma = true\ncopyright_entity = [\"Acme Ltd\"]\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LineLength != 100 {
		t.Errorf("got line length %d, want 100", cfg.LineLength)
	}
	if !cfg.WhitespaceComma {
		t.Errorf("expected whitespace_comma enabled")
	}
	if len(cfg.CopyrightEntity) != 1 || cfg.CopyrightEntity[0] != "Acme Ltd" {
		t.Errorf("got copyright entities %v", cfg.CopyrightEntity)
	}
	if cfg.TabWidth != 4 {
		t.Errorf("expected tab_width to fall back to default 4, got %d", cfg.TabWidth)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load("/nonexistent/mlint.toml"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestApplyEntitiesAppends(t *testing.T) {
	c := Default()
	c.CopyrightEntity = []string{"Acme Ltd"}
	c.ApplyEntities([]string{"Globex"})
	if len(c.CopyrightEntity) != 2 || c.CopyrightEntity[1] != "Globex" {
		t.Fatalf("got %v", c.CopyrightEntity)
	}
}
