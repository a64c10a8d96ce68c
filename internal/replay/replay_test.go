package replay

import (
	"testing"

	"github.com/btouchard/mlint/internal/lexer"
	"github.com/btouchard/mlint/internal/token"
)

func TestRenderRoundTripsCleanSource(t *testing.T) {
	src := "x = 1;\ny = 2;\n"
	toks := lexer.Tokenize(src, "t.m")
	if got := Render(toks); got != src {
		t.Fatalf("expected round trip, got %q want %q", got, src)
	}
}

func TestRenderEnsuresWSAssignment(t *testing.T) {
	src := "a=1;\n"
	toks := lexer.Tokenize(src, "t.m")
	for i := range toks {
		if toks[i].Kind == token.ASSIGNMENT {
			toks[i].Fix.EnsureWSBefore = true
			toks[i].Fix.EnsureWSAfter = true
		}
	}
	want := "a = 1;\n"
	if got := Render(toks); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderTrimsSpuriousSpacing(t *testing.T) {
	src := "f( 1 , 2 );\n"
	toks := lexer.Tokenize(src, "t.m")
	for i := range toks {
		switch toks[i].Kind {
		case token.BRA:
			toks[i+1].Fix.EnsureTrimBefore = true
		case token.KET:
			toks[i].Fix.EnsureTrimBefore = true
		case token.COMMA:
			toks[i].Fix.EnsureTrimBefore = true
		}
	}
	want := "f(1, 2);\n"
	if got := Render(toks); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderDeletesToken(t *testing.T) {
	src := "x = 1;\n\n\ny = 2;\n"
	toks := lexer.Tokenize(src, "t.m")
	deleted := 0
	for i := range toks {
		if toks[i].Kind == token.NEWLINE && toks[i].Pos.Line == 2 {
			toks[i].Fix.Delete = true
			deleted++
		}
	}
	if deleted != 1 {
		t.Fatalf("expected exactly one NEWLINE at line 2, got %d", deleted)
	}
	want := "x = 1;\n\ny = 2;\n"
	if got := Render(toks); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderReplaceWithNewline(t *testing.T) {
	src := "x = 1 ...\n    + 2;\n"
	toks := lexer.Tokenize(src, "t.m")
	for i := range toks {
		if toks[i].Kind == token.CONTINUATION {
			toks[i].Fix.ReplaceWithNewline = true
		}
	}
	want := "x = 1 \n\n    + 2;\n"
	if got := Render(toks); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderDeleteUselessContinuationAfterTerminator(t *testing.T) {
	src := "x = 1; ...\ny = 2;\n"
	toks := lexer.Tokenize(src, "t.m")
	for i := range toks {
		if toks[i].Kind == token.SEMICOLON {
			toks[i].Fix.StatementTerminator = true
		}
		if toks[i].Kind == token.CONTINUATION {
			toks[i].Fix.Delete = true
		}
	}
	got := Render(toks)
	if got == src {
		t.Fatalf("expected the continuation token to be removed from output")
	}
	want := "x = 1; \ny = 2;\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderCorrectIndent(t *testing.T) {
	src := "if a\nx = 1;\nend\n"
	toks := lexer.Tokenize(src, "t.m")
	for i := range toks {
		if toks[i].Kind == token.IDENT && toks[i].Value == "x" {
			v := 4
			toks[i].Fix.CorrectIndent = &v
		}
	}
	want := "if a\n    x = 1;\nend\n"
	if got := Render(toks); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderEnforcesExactlyOneTrailingNewline(t *testing.T) {
	src := "x = 1;\n\n\n"
	toks := lexer.Tokenize(src, "t.m")
	want := "x = 1;\n"
	if got := Render(toks); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderAddsMissingFinalNewline(t *testing.T) {
	src := "x = 1;"
	toks := lexer.Tokenize(src, "t.m")
	for i := range toks {
		if toks[i].Kind == token.SEMICOLON {
			toks[i].Fix.AddNewline = true
		}
	}
	want := "x = 1;\n"
	if got := Render(toks); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderEmptyFileStaysEmpty(t *testing.T) {
	toks := lexer.Tokenize("", "t.m")
	if got := Render(toks); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
