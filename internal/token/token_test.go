package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"if", KEYWORD},
		{"else", KEYWORD},
		{"elseif", KEYWORD},
		{"for", KEYWORD},
		{"while", KEYWORD},
		{"function", KEYWORD},
		{"classdef", KEYWORD},
		{"end", KEYWORD},
		{"endfunction", KEYWORD},
		{"variable", IDENT},
		{"Task", IDENT},
		{"userId", IDENT},
		{"foo_bar", IDENT},
		{"", IDENT},
		{"unknown", IDENT},
	}

	for _, tt := range tests {
		result := LookupIdent(tt.input)
		if result != tt.expected {
			t.Errorf("LookupIdent(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestKeywordsWithWS(t *testing.T) {
	for kw := range KeywordsWithWS {
		if !IsKeyword(kw) {
			t.Errorf("KeywordsWithWS entry %q is not a recognized keyword", kw)
		}
	}
}

func TestBlockTerminators(t *testing.T) {
	for kw := range BlockTerminators {
		if !IsKeyword(kw) {
			t.Errorf("BlockTerminators entry %q is not a recognized keyword", kw)
		}
	}
}
