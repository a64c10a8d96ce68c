package analyzer

import (
	"github.com/btouchard/mlint/internal/ast"
	"github.com/btouchard/mlint/internal/token"
)

// indentation implements the `indentation` rule of spec.md §4.4 for a
// token that is first_in_line and not a block comment.
func (a *Analyzer) indentation(idx int) {
	if !a.cfg.Indentation {
		return
	}
	tok := &a.toks[idx]
	if tok.Kind == token.NEWLINE || tok.Kind == token.EOF {
		return
	}
	tabWidth := a.cfg.TabWidth
	if tabWidth <= 0 {
		tabWidth = 4
	}

	var currentIndent, offset int

	switch {
	case tok.FirstInStatement && a.tree != nil && tok.ASTLink != token.NoLink:
		node := a.tree.Get(ast.NodeID(tok.ASTLink))
		if node == nil {
			return
		}
		currentIndent = node.Indentation()
		offset = 0
	case tok.FirstInStatement && a.enclosingAST != nil:
		currentIndent = a.enclosingAST.Indentation() + 1
		offset = 0
	default:
		if a.statementStartIdx < 0 {
			return
		}
		start := &a.toks[a.statementStartIdx]
		if start.ASTLink != token.NoLink && a.tree != nil {
			if node := a.tree.Get(ast.NodeID(start.ASTLink)); node != nil {
				currentIndent = node.Indentation()
			}
		}
		offset = tok.Pos.ColStart - start.Pos.ColStart
		if offset <= 0 {
			offset = tabWidth / 2
		}
	}

	required := tabWidth*currentIndent + offset
	requiredCol := required + 1
	if tok.Pos.ColStart != requiredCol {
		a.h.StyleIssue(tok.Pos, "incorrect indentation", true)
		v := required
		tok.Fix.CorrectIndent = &v
	}
}
