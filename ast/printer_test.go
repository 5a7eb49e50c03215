package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxmix/loxmix/ast"
	"github.com/loxmix/loxmix/token"
)

func TestPrinter_RendersIndentedTree(t *testing.T) {
	plus := token.Token{Kind: token.Plus, Lexeme: "+", Line: 1}
	printExpr := &ast.PrintStmt{
		Expression: ast.NewBinaryExpr(1,
			ast.NewLiteralExpr(2, 1.0),
			plus,
			ast.NewLiteralExpr(3, 2.0),
		),
	}
	out := ast.NewPrinter().Print([]ast.Stmt{printExpr})
	assert.True(t, strings.HasPrefix(out, "Print\n"))
	assert.Contains(t, out, "Binary +")
	assert.Contains(t, out, "Literal 1")
	assert.Contains(t, out, "Literal 2")
}
