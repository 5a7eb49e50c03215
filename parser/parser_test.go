package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxmix/loxmix/ast"
	"github.com/loxmix/loxmix/lexer"
	"github.com/loxmix/loxmix/parser"
)

func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, err := lexer.ScanTokens(src)
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	return stmts
}

func TestParse_VarAndPrint(t *testing.T) {
	stmts := mustParse(t, `var x = 1 + 2; print x;`)
	require.Len(t, stmts, 2)
	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	_, ok = v.Initializer.(*ast.BinaryExpr)
	assert.True(t, ok)
	_, ok = stmts[1].(*ast.PrintStmt)
	assert.True(t, ok)
}

func TestParse_PipeDesugarsToCall(t *testing.T) {
	stmts := mustParse(t, `x |> f;`)
	require.Len(t, stmts, 1)
	es := stmts[0].(*ast.ExpressionStmt)
	call, ok := es.Expression.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Arguments, 1)
	_, ok = call.Arguments[0].(*ast.VariableExpr)
	assert.True(t, ok)
	_, ok = call.Callee.(*ast.VariableExpr)
	assert.True(t, ok)
}

func TestParse_ChainedPipeNestsCalls(t *testing.T) {
	stmts := mustParse(t, `x |> f |> g;`)
	es := stmts[0].(*ast.ExpressionStmt)
	outer := es.Expression.(*ast.CallExpr)
	assert.Equal(t, "g", outer.Callee.(*ast.VariableExpr).Name.Lexeme)
	inner := outer.Arguments[0].(*ast.CallExpr)
	assert.Equal(t, "f", inner.Callee.(*ast.VariableExpr).Name.Lexeme)
}

func TestParse_ForDesugarsToBlockWhile(t *testing.T) {
	stmts := mustParse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)
	_, ok = block.Statements[0].(*ast.VarStmt)
	assert.True(t, ok)
	while, ok := block.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)
	_, ok = while.Condition.(*ast.BinaryExpr)
	assert.True(t, ok)
	whileBody, ok := while.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, whileBody.Statements, 2)
}

func TestParse_ForWithOmittedClausesDefaultsConditionTrue(t *testing.T) {
	stmts := mustParse(t, `for (;;) print 1;`)
	while := stmts[0].(*ast.WhileStmt)
	lit, ok := while.Condition.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_ClassWithSuperclassAndMethods(t *testing.T) {
	stmts := mustParse(t, `
		class Animal {
			speak() { print "..."; }
		}
		class Dog < Animal {
			init(name) { this.name = name; }
			speak() { print super.speak(); }
		}
	`)
	require.Len(t, stmts, 2)
	dog := stmts[1].(*ast.ClassStmt)
	require.NotNil(t, dog.Superclass)
	assert.Equal(t, "Animal", dog.Superclass.Name.Lexeme)
	require.Len(t, dog.Methods, 2)
}

func TestParse_CmdFunctionDeclaration(t *testing.T) {
	stmts := mustParse(t, `whoami <- "whoami";`)
	require.Len(t, stmts, 1)
	cmd, ok := stmts[0].(*ast.CmdFunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "whoami", cmd.Name.Lexeme)
	assert.Equal(t, "whoami", cmd.ShellText)
}

func TestParse_AnonymousFunctionExpression(t *testing.T) {
	stmts := mustParse(t, `var add = fun (a, b) { return a + b; };`)
	v := stmts[0].(*ast.VarStmt)
	anon, ok := v.Initializer.(*ast.AnonFunctionExpr)
	require.True(t, ok)
	assert.Len(t, anon.Params, 2)
}

func TestParse_InvalidAssignmentTargetErrors(t *testing.T) {
	toks, err := lexer.ScanTokens(`1 = 2;`)
	require.NoError(t, err)
	_, err = parser.Parse(toks)
	assert.Error(t, err)
}

func TestParse_EachExpressionGetsAUniqueID(t *testing.T) {
	stmts := mustParse(t, `var a = 1; var b = 2;`)
	first := stmts[0].(*ast.VarStmt).Initializer
	second := stmts[1].(*ast.VarStmt).Initializer
	assert.NotEqual(t, first.ID(), second.ID())
}
