/*
File    : loxmix/ast/stmt.go
*/
package ast

import "github.com/loxmix/loxmix/token"

// Stmt is the tagged union of statement node kinds. Unlike Expr,
// statements carry no identity - the resolver and interpreter never
// need to key anything on "which statement is this", only on which
// expression.
type Stmt interface {
	Accept(v StmtVisitor) (interface{}, error)
}

// StmtVisitor is implemented once per tree-walk and given one method
// per Stmt variant.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) (interface{}, error)
	VisitPrintStmt(s *PrintStmt) (interface{}, error)
	VisitVarStmt(s *VarStmt) (interface{}, error)
	VisitBlockStmt(s *BlockStmt) (interface{}, error)
	VisitIfStmt(s *IfStmt) (interface{}, error)
	VisitWhileStmt(s *WhileStmt) (interface{}, error)
	VisitFunctionStmt(s *FunctionStmt) (interface{}, error)
	VisitCmdFunctionStmt(s *CmdFunctionStmt) (interface{}, error)
	VisitReturnStmt(s *ReturnStmt) (interface{}, error)
	VisitClassStmt(s *ClassStmt) (interface{}, error)
}

// ExpressionStmt evaluates Expression and discards the result.
type ExpressionStmt struct{ Expression Expr }

func (s *ExpressionStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates Expression and writes its rendering plus a newline.
type PrintStmt struct{ Expression Expr }

func (s *PrintStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitPrintStmt(s) }

// VarStmt declares Name in the current environment. Initializer is nil
// when the declaration has none, in which case it desugars to Nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitVarStmt(s) }

// BlockStmt introduces a fresh lexical scope around Statements.
type BlockStmt struct{ Statements []Stmt }

func (s *BlockStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitBlockStmt(s) }

// IfStmt executes Then when Predicate is truthy, Else otherwise (Else
// may be nil).
type IfStmt struct {
	Predicate Expr
	Then      Stmt
	Else      Stmt
}

func (s *IfStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitIfStmt(s) }

// WhileStmt executes Body while Condition evaluates truthy. A `for`
// loop has already been desugared into this plus a surrounding Block
// by the time the parser hands it over.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function (or, inside a ClassStmt, a
// method - the interpreter distinguishes the two by where it
// encounters the node, not by a flag on the node itself).
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitFunctionStmt(s) }

// CmdFunctionStmt declares a zero-arity function whose body runs
// ShellText as a subprocess and returns its captured stdout.
type CmdFunctionStmt struct {
	Name      token.Token
	ShellText string
}

func (s *CmdFunctionStmt) Accept(v StmtVisitor) (interface{}, error) {
	return v.VisitCmdFunctionStmt(s)
}

// ReturnStmt unwinds the enclosing call with Value (nil means "return
// nil"). Keyword anchors the "return outside function" diagnostic.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (s *ReturnStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitReturnStmt(s) }

// ClassStmt declares Name as a class with the given Methods and an
// optional Superclass expression (a VariableExpr naming another class).
type ClassStmt struct {
	Name       token.Token
	Superclass *VariableExpr
	Methods    []*FunctionStmt
}

func (s *ClassStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitClassStmt(s) }
