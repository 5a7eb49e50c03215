package ast

import (
	"bytes"
	"fmt"
)

// Printer renders a parsed program as an indented tree by implementing
// both ExprVisitor and StmtVisitor - useful behind a `--dump-ast` debug
// flag, never on the hot evaluation path.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

func NewPrinter() *Printer { return &Printer{} }

func (p *Printer) String() string { return p.buf.String() }

func (p *Printer) line(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
	fmt.Fprintf(&p.buf, format+"\n", args...)
}

// Print renders a whole program.
func (p *Printer) Print(stmts []Stmt) string {
	for _, s := range stmts {
		_, _ = s.Accept(p)
	}
	return p.buf.String()
}

func (p *Printer) nested(label string, body func()) {
	p.line("%s", label)
	p.indent++
	body()
	p.indent--
}

func (p *Printer) VisitExpressionStmt(s *ExpressionStmt) (interface{}, error) {
	p.nested("Expression", func() { _, _ = s.Expression.Accept(p) })
	return nil, nil
}
func (p *Printer) VisitPrintStmt(s *PrintStmt) (interface{}, error) {
	p.nested("Print", func() { _, _ = s.Expression.Accept(p) })
	return nil, nil
}
func (p *Printer) VisitVarStmt(s *VarStmt) (interface{}, error) {
	p.nested(fmt.Sprintf("Var %s", s.Name.Lexeme), func() {
		if s.Initializer != nil {
			_, _ = s.Initializer.Accept(p)
		}
	})
	return nil, nil
}
func (p *Printer) VisitBlockStmt(s *BlockStmt) (interface{}, error) {
	p.nested("Block", func() {
		for _, stmt := range s.Statements {
			_, _ = stmt.Accept(p)
		}
	})
	return nil, nil
}
func (p *Printer) VisitIfStmt(s *IfStmt) (interface{}, error) {
	p.nested("If", func() {
		_, _ = s.Predicate.Accept(p)
		_, _ = s.Then.Accept(p)
		if s.Else != nil {
			_, _ = s.Else.Accept(p)
		}
	})
	return nil, nil
}
func (p *Printer) VisitWhileStmt(s *WhileStmt) (interface{}, error) {
	p.nested("While", func() {
		_, _ = s.Condition.Accept(p)
		_, _ = s.Body.Accept(p)
	})
	return nil, nil
}
func (p *Printer) VisitFunctionStmt(s *FunctionStmt) (interface{}, error) {
	p.nested(fmt.Sprintf("Function %s", s.Name.Lexeme), func() {
		for _, stmt := range s.Body {
			_, _ = stmt.Accept(p)
		}
	})
	return nil, nil
}
func (p *Printer) VisitCmdFunctionStmt(s *CmdFunctionStmt) (interface{}, error) {
	p.line("CmdFunction %s <- %q", s.Name.Lexeme, s.ShellText)
	return nil, nil
}
func (p *Printer) VisitReturnStmt(s *ReturnStmt) (interface{}, error) {
	p.nested("Return", func() {
		if s.Value != nil {
			_, _ = s.Value.Accept(p)
		}
	})
	return nil, nil
}
func (p *Printer) VisitClassStmt(s *ClassStmt) (interface{}, error) {
	label := fmt.Sprintf("Class %s", s.Name.Lexeme)
	if s.Superclass != nil {
		label += fmt.Sprintf(" < %s", s.Superclass.Name.Lexeme)
	}
	p.nested(label, func() {
		for _, m := range s.Methods {
			_, _ = m.Accept(p)
		}
	})
	return nil, nil
}

func (p *Printer) VisitLiteralExpr(e *LiteralExpr) (interface{}, error) {
	p.line("Literal %v", e.Value)
	return nil, nil
}
func (p *Printer) VisitGroupingExpr(e *GroupingExpr) (interface{}, error) {
	p.nested("Grouping", func() { _, _ = e.Expression.Accept(p) })
	return nil, nil
}
func (p *Printer) VisitUnaryExpr(e *UnaryExpr) (interface{}, error) {
	p.nested(fmt.Sprintf("Unary %s", e.Operator.Lexeme), func() { _, _ = e.Right.Accept(p) })
	return nil, nil
}
func (p *Printer) VisitBinaryExpr(e *BinaryExpr) (interface{}, error) {
	p.nested(fmt.Sprintf("Binary %s", e.Operator.Lexeme), func() {
		_, _ = e.Left.Accept(p)
		_, _ = e.Right.Accept(p)
	})
	return nil, nil
}
func (p *Printer) VisitLogicalExpr(e *LogicalExpr) (interface{}, error) {
	p.nested(fmt.Sprintf("Logical %s", e.Operator.Lexeme), func() {
		_, _ = e.Left.Accept(p)
		_, _ = e.Right.Accept(p)
	})
	return nil, nil
}
func (p *Printer) VisitVariableExpr(e *VariableExpr) (interface{}, error) {
	p.line("Variable %s (#%d)", e.Name.Lexeme, e.ID())
	return nil, nil
}
func (p *Printer) VisitAssignExpr(e *AssignExpr) (interface{}, error) {
	p.nested(fmt.Sprintf("Assign %s (#%d)", e.Name.Lexeme, e.ID()), func() { _, _ = e.Value.Accept(p) })
	return nil, nil
}
func (p *Printer) VisitCallExpr(e *CallExpr) (interface{}, error) {
	p.nested("Call", func() {
		_, _ = e.Callee.Accept(p)
		for _, a := range e.Arguments {
			_, _ = a.Accept(p)
		}
	})
	return nil, nil
}
func (p *Printer) VisitGetExpr(e *GetExpr) (interface{}, error) {
	p.nested(fmt.Sprintf("Get .%s", e.Name.Lexeme), func() { _, _ = e.Object.Accept(p) })
	return nil, nil
}
func (p *Printer) VisitSetExpr(e *SetExpr) (interface{}, error) {
	p.nested(fmt.Sprintf("Set .%s", e.Name.Lexeme), func() {
		_, _ = e.Object.Accept(p)
		_, _ = e.Value.Accept(p)
	})
	return nil, nil
}
func (p *Printer) VisitThisExpr(e *ThisExpr) (interface{}, error) {
	p.line("This (#%d)", e.ID())
	return nil, nil
}
func (p *Printer) VisitSuperExpr(e *SuperExpr) (interface{}, error) {
	p.line("Super.%s (#%d)", e.Method.Lexeme, e.ID())
	return nil, nil
}
func (p *Printer) VisitAnonFunctionExpr(e *AnonFunctionExpr) (interface{}, error) {
	p.nested("AnonFunction", func() {
		for _, stmt := range e.Body {
			_, _ = stmt.Accept(p)
		}
	})
	return nil, nil
}
