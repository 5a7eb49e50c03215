package interpreter

import (
	"log"

	"github.com/loxmix/loxmix/ast"
)

// SetTrace turns on a per-statement execution trace, written through
// logger (nil disables it again). This is a debugging aid behind the
// CLI's --trace flag, not a language feature: it observes execution,
// it never changes it.
func (it *Interpreter) SetTrace(logger *log.Logger) {
	it.trace = logger
}

func (it *Interpreter) traceStmt(s ast.Stmt) {
	if it.trace == nil {
		return
	}
	it.trace.Printf("line %d: %s", stmtLine(s), stmtLabel(s))
}

func stmtLabel(s ast.Stmt) string {
	switch s.(type) {
	case *ast.ExpressionStmt:
		return "expression"
	case *ast.PrintStmt:
		return "print"
	case *ast.VarStmt:
		return "var"
	case *ast.BlockStmt:
		return "block"
	case *ast.IfStmt:
		return "if"
	case *ast.WhileStmt:
		return "while"
	case *ast.FunctionStmt:
		return "function"
	case *ast.CmdFunctionStmt:
		return "cmd-function"
	case *ast.ReturnStmt:
		return "return"
	case *ast.ClassStmt:
		return "class"
	default:
		return "statement"
	}
}

// stmtLine best-efforts a representative source line for a statement.
// Not every Stmt carries a token directly (If/While/Block don't), so
// those report 0 rather than walking into sub-nodes for a trace aid
// that is already allowed to be approximate.
func stmtLine(s ast.Stmt) int {
	switch v := s.(type) {
	case *ast.PrintStmt:
		return exprLine(v.Expression)
	case *ast.ExpressionStmt:
		return exprLine(v.Expression)
	case *ast.VarStmt:
		return v.Name.Line
	case *ast.FunctionStmt:
		return v.Name.Line
	case *ast.CmdFunctionStmt:
		return v.Name.Line
	case *ast.ReturnStmt:
		return v.Keyword.Line
	case *ast.ClassStmt:
		return v.Name.Line
	default:
		return 0
	}
}

func exprLine(e ast.Expr) int {
	switch v := e.(type) {
	case *ast.VariableExpr:
		return v.Name.Line
	case *ast.AssignExpr:
		return v.Name.Line
	case *ast.CallExpr:
		return v.Paren.Line
	case *ast.GetExpr:
		return v.Name.Line
	case *ast.SetExpr:
		return v.Name.Line
	case *ast.ThisExpr:
		return v.Keyword.Line
	case *ast.SuperExpr:
		return v.Keyword.Line
	case *ast.BinaryExpr:
		return v.Operator.Line
	case *ast.LogicalExpr:
		return v.Operator.Line
	case *ast.UnaryExpr:
		return v.Operator.Line
	default:
		return 0
	}
}
