/*
File    : loxmix/resolver/resolver.go

Package resolver performs the static pass between parsing and
evaluation: for every expression that reads or writes a name, it
computes how many lexical scopes outward the binding lives, keyed by
the expression's stable integer ID (see ast.Expr). Absence of an entry
means the reference is global. The resolver is also where static-only
rules live that the parser is too early to check and the evaluator is
too late to check cheaply: reading a variable in its own initializer,
duplicate declarations in one scope, and `return`/`this`/`super` used
outside the context that gives them meaning.

The scope-stack and declare/define-with-a-boolean technique mirrors
original_source's resolver.rs (itself an early, partial draft of the
same language lineage) almost line for line, generalized here to also
cover classes, `this`, and `super`, which that draft never reached.
*/
package resolver

import (
	"fmt"
	"strings"

	"github.com/loxmix/loxmix/ast"
	"github.com/loxmix/loxmix/token"
)

type functionKind int

const (
	noFunction functionKind = iota
	inFunction
	inMethod
)

type classKind int

const (
	noClass classKind = iota
	inClass
	inSubclass
)

// Resolver walks a parsed program once and produces a Locals map (see
// environment.Locals) or a joined diagnostic.
type Resolver struct {
	scopes          []map[string]bool
	locals          map[int]int
	currentFunction functionKind
	currentClass    classKind
	errs            []string
}

// New creates a Resolver with no scopes pushed (top-level/global names
// are never tracked in the scope stack at all).
func New() *Resolver {
	return &Resolver{locals: make(map[int]int)}
}

// Resolve runs the static pass over a whole program and returns the
// expression-id -> depth map, or a joined diagnostic if any static
// rule was violated.
func Resolve(stmts []ast.Stmt) (map[int]int, error) {
	r := New()
	r.resolveStmts(stmts)
	if len(r.errs) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(r.errs, "\n"))
	}
	return r.locals, nil
}

func (r *Resolver) errorf(line int, format string, args ...interface{}) {
	r.errs = append(r.errs, fmt.Sprintf("[line %d] Error: %s", line, fmt.Sprintf(format, args...)))
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	_, _ = s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	_, _ = e.Accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.errorf(name.Line, "variable '%s' already declared in this scope", name.Lexeme)
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal records exprID -> depth for the first scope (searching
// innermost-out) that declares name. No entry is recorded if name is
// never found locally, which is how a global reference is represented.
func (r *Resolver) resolveLocal(exprID int, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[exprID] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(params []token.Token, body []ast.Stmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	r.beginScope()
	for _, p := range params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(body)
	r.endScope()
	r.currentFunction = enclosingFunction
}

// --- StmtVisitor ---

func (r *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) (interface{}, error) {
	r.resolveExpr(s.Expression)
	return nil, nil
}

func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) (interface{}, error) {
	r.resolveExpr(s.Expression)
	return nil, nil
}

func (r *Resolver) VisitVarStmt(s *ast.VarStmt) (interface{}, error) {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil, nil
}

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) (interface{}, error) {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) (interface{}, error) {
	r.resolveExpr(s.Predicate)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil, nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) (interface{}, error) {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil, nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) (interface{}, error) {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s.Params, s.Body, inFunction)
	return nil, nil
}

func (r *Resolver) VisitCmdFunctionStmt(s *ast.CmdFunctionStmt) (interface{}, error) {
	r.declare(s.Name)
	r.define(s.Name)
	return nil, nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) (interface{}, error) {
	if r.currentFunction == noFunction {
		r.errorf(s.Keyword.Line, "cannot return from top-level code")
	}
	if s.Value != nil {
		r.resolveExpr(s.Value)
	}
	return nil, nil
}

func (r *Resolver) VisitClassStmt(s *ast.ClassStmt) (interface{}, error) {
	enclosingClass := r.currentClass
	r.currentClass = inClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.errorf(s.Superclass.Name.Line, "a class cannot inherit from itself")
		} else {
			r.currentClass = inSubclass
			r.resolveExpr(s.Superclass)
		}
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		r.resolveFunction(method.Params, method.Body, inMethod)
	}

	r.endScope()
	if s.Superclass != nil {
		r.endScope()
	}
	r.currentClass = enclosingClass
	return nil, nil
}

// --- ExprVisitor ---

func (r *Resolver) VisitVariableExpr(e *ast.VariableExpr) (interface{}, error) {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
			r.errorf(e.Name.Line, "cannot read local variable '%s' in its own initializer", e.Name.Lexeme)
		}
	}
	r.resolveLocal(int(e.ID()), e.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(e *ast.AssignExpr) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(int(e.ID()), e.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitThisExpr(e *ast.ThisExpr) (interface{}, error) {
	if r.currentClass == noClass {
		r.errorf(e.Keyword.Line, "cannot use 'this' outside of a method")
		return nil, nil
	}
	r.resolveLocal(int(e.ID()), "this")
	return nil, nil
}

func (r *Resolver) VisitSuperExpr(e *ast.SuperExpr) (interface{}, error) {
	if r.currentClass == noClass {
		r.errorf(e.Keyword.Line, "cannot use 'super' outside of a method")
	} else if r.currentClass != inSubclass {
		r.errorf(e.Keyword.Line, "cannot use 'super' in a class with no superclass")
	}
	r.resolveLocal(int(e.ID()), "super")
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.BinaryExpr) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.LogicalExpr) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.CallExpr) (interface{}, error) {
	r.resolveExpr(e.Callee)
	for _, a := range e.Arguments {
		r.resolveExpr(a)
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(e *ast.GetExpr) (interface{}, error) {
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitSetExpr(e *ast.SetExpr) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.GroupingExpr) (interface{}, error) {
	r.resolveExpr(e.Expression)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(e *ast.LiteralExpr) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.UnaryExpr) (interface{}, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitAnonFunctionExpr(e *ast.AnonFunctionExpr) (interface{}, error) {
	r.resolveFunction(e.Params, e.Body, inFunction)
	return nil, nil
}
