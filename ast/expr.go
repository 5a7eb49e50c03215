/*
File    : loxmix/ast/expr.go

Package ast defines the expression and statement trees the parser
builds and the resolver/interpreter walk. Every expression node carries
a unique, monotonically assigned integer ID; that ID (not the node's
structural shape, not its address) is what the resolver's scope-depth
map and the environment's locals table key on. See Resolver and
Environment for why identity has to be stable under AST storage in any
container, including value slices that get copied or reallocated.
*/
package ast

import "github.com/loxmix/loxmix/token"

// ExprID is the identity of an expression node, minted once at parse
// time and never recomputed.
type ExprID int

// Expr is the tagged union of expression node kinds. Accept dispatches
// to the matching ExprVisitor method.
type Expr interface {
	ID() ExprID
	Accept(v ExprVisitor) (interface{}, error)
}

// ExprVisitor is implemented once per tree-walk (the resolver, the
// interpreter, a debug printer) and given one method per Expr variant.
type ExprVisitor interface {
	VisitLiteralExpr(e *LiteralExpr) (interface{}, error)
	VisitGroupingExpr(e *GroupingExpr) (interface{}, error)
	VisitUnaryExpr(e *UnaryExpr) (interface{}, error)
	VisitBinaryExpr(e *BinaryExpr) (interface{}, error)
	VisitLogicalExpr(e *LogicalExpr) (interface{}, error)
	VisitVariableExpr(e *VariableExpr) (interface{}, error)
	VisitAssignExpr(e *AssignExpr) (interface{}, error)
	VisitCallExpr(e *CallExpr) (interface{}, error)
	VisitGetExpr(e *GetExpr) (interface{}, error)
	VisitSetExpr(e *SetExpr) (interface{}, error)
	VisitThisExpr(e *ThisExpr) (interface{}, error)
	VisitSuperExpr(e *SuperExpr) (interface{}, error)
	VisitAnonFunctionExpr(e *AnonFunctionExpr) (interface{}, error)
}

// exprBase supplies the ID field and method shared by every Expr variant.
type exprBase struct {
	id ExprID
}

func (b exprBase) ID() ExprID { return b.id }

// LiteralExpr is a number, string, boolean, or nil literal baked in at
// parse time as a runtime-ready value (interface{} so ast has no
// dependency on the object package; the interpreter knows how to read it).
type LiteralExpr struct {
	exprBase
	Value interface{}
}

func (e *LiteralExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// GroupingExpr is a parenthesized sub-expression; it exists purely to
// preserve the source's explicit precedence override.
type GroupingExpr struct {
	exprBase
	Expression Expr
}

func (e *GroupingExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// UnaryExpr is a prefix `-` or `!` applied to Right.
type UnaryExpr struct {
	exprBase
	Operator token.Token
	Right    Expr
}

func (e *UnaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// BinaryExpr covers arithmetic, comparison, and equality operators.
type BinaryExpr struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *BinaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// LogicalExpr is `and`/`or`; kept distinct from BinaryExpr because it
// short-circuits and because its result is the determining operand's
// value, not a coerced boolean.
type LogicalExpr struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *LogicalExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// VariableExpr reads the binding named by Name. Its ExprID is the key
// the resolver records a scope depth under, if the reference is local.
type VariableExpr struct {
	exprBase
	Name token.Token
}

func (e *VariableExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// AssignExpr writes Value into the binding named by Name and yields
// Value as its own result.
type AssignExpr struct {
	exprBase
	Name  token.Token
	Value Expr
}

func (e *AssignExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// CallExpr applies Callee to Arguments. Paren is the token that closes
// the argument list (or, for a desugared pipe, the pipe token itself);
// it anchors arity-mismatch diagnostics to a source location.
type CallExpr struct {
	exprBase
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func (e *CallExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }

// GetExpr reads the field or bound method Name off Object.
type GetExpr struct {
	exprBase
	Object Expr
	Name   token.Token
}

func (e *GetExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGetExpr(e) }

// SetExpr writes Value into field Name on Object.
type SetExpr struct {
	exprBase
	Object Expr
	Name   token.Token
	Value  Expr
}

func (e *SetExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitSetExpr(e) }

// ThisExpr resolves to the receiver bound in the enclosing method scope.
type ThisExpr struct {
	exprBase
	Keyword token.Token
}

func (e *ThisExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitThisExpr(e) }

// SuperExpr resolves Method on the superclass of the enclosing method's
// class, bound to the same receiver as the surrounding `this`.
type SuperExpr struct {
	exprBase
	Keyword token.Token
	Method  token.Token
}

func (e *SuperExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitSuperExpr(e) }

// AnonFunctionExpr is `fun (params) { body }` used as an expression; it
// captures the environment active at its creation site exactly like a
// named Function statement does.
type AnonFunctionExpr struct {
	exprBase
	Params []token.Token
	Body   []Stmt
}

func (e *AnonFunctionExpr) Accept(v ExprVisitor) (interface{}, error) {
	return v.VisitAnonFunctionExpr(e)
}

// The constructors below are used by the parser, which owns the single
// monotonically increasing ID counter (see parser.Parser.newID).

func NewLiteralExpr(id ExprID, value interface{}) *LiteralExpr {
	return &LiteralExpr{exprBase: exprBase{id}, Value: value}
}

func NewGroupingExpr(id ExprID, expression Expr) *GroupingExpr {
	return &GroupingExpr{exprBase: exprBase{id}, Expression: expression}
}

func NewUnaryExpr(id ExprID, operator token.Token, right Expr) *UnaryExpr {
	return &UnaryExpr{exprBase: exprBase{id}, Operator: operator, Right: right}
}

func NewBinaryExpr(id ExprID, left Expr, operator token.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{exprBase: exprBase{id}, Left: left, Operator: operator, Right: right}
}

func NewLogicalExpr(id ExprID, left Expr, operator token.Token, right Expr) *LogicalExpr {
	return &LogicalExpr{exprBase: exprBase{id}, Left: left, Operator: operator, Right: right}
}

func NewVariableExpr(id ExprID, name token.Token) *VariableExpr {
	return &VariableExpr{exprBase: exprBase{id}, Name: name}
}

func NewAssignExpr(id ExprID, name token.Token, value Expr) *AssignExpr {
	return &AssignExpr{exprBase: exprBase{id}, Name: name, Value: value}
}

func NewCallExpr(id ExprID, callee Expr, paren token.Token, arguments []Expr) *CallExpr {
	return &CallExpr{exprBase: exprBase{id}, Callee: callee, Paren: paren, Arguments: arguments}
}

func NewGetExpr(id ExprID, object Expr, name token.Token) *GetExpr {
	return &GetExpr{exprBase: exprBase{id}, Object: object, Name: name}
}

func NewSetExpr(id ExprID, object Expr, name token.Token, value Expr) *SetExpr {
	return &SetExpr{exprBase: exprBase{id}, Object: object, Name: name, Value: value}
}

func NewThisExpr(id ExprID, keyword token.Token) *ThisExpr {
	return &ThisExpr{exprBase: exprBase{id}, Keyword: keyword}
}

func NewSuperExpr(id ExprID, keyword, method token.Token) *SuperExpr {
	return &SuperExpr{exprBase: exprBase{id}, Keyword: keyword, Method: method}
}

func NewAnonFunctionExpr(id ExprID, params []token.Token, body []Stmt) *AnonFunctionExpr {
	return &AnonFunctionExpr{exprBase: exprBase{id}, Params: params, Body: body}
}
