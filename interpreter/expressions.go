package interpreter

import (
	"github.com/loxmix/loxmix/ast"
	"github.com/loxmix/loxmix/object"
	"github.com/loxmix/loxmix/token"
)

func (it *Interpreter) VisitLiteralExpr(e *ast.LiteralExpr) (interface{}, error) {
	return e.Value, nil
}

func (it *Interpreter) VisitGroupingExpr(e *ast.GroupingExpr) (interface{}, error) {
	return it.evaluate(e.Expression)
}

func (it *Interpreter) VisitUnaryExpr(e *ast.UnaryExpr) (interface{}, error) {
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.Bang:
		return !object.Truthy(right), nil
	case token.Minus:
		n, ok := right.(float64)
		if !ok {
			return nil, runtimeErrorf(e.Operator, "operand must be a number")
		}
		return -n, nil
	}
	return nil, runtimeErrorf(e.Operator, "unknown unary operator %q", e.Operator.Lexeme)
}

func (it *Interpreter) VisitBinaryExpr(e *ast.BinaryExpr) (interface{}, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.EqualEqual:
		return object.Equals(left, right), nil
	case token.BangEqual:
		return !object.Equals(left, right), nil
	case token.Plus:
		return addValues(left, right, e.Operator)
	case token.Minus:
		l, r, err := numberOperands(left, right, e.Operator)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case token.Star:
		l, r, err := numberOperands(left, right, e.Operator)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case token.Slash:
		l, r, err := numberOperands(left, right, e.Operator)
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case token.Greater:
		l, r, err := numberOperands(left, right, e.Operator)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case token.GreaterEqual:
		l, r, err := numberOperands(left, right, e.Operator)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case token.Less:
		l, r, err := numberOperands(left, right, e.Operator)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case token.LessEqual:
		l, r, err := numberOperands(left, right, e.Operator)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	}
	return nil, runtimeErrorf(e.Operator, "unknown binary operator %q", e.Operator.Lexeme)
}

// addValues implements `+`: number+number adds, string+string
// concatenates, any other pairing is a type error. loxmix never
// coerces a number to a string or vice versa for `+`.
func addValues(left, right object.Value, op token.Token) (object.Value, error) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return l + r, nil
		}
	}
	return nil, runtimeErrorf(op, "operands must be two numbers or two strings")
}

func numberOperands(left, right object.Value, op token.Token) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, runtimeErrorf(op, "operands must be numbers")
	}
	return l, r, nil
}

// VisitLogicalExpr short-circuits and yields whichever operand
// determined the result, not a coerced boolean: `"a" or "b"` is "a".
func (it *Interpreter) VisitLogicalExpr(e *ast.LogicalExpr) (interface{}, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Kind == token.Or {
		if object.Truthy(left) {
			return left, nil
		}
	} else {
		if !object.Truthy(left) {
			return left, nil
		}
	}
	return it.evaluate(e.Right)
}

func (it *Interpreter) VisitVariableExpr(e *ast.VariableExpr) (interface{}, error) {
	v, err := it.environment.Get(e.Name.Lexeme, int(e.ID()))
	if err != nil {
		return nil, runtimeErrorf(e.Name, "%s", err.Error())
	}
	return v, nil
}

func (it *Interpreter) VisitAssignExpr(e *ast.AssignExpr) (interface{}, error) {
	value, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if err := it.environment.Assign(e.Name.Lexeme, value, int(e.ID())); err != nil {
		return nil, runtimeErrorf(e.Name, "%s", err.Error())
	}
	return value, nil
}

func (it *Interpreter) VisitCallExpr(e *ast.CallExpr) (interface{}, error) {
	callee, err := it.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]object.Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := it.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return it.callValue(callee, args, e.Paren)
}

func (it *Interpreter) VisitGetExpr(e *ast.GetExpr) (interface{}, error) {
	obj, err := it.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name, "only instances have properties")
	}
	if v, ok := instance.GetField(e.Name.Lexeme); ok {
		return v, nil
	}
	if method, ok := instance.Class.FindMethod(e.Name.Lexeme); ok {
		return method.Bind(instance), nil
	}
	return nil, runtimeErrorf(e.Name, "undefined property '%s'", e.Name.Lexeme)
}

func (it *Interpreter) VisitSetExpr(e *ast.SetExpr) (interface{}, error) {
	obj, err := it.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name, "only instances have fields")
	}
	value, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.SetField(e.Name.Lexeme, value)
	return value, nil
}

func (it *Interpreter) VisitThisExpr(e *ast.ThisExpr) (interface{}, error) {
	v, err := it.environment.Get("this", int(e.ID()))
	if err != nil {
		return nil, runtimeErrorf(e.Keyword, "%s", err.Error())
	}
	return v, nil
}

func (it *Interpreter) VisitSuperExpr(e *ast.SuperExpr) (interface{}, error) {
	superVal, err := it.environment.Get("super", int(e.ID()))
	if err != nil {
		return nil, runtimeErrorf(e.Keyword, "%s", err.Error())
	}
	superclass, ok := superVal.(*object.Class)
	if !ok {
		return nil, runtimeErrorf(e.Keyword, "internal error: 'super' is not a class")
	}
	instanceVal, err := it.environment.GetThisInstance(int(e.ID()))
	if err != nil {
		return nil, runtimeErrorf(e.Keyword, "%s", err.Error())
	}
	instance, ok := instanceVal.(*object.Instance)
	if !ok {
		return nil, runtimeErrorf(e.Keyword, "internal error: 'this' is not an instance")
	}
	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, runtimeErrorf(e.Method, "undefined property '%s'", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}

func (it *Interpreter) VisitAnonFunctionExpr(e *ast.AnonFunctionExpr) (interface{}, error) {
	return &object.UserFunction{
		Name:      "anonymous",
		Params:    e.Params,
		Body:      e.Body,
		ParentEnv: it.environment,
	}, nil
}
