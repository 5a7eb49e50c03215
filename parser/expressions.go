package parser

import (
	"github.com/loxmix/loxmix/ast"
	"github.com/loxmix/loxmix/token"
)

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment is the loosest-binding level: `target = value`, where
// value is itself parsed at assignment level so `a = b = c` associates
// right. Everything tighter than assignment, including the pipe
// desugar, lives in pipeExpr and below.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.pipeExpr()
	if err != nil {
		return nil, err
	}

	if p.match(token.Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		switch target := expr.(type) {
		case *ast.VariableExpr:
			return ast.NewAssignExpr(p.newID(), target.Name, value), nil
		case *ast.GetExpr:
			return ast.NewSetExpr(p.newID(), target.Object, target.Name, value), nil
		default:
			return nil, p.errorf(equals, "invalid assignment target")
		}
	}
	return expr, nil
}

// pipeExpr implements `|>`: `x |> f` desugars to the call `f(x)`, and
// chains left-to-right so `x |> f |> g` is `g(f(x))`. The pipe token
// itself is carried into the resulting CallExpr's Paren field, so an
// arity error on a piped call still points at a real source location.
func (p *Parser) pipeExpr() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	for p.match(token.Pipe) {
		pipeTok := p.previous()
		callee, err := p.or()
		if err != nil {
			return nil, err
		}
		expr = ast.NewCallExpr(p.newID(), callee, pipeTok, []ast.Expr{expr})
	}
	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(token.Or) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogicalExpr(p.newID(), expr, op, right)
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.And) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogicalExpr(p.newID(), expr, op, right)
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinaryExpr(p.newID(), expr, op, right)
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinaryExpr(p.newID(), expr, op, right)
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinaryExpr(p.newID(), expr, op, right)
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.Star, token.Slash) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinaryExpr(p.newID(), expr, op, right)
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(p.newID(), op, right), nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(token.LeftParen):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(token.Dot):
			name, err := p.consume(token.Identifier, "expected a property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = ast.NewGetExpr(p.newID(), expr, name)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= 255 {
				return nil, p.errorf(p.peek(), "cannot have more than 255 arguments")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren, err := p.consume(token.RightParen, "expected ')' after arguments")
	if err != nil {
		return nil, err
	}
	return ast.NewCallExpr(p.newID(), callee, paren, args), nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.False):
		return ast.NewLiteralExpr(p.newID(), false), nil
	case p.match(token.True):
		return ast.NewLiteralExpr(p.newID(), true), nil
	case p.match(token.Nil):
		return ast.NewLiteralExpr(p.newID(), nil), nil
	case p.match(token.Number):
		return ast.NewLiteralExpr(p.newID(), p.previous().Literal.Number), nil
	case p.match(token.String):
		return ast.NewLiteralExpr(p.newID(), p.previous().Literal.Str), nil
	case p.match(token.Super):
		keyword := p.previous()
		if _, err := p.consume(token.Dot, "expected '.' after 'super'"); err != nil {
			return nil, err
		}
		method, err := p.consume(token.Identifier, "expected a superclass method name")
		if err != nil {
			return nil, err
		}
		return ast.NewSuperExpr(p.newID(), keyword, method), nil
	case p.match(token.This):
		return ast.NewThisExpr(p.newID(), p.previous()), nil
	case p.match(token.Identifier):
		return ast.NewVariableExpr(p.newID(), p.previous()), nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return ast.NewGroupingExpr(p.newID(), expr), nil
	case p.match(token.Fun):
		return p.anonFunction()
	default:
		return nil, p.errorf(p.peek(), "expected an expression")
	}
}

// anonFunction parses `fun (params) { body }` used as an expression,
// after the leading `fun` has already been consumed by primary.
func (p *Parser) anonFunction() (ast.Expr, error) {
	if _, err := p.consume(token.LeftParen, "expected '(' after 'fun'"); err != nil {
		return nil, err
	}
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= 255 {
				return nil, p.errorf(p.peek(), "cannot have more than 255 parameters")
			}
			param, err := p.consume(token.Identifier, "expected a parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightParen, "expected ')' after parameters"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftBrace, "expected '{' before anonymous function body"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return ast.NewAnonFunctionExpr(p.newID(), params, body), nil
}
