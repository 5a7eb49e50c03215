package parser

import (
	"strings"

	"github.com/loxmix/loxmix/ast"
	"github.com/loxmix/loxmix/token"
)

func (p *Parser) checkNext(kind token.Kind) bool {
	if p.atEnd() || p.current+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.current+1].Kind == kind
}

// declaration is the entry point for every top-level and block-level
// statement. Parse calls synchronize and drops the statement whenever
// this returns a non-nil error.
func (p *Parser) declaration() (ast.Stmt, error) {
	switch {
	case p.match(token.Class):
		return p.classDeclaration()
	case p.match(token.Fun):
		return p.function("function")
	case p.check(token.Identifier) && p.checkNext(token.Arrow):
		return p.cmdFunctionDeclaration()
	case p.match(token.Var):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "expected a class name")
	if err != nil {
		return nil, err
	}

	var superclass *ast.VariableExpr
	if p.match(token.Less) {
		superName, err := p.consume(token.Identifier, "expected a superclass name")
		if err != nil {
			return nil, err
		}
		superclass = ast.NewVariableExpr(p.newID(), superName)
	}

	if _, err := p.consume(token.LeftBrace, "expected '{' before class body"); err != nil {
		return nil, err
	}

	var methods []*ast.FunctionStmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		m, err := p.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, m.(*ast.FunctionStmt))
	}
	if _, err := p.consume(token.RightBrace, "expected '}' after class body"); err != nil {
		return nil, err
	}

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}, nil
}

// function parses both a `fun name(params) { body }` declaration and a
// method body sharing the same shape (methods omit the leading `fun`,
// which the caller has already consumed or never required).
func (p *Parser) function(kind string) (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "expected a %s name", kind)
	if err != nil {
		return nil, err
	}
	params, body, err := p.functionBody(kind)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) functionBody(kind string) ([]token.Token, []ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "expected '(' after %s name", kind); err != nil {
		return nil, nil, err
	}
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= 255 {
				return nil, nil, p.errorf(p.peek(), "cannot have more than 255 parameters")
			}
			param, err := p.consume(token.Identifier, "expected a parameter name")
			if err != nil {
				return nil, nil, err
			}
			params = append(params, param)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightParen, "expected ')' after parameters"); err != nil {
		return nil, nil, err
	}
	if _, err := p.consume(token.LeftBrace, "expected '{' before %s body", kind); err != nil {
		return nil, nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, nil, err
	}
	return params, body, nil
}

// cmdFunctionDeclaration parses `name <- "shell command";`, loxmix's
// shorthand for a zero-arity function whose body runs a subprocess.
func (p *Parser) cmdFunctionDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "expected a function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Arrow, "expected '<-'"); err != nil {
		return nil, err
	}
	shellTok, err := p.consume(token.String, "expected a shell command string")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "expected ';' after shell command"); err != nil {
		return nil, err
	}
	return &ast.CmdFunctionStmt{Name: name, ShellText: strings.Clone(shellTok.Literal.Str)}, nil
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "expected a variable name")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Initializer: initializer}, nil
}
