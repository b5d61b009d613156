// File: golox/parser/parser_expressions.go
//
// The expression ladder, low to high precedence: assignment, or, and,
// equality, comparison, term, factor, unary, call, primary.
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses an r-value first, then — if '=' follows — requires the
// l-value to be a Variable or Get expression, producing Assign or Set
// respectively. Any other l-value is a syntax error that does not abort
// the rest of the parse (spec.md 4.2).
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.matchType(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return ast.NewAssignExpr(target.Name, value)
		case *ast.GetExpr:
			return ast.NewSetExpr(target.Object, target.Name, value)
		default:
			p.reporter.ErrorAt(equals, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.matchType(token.Or) {
		operator := p.previous()
		right := p.and()
		expr = ast.NewLogicalExpr(expr, operator, right)
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.matchType(token.And) {
		operator := p.previous()
		right := p.equality()
		expr = ast.NewLogicalExpr(expr, operator, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.matchType(token.BangEqual, token.EqualEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = ast.NewBinaryExpr(expr, operator, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.matchType(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		operator := p.previous()
		right := p.term()
		expr = ast.NewBinaryExpr(expr, operator, right)
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.matchType(token.Minus, token.Plus) {
		operator := p.previous()
		right := p.factor()
		expr = ast.NewBinaryExpr(expr, operator, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.matchType(token.Slash, token.Star) {
		operator := p.previous()
		right := p.unary()
		expr = ast.NewBinaryExpr(expr, operator, right)
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.matchType(token.Bang, token.Minus) {
		operator := p.previous()
		right := p.unary()
		return ast.NewUnaryExpr(operator, right)
	}
	return p.call()
}

// call handles chained `(...)` and `.name` uniformly in a loop, so
// `a.b(1).c` parses without a separate postfix grammar rule.
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.matchType(token.LeftParen):
			expr = p.finishCall(expr)
		case p.matchType(token.Dot):
			name := p.consume(token.Identifier, "Expect property name after '.'.")
			expr = ast.NewGetExpr(expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var arguments []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(arguments) >= maxArgs {
				p.reporter.ErrorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			arguments = append(arguments, p.expression())
			if !p.matchType(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expect ')' after arguments.")
	return ast.NewCallExpr(callee, paren, arguments)
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.matchType(token.False):
		return ast.NewLiteralExpr(false)
	case p.matchType(token.True):
		return ast.NewLiteralExpr(true)
	case p.matchType(token.Nil):
		return ast.NewLiteralExpr(nil)
	case p.matchType(token.Number, token.String):
		return ast.NewLiteralExpr(p.previous().Literal)
	case p.matchType(token.Super):
		keyword := p.previous()
		p.consume(token.Dot, "Expect '.' after 'super'.")
		method := p.consume(token.Identifier, "Expect superclass method name.")
		return ast.NewSuperExpr(keyword, method)
	case p.matchType(token.This):
		return ast.NewThisExpr(p.previous())
	case p.matchType(token.Identifier):
		return ast.NewVariableExpr(p.previous())
	case p.matchType(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return ast.NewGroupingExpr(expr)
	default:
		panic(p.errorAt(p.peek(), "Expect expression."))
	}
}
