// File: golox/parser/parser_classes.go
package parser

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
)

// classDeclaration optionally parses `< Superclass`, then zero or more
// methods, each parsed with the function rule labeled "method" (the label
// is used only in its error messages, per spec.md 4.2).
func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "Expect class name.")

	var superclass *ast.VariableExpr
	if p.matchType(token.Less) {
		p.consume(token.Identifier, "Expect superclass name.")
		superclass = ast.NewVariableExpr(p.previous())
	}

	p.consume(token.LeftBrace, "Expect '{' before class body.")
	var methods []*ast.FunctionStmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RightBrace, "Expect '}' after class body.")

	return ast.NewClassStmt(name, superclass, methods)
}

// function parses both `fun` declarations and class methods; kind is
// "function" or "method" and appears only in diagnostics.
func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(token.Identifier, fmt.Sprintf("Expect %s name.", kind))

	p.consume(token.LeftParen, fmt.Sprintf("Expect '(' after %s name.", kind))
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.reporter.ErrorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter name."))
			if !p.matchType(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters.")

	p.consume(token.LeftBrace, fmt.Sprintf("Expect '{' before %s body.", kind))
	body := p.block()
	return ast.NewFunctionStmt(name, params, body)
}
