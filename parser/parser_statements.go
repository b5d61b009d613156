// File: golox/parser/parser_statements.go
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
)

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.matchType(token.For):
		return p.forStatement()
	case p.matchType(token.If):
		return p.ifStatement()
	case p.matchType(token.Print):
		return p.printStatement()
	case p.matchType(token.Return):
		return p.returnStatement()
	case p.matchType(token.While):
		return p.whileStatement()
	case p.matchType(token.LeftBrace):
		return ast.NewBlockStmt(p.block())
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return ast.NewPrintStmt(value)
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value.")
	return ast.NewReturnStmt(keyword, value)
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "Expect variable name.")
	var initializer ast.Expr
	if p.matchType(token.Equal) {
		initializer = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return ast.NewVarStmt(name, initializer)
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")
	body := p.statement()
	return ast.NewWhileStmt(condition, body)
}

// forStatement desugars `for (init; cond; incr) body` into
// `Block([init?, While(cond ?? true, Block([body, Expression(incr)?]))])`
// at parse time, per spec.md 4.2 — the interpreter never sees a For node.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.matchType(token.Semicolon):
		initializer = nil
	case p.matchType(token.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = ast.NewBlockStmt([]ast.Stmt{body, ast.NewExpressionStmt(increment)})
	}
	if condition == nil {
		condition = ast.NewLiteralExpr(true)
	}
	body = ast.NewWhileStmt(condition, body)

	if initializer != nil {
		body = ast.NewBlockStmt([]ast.Stmt{initializer, body})
	}
	return body
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.matchType(token.Else) {
		elseBranch = p.statement()
	}
	return ast.NewIfStmt(condition, thenBranch, elseBranch)
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		if stmt, ok := p.declarationSafe(); ok {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return statements
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return ast.NewExpressionStmt(expr)
}
