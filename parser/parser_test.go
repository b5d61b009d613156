// File: golox/parser/parser_test.go
package parser

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxerror"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *loxerror.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	reporter := loxerror.New(&buf)
	tokens := lexer.New(src, reporter).ScanTokens()
	require.False(t, reporter.HadError(), "lex error: %s", buf.String())
	stmts := New(tokens, reporter).Parse()
	return stmts, reporter
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	stmts, reporter := parse(t, "1 + 2 * 3;")
	assert.False(t, reporter.HadError())
	require.Len(t, stmts, 1)
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	bin := exprStmt.Expression.(*ast.BinaryExpr)
	assert.Equal(t, "+", bin.Operator.Lexeme)
	assert.IsType(t, &ast.LiteralExpr{}, bin.Left)
	assert.IsType(t, &ast.BinaryExpr{}, bin.Right)
}

func TestParse_AssignmentTargetMustBeVariableOrGet(t *testing.T) {
	_, reporter := parse(t, "1 + 2 = 3;")
	assert.True(t, reporter.HadError())
}

func TestParse_LogicalProducesLogicalNode(t *testing.T) {
	stmts, _ := parse(t, "true and false;")
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	assert.IsType(t, &ast.LogicalExpr{}, exprStmt.Expression)
}

func TestParse_ForLoopDesugarsToWhile(t *testing.T) {
	stmts, reporter := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	assert.False(t, reporter.HadError())
	require.Len(t, stmts, 1)
	outer := stmts[0].(*ast.BlockStmt)
	require.Len(t, outer.Statements, 2)
	assert.IsType(t, &ast.VarStmt{}, outer.Statements[0])
	assert.IsType(t, &ast.WhileStmt{}, outer.Statements[1])
}

func TestParse_ForLoopMissingClausesDefaultsToTrue(t *testing.T) {
	stmts, reporter := parse(t, "for (;;) print 1;")
	assert.False(t, reporter.HadError())
	whileStmt := stmts[0].(*ast.WhileStmt)
	lit := whileStmt.Condition.(*ast.LiteralExpr)
	assert.Equal(t, true, lit.Value)
}

func TestParse_ClassWithSuperclass(t *testing.T) {
	stmts, reporter := parse(t, "class B < A { greet() { return 1; } }")
	assert.False(t, reporter.HadError())
	class := stmts[0].(*ast.ClassStmt)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "A", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "greet", class.Methods[0].Name.Lexeme)
}

func TestParse_SyntaxErrorRecoversAtNextStatement(t *testing.T) {
	stmts, reporter := parse(t, "1 + ; print 2;")
	assert.True(t, reporter.HadError())
	require.Len(t, stmts, 1)
	printStmt := stmts[0].(*ast.PrintStmt)
	lit := printStmt.Expression.(*ast.LiteralExpr)
	assert.Equal(t, 2.0, lit.Value)
}

func TestParse_TooManyArgumentsIsReportedNotFatal(t *testing.T) {
	src := "f("
	for i := 0; i < 300; i++ {
		if i > 0 {
			src += ","
		}
		src += "1"
	}
	src += ");"
	_, reporter := parse(t, src)
	assert.True(t, reporter.HadError())
}

func TestParse_RoundTripStructuralEquivalence(t *testing.T) {
	const src = "var x = 1 + 2 * 3;"
	first, r1 := parse(t, src)
	assert.False(t, r1.HadError())
	second, r2 := parse(t, src)
	assert.False(t, r2.HadError())

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	a := first[0].(*ast.VarStmt)
	b := second[0].(*ast.VarStmt)
	assert.NotEqual(t, a.ID(), b.ID(), "re-parsing must assign fresh node identities")

	// Structural shape — deliberately excluding node identity — must match.
	if diff := cmp.Diff(ast.StmtSexpr(a), ast.StmtSexpr(b)); diff != "" {
		t.Errorf("re-parse is not structurally equivalent (-first +second):\n%s", diff)
	}
}
