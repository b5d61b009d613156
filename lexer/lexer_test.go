// File: golox/lexer/lexer_test.go
package lexer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/loxerror"
	"github.com/akashmaji946/golox/token"
)

func scan(src string) ([]token.Token, *loxerror.Reporter) {
	var buf bytes.Buffer
	reporter := loxerror.New(&buf)
	return New(src, reporter).ScanTokens(), reporter
}

func TestScanTokens_Operators(t *testing.T) {
	tokens, reporter := scan("+-*/ != == <= >= < > = !")
	assert.False(t, reporter.HadError())
	types := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	assert.Equal(t, []token.Type{
		token.Plus, token.Minus, token.Star, token.Slash,
		token.BangEqual, token.EqualEqual, token.LessEqual, token.GreaterEqual,
		token.Less, token.Greater, token.Equal, token.Bang, token.EOF,
	}, types)
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	tokens, reporter := scan("123 45.67")
	assert.False(t, reporter.HadError())
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 45.67, tokens[1].Literal)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	tokens, reporter := scan(`"hello world"`)
	assert.False(t, reporter.HadError())
	assert.Equal(t, token.String, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, reporter := scan(`"hello`)
	assert.True(t, reporter.HadError())
}

func TestScanTokens_KeywordsVsIdentifiers(t *testing.T) {
	tokens, reporter := scan("var x = class fun")
	assert.False(t, reporter.HadError())
	assert.Equal(t, token.Var, tokens[0].Type)
	assert.Equal(t, token.Identifier, tokens[1].Type)
	assert.Equal(t, token.Equal, tokens[2].Type)
	assert.Equal(t, token.Class, tokens[3].Type)
	assert.Equal(t, token.Fun, tokens[4].Type)
}

func TestScanTokens_LineComment(t *testing.T) {
	tokens, reporter := scan("1 + 2 // a comment\n3")
	assert.False(t, reporter.HadError())
	assert.Len(t, tokens, 5) // 1 + 2 3 EOF
	assert.Equal(t, 2, tokens[4-1].Line)
}

func TestScanTokens_BlockComment(t *testing.T) {
	tokens, reporter := scan("1 /* multi\nline */ + 2")
	assert.False(t, reporter.HadError())
	assert.Len(t, tokens, 4) // 1 + 2 EOF
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_UnterminatedBlockComment(t *testing.T) {
	_, reporter := scan("1 /* never closed")
	assert.True(t, reporter.HadError())
}

func TestScanTokens_LineTracking(t *testing.T) {
	tokens, _ := scan("1\n2\n3")
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line)
}

func TestScanTokens_TrailingEOF(t *testing.T) {
	tokens, _ := scan("")
	assert.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Type)
}
