package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxmix/loxmix/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

func TestScanTokens_Operators(t *testing.T) {
	toks, err := ScanTokens(`(){},.-+;*!= = == > >= < <= |> <-`)
	assert.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star,
		token.BangEqual, token.Equal, token.EqualEqual, token.Greater, token.GreaterEqual,
		token.Less, token.LessEqual, token.Pipe, token.Arrow, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_NumberAndString(t *testing.T) {
	toks, err := ScanTokens(`123 3.14 "hello world"`)
	assert.NoError(t, err)
	assert.Equal(t, []token.Kind{token.Number, token.Number, token.String, token.EOF}, kinds(toks))
	assert.Equal(t, 123.0, toks[0].Literal.Number)
	assert.Equal(t, 3.14, toks[1].Literal.Number)
	assert.Equal(t, "hello world", toks[2].Literal.Str)
}

func TestScanTokens_TrailingDotNotConsumed(t *testing.T) {
	toks, err := ScanTokens(`1.`)
	assert.NoError(t, err)
	assert.Equal(t, []token.Kind{token.Number, token.Dot, token.EOF}, kinds(toks))
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	toks, err := ScanTokens(`var x = class_ this super`)
	assert.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.Var, token.Identifier, token.Equal, token.Identifier,
		token.This, token.Super, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_CommentsAndWhitespace(t *testing.T) {
	toks, err := ScanTokens("// a comment\nvar x; // trailing\nvar y;")
	assert.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.Var, token.Identifier, token.Semicolon,
		token.Var, token.Identifier, token.Semicolon, token.EOF,
	}, kinds(toks))
	assert.Equal(t, 2, toks[0].Line)
	assert.Equal(t, 3, toks[3].Line)
}

func TestScanTokens_UnterminatedStringAccumulatesError(t *testing.T) {
	_, err := ScanTokens(`"no closing quote`)
	assert.Error(t, err)
}

func TestScanTokens_UnexpectedCharacterAccumulates(t *testing.T) {
	_, err := ScanTokens(`var x = @;`)
	assert.Error(t, err)
}

func TestScanTokens_StringWithEmbeddedNewlineTracksLine(t *testing.T) {
	toks, err := ScanTokens("\"line1\nline2\" var x;")
	assert.NoError(t, err)
	assert.Equal(t, "line1\nline2", toks[0].Literal.Str)
	assert.Equal(t, 2, toks[1].Line)
}
