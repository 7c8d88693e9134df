package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kestrel/internal/tokens"
)

func scanSource(t *testing.T, source string) ([]token, error) {
	t.Helper()
	state := &interpreterState{name: "lex.ks", source: source}
	err := newLexer(state).scan()
	return state.tokens, err
}

func tokenTypes(tks []token) []tokens.TokenType {
	types := make([]tokens.TokenType, len(tks))
	for i, tk := range tks {
		types[i] = tk.token
	}
	return types
}

func TestScanOperators(t *testing.T) {
	tks, err := scanSource(t, "( ) : , - + / * % ^ ! != == > >= < <= <- && ||")
	require.NoError(t, err)
	assert.Equal(t, []tokens.TokenType{
		tokens.LEFT_PAREN, tokens.RIGHT_PAREN, tokens.COLON, tokens.COMMA,
		tokens.MINUS, tokens.PLUS, tokens.SLASH, tokens.STAR, tokens.MOD,
		tokens.POWER, tokens.BANG, tokens.BANG_EQUAL, tokens.EQUAL_EQUAL,
		tokens.GREATER, tokens.GREATER_EQUAL, tokens.LESS, tokens.LESS_EQUAL,
		tokens.ASSIGN, tokens.AND, tokens.OR, tokens.EOF,
	}, tokenTypes(tks))
}

func TestScanKeywordsAndLiterals(t *testing.T) {
	tks, err := scanSource(t, `if else end then fun for do var name _x9 "str" 42`)
	require.NoError(t, err)
	assert.Equal(t, []tokens.TokenType{
		tokens.IF, tokens.ELSE, tokens.END, tokens.THEN, tokens.FUN,
		tokens.FOR, tokens.DO, tokens.VAR, tokens.IDENTIFIER,
		tokens.IDENTIFIER, tokens.STRING, tokens.INTEGER, tokens.EOF,
	}, tokenTypes(tks))
	assert.Equal(t, "_x9", tks[9].lexeme)
	assert.Equal(t, "str", tks[10].lexeme)
	assert.Equal(t, "42", tks[11].lexeme)
}

func TestScanNewlines(t *testing.T) {
	tks, err := scanSource(t, "\n\n1;;\n\r\n2\n")
	require.NoError(t, err)
	assert.Equal(t, []tokens.TokenType{
		tokens.INTEGER, tokens.NEWLINE, tokens.INTEGER, tokens.NEWLINE, tokens.EOF,
	}, tokenTypes(tks))
}

func TestScanComments(t *testing.T) {
	tks, err := scanSource(t, "1 // trailing\n/* block\ncomment */ 2")
	require.NoError(t, err)
	assert.Equal(t, []tokens.TokenType{
		tokens.INTEGER, tokens.NEWLINE, tokens.INTEGER, tokens.EOF,
	}, tokenTypes(tks))
	assert.Equal(t, 3, tks[2].pos.line)
}

func TestScanEscapes(t *testing.T) {
	tks, err := scanSource(t, `"a\nb\t\"c\"\\"`)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\t\"c\"\\", tks[0].lexeme)
}

func TestScanPositions(t *testing.T) {
	tks, err := scanSource(t, "var x : int <- 1\n  x")
	require.NoError(t, err)
	assert.Equal(t, position{source: "lex.ks", line: 1, column: 1}, tks[0].pos)
	assert.Equal(t, position{source: "lex.ks", line: 1, column: 13}, tks[4].pos)
	assert.Equal(t, position{source: "lex.ks", line: 2, column: 3}, tks[7].pos)
	assert.Equal(t, "lex.ks:2:3", tks[7].pos.String())
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		source string
		msg    string
	}{
		{"1 @ 2", "lex.ks:1:3: illegal character '@': lex error"},
		{`"open`, "lex.ks:1:1: closing \" was expected: lex error"},
		{"/* open", "lex.ks:1:1: closing */ was expected: lex error"},
		{`"\q"`, "lex.ks:1:4: unknown escape sequence \\q: lex error"},
		{"a & b", "lex.ks:1:3: expected '&' after '&', got ' ': lex error"},
		{"a |", "lex.ks:1:3: expected '|' after '|', got \"EOF\": lex error"},
	}

	for _, tt := range tests {
		_, err := scanSource(t, tt.source)
		require.Error(t, err, tt.source)
		assert.True(t, errors.Is(err, ErrLex))
		assert.Equal(t, tt.msg, err.Error())
	}
}
