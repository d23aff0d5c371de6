package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sandrolain/golox/pkg/types"
)

func TestSuggestLiteral(t *testing.T) {
	tests := []struct {
		lexeme   string
		expected string
	}{
		{"ture", "did you mean 'true'?"},
		{"treu", "did you mean 'true'?"},
		{"flase", "did you mean 'false'?"},
		{"fals", "did you mean 'false'?"},
		{"nill", "did you mean 'nil'?"},
		{"nul", "did you mean 'nil'?"},
		{"no", ""},
		{"x", ""},
		{"banana", ""},
	}

	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			tok := types.Token{Type: types.TokenIdentifier, Lexeme: tt.lexeme}
			assert.Equal(t, tt.expected, suggestLiteral(tok))
		})
	}
}

func TestSuggestLiteralIgnoresNonIdentifiers(t *testing.T) {
	tok := types.Token{Type: types.TokenString, Lexeme: "ture"}
	assert.Empty(t, suggestLiteral(tok))
}

func TestLookupKeyword(t *testing.T) {
	assert.Equal(t, types.TokenWhile, lookupKeyword("while"))
	assert.Equal(t, types.TokenIdentifier, lookupKeyword("While"))
	assert.Equal(t, types.TokenIdentifier, lookupKeyword("whiles"))
}

func TestLookupSymbols(t *testing.T) {
	tt, ok := lookupSymbol1('(')
	assert.True(t, ok)
	assert.Equal(t, types.TokenLeftParen, tt)

	_, ok = lookupSymbol1('!')
	assert.False(t, ok)
	_, ok = lookupSymbol1('é')
	assert.False(t, ok)

	one, two, ok := lookupSymbol2('<')
	assert.True(t, ok)
	assert.Equal(t, types.TokenLess, one)
	assert.Equal(t, types.TokenLessEqual, two)

	_, _, ok = lookupSymbol2('+')
	assert.False(t, ok)
}
