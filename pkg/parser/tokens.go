package parser

import "github.com/sandrolain/golox/pkg/types"

// symbol is a symbols1 entry; ok is false for runes that are not symbols.
type symbol struct {
	tt types.TokenType
	ok bool
}

// symbols1 maps single-character symbols to token types.
var symbols1 = [...]symbol{
	'(': {types.TokenLeftParen, true},
	')': {types.TokenRightParen, true},
	'{': {types.TokenLeftBrace, true},
	'}': {types.TokenRightBrace, true},
	',': {types.TokenComma, true},
	'.': {types.TokenDot, true},
	'-': {types.TokenMinus, true},
	'+': {types.TokenPlus, true},
	';': {types.TokenSemicolon, true},
	'*': {types.TokenStar, true},
}

// symbols2 maps the first rune of a maximal-munch operator to the token
// produced with and without a trailing '='.
var symbols2 = [...]struct {
	one, two types.TokenType
	ok       bool
}{
	'!': {types.TokenBang, types.TokenBangEqual, true},
	'=': {types.TokenEqual, types.TokenEqualEqual, true},
	'<': {types.TokenLess, types.TokenLessEqual, true},
	'>': {types.TokenGreater, types.TokenGreaterEqual, true},
}

const (
	symbol1Count = rune(len(symbols1))
	symbol2Count = rune(len(symbols2))
)

// lookupSymbol1 returns the token type for a single-character symbol.
func lookupSymbol1(r rune) (types.TokenType, bool) {
	if r < 0 || r >= symbol1Count {
		return 0, false
	}
	s := symbols1[r]
	return s.tt, s.ok
}

// lookupSymbol2 returns the one- and two-character token types for an
// operator that may be followed by '='.
func lookupSymbol2(r rune) (one, two types.TokenType, ok bool) {
	if r < 0 || r >= symbol2Count {
		return 0, 0, false
	}
	s := symbols2[r]
	return s.one, s.two, s.ok
}

var keywords = map[string]types.TokenType{
	"and":    types.TokenAnd,
	"class":  types.TokenClass,
	"else":   types.TokenElse,
	"false":  types.TokenFalse,
	"for":    types.TokenFor,
	"fun":    types.TokenFun,
	"if":     types.TokenIf,
	"nil":    types.TokenNil,
	"or":     types.TokenOr,
	"print":  types.TokenPrint,
	"return": types.TokenReturn,
	"super":  types.TokenSuper,
	"this":   types.TokenThis,
	"true":   types.TokenTrue,
	"var":    types.TokenVar,
	"while":  types.TokenWhile,
}

// lookupKeyword returns the keyword token type for s, or TokenIdentifier.
// The comparison is exact and case-sensitive.
func lookupKeyword(s string) types.TokenType {
	if tt, ok := keywords[s]; ok {
		return tt
	}
	return types.TokenIdentifier
}

// statementStarts are the keywords the parser resynchronizes on.
var statementStarts = map[types.TokenType]bool{
	types.TokenClass:  true,
	types.TokenFun:    true,
	types.TokenVar:    true,
	types.TokenFor:    true,
	types.TokenIf:     true,
	types.TokenWhile:  true,
	types.TokenPrint:  true,
	types.TokenReturn: true,
}

// Character classification functions

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
