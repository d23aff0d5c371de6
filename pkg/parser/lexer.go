package parser

import (
	"strconv"

	"github.com/sandrolain/golox/pkg/types"
)

// Scanner converts Lox source text into a sequence of tokens.
//
// Lexical errors are collected rather than returned: scanning always runs
// to the end of the input and yields every token it could recognise, so a
// single pass reports all problems.
type Scanner struct {
	cur       *Cursor
	start     int // Start offset of the current lexeme
	startLine int // Line the current lexeme starts on
	tokens    []types.Token
	diags     types.Diagnostics
}

// NewScanner creates a scanner for source.
func NewScanner(source string, opts ...CompileOption) *Scanner {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	capacity := options.TokenCapacity
	if capacity <= 0 {
		capacity = len(source)/4 + 1
	}

	return &Scanner{
		cur:    NewCursor(source),
		tokens: make([]types.Token, 0, capacity),
	}
}

// Scan tokenizes source. The returned slice always ends with exactly one
// TokenEOF token.
func Scan(source string, opts ...CompileOption) ([]types.Token, types.Diagnostics) {
	return NewScanner(source, opts...).ScanTokens()
}

// ScanTokens runs the scanner to the end of its input.
// It must be called at most once per Scanner.
func (s *Scanner) ScanTokens() ([]types.Token, types.Diagnostics) {
	for !s.cur.AtEnd() {
		s.start = s.cur.Offset()
		s.startLine = s.cur.Line()
		s.scanToken()
	}

	s.tokens = append(s.tokens, types.Token{
		Type:   types.TokenEOF,
		Line:   s.cur.Line(),
		Offset: s.cur.Offset(),
	})
	return s.tokens, s.diags
}

func (s *Scanner) scanToken() {
	ch := s.cur.Advance()

	if tt, ok := lookupSymbol1(ch); ok {
		s.addToken(tt)
		return
	}

	// Maximal munch: !=, ==, <=, >=
	if one, two, ok := lookupSymbol2(ch); ok {
		if s.cur.Match('=') {
			s.addToken(two)
		} else {
			s.addToken(one)
		}
		return
	}

	switch {
	case ch == '/':
		s.scanSlash()
	case ch == ' ', ch == '\r', ch == '\t':
	case ch == '\n':
		s.cur.NewLine()
	case ch == '"':
		s.scanString()
	case isDigit(ch):
		s.scanNumber()
	case isAlpha(ch):
		s.scanIdentifier()
	default:
		s.diags.Add(types.NewLexicalError(types.ErrUnexpectedChar, s.cur.Line(), s.start, "Unexpected character"))
	}
}

// scanSlash handles '/', which starts a line comment, a block comment or
// a division operator.
func (s *Scanner) scanSlash() {
	switch {
	case s.cur.Match('/'):
		for s.cur.Peek() != '\n' && !s.cur.AtEnd() {
			s.cur.Advance()
		}
	case s.cur.Match('*'):
		s.scanBlockComment()
	default:
		s.addToken(types.TokenSlash)
	}
}

// scanBlockComment consumes a comment up to and including "*/".
// Block comments do not nest.
func (s *Scanner) scanBlockComment() {
	for {
		switch s.cur.Advance() {
		case eof:
			s.diags.Add(types.NewLexicalError(types.ErrCommentNotClosed, s.startLine, s.start, "Unterminated block comment"))
			return
		case '\n':
			s.cur.NewLine()
		case '*':
			if s.cur.Match('/') {
				return
			}
		}
	}
}

// scanString reads a string literal. The opening quote has already been
// consumed. Strings may span lines and have no escape sequences.
func (s *Scanner) scanString() {
	for s.cur.Peek() != '"' && !s.cur.AtEnd() {
		if s.cur.Peek() == '\n' {
			s.cur.NewLine()
		}
		s.cur.Advance()
	}

	if s.cur.AtEnd() {
		s.diags.Add(types.NewLexicalError(types.ErrStringNotClosed, s.startLine, s.start, "Unterminated string"))
		return
	}

	s.cur.Advance() // closing quote

	lexeme := s.cur.Slice(s.start)
	s.addLiteralToken(types.TokenString, types.StringLiteral(lexeme[1:len(lexeme)-1]))
}

// scanNumber reads a number literal. The first digit has already been
// consumed. Format: [0-9]+(\.[0-9]+)?
func (s *Scanner) scanNumber() {
	for isDigit(s.cur.Peek()) {
		s.cur.Advance()
	}

	// A dot is a decimal point only when a digit follows it.
	if s.cur.Peek() == '.' && isDigit(s.cur.PeekNext()) {
		s.cur.Advance()
		for isDigit(s.cur.Peek()) {
			s.cur.Advance()
		}
	}

	// The lexeme is digits with at most one interior dot, so the only
	// possible failure is ErrRange, for which ParseFloat returns ±Inf.
	val, _ := strconv.ParseFloat(s.cur.Slice(s.start), 64)
	s.addLiteralToken(types.TokenNumber, types.NumberLiteral(val))
}

// scanIdentifier reads an identifier or keyword. The first character has
// already been consumed.
func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.cur.Peek()) {
		s.cur.Advance()
	}
	s.addToken(lookupKeyword(s.cur.Slice(s.start)))
}

// Helper methods

func (s *Scanner) addToken(tt types.TokenType) {
	s.addLiteralToken(tt, types.Literal{})
}

func (s *Scanner) addLiteralToken(tt types.TokenType, lit types.Literal) {
	s.tokens = append(s.tokens, types.Token{
		Type:    tt,
		Lexeme:  s.cur.Slice(s.start),
		Literal: lit,
		Line:    s.startLine,
		Offset:  s.start,
	})
}
