package parser

import (
	"github.com/sandrolain/golox/pkg/types"
)

// Parser implements a recursive descent parser for Lox expressions.
// Each binary precedence level is a left fold over the next-higher level,
// which makes every binary operator left-associative.
type Parser struct {
	tokens  []types.Token
	current int
	depth   int
	diags   types.Diagnostics
	opts    CompileOptions
}

// NewParser creates a parser over tokens. The slice must end with a
// TokenEOF token, as produced by Scan; one is appended if it does not.
func NewParser(tokens []types.Token, opts ...CompileOption) *Parser {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if n := len(tokens); n == 0 || tokens[n-1].Type != types.TokenEOF {
		eofTok := types.Token{Type: types.TokenEOF, Line: 1}
		if n > 0 {
			eofTok.Line = tokens[n-1].Line
		}
		tokens = append(tokens[:n:n], eofTok)
	}

	return &Parser{
		tokens: tokens,
		opts:   options,
	}
}

// Parse parses the tokens and returns the root of the first expression that
// parsed successfully, or nil.
func (p *Parser) Parse() (types.Expr, types.Diagnostics) {
	exprs, diags := p.ParseAll()
	if len(exprs) == 0 {
		return nil, diags
	}
	return exprs[0], diags
}

// Parse is a convenience wrapper around NewParser(tokens, opts...).Parse().
func Parse(tokens []types.Token, opts ...CompileOption) (types.Expr, types.Diagnostics) {
	return NewParser(tokens, opts...).Parse()
}

// ParseAll parses every semicolon-separated expression. After a syntax error
// the parser resynchronizes at the next statement boundary, so independent
// errors are all reported. Expressions that failed are left out.
func (p *Parser) ParseAll() ([]types.Expr, types.Diagnostics) {
	var exprs []types.Expr

	for !p.isAtEnd() {
		if p.match(types.TokenSemicolon) {
			continue
		}

		expr, err := p.statement()
		if err != nil {
			if !p.opts.EnableRecovery {
				break
			}
			p.synchronize()
			continue
		}
		exprs = append(exprs, expr)
	}

	return exprs, p.diags
}

// statement parses one expression and the optional semicolon ending it.
func (p *Parser) statement() (types.Expr, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if !p.match(types.TokenSemicolon) && !p.isAtEnd() {
		return nil, p.error(types.ErrUnexpectedTrailing, p.peek(), "Expect end of expression")
	}

	return expr, nil
}

// synchronize discards tokens until a likely statement boundary: just after
// a semicolon, or before a keyword that starts a statement.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == types.TokenSemicolon {
			return
		}
		if statementStarts[p.peek().Type] {
			return
		}
		p.advance()
	}
}

// expression := equality
func (p *Parser) expression() (types.Expr, error) {
	return p.equality()
}

// equality := comparison (("!=" | "==") comparison)*
func (p *Parser) equality() (types.Expr, error) {
	return p.leftAssoc(p.comparison, types.TokenBangEqual, types.TokenEqualEqual)
}

// comparison := term ((">" | ">=" | "<" | "<=") term)*
func (p *Parser) comparison() (types.Expr, error) {
	return p.leftAssoc(p.term,
		types.TokenGreater, types.TokenGreaterEqual,
		types.TokenLess, types.TokenLessEqual)
}

// term := factor (("-" | "+") factor)*
func (p *Parser) term() (types.Expr, error) {
	return p.leftAssoc(p.factor, types.TokenMinus, types.TokenPlus)
}

// factor := unary (("/" | "*") unary)*
func (p *Parser) factor() (types.Expr, error) {
	return p.leftAssoc(p.unary, types.TokenSlash, types.TokenStar)
}

// leftAssoc parses one binary precedence level: an operand from next, then
// any number of (operator operand) pairs folded into left-nested Binary
// nodes.
func (p *Parser) leftAssoc(next func() (types.Expr, error), ops ...types.TokenType) (types.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) {
		op := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = types.NewBinary(expr, op, right)
	}

	return expr, nil
}

// unary := ("!" | "-") unary | primary
//
// Every nested construct passes through here, so this is where nesting
// depth is bounded.
func (p *Parser) unary() (types.Expr, error) {
	p.depth++
	defer func() { p.depth-- }()

	if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
		return nil, p.error(types.ErrNestingTooDeep, p.peek(), "Expression nesting too deep")
	}

	if p.match(types.TokenBang, types.TokenMinus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return types.NewUnary(op, right), nil
	}

	return p.primary()
}

// primary := NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
func (p *Parser) primary() (types.Expr, error) {
	tok := p.peek()

	switch tok.Type {
	case types.TokenFalse:
		p.advance()
		return types.NewLiteral(tok, types.BoolLiteral(false)), nil
	case types.TokenTrue:
		p.advance()
		return types.NewLiteral(tok, types.BoolLiteral(true)), nil
	case types.TokenNil:
		p.advance()
		return types.NewLiteral(tok, types.NilLiteral), nil
	case types.TokenNumber, types.TokenString:
		if !tok.Literal.IsPresent() {
			panic(&types.InvariantError{Token: tok, Message: "literal token without a literal value"})
		}
		p.advance()
		return types.NewLiteral(tok, tok.Literal), nil
	case types.TokenLeftParen:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(types.TokenRightParen, "Expect ')' after expression"); err != nil {
			return nil, err
		}
		return types.NewGrouping(tok, inner), nil
	default:
		d := p.newError(types.ErrUnexpectedToken, tok, "Unexpected token")
		if p.opts.EnableHints {
			if hint := suggestLiteral(tok); hint != "" {
				d.WithHint(hint)
			}
		}
		p.diags.Add(d)
		return nil, d
	}
}

// Token cursor

// peek returns the token under the cursor without consuming it.
func (p *Parser) peek() types.Token {
	return p.tokens[p.current]
}

// previous returns the most recently consumed token.
func (p *Parser) previous() types.Token {
	return p.tokens[p.current-1]
}

// isAtEnd reports whether the cursor is on the EOF token.
func (p *Parser) isAtEnd() bool {
	return p.peek().Type == types.TokenEOF
}

// advance returns the token under the cursor and moves past it.
// It never moves past the EOF token.
func (p *Parser) advance() types.Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.current++
	}
	return tok
}

func (p *Parser) check(tt types.TokenType) bool {
	return p.peek().Type == tt
}

// match consumes the current token if it is one of tts.
func (p *Parser) match(tts ...types.TokenType) bool {
	for _, tt := range tts {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume expects the current token to be tt and advances past it.
func (p *Parser) consume(tt types.TokenType, message string) (types.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return types.Token{}, p.error(types.ErrExpectedToken, p.peek(), message)
}

// error records a syntax error at tok and returns it.
func (p *Parser) error(code types.ErrorCode, tok types.Token, message string) error {
	d := p.newError(code, tok, message)
	p.diags.Add(d)
	return d
}

func (p *Parser) newError(code types.ErrorCode, tok types.Token, message string) *types.Diagnostic {
	return types.NewSyntaxError(code, tok, message)
}
