// Package types defines the data model shared by the golox scanner and parser.
//
// This package contains type definitions for:
//   - Token and TokenType: the output of the scanner
//   - Literal: constant values attached to tokens and literal nodes
//   - Expr: the expression tree (Binary, Unary, Grouping, LiteralExpr)
//   - Program: the result of one scan-and-parse run
//   - Diagnostic: structured lexical and syntax errors
package types

// Program is the result of scanning and parsing one piece of source text.
//
// A Program is immutable once built and safe for concurrent reads. Its
// diagnostics belong to this run only.
type Program struct {
	source      string
	tokens      []Token
	exprs       []Expr
	diagnostics Diagnostics
}

// NewProgram bundles the outputs of one run.
func NewProgram(source string, tokens []Token, exprs []Expr, diags Diagnostics) *Program {
	return &Program{
		source:      source,
		tokens:      tokens,
		exprs:       exprs,
		diagnostics: diags,
	}
}

// Expr returns the root of the first expression, or nil if none parsed.
func (p *Program) Expr() Expr {
	if len(p.exprs) == 0 {
		return nil
	}
	return p.exprs[0]
}

// Exprs returns every expression root that parsed, in source order.
func (p *Program) Exprs() []Expr {
	return p.exprs
}

// Tokens returns the scanned token sequence, ending with TokenEOF.
func (p *Program) Tokens() []Token {
	return p.tokens
}

// Source returns the original source text.
func (p *Program) Source() string {
	return p.source
}

// Diagnostics returns the lexical and syntax errors of this run.
func (p *Program) Diagnostics() Diagnostics {
	return p.diagnostics
}

// HadError reports whether the run produced any diagnostic.
func (p *Program) HadError() bool {
	return p.diagnostics.HadError()
}

// Err returns the diagnostics folded into one error, or nil.
func (p *Program) Err() error {
	return p.diagnostics.Err()
}

// String returns the source text.
func (p *Program) String() string {
	return p.source
}
