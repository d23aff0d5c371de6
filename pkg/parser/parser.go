// Package parser implements the golox scanner and expression parser.
//
// The scanner is a hand-written, rune-at-a-time lexer; the parser is a
// recursive descent parser with one procedure per precedence level. Both
// report problems as diagnostics and keep going, so a single pass over an
// input surfaces every independent error.
//
// # Architecture
//
// The package consists of three main components:
//   - Cursor: walks the source one rune at a time, tracking offset and line
//   - Scanner: turns source text into a sequence of tokens
//   - Parser: builds an expression tree from the tokens
//
// # Grammar
//
//	expression := equality
//	equality   := comparison (("!=" | "==") comparison)*
//	comparison := term ((">" | ">=" | "<" | "<=") term)*
//	term       := factor (("-" | "+") factor)*
//	factor     := unary (("/" | "*") unary)*
//	unary      := ("!" | "-") unary | primary
//	primary    := NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
//
// Several expressions may be separated by semicolons.
//
// # Example
//
//	prog := parser.Compile("1 + 2 * 3")
//	if prog.HadError() {
//	    for _, d := range prog.Diagnostics().List() {
//	        fmt.Println(d)
//	    }
//	}
//	root := prog.Expr()
package parser

import (
	"github.com/sandrolain/golox/pkg/types"
)

// Compile scans and parses source in one call.
//
// The returned Program always holds whatever tokens and expressions could be
// produced, together with every lexical and syntax diagnostic.
//
// Example:
//
//	prog := parser.Compile("(1 + 2")
//	fmt.Println(prog.Err()) // [line 1] Error at end: Expect ')' after expression
func Compile(source string, opts ...CompileOption) *types.Program {
	tokens, diags := Scan(source, opts...)
	exprs, parseDiags := NewParser(tokens, opts...).ParseAll()
	diags.Merge(parseDiags)
	return types.NewProgram(source, tokens, exprs, diags)
}

// CompileOption configures scanning and parsing.
type CompileOption func(*CompileOptions)

// CompileOptions holds scanner and parser configuration.
type CompileOptions struct {
	// EnableRecovery resynchronizes after a syntax error and keeps parsing.
	// When false the parser stops at the first syntax error.
	EnableRecovery bool
	// MaxDepth limits expression nesting to prevent stack exhaustion.
	MaxDepth int
	// TokenCapacity pre-sizes the token slice. Zero derives it from the
	// source length.
	TokenCapacity int
	// EnableHints adds "did you mean" suggestions to some syntax errors.
	EnableHints bool
}

func defaultOptions() CompileOptions {
	return CompileOptions{
		EnableRecovery: true,
		MaxDepth:       256,
		EnableHints:    true,
	}
}

// WithRecovery enables or disables error recovery.
func WithRecovery(enable bool) CompileOption {
	return func(opts *CompileOptions) {
		opts.EnableRecovery = enable
	}
}

// WithMaxDepth sets the maximum expression nesting depth.
func WithMaxDepth(depth int) CompileOption {
	return func(opts *CompileOptions) {
		opts.MaxDepth = depth
	}
}

// WithTokenCapacity sets the initial capacity of the token slice.
func WithTokenCapacity(n int) CompileOption {
	return func(opts *CompileOptions) {
		opts.TokenCapacity = n
	}
}

// WithHints enables or disables suggestions on syntax errors.
func WithHints(enable bool) CompileOption {
	return func(opts *CompileOptions) {
		opts.EnableHints = enable
	}
}
