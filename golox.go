// Package golox is the front end of the Lox language: a scanner that turns
// source text into tokens and a parser that turns tokens into expression
// trees.
//
// Both stages report problems as diagnostics instead of stopping, so one
// run over an input surfaces every lexical and syntax error along with
// whatever tokens and expressions could still be produced.
//
// # Quick Start
//
//	// Scan and parse in one call
//	prog := golox.Run("1 + 2 * 3")
//	if prog.HadError() {
//	    fmt.Fprintln(os.Stderr, prog.Err())
//	}
//	fmt.Println(printer.Print(prog.Expr())) // (+ 1 (* 2 3))
//
//	// Compile treats any diagnostic as an error
//	prog, err := golox.Compile("(1 + 2")
//
//	// With options
//	prog := golox.Run(src, golox.WithMaxDepth(64), golox.WithRecovery(false))
//
// # More Information
//
// For detailed documentation, see:
//   - Scanner and parser: github.com/sandrolain/golox/pkg/parser
//   - Tokens, trees and diagnostics: github.com/sandrolain/golox/pkg/types
//   - Rendering: github.com/sandrolain/golox/pkg/printer
//   - Caching: github.com/sandrolain/golox/pkg/cache
package golox

import (
	"fmt"

	"github.com/sandrolain/golox/pkg/parser"
	"github.com/sandrolain/golox/pkg/types"
)

// Version returns the current version of golox.
func Version() string {
	return "v0.1.0-dev"
}

// Option configures scanning and parsing.
type Option = parser.CompileOption

// Re-exported options.
var (
	WithRecovery      = parser.WithRecovery
	WithMaxDepth      = parser.WithMaxDepth
	WithTokenCapacity = parser.WithTokenCapacity
	WithHints         = parser.WithHints
)

// Run scans and parses source. The returned Program carries the tokens,
// every expression that parsed and all diagnostics of this run.
func Run(source string, opts ...Option) *types.Program {
	return parser.Compile(source, opts...)
}

// Compile is like Run but reports any diagnostic as an error. The Program
// is returned in both cases so callers can still inspect partial results.
//
// Example:
//
//	prog, err := golox.Compile("-1 == 2")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(source string, opts ...Option) (*types.Program, error) {
	prog := parser.Compile(source, opts...)
	return prog, prog.Err()
}

// Scan tokenizes source without parsing it.
func Scan(source string, opts ...Option) ([]types.Token, types.Diagnostics) {
	return parser.Scan(source, opts...)
}

// MustCompile is like Compile but panics if the source has any diagnostic.
// It simplifies safe initialization of global variables.
func MustCompile(source string) *types.Program {
	prog, err := Compile(source)
	if err != nil {
		panic(fmt.Sprintf("golox: Compile(%q): %v", source, err))
	}
	return prog
}
