// Package printer renders golox tokens and expression trees as text.
//
// Print produces a fully parenthesized prefix form that makes precedence
// and associativity explicit:
//
//	printer.Print(expr) // "(* (group (+ 1 2)) 3)"
package printer

import (
	"bufio"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/sandrolain/golox/pkg/types"
)

// Print returns the parenthesized prefix form of e. A nil expression
// prints as the empty string.
func Print(e types.Expr) string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	types.Accept[struct{}](e, &astPrinter{sb: &sb})
	return sb.String()
}

type astPrinter struct {
	sb *strings.Builder
}

func (p *astPrinter) VisitBinary(e *types.Binary) struct{} {
	p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	return struct{}{}
}

func (p *astPrinter) VisitUnary(e *types.Unary) struct{} {
	p.parenthesize(e.Operator.Lexeme, e.Right)
	return struct{}{}
}

func (p *astPrinter) VisitGrouping(e *types.Grouping) struct{} {
	p.parenthesize("group", e.Expression)
	return struct{}{}
}

func (p *astPrinter) VisitLiteral(e *types.LiteralExpr) struct{} {
	p.sb.WriteString(e.Value.String())
	return struct{}{}
}

func (p *astPrinter) parenthesize(name string, exprs ...types.Expr) {
	p.sb.WriteByte('(')
	p.sb.WriteString(name)
	for _, e := range exprs {
		p.sb.WriteByte(' ')
		types.Accept[struct{}](e, p)
	}
	p.sb.WriteByte(')')
}

// Tokens writes one token per line in "<kind> <lexeme> <literal>" form.
func Tokens(w io.Writer, tokens []types.Token) error {
	bw := bufio.NewWriter(w)
	for _, tok := range tokens {
		if _, err := bw.WriteString(tok.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump returns a detailed, type-annotated view of v, typically an Expr or
// a token slice. It is meant for debugging output.
func Dump(v interface{}) string {
	return dumpConfig.Sdump(v)
}
