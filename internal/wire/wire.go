// Package wire defines the JSON request/response protocol used by the
// WebAssembly entry points.
//
//	request:  { "source": "<lox>", "maxDepth": 256 }
//	response: { "tokens": [...], "ast": ["(+ 1 2)"], "diagnostics": [...] }
//	          { "error": "<message>" }   when the request itself is invalid
package wire

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/sandrolain/golox"
	"github.com/sandrolain/golox/pkg/printer"
	"github.com/sandrolain/golox/pkg/types"
)

// Request is a single unit of source to scan and parse.
type Request struct {
	Source   string `json:"source"`
	MaxDepth int    `json:"maxDepth,omitempty"`
}

// Token mirrors types.Token with the kind spelled out. Literal is nil when
// the token carries no literal value.
type Token struct {
	Type    string  `json:"type"`
	Lexeme  string  `json:"lexeme"`
	Literal *string `json:"literal,omitempty"`
	Line    int     `json:"line"`
}

// Diagnostic mirrors types.Diagnostic. Text is the rendered report line.
type Diagnostic struct {
	Code    string `json:"code"`
	Line    int    `json:"line"`
	Message string `json:"message"`
	Text    string `json:"text"`
}

// Response is the result of one run.
type Response struct {
	Tokens      []Token      `json:"tokens"`
	AST         []string     `json:"ast"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	Error       string       `json:"error,omitempty"`
}

// Failed reports whether the run produced diagnostics or was rejected.
func (r *Response) Failed() bool {
	return r.Error != "" || len(r.Diagnostics) > 0
}

// Process runs req through the scanner and parser.
func Process(req Request) Response {
	var opts []golox.Option
	if req.MaxDepth > 0 {
		opts = append(opts, golox.WithMaxDepth(req.MaxDepth))
	}
	return FromProgram(golox.Run(req.Source, opts...))
}

// FromProgram converts a compiled program into its wire form.
func FromProgram(prog *types.Program) Response {
	resp := Response{
		Tokens:      make([]Token, 0, len(prog.Tokens())),
		AST:         make([]string, 0, len(prog.Exprs())),
		Diagnostics: make([]Diagnostic, 0, prog.Diagnostics().Len()),
	}
	for _, tok := range prog.Tokens() {
		wt := Token{
			Type:   tok.Type.String(),
			Lexeme: tok.Lexeme,
			Line:   tok.Line,
		}
		if tok.Literal.IsPresent() {
			lit := tok.Literal.String()
			wt.Literal = &lit
		}
		resp.Tokens = append(resp.Tokens, wt)
	}
	for _, e := range prog.Exprs() {
		resp.AST = append(resp.AST, printer.Print(e))
	}
	for _, d := range prog.Diagnostics().Sorted() {
		resp.Diagnostics = append(resp.Diagnostics, Diagnostic{
			Code:    string(d.Code),
			Line:    d.Line,
			Message: d.Message,
			Text:    d.Error(),
		})
	}
	return resp
}

// Serve decodes one request from r, processes it and encodes the response
// to w. It returns 0 on a clean run, 1 if the run produced diagnostics and
// 2 if the request could not be decoded.
func Serve(r io.Reader, w io.Writer) int {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		resp := Response{Error: errors.Wrap(err, "invalid request JSON").Error()}
		_ = json.NewEncoder(w).Encode(resp)
		return 2
	}

	resp := Process(req)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return 2
	}
	if resp.Failed() {
		return 1
	}
	return 0
}
