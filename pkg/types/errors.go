package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrorCode identifies a diagnostic.
type ErrorCode string

// Error codes. L0xxx are lexical, S0xxx are syntax errors.
const (
	ErrUnexpectedChar     ErrorCode = "L0101"
	ErrStringNotClosed    ErrorCode = "L0102"
	ErrCommentNotClosed   ErrorCode = "L0103"
	ErrUnexpectedToken    ErrorCode = "S0201"
	ErrExpectedToken      ErrorCode = "S0202"
	ErrNestingTooDeep     ErrorCode = "S0203"
	ErrUnexpectedTrailing ErrorCode = "S0204"
)

// ErrorKind separates scanner diagnostics from parser diagnostics.
type ErrorKind uint8

const (
	LexicalError ErrorKind = iota + 1
	SyntaxError
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case SyntaxError:
		return "syntax error"
	default:
		return "error"
	}
}

// Diagnostic is a single reported problem. It implements error.
type Diagnostic struct {
	Kind    ErrorKind
	Code    ErrorCode
	Line    int    // 1-based source line
	Offset  int    // byte offset of the offending text, -1 if unknown
	Where   string // " at end", " at 'x'" or empty
	Message string
	Hint    string // optional suggestion, e.g. "did you mean 'true'?"
}

// NewLexicalError creates a scanner diagnostic.
func NewLexicalError(code ErrorCode, line, offset int, message string) *Diagnostic {
	return &Diagnostic{
		Kind:    LexicalError,
		Code:    code,
		Line:    line,
		Offset:  offset,
		Message: message,
	}
}

// NewSyntaxError creates a parser diagnostic located at tok.
func NewSyntaxError(code ErrorCode, tok Token, message string) *Diagnostic {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Type == TokenEOF {
		where = " at end"
	}
	return &Diagnostic{
		Kind:    SyntaxError,
		Code:    code,
		Line:    tok.Line,
		Offset:  tok.Offset,
		Where:   where,
		Message: message,
	}
}

// Error implements the error interface using the classic
// "[line N] Error at 'x': message" layout.
func (d *Diagnostic) Error() string {
	s := fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
	if d.Hint != "" {
		s += " (" + d.Hint + ")"
	}
	return s
}

// WithHint attaches a suggestion to the diagnostic.
func (d *Diagnostic) WithHint(hint string) *Diagnostic {
	d.Hint = hint
	return d
}

// Diagnostics collects the diagnostics of one scan or parse run.
// The zero value is ready to use.
type Diagnostics struct {
	list []*Diagnostic
}

// Add records d.
func (ds *Diagnostics) Add(d *Diagnostic) {
	ds.list = append(ds.list, d)
}

// Merge appends every diagnostic of other, keeping order.
func (ds *Diagnostics) Merge(other Diagnostics) {
	ds.list = append(ds.list, other.list...)
}

// HadError reports whether anything was recorded.
func (ds Diagnostics) HadError() bool {
	return len(ds.list) > 0
}

// Len returns the number of diagnostics.
func (ds Diagnostics) Len() int {
	return len(ds.list)
}

// List returns the diagnostics in the order they were reported.
func (ds Diagnostics) List() []*Diagnostic {
	return ds.list
}

// Sorted returns a copy ordered by line, lexical errors first on ties.
func (ds Diagnostics) Sorted() []*Diagnostic {
	out := make([]*Diagnostic, len(ds.list))
	copy(out, ds.list)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// Err folds the diagnostics into one error, or nil when there are none.
func (ds Diagnostics) Err() error {
	var result *multierror.Error
	for _, d := range ds.list {
		result = multierror.Append(result, d)
	}
	if result != nil {
		result.ErrorFormat = formatDiagnostics
	}
	return result.ErrorOrNil()
}

func formatDiagnostics(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

// InvariantError reports a scanner/parser mismatch. It is raised with
// panic and never surfaces as a diagnostic.
type InvariantError struct {
	Token   Token
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal error at line %d (%s): %s", e.Token.Line, e.Token.Type, e.Message)
}
