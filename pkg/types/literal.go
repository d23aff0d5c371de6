package types

import "strconv"

// LiteralKind identifies which field of a Literal holds its value.
type LiteralKind uint8

const (
	LiteralNone   LiteralKind = iota // no literal attached
	LiteralString                    // Str
	LiteralNumber                    // Num
	LiteralBool                      // Bool
	LiteralNil                       // nil
)

// Literal is a constant value. The scanner produces string and number
// literals; booleans and nil are synthesized by the parser from keywords.
type Literal struct {
	Kind LiteralKind
	Str  string
	Num  float64
	Bool bool
}

// NilLiteral is the literal produced for the nil keyword.
var NilLiteral = Literal{Kind: LiteralNil}

// StringLiteral returns a string literal holding s.
func StringLiteral(s string) Literal {
	return Literal{Kind: LiteralString, Str: s}
}

// NumberLiteral returns a number literal holding f.
func NumberLiteral(f float64) Literal {
	return Literal{Kind: LiteralNumber, Num: f}
}

// BoolLiteral returns a boolean literal holding b.
func BoolLiteral(b bool) Literal {
	return Literal{Kind: LiteralBool, Bool: b}
}

// IsPresent reports whether a value is attached.
func (l Literal) IsPresent() bool {
	return l.Kind != LiteralNone
}

// Value returns the literal as a Go value: string, float64, bool or nil.
func (l Literal) Value() interface{} {
	switch l.Kind {
	case LiteralString:
		return l.Str
	case LiteralNumber:
		return l.Num
	case LiteralBool:
		return l.Bool
	default:
		return nil
	}
}

// String formats the literal the way Lox prints values. Numbers use the
// shortest representation that round-trips, so 12 prints as "12".
func (l Literal) String() string {
	switch l.Kind {
	case LiteralString:
		return l.Str
	case LiteralNumber:
		return strconv.FormatFloat(l.Num, 'f', -1, 64)
	case LiteralBool:
		return strconv.FormatBool(l.Bool)
	case LiteralNil:
		return "nil"
	default:
		return ""
	}
}
