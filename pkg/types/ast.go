package types

// NodeType identifies the variant of an expression node.
type NodeType string

// Expression node types.
const (
	NodeBinary   NodeType = "binary"   // left op right
	NodeUnary    NodeType = "unary"    // op right
	NodeGrouping NodeType = "grouping" // ( expr )
	NodeLiteral  NodeType = "literal"  // number, string, true, false, nil
)

// Expr is a node of the expression tree. The set of implementations is
// closed: *Binary, *Unary, *Grouping and *LiteralExpr.
//
// Each node exclusively owns its children and is never mutated after the
// parser returns it.
type Expr interface {
	// Type returns the variant of the node.
	Type() NodeType
	// Line returns the source line the node starts on, or 0 if unknown.
	Line() int

	exprNode()
}

// Binary is an infix operation such as 1 + 2.
type Binary struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// Unary is a prefix operation such as -1 or !true.
type Unary struct {
	Operator Token
	Right    Expr
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Expression Expr
	Paren      Token // the opening parenthesis
}

// LiteralExpr is a constant.
type LiteralExpr struct {
	Value Literal
	Token Token // the token the value was taken from
}

func (*Binary) Type() NodeType      { return NodeBinary }
func (*Unary) Type() NodeType       { return NodeUnary }
func (*Grouping) Type() NodeType    { return NodeGrouping }
func (*LiteralExpr) Type() NodeType { return NodeLiteral }

func (e *Binary) Line() int      { return e.Left.Line() }
func (e *Unary) Line() int       { return e.Operator.Line }
func (e *Grouping) Line() int    { return e.Paren.Line }
func (e *LiteralExpr) Line() int { return e.Token.Line }

func (*Binary) exprNode()      {}
func (*Unary) exprNode()       {}
func (*Grouping) exprNode()    {}
func (*LiteralExpr) exprNode() {}

// NewBinary returns a binary node folding left and right under op.
func NewBinary(left Expr, op Token, right Expr) *Binary {
	return &Binary{Left: left, Operator: op, Right: right}
}

// NewUnary returns a prefix node applying op to right.
func NewUnary(op Token, right Expr) *Unary {
	return &Unary{Operator: op, Right: right}
}

// NewGrouping returns a parenthesized node.
func NewGrouping(paren Token, inner Expr) *Grouping {
	return &Grouping{Paren: paren, Expression: inner}
}

// NewLiteral returns a constant node.
func NewLiteral(tok Token, value Literal) *LiteralExpr {
	return &LiteralExpr{Token: tok, Value: value}
}

// Visitor receives one call per node variant. R is the result type.
type Visitor[R any] interface {
	VisitBinary(e *Binary) R
	VisitUnary(e *Unary) R
	VisitGrouping(e *Grouping) R
	VisitLiteral(e *LiteralExpr) R
}

// Accept dispatches e to the matching method of v.
// A nil expression yields the zero value of R.
func Accept[R any](e Expr, v Visitor[R]) R {
	switch n := e.(type) {
	case *Binary:
		return v.VisitBinary(n)
	case *Unary:
		return v.VisitUnary(n)
	case *Grouping:
		return v.VisitGrouping(n)
	case *LiteralExpr:
		return v.VisitLiteral(n)
	default:
		var zero R
		return zero
	}
}

// Walk calls fn for every node of the tree in depth-first pre-order.
// Returning false from fn skips the children of that node.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch n := e.(type) {
	case *Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *Unary:
		Walk(n.Right, fn)
	case *Grouping:
		Walk(n.Expression, fn)
	}
}
