package ast

import "github.com/hassan/telid/internal/lexer"

// VoidExpr is the literal `void`.
type VoidExpr struct {
	VoidSpan lexer.Span
}

func (v *VoidExpr) Span() lexer.Span { return v.VoidSpan }
func (v *VoidExpr) exprNode()        {}

// IdentifierExpr is a bare name reference.
type IdentifierExpr struct {
	Name     string
	NameSpan lexer.Span
}

func (i *IdentifierExpr) Span() lexer.Span { return i.NameSpan }
func (i *IdentifierExpr) exprNode()        {}

// NumberLiteralExpr is an IEEE-754 double-precision literal.
type NumberLiteralExpr struct {
	Value       float64
	LiteralSpan lexer.Span
}

func (n *NumberLiteralExpr) Span() lexer.Span { return n.LiteralSpan }
func (n *NumberLiteralExpr) exprNode()        {}

// StringLiteralExpr is a quoted string literal, already escape-decoded by
// the lexer.
type StringLiteralExpr struct {
	Value       string
	LiteralSpan lexer.Span
}

func (s *StringLiteralExpr) Span() lexer.Span { return s.LiteralSpan }
func (s *StringLiteralExpr) exprNode()        {}

// BooleanLiteralExpr is `true` or `false`.
type BooleanLiteralExpr struct {
	Value       bool
	LiteralSpan lexer.Span
}

func (b *BooleanLiteralExpr) Span() lexer.Span { return b.LiteralSpan }
func (b *BooleanLiteralExpr) exprNode()        {}

// ArrayLiteralExpr is `[e1, e2, ...]`.
type ArrayLiteralExpr struct {
	LeftBracket  lexer.Span
	Elements     []Expr
	RightBracket lexer.Span
}

func (a *ArrayLiteralExpr) Span() lexer.Span { return a.LeftBracket.Join(a.RightBracket) }
func (a *ArrayLiteralExpr) exprNode()        {}

// IndexExpr is `[index]iterable`.
type IndexExpr struct {
	LeftBracket lexer.Span
	Index       Expr
	Iterable    Expr
}

func (i *IndexExpr) Span() lexer.Span { return i.LeftBracket.Join(i.Iterable.Span()) }
func (i *IndexExpr) exprNode()        {}

// SliceExpr is `[start? .. end?]iterable`. Start and End are nil when
// omitted.
type SliceExpr struct {
	LeftBracket lexer.Span
	Start       Expr
	End         Expr
	Iterable    Expr
}

func (s *SliceExpr) Span() lexer.Span { return s.LeftBracket.Join(s.Iterable.Span()) }
func (s *SliceExpr) exprNode()        {}

// FunctionCallExpr is `name(arg1, arg2, ...)`.
type FunctionCallExpr struct {
	Name       string
	NameSpan   lexer.Span
	Arguments  []Expr
	RightParen lexer.Span
}

func (f *FunctionCallExpr) Span() lexer.Span { return f.NameSpan.Join(f.RightParen) }
func (f *FunctionCallExpr) exprNode()        {}

// IfExpr is `if cond consequence (else alternative)?`. Alternative is nil
// when there is no else clause.
type IfExpr struct {
	IfKeyword   lexer.Span
	Condition   Expr
	Consequence Stmt
	Alternative Stmt
}

func (i *IfExpr) Span() lexer.Span {
	if i.Alternative != nil {
		return i.IfKeyword.Join(i.Alternative.Span())
	}
	return i.IfKeyword.Join(i.Consequence.Span())
}
func (i *IfExpr) exprNode() {}

// ForExpr is `for variable in iterable body`.
type ForExpr struct {
	ForKeyword lexer.Span
	Variable   string
	Iterable   Expr
	Body       Stmt
}

func (f *ForExpr) Span() lexer.Span { return f.ForKeyword.Join(f.Body.Span()) }
func (f *ForExpr) exprNode()        {}

// WhileExpr is `while cond body`.
type WhileExpr struct {
	WhileKeyword lexer.Span
	Condition    Expr
	Body         Stmt
}

func (w *WhileExpr) Span() lexer.Span { return w.WhileKeyword.Join(w.Body.Span()) }
func (w *WhileExpr) exprNode()        {}

// BinaryOperator is the closed set of prefix binary operators.
type BinaryOperator int

const (
	Add BinaryOperator = iota
	Subtract
	Multiply
	Divide
	Modulo
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	And
	Or
	Range
)

var binaryOperatorNames = map[BinaryOperator]string{
	Add:          "+",
	Subtract:     "-",
	Multiply:     "*",
	Divide:       "/",
	Modulo:       "%",
	Equal:        "==",
	NotEqual:     "!=",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	And:          "&&",
	Or:           "||",
	Range:        "..",
}

func (op BinaryOperator) String() string {
	if name, ok := binaryOperatorNames[op]; ok {
		return name
	}
	return "?"
}

// BinaryExpr is `op left right` in prefix notation.
type BinaryExpr struct {
	OperatorSpan lexer.Span
	Operator     BinaryOperator
	Left         Expr
	Right        Expr
}

func (b *BinaryExpr) Span() lexer.Span { return b.OperatorSpan.Join(b.Right.Span()) }
func (b *BinaryExpr) exprNode()        {}

// UnaryOperator is the closed set of prefix unary operators.
type UnaryOperator int

const (
	Negate UnaryOperator = iota
	Not
	Identity
)

var unaryOperatorNames = map[UnaryOperator]string{
	Negate:   "-",
	Not:      "!",
	Identity: "+",
}

func (op UnaryOperator) String() string {
	if name, ok := unaryOperatorNames[op]; ok {
		return name
	}
	return "?"
}

// UnaryExpr is `op operand` in prefix notation.
type UnaryExpr struct {
	OperatorSpan lexer.Span
	Operator     UnaryOperator
	Operand      Expr
}

func (u *UnaryExpr) Span() lexer.Span { return u.OperatorSpan.Join(u.Operand.Span()) }
func (u *UnaryExpr) exprNode()        {}
