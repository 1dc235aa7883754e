package ast

import "github.com/hassan/telid/internal/lexer"

// BlockStmt is a brace-delimited sequence of statements. Its value, at
// evaluation time, is the value of its last statement, or Void if empty.
type BlockStmt struct {
	LeftBrace  lexer.Span
	Statements []Stmt
	RightBrace lexer.Span
}

func (b *BlockStmt) Span() lexer.Span { return b.LeftBrace.Join(b.RightBrace) }
func (b *BlockStmt) stmtNode()        {}

// LetStmt binds name to the value of Value in the innermost frame.
// Constant mirrors whether this came from `let const` or plain `let`.
type LetStmt struct {
	LetKeyword lexer.Span
	Name       string
	Value      Expr
	Constant   bool
}

func (l *LetStmt) Span() lexer.Span { return l.LetKeyword.Join(l.Value.Span()) }
func (l *LetStmt) stmtNode()        {}

// AssignmentStmt mutates an existing binding in place.
type AssignmentStmt struct {
	Name     string
	NameSpan lexer.Span
	Value    Expr
}

func (a *AssignmentStmt) Span() lexer.Span { return a.NameSpan.Join(a.Value.Span()) }
func (a *AssignmentStmt) stmtNode()        {}

// FunctionDeclarationStmt is `let fn name param* = body`. The body is a
// single statement, typically a BlockStmt.
type FunctionDeclarationStmt struct {
	LetKeyword lexer.Span
	Name       string
	Params     []string
	Body       Stmt
}

func (f *FunctionDeclarationStmt) Span() lexer.Span { return f.LetKeyword.Join(f.Body.Span()) }
func (f *FunctionDeclarationStmt) stmtNode()        {}

// ExpressionStmt is an expression used where a statement is expected; its
// value is the expression's value.
type ExpressionStmt struct {
	Expression Expr
}

func (e *ExpressionStmt) Span() lexer.Span { return e.Expression.Span() }
func (e *ExpressionStmt) stmtNode()        {}
