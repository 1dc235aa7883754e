// Package ast defines the tree produced by the parser: statements and
// expressions, each carrying the lexer.Span it was parsed from.
//
// DESIGN CHOICE: unlike the teacher compiler's Node/Visitor pair (an
// Accept(v Visitor) double-dispatch on every node, built for a pipeline
// with many independent passes over the same tree), this tree has exactly
// one consumer, the evaluator, so concrete node types plus a plain type
// switch are simpler and cheaper than a visitor interface nobody else
// implements.
package ast

import "github.com/hassan/telid/internal/lexer"

// Node is the common interface satisfied by every statement and
// expression node.
type Node interface {
	Span() lexer.Span
}

// Stmt is the interface for statement nodes (the Statement sum).
type Stmt interface {
	Node
	stmtNode()
}

// Expr is the interface for expression nodes (the Expression sum).
type Expr interface {
	Node
	exprNode()
}
