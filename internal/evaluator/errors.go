package evaluator

import (
	"fmt"

	"github.com/hassan/telid/internal/lexer"
	"github.com/hassan/telid/internal/value"
)

// ErrorKind is the closed evaluation-error taxonomy (spec §7).
type ErrorKind int

const (
	UndefinedVariable ErrorKind = iota
	ConstantReassignment
	InvalidType
	InvalidOperator
	IndexOutOfBounds
	IncorrectParameterCount
	InvalidRange
	AssertionFailed
)

// EvaluationError is the evaluator's single error type. Not every field
// is meaningful for every Kind; see the per-field comments.
type EvaluationError struct {
	Kind ErrorKind
	Span lexer.Span

	Name string // UndefinedVariable, ConstantReassignment

	FoundKind     value.Kind   // InvalidType
	ExpectedKinds []value.Kind // InvalidType

	Operator  string     // InvalidOperator
	Unary     bool       // InvalidOperator: true when Operator took one operand
	LeftKind  value.Kind // InvalidOperator
	RightKind value.Kind // InvalidOperator, unused when Unary

	Index  int // IndexOutOfBounds
	Length int // IndexOutOfBounds

	Found    int // IncorrectParameterCount
	Expected int // IncorrectParameterCount

	Start int // InvalidRange
	End   int // InvalidRange
}

func (e *EvaluationError) Error() string {
	switch e.Kind {
	case UndefinedVariable:
		return fmt.Sprintf("undefined variable %q", e.Name)
	case ConstantReassignment:
		return fmt.Sprintf("cannot reassign constant %q", e.Name)
	case InvalidType:
		return fmt.Sprintf("invalid type %s, expected one of %v", e.FoundKind, e.ExpectedKinds)
	case InvalidOperator:
		if e.Unary {
			return fmt.Sprintf("invalid operator %s for %s", e.Operator, e.LeftKind)
		}
		return fmt.Sprintf("invalid operator %s for %s and %s", e.Operator, e.LeftKind, e.RightKind)
	case IndexOutOfBounds:
		return fmt.Sprintf("index %d out of bounds for length %d", e.Index, e.Length)
	case IncorrectParameterCount:
		return fmt.Sprintf("incorrect parameter count: found %d, expected %d", e.Found, e.Expected)
	case InvalidRange:
		return fmt.Sprintf("invalid range %d..%d", e.Start, e.End)
	case AssertionFailed:
		return "assertion failed"
	default:
		return "evaluation error"
	}
}
