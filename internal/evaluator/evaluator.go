// Package evaluator walks the tree the parser produces, threading a
// mutable scope through two mutually recursive operations,
// evaluateStatement and evaluateExpression, exactly as spec §4.4
// describes.
//
// DESIGN CHOICE: the teacher compiler's Visitor-based evaluator would
// dispatch through Accept(v); since ast nodes here carry no Accept
// method (see internal/parser/ast's design note), dispatch is a plain
// type switch per node kind. Every fallible branch returns its tree
// node's span on the error so the caller always has a source location.
package evaluator

import (
	"math"

	"github.com/hassan/telid/internal/parser/ast"
	"github.com/hassan/telid/internal/scope"
	"github.com/hassan/telid/internal/value"
)

// Evaluate runs a program's statement list against sc, returning the
// value of the last statement (Void if the program is empty) or the
// first evaluation error encountered.
func Evaluate(statements []ast.Stmt, sc *scope.Scope) (value.Value, error) {
	result := value.Void()
	for _, stmt := range statements {
		v, err := evaluateStatement(stmt, sc)
		if err != nil {
			return value.Void(), err
		}
		result = v
	}
	return result, nil
}

func evaluateStatement(stmt ast.Stmt, sc *scope.Scope) (value.Value, error) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		sc.Push()
		result := value.Void()
		for _, inner := range s.Statements {
			v, err := evaluateStatement(inner, sc)
			if err != nil {
				sc.Pop()
				return value.Void(), err
			}
			result = v
		}
		sc.Pop()
		return result, nil

	case *ast.LetStmt:
		if existing, ok := sc.Get(s.Name); ok && existing.Constant {
			return value.Void(), &EvaluationError{Kind: ConstantReassignment, Span: s.Span(), Name: s.Name}
		}
		v, err := evaluateExpression(s.Value, sc)
		if err != nil {
			return value.Void(), err
		}
		sc.Insert(s.Name, value.Variable{Value: v, Constant: s.Constant})
		return v, nil

	case *ast.AssignmentStmt:
		existing, ok := sc.Get(s.Name)
		if !ok {
			return value.Void(), &EvaluationError{Kind: UndefinedVariable, Span: s.Span(), Name: s.Name}
		}
		if existing.Constant {
			return value.Void(), &EvaluationError{Kind: ConstantReassignment, Span: s.Span(), Name: s.Name}
		}
		v, err := evaluateExpression(s.Value, sc)
		if err != nil {
			return value.Void(), err
		}
		sc.InsertExisting(s.Name, value.Variable{Value: v, Constant: false})
		return v, nil

	case *ast.FunctionDeclarationStmt:
		fn := &value.UserFunction{Params: s.Params, Body: s.Body}
		sc.Insert(s.Name, value.Variable{Value: value.Function(fn), Constant: false})
		return value.Void(), nil

	case *ast.ExpressionStmt:
		return evaluateExpression(s.Expression, sc)

	default:
		panic("evaluator: unknown statement type")
	}
}

func evaluateExpression(expr ast.Expr, sc *scope.Scope) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.VoidExpr:
		return value.Void(), nil
	case *ast.IdentifierExpr:
		v, ok := sc.Get(e.Name)
		if !ok {
			return value.Void(), &EvaluationError{Kind: UndefinedVariable, Span: e.Span(), Name: e.Name}
		}
		return v.Value, nil
	case *ast.NumberLiteralExpr:
		return value.Number(e.Value), nil
	case *ast.StringLiteralExpr:
		return value.String(e.Value), nil
	case *ast.BooleanLiteralExpr:
		return value.Boolean(e.Value), nil
	case *ast.ArrayLiteralExpr:
		elems := make([]value.Value, len(e.Elements))
		for i, elemExpr := range e.Elements {
			v, err := evaluateExpression(elemExpr, sc)
			if err != nil {
				return value.Void(), err
			}
			elems[i] = v
		}
		return value.Array(elems), nil
	case *ast.IndexExpr:
		return evaluateIndex(e, sc)
	case *ast.SliceExpr:
		return evaluateSlice(e, sc)
	case *ast.FunctionCallExpr:
		return evaluateCall(e, sc)
	case *ast.IfExpr:
		return evaluateIf(e, sc)
	case *ast.ForExpr:
		return evaluateFor(e, sc)
	case *ast.WhileExpr:
		return evaluateWhile(e, sc)
	case *ast.UnaryExpr:
		return evaluateUnary(e, sc)
	case *ast.BinaryExpr:
		return evaluateBinary(e, sc)
	default:
		panic("evaluator: unknown expression type")
	}
}

func evaluateIndex(e *ast.IndexExpr, sc *scope.Scope) (value.Value, error) {
	iterable, err := evaluateExpression(e.Iterable, sc)
	if err != nil {
		return value.Void(), err
	}
	idxVal, err := evaluateExpression(e.Index, sc)
	if err != nil {
		return value.Void(), err
	}
	if idxVal.Kind != value.NumberKind {
		return value.Void(), &EvaluationError{Kind: InvalidType, Span: e.Span(), FoundKind: idxVal.Kind, ExpectedKinds: []value.Kind{value.NumberKind}}
	}
	index := int(math.Trunc(idxVal.Number))

	switch iterable.Kind {
	case value.ArrayKind:
		if index < 0 || index >= len(iterable.Array) {
			return value.Void(), &EvaluationError{Kind: IndexOutOfBounds, Span: e.Span(), Index: index, Length: len(iterable.Array)}
		}
		return iterable.Array[index], nil
	case value.StringKind:
		runes := []rune(iterable.Str)
		if index < 0 || index >= len(runes) {
			return value.Void(), &EvaluationError{Kind: IndexOutOfBounds, Span: e.Span(), Index: index, Length: len(runes)}
		}
		return value.String(string(runes[index])), nil
	default:
		return value.Void(), &EvaluationError{Kind: InvalidType, Span: e.Span(), FoundKind: iterable.Kind, ExpectedKinds: []value.Kind{value.ArrayKind, value.StringKind}}
	}
}

func evaluateSlice(e *ast.SliceExpr, sc *scope.Scope) (value.Value, error) {
	iterable, err := evaluateExpression(e.Iterable, sc)
	if err != nil {
		return value.Void(), err
	}

	var length int
	switch iterable.Kind {
	case value.ArrayKind:
		length = len(iterable.Array)
	case value.StringKind:
		length = len([]rune(iterable.Str))
	default:
		return value.Void(), &EvaluationError{Kind: InvalidType, Span: e.Span(), FoundKind: iterable.Kind, ExpectedKinds: []value.Kind{value.ArrayKind, value.StringKind}}
	}

	start := 0
	if e.Start != nil {
		sv, err := evaluateExpression(e.Start, sc)
		if err != nil {
			return value.Void(), err
		}
		if sv.Kind != value.NumberKind {
			return value.Void(), &EvaluationError{Kind: InvalidType, Span: e.Start.Span(), FoundKind: sv.Kind, ExpectedKinds: []value.Kind{value.NumberKind}}
		}
		start = int(math.Trunc(sv.Number))
	}

	end := length
	if e.End != nil {
		ev, err := evaluateExpression(e.End, sc)
		if err != nil {
			return value.Void(), err
		}
		if ev.Kind != value.NumberKind {
			return value.Void(), &EvaluationError{Kind: InvalidType, Span: e.End.Span(), FoundKind: ev.Kind, ExpectedKinds: []value.Kind{value.NumberKind}}
		}
		end = int(math.Trunc(ev.Number))
	}

	if start > end {
		return value.Void(), &EvaluationError{Kind: InvalidRange, Span: e.Span(), Start: start, End: end}
	}
	if start < 0 || end > length {
		return value.Void(), &EvaluationError{Kind: IndexOutOfBounds, Span: e.Span(), Index: end, Length: length}
	}

	switch iterable.Kind {
	case value.ArrayKind:
		sliced := make([]value.Value, end-start)
		copy(sliced, iterable.Array[start:end])
		return value.Array(sliced), nil
	default: // value.StringKind
		runes := []rune(iterable.Str)
		return value.String(string(runes[start:end])), nil
	}
}

func evaluateCall(e *ast.FunctionCallExpr, sc *scope.Scope) (value.Value, error) {
	callee, ok := sc.Get(e.Name)
	if !ok {
		return value.Void(), &EvaluationError{Kind: UndefinedVariable, Span: e.Span(), Name: e.Name}
	}

	switch callee.Value.Kind {
	case value.HostFunctionKind:
		host := callee.Value.Host
		if len(e.Arguments) != host.Arity {
			return value.Void(), &EvaluationError{Kind: IncorrectParameterCount, Span: e.Span(), Found: len(e.Arguments), Expected: host.Arity}
		}
		args := make([]value.Value, len(e.Arguments))
		for i, argExpr := range e.Arguments {
			v, err := evaluateExpression(argExpr, sc)
			if err != nil {
				return value.Void(), err
			}
			args[i] = v
		}
		return host.Call(e.Span(), args)

	case value.FunctionKind:
		fn := callee.Value.Function
		if len(e.Arguments) != len(fn.Params) {
			return value.Void(), &EvaluationError{Kind: IncorrectParameterCount, Span: e.Span(), Found: len(e.Arguments), Expected: len(fn.Params)}
		}
		sc.Push()
		for i, paramName := range fn.Params {
			v, err := evaluateExpression(e.Arguments[i], sc)
			if err != nil {
				sc.Pop()
				return value.Void(), err
			}
			sc.Insert(paramName, value.Variable{Value: v, Constant: true})
		}
		result, err := evaluateStatement(fn.Body, sc)
		sc.Pop()
		if err != nil {
			return value.Void(), err
		}
		return result, nil

	default:
		return value.Void(), &EvaluationError{Kind: InvalidType, Span: e.Span(), FoundKind: callee.Value.Kind, ExpectedKinds: []value.Kind{value.FunctionKind, value.HostFunctionKind}}
	}
}

func evaluateIf(e *ast.IfExpr, sc *scope.Scope) (value.Value, error) {
	cond, err := evaluateExpression(e.Condition, sc)
	if err != nil {
		return value.Void(), err
	}
	if cond.Kind != value.BooleanKind {
		return value.Void(), &EvaluationError{Kind: InvalidType, Span: e.Condition.Span(), FoundKind: cond.Kind, ExpectedKinds: []value.Kind{value.BooleanKind}}
	}
	if cond.Boolean {
		return evaluateStatement(e.Consequence, sc)
	}
	if e.Alternative != nil {
		return evaluateStatement(e.Alternative, sc)
	}
	return value.Void(), nil
}

func evaluateFor(e *ast.ForExpr, sc *scope.Scope) (value.Value, error) {
	iterable, err := evaluateExpression(e.Iterable, sc)
	if err != nil {
		return value.Void(), err
	}

	var elements []value.Value
	switch iterable.Kind {
	case value.ArrayKind:
		elements = iterable.Array
	case value.StringKind:
		for _, r := range iterable.Str {
			elements = append(elements, value.String(string(r)))
		}
	default:
		return value.Void(), &EvaluationError{Kind: InvalidType, Span: e.Iterable.Span(), FoundKind: iterable.Kind, ExpectedKinds: []value.Kind{value.ArrayKind, value.StringKind}}
	}

	results := make([]value.Value, 0, len(elements))
	for _, el := range elements {
		sc.Push()
		sc.Insert(e.Variable, value.Variable{Value: el, Constant: true})
		v, err := evaluateStatement(e.Body, sc)
		sc.Pop()
		if err != nil {
			return value.Void(), err
		}
		results = append(results, v)
	}
	return value.Array(results), nil
}

func evaluateWhile(e *ast.WhileExpr, sc *scope.Scope) (value.Value, error) {
	var results []value.Value
	for {
		cond, err := evaluateExpression(e.Condition, sc)
		if err != nil {
			return value.Void(), err
		}
		if cond.Kind != value.BooleanKind {
			return value.Void(), &EvaluationError{Kind: InvalidType, Span: e.Condition.Span(), FoundKind: cond.Kind, ExpectedKinds: []value.Kind{value.BooleanKind}}
		}
		if !cond.Boolean {
			break
		}
		sc.Push()
		v, err := evaluateStatement(e.Body, sc)
		sc.Pop()
		if err != nil {
			return value.Void(), err
		}
		results = append(results, v)
	}
	return value.Array(results), nil
}

func evaluateUnary(e *ast.UnaryExpr, sc *scope.Scope) (value.Value, error) {
	operand, err := evaluateExpression(e.Operand, sc)
	if err != nil {
		return value.Void(), err
	}

	switch e.Operator {
	case ast.Negate:
		if operand.Kind != value.NumberKind {
			return value.Void(), &EvaluationError{Kind: InvalidOperator, Span: e.Span(), Operator: e.Operator.String(), Unary: true, LeftKind: operand.Kind}
		}
		return value.Number(-operand.Number), nil
	case ast.Not:
		if operand.Kind != value.BooleanKind {
			return value.Void(), &EvaluationError{Kind: InvalidOperator, Span: e.Span(), Operator: e.Operator.String(), Unary: true, LeftKind: operand.Kind}
		}
		return value.Boolean(!operand.Boolean), nil
	case ast.Identity:
		if operand.Kind != value.NumberKind {
			return value.Void(), &EvaluationError{Kind: InvalidOperator, Span: e.Span(), Operator: e.Operator.String(), Unary: true, LeftKind: operand.Kind}
		}
		return operand, nil
	default:
		return value.Void(), &EvaluationError{Kind: InvalidOperator, Span: e.Span(), Operator: e.Operator.String(), Unary: true, LeftKind: operand.Kind}
	}
}

func evaluateBinary(e *ast.BinaryExpr, sc *scope.Scope) (value.Value, error) {
	if e.Operator == ast.And || e.Operator == ast.Or {
		return evaluateShortCircuit(e, sc)
	}

	left, err := evaluateExpression(e.Left, sc)
	if err != nil {
		return value.Void(), err
	}
	right, err := evaluateExpression(e.Right, sc)
	if err != nil {
		return value.Void(), err
	}

	if e.Operator == ast.Equal {
		return value.Boolean(value.Equal(left, right)), nil
	}
	if e.Operator == ast.NotEqual {
		return value.Boolean(!value.Equal(left, right)), nil
	}

	// String concatenation with Add accepts either operand being a
	// string; the other is stringified. Checked before the
	// kind-pair dispatch below so String+String Add also lands here
	// rather than falling through to the String×String comparison-only
	// handler.
	if e.Operator == ast.Add && (left.Kind == value.StringKind || right.Kind == value.StringKind) {
		return value.String(left.String() + right.String()), nil
	}

	switch {
	case left.Kind == value.NumberKind && right.Kind == value.NumberKind:
		return evaluateNumberBinary(e, left.Number, right.Number)
	case left.Kind == value.StringKind && right.Kind == value.StringKind:
		return evaluateStringBinary(e, left.Str, right.Str)
	default:
		return value.Void(), &EvaluationError{Kind: InvalidOperator, Span: e.Span(), Operator: e.Operator.String(), LeftKind: left.Kind, RightKind: right.Kind}
	}
}

func evaluateShortCircuit(e *ast.BinaryExpr, sc *scope.Scope) (value.Value, error) {
	left, err := evaluateExpression(e.Left, sc)
	if err != nil {
		return value.Void(), err
	}
	if left.Kind != value.BooleanKind {
		return value.Void(), &EvaluationError{Kind: InvalidType, Span: e.Left.Span(), FoundKind: left.Kind, ExpectedKinds: []value.Kind{value.BooleanKind}}
	}
	if e.Operator == ast.And && !left.Boolean {
		return value.Boolean(false), nil
	}
	if e.Operator == ast.Or && left.Boolean {
		return value.Boolean(true), nil
	}

	right, err := evaluateExpression(e.Right, sc)
	if err != nil {
		return value.Void(), err
	}
	if right.Kind != value.BooleanKind {
		return value.Void(), &EvaluationError{Kind: InvalidType, Span: e.Right.Span(), FoundKind: right.Kind, ExpectedKinds: []value.Kind{value.BooleanKind}}
	}
	return right, nil
}

func evaluateNumberBinary(e *ast.BinaryExpr, l, r float64) (value.Value, error) {
	switch e.Operator {
	case ast.Add:
		return value.Number(l + r), nil
	case ast.Subtract:
		return value.Number(l - r), nil
	case ast.Multiply:
		return value.Number(l * r), nil
	case ast.Divide:
		return value.Number(l / r), nil
	case ast.Modulo:
		return value.Number(math.Mod(l, r)), nil
	case ast.Less:
		return value.Boolean(l < r), nil
	case ast.LessEqual:
		return value.Boolean(l <= r), nil
	case ast.Greater:
		return value.Boolean(l > r), nil
	case ast.GreaterEqual:
		return value.Boolean(l >= r), nil
	case ast.Range:
		start := int(math.Trunc(l))
		end := int(math.Trunc(r))
		if start > end {
			return value.Void(), &EvaluationError{Kind: InvalidRange, Span: e.Span(), Start: start, End: end}
		}
		elems := make([]value.Value, 0, end-start+1)
		for i := start; i <= end; i++ {
			elems = append(elems, value.Number(float64(i)))
		}
		return value.Array(elems), nil
	default:
		return value.Void(), &EvaluationError{Kind: InvalidOperator, Span: e.Span(), Operator: e.Operator.String(), LeftKind: value.NumberKind, RightKind: value.NumberKind}
	}
}

func evaluateStringBinary(e *ast.BinaryExpr, l, r string) (value.Value, error) {
	switch e.Operator {
	case ast.Less:
		return value.Boolean(l < r), nil
	case ast.LessEqual:
		return value.Boolean(l <= r), nil
	case ast.Greater:
		return value.Boolean(l > r), nil
	case ast.GreaterEqual:
		return value.Boolean(l >= r), nil
	default:
		return value.Void(), &EvaluationError{Kind: InvalidOperator, Span: e.Span(), Operator: e.Operator.String(), LeftKind: value.StringKind, RightKind: value.StringKind}
	}
}
