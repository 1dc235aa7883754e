// Package value defines telid's runtime value model: a closed sum of
// void, number, string, boolean, array, user function, and host function.
//
// DESIGN CHOICE: following the lexer's Token (a Kind discriminator plus
// flat payload fields, not an interface per variant), Value is a single
// struct rather than seven concrete types behind an interface. Values are
// copied constantly (every scope lookup, every array element access) and
// the evaluator's dispatch is a switch on Kind; a flat struct keeps both
// cheap and avoids a type assertion on every use.
package value

import (
	"strconv"
	"strings"

	"github.com/hassan/telid/internal/lexer"
	"github.com/hassan/telid/internal/parser/ast"
)

// Kind is the closed tag distinguishing Value's variants.
type Kind int

const (
	VoidKind Kind = iota
	NumberKind
	StringKind
	BooleanKind
	ArrayKind
	FunctionKind
	HostFunctionKind
)

var kindNames = map[Kind]string{
	VoidKind:         "Void",
	NumberKind:       "Number",
	StringKind:       "String",
	BooleanKind:      "Boolean",
	ArrayKind:        "Array",
	FunctionKind:     "Function",
	HostFunctionKind: "RustFunction",
}

// String returns the kind tag used by the `type` builtin and by
// InvalidType/InvalidOperator diagnostics. The HostFunction tag
// ("RustFunction") preserves the original interpreter's naming.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// UserFunction is a telid-defined function: a parameter name list plus
// its unevaluated body tree. Per the call-time-resolution rule, it does
// not capture the scope it was declared in.
type UserFunction struct {
	Params []string
	Body   ast.Stmt
}

// HostCall is the signature every builtin implements: given the call-site
// span and the already-evaluated argument list, produce a value or fail.
// The error return is deliberately the plain `error` interface rather
// than a concrete evaluator type, so this package never needs to import
// the evaluator.
type HostCall func(span lexer.Span, args []Value) (Value, error)

// HostFunction is a builtin: a fixed arity and the Go function that
// implements it.
type HostFunction struct {
	Name  string
	Arity int
	Call  HostCall
}

// Value is telid's runtime value.
type Value struct {
	Kind Kind

	Number  float64
	Str     string
	Boolean bool
	Array   []Value

	Function *UserFunction
	Host     *HostFunction
}

// Variable is a scope binding: a value plus whether it may be reassigned.
type Variable struct {
	Value    Value
	Constant bool
}

func Void() Value                 { return Value{Kind: VoidKind} }
func Number(n float64) Value      { return Value{Kind: NumberKind, Number: n} }
func String(s string) Value       { return Value{Kind: StringKind, Str: s} }
func Boolean(b bool) Value        { return Value{Kind: BooleanKind, Boolean: b} }
func Array(elems []Value) Value   { return Value{Kind: ArrayKind, Array: elems} }
func Function(f *UserFunction) Value {
	return Value{Kind: FunctionKind, Function: f}
}
func Host(f *HostFunction) Value { return Value{Kind: HostFunctionKind, Host: f} }

// Equal implements the any-any structural equality the Equal/NotEqual
// binary operators use. Values of different kinds are never equal.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case VoidKind:
		return true
	case NumberKind:
		return a.Number == b.Number
	case StringKind:
		return a.Str == b.Str
	case BooleanKind:
		return a.Boolean == b.Boolean
	case ArrayKind:
		if len(a.Array) != len(b.Array) {
			return false
		}
		for i := range a.Array {
			if !Equal(a.Array[i], b.Array[i]) {
				return false
			}
		}
		return true
	case FunctionKind:
		return a.Function == b.Function
	case HostFunctionKind:
		return a.Host == b.Host
	default:
		return false
	}
}

// String renders v using the stringification rule shared by print,
// println, and string-concatenation with a non-string operand.
func (v Value) String() string {
	switch v.Kind {
	case VoidKind:
		return "void"
	case NumberKind:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case StringKind:
		return v.Str
	case BooleanKind:
		if v.Boolean {
			return "true"
		}
		return "false"
	case ArrayKind:
		parts := make([]string, len(v.Array))
		for i, elem := range v.Array {
			parts[i] = elem.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case FunctionKind:
		return "fn (" + strings.Join(v.Function.Params, ", ") + ") "
	case HostFunctionKind:
		return "RustFn(" + strconv.Itoa(v.Host.Arity) + ")"
	default:
		return "?"
	}
}
