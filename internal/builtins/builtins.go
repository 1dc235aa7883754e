// Package builtins populates a scope with telid's host functions:
// println, print, exit, readln, assert, parse, type, len, filter, and
// concat. Each is grounded directly on telid-lang's evaluator/scope.rs
// default scope, translated from Rust closures to value.HostCall
// functions.
//
// This package, not internal/value, is what constructs concrete
// *evaluator.EvaluationError values on failure: value.HostCall only
// promises a plain error, specifically so internal/value never needs to
// import internal/evaluator.
package builtins

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hassan/telid/internal/evaluator"
	"github.com/hassan/telid/internal/lexer"
	"github.com/hassan/telid/internal/scope"
	"github.com/hassan/telid/internal/value"
)

// Default returns a fresh scope with every builtin bound as a constant
// in its outermost frame. out and in back println/print/readln; callers
// typically pass os.Stdout and os.Stdin, tests a bytes.Buffer and a
// strings.Reader.
func Default(out io.Writer, in io.Reader) *scope.Scope {
	sc := scope.New()
	reader := bufio.NewReader(in)

	register(sc, "println", 1, func(span lexer.Span, args []value.Value) (value.Value, error) {
		fmt.Fprintln(out, args[0].String())
		return value.Void(), nil
	})

	register(sc, "print", 1, func(span lexer.Span, args []value.Value) (value.Value, error) {
		fmt.Fprint(out, args[0].String())
		return value.Void(), nil
	})

	register(sc, "exit", 1, func(span lexer.Span, args []value.Value) (value.Value, error) {
		if args[0].Kind != value.NumberKind {
			return value.Void(), typeError(span, args[0].Kind, value.NumberKind)
		}
		os.Exit(int(args[0].Number))
		return value.Void(), nil
	})

	register(sc, "readln", 0, func(span lexer.Span, args []value.Value) (value.Value, error) {
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return value.Void(), nil
		}
		return value.String(strings.TrimRight(line, "\r\n")), nil
	})

	register(sc, "assert", 1, func(span lexer.Span, args []value.Value) (value.Value, error) {
		if args[0].Kind != value.BooleanKind {
			return value.Void(), typeError(span, args[0].Kind, value.BooleanKind)
		}
		if !args[0].Boolean {
			return value.Void(), &evaluator.EvaluationError{Kind: evaluator.AssertionFailed, Span: span}
		}
		return value.Void(), nil
	})

	register(sc, "parse", 1, func(span lexer.Span, args []value.Value) (value.Value, error) {
		if args[0].Kind != value.StringKind {
			return value.Void(), typeError(span, args[0].Kind, value.StringKind)
		}
		n, err := strconv.ParseFloat(args[0].Str, 64)
		if err != nil {
			return value.Void(), nil
		}
		return value.Number(n), nil
	})

	register(sc, "type", 1, func(span lexer.Span, args []value.Value) (value.Value, error) {
		return value.String(args[0].Kind.String()), nil
	})

	register(sc, "len", 1, func(span lexer.Span, args []value.Value) (value.Value, error) {
		switch args[0].Kind {
		case value.StringKind:
			return value.Number(float64(len(args[0].Str))), nil
		case value.ArrayKind:
			return value.Number(float64(len(args[0].Array))), nil
		default:
			return value.Void(), typeError(span, args[0].Kind, value.ArrayKind, value.StringKind)
		}
	})

	// filter REMOVES elements of array whose kind tag (as returned by
	// type) equals typeName, it does not keep matches. Matches telid-lang's filter,
	// which compares element.as_ref() (the element's *kind* tag, not its
	// value) against the string and keeps the mismatches.
	register(sc, "filter", 2, func(span lexer.Span, args []value.Value) (value.Value, error) {
		if args[0].Kind != value.ArrayKind {
			return value.Void(), typeError(span, args[0].Kind, value.ArrayKind)
		}
		if args[1].Kind != value.StringKind {
			return value.Void(), typeError(span, args[1].Kind, value.StringKind)
		}
		typeName := args[1].Str
		result := make([]value.Value, 0, len(args[0].Array))
		for _, elem := range args[0].Array {
			if elem.Kind.String() != typeName {
				result = append(result, elem)
			}
		}
		return value.Array(result), nil
	})

	register(sc, "concat", 2, func(span lexer.Span, args []value.Value) (value.Value, error) {
		if args[0].Kind != value.ArrayKind {
			return value.Void(), typeError(span, args[0].Kind, value.ArrayKind)
		}
		if args[1].Kind != value.ArrayKind {
			return value.Void(), typeError(span, args[1].Kind, value.ArrayKind)
		}
		result := make([]value.Value, 0, len(args[0].Array)+len(args[1].Array))
		result = append(result, args[0].Array...)
		result = append(result, args[1].Array...)
		return value.Array(result), nil
	})

	return sc
}

func register(sc *scope.Scope, name string, arity int, call value.HostCall) {
	fn := &value.HostFunction{Name: name, Arity: arity, Call: call}
	sc.Insert(name, value.Variable{Value: value.Host(fn), Constant: true})
}

func typeError(span lexer.Span, found value.Kind, expected ...value.Kind) error {
	return &evaluator.EvaluationError{Kind: evaluator.InvalidType, Span: span, FoundKind: found, ExpectedKinds: expected}
}
