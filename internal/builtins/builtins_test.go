package builtins_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassan/telid/internal/builtins"
	"github.com/hassan/telid/internal/evaluator"
	"github.com/hassan/telid/internal/lexer"
	"github.com/hassan/telid/internal/parser"
	"github.com/hassan/telid/internal/value"
)

func run(t *testing.T, source string, out *bytes.Buffer, in *strings.Reader) (value.Value, error) {
	t.Helper()
	sc := builtins.Default(out, in)
	tokens := lexer.New(source).Lex(false)
	statements, parseErr := parser.Parse(tokens)
	require.Nil(t, parseErr)
	return evaluator.Evaluate(statements, sc)
}

func TestBuiltins_Println(t *testing.T) {
	var out bytes.Buffer
	_, err := run(t, `println("hi")`, &out, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out.String())
}

func TestBuiltins_Print(t *testing.T) {
	var out bytes.Buffer
	_, err := run(t, `print("hi")`, &out, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "hi", out.String())
}

func TestBuiltins_Readln(t *testing.T) {
	var out bytes.Buffer
	v, err := run(t, `readln()`, &out, strings.NewReader("hello world\n"))
	require.NoError(t, err)
	assert.Equal(t, value.String("hello world"), v)
}

func TestBuiltins_Assert(t *testing.T) {
	var out bytes.Buffer
	_, err := run(t, `assert(true)`, &out, strings.NewReader(""))
	require.NoError(t, err)

	_, err = run(t, `assert(false)`, &out, strings.NewReader(""))
	require.Error(t, err)
	assert.Equal(t, evaluator.AssertionFailed, err.(*evaluator.EvaluationError).Kind)
}

func TestBuiltins_Parse(t *testing.T) {
	var out bytes.Buffer
	v, err := run(t, `parse("3.14")`, &out, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, value.Number(3.14), v)

	v, err = run(t, `parse("not a number")`, &out, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, value.Void(), v)
}

func TestBuiltins_Type(t *testing.T) {
	var out bytes.Buffer
	v, err := run(t, `type(5)`, &out, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, value.String("Number"), v)
}

func TestBuiltins_LenIsByteLengthForStrings(t *testing.T) {
	var out bytes.Buffer
	v, err := run(t, `len("héllo")`, &out, strings.NewReader(""))
	require.NoError(t, err)
	// 'é' is two bytes in UTF-8, so byte length (6) differs from rune count (5).
	assert.Equal(t, value.Number(6), v)

	v, err = run(t, `len([1, 2, 3])`, &out, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, value.Number(3), v)
}

func TestBuiltins_FilterRemovesMatchingTypeTag(t *testing.T) {
	var out bytes.Buffer
	v, err := run(t, `filter([1, "a", 2, "b"], "Number")`, &out, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, value.Array([]value.Value{value.String("a"), value.String("b")}), v)
}

func TestBuiltins_Concat(t *testing.T) {
	var out bytes.Buffer
	v, err := run(t, `concat([1, 2], [3, 4])`, &out, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, value.Array([]value.Value{value.Number(1), value.Number(2), value.Number(3), value.Number(4)}), v)
}

func TestBuiltins_IncorrectArityErrors(t *testing.T) {
	var out bytes.Buffer
	_, err := run(t, `len()`, &out, strings.NewReader(""))
	require.Error(t, err)
	assert.Equal(t, evaluator.IncorrectParameterCount, err.(*evaluator.EvaluationError).Kind)
}
