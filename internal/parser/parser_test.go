package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassan/telid/internal/lexer"
	"github.com/hassan/telid/internal/parser/ast"
)

func parse(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	tokens := lexer.New(source).Lex(false)
	statements, err := Parse(tokens)
	require.Nil(t, err, "unexpected parse error: %v", err)
	return statements
}

func TestParse_LetAndConst(t *testing.T) {
	statements := parse(t, "let x = 1\nlet const y = 2")
	require.Len(t, statements, 2)

	let := statements[0].(*ast.LetStmt)
	assert.Equal(t, "x", let.Name)
	assert.False(t, let.Constant)

	constLet := statements[1].(*ast.LetStmt)
	assert.Equal(t, "y", constLet.Name)
	assert.True(t, constLet.Constant)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	statements := parse(t, "let fn add a b = + a b")
	require.Len(t, statements, 1)

	fn := statements[0].(*ast.FunctionDeclarationStmt)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	assert.IsType(t, &ast.BinaryExpr{}, fn.Body.(*ast.ExpressionStmt).Expression)
}

func TestParse_PlusMinusDisambiguation(t *testing.T) {
	// binary: another expression follows the first operand
	binary := parse(t, "+ 1 2")
	bin := binary[0].(*ast.ExpressionStmt).Expression.(*ast.BinaryExpr)
	assert.Equal(t, ast.Add, bin.Operator)

	// unary: nothing follows the operand
	unary := parse(t, "- 1")
	un := unary[0].(*ast.ExpressionStmt).Expression.(*ast.UnaryExpr)
	assert.Equal(t, ast.Negate, un.Operator)

	identity := parse(t, "+ 1")
	id := identity[0].(*ast.ExpressionStmt).Expression.(*ast.UnaryExpr)
	assert.Equal(t, ast.Identity, id.Operator)
}

func TestParse_IndexVsSliceVsArrayLiteral(t *testing.T) {
	index := parse(t, "[0]arr")
	assert.IsType(t, &ast.IndexExpr{}, index[0].(*ast.ExpressionStmt).Expression)

	slice := parse(t, "[0..2]arr")
	assert.IsType(t, &ast.SliceExpr{}, slice[0].(*ast.ExpressionStmt).Expression)

	sliceOpenStart := parse(t, "[..2]arr")
	sl := sliceOpenStart[0].(*ast.ExpressionStmt).Expression.(*ast.SliceExpr)
	assert.Nil(t, sl.Start)

	array := parse(t, "[1, 2, 3]")
	lit := array[0].(*ast.ExpressionStmt).Expression.(*ast.ArrayLiteralExpr)
	assert.Len(t, lit.Elements, 3)

	singleton := parse(t, "[1]")
	litSingle := singleton[0].(*ast.ExpressionStmt).Expression.(*ast.ArrayLiteralExpr)
	assert.Len(t, litSingle.Elements, 1)
}

func TestParse_IfForWhile(t *testing.T) {
	statements := parse(t, `if true { 1 } else { 2 }`)
	ifExpr := statements[0].(*ast.ExpressionStmt).Expression.(*ast.IfExpr)
	assert.NotNil(t, ifExpr.Alternative)

	statements = parse(t, `for x in [1, 2] { x }`)
	forExpr := statements[0].(*ast.ExpressionStmt).Expression.(*ast.ForExpr)
	assert.Equal(t, "x", forExpr.Variable)

	statements = parse(t, `while true { 1 }`)
	assert.IsType(t, &ast.WhileExpr{}, statements[0].(*ast.ExpressionStmt).Expression)
}

func TestParse_FunctionCall(t *testing.T) {
	statements := parse(t, "add(1, 2)")
	call := statements[0].(*ast.ExpressionStmt).Expression.(*ast.FunctionCallExpr)
	assert.Equal(t, "add", call.Name)
	assert.Len(t, call.Arguments, 2)
}

func TestParse_UnexpectedTokenProducesError(t *testing.T) {
	tokens := lexer.New(")").Lex(false)
	_, err := Parse(tokens)
	require.NotNil(t, err)
	assert.Equal(t, lexer.RightParen, err.Found)
}

func TestParse_UnexpectedEndOfInput(t *testing.T) {
	tokens := lexer.New("let x =").Lex(false)
	_, err := Parse(tokens)
	require.NotNil(t, err)
	assert.True(t, err.UnexpectedEnd)
}

// TestParse_WhitespaceInsensitiveStructurally diffs the trees of two
// differently-spaced but equivalent programs, ignoring Span (source
// position is expected to differ; tree shape must not).
func TestParse_WhitespaceInsensitiveStructurally(t *testing.T) {
	a := parse(t, "+ 1 2")
	b := parse(t, "+  1    2")

	diff := cmp.Diff(a, b, cmpopts.IgnoreTypes(lexer.Span{}))
	assert.Empty(t, diff, "trees should match once source position is ignored:\n%s", diff)
}
