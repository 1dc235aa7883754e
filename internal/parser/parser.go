// Package parser implements a hand-written recursive-descent parser over
// telid's prefix-notation grammar.
//
// DESIGN CHOICE: the teacher compiler parses infix expressions with Pratt
// precedence climbing, because its grammar has the usual `2 + 3 * 4`
// shape. This grammar puts every operator before its operands
// (`* 3 4`, `== n 0`), so there is no precedence or associativity to
// climb — the only ambiguity left is "does a binary or unary form apply"
// for the two operator tokens (`+`, `-`) that are valid in both, resolved
// by a one-token lookahead rather than a table.
package parser

import (
	"github.com/hassan/telid/internal/lexer"
	"github.com/hassan/telid/internal/parser/ast"
)

// Parse consumes a token stream (ignored tokens already stripped by the
// lexer) and returns the program's statement list, or the first
// structured parse error encountered.
func Parse(tokens []lexer.Token) ([]ast.Stmt, *ParseError) {
	p := &parser{tokens: tokens}
	return p.parseProgram()
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func (p *parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(n int) lexer.Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *parser) check(kind lexer.TokenKind) bool {
	return p.current().Kind == kind
}

func (p *parser) advance() lexer.Token {
	tok := p.current()
	if tok.Kind != lexer.Eof {
		p.pos++
	}
	return tok
}

func (p *parser) match(kind lexer.TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has kind, otherwise returns a
// ParseError naming kind (plus any additional alternatives) as expected.
func (p *parser) expect(kind lexer.TokenKind, alternatives ...lexer.TokenKind) (lexer.Token, *ParseError) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.unexpected(append([]lexer.TokenKind{kind}, alternatives...))
}

func (p *parser) unexpected(expected []lexer.TokenKind) *ParseError {
	tok := p.current()
	if tok.Kind == lexer.Eof {
		return &ParseError{Span: tok.Span, Expected: expected, UnexpectedEnd: true}
	}
	return &ParseError{Span: tok.Span, Found: tok.Kind, Expected: expected}
}

func (p *parser) parseProgram() ([]ast.Stmt, *ParseError) {
	var statements []ast.Stmt
	for !p.check(lexer.Eof) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
		for p.match(lexer.Semicolon) {
		}
	}
	return statements, nil
}

// parseStatement implements the statement production, trying each
// alternative in the order the grammar lists them.
func (p *parser) parseStatement() (ast.Stmt, *ParseError) {
	switch {
	case p.check(lexer.LeftBrace):
		return p.parseBlock()
	case p.check(lexer.Let):
		return p.parseLetFamily()
	case p.check(lexer.Identifier) && p.peekAt(1).Kind == lexer.Equal:
		return p.parseAssignment()
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStmt{Expression: expr}, nil
	}
}

func (p *parser) parseBlock() (*ast.BlockStmt, *ParseError) {
	open, err := p.expect(lexer.LeftBrace)
	if err != nil {
		return nil, err
	}

	var statements []ast.Stmt
	for !p.check(lexer.RightBrace) && !p.check(lexer.Eof) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
		for p.match(lexer.Semicolon) {
		}
	}

	close, err := p.expect(lexer.RightBrace)
	if err != nil {
		return nil, err
	}
	return &ast.BlockStmt{LeftBrace: open.Span, Statements: statements, RightBrace: close.Span}, nil
}

// parseLetFamily handles the three 'let'-headed statement forms: const
// declaration, function declaration, and plain binding. 'const'/'fn' are
// tried before the plain form, per the grammar's disambiguation rule.
func (p *parser) parseLetFamily() (ast.Stmt, *ParseError) {
	letTok := p.advance() // 'let'

	if p.check(lexer.Const) {
		p.advance()
		name, err := p.expect(lexer.Identifier)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Equal); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.LetStmt{LetKeyword: letTok.Span, Name: name.Lexeme, Value: value, Constant: true}, nil
	}

	if p.check(lexer.Fn) {
		p.advance()
		name, err := p.expect(lexer.Identifier)
		if err != nil {
			return nil, err
		}
		var params []string
		for p.check(lexer.Identifier) {
			params = append(params, p.advance().Lexeme)
		}
		if _, err := p.expect(lexer.Equal); err != nil {
			return nil, err
		}
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return &ast.FunctionDeclarationStmt{LetKeyword: letTok.Span, Name: name.Lexeme, Params: params, Body: body}, nil
	}

	name, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Equal); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.LetStmt{LetKeyword: letTok.Span, Name: name.Lexeme, Value: value, Constant: false}, nil
}

func (p *parser) parseAssignment() (*ast.AssignmentStmt, *ParseError) {
	name := p.advance()
	if _, err := p.expect(lexer.Equal); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentStmt{Name: name.Lexeme, NameSpan: name.Span, Value: value}, nil
}

// canStartExpression reports whether kind is a valid first token of an
// expression. Used to decide, via one-token lookahead, whether a `+`/`-`
// application is binary or unary, and whether an index expression's
// iterable follows a bracketed subscript.
func canStartExpression(kind lexer.TokenKind) bool {
	switch kind {
	case lexer.LeftParen, lexer.LeftBracket,
		lexer.Identifier, lexer.NumberLiteral, lexer.StringLiteral, lexer.BooleanLiteral, lexer.VoidLiteral,
		lexer.If, lexer.For, lexer.While,
		lexer.Plus, lexer.Minus, lexer.Star, lexer.Slash, lexer.Percent,
		lexer.EqualEqual, lexer.BangEqual, lexer.Less, lexer.LessEqual, lexer.Greater, lexer.GreaterEqual,
		lexer.AmpAmp, lexer.PipePipe, lexer.Bang, lexer.DotDot:
		return true
	default:
		return false
	}
}

func (p *parser) parseExpression() (ast.Expr, *ParseError) {
	switch p.current().Kind {
	case lexer.LeftParen:
		return p.parseGrouping()
	case lexer.LeftBracket:
		return p.parseBracketExpr()
	case lexer.Identifier:
		return p.parseIdentifierOrCall()
	case lexer.NumberLiteral:
		tok := p.advance()
		return &ast.NumberLiteralExpr{Value: tok.Number, LiteralSpan: tok.Span}, nil
	case lexer.StringLiteral:
		tok := p.advance()
		return &ast.StringLiteralExpr{Value: tok.Lexeme, LiteralSpan: tok.Span}, nil
	case lexer.BooleanLiteral:
		tok := p.advance()
		return &ast.BooleanLiteralExpr{Value: tok.Boolean, LiteralSpan: tok.Span}, nil
	case lexer.VoidLiteral:
		tok := p.advance()
		return &ast.VoidExpr{VoidSpan: tok.Span}, nil
	case lexer.If:
		return p.parseIf()
	case lexer.For:
		return p.parseFor()
	case lexer.While:
		return p.parseWhile()
	case lexer.Star, lexer.Slash, lexer.Percent,
		lexer.EqualEqual, lexer.BangEqual, lexer.Less, lexer.LessEqual, lexer.Greater, lexer.GreaterEqual,
		lexer.AmpAmp, lexer.PipePipe, lexer.DotDot:
		return p.parseAlwaysBinary()
	case lexer.Bang:
		return p.parseAlwaysUnary()
	case lexer.Plus, lexer.Minus:
		return p.parsePlusOrMinus()
	default:
		return nil, p.unexpected([]lexer.TokenKind{
			lexer.LeftParen, lexer.LeftBracket, lexer.Identifier, lexer.NumberLiteral,
			lexer.StringLiteral, lexer.BooleanLiteral, lexer.VoidLiteral,
			lexer.If, lexer.For, lexer.While,
		})
	}
}

func (p *parser) parseGrouping() (ast.Expr, *ParseError) {
	p.advance() // '('
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RightParen); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *parser) parseIdentifierOrCall() (ast.Expr, *ParseError) {
	name := p.advance()
	if !p.check(lexer.LeftParen) {
		return &ast.IdentifierExpr{Name: name.Lexeme, NameSpan: name.Span}, nil
	}

	p.advance() // '('
	var args []ast.Expr
	if !p.check(lexer.RightParen) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	close, err := p.expect(lexer.RightParen)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionCallExpr{Name: name.Lexeme, NameSpan: name.Span, Arguments: args, RightParen: close.Span}, nil
}

// parseBracketExpr parses the three forms headed by '[': index, slice,
// and array literal. All three share a prefix, so the form is decided by
// what follows the first inner token or expression.
func (p *parser) parseBracketExpr() (ast.Expr, *ParseError) {
	open := p.advance() // '['

	if p.check(lexer.DotDot) {
		return p.finishSlice(open.Span, nil)
	}
	if p.check(lexer.RightBracket) {
		p.advance()
		return &ast.ArrayLiteralExpr{LeftBracket: open.Span, RightBracket: p.tokens[p.pos-1].Span}, nil
	}

	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	switch {
	case p.check(lexer.DotDot):
		return p.finishSlice(open.Span, first)
	case p.check(lexer.Comma):
		elements := []ast.Expr{first}
		for p.match(lexer.Comma) {
			elem, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elements = append(elements, elem)
		}
		close, err := p.expect(lexer.RightBracket)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayLiteralExpr{LeftBracket: open.Span, Elements: elements, RightBracket: close.Span}, nil
	case p.check(lexer.RightBracket):
		p.advance()
		if canStartExpression(p.current().Kind) {
			iterable, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			return &ast.IndexExpr{LeftBracket: open.Span, Index: first, Iterable: iterable}, nil
		}
		return &ast.ArrayLiteralExpr{LeftBracket: open.Span, Elements: []ast.Expr{first}, RightBracket: p.tokens[p.pos-1].Span}, nil
	default:
		return nil, p.unexpected([]lexer.TokenKind{lexer.Comma, lexer.RightBracket, lexer.DotDot})
	}
}

// finishSlice parses the remainder of a slice expression after its
// (possibly nil) start expression has already been consumed, starting
// from the '..' token.
func (p *parser) finishSlice(open lexer.Span, start ast.Expr) (ast.Expr, *ParseError) {
	p.advance() // '..'

	var end ast.Expr
	if !p.check(lexer.RightBracket) {
		var err *ParseError
		end, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.RightBracket); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.SliceExpr{LeftBracket: open, Start: start, End: end, Iterable: iterable}, nil
}

func (p *parser) parseIf() (ast.Expr, *ParseError) {
	ifTok := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	cons, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var alt ast.Stmt
	if p.match(lexer.Else) {
		alt, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfExpr{IfKeyword: ifTok.Span, Condition: cond, Consequence: cons, Alternative: alt}, nil
}

func (p *parser) parseFor() (ast.Expr, *ParseError) {
	forTok := p.advance()
	name, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.In); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ForExpr{ForKeyword: forTok.Span, Variable: name.Lexeme, Iterable: iterable, Body: body}, nil
}

func (p *parser) parseWhile() (ast.Expr, *ParseError) {
	whileTok := p.advance()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileExpr{WhileKeyword: whileTok.Span, Condition: cond, Body: body}, nil
}

var binaryOperatorOf = map[lexer.TokenKind]ast.BinaryOperator{
	lexer.Plus:         ast.Add,
	lexer.Minus:        ast.Subtract,
	lexer.Star:         ast.Multiply,
	lexer.Slash:        ast.Divide,
	lexer.Percent:      ast.Modulo,
	lexer.EqualEqual:   ast.Equal,
	lexer.BangEqual:    ast.NotEqual,
	lexer.Less:         ast.Less,
	lexer.LessEqual:    ast.LessEqual,
	lexer.Greater:      ast.Greater,
	lexer.GreaterEqual: ast.GreaterEqual,
	lexer.AmpAmp:       ast.And,
	lexer.PipePipe:     ast.Or,
	lexer.DotDot:       ast.Range,
}

// parseAlwaysBinary handles operator tokens with no unary form: both
// operands are mandatory.
func (p *parser) parseAlwaysBinary() (ast.Expr, *ParseError) {
	opTok := p.advance()
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{OperatorSpan: opTok.Span, Operator: binaryOperatorOf[opTok.Kind], Left: left, Right: right}, nil
}

// parseAlwaysUnary handles '!', which has no binary form.
func (p *parser) parseAlwaysUnary() (ast.Expr, *ParseError) {
	opTok := p.advance()
	operand, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{OperatorSpan: opTok.Span, Operator: ast.Not, Operand: operand}, nil
}

// parsePlusOrMinus resolves the one real ambiguity in the grammar: '+'
// and '-' are valid as both binary and unary prefix operators. It reads
// one operand, then commits to binary if another expression follows,
// unary otherwise — matching the rule that binary is tried first.
func (p *parser) parsePlusOrMinus() (ast.Expr, *ParseError) {
	opTok := p.advance()
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if canStartExpression(p.current().Kind) {
		second, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{OperatorSpan: opTok.Span, Operator: binaryOperatorOf[opTok.Kind], Left: first, Right: second}, nil
	}

	op := ast.Identity
	if opTok.Kind == lexer.Minus {
		op = ast.Negate
	}
	return &ast.UnaryExpr{OperatorSpan: opTok.Span, Operator: op, Operand: first}, nil
}
