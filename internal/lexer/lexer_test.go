package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex_Keywords(t *testing.T) {
	tokens := New("let const fn if else for while in").Lex(false)

	want := []TokenKind{Let, Const, Fn, If, Else, For, While, In, Eof}
	got := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		got[i] = tok.Kind
	}
	assert.Equal(t, want, got)
}

func TestLex_Identifiers(t *testing.T) {
	tokens := New("foo _temp $dollar myVar123").Lex(false)
	require.Len(t, tokens, 5) // 4 identifiers + Eof

	for i, want := range []string{"foo", "_temp", "$dollar", "myVar123"} {
		assert.Equal(t, Identifier, tokens[i].Kind)
		assert.Equal(t, want, tokens[i].Lexeme)
	}
}

func TestLex_Numbers(t *testing.T) {
	tests := []struct {
		source string
		want   float64
	}{
		{"42", 42},
		{"3.14", 3.14},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens := New(tt.source).Lex(false)
			require.Equal(t, NumberLiteral, tokens[0].Kind)
			assert.Equal(t, tt.want, tokens[0].Number)
		})
	}
}

func TestLex_RangeDisambiguation(t *testing.T) {
	tokens := New("0..5").Lex(false)
	want := []TokenKind{NumberLiteral, DotDot, NumberLiteral, Eof}
	got := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		got[i] = tok.Kind
	}
	assert.Equal(t, want, got)
}

func TestLex_StringEscapes(t *testing.T) {
	tokens := New(`"a\nb\tc"`).Lex(false)
	require.Equal(t, StringLiteral, tokens[0].Kind)
	assert.Equal(t, "a\nb\tc", tokens[0].Lexeme)
}

func TestLex_UnterminatedString(t *testing.T) {
	tokens := New(`"unterminated`).Lex(false)
	require.Equal(t, ErrorToken, tokens[0].Kind)
	assert.Equal(t, UnterminatedStringLiteral, tokens[0].ErrorKind)
}

func TestLex_UnexpectedCharacter(t *testing.T) {
	tokens := New("@").Lex(false)
	require.Equal(t, ErrorToken, tokens[0].Kind)
	assert.Equal(t, UnexpectedCharacter, tokens[0].ErrorKind)
	assert.Equal(t, '@', tokens[0].ErrorChar)
}

func TestLex_IgnoredTokensEmittedOnlyWhenRequested(t *testing.T) {
	source := "let x // comment\n= 1"

	withoutIgnored := New(source).Lex(false)
	for _, tok := range withoutIgnored {
		assert.NotContains(t, []TokenKind{Whitespace, Newline, Comment}, tok.Kind)
	}

	withIgnored := New(source).Lex(true)
	var sawComment bool
	for _, tok := range withIgnored {
		if tok.Kind == Comment {
			sawComment = true
		}
	}
	assert.True(t, sawComment)
}

// TestLex_Totality verifies the lexer never panics and always terminates
// with an Eof token, for arbitrary byte soup including invalid UTF-8.
func TestLex_Totality(t *testing.T) {
	inputs := []string{
		"", " ", "\xff\xfe", "let x = \"\\", "1234567890" + string(rune(0)),
	}
	for _, in := range inputs {
		tokens := New(in).Lex(false)
		require.NotEmpty(t, tokens)
		assert.Equal(t, Eof, tokens[len(tokens)-1].Kind)
	}
}
