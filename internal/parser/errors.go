package parser

import (
	"strings"

	"github.com/hassan/telid/internal/lexer"
)

// ParseError is the parser's single structured failure mode (spec §7):
// either an unexpected token, or running out of input, each carrying the
// set of token kinds that would have been accepted at that position.
type ParseError struct {
	Span          lexer.Span
	Found         lexer.TokenKind
	Expected      []lexer.TokenKind
	UnexpectedEnd bool
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.UnexpectedEnd {
		b.WriteString("unexpected end of input, expected one of ")
	} else {
		b.WriteString("unexpected token ")
		b.WriteString(e.Found.String())
		b.WriteString(", expected one of ")
	}
	b.WriteString(formatExpected(e.Expected))
	return b.String()
}

func formatExpected(kinds []lexer.TokenKind) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range kinds {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
	}
	b.WriteByte('}')
	return b.String()
}
