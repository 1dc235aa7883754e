package lexer

import "fmt"

// LexError reports a single ErrorToken produced during lexing. The lexer
// itself never stops at the first bad character (see Lexer.Lex); callers
// that want fail-fast behavior (the CLI, tests) convert ErrorTokens to
// LexErrors after the fact.
type LexError struct {
	Kind LexErrorKind
	Span Span
	Char rune
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected character %q at %s", e.Char, e.Span)
	case UnterminatedStringLiteral:
		return fmt.Sprintf("unterminated string literal at %s", e.Span)
	default:
		return fmt.Sprintf("lex error at %s", e.Span)
	}
}

// Errors scans tokens for ErrorToken entries and returns them as
// LexErrors, in source order.
func Errors(tokens []Token) []*LexError {
	var errs []*LexError
	for _, t := range tokens {
		if t.Kind == ErrorToken {
			errs = append(errs, &LexError{Kind: t.ErrorKind, Span: t.Span, Char: t.ErrorChar})
		}
	}
	return errs
}
