// Package lexer turns telid source text into a flat token stream.
//
// Every token, tree node, and evaluation error in this implementation
// carries a Span: a half-open byte range into the original source. The
// parser and evaluator import Span from here rather than redefining it,
// so a single coordinate system threads the whole pipeline.
package lexer

import "strconv"

// Span is a half-open [Start, End) byte range into the source text.
//
// DESIGN CHOICE: unlike the teacher's Position/Span pair (which tracks
// filename, line, column, and byte offset together), Span here is just two
// byte offsets. Line/column are a presentation concern the diagnostic
// renderer (out of scope per spec.md §1) can recompute from Start by
// scanning the source once; keeping Span to two ints keeps it cheap to
// copy and trivial to compare.
type Span struct {
	Start int
	End   int
}

// Join returns the smallest span covering both a and b.
// Used by the parser to build a construct's span from its first and last
// token.
func (a Span) Join(b Span) Span {
	start, end := a.Start, a.End
	if b.Start < start {
		start = b.Start
	}
	if b.End > end {
		end = b.End
	}
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	return strconv.Itoa(s.Start) + ".." + strconv.Itoa(s.End)
}
