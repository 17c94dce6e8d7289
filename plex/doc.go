// Package plex implements a small parser-combinator engine over strings.
//
// # Overview
//
// A parser is a value that attempts to recognize input starting at a
// byte offset and reports the parsed value together with the offset at
// which parsing stopped. Parsers are built from three atomic
// constructors and composed with ordinary function calls; the resulting
// values are immutable and reusable, so one grammar can serve many
// inputs and many goroutines.
//
//	input ──▶ [ Parser ] ──▶ (Result, end offset)
//
// All positions are byte offsets into the input string. A parser never
// mutates the input and never moves a cursor on failure: when an
// attempt fails, the reported offset is exactly the one the attempt
// started at, which is what makes Choice-style backtracking work.
//
// # Constructors
//
// Atomic parsers recognize input directly:
//
//	Regex(pattern)  match a regular expression anchored at the offset
//	Literal(lit)    match an exact string
//	Pure(v)         succeed with v, consuming nothing
//
// Combinators build parsers out of parsers:
//
//	Seq(p, q)            p then q, yielding a Pair of both values
//	Choice(p, q)         p, or q from the same offset if p fails
//	Compose(p, q)        p then q, yielding only q's value
//	Between(o, b, c)     o, b, c in order, yielding b's value
//	Fmap(fn, p)          apply fn to p's value
//	Bind(p, fn)          feed p's value to fn to choose the next parser
//	Many(p)              p zero or more times, yielding a slice
//
// # Example
//
// A parser for a decimal integer wrapped in parentheses:
//
//	digits := plex.Regex(`[0-9]+`)
//	number := plex.Fmap(func(s string) int {
//		n, _ := strconv.Atoi(s)
//		return n
//	}, digits)
//	parens := plex.Between(plex.Literal("("), number, plex.Literal(")"))
//
//	result, end := parens.Parse("(42)", 0)
//	// result.OK == true, result.Value == 42, end == 3
//
// Note the end offset: Between validates its closer but reports the
// offset where the body ended, so the ")" above is still unconsumed.
package plex
