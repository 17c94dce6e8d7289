package plex

import (
	"regexp"
	"strings"
)

// Regex returns a parser matching pattern at the current offset. The
// match is anchored: it must begin exactly at the offset, not anywhere
// later in the input. On success the parser yields the matched text.
//
// Regex panics if pattern is not a valid regular expression, so it is
// meant for patterns fixed at program start, like package-level grammar
// definitions.
func Regex(pattern string) Parser[string] {
	return regexParser{re: regexp.MustCompile(`\A(?:` + pattern + `)`)}
}

type regexParser struct {
	re *regexp.Regexp
}

func (p regexParser) Parse(input string, pos int) (Result[string], int) {
	if pos < 0 || pos > len(input) {
		return Failure[string](), pos
	}
	loc := p.re.FindStringIndex(input[pos:])
	if loc == nil {
		return Failure[string](), pos
	}
	return Success(input[pos : pos+loc[1]]), pos + loc[1]
}

// Literal returns a parser matching exactly the string lit at the
// current offset, yielding lit and consuming len(lit) bytes.
func Literal(lit string) Parser[string] {
	return literalParser{lit: lit}
}

type literalParser struct {
	lit string
}

func (p literalParser) Parse(input string, pos int) (Result[string], int) {
	if pos < 0 || pos > len(input) || !strings.HasPrefix(input[pos:], p.lit) {
		return Failure[string](), pos
	}
	return Success(p.lit), pos + len(p.lit)
}

// Pure returns a parser that always succeeds with v without consuming
// any input. It is the unit for Bind and useful as a default arm in a
// Choice.
func Pure[T any](v T) Parser[T] {
	return pureParser[T]{value: v}
}

type pureParser[T any] struct {
	value T
}

func (p pureParser[T]) Parse(_ string, pos int) (Result[T], int) {
	return Success(p.value), pos
}
