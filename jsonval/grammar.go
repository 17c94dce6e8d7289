package jsonval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Silicon27/Parser-Combinators/plex"
)

var (
	ws       = plex.Regex(`[ \t\r\n]*`)
	document = newDocumentParser()
)

// Parse reads exactly one value from input. Leading and trailing
// whitespace is allowed; anything else after the value is an error, as
// is a literal the grammar accepts but an int cannot hold.
func Parse(input string) (Value, error) {
	r, end := document.Parse(input, 0)
	if !r.OK {
		return Value{}, errors.New("failed to parse value")
	}
	if end != len(input) {
		return Value{}, fmt.Errorf("unexpected input at offset %d", end)
	}
	if r.Value.err != nil {
		return Value{}, r.Value.err
	}
	return r.Value, nil
}

// newDocumentParser assembles the grammar. The value rule is recursive
// through arrays, so it is built around a slot that is filled in after
// every rule referring to it has been constructed.
func newDocumentParser() plex.Parser[Value] {
	var value plex.Parser[Value]
	ref := plex.Func[Value](func(input string, pos int) (plex.Result[Value], int) {
		return value.Parse(input, pos)
	})

	nullLit := plex.Fmap(func(string) Value {
		return Value{Kind: KindNull}
	}, plex.Literal("null"))

	trueLit := plex.Fmap(func(string) Value {
		return Value{Kind: KindBool, Bool: true}
	}, plex.Literal("true"))

	falseLit := plex.Fmap(func(string) Value {
		return Value{Kind: KindBool, Bool: false}
	}, plex.Literal("false"))

	number := plex.Fmap(func(s string) Value {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Value{Kind: KindNumber, err: fmt.Errorf("integer out of range: %s", s)}
		}
		return Value{Kind: KindNumber, Num: n}
	}, plex.Regex(`-?\d+`))

	str := plex.Fmap(func(s string) Value {
		return Value{Kind: KindString, Str: unquote(s)}
	}, plex.Regex(`"(?:[^"\\]|\\["\\])*"`))

	// array = "[" ws value (ws "," ws value)* ws "]" | "[" ws "]"
	element := plex.Compose(ws, ref)
	comma := plex.Compose(ws, plex.Literal(","))
	tail := plex.Many(plex.Compose(comma, element))
	elements := plex.Fmap(func(p plex.Pair[Value, []Value]) []Value {
		return append([]Value{p.First}, p.Second...)
	}, plex.Seq(element, tail))
	list := plex.Choice(elements, plex.Pure([]Value{}))
	closeBracket := plex.Compose(ws, plex.Literal("]"))
	array := plex.Fmap(func(p plex.Pair[[]Value, string]) Value {
		v := Value{Kind: KindArray, Items: p.First}
		for _, item := range p.First {
			if item.err != nil {
				v.err = item.err
				break
			}
		}
		return v
	}, plex.Compose(plex.Literal("["), plex.Seq(list, closeBracket)))

	value = choiceOf(nullLit, trueLit, falseLit, number, str, array)

	// The document is one value with surrounding whitespace consumed.
	return plex.Fmap(func(p plex.Pair[Value, string]) Value {
		return p.First
	}, plex.Seq(plex.Compose(ws, ref), ws))
}

// choiceOf folds the two-way Choice over any number of alternatives.
func choiceOf[T any](first plex.Parser[T], rest ...plex.Parser[T]) plex.Parser[T] {
	p := first
	for _, alt := range rest {
		p = plex.Choice(p, alt)
	}
	return p
}

// unquote strips the surrounding quotes and resolves the two supported
// escapes, \" and \\.
func unquote(s string) string {
	s = s[1 : len(s)-1]
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
