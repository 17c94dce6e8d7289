package plex

// Seq runs first and second in order and yields both values as a Pair.
// If either side fails, Seq fails at the offset it was invoked with.
func Seq[A, B any](first Parser[A], second Parser[B]) Parser[Pair[A, B]] {
	return seqParser[A, B]{first: first, second: second}
}

type seqParser[A, B any] struct {
	first  Parser[A]
	second Parser[B]
}

func (p seqParser[A, B]) Parse(input string, pos int) (Result[Pair[A, B]], int) {
	a, mid := p.first.Parse(input, pos)
	if !a.OK {
		return Failure[Pair[A, B]](), pos
	}
	b, end := p.second.Parse(input, mid)
	if !b.OK {
		return Failure[Pair[A, B]](), pos
	}
	return Success(Pair[A, B]{First: a.Value, Second: b.Value}), end
}

// Choice tries first and, only if it fails, tries second from the same
// offset. The first success wins; second is never consulted after first
// succeeds, even if it would match a longer prefix.
func Choice[T any](first, second Parser[T]) Parser[T] {
	return choiceParser[T]{first: first, second: second}
}

type choiceParser[T any] struct {
	first  Parser[T]
	second Parser[T]
}

func (p choiceParser[T]) Parse(input string, pos int) (Result[T], int) {
	if r, end := p.first.Parse(input, pos); r.OK {
		return r, end
	}
	return p.second.Parse(input, pos)
}

// Compose runs first and second in order like Seq but yields only the
// second value. The first parser's value is discarded, its consumption
// is not.
func Compose[A, B any](first Parser[A], second Parser[B]) Parser[B] {
	return composeParser[A, B]{first: first, second: second}
}

type composeParser[A, B any] struct {
	first  Parser[A]
	second Parser[B]
}

func (p composeParser[A, B]) Parse(input string, pos int) (Result[B], int) {
	a, mid := p.first.Parse(input, pos)
	if !a.OK {
		return Failure[B](), pos
	}
	b, end := p.second.Parse(input, mid)
	if !b.OK {
		return Failure[B](), pos
	}
	return b, end
}

// Between runs open, body, and closer in order and yields the body
// value. The closer must match for Between to succeed, but the offset
// reported on success is the one where body ended: whatever the closer
// consumed is left for the next parser to see again.
func Between[A, B, C any](open Parser[A], body Parser[B], closer Parser[C]) Parser[B] {
	return betweenParser[A, B, C]{open: open, body: body, closer: closer}
}

type betweenParser[A, B, C any] struct {
	open   Parser[A]
	body   Parser[B]
	closer Parser[C]
}

func (p betweenParser[A, B, C]) Parse(input string, pos int) (Result[B], int) {
	o, i := p.open.Parse(input, pos)
	if !o.OK {
		return Failure[B](), pos
	}
	b, j := p.body.Parse(input, i)
	if !b.OK {
		return Failure[B](), pos
	}
	c, _ := p.closer.Parse(input, j)
	if !c.OK {
		return Failure[B](), pos
	}
	return b, j
}

// Fmap applies fn to the value produced by inner, leaving consumption
// untouched. fn sees only the parsed value, never the offset. On
// failure fn is not called.
func Fmap[A, B any](fn func(A) B, inner Parser[A]) Parser[B] {
	return fmapParser[A, B]{fn: fn, inner: inner}
}

type fmapParser[A, B any] struct {
	fn    func(A) B
	inner Parser[A]
}

func (p fmapParser[A, B]) Parse(input string, pos int) (Result[B], int) {
	r, end := p.inner.Parse(input, pos)
	if !r.OK {
		return Failure[B](), pos
	}
	return Success(p.fn(r.Value)), end
}

// Bind runs inner and feeds its value to fn, which chooses the parser
// to continue with from where inner stopped. This is the only
// combinator whose second step can depend on an earlier parsed value.
// If either step fails, Bind fails at the offset it was invoked with.
func Bind[A, B any](inner Parser[A], fn func(A) Parser[B]) Parser[B] {
	return bindParser[A, B]{inner: inner, fn: fn}
}

type bindParser[A, B any] struct {
	inner Parser[A]
	fn    func(A) Parser[B]
}

func (p bindParser[A, B]) Parse(input string, pos int) (Result[B], int) {
	a, mid := p.inner.Parse(input, pos)
	if !a.OK {
		return Failure[B](), pos
	}
	b, end := p.fn(a.Value).Parse(input, mid)
	if !b.OK {
		return Failure[B](), pos
	}
	return b, end
}

// Many applies inner repeatedly until it fails and yields the collected
// values. Many never fails: zero matches succeed with an empty slice at
// the starting offset. The slice is never nil.
//
// A repetition that succeeds without consuming input would repeat at
// the same offset forever, so Many stops there and discards that last
// value. Wrapping Pure or a regex that can match empty is therefore
// safe.
func Many[T any](inner Parser[T]) Parser[[]T] {
	return manyParser[T]{inner: inner}
}

type manyParser[T any] struct {
	inner Parser[T]
}

func (p manyParser[T]) Parse(input string, pos int) (Result[[]T], int) {
	values := []T{}
	for {
		r, next := p.inner.Parse(input, pos)
		if !r.OK || next <= pos {
			return Success(values), pos
		}
		values = append(values, r.Value)
		pos = next
	}
}
