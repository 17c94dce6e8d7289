package plex

// Parser is the interface implemented by all combinators.
//
// Parse attempts to recognize input starting at the byte offset pos and
// reports the offset at which parsing stopped. On success the returned
// offset is where the match ended (at least pos, more if input was
// consumed). On failure the returned offset is pos itself: a failing
// parser never moves the cursor, so alternatives can resume from the
// exact position the attempt started at.
//
// Parsers are immutable once constructed and safe for concurrent use.
type Parser[T any] interface {
	Parse(input string, pos int) (Result[T], int)
}

// Func adapts an ordinary function to the Parser interface.
type Func[T any] func(input string, pos int) (Result[T], int)

// Parse calls f.
func (f Func[T]) Parse(input string, pos int) (Result[T], int) {
	return f(input, pos)
}

// Result is the outcome of a parse attempt: a value when the attempt
// succeeded, or a bare failure. Failures carry no message and no
// position; the offset returned alongside a Result is the only
// position information a parser reports.
type Result[T any] struct {
	// Value is the parsed value. It is the zero value on failure.
	Value T

	// OK reports whether the parse succeeded.
	OK bool
}

// Success wraps v in a successful Result.
func Success[T any](v T) Result[T] {
	return Result[T]{Value: v, OK: true}
}

// Failure returns a failed Result.
func Failure[T any]() Result[T] {
	return Result[T]{}
}

// Pair holds the two values produced by Seq.
type Pair[A, B any] struct {
	First  A
	Second B
}
