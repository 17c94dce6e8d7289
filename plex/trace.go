package plex

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("plex")

// Trace wraps inner so every attempt is logged on the "plex" logger at
// debug level under the given name. The wrapped parser is returned
// unchanged otherwise; with logging disabled the overhead is a single
// level check per attempt.
func Trace[T any](name string, inner Parser[T]) Parser[T] {
	return traceParser[T]{name: name, inner: inner}
}

type traceParser[T any] struct {
	name  string
	inner Parser[T]
}

func (p traceParser[T]) Parse(input string, pos int) (Result[T], int) {
	r, end := p.inner.Parse(input, pos)
	if !log.AllowLevel(commonlog.Debug) {
		return r, end
	}
	if r.OK {
		log.Debugf("%s: matched %q at %d..%d", p.name, input[pos:end], pos, end)
	} else {
		log.Debugf("%s: no match at %d", p.name, pos)
	}
	return r, end
}
