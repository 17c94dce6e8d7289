// Package format renders parsed JSON values for human and machine
// readers.
package format

import (
	"encoding"

	"github.com/Silicon27/Parser-Combinators/jsonval"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(v jsonval.Value) error
}
