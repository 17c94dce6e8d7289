package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/Silicon27/Parser-Combinators/jsonval"
)

// TreeEncoder writes a value as an indented kind tree, one node per
// line.
type TreeEncoder struct {
	w     io.Writer
	value jsonval.Value
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(v jsonval.Value) error {
	e.value = v
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var b strings.Builder
	writeTree(&b, e.value, 0)
	return []byte(b.String()), nil
}

func writeTree(b *strings.Builder, v jsonval.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v.Kind {
	case jsonval.KindArray:
		fmt.Fprintf(b, "%s%s (%d items)\n", indent, v.Kind, len(v.Items))
		for _, item := range v.Items {
			writeTree(b, item, depth+1)
		}
	case jsonval.KindNull:
		fmt.Fprintf(b, "%s%s\n", indent, v.Kind)
	default:
		fmt.Fprintf(b, "%s%s %v\n", indent, v.Kind, v.Interface())
	}
}
