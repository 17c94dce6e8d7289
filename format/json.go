package format

import (
	"encoding/json"
	"io"

	"github.com/Silicon27/Parser-Combinators/jsonval"
)

// JSONEncoder writes a value as indented JSON.
type JSONEncoder struct {
	w     io.Writer
	value jsonval.Value
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(v jsonval.Value) error {
	e.value = v
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err = e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.value.Interface(), "", "  ")
}
