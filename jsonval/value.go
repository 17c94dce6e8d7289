// Package jsonval parses a small JSON subset (null, booleans, integers,
// strings, arrays) by composing plex combinators into a grammar.
package jsonval

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// Value is one node of a parsed document. Only the field matching Kind
// is meaningful; Items is non-nil exactly for arrays.
type Value struct {
	Kind  Kind
	Bool  bool
	Num   int
	Str   string
	Items []Value

	// err records a literal that matched the grammar but cannot be
	// represented, like an integer past the int range. Parse reports
	// it instead of returning the value.
	err error
}

// Interface converts the value to the shape encoding/json produces:
// nil, bool, int, string, or []any.
func (v Value) Interface() any {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindNumber:
		return v.Num
	case KindString:
		return v.Str
	case KindArray:
		items := make([]any, len(v.Items))
		for i, item := range v.Items {
			items[i] = item.Interface()
		}
		return items
	}
	return nil
}
