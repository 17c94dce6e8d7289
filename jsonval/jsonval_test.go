package jsonval

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParse(t *testing.T) {
	tests := []struct {
		desc  string
		input string
		want  Value
	}{
		{"null", "null", Value{Kind: KindNull}},
		{"true", "true", Value{Kind: KindBool, Bool: true}},
		{"false", "false", Value{Kind: KindBool, Bool: false}},
		{"integer", "42", Value{Kind: KindNumber, Num: 42}},
		{"negative integer", "-7", Value{Kind: KindNumber, Num: -7}},
		{"string", `"hello"`, Value{Kind: KindString, Str: "hello"}},
		{"empty string", `""`, Value{Kind: KindString, Str: ""}},
		{"string with escapes", `"a\"b\\c"`, Value{Kind: KindString, Str: `a"b\c`}},
		{"empty array", "[]", Value{Kind: KindArray, Items: []Value{}}},
		{"array of one", "[1]", Value{Kind: KindArray, Items: []Value{
			{Kind: KindNumber, Num: 1},
		}}},
		{"mixed array", `[1, "two", null]`, Value{Kind: KindArray, Items: []Value{
			{Kind: KindNumber, Num: 1},
			{Kind: KindString, Str: "two"},
			{Kind: KindNull},
		}}},
		{"nested arrays", "[[1],[2,3]]", Value{Kind: KindArray, Items: []Value{
			{Kind: KindArray, Items: []Value{
				{Kind: KindNumber, Num: 1},
			}},
			{Kind: KindArray, Items: []Value{
				{Kind: KindNumber, Num: 2},
				{Kind: KindNumber, Num: 3},
			}},
		}}},
		{"whitespace around value", "  true\n", Value{Kind: KindBool, Bool: true}},
		{"whitespace inside array", "[ 1 ,\n\t2 ]", Value{Kind: KindArray, Items: []Value{
			{Kind: KindNumber, Num: 1},
			{Kind: KindNumber, Num: 2},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreUnexported(Value{})); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		desc  string
		input string
	}{
		{"empty input", ""},
		{"whitespace only", "   "},
		{"unknown literal", "tru"},
		{"trailing input", "true x"},
		{"two values", "1 2"},
		{"unterminated string", `"abc`},
		{"unsupported escape", `"a\nb"`},
		{"unclosed array", "[1, 2"},
		{"trailing comma", "[1,]"},
		{"missing comma", "[1 2]"},
		{"bare comma", "[,]"},
		{"integer overflow", "99999999999999999999"},
		{"negative integer overflow", "-99999999999999999999"},
		{"integer overflow in array", "[1, [99999999999999999999]]"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got, err := Parse(tt.input); err == nil {
				t.Errorf("Parse(%q) = %+v, want error", tt.input, got)
			}
		})
	}
}

func TestParseIntegerRange(t *testing.T) {
	for _, boundary := range []int{math.MaxInt, math.MinInt} {
		input := strconv.Itoa(boundary)
		v, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		if v.Num != boundary {
			t.Errorf("Parse(%q).Num = %d, want %d", input, v.Num, boundary)
		}
	}

	max := strconv.Itoa(math.MaxInt)
	for _, input := range []string{max + "0", "-" + max + "0"} {
		if _, err := Parse(input); err == nil || !strings.Contains(err.Error(), "integer out of range") {
			t.Errorf("Parse(%q) err = %v, want integer out of range", input, err)
		}
	}
}

func TestValueInterface(t *testing.T) {
	v, err := Parse(`[1, "two", [null, false]]`)
	if err != nil {
		t.Fatal(err)
	}

	want := []any{1, "two", []any{nil, false}}
	if diff := cmp.Diff(want, v.Interface()); diff != "" {
		t.Errorf("Interface() mismatch (-want +got):\n%s", diff)
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindNull:   "null",
		KindBool:   "bool",
		KindNumber: "number",
		KindString: "string",
		KindArray:  "array",
		Kind(99):   "unknown",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
