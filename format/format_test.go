package format

import (
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/Silicon27/Parser-Combinators/jsonval"
)

func TestJSONEncoder(t *testing.T) {
	v, err := jsonval.Parse(`[1, "two", [null, false]]`)
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := NewJSONEncoder(&b).Encode(v); err != nil {
		t.Fatal(err)
	}

	want := heredoc.Doc(`
		[
		  1,
		  "two",
		  [
		    null,
		    false
		  ]
		]
	`)
	if got := b.String(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestTreeEncoder(t *testing.T) {
	tests := []struct {
		desc  string
		input string
		want  string
	}{
		{
			desc:  "scalar",
			input: "42",
			want:  "number 42\n",
		},
		{
			desc:  "null",
			input: "null",
			want:  "null\n",
		},
		{
			desc:  "nested",
			input: `[1, "two", [null, false]]`,
			want: heredoc.Doc(`
				array (3 items)
				  number 1
				  string two
				  array (2 items)
				    null
				    bool false
			`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			v, err := jsonval.Parse(tt.input)
			if err != nil {
				t.Fatal(err)
			}

			var b strings.Builder
			if err := NewTreeEncoder(&b).Encode(v); err != nil {
				t.Fatal(err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
