package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Silicon27/Parser-Combinators/plex"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the combinator walkthrough",
		Long: heredoc.Doc(`
			Run every combinator against its canonical input and compare
			the outcome with the expected value and end offset.

			Each row is wrapped in a trace, so repeating --verbose shows
			the individual match attempts. A non-zero exit status means
			at least one row diverged.
		`),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemos(cmd.OutOrStdout())
		},
	}

	return cmd
}

type demo struct {
	name    string
	input   string
	parser  plex.Parser[any]
	want    string
	wantEnd int
}

func demoRow[T any](name, input string, p plex.Parser[T], want string, wantEnd int) demo {
	return demo{
		name:    name,
		input:   input,
		parser:  anyOf(plex.Trace(name, p)),
		want:    want,
		wantEnd: wantEnd,
	}
}

// anyOf drops the value type so demos of different types fit one list.
func anyOf[T any](p plex.Parser[T]) plex.Parser[any] {
	return plex.Func[any](func(input string, pos int) (plex.Result[any], int) {
		r, end := p.Parse(input, pos)
		if !r.OK {
			return plex.Failure[any](), end
		}
		return plex.Success[any](r.Value), end
	})
}

func runDemos(w io.Writer) error {
	a := plex.Literal("a")
	tru := plex.Literal("true")
	fls := plex.Literal("false")

	demos := []demo{
		demoRow("seq", "atrue", plex.Seq(a, tru), "{a true}", 5),
		demoRow("choice", "atrue", plex.Choice(a, tru), "a", 1),
		demoRow("compose", "atrue", plex.Compose(a, tru), "true", 5),
		demoRow("between", "atruefalse", plex.Between(a, tru, fls), "true", 5),
		demoRow("regex", "123", plex.Regex(`\d+`), "123", 3),
		demoRow("fmap", "abc", plex.Fmap(strings.ToUpper, a), "A", 1),
		demoRow("pure", "abc", plex.Pure("a"), "a", 0),
		demoRow("bind", "a", plex.Bind(a, func(s string) plex.Parser[string] {
			return plex.Pure(s + "b")
		}), "ab", 1),
		demoRow("many", "aaab", plex.Many(a), "[a a a]", 3),
	}

	table := tablewriter.NewTable(w)
	headers := []string{"combinator", "input", "value", "end", "status"}
	table.Header(headers)

	failures := 0
	for _, d := range demos {
		r, end := d.parser.Parse(d.input, 0)
		got := "<no match>"
		if r.OK {
			got = fmt.Sprintf("%v", r.Value)
		}

		pass := r.OK && got == d.want && end == d.wantEnd
		if !pass {
			failures++
		}
		status := lo.Ternary(pass,
			color.New(color.FgGreen).Sprint("PASS"),
			color.New(color.FgRed).Sprint("FAIL"))

		row := []string{d.name, d.input, got, strconv.Itoa(end), status}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d demonstrations failed", failures, len(demos))
	}
	return nil
}
