// Package calc evaluates integer arithmetic expressions with the usual
// precedence rules, parsing them with plex combinators.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/samber/lo"

	"github.com/Silicon27/Parser-Combinators/plex"
)

var (
	ws      = plex.Regex(`[ \t]*`)
	grammar = newExprParser()
)

// Eval parses and evaluates input. The grammar is
//
//	expr   = term   {("+"|"-") term}
//	term   = factor {("*"|"/") factor}
//	factor = integer | "(" expr ")"
//
// with + - * / left-associative and / truncating like Go's integer
// division. Literals and results that do not fit in an int are errors.
func Eval(input string) (int, error) {
	r, end := grammar.Parse(input, 0)
	if !r.OK {
		return 0, errors.New("failed to parse expression")
	}
	if _, end = ws.Parse(input, end); end != len(input) {
		return 0, fmt.Errorf("unexpected input at offset %d", end)
	}
	if r.Value.err != nil {
		return 0, r.Value.err
	}
	return r.Value.n, nil
}

// value carries a partial evaluation. Arithmetic errors ride along in
// err instead of failing the parse, so the grammar stays total and the
// boundary decides what to report.
type value struct {
	n   int
	err error
}

// opTerm is one step of an operator tail, like "+3" in "1+2+3".
type opTerm struct {
	op   string
	term value
}

func newExprParser() plex.Parser[value] {
	var expr plex.Parser[value]
	ref := plex.Func[value](func(input string, pos int) (plex.Result[value], int) {
		return expr.Parse(input, pos)
	})

	tok := func(lit string) plex.Parser[string] {
		return plex.Compose(ws, plex.Literal(lit))
	}

	integer := plex.Fmap(func(s string) value {
		n, err := strconv.Atoi(s)
		if err != nil {
			return value{err: fmt.Errorf("integer out of range: %s", s)}
		}
		return value{n: n}
	}, plex.Compose(ws, plex.Regex(`-?\d+`)))

	parens := plex.Fmap(func(p plex.Pair[value, string]) value {
		return p.First
	}, plex.Compose(tok("("), plex.Seq(ref, tok(")"))))

	factor := plex.Choice(integer, parens)

	term := folded(factor, plex.Choice(tok("*"), tok("/")))
	expr = folded(term, plex.Choice(tok("+"), tok("-")))

	return expr
}

// folded parses operand {op operand} and reduces the tail onto the
// first operand from the left.
func folded(operand plex.Parser[value], op plex.Parser[string]) plex.Parser[value] {
	tail := plex.Many(plex.Fmap(func(p plex.Pair[string, value]) opTerm {
		return opTerm{op: p.First, term: p.Second}
	}, plex.Seq(op, operand)))

	return plex.Fmap(func(p plex.Pair[value, []opTerm]) value {
		return lo.Reduce(p.Second, applyOp, p.First)
	}, plex.Seq(operand, tail))
}

func applyOp(acc value, t opTerm, _ int) value {
	if acc.err != nil {
		return acc
	}
	if t.term.err != nil {
		return t.term
	}
	a, b := acc.n, t.term.n
	switch t.op {
	case "+":
		if addOverflows(a, b) {
			return overflow(a, t.op, b)
		}
		return value{n: a + b}
	case "-":
		if subOverflows(a, b) {
			return overflow(a, t.op, b)
		}
		return value{n: a - b}
	case "*":
		if mulOverflows(a, b) {
			return overflow(a, t.op, b)
		}
		return value{n: a * b}
	case "/":
		if b == 0 {
			return value{err: errors.New("division by zero")}
		}
		if a == math.MinInt && b == -1 {
			return overflow(a, t.op, b)
		}
		return value{n: a / b}
	}
	return value{err: fmt.Errorf("unknown operator %q", t.op)}
}

func overflow(a int, op string, b int) value {
	return value{err: fmt.Errorf("integer overflow: %d %s %d", a, op, b)}
}

// addOverflows reports whether a+b falls outside the int range.
func addOverflows(a, b int) bool {
	return (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b)
}

// subOverflows reports whether a-b falls outside the int range.
func subOverflows(a, b int) bool {
	return (b > 0 && a < math.MinInt+b) || (b < 0 && a > math.MaxInt+b)
}

// mulOverflows reports whether a*b falls outside the int range. MinInt
// operands are settled up front; the quotient test is exact for the
// rest.
func mulOverflows(a, b int) bool {
	if a == 0 || b == 0 {
		return false
	}
	if a == math.MinInt || b == math.MinInt {
		return a != 1 && b != 1
	}
	n := a * b
	return n/b != a
}
