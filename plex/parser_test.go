package plex

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunc(t *testing.T) {
	// A custom parser that succeeds only at end of input.
	eof := Func[struct{}](func(input string, pos int) (Result[struct{}], int) {
		if pos >= len(input) {
			return Success(struct{}{}), pos
		}
		return Failure[struct{}](), pos
	})

	p := Compose(Literal("a"), eof)

	got, end := p.Parse("a", 0)
	require.True(t, got.OK, "OK")
	assert.Equal(t, 1, end, "End")

	got, end = p.Parse("ab", 0)
	require.False(t, got.OK, "OK")
	assert.Equal(t, 0, end, "End")
}

func TestConcurrentReuse(t *testing.T) {
	p := Between(Literal("("), Many(Choice(Literal("a"), Literal("b"))), Literal(")"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				got, end := p.Parse("(aab)", 0)
				if assert.True(t, got.OK, "OK") {
					assert.Equal(t, []string{"a", "a", "b"}, got.Value, "Value")
					assert.Equal(t, 4, end, "End")
				}

				got, end = p.Parse("(x", 0)
				assert.False(t, got.OK, "OK")
				assert.Equal(t, 0, end, "End")
			}
		}()
	}
	wg.Wait()
}
