package monas

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/harmony/pkg/harmony"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThenStartsBorrowedChain(t *testing.T) {
	opt := harmony.Some(1)
	m := Then(&opt, func(x int) harmony.Maybe[int] { return harmony.Some(x + 1) })
	assert.True(t, m.Borrowed())
	assert.Equal(t, 2, opt.Unwrap())
}

func TestPipe(t *testing.T) {
	n := 10
	m := Pipe[harmony.Unit, int](harmony.Pointer(&n),
		func(x int) harmony.Maybe[int] { return harmony.Some(x + x) },
		func(x int) harmony.Maybe[int] { return harmony.Some(x + 100) },
	)
	assert.Equal(t, 120, m.Unwrap())
	assert.Equal(t, 120, n)

	calls := 0
	failed := Pipe[harmony.Unit, int](harmony.Pointer(&n),
		func(int) harmony.Maybe[int] { return harmony.None[int]() },
		func(x int) harmony.Maybe[int] { calls++; return harmony.Some(x * x) },
	)
	assert.False(t, failed.Valid())
	assert.Equal(t, 0, calls)
	assert.Equal(t, 120, n)
}

func TestTry(t *testing.T) {
	ok := Try(func() (int, error) { return strconv.Atoi("5") })
	assert.Equal(t, 5, ok.Unwrap())

	failed := Try(func() (int, error) { panic("kaputt") })
	var c *harmony.Caught
	require.ErrorAs(t, failed.UnwrapAlt(), &c)
	assert.PanicsWithValue(t, "kaputt", c.Rethrow)

	msg := Match(failed,
		func(int) string { return "" },
		func(err error) string { return err.Error() })
	assert.Equal(t, "kaputt", msg)
}

func TestAwait(t *testing.T) {
	ctx := context.Background()
	fut := harmony.Async(ctx, func(ctx context.Context) (int, error) { return 6, nil })
	m := Map(Await(fut), func(x int) int { return x * 7 })
	assert.Equal(t, 42, m.Unwrap())

	boom := errors.New("boom")
	failed := Await(harmony.Async(ctx, func(ctx context.Context) (int, error) { return 0, boom }))
	assert.ErrorIs(t, failed.UnwrapAlt(), boom)
}

func TestAuto(t *testing.T) {
	n := 3
	m, err := Auto[int](&n)
	require.NoError(t, err)
	assert.True(t, m.Borrowed())
	m.Map(func(x int) int { return x * 3 })
	assert.Equal(t, 9, n)

	xs := []int{1, 2}
	lm, err := Auto[int](xs)
	require.NoError(t, err)
	assert.False(t, lm.Borrowed())
	lm.Map(func(x int) int { return -x })
	assert.Equal(t, []int{1, 2}, xs)
	assert.Equal(t, []int{-1, -2}, lm.Slot().(harmony.Sequence[int]).Elements())

	_, err = Auto[int]("nope")
	assert.ErrorIs(t, err, harmony.ErrUnsupported)
}
