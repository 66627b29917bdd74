package harmony

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boxed struct {
	v   int
	set bool
}

func (b boxed) Value() int     { return b.v }
func (b boxed) HasValue() bool { return b.set }

type twoFaced struct{}

func (twoFaced) Value() int  { return 1 }
func (twoFaced) Unwrap() int { return 2 }

type coin struct {
	heads bool
}

func (c coin) Index() int {
	if c.heads {
		return 1
	}
	return 0
}

func (c coin) Alternative(i int) any {
	if i == 1 {
		return "heads"
	}
	return "tails"
}

type promised struct {
	v   string
	err error
}

func (p promised) Get() (string, error) { return p.v, p.err }

func TestProbeStrategies(t *testing.T) {
	n := 1
	cases := []struct {
		name string
		v    any
		want Strategy
	}{
		{"pointer", &n, StrategyDeref},
		{"pointer to option", &Option[int]{}, StrategyDeref},
		{"value accessor", boxed{v: 3, set: true}, StrategyValue},
		{"unwrap accessor", Some(3), StrategyUnwrap},
		{"slice", []int{1}, StrategyRange},
		{"array", [2]int{1, 2}, StrategyRange},
		{"variant", coin{heads: true}, StrategyVariant},
		{"future", promised{v: "ok"}, StrategyFuture},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			capa, err := Probe(c.v)
			require.NoError(t, err)
			assert.Equal(t, c.want, capa.Strategy)
			assert.True(t, CanExtract(c.v))
		})
	}
}

func TestProbeCapabilities(t *testing.T) {
	c, err := Probe(Fail[int](errors.New("x")))
	require.NoError(t, err)
	assert.Equal(t, StrategyUnwrap, c.Strategy)
	assert.True(t, c.ValueAccessor)
	assert.True(t, c.ErrorAccessor)
	assert.True(t, c.EmptinessCheck)
	assert.False(t, c.Deref)

	var p *int
	c, err = Probe(p)
	require.NoError(t, err)
	assert.True(t, c.Deref)
	assert.True(t, c.EmptinessCheck)
}

func TestProbeAmbiguousAndUnsupported(t *testing.T) {
	_, err := Probe(twoFaced{})
	assert.ErrorIs(t, err, ErrAmbiguous)
	assert.False(t, CanExtract(twoFaced{}))

	_, err = Probe(42)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Probe(nil)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestExtract(t *testing.T) {
	n := 10
	v, err := ExtractAs[int](&n)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	v, err = ExtractAs[int](boxed{v: 3, set: true})
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = ExtractAs[int](boxed{v: 3})
	assert.ErrorIs(t, err, ErrInvalid)

	v, err = ExtractAs[int]([]int{7, 8})
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = Extract([]int{})
	assert.ErrorIs(t, err, ErrInvalid)

	s, err := ExtractAs[string](coin{heads: true})
	require.NoError(t, err)
	assert.Equal(t, "heads", s)

	_, err = Extract(coin{})
	assert.ErrorIs(t, err, ErrInvalid)

	s, err = ExtractAs[string](promised{v: "done"})
	require.NoError(t, err)
	assert.Equal(t, "done", s)

	boom := errors.New("boom")
	_, err = Extract(promised{err: boom})
	assert.ErrorIs(t, err, boom)

	var nilp *int
	_, err = Extract(nilp)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = ExtractAs[string](&n)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Extract(None[int]())
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValid(t *testing.T) {
	ok, err := Valid([]int{})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Valid(Some(1))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = Valid(42)
	assert.Error(t, err)
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "deref", StrategyDeref.String())
	assert.Equal(t, "future", StrategyFuture.String())
	assert.Equal(t, "none", StrategyNone.String())
}
