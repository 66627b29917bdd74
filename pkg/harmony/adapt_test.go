package harmony

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reader struct{ v int }

func (r reader) Unwrap() int { return r.v }

func TestAdaptBorrowsPointers(t *testing.T) {
	n := 1
	s, err := Adapt[int](&n)
	require.NoError(t, err)
	s.Rewrap(5)
	assert.Equal(t, 5, n)

	xs := []int{1, 2}
	s, err = Adapt[int](&xs)
	require.NoError(t, err)
	s.RewrapAlt(Unit{})
	assert.Empty(t, xs)
}

func TestAdaptPassesSlotsThrough(t *testing.T) {
	o := Some(3)
	s, err := Adapt[int](&o)
	require.NoError(t, err)
	assert.Same(t, &o, s.(*Option[int]))
}

func TestAdaptSnapshots(t *testing.T) {
	xs := []int{4, 5}
	s, err := Adapt[int](xs)
	require.NoError(t, err)
	_, isList := s.(*List[int])
	assert.True(t, isList)
	s.Rewrap(9)
	assert.Equal(t, []int{4, 5}, xs)

	s, err = Adapt[int](Some(8))
	require.NoError(t, err)
	assert.Equal(t, 8, s.Unwrap())

	s, err = Adapt[int](None[int]())
	require.NoError(t, err)
	assert.False(t, s.Validate())

	s, err = Adapt[int](reader{v: 6})
	require.NoError(t, err)
	assert.Equal(t, 6, s.Unwrap())
	_, isPlain := s.(*Identity[int])
	assert.True(t, isPlain)
}

func TestAdaptThroughProbe(t *testing.T) {
	s, err := Adapt[int](boxed{v: 2, set: true})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Unwrap())

	s, err = Adapt[int](boxed{})
	require.NoError(t, err)
	assert.False(t, s.Validate())

	cs, err := Adapt[string](coin{heads: true})
	require.NoError(t, err)
	assert.Equal(t, "heads", cs.Unwrap())

	_, err = Adapt[int](twoFaced{})
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = Adapt[int]("text")
	assert.ErrorIs(t, err, ErrUnsupported)
}

type maybeTwice struct{ v int }

func (m maybeTwice) Validate() bool { return true }
func (m maybeTwice) Unwrap() int    { return m.v }
func (m maybeTwice) Value() int     { return m.v * 2 }

func TestAdaptRejectsAmbiguousMaybe(t *testing.T) {
	var m Maybe[int] = maybeTwice{v: 3}
	_, err := Adapt[int](m)
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = Adapt[int](twoFaced{})
	assert.ErrorIs(t, err, ErrAmbiguous)

	s, err := Adapt[int](reader{v: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Unwrap())
}
