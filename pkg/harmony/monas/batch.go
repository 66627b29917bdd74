package monas

import (
	"github.com/ib-77/harmony/pkg/harmony"
)

// batch is the owned list storage for chains whose alternate type is not
// harmony.Unit. Like harmony.List it is invalid when empty; entering the
// alternate state drops the elements and keeps the payload.
type batch[L, R any] struct {
	items []R
	alt   L
}

func (b *batch[L, R]) Validate() bool {
	return len(b.items) > 0
}

func (b *batch[L, R]) Unwrap() R {
	if len(b.items) == 0 {
		panic(&harmony.ContractError{Op: "Unwrap", Type: "monas.batch", Err: harmony.ErrInvalid})
	}
	return b.items[0]
}

func (b *batch[L, R]) UnwrapAlt() L {
	if len(b.items) > 0 {
		panic(&harmony.ContractError{Op: "UnwrapAlt", Type: "monas.batch", Err: harmony.ErrValid})
	}
	return b.alt
}

func (b *batch[L, R]) Rewrap(r R) {
	b.items = []R{r}
}

func (b *batch[L, R]) RewrapAlt(l L) {
	b.items, b.alt = []R{}, l
}

func (b *batch[L, R]) Elements() []R {
	return b.items
}

func (b *batch[L, R]) Assign(items []R) {
	b.items = items
}

var (
	_ harmony.Slot[error, int] = (*batch[error, int])(nil)
	_ harmony.Sequence[int]    = (*batch[error, int])(nil)
)
