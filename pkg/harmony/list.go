package harmony

// List adapts a slice. The empty list is the invalid state and Unwrap reads
// the front element. Chaining treats a List as a Sequence and binds every
// element.
type List[T any] struct {
	items *[]T
}

// NewList returns a List owning a copy of items.
func NewList[T any](items ...T) *List[T] {
	s := append(make([]T, 0, len(items)), items...)
	return &List[T]{items: &s}
}

// BorrowList returns a List operating on *p, so every change is visible
// through p.
func BorrowList[T any](p *[]T) *List[T] {
	if p == nil {
		p = new([]T)
	}
	return &List[T]{items: p}
}

func (l *List[T]) Len() int {
	return len(*l.items)
}

func (l *List[T]) Validate() bool {
	return len(*l.items) > 0
}

func (l *List[T]) Unwrap() T {
	if len(*l.items) == 0 {
		violation("Unwrap", l, ErrInvalid)
	}
	return (*l.items)[0]
}

func (l *List[T]) UnwrapAlt() Unit {
	if len(*l.items) > 0 {
		violation("UnwrapAlt", l, ErrValid)
	}
	return Unit{}
}

// Rewrap replaces the contents with the single element v.
func (l *List[T]) Rewrap(v T) {
	*l.items = []T{v}
}

func (l *List[T]) RewrapAlt(Unit) {
	*l.items = []T{}
}

// Elements returns the live slice.
func (l *List[T]) Elements() []T {
	return *l.items
}

func (l *List[T]) Assign(items []T) {
	*l.items = items
}

var (
	_ Slot[Unit, int] = (*List[int])(nil)
	_ Sequence[int]   = (*List[int])(nil)
)
