package harmony

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Caught is the error token stored in the alternate state when a failure is
// converted at a TryCatch boundary. It keeps the original panic value, so
// Rethrow reproduces the failure as it was raised.
type Caught struct {
	id        uuid.UUID
	caughtAt  time.Time
	cause     error
	recovered any
	panicked  bool
}

func caughtError(err error) *Caught {
	var c *Caught
	if errors.As(err, &c) {
		return c
	}
	return &Caught{
		id:       uuid.New(),
		caughtAt: time.Now().UTC(),
		cause:    err,
	}
}

func caughtPanic(r any) *Caught {
	cause, ok := r.(error)
	if !ok {
		cause = errors.New(fmt.Sprint(r))
	}
	return &Caught{
		id:        uuid.New(),
		caughtAt:  time.Now().UTC(),
		cause:     cause,
		recovered: r,
		panicked:  true,
	}
}

func (c *Caught) Error() string {
	return c.cause.Error()
}

func (c *Caught) Unwrap() error {
	return c.cause
}

func (c *Caught) ID() uuid.UUID {
	return c.id
}

func (c *Caught) CaughtAt() time.Time {
	return c.caughtAt
}

// Panicked reports whether the failure was raised as a panic rather than
// returned as an error.
func (c *Caught) Panicked() bool {
	return c.panicked
}

// Recovered returns the original panic value, nil for returned errors.
func (c *Caught) Recovered() any {
	return c.recovered
}

// Rethrow panics with the original panic value or, for returned errors,
// with the cause.
func (c *Caught) Rethrow() {
	if c.panicked {
		panic(c.recovered)
	}
	panic(c.cause)
}
