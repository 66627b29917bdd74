package core

import (
	"context"
)

// Job is a value tagged with its position in the input.
type Job[T any] struct {
	Index int
	Value T
}

// Feed sends values as indexed jobs, stopping early when ctx is done. The
// second channel is closed once the feeding goroutine has returned; callers
// wait on it before handing results back.
func Feed[T any](ctx context.Context, values []T) (<-chan Job[T], <-chan struct{}) {
	in := make(chan Job[T])
	fed := make(chan struct{})

	go func() {
		defer close(fed)
		defer close(in)

		for i, v := range values {
			if ctx.Err() != nil {
				tracer().Debugf("feed: stopped at %d of %d", i, len(values))
				return
			}

			select {
			case in <- Job[T]{Index: i, Value: v}:
			case <-ctx.Done():
				tracer().Debugf("feed: stopped at %d of %d", i, len(values))
				return
			}
		}
	}()

	return in, fed
}

// Collect drains out and places every job at its index. If fewer than n
// jobs arrive it returns the context's error.
func Collect[T any](ctx context.Context, out <-chan Job[T], n int) ([]T, error) {
	res := make([]T, n)
	got := 0
	for j := range out {
		res[j.Index] = j.Value
		got++
	}
	if got < n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, context.Canceled
	}
	return res, nil
}
