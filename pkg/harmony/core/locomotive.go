package core

import (
	"context"
	"sync"
)

// Locomotive takes jobs from inputCh, runs engine on each and sends the
// result with the same index to outCh, until inputCh is closed or ctx is
// done.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan Job[In], outCh chan<- Job[Out],
	engine func(ctx context.Context, input In) Out, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			pr := engine(ctx, in.Value)

			select {
			case <-ctx.Done():
				return
			case outCh <- Job[Out]{Index: in.Index, Value: pr}:
			}
		}
	}
}

// Run starts lines locomotives on inputCh. The returned channel is closed
// once all of them have stopped.
func Run[In, Out any](ctx context.Context, inputCh <-chan Job[In],
	engine func(ctx context.Context, input In) Out, lines int) <-chan Job[Out] {

	if lines < 1 {
		lines = 1
	}
	out := make(chan Job[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, engine, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
