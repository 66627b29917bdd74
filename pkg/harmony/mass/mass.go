package mass

import (
	"context"
	"errors"
	"runtime"

	"github.com/ib-77/harmony/pkg/harmony"
	"github.com/ib-77/harmony/pkg/harmony/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'harmony'.
func tracer() tracing.Trace {
	return tracing.Select("harmony")
}

// Map applies f to every element of seq on a worker pool and returns the
// results in input order. Failures of f are joined into the error, or only
// the first one is reported when break-on-error is enabled. A cancelled
// context yields a cancelled Result.
func Map[T, U any](ctx context.Context, seq harmony.Sequence[T],
	f func(ctx context.Context, in T) U) harmony.Result[[]U] {

	in := seq.Elements()
	workers := core.GetWorkerMaxCount(ctx, runtime.NumCPU())
	tracer().Debugf("mass: mapping %d elements with %d workers", len(in), workers)

	inCh, fed := core.Feed(ctx, in)
	outCh := core.Run(ctx, inCh,
		func(ctx context.Context, x T) harmony.Sachet[error, U] {
			return harmony.TryCall(func() U {
				return f(ctx, x)
			})
		}, workers)

	outs, err := core.Collect(ctx, outCh, len(in))
	<-fed
	if err != nil {
		return harmony.Cancel[[]U](err)
	}

	breakOnError := core.IsBreakOnErrorEnabled(ctx, false)
	res := make([]U, len(outs))
	var errs []error
	for i, o := range outs {
		v, ok := o.Get()
		if !ok {
			if breakOnError {
				return harmony.Fail[[]U](o.UnwrapAlt())
			}
			errs = append(errs, o.UnwrapAlt())
			continue
		}
		res[i] = v
	}
	if len(errs) > 0 {
		return harmony.Fail[[]U](errors.Join(errs...))
	}
	return harmony.Ok(res)
}

// Bind is the concurrent list bind: f runs for every element and the valid
// results are assigned back to seq in input order. If any call fails or ctx
// is cancelled, seq is left unchanged and the error is returned.
func Bind[T any](ctx context.Context, seq harmony.Sequence[T],
	f func(ctx context.Context, in T) harmony.Maybe[T]) error {

	res := Map(ctx, seq, f)
	if !res.IsSuccess() {
		return res.Err()
	}

	out := make([]T, 0, len(res.Result()))
	for _, r := range res.Result() {
		if r != nil && r.Validate() {
			out = append(out, r.Unwrap())
		}
	}
	seq.Assign(out)
	return nil
}

// AwaitAll blocks on every future in order and collects their values.
// Failures are joined, or the first one is returned when break-on-error is
// enabled. If ctx is done first, the remaining futures are not consumed.
func AwaitAll[T any](ctx context.Context, futures ...*harmony.Future[T]) harmony.Result[[]T] {
	breakOnError := core.IsBreakOnErrorEnabled(ctx, false)
	out := make([]T, len(futures))
	var errs []error

	for i, fut := range futures {
		select {
		case <-ctx.Done():
			return harmony.Cancel[[]T](ctx.Err())
		case <-fut.Done():
		}

		v, err := fut.Wait()
		if err != nil {
			if breakOnError {
				return harmony.Fail[[]T](err)
			}
			errs = append(errs, err)
			continue
		}
		out[i] = v
	}
	if len(errs) > 0 {
		return harmony.Fail[[]T](errors.Join(errs...))
	}
	return harmony.Ok(out)
}
