// Package mass runs list-shaped chaining steps on a pool of workers.
//
// It is the concurrent counterpart of binding over a harmony.Sequence:
// callbacks run in parallel, results are placed in input order. Worker count
// and error policy come from the context (see core.WithWorkerOptions and
// core.WithProcessOptions). Panics raised by callbacks are caught and
// reported as errors.
package mass
