package harmony

// TryCatch calls f and converts its outcome into a Sachet: a normal return
// becomes the right value, a returned error or a panic becomes a *Caught in
// the left state. It is the single place where failures raised by callbacks
// turn into ordinary data.
func TryCatch[R any](f func() (R, error)) (out Sachet[error, R]) {
	defer func() {
		if r := recover(); r != nil {
			c := caughtPanic(r)
			tracer().Debugf("caught panic %v (token %s)", r, c.ID())
			out = Left[error, R](c)
		}
	}()

	v, err := f()
	if err != nil {
		c := caughtError(err)
		tracer().Debugf("caught error %v (token %s)", err, c.ID())
		return Left[error, R](c)
	}
	return Right[error](v)
}

// TryCall is TryCatch for callables which fail only by panicking.
func TryCall[R any](f func() R) Sachet[error, R] {
	return TryCatch(func() (R, error) {
		return f(), nil
	})
}

// TryCatchWith is TryCatch for a callable taking one argument.
func TryCatchWith[A, R any](f func(A) (R, error), a A) Sachet[error, R] {
	return TryCatch(func() (R, error) {
		return f(a)
	})
}
