package stream

import "context"

// Map transforms each value using fn.
func Map[I, O any](s *Stream[I], fn func(context.Context, I) (O, error)) *Stream[O] {
	return New(func(ctx context.Context) (O, bool, error) {
		var zero O
		v, ok, err := s.Read(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		o, err := fn(ctx, v)
		if err != nil {
			return zero, false, err
		}
		return o, true, nil
	})
}

// Filter keeps only values that satisfy the predicate.
func Filter[T any](s *Stream[T], fn func(T) bool) *Stream[T] {
	return New(func(ctx context.Context) (T, bool, error) {
		for {
			v, ok, err := s.Read(ctx)
			if err != nil || !ok {
				return v, false, err
			}
			if fn(v) {
				return v, true, nil
			}
		}
	})
}

// Tap calls fn as a side-effect for each value, then passes the value
// through unchanged. Use for logging, metrics, or mid-stream publishing.
func Tap[T any](s *Stream[T], fn func(context.Context, T) error) *Stream[T] {
	return New(func(ctx context.Context) (T, bool, error) {
		v, ok, err := s.Read(ctx)
		if err != nil || !ok {
			return v, ok, err
		}
		if err := fn(ctx, v); err != nil {
			var zero T
			return zero, false, err
		}
		return v, true, nil
	})
}

// Fold accumulates all values into a single result.
// The returned stream yields exactly one value: the final accumulator.
func Fold[T, R any](s *Stream[T], init R, fn func(R, T) R) *Stream[R] {
	acc := init
	emitted := false
	return New(func(ctx context.Context) (R, bool, error) {
		var zero R
		if emitted {
			return zero, false, nil
		}
		for {
			v, ok, err := s.Read(ctx)
			if err != nil {
				return zero, false, err
			}
			if !ok {
				emitted = true
				return acc, true, nil
			}
			acc = fn(acc, v)
		}
	})
}

// Concat joins multiple streams sequentially. All values from the first
// stream are yielded before the second, and so on.
func Concat[T any](streams ...*Stream[T]) *Stream[T] {
	index := 0
	return New(func(ctx context.Context) (T, bool, error) {
		for index < len(streams) {
			v, ok, err := streams[index].Read(ctx)
			if err != nil {
				return v, false, err
			}
			if ok {
				return v, true, nil
			}
			index++
		}
		var zero T
		return zero, false, nil
	})
}

// Take yields at most n values from s.
func Take[T any](s *Stream[T], n int) *Stream[T] {
	taken := 0
	return New(func(ctx context.Context) (T, bool, error) {
		var zero T
		if taken >= n {
			return zero, false, nil
		}
		v, ok, err := s.Read(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		taken++
		return v, true, nil
	})
}
