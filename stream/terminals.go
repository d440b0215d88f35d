package stream

import "context"

// Collect pulls all values from s and returns them as a slice.
// On error it returns the values collected so far alongside the error.
func Collect[T any](ctx context.Context, s *Stream[T]) ([]T, error) {
	var out []T
	for {
		v, ok, err := s.Read(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// Drain pulls all values from s and passes each to sink.
func Drain[T any](ctx context.Context, s *Stream[T], sink func(context.Context, T) error) error {
	for {
		v, ok, err := s.Read(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := sink(ctx, v); err != nil {
			return err
		}
	}
}

// ForEach pulls all values and calls fn for each. Convenience wrapper around Drain.
func ForEach[T any](ctx context.Context, s *Stream[T], fn func(context.Context, T) error) error {
	return Drain(ctx, s, fn)
}
