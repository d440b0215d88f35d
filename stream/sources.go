package stream

import (
	"context"
	"io"
)

// DefaultChunkSize is the chunk size FromReader uses when none is given.
const DefaultChunkSize = 32 * 1024

// Empty returns an already-exhausted stream.
func Empty[T any]() *Stream[T] {
	return New(func(context.Context) (T, bool, error) {
		var zero T
		return zero, false, nil
	})
}

// FromSlice returns a stream over the given values.
func FromSlice[T any](items []T) *Stream[T] {
	index := 0
	return New(func(context.Context) (T, bool, error) {
		if index >= len(items) {
			var zero T
			return zero, false, nil
		}
		v := items[index]
		index++
		return v, true, nil
	})
}

// FromFunc returns a stream over successive calls to fn. Once fn reports
// exhaustion the stream latches and fn is never called again.
func FromFunc[T any](fn func() (T, bool, error)) *Stream[T] {
	return New(func(context.Context) (T, bool, error) {
		return fn()
	})
}

// FromChannel returns a stream that performs one blocking receive per Read.
// The stream exhausts when the channel is closed.
func FromChannel[T any](ch <-chan T) *Stream[T] {
	return New(func(ctx context.Context) (T, bool, error) {
		var zero T
		select {
		case v, open := <-ch:
			if !open {
				return zero, false, nil
			}
			return v, true, nil
		case <-ctx.Done():
			return zero, false, ctx.Err()
		}
	})
}

// FromReader returns a byte-chunk stream over r, reading up to chunkSize
// bytes per pull. chunkSize <= 0 uses DefaultChunkSize. The stream exhausts
// on io.EOF; other read errors surface to the caller. A read that returns
// both data and an error delivers the data first and holds the error for
// the following pull, so readers that do not repeat their error lose
// nothing.
func FromReader(r io.Reader, chunkSize int) *Stream[[]byte] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	var pending error
	return New(func(context.Context) ([]byte, bool, error) {
		if pending != nil {
			err := pending
			pending = nil
			if err == io.EOF {
				return nil, false, nil
			}
			return nil, false, err
		}
		buf := make([]byte, chunkSize)
		n, err := r.Read(buf)
		if n > 0 {
			if err != nil {
				pending = err
			}
			return buf[:n], true, nil
		}
		if err == io.EOF {
			return nil, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		// Zero-byte read with no error: surface as an empty chunk so the
		// consumer does not mistake it for end-of-stream.
		return []byte{}, true, nil
	})
}
