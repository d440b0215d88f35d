package stream

import (
	"context"
	"io"

	"github.com/kbukum/streamkit/errors"
)

// Sink consumes values one at a time. Like Stream, a sink has a single
// writer and is not safe for concurrent use.
type Sink[T any] struct {
	send   func(ctx context.Context, v T) error
	closer func() error
	closed bool
}

// NewSink wraps a send function in a Sink.
func NewSink[T any](send func(ctx context.Context, v T) error) *Sink[T] {
	return &Sink[T]{send: send}
}

// Write pushes one value into the sink. Writing to a closed sink fails
// with a STREAM_CLOSED error.
func (s *Sink[T]) Write(ctx context.Context, v T) error {
	if s.closed {
		return errors.StreamClosed("write")
	}
	return s.send(ctx, v)
}

// Close signals that no more values will be written. Close is idempotent;
// only the first call reaches the underlying closer.
func (s *Sink[T]) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.closer != nil {
		return s.closer()
	}
	return nil
}

// ToChannel returns a sink that performs one blocking send per Write.
// Close closes the channel.
func ToChannel[T any](ch chan<- T) *Sink[T] {
	return &Sink[T]{
		send: func(ctx context.Context, v T) error {
			select {
			case ch <- v:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
		closer: func() error {
			close(ch)
			return nil
		},
	}
}

// ToWriter returns a sink that writes each chunk to w.
func ToWriter(w io.Writer) *Sink[[]byte] {
	return NewSink(func(_ context.Context, chunk []byte) error {
		_, err := w.Write(chunk)
		return err
	})
}

// Pipe allocates one fresh unbuffered channel and wraps both ends as a
// connected Stream/Sink pair. Both ends block, so the writer and reader must
// run on different goroutines.
func Pipe[T any]() (*Stream[T], *Sink[T]) {
	ch := make(chan T)
	return FromChannel(ch), ToChannel(ch)
}

// PipeBuffered is Pipe with a buffered channel of the given size.
func PipeBuffered[T any](size int) (*Stream[T], *Sink[T]) {
	if size < 0 {
		size = 0
	}
	ch := make(chan T, size)
	return FromChannel(ch), ToChannel(ch)
}

// Connect drains src into dst and closes dst once src exhausts.
// The first read or write error aborts the copy without closing dst.
func Connect[T any](ctx context.Context, src *Stream[T], dst *Sink[T]) error {
	for {
		v, ok, err := src.Read(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return dst.Close()
		}
		if err := dst.Write(ctx, v); err != nil {
			return err
		}
	}
}
