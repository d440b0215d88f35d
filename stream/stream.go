package stream

import "context"

// Source produces one value per call. Returns (zero, false, nil) when
// exhausted. A source that returned an error may be called again; a source
// that reported exhaustion is never called again.
type Source[T any] func(ctx context.Context) (T, bool, error)

// Stream is a pull-based handle over a Source with pushback support.
// It is not safe for concurrent use: a stream has a single consumer.
type Stream[T any] struct {
	src    Source[T]
	unread []T
	done   bool
	closer func() error
}

// New wraps a Source in a Stream.
func New[T any](src Source[T]) *Stream[T] {
	return &Stream[T]{src: src}
}

// NewWithCloser wraps a Source in a Stream that invokes closer on Close.
func NewWithCloser[T any](src Source[T], closer func() error) *Stream[T] {
	return &Stream[T]{src: src, closer: closer}
}

// result carries a value or error through a channel.
type result[T any] struct {
	val T
	ok  bool
	err error
}

// Read pulls the next value. Returns (zero, false, nil) when the stream is
// exhausted; exhaustion is sticky, so every later Read reports it again.
// Values pushed back with Unread are served first, even after exhaustion.
// An error does not exhaust the stream — the caller may Read again.
func (s *Stream[T]) Read(ctx context.Context) (T, bool, error) {
	if n := len(s.unread); n > 0 {
		v := s.unread[n-1]
		s.unread = s.unread[:n-1]
		return v, true, nil
	}
	var zero T
	if s.done {
		return zero, false, nil
	}
	v, ok, err := s.src(ctx)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		s.done = true
		return zero, false, nil
	}
	return v, true, nil
}

// Unread pushes a value back onto the stream. Pushed-back values are served
// in LIFO order before the underlying source.
func (s *Stream[T]) Unread(v T) {
	s.unread = append(s.unread, v)
}

// Peek returns the next value without consuming it.
func (s *Stream[T]) Peek(ctx context.Context) (T, bool, error) {
	v, ok, err := s.Read(ctx)
	if ok {
		s.Unread(v)
	}
	return v, ok, err
}

// Exhausted reports whether the stream is terminal with nothing pushed back.
func (s *Stream[T]) Exhausted() bool {
	return s.done && len(s.unread) == 0
}

// Close releases any resources held by the underlying source.
func (s *Stream[T]) Close() error {
	if s.closer != nil {
		return s.closer()
	}
	return nil
}
