package stream

import (
	"context"
	"fmt"
)

// SourceError tags an error raised by one of the sources of a Merge with the
// index of the source that raised it. Unwrap returns the worker's error value
// unchanged, so errors.Is and errors.As keep working across the goroutine
// boundary.
type SourceError struct {
	Source int
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("merge source %d: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Merge fans the given sources into one stream. One goroutine is spawned per
// source; values are emitted in whatever order they become available. Order
// within a single source is preserved; there is no ordering across sources.
//
// An error raised by a source is forwarded to the consumer wrapped in a
// SourceError and the worker keeps pulling — a failing source keeps
// contributing until it exhausts. Per-source exhaustion is invisible to the
// consumer; the merged stream exhausts only after the last source does.
//
// Workers hand values over on an unbuffered channel, so abandoning the
// merged stream without draining it leaves them blocked. Cancel ctx to
// release them, or drain the stream fully.
func Merge[T any](ctx context.Context, sources ...*Stream[T]) *Stream[T] {
	if len(sources) == 0 {
		return Empty[T]()
	}

	ch := make(chan result[T]) // rendezvous: at most one value in flight
	for i, src := range sources {
		go func(i int, src *Stream[T]) {
			for {
				val, ok, err := src.Read(ctx)
				if err != nil {
					select {
					case ch <- result[T]{err: &SourceError{Source: i, Err: err}}:
					case <-ctx.Done():
						return
					}
					continue
				}
				if !ok {
					// Exhaustion marker: ok=false, err=nil.
					select {
					case ch <- result[T]{}:
					case <-ctx.Done():
					}
					return
				}
				select {
				case ch <- result[T]{val: val, ok: true}:
				case <-ctx.Done():
					return
				}
			}
		}(i, src)
	}

	// live is touched only by the single consumer below; markers serialize
	// through the channel, so concurrent exhaustions cannot race it.
	live := len(sources)
	return New(func(rctx context.Context) (T, bool, error) {
		var zero T
		for {
			select {
			case r := <-ch:
				if r.err != nil {
					// Re-raised as received; the merged stream stays live
					// and a later Read resumes with the next arrival.
					return zero, false, r.err
				}
				if r.ok {
					return r.val, true, nil
				}
				live--
				if live == 0 {
					return zero, false, nil
				}
			case <-rctx.Done():
				return zero, false, rctx.Err()
			}
		}
	})
}
