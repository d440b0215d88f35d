package parse

import (
	"context"
	"fmt"

	"github.com/kbukum/streamkit/stream"
)

// Once pulls chunks from src and feeds them to p until the parse completes.
//
// Zero-length chunks are skipped — only end-of-stream ends the feed loop.
// When the parse completes mid-chunk, the unconsumed remainder is pushed
// back onto src so the next consumer sees it first. When src exhausts while
// the parser still needs input, the parser is fed a nil chunk once and
// decides the outcome itself; a parser that still needs more at that point
// is an incomplete-input failure. A Failed step surfaces as *Error with the
// stream left at the point of failure.
func Once[T any](ctx context.Context, src *stream.Stream[[]byte], p Parser[T]) (T, error) {
	var zero T
	cur := p
	for {
		chunk, ok, err := src.Read(ctx)
		if err != nil {
			return zero, err
		}
		if !ok {
			return resolveEnd(cur, src)
		}
		if len(chunk) == 0 {
			continue
		}
		switch s := cur(chunk).(type) {
		case Done[T]:
			if len(s.Rest) > 0 {
				src.Unread(s.Rest)
			}
			return s.Value, nil
		case Partial[T]:
			cur = s.Next
		case Failed[T]:
			return zero, &Error{Contexts: s.Contexts, Message: s.Message}
		default:
			return zero, &Error{Message: fmt.Sprintf("parser returned unexpected step %T", s)}
		}
	}
}

// resolveEnd feeds the end-of-input signal and maps the parser's final
// answer to a result.
func resolveEnd[T any](cur Parser[T], src *stream.Stream[[]byte]) (T, error) {
	var zero T
	switch s := cur(nil).(type) {
	case Done[T]:
		if len(s.Rest) > 0 {
			src.Unread(s.Rest)
		}
		return s.Value, nil
	case Partial[T]:
		return zero, incompleteError()
	case Failed[T]:
		return zero, &Error{Contexts: s.Contexts, Message: s.Message}
	default:
		return zero, &Error{Message: fmt.Sprintf("parser returned unexpected step %T", s)}
	}
}

// All returns a lazily-pulled stream of values, re-running p against src for
// each pull. When src is exhausted with nothing pending, the returned stream
// exhausts cleanly instead of running the parser against empty input; its
// exhaustion is idempotent. A parse failure surfaces on the pull that hit it
// and is not resynchronized.
func All[T any](src *stream.Stream[[]byte], p Parser[T]) *stream.Stream[T] {
	return stream.New(func(ctx context.Context) (T, bool, error) {
		var zero T
		for {
			chunk, ok, err := src.Read(ctx)
			if err != nil {
				return zero, false, err
			}
			if !ok {
				return zero, false, nil
			}
			if len(chunk) > 0 {
				src.Unread(chunk)
				break
			}
		}
		v, err := Once(ctx, src, p)
		if err != nil {
			return zero, false, err
		}
		return v, true, nil
	})
}
