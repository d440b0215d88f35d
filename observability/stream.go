package observability

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/streamkit/stream"
)

// InstrumentStream wraps a stream so every read is counted and timed on the
// given StreamMetrics. The stream is marked open immediately and closed when
// it is exhausted or its Close is called, whichever comes first.
//
// The returned stream has the same single-consumer contract as the input.
func InstrumentStream[T any](ctx context.Context, m *StreamMetrics, name string, s *stream.Stream[T]) *stream.Stream[T] {
	m.RecordStreamOpen(ctx, name)
	closed := false
	markClosed := func(ctx context.Context) {
		if !closed {
			closed = true
			m.RecordStreamClose(ctx, name)
		}
	}

	src := func(rctx context.Context) (T, bool, error) {
		start := time.Now()
		v, ok, err := s.Read(rctx)
		switch {
		case err != nil:
			m.RecordError(rctx, name, errType(err))
			SetSpanError(rctx, err)
		case ok:
			m.RecordItem(rctx, name, time.Since(start))
		default:
			markClosed(rctx)
		}
		return v, ok, err
	}

	return stream.NewWithCloser(src, func() error {
		markClosed(ctx)
		return s.Close()
	})
}

// ObserveMerge annotates the current span with the source count of a merge.
func ObserveMerge(ctx context.Context, sourceCount int) {
	span := SpanFromContext(ctx)
	if span != nil && span.IsRecording() {
		span.SetAttributes(attribute.Int("merge.sources", sourceCount))
	}
}

// errType maps an error to a coarse metric label.
func errType(err error) string {
	var se *stream.SourceError
	switch {
	case errors.As(err, &se):
		return "source"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "context"
	default:
		return "other"
	}
}
