// Package stream provides a pull-based stream abstraction with pushback,
// channel pipes, and a concurrent fan-in combinator.
//
// A Stream is lazy — no work happens until values are pulled via Read,
// Collect, Drain, or ForEach. Each pull asks the underlying source for one value,
// providing natural backpressure without explicit flow control.
//
// End-of-stream is idempotent: once a stream reports exhaustion, every
// further Read reports exhaustion again. Values pushed back with Unread are
// served before the source, which lets consumers such as incremental parsers
// return unconsumed input to the stream.
//
// # Combinators
//
// Synchronous (single-goroutine):
//
//   - Map: transform each value
//   - Filter: keep values matching a predicate
//   - Tap: side-effect without altering the value
//   - Fold: accumulate all values into one result
//   - Concat: join streams sequentially
//   - Take: cap the number of values
//
// Concurrent (multi-goroutine):
//
//   - Merge: fan many streams into one, first ready first served
//
// # Pipes
//
// Pipe allocates one fresh channel and wraps both ends as a connected
// Stream/Sink pair. Both ends block, so the writer and reader must run on
// different goroutines.
//
// Streams are not safe for concurrent use; each stream has a single
// consumer. Merge is the supported way to consume many streams at once.
package stream
