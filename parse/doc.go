// Package parse drives incremental parsers against byte-chunk streams.
//
// A Parser consumes one chunk at a time and reports how the parse advanced
// through the Step sum type: Done carries a value plus any unconsumed
// remainder, Partial carries a continuation that accepts the next chunk, and
// Failed carries the context labels and message of a parse failure. Parsers
// are plain values — re-running one is just calling it again — which is what
// makes the continuous adapter (All) trivial.
//
// A nil chunk signals end of input. The adapters skip zero-length chunks, so
// a parser never sees an empty non-nil chunk and can treat chunk == nil as
// its at-end query.
//
// Once runs a parser to a single value, pushing unconsumed input back onto
// the stream. All wraps the same loop as a lazily-pulled stream of values,
// re-running the parser for each pull until the source exhausts.
package parse
