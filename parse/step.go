package parse

// Parser consumes one chunk of input and reports how the parse advanced.
// A nil chunk signals end of input; parsers never receive zero-length
// non-nil chunks.
type Parser[T any] func(chunk []byte) Step[T]

// Step is the outcome of feeding one chunk to a Parser: Done, Partial,
// or Failed.
type Step[T any] interface {
	step()
}

// Done reports a completed parse. Rest holds any unconsumed remainder of
// the chunk that produced the value.
type Done[T any] struct {
	Value T
	Rest  []byte
}

// Partial reports that the parser needs more input. Next accepts the
// following chunk, or nil for end of input.
type Partial[T any] struct {
	Next Parser[T]
}

// Failed reports a parse failure with the context labels active at the
// point of failure.
type Failed[T any] struct {
	Contexts []string
	Message  string
}

func (Done[T]) step()    {}
func (Partial[T]) step() {}
func (Failed[T]) step()  {}
