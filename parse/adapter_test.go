package parse

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/kbukum/streamkit/stream"
)

// intParser parses one integer, skipping any leading ',' and ' ' separators.
// Digits may straddle chunk boundaries; the number ends at the first
// non-digit or at end of input.
func intParser() Parser[int] {
	var step func(acc []byte, chunk []byte) Step[int]
	step = func(acc, chunk []byte) Step[int] {
		if chunk == nil {
			if len(acc) == 0 {
				return Failed[int]{Contexts: []string{"integer"}, Message: "no digits before end of input"}
			}
			n, _ := strconv.Atoi(string(acc))
			return Done[int]{Value: n}
		}
		i := 0
		if len(acc) == 0 {
			for i < len(chunk) && (chunk[i] == ',' || chunk[i] == ' ') {
				i++
			}
		}
		start := i
		for i < len(chunk) && chunk[i] >= '0' && chunk[i] <= '9' {
			i++
		}
		acc = append(acc, chunk[start:i]...)
		if i < len(chunk) {
			if len(acc) == 0 {
				return Failed[int]{Contexts: []string{"integer"}, Message: fmt.Sprintf("unexpected byte %q", chunk[i])}
			}
			n, _ := strconv.Atoi(string(acc))
			return Done[int]{Value: n, Rest: chunk[i:]}
		}
		return Partial[int]{Next: func(c []byte) Step[int] { return step(acc, c) }}
	}
	return func(chunk []byte) Step[int] { return step(nil, chunk) }
}

// literalParser matches lit exactly, possibly across chunks.
func literalParser(lit string) Parser[string] {
	var step func(rest string, chunk []byte) Step[string]
	step = func(rest string, chunk []byte) Step[string] {
		if chunk == nil {
			return Failed[string]{Contexts: []string{"literal"}, Message: "not enough input"}
		}
		n := len(rest)
		if len(chunk) < n {
			n = len(chunk)
		}
		if string(chunk[:n]) != rest[:n] {
			return Failed[string]{
				Contexts: []string{"literal"},
				Message:  fmt.Sprintf("expected %q", lit),
			}
		}
		if n == len(rest) {
			return Done[string]{Value: lit, Rest: chunk[n:]}
		}
		return Partial[string]{Next: func(c []byte) Step[string] { return step(rest[n:], c) }}
	}
	return func(chunk []byte) Step[string] { return step(lit, chunk) }
}

func chunkStream(chunks ...string) *stream.Stream[[]byte] {
	bs := make([][]byte, len(chunks))
	for i, c := range chunks {
		bs[i] = []byte(c)
	}
	return stream.FromSlice(bs)
}

func TestOnce_SingleChunk(t *testing.T) {
	v, err := Once(context.Background(), chunkStream("123 "), intParser())
	if err != nil {
		t.Fatal(err)
	}
	if v != 123 {
		t.Errorf("got %d, want 123", v)
	}
}

func TestOnce_ChunkBoundaryIndependence(t *testing.T) {
	// Any chunking of the same input must parse to the same value.
	input := "12345,"
	chunkings := [][]string{
		{input},
		{"1", "2345,"},
		{"12", "34", "5,"},
		{"1", "2", "3", "4", "5", ","},
	}
	for _, chunks := range chunkings {
		v, err := Once(context.Background(), chunkStream(chunks...), intParser())
		if err != nil {
			t.Fatalf("chunks %v: %v", chunks, err)
		}
		if v != 12345 {
			t.Errorf("chunks %v: got %d, want 12345", chunks, v)
		}
	}
}

func TestOnce_LeftoverPushedBack(t *testing.T) {
	src := chunkStream("12,34")
	ctx := context.Background()

	v, err := Once(ctx, src, intParser())
	if err != nil {
		t.Fatal(err)
	}
	if v != 12 {
		t.Fatalf("got %d, want 12", v)
	}
	// The unconsumed ",34" must be the next thing the stream serves.
	chunk, ok, err := src.Read(ctx)
	if err != nil || !ok || string(chunk) != ",34" {
		t.Errorf("leftover: chunk=%q ok=%v err=%v", chunk, ok, err)
	}
}

func TestOnce_ResolvesAtEnd(t *testing.T) {
	// Parser still Partial when the stream ends; feeding end resolves it.
	v, err := Once(context.Background(), chunkStream("4", "2"), intParser())
	if err != nil {
		t.Fatal(err)
	}
	if v != 42 {
		t.Errorf("got %d, want 42", v)
	}
}

func TestOnce_IncompleteInput(t *testing.T) {
	_, err := Once(context.Background(), chunkStream("bo"), literalParser("bork"))
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if len(pe.Contexts) == 0 || pe.Contexts[0] != "literal" {
		t.Errorf("context chain lost: %v", pe.Contexts)
	}
}

func TestOnce_EndOfInputWhilePartial(t *testing.T) {
	// A parser that answers Partial even to the end-of-input signal is an
	// incomplete-input failure.
	stubborn := func(chunk []byte) Step[int] {
		var again Parser[int]
		again = func([]byte) Step[int] { return Partial[int]{Next: again} }
		return Partial[int]{Next: again}
	}
	_, err := Once(context.Background(), chunkStream("x"), stubborn)
	if !IsIncomplete(err) {
		t.Errorf("expected incomplete-input error, got %v", err)
	}
}

func TestOnce_Failure(t *testing.T) {
	_, err := Once(context.Background(), chunkStream("xxxxx"), literalParser("bork"))
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if !strings.Contains(pe.Message, "bork") {
		t.Errorf("message %q should name the expected literal", pe.Message)
	}
	if pe.Incomplete {
		t.Error("mismatch is not an incomplete-input failure")
	}
}

func TestOnce_EmptyChunksSkipped(t *testing.T) {
	withEmpties := []string{"", "1", "23", "", ", 4"}
	withoutEmpties := []string{"1", "23", ", 4"}

	a, err := Once(context.Background(), chunkStream(withEmpties...), intParser())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Once(context.Background(), chunkStream(withoutEmpties...), intParser())
	if err != nil {
		t.Fatal(err)
	}
	if a != b || a != 123 {
		t.Errorf("empty chunks changed the result: with=%d without=%d", a, b)
	}
}

func TestOnce_SourceErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	src := stream.New(func(context.Context) ([]byte, bool, error) {
		return nil, false, boom
	})
	_, err := Once(context.Background(), src, intParser())
	if !errors.Is(err, boom) {
		t.Errorf("expected source error, got %v", err)
	}
}

func TestAll_IntegerList(t *testing.T) {
	s := All(chunkStream("1", "23", ", 4", ", 5, 6, 7"), intParser())
	got, err := stream.Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{123, 4, 5, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestAll_ExhaustionIsSticky(t *testing.T) {
	s := All(chunkStream("7"), intParser())
	ctx := context.Background()

	if _, err := stream.Collect(ctx, s); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if _, ok, err := s.Read(ctx); ok || err != nil {
			t.Errorf("read %d after exhaustion: ok=%v err=%v", i, ok, err)
		}
	}
}

func TestAll_EmptySource(t *testing.T) {
	// No input at all is success-with-nothing, not a parse failure.
	s := All(chunkStream(), intParser())
	got, err := stream.Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no values, got %v", got)
	}
}

func TestAll_OnlyEmptyChunks(t *testing.T) {
	s := All(chunkStream("", ""), intParser())
	got, err := stream.Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no values, got %v", got)
	}
}

func TestAll_EmptyChunksInterleaved(t *testing.T) {
	s := All(chunkStream("", "1", "23", "", ", 4"), intParser())
	got, err := stream.Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != 123 || got[1] != 4 {
		t.Errorf("got %v, want [123 4]", got)
	}
}

func TestAll_FailureMidStream(t *testing.T) {
	s := All(chunkStream("12, x"), intParser())
	ctx := context.Background()

	v, ok, err := s.Read(ctx)
	if err != nil || !ok || v != 12 {
		t.Fatalf("first value: v=%d ok=%v err=%v", v, ok, err)
	}
	_, _, err = s.Read(ctx)
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected parse failure, got %v", err)
	}
}

func TestError_Format(t *testing.T) {
	e := &Error{Contexts: []string{"object", "key"}, Message: "unexpected byte"}
	want := "parse error in object > key: unexpected byte"
	if e.Error() != want {
		t.Errorf("got %q, want %q", e.Error(), want)
	}
	bare := &Error{Message: "boom"}
	if bare.Error() != "parse error: boom" {
		t.Errorf("got %q", bare.Error())
	}
}
