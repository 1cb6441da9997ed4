package buffer

import (
	"bytes"
	"errors"
	"testing"
)

func mustNew(t *testing.T, text string, opt Options) *Buffer {
	t.Helper()
	b, err := New(len(text), opt)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := b.Set([]byte(text)); err != nil {
		t.Fatalf("set: %v", err)
	}
	return b
}

func TestBuffer_New_DefaultsToOneBlock(t *testing.T) {
	b, err := New(0, Options{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got, want := b.Cap(), DefaultBlockSize; got != want {
		t.Fatalf("cap=%d, want %d", got, want)
	}
	if b.Len() != 0 {
		t.Fatalf("len=%d, want 0", b.Len())
	}
	if b.Version() != 0 {
		t.Fatalf("version=%d, want 0", b.Version())
	}
}

func TestBuffer_Splice_InsertAndDelete(t *testing.T) {
	b := mustNew(t, "hello", Options{BlockSize: 8})

	if err := b.Splice(5, 0, []byte(" world")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got, want := b.String(), "hello world"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	if err := b.Splice(0, 6, nil); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, want := b.String(), "world"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	if err := b.Splice(2, 1, []byte("R")); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got, want := b.String(), "woRld"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if b.data[b.Len()] != 0 {
		t.Fatalf("missing terminator at %d", b.Len())
	}
}

func TestBuffer_Splice_ClampsOffsets(t *testing.T) {
	b := mustNew(t, "abc", Options{})

	if err := b.Splice(-5, 100, []byte("x")); err != nil {
		t.Fatalf("splice: %v", err)
	}
	if got, want := b.String(), "x"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	if err := b.Splice(99, 0, []byte("y")); err != nil {
		t.Fatalf("splice: %v", err)
	}
	if got, want := b.String(), "xy"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_Splice_NoopDoesNotVersion(t *testing.T) {
	b := mustNew(t, "abc", Options{})
	v := b.Version()
	if err := b.Splice(1, 0, nil); err != nil {
		t.Fatalf("splice: %v", err)
	}
	if b.Version() != v {
		t.Fatalf("version=%d, want %d", b.Version(), v)
	}
}

func TestBuffer_EmbeddedNULIsData(t *testing.T) {
	b := mustNew(t, "a\x00b", Options{})
	if b.Len() != 3 {
		t.Fatalf("len=%d, want 3", b.Len())
	}
	if err := b.Splice(3, 0, []byte{0}); err != nil {
		t.Fatalf("splice: %v", err)
	}
	if got, want := b.Bytes(), []byte("a\x00b\x00"); !bytes.Equal(got, want) {
		t.Fatalf("bytes=%q, want %q", got, want)
	}
}

func TestBuffer_GrowthHysteresis(t *testing.T) {
	b, err := New(0, Options{BlockSize: 8})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	for i := 0; i < 7; i++ {
		if err := b.Splice(b.Len(), 0, []byte("x")); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		if b.Cap() != 8 {
			t.Fatalf("after %d bytes cap=%d, want 8", b.Len(), b.Cap())
		}
	}

	// The eighth byte leaves no room for the terminator.
	if err := b.Splice(b.Len(), 0, []byte("x")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if b.Cap() != 16 {
		t.Fatalf("cap=%d, want 16", b.Cap())
	}

	// Dropping to 7 bytes is within one block of capacity: no shrink.
	if err := b.Splice(0, 1, nil); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if b.Cap() != 16 {
		t.Fatalf("cap=%d, want 16 (hysteresis)", b.Cap())
	}

	if err := b.Splice(0, 1, nil); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if b.Cap() != 8 {
		t.Fatalf("cap=%d, want 8", b.Cap())
	}
	if got, want := b.String(), "xxxxxx"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	// Never shrinks below one block.
	if err := b.Set(nil); err != nil {
		t.Fatalf("set: %v", err)
	}
	if b.Cap() != 8 {
		t.Fatalf("cap=%d, want 8", b.Cap())
	}
}

func TestBuffer_Realloc_NoopInsideHysteresisBand(t *testing.T) {
	b := mustNew(t, "abc", Options{BlockSize: 8})
	before := &b.data[0]
	if err := b.Realloc(5); err != nil {
		t.Fatalf("realloc: %v", err)
	}
	if &b.data[0] != before {
		t.Fatalf("expected no reallocation")
	}
	if err := b.Realloc(20); err != nil {
		t.Fatalf("realloc: %v", err)
	}
	if got, want := b.Cap(), 24; got != want {
		t.Fatalf("cap=%d, want %d", got, want)
	}
	if got, want := b.String(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_AllocationFailureLeavesStateIntact(t *testing.T) {
	b := mustNew(t, "abc", Options{BlockSize: 8, MaxCapacity: 16})
	v := b.Version()

	err := b.Splice(1, 0, []byte("0123456789abcdef"))
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("err=%v, want ErrAllocation", err)
	}
	if got, want := b.String(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if b.Version() != v {
		t.Fatalf("version=%d, want %d", b.Version(), v)
	}

	// Up to MaxCapacity-1 bytes still fit.
	if err := b.Splice(3, 0, []byte("012345678901")); err != nil {
		t.Fatalf("splice within limit: %v", err)
	}
	if b.Len() != 15 {
		t.Fatalf("len=%d, want 15", b.Len())
	}
}

func TestBuffer_New_RefusesOversizedInitialLength(t *testing.T) {
	if _, err := New(100, Options{BlockSize: 8, MaxCapacity: 32}); !errors.Is(err, ErrAllocation) {
		t.Fatalf("err=%v, want ErrAllocation", err)
	}
}

func TestBuffer_FreeRejectsMutation(t *testing.T) {
	b := mustNew(t, "abc", Options{})
	b.Free()
	if b.Len() != 0 || b.Bytes() != nil {
		t.Fatalf("expected empty buffer after free")
	}
	if err := b.Splice(0, 0, []byte("x")); !errors.Is(err, ErrFreed) {
		t.Fatalf("err=%v, want ErrFreed", err)
	}
	if err := b.Set([]byte("x")); !errors.Is(err, ErrFreed) {
		t.Fatalf("err=%v, want ErrFreed", err)
	}
}

func TestBuffer_Splice_GrowsAndShrinksMidText(t *testing.T) {
	b := mustNew(t, "abcdefg", Options{BlockSize: 8})

	if err := b.Splice(1, 1, []byte("XYZ")); err != nil {
		t.Fatalf("splice: %v", err)
	}
	if got, want := b.String(), "aXYZcdefg"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cap(), 16; got != want {
		t.Fatalf("cap=%d, want %d", got, want)
	}
	if b.data[b.Len()] != 0 {
		t.Fatalf("missing terminator")
	}

	if err := b.Splice(2, 6, nil); err != nil {
		t.Fatalf("splice: %v", err)
	}
	if got, want := b.String(), "aXg"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cap(), 8; got != want {
		t.Fatalf("cap=%d, want %d", got, want)
	}
}
