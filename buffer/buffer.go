package buffer

import "fmt"

// DefaultBlockSize is the growth unit used when Options.BlockSize is zero.
const DefaultBlockSize = 128

type Options struct {
	BlockSize   int // default: DefaultBlockSize
	MaxCapacity int // 0 means unlimited; growth past it fails with ErrAllocation
}

// Buffer is a growable byte store holding text in logical order.
//
// The backing array always has room for a NUL terminator at data[length].
// Length is authoritative: embedded NUL bytes are ordinary data.
type Buffer struct {
	data    []byte // len(data) is the capacity
	length  int
	version uint64

	opt   Options
	freed bool
}

// New allocates a buffer able to hold initialLen bytes without growing.
func New(initialLen int, opt Options) (*Buffer, error) {
	if opt.BlockSize <= 0 {
		opt.BlockSize = DefaultBlockSize
	}
	if opt.MaxCapacity < 0 {
		opt.MaxCapacity = 0
	}
	if initialLen < 0 {
		initialLen = 0
	}

	b := &Buffer{opt: opt}
	size, err := b.capacityFor(initialLen)
	if err != nil {
		return nil, err
	}
	b.data = make([]byte, size)
	return b, nil
}

func (b *Buffer) Len() int { return b.length }

// Cap returns the number of bytes reserved, including the terminator slot.
func (b *Buffer) Cap() int { return len(b.data) }

// Version increments on every effective text mutation.
func (b *Buffer) Version() uint64 { return b.version }

// Bytes returns the text. The slice aliases the buffer and is valid only
// until the next mutation.
func (b *Buffer) Bytes() []byte {
	if b.freed {
		return nil
	}
	return b.data[:b.length:b.length]
}

func (b *Buffer) String() string { return string(b.Bytes()) }

// Realloc adjusts capacity for newLen bytes of text.
//
// A real reallocation only happens when newLen+1 exceeds the current capacity,
// or falls more than one block below it. Text that no longer fits the new
// capacity is truncated, so callers shorten the text first.
func (b *Buffer) Realloc(newLen int) error {
	if b.freed {
		return ErrFreed
	}
	if newLen < 0 {
		newLen = 0
	}
	if !b.needsRealloc(newLen) {
		return nil
	}
	size, err := b.capacityFor(newLen)
	if err != nil {
		return err
	}
	next := make([]byte, size)
	copy(next, b.data[:minInt(b.length, size-1)])
	if b.length > size-1 {
		b.length = size - 1
	}
	b.data = next
	b.data[b.length] = 0
	return nil
}

// Set replaces the whole text.
func (b *Buffer) Set(text []byte) error {
	if b.freed {
		return ErrFreed
	}
	return b.Splice(0, b.length, text)
}

// Splice removes remove bytes at off and inserts ins in their place.
//
// off is clamped into [0, Len()] and remove into [0, Len()-off]. If the
// buffer cannot grow, ErrAllocation is returned and nothing changes.
func (b *Buffer) Splice(off, remove int, ins []byte) error {
	if b.freed {
		return ErrFreed
	}
	off = clampInt(off, 0, b.length)
	remove = clampInt(remove, 0, b.length-off)
	if remove == 0 && len(ins) == 0 {
		return nil
	}

	oldLen := b.length
	newLen := oldLen - remove + len(ins)
	tailFrom := off + remove

	if newLen > oldLen {
		if err := b.Realloc(newLen); err != nil {
			return fmt.Errorf("splice %d bytes at %d: %w", len(ins), off, err)
		}
	}
	copy(b.data[off+len(ins):], b.data[tailFrom:oldLen])
	copy(b.data[off:], ins)
	b.length = newLen
	b.data[b.length] = 0
	b.version++

	if newLen < oldLen {
		// A refused shrink keeps the larger array, which still holds the text.
		_ = b.Realloc(newLen)
	}
	return nil
}

// Free releases the storage. Any later mutation fails with ErrFreed.
func (b *Buffer) Free() {
	b.data = nil
	b.length = 0
	b.freed = true
}

func (b *Buffer) needsRealloc(newLen int) bool {
	need := newLen + 1
	size := len(b.data)
	if need > size {
		return true
	}
	return need < size-b.opt.BlockSize
}

func (b *Buffer) capacityFor(n int) (int, error) {
	block := b.opt.BlockSize
	size := ((n + 1 + block - 1) / block) * block
	if size < block {
		size = block
	}
	if b.opt.MaxCapacity > 0 && size > b.opt.MaxCapacity {
		// A partial block still fits under a non-aligned limit.
		if n+1 <= b.opt.MaxCapacity {
			return b.opt.MaxCapacity, nil
		}
		return 0, ErrAllocation
	}
	return size, nil
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
