package bufkit

// Ring is a fixed-capacity ring buffer exposed as a Stream: writes are
// all-or-nothing and fail with BufferOverflow when the free space is too
// small, reads hand out zero-copy views of the contiguous run at the front.
// A FillBuf view may be shorter than Len when the stored bytes wrap around
// the end of the storage; the rest becomes visible after the view is
// consumed. An empty view means the ring is drained, not that it is closed.
type Ring struct {
	data     []byte
	readPos  int
	writePos int
}

var _ Stream[*BufferOverflow] = (*Ring)(nil)

// NewRing returns a ring buffer holding up to size bytes. The storage is
// size+1 to distinguish between full and empty states.
func NewRing(size int) *Ring {
	if size <= 0 {
		size = 1
	}
	return &Ring{data: make([]byte, size+1)}
}

// Len returns the number of stored bytes.
func (r *Ring) Len() int {
	if r.writePos >= r.readPos {
		return r.writePos - r.readPos
	}
	return (len(r.data) - r.readPos) + r.writePos
}

// Free returns the remaining capacity.
func (r *Ring) Free() int {
	return len(r.data) - 1 - r.Len()
}

// Cap returns the total capacity.
func (r *Ring) Cap() int {
	return len(r.data) - 1
}

// FillBuf returns the contiguous run of stored bytes at the front of the
// ring. It performs no I/O and never fails.
func (r *Ring) FillBuf() ([]byte, *BufferOverflow) {
	if r.writePos >= r.readPos {
		return r.data[r.readPos:r.writePos], nil
	}
	return r.data[r.readPos:], nil
}

// Consume discards n bytes from the front of the ring. n must not exceed the
// length of the last view returned by FillBuf.
func (r *Ring) Consume(n int) {
	contiguous := r.writePos - r.readPos
	if r.writePos < r.readPos {
		contiguous = len(r.data) - r.readPos
	}
	if n < 0 || n > contiguous {
		panic("bufkit: consume amount exceeds the last buffer view")
	}
	r.readPos = (r.readPos + n) % len(r.data)
}

// WriteAll stores every byte of p, or fails with the exact overflow count and
// stores nothing.
func (r *Ring) WriteAll(p []byte) *BufferOverflow {
	free := r.Free()
	if len(p) > free {
		return &BufferOverflow{BytesPastEnd: len(p) - free}
	}
	first := min(len(p), len(r.data)-r.writePos)
	copy(r.data[r.writePos:], p[:first])
	copy(r.data, p[first:])
	r.writePos = (r.writePos + len(p)) % len(r.data)
	return nil
}

// Flush performs no work; the ring has no sink beneath it.
func (r *Ring) Flush() *BufferOverflow {
	return nil
}

// Reset discards all stored bytes.
func (r *Ring) Reset() {
	r.readPos = 0
	r.writePos = 0
}
