package bufkit

// BytesReader reads an in-memory byte slice. Its error type is Never: reads
// cannot fail, though a fixed-size read past the end still reports a short
// read through ReadExact.
type BytesReader struct {
	s []byte
}

var _ Reader[Never] = (*BytesReader)(nil)

// NewBytesReader returns a reader over p. The reader does not copy p.
func NewBytesReader(p []byte) *BytesReader {
	return &BytesReader{s: p}
}

// Len returns the number of unconsumed bytes.
func (r *BytesReader) Len() int {
	return len(r.s)
}

func (r *BytesReader) FillBuf() ([]byte, Never) {
	return r.s, Never{}
}

func (r *BytesReader) Consume(n int) {
	r.s = r.s[n:]
}

// FixedBuffer is a fixed-capacity byte buffer that is both a reader and a
// writer over the same front cursor: reads return the remaining region and
// writes overwrite it, both advancing past the bytes they handled. Writes
// fail with BufferOverflow when the remaining capacity is too small, and
// write nothing in that case.
type FixedBuffer struct {
	buf []byte
}

var (
	_ Reader[Never]           = (*FixedBuffer)(nil)
	_ Writer[*BufferOverflow] = (*FixedBuffer)(nil)
)

// NewFixedBuffer returns a buffer over p. Reads and writes operate directly
// on p.
func NewFixedBuffer(p []byte) *FixedBuffer {
	return &FixedBuffer{buf: p}
}

// Remaining returns the capacity left in the buffer.
func (b *FixedBuffer) Remaining() int {
	return len(b.buf)
}

func (b *FixedBuffer) FillBuf() ([]byte, Never) {
	return b.buf, Never{}
}

func (b *FixedBuffer) Consume(n int) {
	b.buf = b.buf[n:]
}

func (b *FixedBuffer) WriteAll(p []byte) *BufferOverflow {
	if len(p) > len(b.buf) {
		return &BufferOverflow{BytesPastEnd: len(p) - len(b.buf)}
	}
	copy(b.buf, p)
	b.buf = b.buf[len(p):]
	return nil
}

func (b *FixedBuffer) Flush() *BufferOverflow {
	return nil
}

// Buffer is a growable byte buffer writer. Its error type is Never: appends
// cannot fail.
type Buffer struct {
	buf []byte
}

var _ Writer[Never] = (*Buffer)(nil)

func (b *Buffer) WriteAll(p []byte) Never {
	b.buf = append(b.buf, p...)
	return Never{}
}

func (b *Buffer) Flush() Never {
	return Never{}
}

// Bytes returns the accumulated bytes. The slice aliases the buffer's
// storage and is valid until the next write.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// String returns the accumulated bytes as a string.
func (b *Buffer) String() string {
	return string(b.buf)
}

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Reset discards the accumulated bytes but keeps the storage.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}

// Reader returns a reader over the accumulated bytes. The reader aliases the
// buffer's storage; writing to the buffer while reading is caller misuse.
func (b *Buffer) Reader() *BytesReader {
	return NewBytesReader(b.buf)
}

type emptyReader struct{}

func (emptyReader) FillBuf() ([]byte, Never) {
	return nil, Never{}
}

func (emptyReader) Consume(n int) {
	if n != 0 {
		panic("bufkit: consume amount exceeds the last buffer view")
	}
}

type sinkWriter struct{}

func (sinkWriter) WriteAll(p []byte) Never {
	return Never{}
}

func (sinkWriter) Flush() Never {
	return Never{}
}

type nullStream struct {
	emptyReader
	sinkWriter
}

var (
	// Empty is a reader with no data: always at end of stream, never fails.
	Empty Reader[Never] = emptyReader{}
	// Sink is a writer that discards everything written to it and never fails.
	Sink Writer[Never] = sinkWriter{}
	// Null is a stream with no data that discards all writes, analogous to
	// /dev/null but zero-cost.
	Null Stream[Never] = nullStream{}
)
