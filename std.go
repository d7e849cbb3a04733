package bufkit

import (
	"bufio"
	"errors"
	"io"
	"syscall"
)

var (
	_ io.Reader     = (*IOReader[Never])(nil)
	_ io.ByteReader = (*IOReader[Never])(nil)
	_ io.WriterTo   = (*IOReader[Never])(nil)
	_ io.Writer     = (*IOWriter[Never])(nil)
	_ io.ReaderFrom = (*IOWriter[Never])(nil)
	_ io.ReadWriter = (*IOStream[Never])(nil)
	_ Reader[error] = (*BufioReader)(nil)
)

// IOReader exposes a Reader through the standard library's call shapes.
type IOReader[E Fault] struct {
	r Reader[E]
}

// NewIOReader returns an io.Reader, io.ByteReader and io.WriterTo over r.
func NewIOReader[E Fault](r Reader[E]) *IOReader[E] {
	return &IOReader[E]{r: r}
}

// Read copies min(len(p), buffered) bytes into p. It blocks for at most one
// FillBuf call, so partial reads are expected, and reports end of stream as
// io.EOF.
func (a *IOReader[E]) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	buf, err := a.r.FillBuf()
	if IsFault(err) {
		return 0, error(err)
	}
	if len(buf) == 0 {
		return 0, io.EOF
	}
	n := copy(p, buf)
	a.r.Consume(n)
	return n, nil
}

// ReadByte implements io.ByteReader.
func (a *IOReader[E]) ReadByte() (byte, error) {
	b, ok, err := ReadByte(a.r)
	if IsFault(err) {
		return 0, error(err)
	}
	if !ok {
		return 0, io.EOF
	}
	return b, nil
}

// WriteTo implements io.WriterTo by draining the inner reader into w.
func (a *IOReader[E]) WriteTo(w io.Writer) (int64, error) {
	return CopyTo(w, a.r)
}

// IOWriter exposes a Writer through the standard library's call shapes.
type IOWriter[E Fault] struct {
	w Writer[E]
}

// NewIOWriter returns an io.Writer and io.ReaderFrom over w.
func NewIOWriter[E Fault](w Writer[E]) *IOWriter[E] {
	return &IOWriter[E]{w: w}
}

// Write implements io.Writer. The inner contract is all-or-nothing, so a
// failure reports zero bytes written.
func (a *IOWriter[E]) Write(p []byte) (int, error) {
	if err := a.w.WriteAll(p); IsFault(err) {
		return 0, error(err)
	}
	return len(p), nil
}

// Flush pushes the inner writer's buffered bytes to its sink.
func (a *IOWriter[E]) Flush() error {
	return AsError(a.w.Flush())
}

// ReadFrom implements io.ReaderFrom by copying r into the inner writer until
// EOF or an error.
func (a *IOWriter[E]) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, 32*1024)
	var total int64
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			if werr := a.w.WriteAll(buf[:n]); IsFault(werr) {
				return total, error(werr)
			}
			total += int64(n)
		}
		if rerr != nil {
			if rerr != io.EOF {
				return total, rerr
			}
			return total, nil
		}
	}
}

// IOStream combines IOReader and IOWriter over a single stream.
type IOStream[E Fault] struct {
	IOReader[E]
	IOWriter[E]
}

// NewIOStream returns an io.ReadWriter over rw with the IOReader and
// IOWriter surfaces on one value.
func NewIOStream[E Fault](rw Stream[E]) *IOStream[E] {
	return &IOStream[E]{IOReader[E]{r: rw}, IOWriter[E]{w: rw}}
}

// BufferedReader is the buffered-read surface of the standard library's
// ecosystem, the subset of *bufio.Reader the reverse bridge needs.
type BufferedReader interface {
	Peek(n int) ([]byte, error)
	Discard(n int) (int, error)
	Buffered() int
}

// BufioReader exposes a standard buffered reader as a Reader[error]. Its
// FillBuf transparently retries reads interrupted by EINTR; this is the only
// place in the package that performs that retry.
type BufioReader struct {
	br BufferedReader
}

// FromBuffered returns a Reader[error] over br.
func FromBuffered(br BufferedReader) *BufioReader {
	return &BufioReader{br: br}
}

// FromReader returns a Reader[error] over r, wrapping it in a bufio.Reader
// unless it already provides the buffered surface.
func FromReader(r io.Reader) *BufioReader {
	if br, ok := r.(BufferedReader); ok {
		return FromBuffered(br)
	}
	return FromBuffered(bufio.NewReader(r))
}

// FillBuf returns every byte currently buffered, forcing a fill from the
// underlying source when the buffer is empty. End of stream is reported as an
// empty view, not io.EOF.
func (b *BufioReader) FillBuf() ([]byte, error) {
	for {
		if n := b.br.Buffered(); n > 0 {
			return b.br.Peek(n)
		}
		_, err := b.br.Peek(1)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil, nil
		case errors.Is(err, syscall.EINTR):
			// interrupted before any bytes arrived, try again
		default:
			return nil, err
		}
	}
}

// Consume discards n bytes from the buffered reader. n must not exceed the
// length of the last view returned by FillBuf, which is always fully
// buffered, so Discard cannot fail here.
func (b *BufioReader) Consume(n int) {
	if _, err := b.br.Discard(n); err != nil {
		panic("bufkit: consume amount exceeds the last buffer view")
	}
}
