package bufkit

import "io"

// Fault is the constraint on reader and writer error types. The zero value of a
// Fault type means "no failure": nil for the error interface and pointer error
// types, and the only possible value for Never. Comparability is what lets
// generic code test for the zero value without knowing the concrete type.
type Fault interface {
	comparable
	error
}

// Reader is the pull-based buffered source contract.
//
// FillBuf returns a view of the currently available unconsumed bytes, reading
// from the underlying source only if nothing is buffered. The view is valid
// until the next FillBuf or Consume call on the same reader; an empty view
// signals end of stream. Consume removes n bytes from the front of the view
// most recently returned by FillBuf. It performs no I/O and n must not exceed
// that view's length; implementations treat an overrun as caller misuse and
// panic rather than returning a typed failure.
type Reader[E Fault] interface {
	FillBuf() ([]byte, E)
	Consume(n int)
}

// Writer is the push-based buffered sink contract.
//
// WriteAll accepts every byte of p or fails; there is no partial-success
// reporting. Flush pushes any internally buffered bytes to the underlying
// sink.
type Writer[E Fault] interface {
	WriteAll(p []byte) E
	Flush() E
}

// Stream is an entity that is simultaneously a Reader and a Writer with a
// single shared error type.
type Stream[E Fault] interface {
	Reader[E]
	Writer[E]
}

// IsFault reports whether err carries a failure, i.e. is not the zero value
// of its type.
func IsFault[E Fault](err E) bool {
	var zero E
	return err != zero
}

// AsError converts err to the error interface, mapping the zero value to nil.
func AsError[E Fault](err E) error {
	var zero E
	if err == zero {
		return nil
	}
	return error(err)
}

// ReadByte reads a single byte from r. It returns ok=false if the stream has
// ended.
func ReadByte[E Fault](r Reader[E]) (b byte, ok bool, err E) {
	buf, err := r.FillBuf()
	if IsFault(err) {
		return 0, false, err
	}
	if len(buf) == 0 {
		return 0, false, err
	}
	b = buf[0]
	r.Consume(1)
	return b, true, err
}

// ReadExact fills dst completely from r, or fails.
//
// On end of stream before dst is full it returns an ExactError carrying an
// UnexpectedEnd with the total requested length and the bytes obtained so
// far. On an underlying read failure it returns immediately with the failure
// wrapped; how much was consumed is then unspecified, but never more than
// len(dst). A nil return means dst is fully written.
func ReadExact[E Fault](r Reader[E], dst []byte) *ExactError[E] {
	required := len(dst)
	for len(dst) > 0 {
		buf, err := r.FillBuf()
		if IsFault(err) {
			return &ExactError[E]{read: err}
		}
		if len(buf) == 0 {
			return &ExactError[E]{end: &UnexpectedEnd{
				TotalRequired: required,
				Available:     required - len(dst),
			}}
		}
		n := copy(dst, buf)
		r.Consume(n)
		dst = dst[n:]
	}
	return nil
}

// ReadToEnd appends everything remaining in r to dst and returns the extended
// slice together with the number of bytes appended. On an underlying failure
// it returns immediately; bytes appended so far are retained in the result.
func ReadToEnd[E Fault](r Reader[E], dst []byte) ([]byte, int, E) {
	total := 0
	for {
		buf, err := r.FillBuf()
		if IsFault(err) {
			return dst, total, err
		}
		if len(buf) == 0 {
			return dst, total, err
		}
		dst = append(dst, buf...)
		n := len(buf)
		total += n
		r.Consume(n)
	}
}

// Copy reads src to end and writes everything to dst, without an intermediate
// buffer: each view returned by FillBuf is handed to WriteAll before being
// consumed. It returns the number of bytes copied and the first failure from
// either side, converted to the error interface.
func Copy[ER, EW Fault](dst Writer[EW], src Reader[ER]) (int64, error) {
	var total int64
	for {
		buf, rerr := src.FillBuf()
		if IsFault(rerr) {
			return total, error(rerr)
		}
		if len(buf) == 0 {
			return total, nil
		}
		if werr := dst.WriteAll(buf); IsFault(werr) {
			return total, error(werr)
		}
		n := len(buf)
		total += int64(n)
		src.Consume(n)
	}
}

// CopyTo reads src to end and writes everything to an io.Writer, reporting
// short writes as io.ErrShortWrite.
func CopyTo[E Fault](dst io.Writer, src Reader[E]) (int64, error) {
	var total int64
	for {
		buf, rerr := src.FillBuf()
		if IsFault(rerr) {
			return total, error(rerr)
		}
		if len(buf) == 0 {
			return total, nil
		}
		n, werr := dst.Write(buf)
		if n < 0 || n > len(buf) {
			n = 0
			if werr == nil {
				werr = io.ErrShortWrite
			}
		}
		total += int64(n)
		src.Consume(n)
		if werr != nil {
			return total, werr
		}
		if n != len(buf) {
			return total, io.ErrShortWrite
		}
	}
}
