package bufkit

import "fmt"

// Never is an error type with no meaningful values: its zero value is its only
// value, so under the zero-value-means-success discipline a Never can never
// report a failure. Readers and writers that cannot fail declare it as their
// error type, which lets callers prove statically that the only failure a
// derived operation like ReadExact can produce is a short read.
type Never struct{}

func (Never) Error() string {
	return "bufkit: unreachable error"
}

// UnexpectedEnd reports that a fixed-size read ran out of bytes.
type UnexpectedEnd struct {
	// TotalRequired is the length of the requested read.
	TotalRequired int
	// Available is the number of bytes obtained before the stream ended.
	Available int
}

func (e *UnexpectedEnd) Error() string {
	return fmt.Sprintf("%d bytes were required but only %d bytes were read", e.TotalRequired, e.Available)
}

// Missing returns the number of bytes still needed when the stream ended.
func (e *UnexpectedEnd) Missing() int {
	return e.TotalRequired - e.Available
}

// BufferOverflow reports a write into a destination with insufficient
// remaining capacity. No bytes are written when it is returned.
type BufferOverflow struct {
	// BytesPastEnd is the number of bytes that did not fit.
	BytesPastEnd int
}

func (e *BufferOverflow) Error() string {
	return fmt.Sprintf("attempted to write %d bytes past the end of the buffer", e.BytesPastEnd)
}

// ExactError is the failure returned by ReadExact. Exactly one of the two
// variants is set: a short read (UnexpectedEnd) or an underlying read failure
// carried verbatim (ReadingFailed).
type ExactError[E Fault] struct {
	end  *UnexpectedEnd
	read E
}

// UnexpectedEnd returns the short-read variant, if that is what occurred.
func (e *ExactError[E]) UnexpectedEnd() (*UnexpectedEnd, bool) {
	return e.end, e.end != nil
}

// ReadingFailed returns the underlying read failure, if that is what occurred.
func (e *ExactError[E]) ReadingFailed() (E, bool) {
	var zero E
	if e.end != nil {
		return zero, false
	}
	return e.read, true
}

func (e *ExactError[E]) Error() string {
	if e.end != nil {
		return "unexpected end: " + e.end.Error()
	}
	return "reading failed: " + e.read.Error()
}

// Unwrap exposes the underlying variant to errors.Is and errors.As.
func (e *ExactError[E]) Unwrap() error {
	if e.end != nil {
		return e.end
	}
	return error(e.read)
}

// MapExactErr transforms the read-failure variant of err using f, leaving a
// short read untouched. A nil err stays nil.
func MapExactErr[E1, E2 Fault](err *ExactError[E1], f func(E1) E2) *ExactError[E2] {
	if err == nil {
		return nil
	}
	if err.end != nil {
		return &ExactError[E2]{end: err.end}
	}
	return &ExactError[E2]{read: f(err.read)}
}

// IntoUnexpectedEnd converts an ExactError whose reader cannot fail into the
// short read it must be. It panics if err is nil.
func IntoUnexpectedEnd(err *ExactError[Never]) *UnexpectedEnd {
	if err.end == nil {
		// Never has no failing values, so the read variant cannot occur.
		panic("bufkit: ExactError[Never] without an UnexpectedEnd")
	}
	return err.end
}
