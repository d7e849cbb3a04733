package bufkit

// MapReader transforms the errors of an inner reader and nothing else: the
// bytes handed out and the consumption effect are identical to the inner
// reader's.
type MapReader[E1, E2 Fault] struct {
	r Reader[E1]
	f func(E1) E2
}

var _ Reader[error] = (*MapReader[Never, error])(nil)

// MapReadErr returns a reader that applies f to every failure reported by r's
// FillBuf. Successful calls pass through untransformed.
func MapReadErr[E1, E2 Fault](r Reader[E1], f func(E1) E2) *MapReader[E1, E2] {
	return &MapReader[E1, E2]{r: r, f: f}
}

func (m *MapReader[E1, E2]) FillBuf() ([]byte, E2) {
	var zero E2
	buf, err := m.r.FillBuf()
	if IsFault(err) {
		return nil, m.f(err)
	}
	return buf, zero
}

func (m *MapReader[E1, E2]) Consume(n int) {
	m.r.Consume(n)
}

// MapWriter transforms the errors of an inner writer and nothing else.
type MapWriter[E1, E2 Fault] struct {
	w Writer[E1]
	f func(E1) E2
}

var _ Writer[error] = (*MapWriter[Never, error])(nil)

// MapWriteErr returns a writer that applies f to every failure reported by
// w's WriteAll and Flush.
func MapWriteErr[E1, E2 Fault](w Writer[E1], f func(E1) E2) *MapWriter[E1, E2] {
	return &MapWriter[E1, E2]{w: w, f: f}
}

func (m *MapWriter[E1, E2]) WriteAll(p []byte) E2 {
	var zero E2
	if err := m.w.WriteAll(p); IsFault(err) {
		return m.f(err)
	}
	return zero
}

func (m *MapWriter[E1, E2]) Flush() E2 {
	var zero E2
	if err := m.w.Flush(); IsFault(err) {
		return m.f(err)
	}
	return zero
}

// MapStream transforms the errors of both channels of an inner stream using a
// single function.
type MapStream[E1, E2 Fault] struct {
	rw Stream[E1]
	f  func(E1) E2
}

var _ Stream[error] = (*MapStream[Never, error])(nil)

// MapErr returns a stream that applies f to every failure from either side of
// rw, whose read and write channels share one error type.
func MapErr[E1, E2 Fault](rw Stream[E1], f func(E1) E2) *MapStream[E1, E2] {
	return &MapStream[E1, E2]{rw: rw, f: f}
}

func (m *MapStream[E1, E2]) FillBuf() ([]byte, E2) {
	var zero E2
	buf, err := m.rw.FillBuf()
	if IsFault(err) {
		return nil, m.f(err)
	}
	return buf, zero
}

func (m *MapStream[E1, E2]) Consume(n int) {
	m.rw.Consume(n)
}

func (m *MapStream[E1, E2]) WriteAll(p []byte) E2 {
	var zero E2
	if err := m.rw.WriteAll(p); IsFault(err) {
		return m.f(err)
	}
	return zero
}

func (m *MapStream[E1, E2]) Flush() E2 {
	var zero E2
	if err := m.rw.Flush(); IsFault(err) {
		return m.f(err)
	}
	return zero
}

// UnifiedStream exposes a read-writer with two distinct error types as a
// Stream[error]. Every Go error type converts to the error interface, which
// is the one conversion-into-a-common-target relation the language provides;
// zero values map to nil.
type UnifiedStream[ER, EW Fault] struct {
	r Reader[ER]
	w Writer[EW]
}

var _ Stream[error] = (*UnifiedStream[Never, Never])(nil)

// UnifyErr returns a Stream[error] over rw, converting failures from either
// channel to the error interface.
func UnifyErr[ER, EW Fault](rw interface {
	Reader[ER]
	Writer[EW]
}) *UnifiedStream[ER, EW] {
	return &UnifiedStream[ER, EW]{r: rw, w: rw}
}

func (u *UnifiedStream[ER, EW]) FillBuf() ([]byte, error) {
	buf, err := u.r.FillBuf()
	if IsFault(err) {
		return nil, error(err)
	}
	return buf, nil
}

func (u *UnifiedStream[ER, EW]) Consume(n int) {
	u.r.Consume(n)
}

func (u *UnifiedStream[ER, EW]) WriteAll(p []byte) error {
	return AsError(u.w.WriteAll(p))
}

func (u *UnifiedStream[ER, EW]) Flush() error {
	return AsError(u.w.Flush())
}
