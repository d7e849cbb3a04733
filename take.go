package bufkit

// TakeReader limits how many bytes an inner reader can hand out.
type TakeReader[E Fault] struct {
	r       Reader[E]
	limit   uint64
	lastLen int
}

var _ Reader[Never] = (*TakeReader[Never])(nil)

// Take returns a reader that yields at most limit bytes from r, after which
// FillBuf reports end of stream without touching r again. Read failures do
// not count against the budget, so a later call may still succeed.
func Take[E Fault](r Reader[E], limit uint64) *TakeReader[E] {
	return &TakeReader[E]{r: r, limit: limit}
}

// Remaining returns how many bytes the reader may still hand out.
func (t *TakeReader[E]) Remaining() uint64 {
	return t.limit
}

// FillBuf returns the inner reader's view truncated to the remaining budget.
// Once the budget is exhausted it reports end of stream without invoking the
// inner reader.
func (t *TakeReader[E]) FillBuf() ([]byte, E) {
	var zero E
	if t.limit == 0 {
		t.lastLen = 0
		return nil, zero
	}
	buf, err := t.r.FillBuf()
	if IsFault(err) {
		return nil, err
	}
	n := len(buf)
	if uint64(n) > t.limit {
		n = int(t.limit)
	}
	t.lastLen = n
	return buf[:n], zero
}

// Consume forwards to the inner reader and decrements the budget. n must not
// exceed the length of the last view returned by FillBuf, which also
// guarantees the budget cannot underflow.
func (t *TakeReader[E]) Consume(n int) {
	if n < 0 || n > t.lastLen {
		panic("bufkit: consume amount exceeds the last buffer view")
	}
	t.lastLen -= n
	t.limit -= uint64(n)
	t.r.Consume(n)
}
