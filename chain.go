package bufkit

// ChainReader concatenates two readers that share an error type.
type ChainReader[E Fault] struct {
	first    Reader[E]
	second   Reader[E]
	inSecond bool
}

var _ Reader[Never] = (*ChainReader[Never])(nil)

// Chain returns a reader that yields every byte of first followed by every
// byte of second. The switch happens the first time first reports end of
// stream and is permanent: first is never consulted again, even if it could
// later produce more bytes.
func Chain[E Fault](first, second Reader[E]) *ChainReader[E] {
	return &ChainReader[E]{first: first, second: second}
}

func (c *ChainReader[E]) FillBuf() ([]byte, E) {
	if c.inSecond {
		return c.second.FillBuf()
	}
	buf, err := c.first.FillBuf()
	if IsFault(err) {
		return nil, err
	}
	if len(buf) == 0 {
		c.inSecond = true
		return c.second.FillBuf()
	}
	return buf, err
}

func (c *ChainReader[E]) Consume(n int) {
	if c.inSecond {
		c.second.Consume(n)
	} else {
		c.first.Consume(n)
	}
}
