package mimeio

import (
	"io"
)

// BoundedReader reads from an underlying reader but refuses to hand out more than
// limit bytes. Unlike io.LimitedReader, reading past the limit is an error,
// ErrLimitExceeded, rather than io.EOF. A plain io.EOF therefore always means that the
// source ended before the limit was reached.
type BoundedReader struct {
	r     io.Reader
	limit int64
	n     int64 // bytes read so far

	closed bool
	one    [1]byte
}

func NewBoundedReader(r io.Reader, limit int64) *BoundedReader {
	return &BoundedReader{r: r, limit: limit}
}

// BytesRead returns the number of bytes handed out since creation or the last Reset
func (b *BoundedReader) BytesRead() int64 {
	return b.n
}

func (b *BoundedReader) Limit() int64 {
	return b.limit
}

func (b *BoundedReader) remaining() int64 {
	return b.limit - b.n
}

// Reset grants a new allowance of limit bytes, the position in the source is kept
func (b *BoundedReader) Reset() {
	b.n = 0
}

func (b *BoundedReader) ReadByte() (byte, error) {
	if b.closed {
		return 0, ErrClosed
	}
	if b.remaining() <= 0 {
		return 0, ErrLimitExceeded
	}

	if br, ok := b.r.(io.ByteReader); ok {
		c, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		b.n++
		return c, nil
	}

	for i := maxConsecutiveEmptyReads; i > 0; i-- {
		n, err := b.r.Read(b.one[:])
		if n > 0 {
			b.n++
			return b.one[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
	return 0, io.ErrNoProgress
}

func (b *BoundedReader) Read(p []byte) (n int, err error) {
	if b.closed {
		return 0, ErrClosed
	}
	rem := b.remaining()
	if rem <= 0 {
		return 0, ErrLimitExceeded
	}
	if int64(len(p)) > rem {
		p = p[0:rem]
	}
	n, err = b.r.Read(p)
	b.n += int64(n)
	return n, err
}

// Skip discards n bytes from the source. Asking for more than what is left of the
// allowance fails with ErrLimitExceeded without consuming anything. If the source ends
// early the number of bytes skipped is returned along with io.EOF.
func (b *BoundedReader) Skip(n int64) (int64, error) {
	if b.closed {
		return 0, ErrClosed
	}
	rem := b.remaining()
	if rem <= 0 || n > rem {
		return 0, ErrLimitExceeded
	}
	if n <= 0 {
		return 0, nil
	}
	skipped, err := io.CopyN(io.Discard, b.r, n)
	b.n += skipped
	return skipped, err
}

// Close closes the underlying reader if it is an io.Closer. Pass a plain io.Reader,
// or wrap it with io.NopCloser, to keep the source open.
func (b *BoundedReader) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if c, ok := b.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
