package mimeio

import (
	"bytes"
	"errors"
	"io"
)

var errNegativeRead = errors.New("mimeio: reader returned negative count from Read")

// LineReader buffers an underlying reader and splits it into lines on '\n'.
// A line is every byte up to and including the line feed, carriage returns are not
// stripped. The buffer grows while looking for a line feed, but never beyond size
// bytes, so a line must be shorter than size.
//
// Read and ReadByte share the buffer with ReadLine and may be interleaved with it.
type LineReader struct {
	rd  io.Reader
	buf []byte
	pos int // read position in buf
	end int // end of valid data in buf
	max int
	err error

	closed bool
}

// NewLineReader returns a LineReader whose lines must be shorter than size bytes.
// A size <= 0 uses DefaultMaxLineLength.
func NewLineReader(r io.Reader, size int) *LineReader {
	if size <= 0 {
		size = DefaultMaxLineLength
	}
	return &LineReader{
		rd:  r,
		buf: make([]byte, min(size, initialBufferSize)),
		max: size,
	}
}

// Buffered returns the number of bytes that can be read without touching the source
func (l *LineReader) Buffered() int {
	return l.end - l.pos
}

// Size returns the line limit of the reader
func (l *LineReader) Size() int {
	return l.max
}

func (l *LineReader) readErr() error {
	err := l.err
	l.err = nil
	return err
}

// fill compacts the buffer, grows it if it is full and below max, and does one
// successful read from the source.
func (l *LineReader) fill() {
	if l.pos > 0 {
		copy(l.buf, l.buf[l.pos:l.end])
		l.end -= l.pos
		l.pos = 0
	}

	if l.end == len(l.buf) {
		if len(l.buf) >= l.max {
			return
		}
		buf := make([]byte, min(2*len(l.buf), l.max))
		copy(buf, l.buf[:l.end])
		l.buf = buf
	}

	for i := maxConsecutiveEmptyReads; i > 0; i-- {
		n, err := l.rd.Read(l.buf[l.end:])
		if n < 0 {
			panic(errNegativeRead)
		}
		l.end += n
		if err != nil {
			l.err = err
			return
		}
		if n > 0 {
			return
		}
	}
	l.err = io.ErrNoProgress
}

func (l *LineReader) ReadByte() (byte, error) {
	if l.closed {
		return 0, ErrClosed
	}
	for l.pos == l.end {
		if l.err != nil {
			return 0, l.readErr()
		}
		l.fill()
	}
	c := l.buf[l.pos]
	l.pos++
	return c, nil
}

func (l *LineReader) Read(p []byte) (n int, err error) {
	if l.closed {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		if l.Buffered() > 0 {
			return 0, nil
		}
		return 0, l.readErr()
	}

	if l.pos == l.end {
		if l.err != nil {
			return 0, l.readErr()
		}
		if len(p) >= len(l.buf) {
			// Large read with an empty buffer, skip the copy
			n, err = l.rd.Read(p)
			if n < 0 {
				panic(errNegativeRead)
			}
			return n, err
		}
		l.fill()
		if l.pos == l.end {
			return 0, l.readErr()
		}
	}

	n = copy(p, l.buf[l.pos:l.end])
	l.pos += n
	return n, nil
}

// ReadLine appends the next line, terminator included, to dst and returns the number
// of bytes appended. When the source is exhausted the final bytes are returned as a line
// without terminator, after that ReadLine returns 0, io.EOF.
//
// A line that reaches the size of the reader fails with ErrLineTooLong, nothing is
// written to dst and the bytes are left in the buffer. If the source fails with
// something other than io.EOF, the partial line is written to dst and returned with the
// error.
func (l *LineReader) ReadLine(dst io.Writer) (int, error) {
	if l.closed {
		return 0, ErrClosed
	}

	scanned := 0 // bytes after pos known to hold no line feed
	for {
		if i := bytes.IndexByte(l.buf[l.pos+scanned:l.end], '\n'); i >= 0 {
			n := scanned + i + 1
			if n >= l.max {
				return 0, ErrLineTooLong
			}
			return l.deliver(dst, n)
		}
		scanned = l.end - l.pos

		if scanned >= l.max {
			return 0, ErrLineTooLong
		}

		if l.err != nil {
			if scanned == 0 {
				return 0, l.readErr()
			}
			if errors.Is(l.err, io.EOF) {
				// io.EOF is kept until the buffer is drained
				return l.deliver(dst, scanned)
			}
			n, err := l.deliver(dst, scanned)
			if err != nil {
				return n, err
			}
			return n, l.readErr()
		}

		l.fill()
	}
}

func (l *LineReader) deliver(dst io.Writer, n int) (int, error) {
	w, err := dst.Write(l.buf[l.pos : l.pos+n])
	if err != nil {
		return w, err
	}
	l.pos += n
	return n, nil
}

// Close closes the underlying reader if it is an io.Closer
func (l *LineReader) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	l.pos, l.end = 0, 0
	if c, ok := l.rd.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
