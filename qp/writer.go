// Package qp implements a streaming quoted-printable encoder, RFC 2045 section 6.7.
//
// The Writer folds output into lines of at most Config.LineLength bytes using soft line
// breaks ("=\r\n") and never splits an escape sequence. Closing a Writer does not close
// the io.Writer it wraps.
package qp

import (
	"io"

	"github.com/modfin/mimeio"
)

const DefaultLineLength = 76

// MinLineLength leaves room for one escape sequence and the soft break
const MinLineLength = 4

const upperhex = "0123456789ABCDEF"

// Config of a Writer
type Config struct {
	// Binary escapes CR, LF, space and tab like any other byte. Otherwise CRLF in the
	// input is kept as a hard line break.
	Binary bool `json:"binary"`

	// EscapeDot always escapes '.', so that a line never starts with a lone dot
	// when the output is sent over SMTP
	EscapeDot bool `json:"escape_dot"`

	// LineLength is the maximum length of an output line, soft break '=' included.
	// Values below MinLineLength are replaced by DefaultLineLength
	LineLength int `json:"line_length"`

	// NormalizeEOL turns bare CR and LF into CRLF before encoding. Only used by Encode.
	NormalizeEOL bool `json:"normalize_eol"`
}

func (c *Config) setDefaults() {
	if c.LineLength < MinLineLength {
		c.LineLength = DefaultLineLength
	}
}

// Writer encodes everything written to it as quoted-printable into the wrapped writer
type Writer struct {
	w   io.Writer
	cfg Config

	col int    // bytes on the current output line
	out []byte // scratch for one Write call
	err error

	// text mode only, whitespace and CR are held back until we know if a line break follows
	pendingWS byte
	pendingCR bool

	closed bool
}

func NewWriter(w io.Writer, cfg Config) *Writer {
	cfg.setDefaults()
	return &Writer{w: w, cfg: cfg}
}

// NewLegacyWriter returns a Writer in text or binary mode that escapes '.' and folds
// lines at 76 bytes
func NewLegacyWriter(w io.Writer, binary bool) *Writer {
	return NewWriter(w, Config{Binary: binary, EscapeDot: true})
}

func (q *Writer) Write(p []byte) (int, error) {
	if q.closed {
		return 0, mimeio.ErrClosed
	}
	if q.err != nil {
		return 0, q.err
	}

	q.out = q.out[:0]
	for _, c := range p {
		q.encode(c)
	}
	if err := q.flush(); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (q *Writer) WriteByte(c byte) error {
	_, err := q.Write([]byte{c})
	return err
}

// Close writes out any held back whitespace and marks the Writer as closed. The wrapped
// writer is neither closed nor flushed.
func (q *Writer) Close() error {
	if q.closed {
		return nil
	}
	q.closed = true
	if q.err != nil {
		return q.err
	}

	q.out = q.out[:0]
	// end of data ends the line, so trailing whitespace has to be escaped
	if q.pendingWS != 0 {
		q.escape(q.pendingWS)
		q.pendingWS = 0
	}
	if q.pendingCR {
		q.escape('\r')
		q.pendingCR = false
	}
	return q.flush()
}

func (q *Writer) flush() error {
	if len(q.out) == 0 {
		return nil
	}
	_, err := q.w.Write(q.out)
	if err != nil {
		q.err = err
	}
	return err
}

func (q *Writer) encode(c byte) {
	if q.cfg.Binary {
		q.encodeByte(c)
		return
	}

	if q.pendingCR {
		q.pendingCR = false
		if c == '\n' {
			if q.pendingWS != 0 {
				q.escape(q.pendingWS)
				q.pendingWS = 0
			}
			q.lineBreak()
			return
		}
		q.writePendingWS()
		q.escape('\r')
	}

	switch c {
	case '\r':
		q.pendingCR = true
	case ' ', '\t':
		q.writePendingWS()
		q.pendingWS = c
	default:
		q.writePendingWS()
		q.encodeByte(c)
	}
}

func (q *Writer) writePendingWS() {
	if q.pendingWS != 0 {
		q.plain(q.pendingWS)
		q.pendingWS = 0
	}
}

func (q *Writer) encodeByte(c byte) {
	switch {
	case c == '=':
		q.escape(c)
	case c == '.' && q.cfg.EscapeDot:
		q.escape(c)
	case c < '!' || c > '~':
		q.escape(c)
	default:
		q.plain(c)
	}
}

func (q *Writer) plain(c byte) {
	if q.col+1 > q.cfg.LineLength-1 {
		q.softBreak()
	}
	q.out = append(q.out, c)
	q.col++
}

func (q *Writer) escape(c byte) {
	if q.col+3 > q.cfg.LineLength-1 {
		q.softBreak()
	}
	q.out = append(q.out, '=', upperhex[c>>4], upperhex[c&0x0f])
	q.col += 3
}

func (q *Writer) softBreak() {
	q.out = append(q.out, '=')
	q.lineBreak()
}

func (q *Writer) lineBreak() {
	q.out = append(q.out, '\r', '\n')
	q.col = 0
}
