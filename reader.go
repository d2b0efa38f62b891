package mimeio

import (
	"errors"
	"io"
	"log/slog"
)

// Reader is the read path of a message: a BoundedReader capping how much is pulled
// from the transport, with a LineReader on top tokenizing it into lines.
type Reader struct {
	log     *slog.Logger
	bounded *BoundedReader

	*LineReader
}

// NewReader sets up a Reader over r using the limits in cfg
func NewReader(r io.Reader, cfg Config) *Reader {
	cfg.setDefaults()

	bounded := NewBoundedReader(r, cfg.MaxSize)
	lines := NewLineReader(bounded, cfg.MaxLineLength)

	return &Reader{
		log:        cfg.Log,
		bounded:    bounded,
		LineReader: lines,
	}
}

// Limit returns the number of bytes that may be pulled from the source per part
func (r *Reader) Limit() int64 {
	return r.bounded.Limit()
}

// BytesRead returns the number of bytes pulled from the source for the current part.
// This includes bytes buffered by the line reader but not yet handed out.
func (r *Reader) BytesRead() int64 {
	return r.bounded.BytesRead()
}

// ResetLimit starts a new allowance for the next part. Bytes already buffered were
// counted against the previous one.
func (r *Reader) ResetLimit() {
	r.log.Debug("resetting read limit", "limit", r.bounded.Limit(), "read", r.bounded.BytesRead(), "buffered", r.Buffered())
	r.bounded.Reset()
	if errors.Is(r.LineReader.err, ErrLimitExceeded) {
		r.LineReader.err = nil
	}
}

func (r *Reader) ReadLine(dst io.Writer) (int, error) {
	n, err := r.LineReader.ReadLine(dst)
	r.logErr("read line", err)
	return n, err
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.LineReader.Read(p)
	r.logErr("read", err)
	return n, err
}

func (r *Reader) ReadByte() (byte, error) {
	c, err := r.LineReader.ReadByte()
	r.logErr("read byte", err)
	return c, err
}

func (r *Reader) logErr(op string, err error) {
	switch {
	case errors.Is(err, ErrLimitExceeded):
		r.log.Debug(op+" rejected", "err", err, "limit", r.bounded.Limit())
	case errors.Is(err, ErrLineTooLong):
		r.log.Debug(op+" rejected", "err", err, "max-line-length", r.LineReader.Size())
	}
}

// Close closes the line reader, which closes the bounded reader and, if it is an
// io.Closer, the source
func (r *Reader) Close() error {
	return r.LineReader.Close()
}
