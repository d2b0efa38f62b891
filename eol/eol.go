// Package eol rewrites line endings to CRLF, the form quoted-printable text and most
// mail protocols expect. It is built on golang.org/x/text/transform so it can be used as
// a reader, a writer or chained with other transformers.
package eol

import (
	"io"

	"golang.org/x/text/transform"
)

// Normalizer turns every bare "\r" and bare "\n" into "\r\n". Existing "\r\n" pairs are
// left as they are.
type Normalizer struct {
	transform.NopResetter
}

var _ transform.Transformer = Normalizer{}

func (Normalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c != '\r' && c != '\n' {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		// A CR at the end of the chunk might be followed by a LF in the next one
		if c == '\r' && nSrc+1 == len(src) && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst+2 > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst], dst[nDst+1] = '\r', '\n'
		nDst += 2
		nSrc++
		if c == '\r' && nSrc < len(src) && src[nSrc] == '\n' {
			nSrc++
		}
	}
	return nDst, nSrc, nil
}

func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, Normalizer{})
}

// NewWriter returns a writer normalizing line endings into w. It must be closed to flush
// a trailing "\r"; closing it does not close w.
func NewWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, Normalizer{})
}

func Bytes(b []byte) []byte {
	out, _, _ := transform.Bytes(Normalizer{}, b)
	return out
}

func String(s string) string {
	out, _, _ := transform.String(Normalizer{}, s)
	return out
}
