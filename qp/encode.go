package qp

import (
	"io"

	"github.com/modfin/mimeio/eol"
)

// Encode copies src into dst as quoted-printable and closes the encoder, dst is left
// open. It returns the number of bytes fed to the encoder.
func Encode(dst io.Writer, src io.Reader, cfg Config) (int64, error) {
	if cfg.NormalizeEOL {
		src = eol.NewReader(src)
	}

	w := NewWriter(dst, cfg)
	n, err := io.Copy(w, src)
	if err != nil {
		return n, err
	}
	return n, w.Close()
}
