package eol

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"", ""},
		{"abc", "abc"},
		{"a\nb", "a\r\nb"},
		{"a\rb", "a\r\nb"},
		{"a\r\nb", "a\r\nb"},
		{"a\nb\rc\r\nd", "a\r\nb\r\nc\r\nd"},
		{"\n\r", "\r\n\r\n"},
		{"\r\r\n", "\r\n\r\n"},
		{"\n\r\n\r", "\r\n\r\n\r\n"},
		{"end\r", "end\r\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, String(tt.in), "input %q", tt.in)
		assert.Equal(t, tt.out, string(Bytes([]byte(tt.in))), "input %q", tt.in)
	}
}

func TestNormalizeAcrossChunks(t *testing.T) {
	in := strings.Repeat("line\r", 10) + strings.Repeat("line\r\n", 10) + strings.Repeat("line\n", 10)
	expected := strings.Repeat("line\r\n", 30)

	t.Run("Reader", func(t *testing.T) {
		got, err := io.ReadAll(NewReader(iotest.OneByteReader(strings.NewReader(in))))
		require.NoError(t, err)
		assert.Equal(t, expected, string(got))
	})

	t.Run("Writer", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		for i := 0; i < len(in); i++ {
			_, err := w.Write([]byte{in[i]})
			require.NoError(t, err)
		}
		require.NoError(t, w.Close())
		assert.Equal(t, expected, buf.String())
	})

	t.Run("WriterTrailingCR", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		_, err := w.Write([]byte("a\r"))
		require.NoError(t, err)
		require.NoError(t, w.Close())
		assert.Equal(t, "a\r\n", buf.String())
	})
}
