package mimeio

import (
	"io"
	"log/slog"
)

// Config of a composed Reader
type Config struct {
	// Log receives debug records about limit resets and rejected input.
	// Defaults to a logger that discards everything
	Log *slog.Logger `json:"-"`

	// MaxSize is the number of bytes that may be pulled from the source for one part.
	// Defaults to 10 Mebibytes
	MaxSize int64 `json:"max_size"`

	// MaxLineLength is the line reader buffer size, a line must be shorter than this.
	// Defaults to DefaultMaxLineLength
	MaxLineLength int `json:"max_line_length"`
}

// setDefaults fills in values that were not configured
func (c *Config) setDefaults() {
	if c.Log == nil {
		c.Log = noopLogger()
	}
	if c.MaxSize <= 0 {
		c.MaxSize = DefaultMaxSize
	}
	if c.MaxLineLength <= 0 {
		c.MaxLineLength = DefaultMaxLineLength
	}
}

func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
