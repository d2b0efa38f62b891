package mimeio

type StreamError string

func (e StreamError) Error() string {
	return string(e)
}

const (
	// ErrLimitExceeded is returned by a BoundedReader once its allowance is used up.
	// It is never joined with io.EOF, so io.Copy and friends surface it.
	ErrLimitExceeded StreamError = "read limit exceeded"

	// ErrLineTooLong is returned by a LineReader when a line reaches the buffer size
	// before a line feed is found
	ErrLineTooLong StreamError = "line too long"

	ErrClosed StreamError = "stream closed"
)
