package mimeio

const (
	Name    = "mimeio"
	Version = "0.0.1"
)

const (
	// DefaultMaxLineLength is used by NewLineReader when no size is given
	DefaultMaxLineLength = 8192

	// initialBufferSize is where a LineReader buffer starts before growing towards its max
	initialBufferSize = 4096

	// maxConsecutiveEmptyReads before a reader gives up with io.ErrNoProgress
	maxConsecutiveEmptyReads = 100
)

const (
	// DefaultMaxSize is the allowance of a Reader when no MaxSize is configured
	DefaultMaxSize = int64(10 << 20) // 10 Mebibytes
)
