package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/modfin/mimeio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRunLines(t *testing.T) {
	var out, logs bytes.Buffer
	err := runLines(strings.NewReader("one\r\ntwo\n\nlast"), &out, linesOptions{MaxSize: 100, MaxLineLength: 64}, testLogger(&logs))
	require.NoError(t, err)
	assert.Equal(t, "1\t5\n2\t4\n3\t1\n4\t4\n", out.String())
	assert.Contains(t, logs.String(), "lines=4")
}

func TestRunLinesEcho(t *testing.T) {
	var out, logs bytes.Buffer
	in := "one\r\ntwo\n\nlast"
	err := runLines(strings.NewReader(in), &out, linesOptions{MaxSize: 100, MaxLineLength: 64, Echo: true}, testLogger(&logs))
	require.NoError(t, err)
	assert.Equal(t, in, out.String())
}

func TestRunLinesLimits(t *testing.T) {
	var out, logs bytes.Buffer
	err := runLines(strings.NewReader("0123456789\n0123456789\n"), &out, linesOptions{MaxSize: 15, MaxLineLength: 64}, testLogger(&logs))
	assert.ErrorIs(t, err, mimeio.ErrLimitExceeded)
	assert.EqualError(t, err, "input is larger than 15 bytes: read limit exceeded")
	assert.Equal(t, "1\t11\n2\t5\n", out.String())

	// input of exactly max-size bytes is accepted
	out.Reset()
	err = runLines(strings.NewReader("0123456789\n"), &out, linesOptions{MaxSize: 11, MaxLineLength: 64}, testLogger(&logs))
	require.NoError(t, err)
	assert.Equal(t, "1\t11\n", out.String())

	out.Reset()
	err = runLines(strings.NewReader("0123456789\n"), &out, linesOptions{MaxSize: 10, MaxLineLength: 64}, testLogger(&logs))
	assert.EqualError(t, err, "input is larger than 10 bytes: read limit exceeded")
	assert.Equal(t, "1\t11\n", out.String())

	out.Reset()
	err = runLines(strings.NewReader("short\n0123456789\n"), &out, linesOptions{MaxSize: 100, MaxLineLength: 11}, testLogger(&logs))
	assert.ErrorIs(t, err, mimeio.ErrLineTooLong)
	assert.EqualError(t, err, "line 2 is not shorter than 11 bytes: line too long")
	assert.Equal(t, "1\t6\n", out.String())
}

type brokenPipe struct {
	writes int
}

func (b *brokenPipe) Write(p []byte) (int, error) {
	b.writes++
	return 0, errors.New("broken pipe")
}

func TestRunLinesWriteError(t *testing.T) {
	for _, echo := range []bool{true, false} {
		var logs bytes.Buffer
		out := &brokenPipe{}
		err := runLines(strings.NewReader("one\ntwo\nthree\n"), out, linesOptions{MaxSize: 100, MaxLineLength: 64, Echo: echo}, testLogger(&logs))
		assert.EqualError(t, err, "writing line 1: broken pipe")
		assert.Equal(t, 1, out.writes)
	}
}

func TestEncodeCmdLineLength(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("abc"))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"encode", "--line-length", "3"})

	err := cmd.Execute()
	assert.EqualError(t, err, "--line-length must be at least 4, got 3")
	assert.Equal(t, 0, out.Len())
}

func TestEncodeCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("100 €. \n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"encode", "--escape-dot", "--normalize-eol"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "100 =E2=82=AC=2E=20\r\n", out.String())
}
