package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/modfin/mimeio"
	"github.com/spf13/cobra"
)

type linesOptions struct {
	MaxSize       int64
	MaxLineLength int
	Echo          bool
}

func newLinesCmd(logger func() *slog.Logger) *cobra.Command {
	var opts linesOptions

	cmd := &cobra.Command{
		Use:   "lines",
		Short: "Split stdin into lines, printing the number and length of each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLines(cmd.InOrStdin(), cmd.OutOrStdout(), opts, logger())
		},
	}

	cmd.Flags().Int64Var(&opts.MaxSize, "max-size", mimeio.DefaultMaxSize, "maximum number of bytes to read")
	cmd.Flags().IntVar(&opts.MaxLineLength, "max-line", mimeio.DefaultMaxLineLength, "lines must be shorter than this")
	cmd.Flags().BoolVar(&opts.Echo, "echo", false, "write the lines instead of their lengths")
	return cmd
}

func runLines(in io.Reader, out io.Writer, opts linesOptions, log *slog.Logger) error {
	if opts.MaxSize <= 0 {
		opts.MaxSize = mimeio.DefaultMaxSize
	}
	// one byte past the maximum, so that input of exactly MaxSize bytes ends with io.EOF
	r := mimeio.NewReader(in, mimeio.Config{
		Log:           log,
		MaxSize:       opts.MaxSize + 1,
		MaxLineLength: opts.MaxLineLength,
	})

	var line bytes.Buffer
	for i := 1; ; i++ {
		line.Reset()
		n, err := r.ReadLine(&line)
		if n > 0 {
			var werr error
			if opts.Echo {
				_, werr = out.Write(line.Bytes())
			} else {
				_, werr = fmt.Fprintf(out, "%d\t%d\n", i, n)
			}
			if werr != nil {
				return fmt.Errorf("writing line %d: %w", i, werr)
			}
		}

		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF):
			log.Debug("done", "lines", i-1, "bytes", r.BytesRead())
			return nil
		case errors.Is(err, mimeio.ErrLimitExceeded):
			return fmt.Errorf("input is larger than %d bytes: %w", opts.MaxSize, err)
		case errors.Is(err, mimeio.ErrLineTooLong):
			return fmt.Errorf("line %d is not shorter than %d bytes: %w", i, r.Size(), err)
		default:
			return fmt.Errorf("line %d: %w", i, err)
		}
	}
}
