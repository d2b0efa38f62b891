package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/modfin/mimeio"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "mimeio",
		Short:        "Line splitting and quoted-printable encoding of mail streams",
		Version:      mimeio.Version,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	logger := func() *slog.Logger {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}))
	}

	root.AddCommand(newEncodeCmd(logger), newLinesCmd(logger))
	return root
}
