package main

import (
	"fmt"
	"log/slog"

	"github.com/modfin/mimeio/qp"
	"github.com/spf13/cobra"
)

func newEncodeCmd(logger func() *slog.Logger) *cobra.Command {
	var cfg qp.Config

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode stdin as quoted-printable to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.LineLength < qp.MinLineLength {
				return fmt.Errorf("--line-length must be at least %d, got %d", qp.MinLineLength, cfg.LineLength)
			}
			log := logger()
			n, err := qp.Encode(cmd.OutOrStdout(), cmd.InOrStdin(), cfg)
			if err != nil {
				return fmt.Errorf("encoding failed after %d bytes: %w", n, err)
			}
			log.Debug("encoded", "bytes", n, "binary", cfg.Binary, "escape-dot", cfg.EscapeDot)
			return nil
		},
	}

	cmd.Flags().BoolVar(&cfg.Binary, "binary", false, "escape CR, LF, space and tab")
	cmd.Flags().BoolVar(&cfg.EscapeDot, "escape-dot", false, "always escape '.'")
	cmd.Flags().IntVar(&cfg.LineLength, "line-length", qp.DefaultLineLength, "maximum output line length, at least 4")
	cmd.Flags().BoolVar(&cfg.NormalizeEOL, "normalize-eol", false, "treat bare CR and LF as line breaks")
	return cmd
}
