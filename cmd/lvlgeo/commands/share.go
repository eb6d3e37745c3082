package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgeo/share"
)

func shareCmd() *cobra.Command {
	var (
		qrOut  string
		qrSize int
	)

	cmd := &cobra.Command{
		Use:   "share <hash>",
		Short: "Build a share link for a geohash, optionally with a QR code PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash := args[0]

			link, err := share.URL(baseURL, hash)
			if err != nil {
				return err
			}
			fmt.Println(link)

			if qrOut == "" {
				return nil
			}

			img, err := share.QRPNG(baseURL, hash, qrSize)
			if err != nil {
				return err
			}
			if err := os.WriteFile(qrOut, img, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", qrOut, err)
			}
			slog.Debug("QR code written", "path", qrOut, "bytes", len(img))

			return nil
		},
	}

	cmd.Flags().StringVar(&qrOut, "qr", "", "write a QR code PNG to this path")
	cmd.Flags().IntVar(&qrSize, "size", share.DefaultQRSize, "QR code edge length in pixels")

	return cmd
}
