package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgeo/geohash"
)

func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <hash>",
		Short: "Decode a geohash into its center, bounding box and precision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pre, err := geohash.DecodeWithPrecision(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("center:    %.6f %.6f\n", pre.Center.Lat, pre.Center.Lng)
			fmt.Printf("sw:        %f %f\n", pre.Box.SW.Lat, pre.Box.SW.Lng)
			fmt.Printf("ne:        %f %f\n", pre.Box.NE.Lat, pre.Box.NE.Lng)
			fmt.Printf("precision: %.2f m\n", pre.PrecisionM)

			return nil
		},
	}

	return cmd
}
