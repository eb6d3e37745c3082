package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgeo/geohash"
)

func encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <lat> <lng>",
		Short: "Encode a coordinate into a geohash",
		Long: `Encode a latitude/longitude pair into a geohash.

Out-of-range coordinates are clamped to [-90,90] / [-180,180]. The hash
length comes from --length, the config file, or the built-in default.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse latitude %q: %w", args[0], err)
			}
			lng, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse longitude %q: %w", args[1], err)
			}

			fmt.Println(geohash.Encode(lat, lng, hashLength()))

			return nil
		},
	}

	return cmd
}
