package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgeo/geojson"
)

func geojsonCmd() *cobra.Command {
	var (
		pad    float64
		center bool
	)

	cmd := &cobra.Command{
		Use:   "geojson <hash>",
		Short: "Export a geohash cell as a GeoJSON FeatureCollection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := geojson.DefaultOptions()
			opts.PadMeters = pad
			opts.IncludeCenter = center

			fc, err := geojson.Collection(args[0], opts)
			if err != nil {
				return err
			}

			raw, err := json.MarshalIndent(fc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(raw))

			return nil
		},
	}

	cmd.Flags().Float64Var(&pad, "pad", 0, "margin in meters added to every side of the cell")
	cmd.Flags().BoolVar(&center, "center", false, "also emit a Point feature for the cell center")

	return cmd
}
