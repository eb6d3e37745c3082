package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgeo/geohash"
)

func precisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "precision <length>",
		Short: "Print the worst-case positional error in meters for a hash length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse length %q: %w", args[0], err)
			}

			fmt.Printf("%.4f m\n", geohash.PrecisionMeters(n))

			return nil
		},
	}

	return cmd
}

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <meters>",
		Short: "Suggest the shortest hash length meeting a target precision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse target %q: %w", args[0], err)
			}

			n := geohash.SuggestLength(target)
			fmt.Printf("length %d (%.4f m)\n", n, geohash.PrecisionMeters(n))

			return nil
		},
	}

	return cmd
}
