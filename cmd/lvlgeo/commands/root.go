package commands

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlgeo/geohash"
)

var (
	cfgFile string
	verbose bool

	length  int
	baseURL string

	// lengthSet records whether --length was passed explicitly; explicit
	// lengths are used as-is, only the configured default is clamped.
	lengthSet bool

	eng *geohash.Engine
)

func Execute() error {
	root := &cobra.Command{
		Use:           "lvlgeo",
		Short:         "Geohash toolkit: encode, decode, export and share geographic cells",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)

			v := viper.New()
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
			} else {
				v.SetConfigName("lvlgeo")
				v.SetConfigType("yaml")
				v.AddConfigPath(".")
				v.AddConfigPath("$HOME/.lvlgeo")
			}
			v.SetEnvPrefix("LVLGEO")
			v.AutomaticEnv()
			v.SetDefault("length", geohash.DefaultLength)
			v.SetDefault("base_url", "")

			if err := v.ReadInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return err
				}
			}

			lengthSet = cmd.Flags().Changed("length")
			if !lengthSet {
				length = v.GetInt("length")
			}
			if !cmd.Flags().Changed("base") {
				baseURL = v.GetString("base_url")
			}

			eng = geohash.New(geohash.Options{DefaultLength: length})
			slog.Debug("configuration resolved",
				"config", v.ConfigFileUsed(),
				"length", eng.Length(),
				"base_url", baseURL,
			)

			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./lvlgeo.yaml or $HOME/.lvlgeo/lvlgeo.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().IntVarP(&length, "length", "l", geohash.DefaultLength, "hash length (default clamped to 1..12; explicit values used as-is)")
	root.PersistentFlags().StringVar(&baseURL, "base", "", "base URL for share links")

	root.AddCommand(encodeCmd(), decodeCmd(), precisionCmd(), suggestCmd(), geojsonCmd(), shareCmd())

	return root.Execute()
}

// setupLogging initialises the global slog default: debug text output
// on stderr when verbose, warnings only otherwise.
func setupLogging(verbose bool) {
	lvl := slog.LevelWarn
	if verbose {
		lvl = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

// hashLength resolves the length for an encode call: the explicit flag
// value uncapped when given, the engine's clamped default otherwise.
func hashLength() int {
	if lengthSet {
		return length
	}

	return eng.Length()
}
