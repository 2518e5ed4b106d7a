package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lottorank/combo"
	"github.com/katalvlaran/lottorank/lottery"
)

// errUnknownGame indicates a --game value outside the supported presets.
var errUnknownGame = errors.New("lottorank: unknown game")

// logger writes leveled, human-readable output to stderr; results go to
// stdout so they stay pipeable.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// newRootCmd wires the command tree and the configuration layers:
// flags win over LOTTORANK_* environment variables, which win over an
// optional config file.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lottorank",
		Short:         "Rank, decode, score and sample lottery grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if viper.GetBool("verbose") {
				logger.SetLevel(log.DebugLevel)
			}

			cfg := viper.GetString("config")
			if cfg == "" {
				return nil
			}
			viper.SetConfigFile(cfg)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("read config: %w", err)
			}
			logger.Debug("config loaded", "file", viper.ConfigFileUsed())

			return nil
		},
	}

	root.PersistentFlags().String("game", "euromillions", "game preset: euromillions or eurodreams")
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")
	root.PersistentFlags().String("config", "", "optional config file")

	viper.SetEnvPrefix("LOTTORANK")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("game", root.PersistentFlags().Lookup("game"))
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("config", root.PersistentFlags().Lookup("config"))

	root.AddCommand(newGenerateCmd(), newRankCmd(), newUnrankCmd(), newScoreCmd())

	return root
}

// newGame builds the empty composite for the configured preset.
func newGame() (*lottery.Combination, error) {
	name := viper.GetString("game")
	switch strings.ToLower(name) {
	case "euromillions":
		return lottery.NewEuroMillions(combo.None, combo.None)
	case "eurodreams":
		return lottery.NewEuroDreams(combo.None, combo.None)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownGame, name)
	}
}

// parseValues reads a flat grid row from CLI arguments, accepting both
// space-separated and comma-separated forms.
func parseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}

			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("parse value %q: %w", field, err)
			}
			values = append(values, v)
		}
	}

	return values, nil
}
