package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lottorank/combo"
)

// newGenerateCmd samples grids from the configured game's space.
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample random grids, optionally spread over partitions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			game, err := newGame()
			if err != nil {
				return err
			}

			n := viper.GetInt("n")
			partitions := viper.GetInt("partitions")
			seed := viper.GetInt64("seed")
			logger.Debug("sampling", "n", n, "partitions", partitions, "seed", seed)

			grids, err := game.Generate(n, partitions, combo.NewRand(seed))
			if err != nil {
				return err
			}

			for _, grid := range grids {
				rank, err := grid.Rank()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  rank=%d\n", grid, rank)
			}

			return nil
		},
	}

	cmd.Flags().IntP("n", "n", 1, "number of grids to sample")
	cmd.Flags().Int("partitions", 1, "contiguous blocks to spread the batch over")
	cmd.Flags().Int64("seed", 0, "RNG seed (0 uses the deterministic default)")
	_ = viper.BindPFlag("n", cmd.Flags().Lookup("n"))
	_ = viper.BindPFlag("partitions", cmd.Flags().Lookup("partitions"))
	_ = viper.BindPFlag("seed", cmd.Flags().Lookup("seed"))

	return cmd
}
