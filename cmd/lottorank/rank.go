package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lottorank/lottery"
)

// newRankCmd converts a flat grid row into its combined rank.
func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank VALUES...",
		Short: "Compute the combined rank of a grid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := newGame()
			if err != nil {
				return err
			}

			values, err := parseValues(args)
			if err != nil {
				return err
			}

			grid, err := game.GetCombination(lottery.FromValues(values...))
			if err != nil {
				return err
			}
			rank, err := grid.Rank()
			if err != nil {
				return err
			}

			logger.Debug("ranked", "grid", grid.String())
			fmt.Fprintln(cmd.OutOrStdout(), rank)

			return nil
		},
	}
}
