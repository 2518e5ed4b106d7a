package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lottorank/lottery"
)

// newUnrankCmd decodes a combined rank back into a grid.
func newUnrankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unrank RANK",
		Short: "Decode a combined rank into its grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := newGame()
			if err != nil {
				return err
			}

			rank, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse rank %q: %w", args[0], err)
			}

			grid, err := game.GetCombination(lottery.FromRank(rank))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), grid)

			return nil
		},
	}
}
