package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lottorank/lottery"
)

// newScoreCmd classifies a ticket against a draw via the game's prize
// table.
func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score TICKET...",
		Short: "Score a ticket against a draw",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := newGame()
			if err != nil {
				return err
			}

			drawValues, err := parseValues([]string{viper.GetString("draw")})
			if err != nil {
				return err
			}
			draw, err := game.GetCombination(lottery.FromValues(drawValues...))
			if err != nil {
				return err
			}

			ticketValues, err := parseValues(args)
			if err != nil {
				return err
			}

			prize, won, err := draw.WinningRank(lottery.FromValues(ticketValues...))
			if err != nil {
				return err
			}
			logger.Debug("scored", "draw", draw.String(), "ticket", ticketValues)

			if !won {
				fmt.Fprintln(cmd.OutOrStdout(), "no prize")

				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "prize %d\n", prize)

			return nil
		},
	}

	cmd.Flags().String("draw", "", "the drawn grid, comma-separated")
	_ = cmd.MarkFlagRequired("draw")
	_ = viper.BindPFlag("draw", cmd.Flags().Lookup("draw"))

	return cmd
}
