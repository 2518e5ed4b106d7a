package lottery_test

import (
	"fmt"

	"github.com/katalvlaran/lottorank/combo"
	"github.com/katalvlaran/lottorank/lottery"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewEuroMillions
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A EuroMillions grid is one integer in a 139,838,160-element space:
//	the numbers' rank weighted by the 66 star pairs, plus the stars'
//	rank. Decoding that integer restores the grid.
func ExampleNewEuroMillions() {
	grid, err := lottery.NewEuroMillions(combo.Values(3, 15, 22, 28, 44), combo.Values(2, 9))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	rank, err := grid.Rank()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("rank:", rank)

	back, err := grid.GetCombination(lottery.FromRank(rank))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(back)
	// Output:
	// rank: 64783715
	// numbers: [ 3, 15, 22, 28, 44] stars: [ 2,  9]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCombination_WinningRank
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Score two tickets against a draw: a full match is the jackpot,
//	two numbers without a star is the last prize tier, and one number
//	wins nothing.
func ExampleCombination_WinningRank() {
	draw, err := lottery.NewEuroMillions(combo.Values(1, 2, 3, 4, 5), combo.Values(6, 7))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	tickets := [][]int{
		{1, 2, 3, 4, 5, 6, 7},
		{1, 2, 10, 11, 12, 8, 9},
		{1, 10, 11, 12, 13, 8, 9},
	}
	for _, ticket := range tickets {
		prize, won, err := draw.WinningRank(lottery.FromValues(ticket...))
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		if won {
			fmt.Printf("ticket %v wins prize %d\n", ticket, prize)
		} else {
			fmt.Printf("ticket %v wins nothing\n", ticket)
		}
	}
	// Output:
	// ticket [1 2 3 4 5 6 7] wins prize 1
	// ticket [1 2 10 11 12 8 9] wins prize 13
	// ticket [1 10 11 12 13 8 9] wins nothing
}
