package lottery

import (
	"fmt"

	"github.com/katalvlaran/lottorank/combo"
)

// EuroMillions: 5 numbers of 1..50 plus 2 stars of 1..12, a combined
// space of 2,118,760 × 66 = 139,838,160 grids.
var (
	EuroMillionsNumbers = combo.Space{Start: 1, End: 50, Count: 5}
	EuroMillionsStars   = combo.Space{Start: 1, End: 12, Count: 2}

	// EuroMillionsWinningRanks is the official 13-tier prize table,
	// keyed by "matched numbers:matched stars".
	EuroMillionsWinningRanks = WinningRanks{
		PatternOf(5, 2): 1,
		PatternOf(5, 1): 2,
		PatternOf(5, 0): 3,
		PatternOf(4, 2): 4,
		PatternOf(4, 1): 5,
		PatternOf(3, 2): 6,
		PatternOf(4, 0): 7,
		PatternOf(2, 2): 8,
		PatternOf(3, 1): 9,
		PatternOf(3, 0): 10,
		PatternOf(1, 2): 11,
		PatternOf(2, 1): 12,
		PatternOf(2, 0): 13,
	}
)

// EuroDreams: 6 numbers of 1..40 plus 1 dream of 1..5, a combined space
// of 3,838,380 × 5 = 19,191,900 grids.
var (
	EuroDreamsNumbers = combo.Space{Start: 1, End: 40, Count: 6}
	EuroDreamsDream   = combo.Space{Start: 1, End: 5, Count: 1}

	// EuroDreamsWinningRanks is the 6-tier prize table; from tier 3 down
	// the dream number no longer matters, so pattern pairs share ranks.
	EuroDreamsWinningRanks = WinningRanks{
		PatternOf(6, 1): 1,
		PatternOf(6, 0): 2,
		PatternOf(5, 1): 3,
		PatternOf(5, 0): 3,
		PatternOf(4, 1): 4,
		PatternOf(4, 0): 4,
		PatternOf(3, 1): 5,
		PatternOf(3, 0): 5,
		PatternOf(2, 1): 6,
		PatternOf(2, 0): 6,
	}
)

// gameSlot fixes one component's name and universe in a preset.
type gameSlot struct {
	name  string
	space combo.Space
}

var (
	euroMillionsSlots = []gameSlot{
		{name: "numbers", space: EuroMillionsNumbers},
		{name: "stars", space: EuroMillionsStars},
	}
	euroDreamsSlots = []gameSlot{
		{name: "numbers", space: EuroDreamsNumbers},
		{name: "dream", space: EuroDreamsDream},
	}
)

// NewEuroMillions builds a EuroMillions grid. Each input takes anything
// a bounded construction accepts: values, a component rank, a
// {values, rank} pair, an existing combination, or combo.None for an
// empty slot. When stars is absent and numbers is a flat value row, the
// values past the fifth spill into the stars — one ticket line fills
// both components.
func NewEuroMillions(numbers, stars combo.Input) (*Combination, error) {
	if stars.IsNone() {
		numbers, stars = numbers.Split(EuroMillionsNumbers.Count)
	}

	return buildGame(euroMillionsSlots, EuroMillionsWinningRanks, euroMillionsFactory,
		[]Component{}, []combo.Input{numbers, stars})
}

// NewEuroDreams builds a EuroDreams grid; the flat-row spill works like
// NewEuroMillions, with the seventh value feeding the dream slot.
func NewEuroDreams(numbers, dream combo.Input) (*Combination, error) {
	if dream.IsNone() {
		numbers, dream = numbers.Split(EuroDreamsNumbers.Count)
	}

	return buildGame(euroDreamsSlots, EuroDreamsWinningRanks, euroDreamsFactory,
		[]Component{}, []combo.Input{numbers, dream})
}

// euroMillionsFactory rebuilds derived instances into the EuroMillions
// shape: every slot re-confined to its universe, missing slots
// materialized empty, the prize table always the official one.
func euroMillionsFactory(components []Component, _ WinningRanks) (*Combination, error) {
	return buildGame(euroMillionsSlots, EuroMillionsWinningRanks, euroMillionsFactory, components, nil)
}

func euroDreamsFactory(components []Component, _ WinningRanks) (*Combination, error) {
	return buildGame(euroDreamsSlots, EuroDreamsWinningRanks, euroDreamsFactory, components, nil)
}

// buildGame assembles a preset composite. Components are matched to
// slots by name; inputs (when given) feed slots positionally. A name
// outside the game's slots fails with ErrUnknownComponent, a missing
// slot becomes an empty component in its universe.
func buildGame(slots []gameSlot, winning WinningRanks, self Factory,
	components []Component, inputs []combo.Input) (*Combination, error) {
	given := make(map[string]*combo.Bounded, len(components))
	for _, comp := range components {
		known := false
		for _, sl := range slots {
			if sl.name == comp.Name {
				known = true

				break
			}
		}
		if !known {
			return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, comp.Name)
		}
		given[comp.Name] = comp.Comb
	}

	out := make([]Component, 0, len(slots))
	for i, sl := range slots {
		in := combo.None
		if comp := given[sl.name]; comp != nil {
			in = combo.Of(comp)
		} else if i < len(inputs) {
			in = inputs[i]
		}

		built, err := sl.space.New(in)
		if err != nil {
			return nil, err
		}
		out = append(out, Component{Name: sl.name, Comb: built})
	}

	return New(out, WithWinningRanks(winning), WithFactory(self))
}
