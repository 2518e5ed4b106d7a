package lottery

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lottorank/combo"
	"github.com/katalvlaran/lottorank/ranking"
)

// Component pairs a name with a bounded combination. A composite is an
// ordered list of these; the order defines both the mixed-radix digit
// weights and the positional splitting of flat value rows.
type Component struct {
	Name string
	Comb *combo.Bounded
}

// Factory rebuilds a same-shape composite from a component list and a
// prize table. Generic logic (Copy, GetCombination, Intersection) calls
// through it so that derived instances keep the concrete game shape —
// a preset's factory re-confines every component into the game's
// universes and restores its prize table.
type Factory func(components []Component, winning WinningRanks) (*Combination, error)

// Combination is an ordered collection of named bounded combinations
// treated as one mixed-radix space, plus a prize table. Like its
// components it is a value object: derived variants come from Copy and
// GetCombination.
//
// The zero value is not usable; create instances with New or a game
// preset.
type Combination struct {
	names   []string
	comps   map[string]*combo.Bounded
	winning WinningRanks
	factory Factory

	// lazily cached aggregates
	values   []int
	rank     int64
	hasRank  bool
	total    int64
	hasTotal bool
}

// Option adjusts a construction.
type Option func(*Combination)

// WithWinningRanks attaches a prize table. The table is copied.
func WithWinningRanks(w WinningRanks) Option {
	return func(c *Combination) { c.winning = w.clone() }
}

// WithFactory installs the rebuild hook used by derived constructions.
func WithFactory(f Factory) Option {
	return func(c *Combination) { c.factory = f }
}

// New builds a composite from components in declaration order. A nil
// component fails with ErrNilComponent, a repeated name with
// ErrDuplicateComponent.
func New(components []Component, opts ...Option) (*Combination, error) {
	c := &Combination{
		names: make([]string, 0, len(components)),
		comps: make(map[string]*combo.Bounded, len(components)),
	}

	for _, comp := range components {
		if comp.Comb == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilComponent, comp.Name)
		}
		if _, seen := c.comps[comp.Name]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateComponent, comp.Name)
		}
		c.names = append(c.names, comp.Name)
		c.comps[comp.Name] = comp.Comb
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Names returns the component names in declaration order.
func (c *Combination) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)

	return out
}

// Components returns name/combination pairs in declaration order.
func (c *Combination) Components() []Component {
	out := make([]Component, len(c.names))
	for i, name := range c.names {
		out[i] = Component{Name: name, Comb: c.comps[name]}
	}

	return out
}

// Component returns the named component, or false when absent.
func (c *Combination) Component(name string) (*combo.Bounded, bool) {
	comp, ok := c.comps[name]

	return comp, ok
}

// ComponentValues returns the named component's values, or an empty
// list when the component is absent.
func (c *Combination) ComponentValues(name string) []int {
	comp, ok := c.comps[name]
	if !ok {
		return []int{}
	}

	return comp.Values()
}

// Values returns the concatenation (not the union) of each component's
// ascending values in declaration order, computed once and cached. The
// slice is a copy.
func (c *Combination) Values() []int {
	if c.values == nil {
		vals := make([]int, 0, c.Length())
		for _, name := range c.names {
			vals = append(vals, c.comps[name].Values()...)
		}
		c.values = vals
	}

	out := make([]int, len(c.values))
	copy(out, c.values)

	return out
}

// Length returns the total cardinality across components.
func (c *Combination) Length() int {
	n := 0
	for _, name := range c.names {
		n += c.comps[name].Length()
	}

	return n
}

// Count returns the total arity across components.
func (c *Combination) Count() int {
	n := 0
	for _, name := range c.names {
		n += c.comps[name].Count()
	}

	return n
}

// Rank returns the combined mixed-radix rank: each component's rank
// weighted by the product of the totals of all later-declared
// components, so the first component is most significant. Computed on
// first access and cached. Fails with ranking.ErrOverflow when the
// combined space exceeds int64.
func (c *Combination) Rank() (int64, error) {
	if c.hasRank {
		return c.rank, nil
	}

	rank := int64(0)
	multiplier := int64(1)
	for i := len(c.names) - 1; i >= 0; i-- {
		comp := c.comps[c.names[i]]
		r, err := comp.Rank()
		if err != nil {
			return 0, err
		}

		weighted, err := mulInt64(r, multiplier)
		if err != nil {
			return 0, err
		}
		rank, err = addInt64(rank, weighted)
		if err != nil {
			return 0, err
		}

		if i > 0 {
			multiplier, err = mulInt64(multiplier, comp.Total())
			if err != nil {
				return 0, err
			}
		}
	}

	c.rank = rank
	c.hasRank = true

	return rank, nil
}

// Total returns the combined space size, the product of the component
// totals. A composite with no components has total 0. Computed on first
// access and cached.
func (c *Combination) Total() (int64, error) {
	if c.hasTotal {
		return c.total, nil
	}
	if len(c.names) == 0 {
		return 0, nil
	}

	total := int64(1)
	for _, name := range c.names {
		t, err := mulInt64(total, c.comps[name].Total())
		if err != nil {
			return 0, err
		}
		total = t
	}

	c.total = total
	c.hasTotal = true

	return total, nil
}

// WinningRanks returns a copy of the prize table.
func (c *Combination) WinningRanks() WinningRanks {
	return c.winning.clone()
}

// NbWinningRanks returns max - min + 1 over the table's prize ranks,
// the number of distinct prize tiers assuming the ranks form a dense
// contiguous range (they do for every supported game). Zero for an
// empty table.
func (c *Combination) NbWinningRanks() int {
	lo, hi, ok := c.winningBounds()
	if !ok {
		return 0
	}

	return hi - lo + 1
}

// MinWinningRank returns the best prize rank, or false for an empty
// table.
func (c *Combination) MinWinningRank() (int, bool) {
	lo, _, ok := c.winningBounds()

	return lo, ok
}

// MaxWinningRank returns the worst prize rank, or false for an empty
// table.
func (c *Combination) MaxWinningRank() (int, bool) {
	_, hi, ok := c.winningBounds()

	return hi, ok
}

// winningBounds scans the table once for its extreme prize ranks.
func (c *Combination) winningBounds() (lo, hi int, ok bool) {
	for _, r := range c.winning {
		if !ok {
			lo, hi, ok = r, r, true

			continue
		}
		if r < lo {
			lo = r
		}
		if r > hi {
			hi = r
		}
	}

	return lo, hi, ok
}

// String renders each component as "name: values" in declaration order,
// space-separated, using the components' fixed-width rendering.
func (c *Combination) String() string {
	parts := make([]string, len(c.names))
	for i, name := range c.names {
		parts[i] = name + ": " + c.comps[name].String()
	}

	return strings.Join(parts, " ")
}

// mulInt64 multiplies with overflow detection.
func mulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	p := a * b
	if p/b != a {
		return 0, fmt.Errorf("%w: %d * %d", ranking.ErrOverflow, a, b)
	}

	return p, nil
}

// addInt64 adds with overflow detection.
func addInt64(a, b int64) (int64, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, fmt.Errorf("%w: %d + %d", ranking.ErrOverflow, a, b)
	}

	return s, nil
}
