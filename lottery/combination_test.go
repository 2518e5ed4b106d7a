package lottery_test

import (
	"testing"

	"github.com/katalvlaran/lottorank/combo"
	"github.com/katalvlaran/lottorank/lottery"
	"github.com/katalvlaran/lottorank/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The generic suite runs over a two-component composite of 5 numbers
// of 1..50 and 3 extras of 1..20.
var (
	numbersSpace = combo.Space{Start: 1, End: 50, Count: 5}
	extraSpace   = combo.Space{Start: 1, End: 20, Count: 3}

	tieredTable = lottery.WinningRanks{
		lottery.PatternOf(5): 1,
		lottery.PatternOf(4): 2,
		lottery.PatternOf(3): 3,
		lottery.PatternOf(2): 4,
	}
)

// mustComposite builds a numbers+extra composite from raw values.
func mustComposite(t *testing.T, numbers, extra []int, opts ...lottery.Option) *lottery.Combination {
	t.Helper()

	n, err := numbersSpace.New(combo.Values(numbers...))
	require.NoError(t, err)
	e, err := extraSpace.New(combo.Values(extra...))
	require.NoError(t, err)

	c, err := lottery.New([]lottery.Component{
		{Name: "numbers", Comb: n},
		{Name: "extra", Comb: e},
	}, opts...)
	require.NoError(t, err)

	return c
}

// mustRank computes the component rank of a value list at offset 1.
func mustRank(t *testing.T, values []int) int64 {
	t.Helper()

	r, err := ranking.Rank(values, 1)
	require.NoError(t, err)

	return r
}

// TestComposite_Empty: a componentless composite is rank 0 over an
// empty space, with zeroed winning-rank accessors.
func TestComposite_Empty(t *testing.T) {
	c, err := lottery.New(nil)
	require.NoError(t, err)

	assert.Empty(t, c.Names())
	assert.Empty(t, c.Values())
	assert.Equal(t, 0, c.Length())
	assert.Equal(t, 0, c.Count())

	rank, err := c.Rank()
	require.NoError(t, err)
	assert.Equal(t, int64(0), rank)

	total, err := c.Total()
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	assert.Equal(t, 0, c.NbWinningRanks())
	_, ok := c.MinWinningRank()
	assert.False(t, ok)
	_, ok = c.MaxWinningRank()
	assert.False(t, ok)
}

// TestComposite_WinningAccessors: tier bounds come from the table's
// extreme prize ranks, so tied patterns do not inflate the count.
func TestComposite_WinningAccessors(t *testing.T) {
	c, err := lottery.New(nil, lottery.WithWinningRanks(tieredTable))
	require.NoError(t, err)

	assert.Equal(t, 4, c.NbWinningRanks())
	lo, ok := c.MinWinningRank()
	require.True(t, ok)
	assert.Equal(t, 1, lo)
	hi, ok := c.MaxWinningRank()
	require.True(t, ok)
	assert.Equal(t, 4, hi)

	tied := lottery.WinningRanks{
		lottery.PatternOf(6, 1): 1,
		lottery.PatternOf(6, 0): 2,
		lottery.PatternOf(5, 1): 3,
		lottery.PatternOf(5, 0): 3,
	}
	c, err = lottery.New(nil, lottery.WithWinningRanks(tied))
	require.NoError(t, err)
	assert.Equal(t, 3, c.NbWinningRanks())
}

// TestComposite_Aggregates: values concatenate in declaration order,
// length and count sum, total multiplies, and the combined rank weights
// the first component by the later component's total.
func TestComposite_Aggregates(t *testing.T) {
	c := mustComposite(t, []int{5, 4, 3, 2, 1}, []int{10, 9, 8})

	assert.Equal(t, []int{1, 2, 3, 4, 5, 8, 9, 10}, c.Values())
	assert.Equal(t, 8, c.Length())
	assert.Equal(t, 8, c.Count())

	numbersTotal := int64(2_118_760) // C(50,5)
	extraTotal := int64(1_140)       // C(20,3)
	total, err := c.Total()
	require.NoError(t, err)
	assert.Equal(t, numbersTotal*extraTotal, total)

	rank, err := c.Rank()
	require.NoError(t, err)
	want := mustRank(t, []int{1, 2, 3, 4, 5})*extraTotal + mustRank(t, []int{8, 9, 10})
	assert.Equal(t, want, rank)
}

// TestComposite_OrderIsSignificant: swapping declaration order swaps
// the digit weights and the value concatenation.
func TestComposite_OrderIsSignificant(t *testing.T) {
	n, err := numbersSpace.New(combo.Values(1, 2, 3, 4, 5))
	require.NoError(t, err)
	e, err := extraSpace.New(combo.Values(8, 9, 10))
	require.NoError(t, err)

	c, err := lottery.New([]lottery.Component{
		{Name: "extra", Comb: e},
		{Name: "numbers", Comb: n},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"extra", "numbers"}, c.Names())
	assert.Equal(t, []int{8, 9, 10, 1, 2, 3, 4, 5}, c.Values())

	rank, err := c.Rank()
	require.NoError(t, err)
	want := mustRank(t, []int{8, 9, 10})*2_118_760 + mustRank(t, []int{1, 2, 3, 4, 5})
	assert.Equal(t, want, rank)
}

// TestComposite_ConstructionErrors: nil and duplicate components fail
// atomically.
func TestComposite_ConstructionErrors(t *testing.T) {
	n, err := numbersSpace.New(combo.None)
	require.NoError(t, err)

	_, err = lottery.New([]lottery.Component{{Name: "numbers", Comb: nil}})
	assert.ErrorIs(t, err, lottery.ErrNilComponent)

	_, err = lottery.New([]lottery.Component{
		{Name: "numbers", Comb: n},
		{Name: "numbers", Comb: n},
	})
	assert.ErrorIs(t, err, lottery.ErrDuplicateComponent)
}

// TestComposite_ComponentAccess: lookup by name, missing names yield an
// empty value list.
func TestComposite_ComponentAccess(t *testing.T) {
	c := mustComposite(t, []int{1, 2, 3, 4, 5}, []int{8, 9, 10})

	comp, ok := c.Component("extra")
	require.True(t, ok)
	assert.Equal(t, []int{8, 9, 10}, comp.Values())

	_, ok = c.Component("bonus")
	assert.False(t, ok)
	assert.Empty(t, c.ComponentValues("bonus"))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, c.ComponentValues("numbers"))
}

// TestComposite_String: per-component fixed-width rows, labelled and
// space-separated in declaration order.
func TestComposite_String(t *testing.T) {
	c := mustComposite(t, []int{1, 2, 3, 4, 5}, []int{8, 9, 10})

	assert.Equal(t, "numbers: [ 1,  2,  3,  4,  5] extra: [ 8,  9, 10]", c.String())
}
