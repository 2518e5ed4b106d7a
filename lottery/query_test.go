package lottery_test

import (
	"testing"

	"github.com/katalvlaran/lottorank/combo"
	"github.com/katalvlaran/lottorank/lottery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetCombination_FromRank: decoding the composite's own rank
// reproduces every component exactly.
func TestGetCombination_FromRank(t *testing.T) {
	c := mustComposite(t, []int{3, 15, 22, 28, 44}, []int{8, 9, 10})

	rank, err := c.Rank()
	require.NoError(t, err)

	decoded, err := c.GetCombination(lottery.FromRank(rank))
	require.NoError(t, err)
	assert.Equal(t, []string{"numbers", "extra"}, decoded.Names())
	assert.Equal(t, []int{3, 15, 22, 28, 44}, decoded.ComponentValues("numbers"))
	assert.Equal(t, []int{8, 9, 10}, decoded.ComponentValues("extra"))

	back, err := decoded.Rank()
	require.NoError(t, err)
	assert.Equal(t, rank, back)
}

// TestGetCombination_RankZero: rank 0 is the first grid of every
// component.
func TestGetCombination_RankZero(t *testing.T) {
	c := mustComposite(t, []int{3, 15, 22, 28, 44}, []int{8, 9, 10})

	decoded, err := c.GetCombination(lottery.FromRank(0))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, decoded.ComponentValues("numbers"))
	assert.Equal(t, []int{1, 2, 3}, decoded.ComponentValues("extra"))
}

// TestGetCombination_NegativeRank is a hard failure.
func TestGetCombination_NegativeRank(t *testing.T) {
	c := mustComposite(t, []int{1, 2, 3, 4, 5}, []int{8, 9, 10})

	_, err := c.GetCombination(lottery.FromRank(-7))
	assert.Error(t, err)
}

// TestGetCombination_FromValues: a flat row splits positionally, the
// first component taking its arity off the front.
func TestGetCombination_FromValues(t *testing.T) {
	c := mustComposite(t, []int{1, 2, 3, 4, 5}, []int{8, 9, 10})

	q, err := c.GetCombination(lottery.FromValues(3, 15, 22, 28, 44, 2, 9, 11))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 15, 22, 28, 44}, q.ComponentValues("numbers"))
	assert.Equal(t, []int{2, 9, 11}, q.ComponentValues("extra"))
}

// TestGetCombination_ShortRow: a short row leaves trailing components
// explicitly empty rather than inheriting the originals.
func TestGetCombination_ShortRow(t *testing.T) {
	c := mustComposite(t, []int{1, 2, 3, 4, 5}, []int{8, 9, 10})

	q, err := c.GetCombination(lottery.FromValues(3, 15, 22))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 15, 22}, q.ComponentValues("numbers"))
	assert.Empty(t, q.ComponentValues("extra"))
	assert.Equal(t, 3, q.Length())
}

// TestGetCombination_Sparse: an empty query keeps only the overridden
// components — the deliberate contrast with Copy.
func TestGetCombination_Sparse(t *testing.T) {
	c := mustComposite(t, []int{1, 2, 3, 4, 5}, []int{8, 9, 10})

	q, err := c.GetCombination(lottery.None, lottery.Set("numbers", combo.Values(1, 2, 6)))
	require.NoError(t, err)
	assert.Equal(t, []string{"numbers"}, q.Names())
	assert.Equal(t, []int{1, 2, 6}, q.ComponentValues("numbers"))
	assert.Equal(t, 3, q.Length())
}

// TestGetCombination_UnknownOverride fails atomically.
func TestGetCombination_UnknownOverride(t *testing.T) {
	c := mustComposite(t, []int{1, 2, 3, 4, 5}, []int{8, 9, 10})

	_, err := c.GetCombination(lottery.None, lottery.Set("bonus", combo.Values(1)))
	assert.ErrorIs(t, err, lottery.ErrUnknownComponent)

	_, err = c.Copy(lottery.Set("bonus", combo.Values(1)))
	assert.ErrorIs(t, err, lottery.ErrUnknownComponent)
}

// TestGetCombination_FromComposite: another composite contributes its
// components and its prize table; overrides win over both.
func TestGetCombination_FromComposite(t *testing.T) {
	c := mustComposite(t, []int{1, 2, 3, 4, 5}, []int{8, 9, 10})
	other := mustComposite(t, []int{6, 7, 8, 9, 10}, []int{1, 2, 3},
		lottery.WithWinningRanks(tieredTable))

	q, err := c.GetCombination(lottery.From(other))
	require.NoError(t, err)
	assert.Equal(t, []int{6, 7, 8, 9, 10}, q.ComponentValues("numbers"))
	assert.Equal(t, []int{1, 2, 3}, q.ComponentValues("extra"))
	assert.Equal(t, tieredTable, q.WinningRanks())

	q, err = c.GetCombination(lottery.From(other), lottery.Set("extra", combo.Values(18, 19, 20)))
	require.NoError(t, err)
	assert.Equal(t, []int{6, 7, 8, 9, 10}, q.ComponentValues("numbers"))
	assert.Equal(t, []int{18, 19, 20}, q.ComponentValues("extra"))
}

// TestGetCombination_ComponentRankOverride: an override can address one
// component by its own rank.
func TestGetCombination_ComponentRankOverride(t *testing.T) {
	c := mustComposite(t, []int{1, 2, 3, 4, 5}, []int{8, 9, 10})

	q, err := c.GetCombination(lottery.None, lottery.Set("extra", combo.FromRank(0)))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, q.ComponentValues("extra"))
}

// TestCopy_KeepsAllComponents: Copy preserves unnamed components and
// replaces named ones.
func TestCopy_KeepsAllComponents(t *testing.T) {
	c := mustComposite(t, []int{1, 2, 3, 4, 5}, []int{8, 9, 10},
		lottery.WithWinningRanks(tieredTable))

	cp, err := c.Copy(lottery.Set("numbers", combo.Values(6, 7, 8, 9, 10)))
	require.NoError(t, err)
	assert.Equal(t, []string{"numbers", "extra"}, cp.Names())
	assert.Equal(t, []int{6, 7, 8, 9, 10}, cp.ComponentValues("numbers"))
	assert.Equal(t, []int{8, 9, 10}, cp.ComponentValues("extra"))
	assert.Equal(t, tieredTable, cp.WinningRanks())
}

// TestCopy_EmptyOverrideFallsBack: an empty override input keeps the
// original component.
func TestCopy_EmptyOverrideFallsBack(t *testing.T) {
	c := mustComposite(t, []int{1, 2, 3, 4, 5}, []int{8, 9, 10})

	cp, err := c.Copy(lottery.Set("extra", combo.Values()))
	require.NoError(t, err)
	assert.Equal(t, []int{8, 9, 10}, cp.ComponentValues("extra"))

	cp, err = c.Copy(lottery.Set("extra", combo.None))
	require.NoError(t, err)
	assert.Equal(t, []int{8, 9, 10}, cp.ComponentValues("extra"))
}
