// Package ranking - rank and unrank for ascending k-tuples.
package ranking

import (
	"fmt"
	"sort"
)

// Rank returns the lexicographic rank of the given values among all
// ascending tuples of the same length. Values may arrive in any order;
// offset is subtracted from each value first (the smallest legal value
// maps to 0).
//
// A value v at ascending index i contributes C(v-offset, i+1), except
// when v-offset == i, the "no gap yet" prefix, which contributes 0.
//
// Fails with ErrDomain when a value sinks below offset at its index, and
// with ErrOverflow when the rank exceeds int64.
//
// Complexity: O(k log k) for the sort, then O(k) table lookups.
func Rank(values []int, offset int) (int64, error) {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	var rank int64
	for i, v := range sorted {
		v -= offset
		if v == i {
			continue
		}

		c, err := Binomial(v, i+1)
		if err != nil {
			return 0, err
		}
		sum := rank + c
		if sum < rank {
			return 0, fmt.Errorf("%w: rank of %d values", ErrOverflow, len(values))
		}
		rank = sum
	}

	return rank, nil
}

// Unrank returns the unique ascending tuple of the given length whose
// rank is rank, with offset added back onto every element. It is the
// exact inverse of Rank: Rank(Unrank(r, k, off), off) == r.
//
// The decoder walks Pascal's triangle incrementally: it first climbs to
// the largest C(val+length, length) not exceeding rank, then peels one
// element per position while sliding the coefficient down the triangle,
// so the whole decode costs O(length) arithmetic steps.
//
// Fails with ErrNegativeRank or ErrNegativeLength. length == 0 yields
// an empty tuple; length == 1 yields [rank+offset].
func Unrank(rank int64, length, offset int) ([]int, error) {
	if rank < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRank, rank)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}
	if length == 0 {
		return []int{}, nil
	}
	if length == 1 {
		return []int{int(rank) + offset}, nil
	}

	values := make([]int, length)

	// Climb: find the largest val with C(val-1+length, length) <= rank.
	// binomial tracks C(val-1+length, length) throughout.
	var binomial int64
	var val int
	b := int64(1)
	for b <= rank {
		val++
		binomial = b
		b = b * int64(val+length) / int64(val)
	}

	// Peel positions length-1 down to 2, sliding binomial from
	// C(val-1+index+1, index+1) to C(val-1+index, index) at each step.
	for index := length - 1; index > 1; index-- {
		rank -= binomial
		binomial = binomial * int64(index+1) / int64(val+index)
		values[index] = val + index + offset

		for binomial > rank {
			val--
			binomial = binomial * int64(val) / int64(val+index)
		}
	}

	values[1] = val + 1 + offset
	values[0] = int(rank-binomial) + offset

	return values, nil
}
