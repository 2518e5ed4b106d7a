package combo

import (
	"fmt"
	"math/rand"
)

// DrawRank picks a uniform random rank for draw index i over a space of
// the given size, split into partitions contiguous blocks of
// ⌈total/partitions⌉ ranks (the last block truncated to the space).
// Draw i targets block i mod partitions, so a batch of n draws cycles
// through the blocks and spreads across the space instead of clustering.
//
// partitions below 1 is read as 1. A nil rng uses the shared
// deterministic default stream. Fails with ErrEmptySpace when total is
// not positive or the targeted block is past the end of the space.
func DrawRank(total int64, i, partitions int, rng *rand.Rand) (int64, error) {
	if total <= 0 {
		return 0, fmt.Errorf("%w: total %d", ErrEmptySpace, total)
	}
	if partitions < 1 {
		partitions = 1
	}
	if rng == nil {
		rng = defaultRand
	}

	block := int64(i % partitions)
	size := (total + int64(partitions) - 1) / int64(partitions)

	lo := size * block
	hi := size*(block+1) - 1
	if hi > total-1 {
		hi = total - 1
	}
	if lo > hi {
		return 0, fmt.Errorf("%w: partition %d of %d over %d ranks", ErrEmptySpace, block, partitions, total)
	}

	return lo + rng.Int63n(hi-lo+1), nil
}

// Generate samples n combinations from the space. With partitions == 1
// every draw is uniform over the whole space; with more partitions the
// draws are spread across distinct contiguous blocks per DrawRank.
// n below 1 is read as 1. A nil rng uses the shared deterministic
// default stream (not goroutine-safe; see the package doc).
func (b *Bounded) Generate(n, partitions int, rng *rand.Rand) ([]*Bounded, error) {
	if n < 1 {
		n = 1
	}

	out := make([]*Bounded, 0, n)
	for i := 0; i < n; i++ {
		r, err := DrawRank(b.total, i, partitions, rng)
		if err != nil {
			return nil, err
		}

		sample, err := b.Copy(FromRank(r))
		if err != nil {
			return nil, err
		}
		out = append(out, sample)
	}

	return out, nil
}
