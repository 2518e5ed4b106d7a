// Package combo provides the Combination value type — an immutable set
// of drawn numbers with a lazily computed lexicographic rank — and
// Bounded, a Combination restricted to a closed universe [start,end]
// with a fixed arity.
//
// 🚀 What is a Combination?
//
//	A set of distinct integers with a canonical ascending order, a start
//	offset (the smallest legal value, default 1), and a dense integer
//	rank: its position among all same-size subsets, per the
//	combinatorial number system in package ranking.
//
// ✨ Key features:
//   - Value semantics: every operation returns a new instance
//   - Lazy rank: computed on first access, cached thereafter
//   - Set algebra: Equals, Includes, Intersects, Intersection,
//     Compares, Similarity — arguments normalized through Input
//   - Bounded spaces: Space{Start,End,Count} knows its total size and
//     samples uniformly, optionally spread over contiguous partitions
//   - Fixed-width rendering sized to the universe's digit width
//
// ⚙️ Usage:
//
//	s := combo.Space{Start: 1, End: 50, Count: 5}
//	grid, err := s.New(combo.Values(3, 15, 22, 28, 44))
//	rank, err := grid.Rank()              // dense position in C(50,5)
//	back, err := s.New(combo.FromRank(rank))
//
// Leniency contract (deliberate, inherited from the draw-import path):
// Bounded construction clamps out-of-range values into [start,end] and
// drops values beyond the arity instead of rejecting them. Empty or nil
// input is the empty combination. Unbounded construction, by contrast,
// rejects values below start.
//
// Concurrency:
//   - Lazy rank caching mutates the receiver once; instances must not be
//     shared across goroutines without external synchronization.
//   - Generate with a nil RNG uses a shared deterministic stream that is
//     NOT goroutine-safe; concurrent generators must inject their own
//     *rand.Rand (see NewRand).
package combo
