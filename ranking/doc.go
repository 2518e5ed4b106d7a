// Package ranking implements the combinatorial number system: a dense
// bijection between non-negative integers and strictly increasing
// k-tuples of non-negative integers.
//
// 🚀 What is the combinatorial number system?
//
//	Every ascending k-tuple c₀ < c₁ < … < c_{k-1} has a unique rank
//
//	    rank = Σ C(cᵢ, i+1)
//
//	which is exactly its lexicographic position among all ascending
//	k-tuples. Rank converts tuples to integers, Unrank converts back.
//
// ✨ Key features:
//   - Rank accepts values in any order and an offset (smallest legal value)
//   - Unrank walks Pascal's triangle incrementally: O(length) work total,
//     no binomial recomputation from scratch
//   - Binomial coefficients are memoized in an explicit, growable Table;
//     a synchronized process-wide table backs the package-level helpers
//   - int64 arithmetic with additive overflow detection (ErrOverflow)
//
// ⚙️ Usage:
//
//	r, err := ranking.Rank([]int{23, 33, 45}, 0) // 14741
//	vs, err := ranking.Unrank(14741, 3, 0)       // [23 33 45]
//	n, err := ranking.Binomial(50, 5)            // 2118760
//
// The default table grows monotonically and is never evicted; callers
// with an unusual universe size can own a private Table instead.
//
// Performance:
//
//   - Rank:     O(k) table lookups after an O(k log k) sort
//   - Unrank:   O(k) arithmetic steps
//   - Binomial: O(1) after the row is materialized, O(n²) to grow to row n
package ranking
