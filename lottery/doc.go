// Package lottery composes several named bounded combinations into one
// combinatorial space with a single combined rank, and classifies
// overlap between two composites against a prize table.
//
// 🚀 What is a composite combination?
//
//	An ordered list of named components, each a combo.Bounded in its own
//	universe — e.g. "numbers": 5 of 1..50 plus "stars": 2 of 1..12.
//	Declaration order matters twice: it fixes the mixed-radix digit
//	weights (the first component is most significant) and the positional
//	splitting of flat value rows.
//
//	    rank  = Σ component.rank × Π(totals of later components)
//	    total = Π component.total
//
// ✨ Key features:
//   - Mixed-radix rank composition and exact decoding via GetCombination
//   - One query surface: a whole-space rank, a flat value row, another
//     composite, or per-component overrides — all four resolve through
//     GetCombination before any set algebra runs
//   - Sparse queries: overrides alone build a partial composite holding
//     only the named components, distinct from Copy which keeps them all
//   - WinningRanks: a table from per-component overlap patterns ("5:2")
//     to prize ranks, consulted by WinningRank
//   - Partitioned sampling over the combined space, mirroring
//     combo.Bounded.Generate
//   - Game presets (EuroMillions, EuroDreams) that pin bounds, arity and
//     prize table, and rebuild into their own shape via a Factory hook
//
// ⚙️ Usage:
//
//	draw, err := lottery.NewEuroMillions(combo.Values(3, 15, 22, 28, 44), combo.Values(2, 9))
//	ticket, err := draw.GetCombination(lottery.FromValues(3, 15, 22, 28, 45, 2, 9))
//	prize, won, err := draw.WinningRank(lottery.From(ticket))
//
// Composites are value objects like their components: derived variants
// come from Copy and GetCombination, never from mutation. The lazily
// cached rank, total and value row make instances unsafe to share
// across goroutines without external synchronization, and sampling with
// a nil RNG shares the combo package's deterministic default stream.
package lottery
