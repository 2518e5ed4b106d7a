// Package lottorank is an in-memory combinatorial indexing engine:
// a dense bijection between integers and k-element subsets, set algebra
// over those subsets, and mixed-radix composition of several bounded
// subsets into one big space with a single combined rank.
//
// 🚀 What is lottorank?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Combinatorial number system: rank ⇄ unrank for k-subsets
//		• Memoized binomial coefficients over an explicit Pascal table
//		• Immutable Combination values with set algebra & similarity
//		• Bounded spaces [start,end] with fixed arity and uniform sampling
//		• Composite spaces (e.g. 5-of-50 + 2-of-12) with one combined rank
//		• Prize classification via per-component overlap patterns
//
// ✨ Why choose lottorank?
//
//   - Exact – every rank round-trips to the same subset, verified by tests
//   - Deterministic – explicit RNG injection, fixed default seed
//   - Pure Go – no cgo, no I/O, no hidden state beyond the memo table
//   - Composable – any number of independently bounded components
//
// Under the hood, everything is organized under three subpackages:
//
//	ranking/ — rank/unrank primitives + memoized binomial coefficients
//	combo/   — Combination & Bounded value types, sampling, rendering
//	lottery/ — composite combinations, winning-rank tables, game presets
//
// Quick example, the EuroMillions space:
//
//	    C(50,5) × C(12,2) = 2,118,760 × 66 = 139,838,160
//
//	one integer in [0, 139838160) identifies one full ticket.
//
// A thin CLI lives under cmd/lottorank for generating, ranking and
// scoring tickets from the shell.
//
//	go get github.com/katalvlaran/lottorank
package lottorank
