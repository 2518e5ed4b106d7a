package lottery

import (
	"strconv"
	"strings"
)

// Pattern is a per-component overlap signature in declaration order,
// rendered as colon-separated counts: a ticket matching 5 numbers and
// 2 stars has pattern "5:2".
type Pattern string

// PatternOf builds a Pattern from per-component overlap counts.
func PatternOf(counts ...int) Pattern {
	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = strconv.Itoa(n)
	}

	return Pattern(strings.Join(parts, ":"))
}

// WinningRanks maps overlap patterns to prize ranks (1 is the jackpot).
// Several patterns may share one prize rank, as EuroDreams does.
type WinningRanks map[Pattern]int

// clone returns a copy; nil stays nil.
func (w WinningRanks) clone() WinningRanks {
	if w == nil {
		return nil
	}

	out := make(WinningRanks, len(w))
	for p, r := range w {
		out[p] = r
	}

	return out
}
