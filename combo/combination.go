package combo

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lottorank/ranking"
)

// DefaultStart is the smallest legal value when none is given; drawn
// numbers conventionally count from 1.
const DefaultStart = 1

// cachedRanker exposes an already-known rank without forcing computation.
// Both Combination and Bounded implement it; constructors use it to carry
// a cached rank across derivations.
type cachedRanker interface {
	cachedRank() (int64, bool)
}

// Combination is an immutable set of distinct integers with a canonical
// ascending order, a start offset, and a lazily computed rank.
//
// The zero value is not usable; create instances with New.
type Combination struct {
	values  []int // ascending, deduplicated
	start   int
	rank    int64
	hasRank bool
}

// config collects construction options shared by New and Copy.
type config struct {
	start *int
	rank  *int64
	total *int64
}

// Option adjusts a construction or copy.
type Option func(*config)

// WithStart sets the start offset (smallest legal value).
func WithStart(start int) Option {
	return func(c *config) { c.start = &start }
}

// WithRank supplies a trusted, already-known rank. It is never verified
// against the values — the persistence contract.
func WithRank(rank int64) Option {
	return func(c *config) { c.rank = &rank }
}

// WithTotal supplies a trusted, already-known space size to a bounded
// construction, skipping the binomial lookup. Ignored by New.
func WithTotal(total int64) Option {
	return func(c *config) { c.total = &total }
}

// New builds a Combination from the given input. Accepted inputs: a
// value list, a trusted {values, rank} pair, an existing combination
// (optionally re-based via WithStart), or None for the empty
// combination. A bare rank is rejected with ErrRankInput — only bounded
// spaces know the arity needed to decode one.
//
// Values are deduplicated and sorted; a value below the start offset
// fails with ErrBelowStart.
func New(in Input, opts ...Option) (*Combination, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if in.kind == inputRank {
		return nil, ErrRankInput
	}

	start := DefaultStart
	var vals []int
	var rank *int64

	if in.kind == inputSet && in.set != nil {
		start = in.set.Start()
		if cfg.start != nil {
			start = *cfg.start
		}
		// Re-basing shifts values and offset together, so a cached rank
		// stays valid.
		vals = in.set.ValuesAt(start)
		if cr, ok := in.set.(cachedRanker); ok {
			if r, known := cr.cachedRank(); known {
				rank = &r
			}
		}
	} else {
		if cfg.start != nil {
			start = *cfg.start
		}
		vals = in.values
		if in.kind == inputRanked {
			r := in.rank
			rank = &r
		}
	}
	if cfg.rank != nil {
		rank = cfg.rank
	}

	sorted := normalizeValues(vals)
	for _, v := range sorted {
		if v < start {
			return nil, fmt.Errorf("%w: %d < %d", ErrBelowStart, v, start)
		}
	}

	c := &Combination{values: sorted, start: start}
	if rank != nil {
		c.rank = *rank
		c.hasRank = true
	}

	return c, nil
}

// newFromOwned wraps values already ascending, deduplicated, and
// validated; the slice is taken over, not copied.
func newFromOwned(values []int, start int) *Combination {
	return &Combination{values: values, start: start}
}

// Values returns the ascending values. The slice is a copy.
func (c *Combination) Values() []int {
	out := make([]int, len(c.values))
	copy(out, c.values)

	return out
}

// ValuesAt returns the values shifted by start - c.Start(): the same
// subset expressed against a new smallest legal value.
func (c *Combination) ValuesAt(start int) []int {
	offset := start - c.start
	out := make([]int, len(c.values))
	for i, v := range c.values {
		out[i] = v + offset
	}

	return out
}

// Start returns the smallest legal value.
func (c *Combination) Start() int { return c.start }

// Length returns the cardinality.
func (c *Combination) Length() int { return len(c.values) }

// Rank returns the lexicographic rank, computing it on first access and
// caching it thereafter. The rank doubles as the combination's hash.
// The cache write is not synchronized; see the package doc.
func (c *Combination) Rank() (int64, error) {
	if c.hasRank {
		return c.rank, nil
	}

	r, err := ranking.Rank(c.values, c.start)
	if err != nil {
		return 0, err
	}
	c.rank = r
	c.hasRank = true

	return r, nil
}

// cachedRank reports the rank only if it is already known.
func (c *Combination) cachedRank() (int64, bool) {
	return c.rank, c.hasRank
}

// At returns the i-th ascending value, or ErrIndexOutOfRange.
func (c *Combination) At(i int) (int, error) {
	if i < 0 || i >= len(c.values) {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.values))
	}

	return c.values[i], nil
}

// Copy returns a new instance, optionally re-based onto another start.
// Values and any cached rank carry over (re-basing keeps ranks valid).
func (c *Combination) Copy(opts ...Option) *Combination {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	start := c.start
	if cfg.start != nil {
		start = *cfg.start
	}

	out := newFromOwned(c.ValuesAt(start), start)
	if cfg.rank != nil {
		out.rank = *cfg.rank
		out.hasRank = true
	} else if c.hasRank {
		out.rank = c.rank
		out.hasRank = true
	}

	return out
}

// Equals reports equality with the input: another combination compares
// re-based value sets, a bare rank compares ranks, a value list compares
// raw sets, and an empty input equals only the empty combination.
func (c *Combination) Equals(in Input) (bool, error) {
	switch in.kind {
	case inputRank:
		r, err := c.Rank()
		if err != nil {
			return false, err
		}

		return r == in.rank, nil
	case inputSet:
		if in.set == nil {
			return len(c.values) == 0, nil
		}

		return equalInts(c.values, in.set.ValuesAt(c.start)), nil
	default:
		return equalInts(c.values, normalizeValues(in.values)), nil
	}
}

// IncludesValue reports membership of a single number.
func (c *Combination) IncludesValue(v int) bool {
	i := sort.SearchInts(c.values, v)

	return i < len(c.values) && c.values[i] == v
}

// Includes reports whether every value of the input belongs to the
// combination. Combinations are re-based first; an empty input is
// vacuously included.
func (c *Combination) Includes(in Input) bool {
	for _, v := range in.rawValues(c.start) {
		if !c.IncludesValue(v) {
			return false
		}
	}

	return true
}

// Intersects reports whether the input shares at least one value with
// the combination. An empty input never intersects anything.
func (c *Combination) Intersects(in Input) bool {
	for _, v := range in.rawValues(c.start) {
		if c.IncludesValue(v) {
			return true
		}
	}

	return false
}

// Intersection returns a new combination holding the shared values,
// keeping the receiver's start offset.
func (c *Combination) Intersection(in Input) *Combination {
	var shared []int
	for _, v := range normalizeValues(in.rawValues(c.start)) {
		if c.IncludesValue(v) {
			shared = append(shared, v)
		}
	}

	return newFromOwned(shared, c.start)
}

// Compares orders the combination against the input: -1, 0 or +1.
// A bare rank compares ranks directly; anything else compares value sets
// first and falls back to the sign of the rank difference.
func (c *Combination) Compares(in Input) (int, error) {
	if in.kind == inputRank {
		r, err := c.Rank()
		if err != nil {
			return 0, err
		}

		return sign(r - in.rank), nil
	}

	otherVals := normalizeValues(in.rawValues(c.start))
	if equalInts(c.values, otherVals) {
		return 0, nil
	}

	selfRank, err := c.Rank()
	if err != nil {
		return 0, err
	}
	otherRank, err := otherRankOf(in, otherVals, c.start)
	if err != nil {
		return 0, err
	}

	return sign(selfRank - otherRank), nil
}

// otherRankOf resolves the comparison rank for a non-rank input, reusing
// a cached rank where the input carries one.
func otherRankOf(in Input, sortedVals []int, start int) (int64, error) {
	if in.kind == inputRanked {
		return in.rank, nil
	}
	if in.kind == inputSet && in.set != nil {
		if cr, ok := in.set.(cachedRanker); ok {
			if r, known := cr.cachedRank(); known {
				return r, nil
			}
		}
	}

	return ranking.Rank(sortedVals, start)
}

// Similarity returns 1.0 for equal sets, 0.0 when exactly one side is
// empty, and otherwise |intersection| / Length().
func (c *Combination) Similarity(in Input) float64 {
	otherVals := normalizeValues(in.rawValues(c.start))
	if equalInts(c.values, otherVals) {
		return 1.0
	}
	if len(c.values) == 0 {
		return 0.0
	}

	return float64(c.Intersection(in).Length()) / float64(len(c.values))
}

// String renders the ascending values as "[v1, v2, ...]".
func (c *Combination) String() string {
	parts := make([]string, len(c.values))
	for i, v := range c.values {
		parts[i] = strconv.Itoa(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// normalizeValues returns an ascending, deduplicated copy of vs.
func normalizeValues(vs []int) []int {
	if len(vs) == 0 {
		return []int{}
	}

	sorted := make([]int, len(vs))
	copy(sorted, vs)
	sort.Ints(sorted)

	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// equalInts compares two ascending slices element-wise.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// sign maps an int64 difference onto {-1, 0, 1}.
func sign(d int64) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
