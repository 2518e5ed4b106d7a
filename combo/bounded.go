package combo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lottorank/ranking"
)

// Space describes a bounded universe: values in [Start, End] drawn
// Count at a time. The zero value is invalid; End must not sink below
// Start and Count must not be negative.
type Space struct {
	Start int
	End   int
	Count int
}

// validate checks the bounds.
func (s Space) validate() error {
	if s.End < s.Start || s.Count < 0 {
		return fmt.Errorf("%w: [%d,%d] count %d", ErrInvalidSpace, s.Start, s.End, s.Count)
	}

	return nil
}

// Total returns the space size C(End-Start+1, Count).
func (s Space) Total() (int64, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}

	return ranking.Binomial(s.End-s.Start+1, s.Count)
}

// Bounded is a Combination restricted to a Space: it knows its universe
// bounds, its fixed arity, and the total number of same-shape
// combinations, and can sample uniformly within that space.
type Bounded struct {
	Combination
	end   int
	count int
	total int64
}

// New builds a Bounded from the given input.
//
// Normalization, in the order the draw-import path relies on:
//   - a bare rank is unranked into Count values (the rank is trusted and
//     cached, not re-verified);
//   - a {values, rank} pair keeps both as given;
//   - a value list is truncated to its first Count elements, then each
//     value is clamped into [Start, End] — lenient by design, see the
//     package doc;
//   - an existing combination is re-based onto Start and then clamped
//     and truncated like a value list; its cached rank survives only
//     when clamping changed nothing.
//
// WithTotal supplies an already-known space size so value-preserving
// copies skip the binomial lookup.
func (s Space) New(in Input, opts ...Option) (*Bounded, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	total := int64(0)
	if cfg.total != nil {
		total = *cfg.total
	} else {
		t, err := s.Total()
		if err != nil {
			return nil, err
		}
		total = t
	}

	b := &Bounded{end: s.End, count: s.Count, total: total}

	switch in.kind {
	case inputRank:
		vals, err := ranking.Unrank(in.rank, s.Count, s.Start)
		if err != nil {
			return nil, err
		}
		b.Combination = *newFromOwned(vals, s.Start)
		b.rank = in.rank
		b.hasRank = true
	case inputRanked:
		b.Combination = *newFromOwned(normalizeValues(in.values), s.Start)
		b.rank = in.rank
		b.hasRank = true
	case inputSet:
		if in.set == nil {
			b.Combination = *newFromOwned([]int{}, s.Start)
			break
		}
		raw := in.set.ValuesAt(s.Start)
		vals := s.confine(raw)
		b.Combination = *newFromOwned(vals, s.Start)
		if equalInts(vals, normalizeValues(raw)) {
			if cr, ok := in.set.(cachedRanker); ok {
				if r, known := cr.cachedRank(); known {
					b.rank = r
					b.hasRank = true
				}
			}
		}
	case inputValues:
		b.Combination = *newFromOwned(s.confine(in.values), s.Start)
	default:
		b.Combination = *newFromOwned([]int{}, s.Start)
	}

	return b, nil
}

// confine truncates raw input to the first Count elements and clamps
// each survivor into [Start, End], returning the ascending set.
func (s Space) confine(vals []int) []int {
	if len(vals) > s.Count {
		vals = vals[:s.Count]
	}

	clamped := make([]int, len(vals))
	for i, v := range vals {
		switch {
		case v < s.Start:
			v = s.Start
		case v > s.End:
			v = s.End
		}
		clamped[i] = v
	}

	return normalizeValues(clamped)
}

// End returns the universe upper bound.
func (b *Bounded) End() int { return b.end }

// Count returns the fixed arity.
func (b *Bounded) Count() int { return b.count }

// Total returns the space size, computed once at construction.
func (b *Bounded) Total() int64 { return b.total }

// Space returns the universe description.
func (b *Bounded) Space() Space {
	return Space{Start: b.start, End: b.end, Count: b.count}
}

// Copy returns a new instance in the same space. An absent input keeps
// the current values (and any cached rank); anything else — including an
// explicitly empty Values() — replaces them. The space size is reused,
// never recomputed.
func (b *Bounded) Copy(in Input) (*Bounded, error) {
	if in.IsNone() {
		in = Of(b)
	}

	return b.Space().New(in, WithTotal(b.total))
}

// CopyInto re-shapes the combination into another space: values are
// re-based onto the new start, then clamped and truncated per the new
// bounds. The cached space size is reused only when the space is
// unchanged.
func (b *Bounded) CopyInto(s Space, in Input) (*Bounded, error) {
	if in.IsNone() {
		in = Of(b)
	}
	if s == b.Space() {
		return s.New(in, WithTotal(b.total))
	}

	return s.New(in)
}

// String renders the values comma-separated, each right-justified to
// the digit width of End, with the whole row right-justified to the
// width of a full-arity rendering. Partial combinations therefore line
// up under full ones.
func (b *Bounded) String() string {
	width := len(strconv.Itoa(b.end))
	parts := make([]string, len(b.values))
	for i, v := range b.values {
		parts[i] = fmt.Sprintf("%*d", width, v)
	}
	row := strings.Join(parts, ", ")

	full := b.count*(width+2) - 2
	if full < 0 {
		full = 0
	}

	return "[" + fmt.Sprintf("%*s", full, row) + "]"
}
