package lottery

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lottorank/combo"
)

// Equals reports whether the composite equals the resolved query:
// identical total length, identical component count, and component-wise
// ordered equality — name and position both matter, not just set
// membership.
func (c *Combination) Equals(arg Arg, ovs ...Override) (bool, error) {
	q, err := c.GetCombination(arg, ovs...)
	if err != nil {
		return false, err
	}

	if q.Length() != c.Length() {
		return false, nil
	}
	if q.Length() == 0 {
		return true, nil
	}
	if len(q.names) != len(c.names) {
		return false, nil
	}

	for i, name := range c.names {
		if name != q.names[i] {
			return false, nil
		}
		eq, err := c.comps[name].Equals(combo.Of(q.comps[name]))
		if err != nil {
			return false, err
		}
		if !eq {
			return false, nil
		}
	}

	return true, nil
}

// Includes reports whether every component named in the (possibly
// sparse) resolved query is a subset of the matching component. An
// empty query is vacuously included; a query naming a component the
// composite lacks fails with ErrUnknownComponent.
func (c *Combination) Includes(arg Arg, ovs ...Override) (bool, error) {
	q, err := c.GetCombination(arg, ovs...)
	if err != nil {
		return false, err
	}
	if q.Length() == 0 {
		return true, nil
	}

	for _, name := range q.names {
		comp, ok := c.comps[name]
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
		}
		if !comp.Includes(combo.Of(q.comps[name])) {
			return false, nil
		}
	}

	return true, nil
}

// Intersects reports whether ALL non-empty components of the resolved
// query share at least one value with their counterpart — a logical
// AND across components, not an OR. An empty query, or an empty
// composite, never intersects.
func (c *Combination) Intersects(arg Arg, ovs ...Override) (bool, error) {
	q, err := c.GetCombination(arg, ovs...)
	if err != nil {
		return false, err
	}
	if q.Length() == 0 || c.Length() == 0 {
		return false, nil
	}

	for _, name := range q.names {
		other := q.comps[name]
		if other.Length() == 0 {
			continue
		}

		comp, ok := c.comps[name]
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
		}
		if !comp.Intersects(combo.Of(other)) {
			return false, nil
		}
	}

	return true, nil
}

// Intersection returns the component-wise intersection with the
// resolved query, reassembled through the factory hook and carrying the
// composite's own prize table. Components absent from a sparse query
// stay absent (a preset's factory may re-materialize them empty).
func (c *Combination) Intersection(arg Arg, ovs ...Override) (*Combination, error) {
	q, err := c.GetCombination(arg, ovs...)
	if err != nil {
		return nil, err
	}

	return c.intersectionOf(q)
}

// intersectionOf rebuilds a sparse composite from the per-component
// intersections with an already-resolved query.
func (c *Combination) intersectionOf(q *Combination) (*Combination, error) {
	ovs := make([]Override, 0, len(q.names))
	for _, name := range q.names {
		comp, ok := c.comps[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
		}
		ovs = append(ovs, Set(name, combo.Of(comp.Intersection(combo.Of(q.comps[name])))))
	}

	return c.GetCombination(None, ovs...)
}

// Compares orders the composite against the resolved query: the first
// component (in the query's order) where the two differ decides the
// sign. Two empty composites are equal; exactly one empty makes the
// non-empty side greater.
func (c *Combination) Compares(arg Arg, ovs ...Override) (int, error) {
	q, err := c.GetCombination(arg, ovs...)
	if err != nil {
		return 0, err
	}

	if q.Length() == 0 && c.Length() == 0 {
		return 0, nil
	}
	if q.Length() == 0 || c.Length() == 0 {
		if c.Length() < q.Length() {
			return -1, nil
		}

		return 1, nil
	}

	for _, name := range q.names {
		comp, ok := c.comps[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
		}

		d, err := comp.Compares(combo.Of(q.comps[name]))
		if err != nil {
			return 0, err
		}
		if d != 0 {
			return d, nil
		}
	}

	return 0, nil
}

// Similarity returns 1.0 when the paired components are structurally
// equal, 0.0 when exactly one side is empty, and otherwise the length
// of the component-wise intersection over the composite's own length.
// Only components named in the resolved query contribute to the
// numerator; a sparse query's absent components count for nothing.
func (c *Combination) Similarity(arg Arg, ovs ...Override) (float64, error) {
	q, err := c.GetCombination(arg, ovs...)
	if err != nil {
		return 0, err
	}

	if q.Length() == 0 && c.Length() == 0 {
		return 1.0, nil
	}
	if q.Length() == 0 || c.Length() == 0 {
		return 0.0, nil
	}

	same := true
	pairs := len(c.names)
	if len(q.names) < pairs {
		pairs = len(q.names)
	}
	for i := 0; i < pairs; i++ {
		if c.names[i] != q.names[i] {
			same = false

			break
		}
		eq, err := c.comps[c.names[i]].Equals(combo.Of(q.comps[q.names[i]]))
		if err != nil {
			return 0, err
		}
		if !eq {
			same = false

			break
		}
	}
	if same {
		return 1.0, nil
	}

	inter, err := c.intersectionOf(q)
	if err != nil {
		return 0, err
	}

	return float64(inter.Length()) / float64(c.Length()), nil
}

// WinningRank classifies the overlap with the resolved query: the
// intersection's per-component lengths form a Pattern looked up in the
// prize table. The boolean reports whether the pattern is a winning
// one.
func (c *Combination) WinningRank(arg Arg, ovs ...Override) (int, bool, error) {
	inter, err := c.Intersection(arg, ovs...)
	if err != nil {
		return 0, false, err
	}

	counts := make([]int, len(inter.names))
	for i, name := range inter.names {
		counts[i] = inter.comps[name].Length()
	}

	rank, ok := c.winning[PatternOf(counts...)]

	return rank, ok, nil
}

// Generate samples n composites from the combined space, decoding each
// drawn rank via GetCombination. The partitioning contract matches
// combo.Bounded.Generate: draw i lands in contiguous block i mod
// partitions. n below 1 is read as 1; a nil rng uses the shared
// deterministic default stream.
func (c *Combination) Generate(n, partitions int, rng *rand.Rand) ([]*Combination, error) {
	total, err := c.Total()
	if err != nil {
		return nil, err
	}
	if n < 1 {
		n = 1
	}

	out := make([]*Combination, 0, n)
	for i := 0; i < n; i++ {
		r, err := combo.DrawRank(total, i, partitions, rng)
		if err != nil {
			return nil, err
		}

		sample, err := c.GetCombination(FromRank(r))
		if err != nil {
			return nil, err
		}
		out = append(out, sample)
	}

	return out, nil
}
