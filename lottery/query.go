package lottery

import (
	"fmt"

	"github.com/katalvlaran/lottorank/combo"
)

// argKind discriminates the query encodings an Arg can carry.
type argKind uint8

const (
	argNone argKind = iota
	argRank
	argValues
	argComb
)

// Arg is the one query type accepted by the composite operations: a
// whole-space rank, a flat value row, another composite, or nothing.
// The zero value is the empty query, which resolves to whatever the
// accompanying overrides name — and to the empty composite when there
// are none.
type Arg struct {
	kind   argKind
	rank   int64
	values []int
	comb   *Combination
}

// None is the empty query.
var None = Arg{}

// FromRank wraps a rank over the combined space; GetCombination decodes
// it into per-component ranks by repeated divmod.
func FromRank(r int64) Arg {
	return Arg{kind: argRank, rank: r}
}

// FromValues wraps a flat value row, split positionally across the
// components in declaration order.
func FromValues(vs ...int) Arg {
	return Arg{kind: argValues, values: vs}
}

// From wraps another composite. A nil composite is the empty query.
func From(c *Combination) Arg {
	if c == nil {
		return None
	}

	return Arg{kind: argComb, comb: c}
}

// Override replaces one named component in a query or a copy.
type Override struct {
	name string
	in   combo.Input
}

// Set names a component and the input that replaces it. A combo.None
// input keeps the component's current values; an explicit empty
// combo.Values() empties it.
func Set(name string, in combo.Input) Override {
	return Override{name: name, in: in}
}

// resolveOverrides derives one component per override from the matching
// declared component, preserving override order. An unknown name fails
// atomically with ErrUnknownComponent.
func (c *Combination) resolveOverrides(ovs []Override) ([]Component, error) {
	out := make([]Component, 0, len(ovs))
	for _, ov := range ovs {
		comp, ok := c.comps[ov.name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, ov.name)
		}

		derived, err := comp.Copy(ov.in)
		if err != nil {
			return nil, err
		}
		out = append(out, Component{Name: ov.name, Comb: derived})
	}

	return out, nil
}

// GetCombination is the central constructor/dispatcher. The query
// resolves to a component list, overrides win over whatever the query
// produced, and the result is rebuilt through the factory hook:
//
//   - another composite merges its components with the overrides and
//     passes its own prize table along;
//   - a rank is decoded into per-component ranks by repeated divmod
//     against each component's total, peeling the least-significant
//     (last-declared) component first;
//   - a flat value row is split positionally: the first component
//     consumes its arity off the front, the remainder feeds the next;
//   - an empty query yields only the components named in the overrides.
//     This is deliberately sparse — Copy is the variant that keeps every
//     component.
func (c *Combination) GetCombination(arg Arg, ovs ...Override) (*Combination, error) {
	resolved, err := c.resolveOverrides(ovs)
	if err != nil {
		return nil, err
	}

	winning := c.winning
	var base []Component

	switch arg.kind {
	case argComb:
		base = arg.comb.Components()
		winning = arg.comb.winning
	case argRank:
		base, err = c.decodeRank(arg.rank)
		if err != nil {
			return nil, err
		}
	case argValues:
		base, err = c.splitValues(arg.values)
		if err != nil {
			return nil, err
		}
	default:
		return c.rebuild(resolved, winning)
	}

	return c.rebuild(mergeComponents(base, resolved), winning)
}

// decodeRank peels per-component ranks off a combined rank, least
// significant (last declared) first, and reassembles in declaration
// order.
func (c *Combination) decodeRank(rank int64) ([]Component, error) {
	out := make([]Component, len(c.names))
	for i := len(c.names) - 1; i >= 0; i-- {
		comp := c.comps[c.names[i]]
		part := rank % comp.Total()
		rank /= comp.Total()

		derived, err := comp.Copy(combo.FromRank(part))
		if err != nil {
			return nil, err
		}
		out[i] = Component{Name: c.names[i], Comb: derived}
	}

	return out, nil
}

// splitValues distributes a flat row positionally: each component takes
// its arity off the front. A short row leaves trailing components
// explicitly empty; excess values are dropped.
func (c *Combination) splitValues(values []int) ([]Component, error) {
	out := make([]Component, len(c.names))
	rest := values
	for i, name := range c.names {
		comp := c.comps[name]
		take := comp.Count()
		if take > len(rest) {
			take = len(rest)
		}

		derived, err := comp.Copy(combo.Values(rest[:take]...))
		if err != nil {
			return nil, err
		}
		out[i] = Component{Name: name, Comb: derived}
		rest = rest[take:]
	}

	return out, nil
}

// mergeComponents overlays overrides onto a base list: matching names
// are replaced in place, new names are appended in override order.
func mergeComponents(base, overrides []Component) []Component {
	out := make([]Component, len(base), len(base)+len(overrides))
	copy(out, base)

	for _, ov := range overrides {
		replaced := false
		for i := range out {
			if out[i].Name == ov.Name {
				out[i] = ov
				replaced = true

				break
			}
		}
		if !replaced {
			out = append(out, ov)
		}
	}

	return out
}

// rebuild routes every derived construction through the factory hook so
// subclass-like presets keep their concrete shape; without a hook it
// falls back to the generic constructor.
func (c *Combination) rebuild(comps []Component, winning WinningRanks) (*Combination, error) {
	if c.factory == nil {
		return New(comps, WithWinningRanks(winning))
	}

	out, err := c.factory(comps, winning)
	if err != nil {
		return nil, err
	}
	if out.factory == nil {
		out.factory = c.factory
	}

	return out, nil
}

// Copy returns a same-shape composite keeping every component, with the
// named ones replaced. An empty override input falls back to the
// original component. Unlike GetCombination, unnamed components are
// preserved, never dropped.
func (c *Combination) Copy(ovs ...Override) (*Combination, error) {
	byName := make(map[string]combo.Input, len(ovs))
	for _, ov := range ovs {
		if _, ok := c.comps[ov.name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, ov.name)
		}
		byName[ov.name] = ov.in
	}

	out := make([]Component, len(c.names))
	for i, name := range c.names {
		comp := c.comps[name]
		if in, ok := byName[name]; ok && !in.IsEmpty() {
			derived, err := comp.Copy(in)
			if err != nil {
				return nil, err
			}
			comp = derived
		}
		out[i] = Component{Name: name, Comb: comp}
	}

	return c.rebuild(out, c.winning)
}
