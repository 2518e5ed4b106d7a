package combo

// Set is the read surface shared by Combination and Bounded. Anything
// satisfying Set can feed a constructor or a set-algebra operation via Of.
type Set interface {
	// Values returns the ascending values.
	Values() []int
	// ValuesAt returns the values shifted onto a new start offset.
	ValuesAt(start int) []int
	// Start returns the smallest legal value.
	Start() int
	// Length returns the cardinality.
	Length() int
}

// inputKind discriminates the boundary encodings an Input can carry.
type inputKind uint8

const (
	inputEmpty inputKind = iota
	inputValues
	inputRank
	inputRanked
	inputSet
)

// Input is the one argument type accepted at the engine boundary: a raw
// value list, a bare rank, a trusted {values, rank} pair, an existing
// combination, or nothing. The zero value is the empty input, which
// every operation treats as the empty combination.
type Input struct {
	kind   inputKind
	values []int
	rank   int64
	set    Set
}

// None is the empty input.
var None = Input{}

// Values wraps a raw value list.
func Values(vs ...int) Input {
	return Input{kind: inputValues, values: vs}
}

// FromRank wraps a bare lexicographic rank. Only bounded constructions
// can decode it; value-style operations read it as the single number r.
func FromRank(r int64) Input {
	return Input{kind: inputRank, rank: r}
}

// Ranked wraps a {values, rank} pair. The rank is trusted as given and
// never re-verified against the values — the persistence contract.
func Ranked(values []int, rank int64) Input {
	return Input{kind: inputRanked, values: values, rank: rank}
}

// Of wraps an existing combination (Combination or Bounded).
func Of(s Set) Input {
	if s == nil {
		return None
	}

	return Input{kind: inputSet, set: s}
}

// IsNone reports whether the input is absent: the zero Input or a nil
// set. Distinct from an explicitly empty value list — Copy keeps the
// current values for an absent input but empties them for Values().
func (in Input) IsNone() bool {
	return in.kind == inputEmpty || (in.kind == inputSet && in.set == nil)
}

// Split divides a raw value list at position n: the first n values and
// the remainder, both as value inputs. Flat ticket rows use it to peel
// one component's numbers off the front. Inputs that are not plain value
// lists, or that fit within n, come back unchanged with an absent
// second part.
func (in Input) Split(n int) (Input, Input) {
	if in.kind != inputValues || len(in.values) <= n {
		return in, None
	}

	return Values(in.values[:n]...), Values(in.values[n:]...)
}

// IsEmpty reports whether the input carries nothing: the zero Input, a
// nil set, or an empty value list without a trusted rank.
func (in Input) IsEmpty() bool {
	switch in.kind {
	case inputEmpty:
		return true
	case inputValues:
		return len(in.values) == 0
	case inputSet:
		return in.set == nil
	default:
		return false
	}
}

// rawValues flattens the input into a plain value list for set-style
// operations, rebasing combinations onto the given start. A bare rank
// reads as the single number it wraps: in this method family an integer
// means a drawn number, not a position.
func (in Input) rawValues(start int) []int {
	switch in.kind {
	case inputValues, inputRanked:
		return in.values
	case inputRank:
		return []int{int(in.rank)}
	case inputSet:
		if in.set == nil {
			return nil
		}

		return in.set.ValuesAt(start)
	default:
		return nil
	}
}
