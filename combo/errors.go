package combo

import "errors"

var (
	// ErrBelowStart indicates a value under the start offset in an
	// unbounded construction (bounded spaces clamp instead).
	ErrBelowStart = errors.New("combo: value below start offset")
	// ErrRankInput indicates a bare rank passed where no arity is known
	// to decode it; ranks need a bounded space.
	ErrRankInput = errors.New("combo: rank input requires a bounded space")
	// ErrIndexOutOfRange indicates an At index outside [0, Length).
	ErrIndexOutOfRange = errors.New("combo: index out of range")
	// ErrInvalidSpace indicates end < start or a negative count.
	ErrInvalidSpace = errors.New("combo: invalid space bounds")
	// ErrEmptySpace indicates sampling over a space with no ranks to draw.
	ErrEmptySpace = errors.New("combo: nothing to draw from")
)
