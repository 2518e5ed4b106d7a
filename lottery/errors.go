package lottery

import "errors"

var (
	// ErrUnknownComponent indicates an override or query naming a
	// component the composite does not declare. The failure is atomic:
	// no partial application happens.
	ErrUnknownComponent = errors.New("lottery: unknown component")
	// ErrNilComponent indicates a nil bounded combination supplied as a
	// component.
	ErrNilComponent = errors.New("lottery: nil component")
	// ErrDuplicateComponent indicates the same component name declared
	// twice.
	ErrDuplicateComponent = errors.New("lottery: duplicate component")
)
