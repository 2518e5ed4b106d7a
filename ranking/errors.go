package ranking

import "errors"

var (
	// ErrNegativeRank is returned when a negative rank is passed to Unrank.
	ErrNegativeRank = errors.New("ranking: rank must not be negative")
	// ErrNegativeLength is returned when a negative length is passed to Unrank.
	ErrNegativeLength = errors.New("ranking: length must not be negative")
	// ErrDomain is returned for binomial arguments outside 0 ≤ k ≤ n.
	ErrDomain = errors.New("ranking: binomial coefficient undefined for these arguments")
	// ErrOverflow is returned when a coefficient or rank exceeds int64.
	ErrOverflow = errors.New("ranking: value exceeds int64 range")
)
