// Package ranking - memoized binomial coefficients.
//
// The cache is an explicit Pascal's triangle grown row by row: row n is
// derived from row n-1 with one addition per entry, so materializing up
// to row n costs O(n²) once and every later lookup is O(1). Entries that
// would exceed int64 are recorded as overflowed and surface ErrOverflow
// only when actually requested.
package ranking

import (
	"fmt"
	"sync"
)

// overflowed marks a triangle entry whose exact value does not fit int64.
// Coefficients are non-negative, so a negative sentinel is unambiguous.
const overflowed int64 = -1

// Table is a growable memo of binomial coefficients.
//
// The zero value is not usable; create one with NewTable. A Table is not
// safe for concurrent use; the package-level Binomial helper wraps a
// shared table behind a mutex.
type Table struct {
	rows [][]int64
}

// NewTable returns an empty coefficient table.
func NewTable() *Table {
	// Seed with row 0 so growth always has a predecessor row.
	return &Table{rows: [][]int64{{1}}}
}

// Binomial returns C(n, k). It fails with ErrDomain for negative
// arguments or k > n, and with ErrOverflow when the exact value does
// not fit in int64.
//
// Complexity: O(1) after row n exists, O(n²) to grow the table to row n.
func (t *Table) Binomial(n, k int) (int64, error) {
	if n < 0 || k < 0 {
		return 0, fmt.Errorf("%w: C(%d,%d)", ErrDomain, n, k)
	}
	if k > n {
		return 0, fmt.Errorf("%w: C(%d,%d)", ErrDomain, n, k)
	}
	t.grow(n)

	v := t.rows[n][k]
	if v == overflowed {
		return 0, fmt.Errorf("%w: C(%d,%d)", ErrOverflow, n, k)
	}

	return v, nil
}

// grow materializes triangle rows up to and including row n.
func (t *Table) grow(n int) {
	for len(t.rows) <= n {
		prev := t.rows[len(t.rows)-1]
		row := make([]int64, len(prev)+1)
		row[0] = 1
		row[len(row)-1] = 1
		for k := 1; k < len(row)-1; k++ {
			a, b := prev[k-1], prev[k]
			if a == overflowed || b == overflowed {
				row[k] = overflowed
				continue
			}
			sum := a + b
			if sum < a {
				// Additive wrap past MaxInt64.
				sum = overflowed
			}
			row[k] = sum
		}
		t.rows = append(t.rows, row)
	}
}

// defaultTable backs the package-level helpers. It grows for the life of
// the process and is never evicted.
var (
	defaultMu    sync.Mutex
	defaultTable = NewTable()
)

// Binomial returns C(n, k) from the shared process-wide table.
// Safe for concurrent use.
func Binomial(n, k int) (int64, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	return defaultTable.Binomial(n, k)
}
