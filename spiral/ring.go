package spiral

import (
	"errors"
	"fmt"
	"math"
)

// ErrCellRange is returned by CheckCell for cell numbers below 1.
var ErrCellRange = errors.New("cell number must be >= 1")

// CheckCell reports whether n is a valid cell number.
func CheckCell(n int64) error {
	if n < 1 {
		return fmt.Errorf("cell %d: %w", n, ErrCellRange)
	}
	return nil
}

// FindRing returns the ring containing cell n: the square of side 2r+1
// centered on the origin. Cell 1 is ring 0.
// FindRing panics if n < 1.
func FindRing(n int64) int64 {
	if err := CheckCell(n); err != nil {
		panic(err)
	}
	return int64(ceilSqrt(uint64(n)) / 2)
}

// Distance returns the Manhattan distance from cell n to cell 1.
// Distance panics if n < 1.
func Distance(n int64) int64 {
	ring := FindRing(n)
	if ring == 0 {
		return 0
	}
	// The ring's last cell is (2r+1)^2, one step counterclockwise of its
	// bottom-right corner. Each side has 2r cells and its midpoint lies r
	// steps from a corner. (2r+1)^2 can exceed MaxInt64 for the outermost
	// ring, so work in uint64.
	side := uint64(2 * ring)
	length := side + 1
	diff := length*length - uint64(n)
	offset := abs(int64(diff%side) - ring)
	return ring + offset
}

// ceilSqrt returns the smallest r such that r*r >= n.
func ceilSqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	// float64 loses precision above 2^53; nudge r into place.
	for r > 0 && (r > math.MaxUint32 || r*r > n) {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}
	if r*r < n {
		r++
	}
	return r
}
