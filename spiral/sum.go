package spiral

import (
	"errors"
	"fmt"
)

// MaxTarget is the largest target accepted by SumToTarget. The first spiral
// value exceeding it is the largest spiral value that fits in an int64.
const MaxTarget = 6294170451145774621

// ErrTargetRange is returned by CheckTarget for targets above MaxTarget.
var ErrTargetRange = errors.New("target too large")

// CheckTarget reports whether SumToTarget can be computed for target without
// overflow.
func CheckTarget(target int64) error {
	if target > MaxTarget {
		return fmt.Errorf("target %d (max %d): %w", target, int64(MaxTarget), ErrTargetRange)
	}
	return nil
}

// An Accumulator fills in the spiral where each cell holds the sum of its
// neighbors that were filled in before it. The origin holds 1.
type Accumulator struct {
	c   *Cursor
	g   Grid
	val int64
}

// NewAccumulator returns an Accumulator holding only the origin.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		c:   NewCursor(),
		g:   Grid{{0, 0}: 1},
		val: 1,
	}
}

// Next fills in the next cell and returns its value.
func (a *Accumulator) Next() int64 {
	a.c.Advance(a.g)
	a.val = a.neighborSum()
	a.g[a.c.pos] = a.val
	return a.val
}

// neighborSum adds up the cells next to the cursor that may already be
// filled: the three on its inward side and the one it just left. The other
// neighbors are never filled yet.
func (a *Accumulator) neighborSum() int64 {
	in := a.c.pos.Add(a.c.inward)
	return a.g.Get(in) +
		a.g.Get(in.Add(a.c.around)) +
		a.g.Get(in.Sub(a.c.around)) +
		a.g.Get(a.c.pos.Sub(a.c.around))
}

// Value returns the most recently filled value.
func (a *Accumulator) Value() int64 { return a.val }

// Pos returns the position of the most recently filled cell.
func (a *Accumulator) Pos() Vec2 { return a.c.pos }

// Cursor returns a copy of the accumulator's cursor.
func (a *Accumulator) Cursor() Cursor { return *a.c }

// Len returns the number of filled cells.
func (a *Accumulator) Len() int { return len(a.g) }

// SumToTarget returns the first value written by an Accumulator that is
// larger than target. For target < 1 that is the origin's 1.
// SumToTarget panics if target > MaxTarget.
func SumToTarget(target int64) int64 {
	if err := CheckTarget(target); err != nil {
		panic(err)
	}
	a := NewAccumulator()
	for a.Value() <= target {
		a.Next()
	}
	return a.Value()
}

// Sequence returns the first k values written by an Accumulator, starting
// with the origin's 1.
func Sequence(k int) []int64 {
	if k <= 0 {
		return nil
	}
	a := NewAccumulator()
	vals := make([]int64, 1, k)
	vals[0] = a.Value()
	for len(vals) < k {
		vals = append(vals, a.Next())
	}
	return vals
}
