// Package spiral computes properties of the square spiral used by the
// "spiral memory" puzzle: cells are numbered 1, 2, 3, ... starting at the
// origin and winding outward counterclockwise.
//
//	17  16  15  14  13
//	18   5   4   3  12
//	19   6   1   2  11
//	20   7   8   9  10
//	21  22  23---> ...
package spiral

import "fmt"

// Vec2 is an integer coordinate or offset. X grows to the right and Y grows
// upward.
type Vec2 struct {
	X, Y int64
}

// Add computes v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub computes v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Neg computes -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// RotateCCW rotates v by 90 degrees counterclockwise.
func (v Vec2) RotateCCW() Vec2 {
	return Vec2{-v.Y, v.X}
}

// RotateCW rotates v by 90 degrees clockwise.
func (v Vec2) RotateCW() Vec2 {
	return Vec2{v.Y, -v.X}
}

// Manhattan returns |X| + |Y|, the distance from v to the origin.
func (v Vec2) Manhattan() int64 {
	return abs(v.X) + abs(v.Y)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
