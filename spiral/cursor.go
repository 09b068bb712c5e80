package spiral

// A Cursor walks the spiral one cell at a time. It starts at the origin
// heading down, so that its first move turns it to the right.
//
// The cursor keeps the already-visited cells on its inward side. It does
// not remember which cells those are; the Grid is passed to each call to
// Advance.
type Cursor struct {
	pos    Vec2
	around Vec2 // direction of travel
	inward Vec2 // around rotated counterclockwise, as of the last turn
}

// NewCursor returns a Cursor at the origin.
func NewCursor() *Cursor {
	return &Cursor{
		around: Vec2{0, -1},
		inward: Vec2{1, 0},
	}
}

// Advance moves c to the next cell of the spiral. If the cell on the inward
// side of the current position is not in g, c turns counterclockwise
// first. Advance does not record anything in g.
func (c *Cursor) Advance(g Grid) {
	// The turn test uses the inward direction from before the turn and the
	// move uses the direction after it. Swapping these changes the path.
	if !g.Has(c.pos.Add(c.inward)) {
		c.around = c.inward
		c.inward = c.around.RotateCCW()
	}
	c.pos = c.pos.Add(c.around)
}

func (c *Cursor) Pos() Vec2 { return c.pos }
func (c *Cursor) Around() Vec2 { return c.around }
func (c *Cursor) Inward() Vec2 { return c.inward }
