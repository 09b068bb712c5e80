package spiral

// A Layout maps between cell numbers and coordinates by walking the spiral.
// It grows on demand; a Layout must not be used from multiple goroutines
// unless it has been grown far enough (see Grow) that no lookup extends it.
type Layout struct {
	c      *Cursor
	index  Grid // coordinate -> cell number
	coords []Vec2
}

// NewLayout returns a Layout containing only cell 1.
func NewLayout() *Layout {
	return &Layout{
		c:      NewCursor(),
		index:  Grid{{0, 0}: 1},
		coords: []Vec2{{0, 0}},
	}
}

// Len returns the number of cells placed so far.
func (l *Layout) Len() int64 {
	return int64(len(l.coords))
}

func (l *Layout) advance() Vec2 {
	l.c.Advance(l.index)
	v := l.c.pos
	l.coords = append(l.coords, v)
	l.index[v] = int64(len(l.coords))
	return v
}

// Grow places cells until cell n exists.
func (l *Layout) Grow(n int64) {
	for l.Len() < n {
		l.advance()
	}
}

// Coords returns the position of cell n.
// Coords panics if n < 1.
func (l *Layout) Coords(n int64) Vec2 {
	if err := CheckCell(n); err != nil {
		panic(err)
	}
	l.Grow(n)
	return l.coords[n-1]
}

// Index returns the number of the cell at v.
func (l *Layout) Index(v Vec2) int64 {
	if n, ok := l.index[v]; ok {
		return n
	}
	// Rings are filled completely before the next one starts, so v is placed
	// by the time the walk has finished v's ring.
	for l.advance() != v {
	}
	return l.index[v]
}
