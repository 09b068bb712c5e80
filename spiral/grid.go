package spiral

// A Grid is a sparse record of visited cells and the value stored at each.
type Grid map[Vec2]int64

// Has reports whether v has been visited.
func (g Grid) Has(v Vec2) bool {
	_, ok := g[v]
	return ok
}

// Get returns the value at v, or 0 if v has not been visited.
func (g Grid) Get(v Vec2) int64 {
	return g[v]
}
