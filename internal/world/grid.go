package world

// Grid is a row-major tile array. Lookups are bounds-checked so that
// out-of-range coordinates never wrap into a neighbouring row.
type Grid struct {
	width  int
	height int
	tiles  []TileKind
}

// NewGrid creates a grid filled with void tiles.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]TileKind, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.tiles) }

// InBounds returns true if the cell lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index returns the flat index of a cell, or false if it is outside the grid.
func (g *Grid) Index(x, y int) (int, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return y*g.width + x, true
}

// Coord returns the cell coordinates of a flat index.
func (g *Grid) Coord(idx int) (int, int) {
	return idx % g.width, idx / g.width
}

// At returns the tile at the given cell, or false if it is outside the grid.
func (g *Grid) At(x, y int) (TileKind, bool) {
	idx, ok := g.Index(x, y)
	if !ok {
		return TileVoid, false
	}
	return g.tiles[idx], true
}

// KindAt returns the tile at the given cell, treating out-of-grid cells as void.
func (g *Grid) KindAt(x, y int) TileKind {
	t, _ := g.At(x, y)
	return t
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, t := range g.tiles {
		if t == kind {
			n++
		}
	}
	return n
}

func (g *Grid) set(x, y int, kind TileKind) bool {
	idx, ok := g.Index(x, y)
	if !ok {
		return false
	}
	g.tiles[idx] = kind
	return true
}
