package world

// TileAt returns the tile at the given cell. Cells outside the grid report
// false and must be treated as blocked.
func (m *Map) TileAt(x, y int) (TileKind, bool) {
	return m.Tiles.At(x, y)
}

// IsPassable returns true if the cell is floor.
func (m *Map) IsPassable(x, y int) bool {
	t, ok := m.Tiles.At(x, y)
	return ok && t.IsPassable()
}

// CellOf converts a world-space point to the cell containing it.
func (m *Map) CellOf(p Point) (int, int) {
	return cellOf(p.X, m.TileSize), cellOf(p.Y, m.TileSize)
}

// CellCenter returns the world-space anchor of a cell, as used for spawn positions.
func (m *Map) CellCenter(x, y int) Point {
	return Point{X: float64(x * m.TileSize), Y: float64(y * m.TileSize)}
}

// CanEnter returns true if a mover heading in dir may stand at p.
// The probe is shifted toward the mover's leading edge before the lookup.
func (m *Map) CanEnter(p Point, dir Direction) bool {
	off := m.Probe.For(dir)
	x, y := m.CellOf(p.Add(off.X, off.Y))
	return m.IsPassable(x, y)
}

// WithinAnyRoom returns true if the cell containing p lies in a room.
// Corridor cells are not part of any room.
func (m *Map) WithinAnyRoom(p Point) bool {
	return m.RoomIndexAt(m.CellOf(p)) >= 0
}

// RoomIndexAt returns the index of the room containing the cell, or -1 if not in a room.
func (m *Map) RoomIndexAt(x, y int) int {
	target := NewRect(x, y, 1, 1)
	for i, room := range m.Rooms {
		if room.Intersects(target) {
			return i
		}
	}
	return -1
}
