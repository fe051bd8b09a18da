package world

// FromRows builds a map from a text picture listed top row first, the way
// maps are printed. '.' is floor, '#' is wall and any other rune is void.
// Rows shorter than the first are padded with void.
func FromRows(tileSize int, rooms []Rect, rows ...string) *Map {
	width := 0
	if len(rows) > 0 {
		width = len([]rune(rows[0]))
	}
	g := NewGrid(width, len(rows))
	for row, line := range rows {
		y := len(rows) - 1 - row
		for x, ch := range []rune(line) {
			switch ch {
			case '.':
				g.set(x, y, TileFloor)
			case '#':
				g.set(x, y, TileWall)
			}
		}
	}

	m := &Map{
		Tiles:     g,
		Rooms:     rooms,
		TileSize:  tileSize,
		Probe:     DefaultProbeOffsets(tileSize),
		StartRoom: -1,
	}
	if len(rooms) > 0 {
		cx, cy := rooms[0].Center()
		m.StartRoom = 0
		m.PlayerStart = m.CellCenter(cx, cy)
	}
	return m
}
