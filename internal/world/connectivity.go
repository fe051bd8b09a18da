package world

import "github.com/zyedidia/generic/mapset"

// Reachable flood-fills floor cells from (x, y) through axis neighbours and
// returns the set of flat indices reached. A non-floor start reaches nothing.
func Reachable(tiles *Grid, x, y int) mapset.Set[int] {
	visited := mapset.New[int]()
	start, ok := tiles.Index(x, y)
	if !ok || tiles.tiles[start] != TileFloor {
		return visited
	}

	visited.Put(start)
	queue := []int{start}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		cx, cy := tiles.Coord(idx)
		for _, d := range Directions {
			dx, dy := d.Delta()
			ni, ok := tiles.Index(cx+dx, cy+dy)
			if !ok || visited.Has(ni) || tiles.tiles[ni] != TileFloor {
				continue
			}
			visited.Put(ni)
			queue = append(queue, ni)
		}
	}
	return visited
}

// Connected returns true if every room center can be reached from the
// player's start room over floor cells.
func (m *Map) Connected() bool {
	if len(m.Rooms) == 0 {
		return true
	}
	sx, sy := m.CellOf(m.PlayerStart)
	reached := Reachable(m.Tiles, sx, sy)
	for _, room := range m.Rooms {
		cx, cy := room.Center()
		idx, ok := m.Tiles.Index(cx, cy)
		if !ok || !reached.Has(idx) {
			return false
		}
	}
	return true
}
