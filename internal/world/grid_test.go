package world

import "testing"

func gridFromRows(rows ...string) *Grid {
	return FromRows(DefaultTileSize, nil, rows...).Tiles
}

func mapFromRows(rooms []Rect, rows ...string) *Map {
	return FromRows(DefaultTileSize, rooms, rows...)
}

func TestGridBoundsChecked(t *testing.T) {
	g := NewGrid(4, 3)

	tests := []struct {
		x, y int
		ok   bool
	}{
		{0, 0, true},
		{3, 2, true},
		{4, 0, false}, // would wrap into the next row if unchecked
		{-1, 1, false},
		{0, 3, false},
		{0, -1, false},
	}

	for _, tt := range tests {
		_, ok := g.Index(tt.x, tt.y)
		if ok != tt.ok {
			t.Errorf("Index(%d,%d) ok = %v, want %v", tt.x, tt.y, ok, tt.ok)
		}
		if _, ok := g.At(tt.x, tt.y); ok != tt.ok {
			t.Errorf("At(%d,%d) ok = %v, want %v", tt.x, tt.y, ok, tt.ok)
		}
	}
}

func TestGridIndexCoordRoundTrip(t *testing.T) {
	g := NewGrid(7, 5)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			idx, ok := g.Index(x, y)
			if !ok {
				t.Fatalf("Index(%d,%d) rejected an in-range cell", x, y)
			}
			if idx != y*7+x {
				t.Errorf("Index(%d,%d) = %d, want %d", x, y, idx, y*7+x)
			}
			if cx, cy := g.Coord(idx); cx != x || cy != y {
				t.Errorf("Coord(%d) = (%d,%d), want (%d,%d)", idx, cx, cy, x, y)
			}
		}
	}
}

func TestGridFromRowsOrientation(t *testing.T) {
	g := gridFromRows(
		"#.",
		"  ",
	)
	if g.KindAt(0, 1) != TileWall || g.KindAt(1, 1) != TileFloor {
		t.Error("first row should be the top row (highest y)")
	}
	if g.KindAt(0, 0) != TileVoid {
		t.Error("blank cells should be void")
	}
	if g.KindAt(5, 5) != TileVoid {
		t.Error("out-of-grid cells should read as void")
	}
}
