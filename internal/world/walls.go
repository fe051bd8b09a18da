package world

import (
	"errors"
	"fmt"
)

// ErrNotWall reports a wall classification request for a non-wall cell.
var ErrNotWall = errors.New("cell is not a wall")

// WallKind is the broad shape of a wall cell.
type WallKind int

const (
	WallLeft WallKind = iota
	WallRight
	WallTop
	WallBottom
	WallCorner
	WallInnerCorner
)

// Corner names the quadrant of a corner wall.
type Corner int

const (
	CornerNone Corner = iota
	CornerUpperLeft
	CornerUpperRight
	CornerLowerLeft
	CornerLowerRight
)

// WallSubtype is the visual role of a wall cell, derived from its neighbours.
type WallSubtype struct {
	Kind   WallKind
	Corner Corner // Set for WallCorner and WallInnerCorner
}

func (c Corner) String() string {
	switch c {
	case CornerUpperLeft:
		return "upper_left"
	case CornerUpperRight:
		return "upper_right"
	case CornerLowerLeft:
		return "lower_left"
	case CornerLowerRight:
		return "lower_right"
	default:
		return "none"
	}
}

func (w WallSubtype) String() string {
	switch w.Kind {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallTop:
		return "top"
	case WallBottom:
		return "bottom"
	case WallCorner:
		return "corner(" + w.Corner.String() + ")"
	case WallInnerCorner:
		return "inner_corner(" + w.Corner.String() + ")"
	default:
		return "unknown"
	}
}

// ClassifyWall picks the wall subtype of a wall cell from its four neighbours.
// Checks run in a fixed order and the first match wins:
//  1. outer corners: void above or below together with void left or right
//  2. inner corners: wall above or below with a wall on one side and floor on the other
//  3. edges: void above is Top, void below is Bottom, floor to the right is Left, anything else Right
//
// Upper checks come before lower ones and left before right. Neighbours outside
// the grid count as void.
func (m *Map) ClassifyWall(x, y int) (WallSubtype, error) {
	if t, ok := m.Tiles.At(x, y); !ok || t != TileWall {
		return WallSubtype{}, fmt.Errorf("%w: (%d,%d) is %s", ErrNotWall, x, y, t)
	}

	up := m.Tiles.KindAt(x, y+1)
	down := m.Tiles.KindAt(x, y-1)
	left := m.Tiles.KindAt(x-1, y)
	right := m.Tiles.KindAt(x+1, y)

	switch {
	case up == TileVoid && left == TileVoid:
		return WallSubtype{Kind: WallCorner, Corner: CornerUpperLeft}, nil
	case up == TileVoid && right == TileVoid:
		return WallSubtype{Kind: WallCorner, Corner: CornerUpperRight}, nil
	case down == TileVoid && left == TileVoid:
		return WallSubtype{Kind: WallCorner, Corner: CornerLowerLeft}, nil
	case down == TileVoid && right == TileVoid:
		return WallSubtype{Kind: WallCorner, Corner: CornerLowerRight}, nil
	}

	switch {
	case up == TileWall && left == TileWall && right == TileFloor:
		return WallSubtype{Kind: WallInnerCorner, Corner: CornerUpperLeft}, nil
	case up == TileWall && left == TileFloor && right == TileWall:
		return WallSubtype{Kind: WallInnerCorner, Corner: CornerUpperRight}, nil
	case down == TileWall && left == TileFloor && right == TileWall:
		return WallSubtype{Kind: WallInnerCorner, Corner: CornerLowerLeft}, nil
	case down == TileWall && left == TileWall && right == TileFloor:
		return WallSubtype{Kind: WallInnerCorner, Corner: CornerLowerRight}, nil
	}

	switch {
	case up == TileVoid:
		return WallSubtype{Kind: WallTop}, nil
	case down == TileVoid:
		return WallSubtype{Kind: WallBottom}, nil
	case right == TileFloor:
		return WallSubtype{Kind: WallLeft}, nil
	default:
		return WallSubtype{Kind: WallRight}, nil
	}
}
