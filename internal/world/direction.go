package world

import "math"

// Direction is the heading of a movement attempt.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every heading in a fixed order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit step of the direction. World y grows upwards.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Add returns p moved by the given amount.
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Step returns p moved by distance along d.
func (p Point) Step(d Direction, distance float64) Point {
	dx, dy := d.Delta()
	return p.Add(float64(dx)*distance, float64(dy)*distance)
}

// ProbeOffsets shifts the point tested by CanEnter for each direction, so the
// leading edge of the mover is checked rather than its anchor.
type ProbeOffsets [4]Point

// DefaultProbeOffsets scales the probe offsets to the tile size.
// At 32 units per tile this gives +30 right, +16 up and -5 down.
func DefaultProbeOffsets(tileSize int) ProbeOffsets {
	ts := float64(tileSize)
	var p ProbeOffsets
	p[DirRight] = Point{X: ts * 15 / 16}
	p[DirUp] = Point{Y: ts / 2}
	p[DirDown] = Point{Y: -ts * 5 / 32}
	return p
}

// For returns the offset applied for d.
func (p ProbeOffsets) For(d Direction) Point {
	if d < 0 || int(d) >= len(p) {
		return Point{}
	}
	return p[d]
}

func cellOf(v float64, tileSize int) int {
	return int(math.Floor(v / float64(tileSize)))
}
