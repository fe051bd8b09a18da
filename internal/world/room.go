package world

// TouchThreshold is the edge distance below which two rooms count as touching.
const TouchThreshold = 4

// Rect is an axis-aligned rectangle in grid cells. Rooms are Rects.
type Rect struct {
	X, Y          int // Lower-left corner
	Width, Height int
}

// NewRect returns a rectangle with the given origin and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Center returns the integer midpoint, rounded down.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Min returns the origin corner.
func (r Rect) Min() (int, int) {
	return r.X, r.Y
}

// Max returns the last cell covered on each axis.
func (r Rect) Max() (int, int) {
	return r.X + r.Width - 1, r.Y + r.Height - 1
}

// Contains returns true if the cell lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	maxX, maxY := r.Max()
	return x >= r.X && x <= maxX && y >= r.Y && y <= maxY
}

// Intersects returns true if the closed cell ranges overlap on both axes.
func (r Rect) Intersects(other Rect) bool {
	maxX, maxY := r.Max()
	otherMaxX, otherMaxY := other.Max()
	return r.X <= otherMaxX &&
		maxX >= other.X &&
		r.Y <= otherMaxY &&
		maxY >= other.Y
}

// Touches returns true if any facing edge pair is closer than TouchThreshold.
// Only the four facing pairs are compared, so rooms far apart on one axis can
// still touch through the other.
func (r Rect) Touches(other Rect) bool {
	maxX, maxY := r.Max()
	otherMaxX, otherMaxY := other.Max()
	return abs(r.X-otherMaxX) < TouchThreshold ||
		abs(maxX-other.X) < TouchThreshold ||
		abs(r.Y-otherMaxY) < TouchThreshold ||
		abs(maxY-other.Y) < TouchThreshold
}

// CenterNear returns true if r's center lies strictly closer than units to
// one of other's bound lines. A distance of exactly units is not near.
func (r Rect) CenterNear(other Rect, units int) bool {
	cx, cy := r.Center()
	otherMaxX, otherMaxY := other.Max()
	return abs(cx-other.X) < units ||
		abs(cx-otherMaxX) < units ||
		abs(cy-other.Y) < units ||
		abs(cy-otherMaxY) < units
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
