package movement

import (
	"github.com/google/uuid"
	"github.com/solarlune/resolv"

	"github.com/samdwyer/dungeondigger/internal/world"
)

const hitboxTag = "hitbox"

// HitboxSpace tracks entity hitboxes in world units. Hitboxes are anchored
// at their center, like the entity positions they follow.
type HitboxSpace struct {
	space   *resolv.Space
	objects map[uuid.UUID]*resolv.Object
}

// NewHitboxSpace creates a space covering the whole map, bucketed by tile.
func NewHitboxSpace(m *world.Map) *HitboxSpace {
	return &HitboxSpace{
		space:   resolv.NewSpace(m.Width()*m.TileSize, m.Height()*m.TileSize, m.TileSize, m.TileSize),
		objects: make(map[uuid.UUID]*resolv.Object),
	}
}

// Add registers a hitbox of the given size centered on pos.
// Adding an id twice replaces the earlier hitbox.
func (s *HitboxSpace) Add(id uuid.UUID, pos world.Point, width, height float64) {
	s.Remove(id)
	obj := resolv.NewObject(pos.X-width/2, pos.Y-height/2, width, height, hitboxTag)
	obj.Data = id
	s.space.Add(obj)
	s.objects[id] = obj
}

// Remove drops the hitbox of id, if any.
func (s *HitboxSpace) Remove(id uuid.UUID) {
	if obj, ok := s.objects[id]; ok {
		s.space.Remove(obj)
		delete(s.objects, id)
	}
}

// Move re-centers the hitbox of id on pos.
func (s *HitboxSpace) Move(id uuid.UUID, pos world.Point) {
	obj, ok := s.objects[id]
	if !ok {
		return
	}
	obj.X = pos.X - obj.W/2
	obj.Y = pos.Y - obj.H/2
	obj.Update()
}

// Len returns the number of registered hitboxes.
func (s *HitboxSpace) Len() int {
	return len(s.objects)
}

// Collides reports whether id's hitbox, re-centered on pos, would overlap
// any other hitbox. Entities without a hitbox never collide.
func (s *HitboxSpace) Collides(id uuid.UUID, pos world.Point) bool {
	obj, ok := s.objects[id]
	if !ok {
		return false
	}
	dx := pos.X - obj.W/2 - obj.X
	dy := pos.Y - obj.H/2 - obj.Y

	// The space only narrows candidates down to shared cells
	collision := obj.Check(dx, dy, hitboxTag)
	if collision == nil {
		return false
	}
	for _, other := range collision.Objects {
		if other == obj {
			continue
		}
		if overlaps(obj.X+dx, obj.Y+dy, obj.W, obj.H, other) {
			return true
		}
	}
	return false
}

// overlaps is a strict AABB test; boxes sharing only an edge do not overlap.
func overlaps(x, y, w, h float64, other *resolv.Object) bool {
	return x < other.X+other.W &&
		x+w > other.X &&
		y < other.Y+other.H &&
		y+h > other.Y
}
