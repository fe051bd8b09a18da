package movement

import (
	"github.com/google/uuid"

	"github.com/samdwyer/dungeondigger/internal/world"
)

// Check names reported in verdicts.
const (
	CheckWall      = "wall"
	CheckRoomBound = "room_bound"
	CheckHitbox    = "hitbox"
)

// WallCheck refuses destinations that are not walkable floor.
func WallCheck(m *world.Map) Check {
	return Check{
		Name: CheckWall,
		Allow: func(req Request) bool {
			return m.CanEnter(req.Destination, req.Direction)
		},
	}
}

// RoomBoundCheck keeps room-bound entities from leaving rooms through corridors.
// Entities for which bound returns false are not restricted.
func RoomBoundCheck(m *world.Map, bound func(uuid.UUID) bool) Check {
	return Check{
		Name: CheckRoomBound,
		Allow: func(req Request) bool {
			if !bound(req.Entity) {
				return true
			}
			return m.WithinAnyRoom(req.Destination)
		},
	}
}

// HitboxCheck refuses destinations where the entity's hitbox would overlap another.
func HitboxCheck(space *HitboxSpace) Check {
	return Check{
		Name: CheckHitbox,
		Allow: func(req Request) bool {
			return !space.Collides(req.Entity, req.Destination)
		},
	}
}
