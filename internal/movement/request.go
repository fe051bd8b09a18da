// Package movement validates movement attempts against the dungeon and other entities.
package movement

import (
	"github.com/google/uuid"

	"github.com/samdwyer/dungeondigger/internal/world"
)

// Request is a single movement attempt. It is committed only if every check
// in a Pipeline allows it.
type Request struct {
	ID          uuid.UUID // Correlates log lines for one attempt
	Entity      uuid.UUID
	Origin      world.Point
	Destination world.Point
	Direction   world.Direction
}

// NewRequest builds an attempt to move distance world units along dir.
func NewRequest(entity uuid.UUID, origin world.Point, dir world.Direction, distance float64) Request {
	return Request{
		ID:          uuid.New(),
		Entity:      entity,
		Origin:      origin,
		Destination: origin.Step(dir, distance),
		Direction:   dir,
	}
}
