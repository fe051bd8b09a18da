package movement

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/samdwyer/dungeondigger/internal/world"
)

// StepsInSameDirection is how long a wanderer keeps its heading.
const StepsInSameDirection = 15

// Wanderer drives an entity in a random direction, changing heading after a
// run of steps so the walk does not look jittery.
type Wanderer struct {
	Speed     float64
	Direction world.Direction
	steps     int
	rng       *rand.Rand
}

// NewWanderer creates a wanderer with a random starting direction.
func NewWanderer(rng *rand.Rand, speed float64) *Wanderer {
	return &Wanderer{
		Speed:     speed,
		Direction: world.Directions[rng.Intn(len(world.Directions))],
		rng:       rng,
	}
}

// Next returns the wanderer's next movement attempt from origin. Blocked
// attempts still count toward the run, so a wanderer facing a wall turns
// away eventually.
func (w *Wanderer) Next(entity uuid.UUID, origin world.Point) Request {
	if w.steps > StepsInSameDirection {
		w.Direction = world.Directions[w.rng.Intn(len(world.Directions))]
		w.steps = 0
	}
	w.steps++
	return NewRequest(entity, origin, w.Direction, w.Speed)
}

// Steps returns the number of steps taken in the current direction.
func (w *Wanderer) Steps() int {
	return w.steps
}
