package entity

import (
	"github.com/google/uuid"
)

// Roster holds every actor on the current level in spawn order.
type Roster struct {
	actors []*Actor
	byID   map[uuid.UUID]*Actor
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{byID: make(map[uuid.UUID]*Actor)}
}

// Add appends an actor. Re-adding an id is a no-op.
func (r *Roster) Add(a *Actor) {
	if _, ok := r.byID[a.ID]; ok {
		return
	}
	r.actors = append(r.actors, a)
	r.byID[a.ID] = a
}

// Get returns the actor with the given id, or nil.
func (r *Roster) Get(id uuid.UUID) *Actor {
	return r.byID[id]
}

// All returns actors in spawn order.
func (r *Roster) All() []*Actor {
	return r.actors
}

// Monsters returns the monsters in spawn order.
func (r *Roster) Monsters() []*Actor {
	var out []*Actor
	for _, a := range r.actors {
		if a.Kind == KindMonster {
			out = append(out, a)
		}
	}
	return out
}

// IsRoomBound reports whether the actor with id is confined to rooms.
// Unknown ids are not.
func (r *Roster) IsRoomBound(id uuid.UUID) bool {
	a := r.byID[id]
	return a != nil && a.RoomBound
}

// Len returns the number of actors.
func (r *Roster) Len() int {
	return len(r.actors)
}
