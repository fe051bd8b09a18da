// Package entity provides the actors that move around a generated dungeon.
package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/dungeondigger/internal/world"
)

// Kind distinguishes the player from monsters.
type Kind int

const (
	KindPlayer Kind = iota
	KindMonster
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Actor is anything with a position and a hitbox.
type Actor struct {
	ID        uuid.UUID
	Kind      Kind
	Name      string
	Symbol    rune        // Display symbol
	Color     tcell.Color // Display color
	Pos       world.Point // World-space anchor, centered on the hitbox
	RoomBound bool        // Confined to the room it spawned in
	HitWidth  float64
	HitHeight float64
	Speed     float64 // World units per step
}

// NewPlayer creates the player at the given position.
func NewPlayer(pos world.Point) *Actor {
	return &Actor{
		ID:        uuid.New(),
		Kind:      KindPlayer,
		Name:      "Digger",
		Symbol:    '@',
		Color:     tcell.ColorYellow,
		Pos:       pos,
		HitWidth:  32,
		HitHeight: 42,
		Speed:     2,
	}
}

// NewMonster creates a room-bound monster at the given position.
func NewMonster(name string, symbol rune, pos world.Point) *Actor {
	return &Actor{
		ID:        uuid.New(),
		Kind:      KindMonster,
		Name:      name,
		Symbol:    symbol,
		Color:     tcell.ColorRed,
		Pos:       pos,
		RoomBound: true,
		HitWidth:  24,
		HitHeight: 24,
		Speed:     1,
	}
}

// MoveTo updates the actor position.
func (a *Actor) MoveTo(p world.Point) {
	a.Pos = p
}
