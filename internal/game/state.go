// Package game wires a generated dungeon, its actors and the movement
// pipeline into an interactive terminal preview.
package game

// State represents the current game state.
type State int

const (
	// StateExplore lets wanderers move after every player input.
	StateExplore State = iota
	// StatePaused freezes wanderers while the player keeps moving.
	StatePaused
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Toggle switches between exploring and paused.
func (s State) Toggle() State {
	if s == StatePaused {
		return StateExplore
	}
	return StatePaused
}
