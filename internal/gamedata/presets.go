package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeondigger/internal/world"
)

// Palette holds the hex colors used to draw each tile kind.
type Palette struct {
	Floor string `json:"floor"`
	Wall  string `json:"wall"`
	Void  string `json:"void"`
}

// Color returns the tcell color for a tile kind, falling back to the terminal default.
func (p Palette) Color(kind world.TileKind) tcell.Color {
	var hex string
	switch kind {
	case world.TileFloor:
		hex = p.Floor
	case world.TileWall:
		hex = p.Wall
	default:
		hex = p.Void
	}
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	return color
}

// PresetDef is a named set of generation parameters loaded from JSON.
type PresetDef struct {
	ID            string  `json:"id"`   // Unique identifier (e.g., "classic")
	Name          string  `json:"name"` // Display name
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Rooms         int     `json:"rooms"`
	MaxRoomWidth  int     `json:"maxRoomWidth"`
	MaxRoomHeight int     `json:"maxRoomHeight"`
	TileSize      int     `json:"tileSize"`
	Monsters      int     `json:"monsters"` // Wandering monsters spawned per level
	Palette       Palette `json:"palette"`
}

// Params converts the preset into generation parameters.
func (p *PresetDef) Params() world.Params {
	return world.Params{
		Width:         p.Width,
		Height:        p.Height,
		Rooms:         p.Rooms,
		MaxRoomWidth:  p.MaxRoomWidth,
		MaxRoomHeight: p.MaxRoomHeight,
		TileSize:      p.TileSize,
	}
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]PresetDef, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}
