package game

import (
	"fmt"
	"strconv"

	"github.com/samdwyer/dungeondigger/internal/gamedata"
	"github.com/samdwyer/dungeondigger/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Preset names the gamedata preset the remaining fields default to.
	Preset string

	Width         int
	Height        int
	Rooms         int
	MaxRoomWidth  int
	MaxRoomHeight int
	TileSize      int

	// Monsters is how many wanderers spawn, one per room other than the start room.
	Monsters int
	Palette  gamedata.Palette
}

// LoadConfig reads DUNGEON_* variables through getenv. Unset values are
// taken from the selected preset; malformed numbers are errors.
func LoadConfig(getenv func(string) string) (Config, error) {
	presets, err := gamedata.LoadPresetRegistry()
	if err != nil {
		return Config{}, err
	}
	preset, err := presets.Get(getenv("DUNGEON_PRESET"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Preset:        preset.ID,
		Width:         preset.Width,
		Height:        preset.Height,
		Rooms:         preset.Rooms,
		MaxRoomWidth:  preset.MaxRoomWidth,
		MaxRoomHeight: preset.MaxRoomHeight,
		TileSize:      preset.TileSize,
		Monsters:      preset.Monsters,
		Palette:       preset.Palette,
	}

	if v := getenv("DUNGEON_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse DUNGEON_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"DUNGEON_WIDTH", &cfg.Width},
		{"DUNGEON_HEIGHT", &cfg.Height},
		{"DUNGEON_ROOMS", &cfg.Rooms},
		{"DUNGEON_MAX_ROOM_WIDTH", &cfg.MaxRoomWidth},
		{"DUNGEON_MAX_ROOM_HEIGHT", &cfg.MaxRoomHeight},
		{"DUNGEON_TILE_SIZE", &cfg.TileSize},
	}
	for _, field := range ints {
		v := getenv(field.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", field.key, err)
		}
		*field.dst = n
	}

	return cfg, nil
}

// Params converts the configuration into generation parameters.
func (c Config) Params() world.Params {
	return world.Params{
		Width:         c.Width,
		Height:        c.Height,
		Rooms:         c.Rooms,
		MaxRoomWidth:  c.MaxRoomWidth,
		MaxRoomHeight: c.MaxRoomHeight,
		TileSize:      c.TileSize,
	}
}
