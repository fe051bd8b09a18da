package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeondigger/internal/logger"
	"github.com/samdwyer/dungeondigger/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth    = 100
	DefaultHeight   = 70
	DefaultRooms    = 5
	DefaultTileSize = 32

	// Room placement parameters
	MinRoomSize        = 6  // Smallest room dimension; the sampled range is [MinRoomSize, max)
	DefaultMaxRoomSize = 15 // Exclusive upper bound of sampled room dimensions
	CorridorClearance  = 4  // Room centers keep this distance from other rooms' bounds

	DefaultMaxAttempts = 10000
	DefaultMaxRestarts = 3
)

var (
	// ErrInvalidParams reports generation parameters that cannot describe a map.
	ErrInvalidParams = errors.New("invalid generation parameters")
	// ErrRoomsDoNotFit reports a room budget larger than the map itself.
	ErrRoomsDoNotFit = errors.New("not enough space for all rooms")
	// ErrGenerationFailed reports that room placement did not converge.
	ErrGenerationFailed = errors.New("room placement did not converge")
)

// Params controls dungeon generation.
type Params struct {
	Width, Height int // Map size in cells
	Rooms         int // Number of rooms to place
	MaxRoomWidth  int // Exclusive upper bound for room width
	MaxRoomHeight int // Exclusive upper bound for room height
	TileSize      int // World units per cell

	MaxAttempts int // Candidate rooms sampled per pass (0 = DefaultMaxAttempts)
	MaxRestarts int // Passes started over from an empty map (0 = DefaultMaxRestarts)
}

// DefaultParams returns the standard 100x70 five-room layout.
func DefaultParams() Params {
	return Params{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Rooms:         DefaultRooms,
		MaxRoomWidth:  DefaultMaxRoomSize,
		MaxRoomHeight: DefaultMaxRoomSize,
		TileSize:      DefaultTileSize,
	}
}

// Validate rejects parameters that generation cannot satisfy.
func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: map size %dx%d", ErrInvalidParams, p.Width, p.Height)
	case p.Rooms <= 0:
		return fmt.Errorf("%w: room count %d", ErrInvalidParams, p.Rooms)
	case p.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidParams, p.TileSize)
	case p.MaxRoomWidth <= MinRoomSize || p.MaxRoomHeight <= MinRoomSize:
		return fmt.Errorf("%w: max room size %dx%d must exceed %d",
			ErrInvalidParams, p.MaxRoomWidth, p.MaxRoomHeight, MinRoomSize)
	case p.Width-1-p.MaxRoomWidth <= 1 || p.Height-1-p.MaxRoomHeight <= 1:
		return fmt.Errorf("%w: map %dx%d too small for rooms up to %dx%d",
			ErrInvalidParams, p.Width, p.Height, p.MaxRoomWidth, p.MaxRoomHeight)
	case p.MaxAttempts < 0 || p.MaxRestarts < 0:
		return fmt.Errorf("%w: negative retry budget", ErrInvalidParams)
	}
	if p.Rooms*p.MaxRoomWidth*p.MaxRoomHeight > p.Width*p.Height {
		return fmt.Errorf("%w: %d rooms of up to %dx%d in %dx%d",
			ErrRoomsDoNotFit, p.Rooms, p.MaxRoomWidth, p.MaxRoomHeight, p.Width, p.Height)
	}
	return nil
}

func (p Params) attempts() int {
	if p.MaxAttempts == 0 {
		return DefaultMaxAttempts
	}
	return p.MaxAttempts
}

func (p Params) restarts() int {
	if p.MaxRestarts == 0 {
		return DefaultMaxRestarts
	}
	return p.MaxRestarts
}

// Map is a generated dungeon. It is never mutated after Generate returns.
type Map struct {
	Tiles       *Grid
	Rooms       []Rect // Discovery order
	PlayerStart Point  // World-space center of the leftmost room
	StartRoom   int    // Index into Rooms
	TileSize    int
	Probe       ProbeOffsets
}

// Width returns the map width in cells.
func (m *Map) Width() int { return m.Tiles.Width() }

// Height returns the map height in cells.
func (m *Map) Height() int { return m.Tiles.Height() }

// Generator builds dungeons from an explicit random source.
type Generator struct {
	rng    *rand.Rand
	log    logrus.FieldLogger
	tracer trace.Tracer
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithLogger sets the logger used for generation diagnostics.
func WithLogger(log logrus.FieldLogger) GeneratorOption {
	return func(g *Generator) {
		g.log = log
	}
}

// WithTracer sets the tracer used for the generation span.
func WithTracer(tracer trace.Tracer) GeneratorOption {
	return func(g *Generator) {
		g.tracer = tracer
	}
}

// NewGenerator creates a generator. A nil rng is seeded from the clock.
func NewGenerator(rng *rand.Rand, opts ...GeneratorOption) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Generator{
		rng:    rng,
		log:    logger.Discard(),
		tracer: telemetry.Tracer("world"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate places rooms, carves corridors between them and infers walls.
func (g *Generator) Generate(ctx context.Context, p Params) (*Map, error) {
	_, span := g.tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	log := g.log.WithFields(logrus.Fields{
		"component": "generator",
		"width":     p.Width,
		"height":    p.Height,
		"rooms":     p.Rooms,
	})

	if err := p.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var (
		rooms    []Rect
		start    int
		attempts int
		placed   bool
		restarts int
	)
	for restarts = 0; restarts <= p.restarts(); restarts++ {
		var n int
		rooms, start, n, placed = g.placeRooms(p)
		attempts += n
		if placed {
			break
		}
		log.WithFields(logrus.Fields{
			"placed":   len(rooms),
			"attempts": n,
			"restart":  restarts + 1,
		}).Warn("Room placement stalled, starting over")
	}
	if !placed {
		err := fmt.Errorf("%w: %d attempts over %d passes", ErrGenerationFailed, attempts, restarts)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	tiles := NewGrid(p.Width, p.Height)
	for _, room := range rooms {
		carveRoom(tiles, room)
	}
	g.connectRooms(tiles, rooms)
	setWalls(tiles)

	startX, startY := rooms[start].Center()
	m := &Map{
		Tiles: tiles,
		Rooms: rooms,
		PlayerStart: Point{
			X: float64(startX * p.TileSize),
			Y: float64(startY * p.TileSize),
		},
		StartRoom: start,
		TileSize:  p.TileSize,
		Probe:     DefaultProbeOffsets(p.TileSize),
	}

	// Record telemetry
	span.SetAttributes(
		attribute.Int("dungeon.width", p.Width),
		attribute.Int("dungeon.height", p.Height),
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int("dungeon.attempts", attempts),
		attribute.Int("dungeon.restarts", restarts),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	log.WithFields(logrus.Fields{
		"attempts": attempts,
		"restarts": restarts,
		"floor":    tiles.Count(TileFloor),
		"walls":    tiles.Count(TileWall),
	}).Debug("Dungeon generated")

	return m, nil
}

// placeRooms samples rooms until p.Rooms are accepted or the attempt budget
// runs out. It returns the rooms, the index of the leftmost one and the
// number of samples drawn.
func (g *Generator) placeRooms(p Params) ([]Rect, int, int, bool) {
	rooms := make([]Rect, 0, p.Rooms)
	start, startX := -1, 0

	attempts := 0
	for len(rooms) < p.Rooms {
		if attempts >= p.attempts() {
			return rooms, start, attempts, false
		}
		attempts++

		room := g.randomRoom(p)
		if !fits(room, rooms, p.Width, p.Height) {
			continue
		}
		// Strict comparison keeps the first room found on ties
		if cx, _ := room.Center(); start < 0 || cx < startX {
			start, startX = len(rooms), cx
		}
		rooms = append(rooms, room)
	}
	return rooms, start, attempts, true
}

// randomRoom samples a room that leaves a one-cell margin for its wall ring.
func (g *Generator) randomRoom(p Params) Rect {
	x := 1 + g.rng.Intn(p.Width-2-p.MaxRoomWidth)
	y := 1 + g.rng.Intn(p.Height-2-p.MaxRoomHeight)
	width := MinRoomSize + g.rng.Intn(p.MaxRoomWidth-MinRoomSize)
	height := MinRoomSize + g.rng.Intn(p.MaxRoomHeight-MinRoomSize)
	return NewRect(x, y, width, height)
}

// fits reports whether a candidate can join the accepted rooms.
func fits(room Rect, rooms []Rect, width, height int) bool {
	for _, r := range rooms {
		if room.Intersects(r) || room.Touches(r) {
			return false
		}
	}
	// Corridors leave the center, so it needs room for floor plus wall
	// before it meets another room's bounds.
	for _, r := range rooms {
		if room.CenterNear(r, CorridorClearance) {
			return false
		}
	}
	maxX, maxY := room.Max()
	return maxX < width && maxY < height
}

// carveRoom sets all tiles within the room to floor.
func carveRoom(tiles *Grid, room Rect) {
	maxX, maxY := room.Max()
	for y := room.Y; y <= maxY; y++ {
		for x := room.X; x <= maxX; x++ {
			tiles.set(x, y, TileFloor)
		}
	}
}

// connectRooms joins rooms in order of their center x with L-shaped corridors.
func (g *Generator) connectRooms(tiles *Grid, rooms []Rect) {
	sorted := slices.Clone(rooms)
	slices.SortStableFunc(sorted, func(a, b Rect) int {
		ax, _ := a.Center()
		bx, _ := b.Center()
		return ax - bx
	})

	for i := 1; i < len(sorted); i++ {
		g.carveCorridor(tiles, sorted[i-1], sorted[i])
	}
}

// carveCorridor creates a corridor between two room centers.
func (g *Generator) carveCorridor(tiles *Grid, from, to Rect) {
	x1, y1 := from.Center()
	x2, y2 := to.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if g.rng.Intn(2) == 1 {
		carveHorizontalTunnel(tiles, x1, x2, y1)
		carveVerticalTunnel(tiles, y1, y2, x2)
	} else {
		carveVerticalTunnel(tiles, y1, y2, x1)
		carveHorizontalTunnel(tiles, x1, x2, y2)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func carveHorizontalTunnel(tiles *Grid, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if t, ok := tiles.At(x, y); ok && t != TileFloor {
			tiles.set(x, y, TileFloor)
		}
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func carveVerticalTunnel(tiles *Grid, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if t, ok := tiles.At(x, y); ok && t != TileFloor {
			tiles.set(x, y, TileFloor)
		}
	}
}

// setWalls turns void cells bordering floor into walls. A floor cell with
// exactly two void neighbours also walls off the diagonal between them, which
// the axis sweep alone would leave open.
func setWalls(tiles *Grid) {
	var walls []int
	pushed := make([][2]int, 0, 4)

	for idx := 0; idx < tiles.Len(); idx++ {
		if tiles.tiles[idx] != TileFloor {
			continue
		}
		x, y := tiles.Coord(idx)
		pushed = pushed[:0]
		for _, n := range [4][2]int{{x + 1, y}, {x - 1, y}, {x, y + 1}, {x, y - 1}} {
			if ni, ok := tiles.Index(n[0], n[1]); ok && tiles.tiles[ni] == TileVoid {
				walls = append(walls, ni)
				pushed = append(pushed, n)
			}
		}
		if len(pushed) != 2 {
			continue
		}

		cornerX, cornerY := x, y
		for _, n := range pushed {
			if n[0] != x {
				cornerX = n[0]
			}
			if n[1] != y {
				cornerY = n[1]
			}
		}
		if ci, ok := tiles.Index(cornerX, cornerY); ok && tiles.tiles[ci] == TileVoid {
			walls = append(walls, ci)
		}
	}

	// Apply after the sweep so new walls do not change later neighbour counts
	for _, idx := range walls {
		tiles.tiles[idx] = TileWall
	}
}
