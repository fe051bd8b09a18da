package movement

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeondigger/internal/logger"
	"github.com/samdwyer/dungeondigger/internal/world"
)

// testMap has one room at x 1..4, y 1..4 and a corridor leaving it on y=3.
func testMap() *world.Map {
	return world.FromRows(32, []world.Rect{world.NewRect(1, 1, 4, 4)},
		"##########", // y=5
		"#....#####",
		"#........#",
		"#....#####",
		"#....#    ",
		"######    ", // y=0
	)
}

func TestNewRequest(t *testing.T) {
	entity := uuid.New()
	origin := world.Point{X: 100, Y: 50}

	r1 := NewRequest(entity, origin, world.DirUp, 2)
	r2 := NewRequest(entity, origin, world.DirLeft, 2)

	assert.NotEqual(t, r1.ID, r2.ID, "every attempt gets its own id")
	assert.Equal(t, world.Point{X: 100, Y: 52}, r1.Destination)
	assert.Equal(t, world.Point{X: 98, Y: 50}, r2.Destination)
	assert.Equal(t, origin, r1.Origin)
	assert.Equal(t, entity, r1.Entity)
}

func TestPipelineStopsAtFirstRejection(t *testing.T) {
	var calls []string
	check := func(name string, allow bool) Check {
		return Check{Name: name, Allow: func(Request) bool {
			calls = append(calls, name)
			return allow
		}}
	}

	p := NewPipeline(logger.Discard(), check("a", true), check("b", false))
	p.Add(check("c", true))
	require.Equal(t, 3, p.Len())

	v := p.Validate(Request{})
	assert.False(t, v.Allowed)
	assert.Equal(t, "b", v.RejectedBy)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestPipelineAllowsWhenEveryCheckPasses(t *testing.T) {
	p := NewPipeline(logger.Discard())
	v := p.Validate(Request{})
	assert.True(t, v.Allowed)
	assert.Empty(t, v.RejectedBy)
}

func TestWallCheck(t *testing.T) {
	m := testMap()
	p := NewPipeline(logger.Discard(), WallCheck(m))
	entity := uuid.New()

	v := p.Validate(NewRequest(entity, world.Point{X: 72, Y: 72}, world.DirLeft, 2))
	assert.True(t, v.Allowed, "floor to floor")

	v = p.Validate(NewRequest(entity, world.Point{X: 40, Y: 72}, world.DirLeft, 16))
	assert.False(t, v.Allowed, "into the west wall")
	assert.Equal(t, CheckWall, v.RejectedBy)

	v = p.Validate(NewRequest(entity, world.Point{X: 72, Y: 150}, world.DirUp, 2))
	assert.False(t, v.Allowed, "up probe reaches the north wall")
}

func TestRoomBoundCheck(t *testing.T) {
	m := testMap()
	monster, player := uuid.New(), uuid.New()
	bound := func(id uuid.UUID) bool { return id == monster }

	p := NewPipeline(logger.Discard(), WallCheck(m), RoomBoundCheck(m, bound))
	origin := world.Point{X: 132, Y: 104} // cell (4,3), the room's east edge

	v := p.Validate(NewRequest(monster, origin, world.DirRight, 2))
	assert.True(t, v.Allowed, "still inside the room")

	v = p.Validate(NewRequest(monster, origin, world.DirRight, 30))
	assert.False(t, v.Allowed, "monster may not follow the corridor")
	assert.Equal(t, CheckRoomBound, v.RejectedBy)

	v = p.Validate(NewRequest(player, origin, world.DirRight, 30))
	assert.True(t, v.Allowed, "the player is not room-bound")
}

func TestHitboxSpace(t *testing.T) {
	m := testMap()
	space := NewHitboxSpace(m)
	a, b := uuid.New(), uuid.New()

	space.Add(a, world.Point{X: 72, Y: 72}, 32, 32)
	space.Add(b, world.Point{X: 112, Y: 72}, 32, 32)
	require.Equal(t, 2, space.Len())

	assert.False(t, space.Collides(a, world.Point{X: 72, Y: 72}), "current positions do not overlap")
	assert.False(t, space.Collides(a, world.Point{X: 80, Y: 72}), "touching edges is not a collision")
	assert.True(t, space.Collides(a, world.Point{X: 82, Y: 72}))
	assert.False(t, space.Collides(uuid.New(), world.Point{X: 112, Y: 72}), "unknown entities have no hitbox")

	space.Move(b, world.Point{X: 112, Y: 140})
	assert.False(t, space.Collides(a, world.Point{X: 82, Y: 72}), "b moved out of the way")

	space.Remove(b)
	assert.Equal(t, 1, space.Len())
	assert.False(t, space.Collides(a, world.Point{X: 112, Y: 140}))
}

func TestHitboxCheck(t *testing.T) {
	m := testMap()
	space := NewHitboxSpace(m)
	a, b := uuid.New(), uuid.New()
	space.Add(a, world.Point{X: 72, Y: 72}, 32, 32)
	space.Add(b, world.Point{X: 112, Y: 72}, 32, 32)

	p := NewPipeline(logger.Discard(), WallCheck(m), HitboxCheck(space))

	v := p.Validate(NewRequest(a, world.Point{X: 72, Y: 72}, world.DirRight, 10))
	assert.False(t, v.Allowed)
	assert.Equal(t, CheckHitbox, v.RejectedBy)

	v = p.Validate(NewRequest(a, world.Point{X: 72, Y: 72}, world.DirDown, 2))
	assert.True(t, v.Allowed)
}

func TestWandererKeepsHeading(t *testing.T) {
	w := NewWanderer(rand.New(rand.NewSource(7)), 2)
	entity := uuid.New()
	start := w.Direction
	origin := world.Point{X: 64, Y: 64}

	for i := 0; i <= StepsInSameDirection; i++ {
		req := w.Next(entity, origin)
		require.Equal(t, start, req.Direction, "step %d changed heading", i)
		assert.Equal(t, origin.Step(start, 2), req.Destination)
	}
	assert.Equal(t, StepsInSameDirection+1, w.Steps())

	w.Next(entity, origin)
	assert.Equal(t, 1, w.Steps(), "a new run starts after the limit")
}
