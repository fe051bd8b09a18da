package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeondigger/internal/entity"
	"github.com/samdwyer/dungeondigger/internal/gamedata"
	"github.com/samdwyer/dungeondigger/internal/movement"
	"github.com/samdwyer/dungeondigger/internal/telemetry"
	"github.com/samdwyer/dungeondigger/internal/world"
)

// Level is a generated dungeon with the actors moving through it.
type Level struct {
	Map    *world.Map
	Roster *entity.Roster
	Player *entity.Actor

	pipeline  *movement.Pipeline
	hitboxes  *movement.HitboxSpace
	wanderers map[uuid.UUID]*movement.Wanderer
}

// NewLevel generates a dungeon from cfg, places the player at the start
// position and spawns one wanderer in each other room up to cfg.Monsters.
func NewLevel(ctx context.Context, cfg Config, rng *rand.Rand, log logrus.FieldLogger) (*Level, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	m, err := world.NewGenerator(rng, world.WithLogger(log)).Generate(ctx, cfg.Params())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}

	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return nil, fmt.Errorf("load monsters: %w", err)
	}

	l := &Level{
		Map:       m,
		Roster:    entity.NewRoster(),
		hitboxes:  movement.NewHitboxSpace(m),
		wanderers: make(map[uuid.UUID]*movement.Wanderer),
	}
	l.pipeline = movement.NewPipeline(log,
		movement.WallCheck(m),
		movement.RoomBoundCheck(m, l.Roster.IsRoomBound),
		movement.HitboxCheck(l.hitboxes),
	)

	l.Player = entity.NewPlayer(m.PlayerStart)
	l.spawn(l.Player)

	for i, room := range m.Rooms {
		if len(l.wanderers) >= cfg.Monsters {
			break
		}
		if i == m.StartRoom {
			continue
		}
		def := monsters.SpawnRandom(rng)
		if def == nil {
			break
		}
		cx, cy := room.Center()
		monster := entity.NewMonster(def.Name, def.GlyphRune(), m.CellCenter(cx, cy))
		monster.Color = def.TCellColor()
		monster.Speed = def.Speed
		l.spawn(monster)
		l.wanderers[monster.ID] = movement.NewWanderer(rng, def.Speed)
	}

	span.SetAttributes(
		attribute.Int("dungeon.rooms", len(m.Rooms)),
		attribute.Int("level.monsters", len(l.wanderers)),
		attribute.Float64("player.start_x", m.PlayerStart.X),
		attribute.Float64("player.start_y", m.PlayerStart.Y),
		attribute.Bool("dungeon.connected", m.Connected()),
	)
	return l, nil
}

func (l *Level) spawn(a *entity.Actor) {
	l.Roster.Add(a)
	l.hitboxes.Add(a.ID, a.Pos, a.HitWidth, a.HitHeight)
}

// TryMove validates one step of the actor in dir and commits it when every
// check passes.
func (l *Level) TryMove(id uuid.UUID, dir world.Direction) movement.Verdict {
	actor := l.Roster.Get(id)
	if actor == nil {
		return movement.Verdict{}
	}
	return l.apply(actor, movement.NewRequest(id, actor.Pos, dir, actor.Speed))
}

// Step advances every wanderer by one attempt and returns how many moved.
func (l *Level) Step() int {
	moved := 0
	for _, monster := range l.Roster.Monsters() {
		w, ok := l.wanderers[monster.ID]
		if !ok {
			continue
		}
		if l.apply(monster, w.Next(monster.ID, monster.Pos)).Allowed {
			moved++
		}
	}
	return moved
}

func (l *Level) apply(actor *entity.Actor, req movement.Request) movement.Verdict {
	verdict := l.pipeline.Validate(req)
	if verdict.Allowed {
		actor.MoveTo(req.Destination)
		l.hitboxes.Move(actor.ID, req.Destination)
	}
	return verdict
}
