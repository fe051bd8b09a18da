package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeondigger/internal/ui"
	"github.com/samdwyer/dungeondigger/internal/world"
)

const (
	// playerStepsPerKey is how many speed-sized steps one key press attempts.
	playerStepsPerKey = 8
	// monsterStepsPerKey is how many wanderer steps run after each key press.
	monsterStepsPerKey = 8
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	level    *Level
	log      logrus.FieldLogger
	state    State
	status   string
	running  bool
}

// New creates a new game instance around an already generated level.
func New(level *Level, cfg Config, log logrus.FieldLogger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, cfg.Palette),
		level:    level,
		log:      log.WithField("component", "game"),
		state:    StateExplore,
		status:   "Arrows move, space pauses monsters, q quits",
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	g.log.WithFields(logrus.Fields{
		"rooms":    len(g.level.Map.Rooms),
		"monsters": len(g.level.Roster.Monsters()),
	}).Info("Game started")

	for g.running {
		if err := ctx.Err(); err != nil {
			g.screen.Close()
			return err
		}

		// Render current state
		g.renderer.Render(g.level.Map, g.level.Roster, g.level.Player.Pos, g.statusLine())

		// Handle input (blocking)
		g.handleInput()
	}

	// Cleanup
	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput() {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input. Up is north on screen and +y in the world.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(world.DirUp)
	case tcell.KeyDown:
		g.tryMove(world.DirDown)
	case tcell.KeyLeft:
		g.tryMove(world.DirLeft)
	case tcell.KeyRight:
		g.tryMove(world.DirRight)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case ' ':
			g.state = g.state.Toggle()
		}
	}
}

// tryMove walks the player up to playerStepsPerKey steps, stopping at the
// first refused step, then lets the wanderers move.
func (g *Game) tryMove(dir world.Direction) {
	g.status = ""
	for i := 0; i < playerStepsPerKey; i++ {
		verdict := g.level.TryMove(g.level.Player.ID, dir)
		if !verdict.Allowed {
			g.status = fmt.Sprintf("Blocked by %s", verdict.RejectedBy)
			break
		}
	}

	if g.state == StatePaused {
		return
	}
	for i := 0; i < monsterStepsPerKey; i++ {
		g.level.Step()
	}
}

func (g *Game) statusLine() string {
	x, y := g.level.Map.CellOf(g.level.Player.Pos)
	line := fmt.Sprintf("[%s] cell %d,%d", g.state, x, y)
	if room := g.level.Map.RoomIndexAt(x, y); room >= 0 {
		line += fmt.Sprintf(" room %d", room)
	}
	if g.status != "" {
		line += "  " + g.status
	}
	return line
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
