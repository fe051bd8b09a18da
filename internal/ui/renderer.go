package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeondigger/internal/entity"
	"github.com/samdwyer/dungeondigger/internal/gamedata"
	"github.com/samdwyer/dungeondigger/internal/world"
)

// Renderer handles drawing a map and its actors to the screen.
type Renderer struct {
	screen  *Screen
	palette gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the part of the map around focus, the actors on top and a
// status line on the last screen row.
func (r *Renderer) Render(m *world.Map, roster *entity.Roster, focus world.Point, status string) {
	r.screen.Clear()

	sw, sh := r.screen.Size()
	fx, fy := m.CellOf(focus)
	view := newViewport(m.Width(), m.Height(), sw, sh-1, fx, fy)

	// Draw dungeon tiles
	for sy := 0; sy < view.height; sy++ {
		for sx := 0; sx < view.width; sx++ {
			x, y := view.toMap(sx, sy)
			kind, ok := m.TileAt(x, y)
			if !ok {
				continue
			}
			style := tcell.StyleDefault.Foreground(r.palette.Color(kind))
			r.screen.SetContent(sx, sy, TileGlyph(m, x, y), style)
		}
	}

	// Draw actors on top
	for _, a := range roster.All() {
		x, y := m.CellOf(a.Pos)
		sx, sy, ok := view.toScreen(x, y)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(a.Color).Bold(true)
		r.screen.SetContent(sx, sy, a.Symbol, style)
	}

	r.RenderMessage(status, sh-1)
	r.screen.Show()
}

// RenderMessage displays a message on the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// TileGlyph returns the rune drawn for a cell. Walls are shaped by their subtype.
func TileGlyph(m *world.Map, x, y int) rune {
	kind, ok := m.TileAt(x, y)
	if !ok {
		return ' '
	}
	if kind != world.TileWall {
		return kind.Rune()
	}
	sub, err := m.ClassifyWall(x, y)
	if err != nil {
		return kind.Rune()
	}
	return WallGlyph(sub)
}

// WallGlyph maps a wall subtype to an ASCII glyph.
func WallGlyph(sub world.WallSubtype) rune {
	switch sub.Kind {
	case world.WallTop, world.WallBottom:
		return '-'
	case world.WallLeft, world.WallRight:
		return '|'
	case world.WallCorner, world.WallInnerCorner:
		return '+'
	default:
		return '#'
	}
}

// viewport maps screen cells to map cells. Screen rows grow downwards while
// map y grows upwards, so the top screen row shows the highest visible y.
type viewport struct {
	mapHeight     int
	originX       int // Map x shown in screen column 0
	originRow     int // Flipped map row shown in screen row 0
	width, height int
}

func newViewport(mapW, mapH, screenW, screenH, focusX, focusY int) viewport {
	width, height := min(mapW, max(screenW, 0)), min(mapH, max(screenH, 0))
	return viewport{
		mapHeight: mapH,
		originX:   clamp(focusX-width/2, 0, mapW-width),
		originRow: clamp((mapH-1-focusY)-height/2, 0, mapH-height),
		width:     width,
		height:    height,
	}
}

func (v viewport) toMap(sx, sy int) (int, int) {
	return v.originX + sx, v.mapHeight - 1 - (v.originRow + sy)
}

func (v viewport) toScreen(x, y int) (int, int, bool) {
	sx := x - v.originX
	sy := v.mapHeight - 1 - y - v.originRow
	if sx < 0 || sy < 0 || sx >= v.width || sy >= v.height {
		return 0, 0, false
	}
	return sx, sy, true
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
