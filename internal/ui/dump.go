package ui

import (
	"bufio"
	"io"

	"github.com/samdwyer/dungeondigger/internal/entity"
	"github.com/samdwyer/dungeondigger/internal/world"
)

// Dump writes the map as plain text, highest row first, using the tile runes
// understood by world.FromRows. Actors in roster are drawn over their cells;
// roster may be nil.
func Dump(w io.Writer, m *world.Map, roster *entity.Roster) error {
	rows := make([][]rune, m.Height())
	for y := 0; y < m.Height(); y++ {
		row := make([]rune, m.Width())
		for x := range row {
			row[x] = m.Tiles.KindAt(x, y).Rune()
		}
		rows[m.Height()-1-y] = row
	}

	if roster != nil {
		for _, a := range roster.All() {
			x, y := m.CellOf(a.Pos)
			if !m.Tiles.InBounds(x, y) {
				continue
			}
			rows[m.Height()-1-y][x] = a.Symbol
		}
	}

	bw := bufio.NewWriter(w)
	for _, row := range rows {
		if _, err := bw.WriteString(string(row) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
