package game

import (
	"fmt"
	"strings"

	"github.com/domino14/colormap/board"
)

func addText(lines []string, row int, hpad int, text string) {
	if row >= len(lines) {
		return
	}
	lines[row] = lines[row] + strings.Repeat(" ", hpad) + text
}

// ToDisplayText turns the current state of the game into a displayable
// string: the board with the scores and the last few moves beside it.
func (g *Game) ToDisplayText() string {
	bt := g.board.ToDisplayText()
	bts := strings.Split(bt, "\n")
	hpadding := 3
	vpadding := 1

	for i, c := range []board.Color{board.Red, board.Blue} {
		p := g.players.get(c)
		addText(bts, vpadding+i, hpadding,
			p.stateString(g.playing == Playing && g.onturn == p.color))
	}
	addText(bts, vpadding+3, hpadding, fmt.Sprintf("Empty cells: %d", g.EmptyCount()))
	addText(bts, vpadding+4, hpadding, fmt.Sprintf("Position: %016x", g.hash))

	vpadding = 6
	start := max(0, len(g.history)-5)
	for i, t := range g.history[start:] {
		addText(bts, vpadding+i, hpadding, fmt.Sprintf("%2d. %v", start+i+1, t))
	}

	if g.playing == GameOver {
		addText(bts, 12, hpadding, "Game is over.")
		if w := g.Winner(); w != board.Empty {
			addText(bts, 13, hpadding, fmt.Sprintf("Winner: %v", w))
		} else {
			addText(bts, 13, hpadding, "Tie game.")
		}
	}
	return strings.Join(bts, "\n")
}
