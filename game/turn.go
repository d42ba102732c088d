package game

import (
	"fmt"

	"github.com/domino14/colormap/board"
)

// Turn is one move in the game history.
type Turn struct {
	Player board.Color
	Pos    board.Position
	Points int
	// Cumulative is the player's total after this move.
	Cumulative int
}

func (t Turn) String() string {
	return fmt.Sprintf("%v %v +%d %d", t.Player, t.Pos, t.Points, t.Cumulative)
}
