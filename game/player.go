package game

import (
	"fmt"

	"github.com/domino14/colormap/board"
)

type playerState struct {
	color  board.Color
	points int
	turns  int
}

func (p *playerState) resetScore() {
	p.points = 0
	p.turns = 0
}

func (p *playerState) stateString(myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	return fmt.Sprintf("%4v%8v %4v", onturn, p.color, p.points)
}

// playerStates is indexed by color; index 0 (Empty) is unused.
type playerStates []*playerState

func newPlayerStates() playerStates {
	return playerStates{
		nil,
		{color: board.Red},
		{color: board.Blue},
	}
}

func (p playerStates) get(c board.Color) *playerState {
	return p[c]
}

func (p playerStates) resetScore() {
	for _, ps := range p[board.Red:] {
		ps.resetScore()
	}
}
