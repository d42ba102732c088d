// Package ai joins the posture classifier and the move search into a
// player. Each turn it decides whether to attack or defend, searches for
// the best cell for the color that posture targets, and returns that cell
// to be colored with the AI's own color.
package ai

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/colormap/board"
	"github.com/domino14/colormap/fuzzy"
	"github.com/domino14/colormap/game"
	"github.com/domino14/colormap/movesearch"
)

var ErrBadColors = errors.New("the AI and the human need different player colors")

// Decision is the AI's chosen move together with how it got there.
type Decision struct {
	Pos     board.Position
	Posture fuzzy.Posture
	// Target is the color the search optimized for. The move itself is
	// always played in the AI's color.
	Target board.Color
	Fuzzy  fuzzy.Decision
	Search *movesearch.Result
}

// Mover picks the next move for the player on turn in g.
type Mover interface {
	NextMove(g *game.Game) (*Decision, error)
}

type Player struct {
	searcher movesearch.Searcher
}

func NewPlayer(searcher movesearch.Searcher) *Player {
	return &Player{searcher: searcher}
}

// ChooseMove picks the AI's cell. b is left unchanged.
func (p *Player) ChooseMove(b *board.Board, aiColor, humanColor board.Color,
	emptyCount, pointDiff int) (*Decision, error) {

	if aiColor == board.Empty || aiColor.Opponent() != humanColor {
		return nil, fmt.Errorf("%w: ai %v, human %v", ErrBadColors, aiColor, humanColor)
	}
	fd := fuzzy.Classify(emptyCount, pointDiff)
	target := fd.TargetColor(aiColor, humanColor)
	res, err := p.searcher.Search(b, target)
	if err != nil {
		return nil, err
	}
	log.Debug().Stringer("posture", fd.Posture).Stringer("target", target).
		Stringer("pos", res.Pos).Float64("score", res.Score).Msg("ai-move")
	return &Decision{
		Pos:     res.Pos,
		Posture: fd.Posture,
		Target:  target,
		Fuzzy:   fd,
		Search:  res,
	}, nil
}

// ChooseAIMove is ChooseMove reduced to a row and column.
func ChooseAIMove(searcher movesearch.Searcher, b *board.Board, aiColor, humanColor board.Color,
	emptyCount, pointDiff int) (row, col int, err error) {

	d, err := NewPlayer(searcher).ChooseMove(b, aiColor, humanColor, emptyCount, pointDiff)
	if err != nil {
		return 0, 0, err
	}
	return d.Pos.Row, d.Pos.Col, nil
}

// NextMove plays for whoever is on turn in g. The search runs on a copy of
// the board, so the game's board is never written to.
func (p *Player) NextMove(g *game.Game) (*Decision, error) {
	onturn := g.PlayerOnTurn()
	return p.ChooseMove(g.Board().Copy(), onturn, onturn.Opponent(), g.EmptyCount(), g.PointDiff())
}

// PlayTurn asks m for a move and plays it on g. It returns the decision
// and the points the move earned.
func PlayTurn(m Mover, g *game.Game) (*Decision, int, error) {
	if g.Playing() == game.GameOver {
		return nil, 0, game.ErrGameOver
	}
	d, err := m.NextMove(g)
	if err != nil {
		return nil, 0, err
	}
	pts, err := g.PlayMove(d.Pos)
	if err != nil {
		return nil, 0, err
	}
	return d, pts, nil
}
