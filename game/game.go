// Package game holds the rules of a Color the Map session: whose turn it
// is, how many points each player has, and when the game is over. A Game
// doesn't care how it is played; human and AI players drive it from
// outside this package.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/colormap/board"
	"github.com/domino14/colormap/scoring"
	"github.com/domino14/colormap/zobrist"
)

// DefaultWinThreshold is the score a player must exceed to end the game.
const DefaultWinThreshold = 50

var ErrGameOver = errors.New("the game is over")

type PlayState int

const (
	Playing PlayState = iota
	GameOver
)

func (p PlayState) String() string {
	if p == GameOver {
		return "game over"
	}
	return "playing"
}

type Game struct {
	board        *board.Board
	players      playerStates
	onturn       board.Color
	wentfirst    board.Color
	playing      PlayState
	winThreshold int
	history      []Turn

	zobrist *zobrist.Zobrist
	hash    uint64
}

// NewGame starts a game on an empty board. Red moves first. A
// non-positive winThreshold selects DefaultWinThreshold.
func NewGame(winThreshold int) *Game {
	return NewGameWithZobrist(winThreshold, nil)
}

// NewGameWithZobrist is NewGame hashing positions with z, so that games
// sharing z give equal positions equal hashes. A nil z gets a fresh table.
// z is only read and may be shared between goroutines.
func NewGameWithZobrist(winThreshold int, z *zobrist.Zobrist) *Game {
	if z == nil {
		z = &zobrist.Zobrist{}
		z.Initialize(board.Dim)
	}
	if winThreshold <= 0 {
		winThreshold = DefaultWinThreshold
	}
	g := &Game{
		board:        board.NewBoard(),
		players:      newPlayerStates(),
		onturn:       board.Red,
		wentfirst:    board.Red,
		winThreshold: winThreshold,
		zobrist:      z,
	}
	g.hash = g.zobrist.Hash(g.board, g.onturn)
	return g
}

// Reset clears the board and the scores and hands the first move back to
// Red. The win threshold is kept.
func (g *Game) Reset() {
	g.board.Clear()
	g.players.resetScore()
	g.onturn = g.wentfirst
	g.playing = Playing
	g.history = nil
	g.hash = g.zobrist.Hash(g.board, g.onturn)
	log.Debug().Msg("game reset")
}

// Board returns the live board. Callers must not color cells on it
// directly; use PlayMove.
func (g *Game) Board() *board.Board {
	return g.board
}

// PlayMove colors pos for the player on turn, scores the shapes the cell
// completes and passes the turn. It returns the points earned.
func (g *Game) PlayMove(pos board.Position) (int, error) {
	if g.playing == GameOver {
		return 0, ErrGameOver
	}
	color := g.onturn
	if err := g.board.Play(pos, color); err != nil {
		return 0, fmt.Errorf("%v cannot play %v: %w", color, pos, err)
	}
	pts := scoring.CompleteShapeScore(g.board, pos, color)
	p := g.players.get(color)
	p.points += pts
	p.turns++

	g.history = append(g.history, Turn{
		Player:     color,
		Pos:        pos,
		Points:     pts,
		Cumulative: p.points,
	})
	g.hash = g.zobrist.AddMove(g.hash, pos, color)
	g.onturn = color.Opponent()

	log.Debug().Stringer("player", color).Stringer("pos", pos).Int("points", pts).
		Int("total", p.points).Msg("played-move")

	if g.board.IsFull() || p.points > g.winThreshold {
		g.playing = GameOver
		log.Debug().Stringer("winner", g.Winner()).Msg("game-over")
	}
	return pts, nil
}

func (g *Game) PointsFor(c board.Color) int {
	return g.players.get(c).points
}

// SpreadFor is c's points minus the opponent's.
func (g *Game) SpreadFor(c board.Color) int {
	return g.PointsFor(c) - g.PointsFor(c.Opponent())
}

// PointDiff is the absolute difference between the two scores.
func (g *Game) PointDiff() int {
	d := g.SpreadFor(board.Red)
	if d < 0 {
		return -d
	}
	return d
}

func (g *Game) PlayerOnTurn() board.Color {
	return g.onturn
}

func (g *Game) EmptyCount() int {
	return g.board.EmptyCount()
}

func (g *Game) Playing() PlayState {
	return g.playing
}

// Winner returns the player with more points, or Empty for a tie. It is
// only meaningful once the game is over.
func (g *Game) Winner() board.Color {
	switch d := g.SpreadFor(board.Red); {
	case d > 0:
		return board.Red
	case d < 0:
		return board.Blue
	}
	return board.Empty
}

func (g *Game) WinThreshold() int {
	return g.winThreshold
}

// Turn is the number of moves played so far.
func (g *Game) Turn() int {
	return len(g.history)
}

// History returns a copy of the moves played so far.
func (g *Game) History() []Turn {
	h := make([]Turn, len(g.history))
	copy(h, g.history)
	return h
}

// Hash is the Zobrist hash of the current position, side to move
// included.
func (g *Game) Hash() uint64 {
	return g.hash
}
