// Package automatic plays computer-vs-computer games, for testing how the
// levels fare against each other.
package automatic

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/colormap/ai"
	"github.com/domino14/colormap/board"
	"github.com/domino14/colormap/game"
	"github.com/domino14/colormap/movesearch"
	"github.com/domino14/colormap/zobrist"
)

// GameRunner plays games between two AI players, one per color.
type GameRunner struct {
	game    *game.Game
	levels  [3]movesearch.Level
	players [3]ai.Mover
	logchan chan string
	gameID  int
}

// NewGameRunner sets up a runner. Both players draw from rng. Runners
// given the same z report equal positions with equal hashes; a nil z gets
// a table of its own.
func NewGameRunner(logchan chan string, winThreshold, maxGenerations int,
	redLevel, blueLevel movesearch.Level, rng movesearch.RNG, z *zobrist.Zobrist) (*GameRunner, error) {

	r := &GameRunner{
		game:    game.NewGameWithZobrist(winThreshold, z),
		logchan: logchan,
	}
	r.levels[board.Red] = redLevel
	r.levels[board.Blue] = blueLevel
	for _, c := range []board.Color{board.Red, board.Blue} {
		s, err := movesearch.ForLevel(r.levels[c], rng, maxGenerations)
		if err != nil {
			return nil, err
		}
		r.players[c] = ai.NewPlayer(s)
	}
	return r, nil
}

// GameResult is the final state of one game.
type GameResult struct {
	GameID    int
	RedScore  int
	BlueScore int
	Turns     int
	Winner    board.Color
	// FinalHash is the zobrist hash of the final position.
	FinalHash uint64
}

// Spread is red's score minus blue's.
func (g GameResult) Spread() int {
	return g.RedScore - g.BlueScore
}

// PlayBestTurn has the player on turn choose and play a move.
func (r *GameRunner) PlayBestTurn() error {
	onturn := r.game.PlayerOnTurn()
	emptyBefore := r.game.EmptyCount()
	d, pts, err := ai.PlayTurn(r.players[onturn], r.game)
	if err != nil {
		return err
	}
	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%v,%v,%v,%v,%v,%v,%v,%v,%v,%v,%016x\n",
			r.gameID,
			r.game.Turn(),
			onturn,
			r.levels[onturn],
			d.Pos,
			pts,
			r.game.PointsFor(onturn),
			d.Posture,
			d.Target,
			emptyBefore,
			r.game.Hash())
	}
	return nil
}

// PlayGame plays one game from an empty board to the end.
func (r *GameRunner) PlayGame(gameID int) (GameResult, error) {
	r.gameID = gameID
	r.game.Reset()
	for r.game.Playing() == game.Playing {
		if err := r.PlayBestTurn(); err != nil {
			return GameResult{}, fmt.Errorf("game %d turn %d: %w", gameID, r.game.Turn(), err)
		}
	}
	res := GameResult{
		GameID:    gameID,
		RedScore:  r.game.PointsFor(board.Red),
		BlueScore: r.game.PointsFor(board.Blue),
		Turns:     r.game.Turn(),
		Winner:    r.game.Winner(),
		FinalHash: r.game.Hash(),
	}
	log.Debug().Msgf("Game %d over. Score: %v - %v", gameID, res.RedScore, res.BlueScore)
	return res, nil
}
