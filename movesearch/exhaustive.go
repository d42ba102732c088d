package movesearch

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/colormap/board"
)

// ExhaustiveSearcher scores every empty cell and takes the best one. Ties
// go to the first cell in row-major order.
type ExhaustiveSearcher struct{}

func (ExhaustiveSearcher) Search(b *board.Board, color board.Color) (*Result, error) {
	cands, err := Candidates(b, color)
	if err != nil {
		return nil, err
	}
	if len(cands) < 2 {
		return directScan(cands)
	}
	best := lo.MaxBy(cands, func(a, b Candidate) bool { return a.Score > b.Score })
	log.Debug().Int("candidates", len(cands)).Float64("best", best.Score).Msg("exhaustive-search")
	return &Result{Pos: best.Pos, Score: best.Score, Candidates: len(cands)}, nil
}
