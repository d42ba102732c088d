// Package movesearch picks the empty cell the AI should color. Several
// strategies sit behind the Searcher interface; all of them rank cells by
// their partial shape score for a target color.
package movesearch

import (
	"errors"
	"fmt"

	"github.com/domino14/colormap/board"
	"github.com/domino14/colormap/scoring"
)

var (
	ErrNoEmptyCells   = errors.New("no empty cells left on the board")
	ErrNotImplemented = errors.New("search strategy is not implemented")
)

// Searcher chooses a cell that maximizes the partial shape score of
// color. The board is left as it was found.
type Searcher interface {
	Search(b *board.Board, color board.Color) (*Result, error)
}

// Result is the outcome of a search.
type Result struct {
	Pos   board.Position
	Score float64
	// Generations is the number of populations the genetic search
	// evaluated; 0 for strategies that do not evolve anything.
	Generations int
	Candidates  int
}

// Candidate is an empty cell with the score it would have if colored.
type Candidate struct {
	Pos   board.Position
	Score float64
}

// Candidates scores every empty cell, in row-major order.
func Candidates(b *board.Board, color board.Color) ([]Candidate, error) {
	empties := b.EmptyCells()
	cands := make([]Candidate, len(empties))
	for i, p := range empties {
		score, err := scoring.CandidateScore(b, p, color)
		if err != nil {
			return nil, fmt.Errorf("scoring %v: %w", p, err)
		}
		cands[i] = Candidate{Pos: p, Score: score}
	}
	return cands, nil
}

// directScan handles boards with fewer than two empty cells, where there
// is nothing to search.
func directScan(cands []Candidate) (*Result, error) {
	if len(cands) == 0 {
		return nil, ErrNoEmptyCells
	}
	return &Result{Pos: cands[0].Pos, Score: cands[0].Score, Candidates: len(cands)}, nil
}
