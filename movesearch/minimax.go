package movesearch

import "github.com/domino14/colormap/board"

// MinimaxSearcher is a placeholder for an alpha-beta search to Depth plies.
// It has no leaf evaluation or move generation yet, so Search always fails.
type MinimaxSearcher struct {
	Depth int
}

func (MinimaxSearcher) Search(b *board.Board, color board.Color) (*Result, error) {
	return nil, ErrNotImplemented
}
