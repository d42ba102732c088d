package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/colormap/board"
)

const bignum = 1<<63 - 2

// numColors is the number of colors a cell can hold, Empty included. Empty
// cells never contribute to a hash.
const numColors = 3

// Zobrist hashes a Color the Map position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	blueToMove uint64
	posTable   [][numColors]uint64
	boardDim   int
}

func (z *Zobrist) Initialize(boardDim int) {
	z.boardDim = boardDim
	z.posTable = make([][numColors]uint64, boardDim*boardDim)
	for i := range z.posTable {
		for c := board.Red; c <= board.Blue; c++ {
			z.posTable[i][c] = frand.Uint64n(bignum) + 1
		}
	}
	z.blueToMove = frand.Uint64n(bignum) + 1
}

func (z *Zobrist) Hash(b *board.Board, onturn board.Color) uint64 {
	key := uint64(0)
	for r := 0; r < z.boardDim; r++ {
		for c := 0; c < z.boardDim; c++ {
			color := b.At(board.Position{Row: r, Col: c})
			if color == board.Empty {
				continue
			}
			key ^= z.posTable[r*z.boardDim+c][color]
		}
	}
	if onturn == board.Blue {
		key ^= z.blueToMove
	}
	return key
}

// AddMove updates key for color being played at p and the turn passing to
// the other player. Calling it again with the same arguments undoes it.
func (z *Zobrist) AddMove(key uint64, p board.Position, color board.Color) uint64 {
	key ^= z.posTable[p.Row*z.boardDim+p.Col][color]
	return key ^ z.blueToMove
}
