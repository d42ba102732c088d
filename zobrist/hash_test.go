package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/colormap/board"
)

func TestPlayAndUnplay(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(board.Dim)

	b, err := board.FromRows([]string{
		"RR........",
		"R..B......",
		"..........",
		"....BB....",
		"....B.....",
		"..........",
		"..........",
		"..........",
		"..........",
		".........R",
	})
	is.NoErr(err)
	h := z.Hash(b, board.Blue)
	p := board.Position{Row: 5, Col: 5}
	// play and unplay a move. The final hash should be the same as the beginning hash.
	h1 := z.AddMove(h, p, board.Blue)
	h2 := z.AddMove(h1, p, board.Blue)
	is.Equal(h, h2)
	is.True(h1 != h2) // extremely unlikely to collide, but this is not technically always true.
}

func TestIncrementalMatchesFull(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(board.Dim)

	b := board.NewBoard()
	onturn := board.Red
	h := z.Hash(b, onturn)
	is.Equal(h, uint64(0))

	moves := []string{"A1", "B2", "J10", "E5", "E6", "C3"}
	for _, coords := range moves {
		p, err := board.FromCoords(coords)
		is.NoErr(err)
		is.NoErr(b.Play(p, onturn))
		h = z.AddMove(h, p, onturn)
		onturn = onturn.Opponent()
		is.Equal(h, z.Hash(b, onturn))
	}
}

func TestColorsHashDifferently(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(board.Dim)

	red, blue := board.NewBoard(), board.NewBoard()
	p := board.Position{Row: 2, Col: 7}
	is.NoErr(red.Play(p, board.Red))
	is.NoErr(blue.Play(p, board.Blue))
	is.True(z.Hash(red, board.Red) != z.Hash(blue, board.Red))
}
