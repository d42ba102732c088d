package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestPlaceRestores(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	is.NoErr(b.Set(Position{3, 4}, Red))

	restore, err := b.Place(Position{3, 4}, Blue)
	is.NoErr(err)
	is.Equal(b.At(Position{3, 4}), Blue)
	restore()
	is.Equal(b.At(Position{3, 4}), Red)

	restore, err = b.Place(Position{0, 0}, Blue)
	is.NoErr(err)
	restore()
	is.Equal(b.At(Position{0, 0}), Empty)
	is.Equal(b.EmptyCount(), Dim*Dim-1)
}

func TestPlaceOffBoard(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	_, err := b.Place(Position{-1, 0}, Red)
	is.True(errors.Is(err, ErrOutOfBounds))
}

func TestPlay(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	is.NoErr(b.Play(Position{9, 9}, Blue))
	is.True(errors.Is(b.Play(Position{9, 9}, Red), ErrOccupied))
	is.True(errors.Is(b.Play(Position{10, 0}, Red), ErrOutOfBounds))
	is.Equal(b.Count(Blue), 1)
	is.Equal(b.Count(Red), 0)
}

func TestEmptyCells(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if r == 4 && c == 7 {
				continue
			}
			is.NoErr(b.Set(Position{r, c}, Red))
		}
	}
	is.Equal(b.EmptyCount(), 1)
	is.Equal(b.EmptyCells(), []Position{{4, 7}})
	p, ok := b.FirstEmpty()
	is.True(ok)
	is.Equal(p, Position{4, 7})
	is.True(!b.IsFull())

	is.NoErr(b.Set(Position{4, 7}, Blue))
	is.True(b.IsFull())
	_, ok = b.FirstEmpty()
	is.True(!ok)
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	c := b.Copy()
	is.NoErr(c.Set(Position{1, 1}, Red))
	is.Equal(b.At(Position{1, 1}), Empty)
}

func TestFromRows(t *testing.T) {
	is := is.New(t)
	rows := []string{
		"R.........",
		"..........",
		"....B.....",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		".........R",
	}
	b, err := FromRows(rows)
	is.NoErr(err)
	is.Equal(b.At(Position{0, 0}), Red)
	is.Equal(b.At(Position{2, 4}), Blue)
	is.Equal(b.At(Position{9, 9}), Red)
	is.Equal(b.Rows(), rows)

	_, err = FromRows(rows[:3])
	is.True(err != nil)
	bad := append([]string{}, rows...)
	bad[5] = "....X....."
	_, err = FromRows(bad)
	is.True(err != nil)
}

func TestCoords(t *testing.T) {
	is := is.New(t)
	type tc struct {
		coords string
		pos    Position
		err    error
	}
	for _, c := range []tc{
		{"A1", Position{0, 0}, nil},
		{"c7", Position{6, 2}, nil},
		{"J10", Position{9, 9}, nil},
		{"K1", Position{}, ErrBadCoords},
		{"A11", Position{}, ErrOutOfBounds},
		{"A0", Position{}, ErrOutOfBounds},
		{"7C", Position{}, ErrBadCoords},
	} {
		p, err := FromCoords(c.coords)
		if c.err != nil {
			is.True(errors.Is(err, c.err))
			continue
		}
		is.NoErr(err)
		is.Equal(p, c.pos)
		is.Equal(ToCoords(p), strings.ToUpper(c.coords))
	}
}
