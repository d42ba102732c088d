// Package board holds the 10x10 grid that the two players color in.
package board

import (
	"errors"
	"fmt"
)

// Dim is the length of a side of the board.
const Dim = 10

var (
	ErrOutOfBounds = errors.New("position is off the board")
	ErrOccupied    = errors.New("cell is already colored")
)

// Position is a (row, col) pair. Rows and columns are zero-indexed.
type Position struct {
	Row int
	Col int
}

// Add returns the position offset by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return ToCoords(p)
}

// Board is the game grid. The zero value is an empty board. Board is a
// plain value, so assignment copies it.
type Board struct {
	cells [Dim][Dim]Color
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Copy returns a new board with the same cells.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// InBounds reports whether the position lies on the board.
func InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < Dim && p.Col >= 0 && p.Col < Dim
}

// At returns the color at p. Off-board positions read as Empty; use
// InBounds when the difference matters.
func (b *Board) At(p Position) Color {
	if !InBounds(p) {
		return Empty
	}
	return b.cells[p.Row][p.Col]
}

// IsEmpty reports whether p is on the board and uncolored.
func (b *Board) IsEmpty(p Position) bool {
	return InBounds(p) && b.cells[p.Row][p.Col] == Empty
}

// Set colors the cell at p, overwriting whatever was there.
func (b *Board) Set(p Position, c Color) error {
	if !InBounds(p) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, p.Row, p.Col)
	}
	b.cells[p.Row][p.Col] = c
	return nil
}

// Play colors an empty cell. It fails if the cell is off the board or
// already colored.
func (b *Board) Play(p Position, c Color) error {
	if !InBounds(p) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, p.Row, p.Col)
	}
	if b.cells[p.Row][p.Col] != Empty {
		return fmt.Errorf("%w: %v", ErrOccupied, p)
	}
	b.cells[p.Row][p.Col] = c
	return nil
}

// Place temporarily colors p and returns a function that restores the
// previous color. Callers should defer the restore so the board is left
// unchanged on every exit path.
func (b *Board) Place(p Position, c Color) (restore func(), err error) {
	if !InBounds(p) {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, p.Row, p.Col)
	}
	prev := b.cells[p.Row][p.Col]
	b.cells[p.Row][p.Col] = c
	return func() { b.cells[p.Row][p.Col] = prev }, nil
}

// Clear empties every cell.
func (b *Board) Clear() {
	b.cells = [Dim][Dim]Color{}
}

// EmptyCount returns the number of uncolored cells.
func (b *Board) EmptyCount() int {
	n := 0
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if b.cells[r][c] == Empty {
				n++
			}
		}
	}
	return n
}

// EmptyCells lists the uncolored cells in row-major order.
func (b *Board) EmptyCells() []Position {
	ps := make([]Position, 0, Dim*Dim)
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if b.cells[r][c] == Empty {
				ps = append(ps, Position{r, c})
			}
		}
	}
	return ps
}

// FirstEmpty returns the first uncolored cell in row-major order.
func (b *Board) FirstEmpty() (Position, bool) {
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if b.cells[r][c] == Empty {
				return Position{r, c}, true
			}
		}
	}
	return Position{}, false
}

// Count returns how many cells hold the given color.
func (b *Board) Count(c Color) int {
	n := 0
	for r := 0; r < Dim; r++ {
		for col := 0; col < Dim; col++ {
			if b.cells[r][col] == c {
				n++
			}
		}
	}
	return n
}

// IsFull reports whether every cell is colored.
func (b *Board) IsFull() bool {
	_, ok := b.FirstEmpty()
	return !ok
}
