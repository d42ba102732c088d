package board

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrBadCoords = errors.New("coordinates must look like C7 (column letter, row number)")

var reCoords = regexp.MustCompile(`^([A-Ja-j])(\d{1,2})$`)

// ToDisplayText renders the board the way the shell shows it: columns are
// lettered, rows are numbered from 1.
func (b *Board) ToDisplayText() string {
	var str strings.Builder
	str.WriteString("   ")
	for i := 0; i < Dim; i++ {
		str.WriteString(fmt.Sprintf("%c ", 'A'+i))
	}
	str.WriteString("\n")
	str.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	for r := 0; r < Dim; r++ {
		str.WriteString(fmt.Sprintf("%2d|", r+1))
		for c := 0; c < Dim; c++ {
			str.WriteByte(b.cells[r][c].DisplayChar())
			str.WriteByte(' ')
		}
		str.WriteString("|\n")
	}
	str.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	return "\n" + str.String()
}

// Rows returns the plaintext form of the board: one string per row, '.'
// for empty cells, 'R' and 'B' for the players.
func (b *Board) Rows() []string {
	rows := make([]string, Dim)
	for r := 0; r < Dim; r++ {
		bts := make([]byte, Dim)
		for c := 0; c < Dim; c++ {
			bts[c] = b.cells[r][c].DisplayChar()
		}
		rows[r] = string(bts)
	}
	return rows
}

// FromRows builds a board from its plaintext form (see Rows).
func FromRows(rows []string) (*Board, error) {
	if len(rows) != Dim {
		return nil, fmt.Errorf("expected %d rows, got %d", Dim, len(rows))
	}
	b := NewBoard()
	for r, row := range rows {
		if len(row) != Dim {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", r+1, Dim, len(row))
		}
		for c := 0; c < Dim; c++ {
			color, err := ColorFromChar(row[c])
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", r+1, err)
			}
			b.cells[r][c] = color
		}
	}
	return b, nil
}

// ToCoords turns a position into user-visible coordinates such as "C7".
func ToCoords(p Position) string {
	if !InBounds(p) {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'A'+p.Col, p.Row+1)
}

// FromCoords parses coordinates such as "C7" (column C, row 7).
func FromCoords(s string) (Position, error) {
	m := reCoords.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Position{}, fmt.Errorf("%w: %q", ErrBadCoords, s)
	}
	row, err := strconv.Atoi(m[2])
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrBadCoords, s)
	}
	col := int(strings.ToUpper(m[1])[0] - 'A')
	p := Position{Row: row - 1, Col: col}
	if !InBounds(p) {
		return Position{}, fmt.Errorf("%w: %q", ErrOutOfBounds, s)
	}
	return p, nil
}
