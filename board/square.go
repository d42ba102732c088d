package board

import "fmt"

// Color is the state of a single cell: empty, or colored by one of the
// two players.
type Color uint8

const (
	Empty Color = iota
	Red
	Blue
)

// Opponent returns the other player's color. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Red:
		return "red"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// DisplayChar is the single character used for this color in the
// plaintext board format.
func (c Color) DisplayChar() byte {
	switch c {
	case Red:
		return 'R'
	case Blue:
		return 'B'
	}
	return '.'
}

// ColorFromChar is the inverse of DisplayChar.
func ColorFromChar(ch byte) (Color, error) {
	switch ch {
	case '.', ' ':
		return Empty, nil
	case 'R', 'r':
		return Red, nil
	case 'B', 'b':
		return Blue, nil
	}
	return Empty, fmt.Errorf("unrecognized cell %q", ch)
}

// ColorFromString parses a player color name such as "red" or "blue".
func ColorFromString(s string) (Color, error) {
	switch s {
	case "red", "r", "R":
		return Red, nil
	case "blue", "b", "B":
		return Blue, nil
	}
	return Empty, fmt.Errorf("%q is not a player color", s)
}
