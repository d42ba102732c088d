// Package shape is the catalog of polyominoes that score points when a
// player colors all of their cells.
package shape

import (
	"fmt"
	"strings"
)

// Offset is a (row, col) displacement from a shape's anchor cell.
type Offset struct {
	DR int
	DC int
}

// Shape is a scoreable polyomino. Every shape's offsets include the
// origin, so any shape can be anchored on the most recently colored cell.
type Shape struct {
	Name       string
	Offsets    []Offset
	BasePoints int
	Weight     int
}

// Points is what completing the shape is worth.
func (s Shape) Points() int {
	return s.BasePoints * s.Weight
}

// Size is the number of cells in the shape.
func (s Shape) Size() int {
	return len(s.Offsets)
}

const (
	L   = "L"
	Box = "Box"
	T   = "T"
)

var catalog = []Shape{
	{
		Name:       L,
		Offsets:    []Offset{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		BasePoints: 4,
		Weight:     1,
	},
	{
		Name:       Box,
		Offsets:    []Offset{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		BasePoints: 4,
		Weight:     2,
	},
	{
		// A plus sign; the top cell is the anchor.
		Name:       T,
		Offsets:    []Offset{{0, 0}, {1, -1}, {1, 0}, {1, 1}, {2, 0}},
		BasePoints: 5,
		Weight:     3,
	},
}

// Catalog returns the registered shapes in a fixed order. The returned
// slice is a copy and may be modified freely.
func Catalog() []Shape {
	shapes := make([]Shape, len(catalog))
	for i, s := range catalog {
		shapes[i] = s
		shapes[i].Offsets = append([]Offset(nil), s.Offsets...)
	}
	return shapes
}

// ByName looks up a registered shape.
func ByName(name string) (Shape, bool) {
	for _, s := range Catalog() {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}

// ToDisplayText draws the shape on a small grid, '#' for its cells.
func (s Shape) ToDisplayText() string {
	minR, minC, maxR, maxC := 0, 0, 0, 0
	for _, o := range s.Offsets {
		minR, maxR = min(minR, o.DR), max(maxR, o.DR)
		minC, maxC = min(minC, o.DC), max(maxC, o.DC)
	}
	h, w := maxR-minR+1, maxC-minC+1
	grid := make([][]byte, h)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(". ", w))
	}
	for _, o := range s.Offsets {
		grid[o.DR-minR][2*(o.DC-minC)] = '#'
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%d x %d = %d points)\n", s.Name, s.BasePoints, s.Weight, s.Points())
	for _, row := range grid {
		sb.WriteString("  ")
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
