// Package scoring computes shape points for a colored cell: exact points
// for shapes the cell completes, and a continuous partial-completion score
// that the move search uses to rank empty cells.
package scoring

import (
	"github.com/samber/lo"

	"github.com/domino14/colormap/board"
	"github.com/domino14/colormap/shape"
)

// Alignments returns every anchor at which s covers pos, one per offset.
// Anchors may lie off the board.
func Alignments(s shape.Shape, pos board.Position) []board.Position {
	return lo.Map(s.Offsets, func(o shape.Offset, _ int) board.Position {
		return pos.Add(-o.DR, -o.DC)
	})
}

// IsComplete reports whether every cell of s anchored at anchor is on the
// board and has the given color.
func IsComplete(b *board.Board, s shape.Shape, anchor board.Position, color board.Color) bool {
	for _, o := range s.Offsets {
		p := anchor.Add(o.DR, o.DC)
		if !board.InBounds(p) || b.At(p) != color {
			return false
		}
	}
	return true
}

// AlignmentCompletion is the fraction of the cells of s anchored at anchor
// that have the given color. Off-board cells count as missing.
func AlignmentCompletion(b *board.Board, s shape.Shape, anchor board.Position, color board.Color) float64 {
	matched := lo.CountBy(s.Offsets, func(o shape.Offset) bool {
		p := anchor.Add(o.DR, o.DC)
		return board.InBounds(p) && b.At(p) == color
	})
	return float64(matched) / float64(s.Size())
}

// CompleteShapeScore returns the points earned by the cell at pos for
// shapes of the given color that include it. Each shape scores at most
// once per call, no matter how many of its alignments are complete.
func CompleteShapeScore(b *board.Board, pos board.Position, color board.Color) int {
	points := 0
	for _, s := range shape.Catalog() {
		for _, anchor := range Alignments(s, pos) {
			if IsComplete(b, s, anchor, color) {
				points += s.Points()
				break
			}
		}
	}
	return points
}

// PartialShapeScore sums, over every shape and every alignment covering
// pos, the completed fraction of that alignment times the shape's base
// points.
func PartialShapeScore(b *board.Board, pos board.Position, color board.Color) float64 {
	return lo.SumBy(shape.Catalog(), func(s shape.Shape) float64 {
		return lo.SumBy(Alignments(s, pos), func(anchor board.Position) float64 {
			return AlignmentCompletion(b, s, anchor, color) * float64(s.BasePoints)
		})
	})
}

// CandidateScore is the partial shape score pos would have if it were
// colored. The board is colored only for the duration of the call.
func CandidateScore(b *board.Board, pos board.Position, color board.Color) (float64, error) {
	restore, err := b.Place(pos, color)
	if err != nil {
		return 0, err
	}
	defer restore()
	return PartialShapeScore(b, pos, color), nil
}
