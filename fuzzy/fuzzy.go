// Package fuzzy picks the AI's strategic posture from the state of the
// game. Two inputs, the number of empty cells and the point differential
// between the players, are fuzzified with trapezoidal membership
// functions, combined with a small max-min rule base, and defuzzified
// with a weighted centroid.
package fuzzy

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/colormap/board"
)

// Posture is what the AI optimizes for on its turn.
type Posture int

const (
	// Offensive plays to build the AI's own shapes.
	Offensive Posture = iota
	// Defensive plays where the opponent would score.
	Defensive
)

func (p Posture) String() string {
	if p == Defensive {
		return "defensive"
	}
	return "offensive"
}

// Centroids of the output sets. The offensive set is represented by the
// points 0, 10, 20 and the defensive set by 30, 40, 50.
const (
	offensiveCentroidSum = 0 + 10 + 20
	defensiveCentroidSum = 30 + 40 + 50
	centroidPoints       = 3

	// Centroids up to and including this value are offensive.
	OffensiveCeiling = 20.0
)

// BoardMembership is the degree to which the board is full, half-full
// and empty.
type BoardMembership struct {
	Full   float64
	Medium float64
	Empty  float64
}

// DiffMembership is the degree to which the point differential is low,
// medium and high.
type DiffMembership struct {
	Low    float64
	Medium float64
	High   float64
}

// Decision is the full output of a classification, kept for display and
// logging.
type Decision struct {
	Board     BoardMembership
	Diff      DiffMembership
	Offensive float64
	Defensive float64
	Centroid  float64
	Posture   Posture
}

// TargetColor is the color whose shapes the move search should optimize
// for: the AI's own when offensive, the opponent's when defensive.
func (d Decision) TargetColor(ai, human board.Color) board.Color {
	if d.Posture == Defensive {
		return human
	}
	return ai
}

func (d Decision) String() string {
	return fmt.Sprintf("board(full=%.2f medium=%.2f empty=%.2f) diff(low=%.2f medium=%.2f high=%.2f) "+
		"offensive=%.2f defensive=%.2f centroid=%.2f -> %v",
		d.Board.Full, d.Board.Medium, d.Board.Empty,
		d.Diff.Low, d.Diff.Medium, d.Diff.High,
		d.Offensive, d.Defensive, d.Centroid, d.Posture)
}

// trapezoid is 0 below a, rises linearly to 1 at b, stays at 1 until c and
// falls linearly to 0 at d.
func trapezoid(x, a, b, c, d float64) float64 {
	switch {
	case x < a || x > d:
		return 0
	case x >= b && x <= c:
		return 1
	case x < b:
		return (x - a) / (b - a)
	default:
		return (d - x) / (d - c)
	}
}

// leftShoulder is 1 up to a and falls to 0 at b.
func leftShoulder(x, a, b float64) float64 {
	switch {
	case x <= a:
		return 1
	case x >= b:
		return 0
	}
	return (b - x) / (b - a)
}

// rightShoulder is 0 up to a and rises to 1 at b.
func rightShoulder(x, a, b float64) float64 {
	switch {
	case x <= a:
		return 0
	case x >= b:
		return 1
	}
	return (x - a) / (b - a)
}

// BoardFullness fuzzifies the number of empty cells.
func BoardFullness(emptyCount int) BoardMembership {
	x := float64(emptyCount)
	return BoardMembership{
		Full:   leftShoulder(x, 30, 35),
		Medium: trapezoid(x, 30, 35, 70, 75),
		Empty:  rightShoulder(x, 70, 75),
	}
}

// PointDifferential fuzzifies the absolute difference between the
// players' scores.
func PointDifferential(pointDiff int) DiffMembership {
	if pointDiff < 0 {
		pointDiff = -pointDiff
	}
	x := float64(pointDiff)
	return DiffMembership{
		Low:    leftShoulder(x, 15, 20),
		Medium: trapezoid(x, 15, 20, 30, 35),
		High:   rightShoulder(x, 30, 35),
	}
}

// Classify runs the rule base and returns the resulting posture.
//
//	offensive = max over {empty, medium, full} x {low, high}
//	defensive = max over {empty, medium, full} x {medium}
func Classify(emptyCount, pointDiff int) Decision {
	bm := BoardFullness(emptyCount)
	dm := PointDifferential(pointDiff)
	boardSets := []float64{bm.Empty, bm.Medium, bm.Full}

	offensive := lo.Max(lo.FlatMap(boardSets, func(b float64, _ int) []float64 {
		return []float64{min(b, dm.Low), min(b, dm.High)}
	}))
	defensive := lo.Max(lo.Map(boardSets, func(b float64, _ int) float64 {
		return min(b, dm.Medium)
	}))

	d := Decision{
		Board:     bm,
		Diff:      dm,
		Offensive: offensive,
		Defensive: defensive,
	}
	d.Centroid, d.Posture = defuzzify(offensive, defensive)
	log.Debug().Int("empty", emptyCount).Int("diff", pointDiff).
		Float64("centroid", d.Centroid).Stringer("posture", d.Posture).Msg("fuzzy-posture")
	return d
}

// defuzzify computes the weighted centroid of the two output sets. When no
// rule fired at all there is nothing to weigh, and the AI attacks.
func defuzzify(offensive, defensive float64) (float64, Posture) {
	total := offensive + defensive
	if total == 0 {
		return 0, Offensive
	}
	centroid := (offensiveCentroidSum*offensive + defensiveCentroidSum*defensive) /
		(centroidPoints * total)
	if centroid <= OffensiveCeiling {
		return centroid, Offensive
	}
	return centroid, Defensive
}
