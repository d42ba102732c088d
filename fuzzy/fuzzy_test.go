package fuzzy

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/colormap/board"
)

func TestMembershipsInRange(t *testing.T) {
	is := is.New(t)
	for x := 0; x <= 100; x++ {
		bm := BoardFullness(x)
		dm := PointDifferential(x)
		for _, v := range []float64{bm.Full, bm.Medium, bm.Empty, dm.Low, dm.Medium, dm.High} {
			is.True(v >= 0 && v <= 1)
		}
		assert.InDelta(t, 1.0, bm.Full+bm.Medium+bm.Empty, 1e-9)
		assert.InDelta(t, 1.0, dm.Low+dm.Medium+dm.High, 1e-9)
	}
}

func TestTransitionMidpoints(t *testing.T) {
	is := is.New(t)
	// board fullness transitions
	is.Equal(leftShoulder(32.5, 30, 35)+trapezoid(32.5, 30, 35, 70, 75), 1.0)
	is.Equal(trapezoid(72.5, 30, 35, 70, 75)+rightShoulder(72.5, 70, 75), 1.0)
	// point differential transitions
	is.Equal(leftShoulder(17.5, 15, 20)+trapezoid(17.5, 15, 20, 30, 35), 1.0)
	is.Equal(trapezoid(32.5, 15, 20, 30, 35)+rightShoulder(32.5, 30, 35), 1.0)
	is.Equal(leftShoulder(32.5, 30, 35), 0.5)
}

func TestBreakpoints(t *testing.T) {
	is := is.New(t)
	is.Equal(BoardFullness(30), BoardMembership{Full: 1})
	is.Equal(BoardFullness(35), BoardMembership{Medium: 1})
	is.Equal(BoardFullness(70), BoardMembership{Medium: 1})
	is.Equal(BoardFullness(75), BoardMembership{Empty: 1})
	is.Equal(BoardFullness(31), BoardMembership{Full: 0.8, Medium: 0.2})
	is.Equal(PointDifferential(15), DiffMembership{Low: 1})
	is.Equal(PointDifferential(20), DiffMembership{Medium: 1})
	is.Equal(PointDifferential(30), DiffMembership{Medium: 1})
	is.Equal(PointDifferential(35), DiffMembership{High: 1})
	is.Equal(PointDifferential(80), DiffMembership{High: 1})
	is.Equal(PointDifferential(-25), PointDifferential(25))
}

func TestEmptyBoardEvenGame(t *testing.T) {
	is := is.New(t)
	d := Classify(100, 0)
	is.Equal(d.Board.Empty, 1.0)
	is.Equal(d.Diff.Low, 1.0)
	is.Equal(d.Offensive, 1.0)
	is.Equal(d.Defensive, 0.0)
	is.Equal(d.Centroid, 10.0)
	is.Equal(d.Posture, Offensive)
	is.Equal(d.TargetColor(board.Blue, board.Red), board.Blue)
}

func TestMediumDiffIsDefensive(t *testing.T) {
	is := is.New(t)
	d := Classify(50, 25)
	is.Equal(d.Offensive, 0.0)
	is.Equal(d.Defensive, 1.0)
	is.Equal(d.Centroid, 40.0)
	is.Equal(d.Posture, Defensive)
	is.Equal(d.TargetColor(board.Blue, board.Red), board.Red)
}

func TestBlendedInputs(t *testing.T) {
	d := Classify(72, 18)
	assert.InDelta(t, 0.4, d.Offensive, 1e-9)
	assert.InDelta(t, 0.6, d.Defensive, 1e-9)
	assert.InDelta(t, 28.0, d.Centroid, 1e-9)
	assert.Equal(t, Defensive, d.Posture)

	d = Classify(20, 40)
	assert.Equal(t, Offensive, d.Posture)
	assert.InDelta(t, 10.0, d.Centroid, 1e-9)
}

func TestDefuzzify(t *testing.T) {
	is := is.New(t)
	c, p := defuzzify(0, 0)
	is.Equal(c, 0.0)
	is.Equal(p, Offensive)

	c, p = defuzzify(0.5, 0.5)
	is.Equal(c, 25.0)
	is.Equal(p, Defensive)

	// 20 is the last offensive centroid: 10a + 40b = 20(a+b) when a = 2b.
	c, p = defuzzify(0.5, 0.25)
	is.Equal(c, 20.0)
	is.Equal(p, Offensive)
}
