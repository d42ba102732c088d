package automatic

import (
	"fmt"
	"io"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/domino14/colormap/board"
	"github.com/domino14/colormap/movesearch"
)

const histogramBins = 15

// Summary aggregates the results of a batch of games. DistinctEndings
// counts the different final positions by zobrist hash.
type Summary struct {
	Games           int              `yaml:"games"`
	RedLevel        movesearch.Level `yaml:"red_level"`
	BlueLevel       movesearch.Level `yaml:"blue_level"`
	RedWins         int              `yaml:"red_wins"`
	BlueWins        int              `yaml:"blue_wins"`
	Ties            int              `yaml:"ties"`
	RedMean         float64          `yaml:"red_mean"`
	RedStdev        float64          `yaml:"red_stdev"`
	BlueMean        float64          `yaml:"blue_mean"`
	BlueStdev       float64          `yaml:"blue_stdev"`
	SpreadMean      float64          `yaml:"spread_mean"`
	SpreadStdev     float64          `yaml:"spread_stdev"`
	MeanTurns       float64          `yaml:"mean_turns"`
	DistinctEndings int              `yaml:"distinct_endings"`

	spreads []float64
}

func meanStdev(x []float64) (float64, float64) {
	switch len(x) {
	case 0:
		return 0, 0
	case 1:
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}

// Summarize computes win counts and score statistics. Spreads are red's
// score minus blue's.
func Summarize(results []GameResult, redLevel, blueLevel movesearch.Level) *Summary {
	s := &Summary{Games: len(results), RedLevel: redLevel, BlueLevel: blueLevel}
	for _, r := range results {
		switch r.Winner {
		case board.Red:
			s.RedWins++
		case board.Blue:
			s.BlueWins++
		default:
			s.Ties++
		}
	}
	red := lo.Map(results, func(r GameResult, _ int) float64 { return float64(r.RedScore) })
	blue := lo.Map(results, func(r GameResult, _ int) float64 { return float64(r.BlueScore) })
	s.spreads = lo.Map(results, func(r GameResult, _ int) float64 { return float64(r.Spread()) })
	turns := lo.Map(results, func(r GameResult, _ int) float64 { return float64(r.Turns) })

	s.RedMean, s.RedStdev = meanStdev(red)
	s.BlueMean, s.BlueStdev = meanStdev(blue)
	s.SpreadMean, s.SpreadStdev = meanStdev(s.spreads)
	s.MeanTurns, _ = meanStdev(turns)
	s.DistinctEndings = len(lo.Uniq(lo.Map(results, func(r GameResult, _ int) uint64 { return r.FinalHash })))
	return s
}

func (s *Summary) String() string {
	var ss strings.Builder
	fmt.Fprintf(&ss, "Games played: %d\n", s.Games)
	if s.Games == 0 {
		return ss.String()
	}
	pct := func(n int) float64 { return 100.0 * float64(n) / float64(s.Games) }
	fmt.Fprintf(&ss, "red (%v) wins: %d (%.3f%%)\n", s.RedLevel, s.RedWins, pct(s.RedWins))
	fmt.Fprintf(&ss, "blue (%v) wins: %d (%.3f%%)\n", s.BlueLevel, s.BlueWins, pct(s.BlueWins))
	fmt.Fprintf(&ss, "ties: %d (%.3f%%)\n", s.Ties, pct(s.Ties))
	fmt.Fprintf(&ss, "red Mean Score: %.6f  Stdev: %.6f\n", s.RedMean, s.RedStdev)
	fmt.Fprintf(&ss, "blue Mean Score: %.6f  Stdev: %.6f\n", s.BlueMean, s.BlueStdev)
	fmt.Fprintf(&ss, "Mean spread (red - blue): %.6f  Stdev: %.6f\n", s.SpreadMean, s.SpreadStdev)
	fmt.Fprintf(&ss, "Mean turns: %.2f\n", s.MeanTurns)
	fmt.Fprintf(&ss, "Distinct final positions: %d\n", s.DistinctEndings)
	if lo.Min(s.spreads) < lo.Max(s.spreads) {
		ss.WriteString("Spread histogram:\n")
		if err := histogram.Fprint(&ss, histogram.Hist(histogramBins, s.spreads), histogram.Linear(40)); err != nil {
			fmt.Fprintf(&ss, "could not draw histogram: %v\n", err)
		}
	}
	return ss.String()
}

// WriteYAML writes the summary, without the histogram.
func (s *Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(s)
}
