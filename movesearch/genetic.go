package movesearch

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/colormap/board"
)

const (
	PopulationSize         = 10
	ChromosomeBits         = 7
	DefaultMaxGenerations  = 100
	MutationsPerGeneration = 5
	// Only the five most significant bits are ever mutated.
	MutableBits = 5
	MinCut      = 2
	MaxCut      = 6

	maxMutationRedraws = 64
)

// A chromosome encodes an index into the candidate list. Bit position 0 is
// the most significant of the ChromosomeBits bits.
type chromosome uint8

func bitMask(pos int) chromosome {
	return 1 << (ChromosomeBits - 1 - pos)
}

// String renders the chromosome as a fixed-width binary string.
func (c chromosome) String() string {
	return fmt.Sprintf("%0*b", ChromosomeBits, uint8(c))
}

// GeneticSearcher evolves a small population of candidate indices toward
// the highest scoring empty cell.
type GeneticSearcher struct {
	rng            RNG
	maxGenerations int
}

// NewGeneticSearcher creates a searcher. A non-positive maxGenerations
// selects DefaultMaxGenerations.
func NewGeneticSearcher(rng RNG, maxGenerations int) *GeneticSearcher {
	if maxGenerations <= 0 {
		maxGenerations = DefaultMaxGenerations
	}
	return &GeneticSearcher{rng: rng, maxGenerations: maxGenerations}
}

type elite struct {
	index int
	score float64
}

func (g *GeneticSearcher) Search(b *board.Board, color board.Color) (*Result, error) {
	cands, err := Candidates(b, color)
	if err != nil {
		return nil, err
	}
	if len(cands) < 2 {
		return directScan(cands)
	}
	if len(cands) > 1<<ChromosomeBits {
		return nil, fmt.Errorf("%d candidates do not fit in a %d-bit chromosome", len(cands), ChromosomeBits)
	}

	scores := lo.Map(cands, func(c Candidate, _ int) float64 { return c.Score })
	target := lo.Max(scores)

	pop := g.initialPopulation(len(cands))
	fitness := evaluate(pop, scores)
	best := elite{index: -1, score: -1}
	best = updateElite(best, pop, fitness, len(cands))
	generations := 1

	for best.score < target && generations < g.maxGenerations {
		pop = selectNext(pop, reproductionCounts(fitness, PopulationSize))
		crossover(pop, MinCut+g.rng.Intn(MaxCut-MinCut+1))
		g.mutate(pop, len(cands))
		fitness = evaluate(pop, scores)
		best = updateElite(best, pop, fitness, len(cands))
		generations++
	}

	log.Debug().Int("candidates", len(cands)).Int("generations", generations).
		Float64("best", best.score).Float64("target", target).Msg("genetic-search")

	c := cands[best.index]
	return &Result{Pos: c.Pos, Score: c.Score, Generations: generations, Candidates: len(cands)}, nil
}

// initialPopulation draws random chromosomes, rejecting any that decode to
// n or more, until PopulationSize valid ones exist. n must be at least 1.
func (g *GeneticSearcher) initialPopulation(n int) []chromosome {
	pop := make([]chromosome, 0, PopulationSize)
	for len(pop) < PopulationSize {
		c := chromosome(g.rng.Intn(1 << ChromosomeBits))
		if int(c) < n {
			pop = append(pop, c)
		}
	}
	return pop
}

// evaluate maps each chromosome to the score of the candidate it selects.
// Out-of-range indices have zero fitness.
func evaluate(pop []chromosome, scores []float64) []float64 {
	return lo.Map(pop, func(c chromosome, _ int) float64 {
		if int(c) >= len(scores) {
			return 0
		}
		return scores[c]
	})
}

func updateElite(best elite, pop []chromosome, fitness []float64, n int) elite {
	for i, c := range pop {
		if int(c) < n && fitness[i] > best.score {
			best = elite{index: int(c), score: fitness[i]}
		}
	}
	return best
}

// reproductionCounts assigns each chromosome a number of copies in the next
// generation proportional to its fitness. Integer parts are handed out
// first; the leftover slots go one each to the largest fractional
// remainders, ties to the lower index. The counts always sum to size.
func reproductionCounts(fitness []float64, size int) []int {
	n := len(fitness)
	counts := make([]int, n)
	if n == 0 {
		return counts
	}
	total := lo.Sum(fitness)
	if total <= 0 {
		for i := range counts {
			counts[i] = size / n
		}
		for i := 0; i < size%n; i++ {
			counts[i]++
		}
		return counts
	}

	remainders := make([]float64, n)
	assigned := 0
	for i, f := range fitness {
		expected := f / total * float64(size)
		counts[i] = int(expected)
		remainders[i] = expected - float64(counts[i])
		assigned += counts[i]
	}
	order := lo.Range(n)
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for i := 0; assigned < size; i++ {
		counts[order[i%n]]++
		assigned++
	}
	return counts
}

func selectNext(pop []chromosome, counts []int) []chromosome {
	next := make([]chromosome, 0, PopulationSize)
	for i, c := range pop {
		for j := 0; j < counts[i]; j++ {
			next = append(next, c)
		}
	}
	return next
}

// crossover swaps the bits at positions >= cut between chromosomes 0 and 1,
// 2 and 3, and so on. An odd trailing chromosome is left alone.
func crossover(pop []chromosome, cut int) {
	mask := chromosome(1<<(ChromosomeBits-cut)) - 1
	for i := 0; i+1 < len(pop); i += 2 {
		a, b := pop[i], pop[i+1]
		pop[i] = a&^mask | b&mask
		pop[i+1] = b&^mask | a&mask
	}
}

// mutate flips one random high bit in MutationsPerGeneration randomly chosen
// chromosomes. When a flip would leave the candidate range, the bit stays
// and a different chromosome is drawn. A mutation that finds no valid
// target after maxMutationRedraws draws is skipped. Afterwards every
// chromosome decodes to a candidate index, including ones crossover pushed
// out of range.
func (g *GeneticSearcher) mutate(pop []chromosome, n int) {
	for m := 0; m < MutationsPerGeneration; m++ {
		mask := bitMask(g.rng.Intn(MutableBits))
		i := g.rng.Intn(len(pop))
		for attempt := 1; ; attempt++ {
			if flipped := pop[i] ^ mask; int(flipped) < n {
				pop[i] = flipped
				break
			}
			if attempt >= maxMutationRedraws || len(pop) < 2 {
				break
			}
			j := g.rng.Intn(len(pop) - 1)
			if j >= i {
				j++
			}
			i = j
		}
	}
	repair(pop, n)
}

// repair clears set bits of out-of-range chromosomes, most significant
// first, until each decodes below n. n must be at least 1.
func repair(pop []chromosome, n int) {
	for i := range pop {
		for pos := 0; int(pop[i]) >= n && pos < ChromosomeBits; pos++ {
			pop[i] &^= bitMask(pos)
		}
	}
}
