package movesearch

import "fmt"

// Level is the difficulty a game is played at.
type Level string

const (
	LevelEasy Level = "easy"
	LevelHard Level = "hard"
)

func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelEasy, LevelHard:
		return Level(s), nil
	}
	return "", fmt.Errorf("unknown level %q (want %v or %v)", s, LevelEasy, LevelHard)
}

// ForLevel returns the searcher that plays at the given level. Easy games
// use the genetic search, hard games the exhaustive one.
func ForLevel(level Level, rng RNG, maxGenerations int) (Searcher, error) {
	switch level {
	case LevelEasy:
		return NewGeneticSearcher(rng, maxGenerations), nil
	case LevelHard:
		return ExhaustiveSearcher{}, nil
	}
	return nil, fmt.Errorf("no searcher for level %q", level)
}
