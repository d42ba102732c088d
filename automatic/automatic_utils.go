package automatic

// Data collection for automatic games.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/colormap/board"
	"github.com/domino14/colormap/config"
	"github.com/domino14/colormap/movesearch"
	"github.com/domino14/colormap/zobrist"
)

const logHeader = "gameID,turn,player,level,move,points,totalscore,posture,target,emptycells,hash\n"

// Options describes a batch of games.
type Options struct {
	NumGames  int
	Threads   int
	RedLevel  movesearch.Level
	BlueLevel movesearch.Level
	// Seed 0 seeds every worker randomly. Otherwise worker i uses Seed+i.
	Seed uint64
}

// OptionsFromConfig reads the autoplay settings. A side with no level of
// its own plays at the configured level.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	red, err := movesearch.ParseLevel(cfg.AutoplayLevel(config.ConfigAutoplayRedLevel))
	if err != nil {
		return Options{}, fmt.Errorf("red: %w", err)
	}
	blue, err := movesearch.ParseLevel(cfg.AutoplayLevel(config.ConfigAutoplayBlueLevel))
	if err != nil {
		return Options{}, fmt.Errorf("blue: %w", err)
	}
	return Options{
		NumGames:  cfg.GetInt(config.ConfigAutoplayGames),
		Threads:   cfg.GetInt(config.ConfigAutoplayThreads),
		RedLevel:  red,
		BlueLevel: blue,
		Seed:      cfg.Seed(),
	}, nil
}

var isPlaying atomic.Bool

func workerSeed(seed uint64, worker int) uint64 {
	if seed == 0 {
		return 0
	}
	return seed + uint64(worker)
}

// StartCompVComp plays opts.NumGames games on opts.Threads goroutines and
// writes one CSV line per turn to logw. It returns once every game is
// done, or early with the games finished so far if ctx is cancelled.
func StartCompVComp(ctx context.Context, cfg *config.Config, opts Options, logw io.Writer) (*Summary, error) {
	if opts.NumGames < 1 || opts.Threads < 1 {
		return nil, errors.New("need at least one game and one thread")
	}
	if !isPlaying.CompareAndSwap(false, true) {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	defer isPlaying.Store(false)

	log.Debug().Msgf("Starting %v games, %v threads", opts.NumGames, opts.Threads)

	logChan := make(chan string, 100)
	logDone := make(chan error, 1)
	go func() {
		_, err := io.WriteString(logw, logHeader)
		for msg := range logChan {
			if err == nil {
				_, err = io.WriteString(logw, msg)
			}
		}
		logDone <- err
		log.Debug().Msg("Exiting turn logger goroutine!")
	}()

	// One table for the whole batch, so equal positions hash alike across
	// workers.
	z := &zobrist.Zobrist{}
	z.Initialize(board.Dim)

	jobs := make(chan int)
	results := make([]GameResult, opts.NumGames)
	finished := make([]bool, opts.NumGames)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < opts.NumGames; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				return nil
			}
		}
		log.Debug().Msg("Finished queueing all jobs.")
		return nil
	})
	for t := 0; t < opts.Threads; t++ {
		t := t
		g.Go(func() error {
			r, err := NewGameRunner(logChan, cfg.WinThreshold(), cfg.GAGenerations(),
				opts.RedLevel, opts.BlueLevel, movesearch.NewRNG(workerSeed(opts.Seed, t)), z)
			if err != nil {
				return err
			}
			for id := range jobs {
				res, err := r.PlayGame(id)
				if err != nil {
					return err
				}
				results[id] = res
				finished[id] = true
			}
			return nil
		})
	}

	err := g.Wait()
	close(logChan)
	logErr := <-logDone
	if err != nil {
		return nil, err
	}
	if logErr != nil {
		return nil, logErr
	}

	played := make([]GameResult, 0, opts.NumGames)
	for i, ok := range finished {
		if ok {
			played = append(played, results[i])
		}
	}
	log.Info().Msgf("All %d games finished.", len(played))
	return Summarize(played, opts.RedLevel, opts.BlueLevel), nil
}
