package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/colormap/automatic"
	"github.com/domino14/colormap/config"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Info().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	opts, err := automatic.OptionsFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("bad autoplay options")
	}

	logfile := cfg.GetString(config.ConfigAutoplayLogfile)
	f, err := os.Create(logfile)
	if err != nil {
		log.Fatal().Err(err).Str("logfile", logfile).Msg("could not create log file")
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := automatic.StartCompVComp(ctx, cfg, opts, f)
	if err != nil {
		log.Error().Err(err).Msg("autoplay failed")
		return
	}
	fmt.Println(summary)
	log.Info().Str("logfile", logfile).Msg("wrote turn log")

	if path := cfg.GetString(config.ConfigAutoplaySummary); path != "" {
		sf, err := os.Create(path)
		if err != nil {
			log.Error().Err(err).Msg("could not create summary file")
			return
		}
		defer sf.Close()
		if err := summary.WriteYAML(sf); err != nil {
			log.Error().Err(err).Msg("could not write summary")
		}
	}
}
