// Package main is the entry point for DungeonDigger.
package main

import (
	"context"
	"flag"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeondigger/internal/game"
	"github.com/samdwyer/dungeondigger/internal/logger"
	"github.com/samdwyer/dungeondigger/internal/telemetry"
	"github.com/samdwyer/dungeondigger/internal/ui"
)

func main() {
	dump := flag.Bool("dump", false, "print the generated dungeon as text and exit")
	seed := flag.Int64("seed", 0, "dungeon seed (overrides DUNGEON_SEED, 0 = random)")
	flag.Parse()

	// Load .env file for local development
	envErr := godotenv.Load()

	log, closeLog := newLogger(*dump)
	defer closeLog()
	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.WithError(envErr).Debug(".env file not loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if enabled, err := telemetry.ConfigureHoneycomb(os.Getenv, os.Setenv); err != nil {
		log.WithError(err).Warn("Honeycomb configuration failed")
	} else if enabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry - generation still works
			log.WithError(err).Warn("Telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.WithError(err).Error("Error shutting down telemetry")
				}
			}()
		}
	}

	cfg, err := game.LoadConfig(os.Getenv)
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	log.WithFields(logrus.Fields{
		"seed":   cfg.Seed,
		"preset": cfg.Preset,
		"width":  cfg.Width,
		"height": cfg.Height,
		"rooms":  cfg.Rooms,
	}).Info("Generating dungeon")

	level, err := game.NewLevel(ctx, cfg, rand.New(rand.NewSource(cfg.Seed)), log)
	if err != nil {
		log.WithError(err).Fatal("Failed to generate dungeon")
	}
	if !level.Map.Connected() {
		log.Warn("Some rooms are unreachable from the start position")
	}

	if *dump {
		if err := ui.Dump(os.Stdout, level.Map, level.Roster); err != nil {
			log.WithError(err).Fatal("Failed to write dungeon")
		}
		return
	}

	g, err := game.New(level, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize game")
	}

	if err := g.Run(ctx); err != nil && ctx.Err() == nil {
		log.WithError(err).Fatal("Game error")
	}
}

// newLogger sends logs to stderr when dumping. Otherwise the terminal belongs
// to the screen, so logs go to LOG_FILE or nowhere.
func newLogger(dump bool) (*logrus.Logger, func()) {
	if dump {
		return logger.New(os.Stderr), func() {}
	}
	path := os.Getenv("LOG_FILE")
	if path == "" {
		return logger.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log := logger.New(os.Stderr)
		log.WithError(err).Warn("Cannot open LOG_FILE, logging to stderr")
		return log, func() {}
	}
	return logger.New(f), func() { f.Close() }
}
