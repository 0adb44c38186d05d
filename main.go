package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"raysnake/config"
	"raysnake/game"
	"raysnake/ui"
	"raysnake/ui/ebitenui"
	"raysnake/ui/terminal"
)

const (
	frontendRaylib   = "raylib"
	frontendTerminal = "terminal"
	frontendEbiten   = "ebiten"
)

func main() {
	def := config.Default()

	frontend := flag.String("frontend", frontendRaylib, "Frontend to run: raylib, terminal or ebiten")
	tile := flag.Int("tile", def.TileSize, "Tile size in pixels")
	mapSize := flag.Int("map", def.MapSize, "Map size in tiles, border included")
	fps := flag.Int("fps", def.TargetFPS, "Simulation ticks per second")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = current time)")
	level := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stderr")
	flag.Parse()

	closeLog, err := setupLogging(*level, *logFile, *frontend == frontendTerminal)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := config.Config{TileSize: *tile, MapSize: *mapSize, TargetFPS: *fps}
	if err := cfg.Validate(); err != nil {
		log.Err(err).Msg("Invalid configuration")
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(*seed))

	g := game.NewGame(cfg.Grid(), rng, log.Logger)

	log.Info().
		Str("frontend", *frontend).
		Uint64("seed", *seed).
		Int("map", cfg.MapSize).
		Msg("Starting")

	if err := run(*frontend, cfg, g); err != nil {
		log.Err(err).Msg("Frontend stopped")
		closeLog()
		os.Exit(1)
	}

	stats := g.Stats()
	log.Info().
		Int("games", stats.GamesPlayed()).
		Int("max_score", stats.MaxScore()).
		Float64("avg_score", stats.AverageScore()).
		Dur("avg_duration", stats.AverageDuration()).
		Msg("Session finished")
}

func run(frontend string, cfg config.Config, g *game.Game) error {
	switch frontend {
	case frontendRaylib:
		return ui.Run(cfg, g)
	case frontendEbiten:
		return ebitenui.Run(cfg, g)
	case frontendTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return terminal.Run(ctx, cfg, g)
	default:
		return fmt.Errorf("unknown frontend %q", frontend)
	}
}

// setupLogging points the global logger at stderr or a file. The terminal
// frontend owns the tty, so without a file its logs are dropped.
func setupLogging(level, path string, quiet bool) (func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)

	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: f, NoColor: true})
		return func() { f.Close() }, nil
	case quiet:
		log.Logger = log.Output(io.Discard)
	default:
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return func() {}, nil
}
