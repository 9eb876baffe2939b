package main

import (
	"embed"
	"flag"
	"io/fs"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/abode/internal/application/game"
	"github.com/younwookim/abode/internal/application/scene/playing"
	"github.com/younwookim/abode/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	stageFlag := flag.String("stage", "level1", "Stage to start on")
	recordFlag := flag.String("record", "", "Record every stage attempt into this directory (e.g., -record .)")
	replayFlag := flag.String("replay", "", "Re-simulate a recorded replay headlessly and exit")
	seedFlag := flag.Int64("seed", 0, "Seed for boss randomness (0 picks a new one per attempt)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).With("run", runID)
	slog.SetDefault(logger)

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		fatal(logger, "failed to get config subfs", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		fatal(logger, "failed to load config", err)
	}

	if *replayFlag != "" {
		summary, err := verifyReplay(loader, cfg, *replayFlag, logger)
		if err != nil {
			fatal(logger, "failed to replay", err)
		}
		summary.log(logger)
		return
	}

	chain, err := stageChain(loader, *stageFlag)
	if err != nil {
		fatal(logger, "invalid stage", err)
	}
	logger.Debug("stage chain", "stages", chain)

	first, err := playing.New(playing.Options{
		Loader:    loader,
		Config:    cfg,
		Logger:    logger,
		RunID:     runID,
		Seed:      *seedFlag,
		RecordDir: *recordFlag,
	}, *stageFlag)
	if err != nil {
		fatal(logger, "failed to load stage", err)
	}

	display := cfg.Physics.Display
	scale := max(display.Scale, 1)
	g := game.New(first, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*scale, display.ScreenHeight*scale)
	ebiten.SetWindowTitle("Abode")
	if display.Framerate > 0 {
		ebiten.SetTPS(display.Framerate)
	}

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		fatal(logger, "game exited", err)
	}
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
