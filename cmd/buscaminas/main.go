package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Yxrk845/Buscaminas/internal/config"
	"github.com/Yxrk845/Buscaminas/internal/game"
	"github.com/Yxrk845/Buscaminas/internal/logging"
	"github.com/Yxrk845/Buscaminas/internal/mines"
	"github.com/Yxrk845/Buscaminas/internal/ui"
	"github.com/Yxrk845/Buscaminas/internal/ui/layout"
)

func run(logger *slog.Logger) error {
	if err := logging.Setup(mines.Log, os.Stderr, config.Development(), config.LogFile()); err != nil {
		return err
	}
	rnd, err := config.Rand()
	if err != nil {
		return fmt.Errorf("failed to seed random source: %w", err)
	}

	ctrl := game.New(logger, rnd)

	ebiten.SetWindowSize(layout.WindowSize, layout.WindowHeight)
	ebiten.SetWindowTitle(layout.Title)

	logger.Info("starting", slog.Bool("development", config.Development()))
	if err := ebiten.RunGame(ui.New(logger, ctrl)); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}

func main() {
	if err := config.Load(); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, config.Development())
	if err := run(logger); err != nil {
		logger.Error("exit", "error", err)
		os.Exit(1)
	}
}
