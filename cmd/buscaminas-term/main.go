package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Yxrk845/Buscaminas/internal/config"
	"github.com/Yxrk845/Buscaminas/internal/game"
	"github.com/Yxrk845/Buscaminas/internal/logging"
	"github.com/Yxrk845/Buscaminas/internal/mines"
	"github.com/Yxrk845/Buscaminas/internal/term"
)

var errDone = errors.New("session over")

func run(ctx context.Context, logger *slog.Logger, in io.ReadCloser, out io.Writer) error {
	if err := logging.Setup(mines.Log, os.Stderr, config.Development(), config.LogFile()); err != nil {
		return err
	}
	rnd, err := config.Rand()
	if err != nil {
		return fmt.Errorf("failed to seed random source: %w", err)
	}

	session := term.New(logger, game.New(logger, rnd), in, out)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := session.Run(gCtx); err != nil {
			return err
		}
		return errDone
	})
	g.Go(func() error {
		<-gCtx.Done()
		if ctx.Err() != nil {
			logger.Info("interrupted, shutting down", slog.Any("cause", context.Cause(ctx)))
		} else {
			logger.Info("session finished")
		}
		// unblocks the session's pending read
		if err := in.Close(); err != nil {
			logger.Debug("failed to close input", "error", err)
		}
		return nil
	})

	err = g.Wait()
	if errors.Is(err, errDone) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := config.Load(); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, config.Development())
	logger.Info("starting", slog.Bool("development", config.Development()))

	if err := run(ctx, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("exit", "error", err)
		os.Exit(1)
	}
}
