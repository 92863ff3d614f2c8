package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/repository"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/transport/terminal"
)

const redisConnectTimeout = 3 * time.Second

// RunApp - runs one game in the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	publisher, closePublisher := initPublisher(ctx, logger, conf.Redis)
	defer closePublisher()

	session := terminal.Open(logger, conf.Keys, conf.Display)
	defer func() {
		if err := session.Close(); err != nil {
			log.Error("could not close terminal session", "error", err)
		}
	}()

	gameController := tictactoe.NewGameController(logger, publisher)

	runErr := gameController.Run(ctx, session, session)
	if runErr != nil && ctx.Err() != nil {
		// interrupted by a signal
		runErr = nil
	}

	// closed here as well so a terminal failure is reported instead of only logged
	if closeErr := session.Close(); closeErr != nil {
		return errors.Join(runErr, closeErr)
	}

	if runErr != nil {
		return fmt.Errorf("game failed: %w", runErr)
	}

	return nil
}

// initPublisher - connects to redis when outcome publishing is enabled. Publishing is optional:
// a connection failure is logged and the game runs without it.
func initPublisher(ctx context.Context, logger *slog.Logger, conf config.Redis) (tictactoe.OutcomePublisher, func()) {
	log := logger.With("component", "app")
	noop := func() {}

	if !conf.Enabled {
		return nil, noop
	}

	connectCtx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
	defer cancel()

	redisStorage, err := storage.NewRedisStorage(connectCtx, conf.GetRedisAddr())
	if err != nil {
		log.Warn("outcome publishing disabled", "error", err)
		return nil, noop
	}

	outcomeRepo, err := repository.NewOutcomeRepository(redisStorage.Connection, conf.Channel)
	if err != nil {
		log.Warn("outcome publishing disabled", "error", err)
		_ = redisStorage.Close()

		return nil, noop
	}

	return outcomeRepo, func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}
}
