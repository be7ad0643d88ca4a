package application

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
)

// RunApp - runs the application until ctx is canceled or the HTTP server fails.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	outcomeRepo, closeRepo, err := newOutcomeRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	gameService, err := service.NewGameService(logger, conf.DefaultEngine, outcomeRepo)
	if err != nil {
		return fmt.Errorf("could not create game service: %w", err)
	}

	errg, ctx := errgroup.WithContext(ctx)

	errg.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gameService)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			return httpErr
		}

		return nil
	})

	if err = errg.Wait(); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func newOutcomeRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.OutcomeRepository, func(), error) {
	if !conf.Redis.Enabled() {
		log.Info("redis is not configured, caching outcomes in memory")
		return repository.NewMemoryOutcomeRepository(), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewOutcomeRepository(redisStorage.Connection, conf.Redis.TTL), closeFn, nil
}
