package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/api"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type GameService interface {
	Engines() []engine.Descriptor

	MakeMove(ctx context.Context, engineName string, grid [][]string, playerToken string) (*tictactoe.Move, error)
	Winner(ctx context.Context, grid [][]string) (tictactoe.Result, error)
}

type outcomeRepo interface {
	Get(ctx context.Context, board string) (tictactoe.Result, error)
	Save(ctx context.Context, board string, result tictactoe.Result) error
}

type gameService struct {
	logger *slog.Logger

	apis          map[string]*api.API
	defaultEngine string
	outcomeRepo   outcomeRepo
}

// NewGameService - binds every registered engine; an unknown defaultEngine is a configuration error.
func NewGameService(logger *slog.Logger, defaultEngine string, outcomeRepo outcomeRepo, opts ...engine.Option) (GameService, error) {
	apis := make(map[string]*api.API)
	for _, descriptor := range engine.Registry() {
		engineAPI, err := api.NewWithConstructor(descriptor.New, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to bind engine %s: %w", descriptor.Name, err)
		}
		apis[descriptor.Name] = engineAPI
	}

	if _, ok := apis[defaultEngine]; !ok {
		return nil, fmt.Errorf("%w: default engine: %w", apperror.ErrConfiguration, apperror.ErrUnknownEngine)
	}

	return &gameService{
		logger:        logger.With("component", "gameService"),
		apis:          apis,
		defaultEngine: defaultEngine,
		outcomeRepo:   outcomeRepo,
	}, nil
}

func (that *gameService) Engines() []engine.Descriptor {
	return engine.Registry()
}

func (that *gameService) MakeMove(_ context.Context, engineName string, grid [][]string, playerToken string) (*tictactoe.Move, error) {
	log := that.logger.With("method", "MakeMove", "engine", engineName)

	engineAPI, ok := that.apis[engineName]
	if !ok {
		log.Info("unknown engine, using default", "default", that.defaultEngine)
		engineAPI = that.apis[that.defaultEngine]
	}

	move, err := engineAPI.MakeMove(grid, playerToken)
	if err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	if move == nil {
		log.Debug("no move available")
		return nil, nil
	}

	log.Debug("move selected", "move", move.String())

	return move, nil
}

func (that *gameService) Winner(ctx context.Context, grid [][]string) (tictactoe.Result, error) {
	log := that.logger.With("method", "Winner")

	game, err := that.apis[that.defaultEngine].State(grid)
	if err != nil {
		return tictactoe.Result{}, fmt.Errorf("failed to get winner: %w", err)
	}

	board := game.AsString()

	result, err := that.outcomeRepo.Get(ctx, board)
	if err == nil {
		log.Debug("outcome cache hit", "board", board)
		return result, nil
	}

	if !errors.Is(err, apperror.ErrOutcomeNotFound) {
		log.Error("failed to read outcome cache", "error", err)
	}

	result = game.Winner()

	if err = that.outcomeRepo.Save(ctx, board, result); err != nil {
		log.Error("failed to save outcome", "error", err)
	}

	return result, nil
}
