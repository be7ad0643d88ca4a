// Package api binds a chosen engine to move and winner queries over external
// 3x3 board grids.
package api

import (
	"fmt"
	"reflect"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type API struct {
	newEngine engine.Constructor
	opts      []engine.Option
}

// New - returns an API playing with the strategy registered under name.
func New(name string, opts ...engine.Option) (*API, error) {
	descriptor, err := engine.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrConfiguration, err)
	}

	return NewWithConstructor(descriptor.New, opts...)
}

// NewWithConstructor - returns an API playing with engines built by newEngine.
// The constructor is tried once against a new game.
func NewWithConstructor(newEngine engine.Constructor, opts ...engine.Option) (*API, error) {
	if newEngine == nil {
		return nil, fmt.Errorf("%w: engine constructor is required", apperror.ErrConfiguration)
	}

	game, err := tictactoe.NewGame(tictactoe.DefaultCrosses, tictactoe.DefaultNoughts)
	if err != nil {
		return nil, fmt.Errorf("failed to create test game: %w", err)
	}

	if isNil(newEngine(game, opts...)) {
		return nil, fmt.Errorf("%w: engine constructor returned no engine", apperror.ErrConfiguration)
	}

	return &API{newEngine: newEngine, opts: opts}, nil
}

// Engine - returns an engine deciding for game.
func (that *API) Engine(game *tictactoe.GameState) engine.Engine {
	return that.newEngine(game, that.opts...)
}

// MakeMove - asks the engine for playerToken's move on grid, nil when there is none.
func (that *API) MakeMove(grid [][]string, playerToken string) (*tictactoe.Move, error) {
	game, err := tictactoe.FromGrid(grid, playerToken)
	if err != nil {
		return nil, fmt.Errorf("failed to read board: %w", err)
	}

	move, ok := that.Engine(game).Move()
	if !ok {
		return nil, nil
	}

	return &move, nil
}

// State - reads grid with the first piece on it to move.
func (that *API) State(grid [][]string) (*tictactoe.GameState, error) {
	game, err := tictactoe.FromGrid(grid, FirstPiece(grid))
	if err != nil {
		return nil, fmt.Errorf("failed to read board: %w", err)
	}

	return game, nil
}

// Winner - returns the result of grid.
func (that *API) Winner(grid [][]string) (tictactoe.Result, error) {
	game, err := that.State(grid)
	if err != nil {
		return tictactoe.Result{}, err
	}

	return game.Winner(), nil
}

// FirstPiece - returns the first player token on grid in row-major order, X on an empty grid.
func FirstPiece(grid [][]string) string {
	for _, row := range grid {
		for _, cell := range row {
			if cell != "" && cell != tictactoe.DefaultUnused {
				return cell
			}
		}
	}

	return tictactoe.DefaultCrosses
}

// isNil - reports a missing engine, including a typed nil pointer behind the interface.
func isNil(e engine.Engine) bool {
	if e == nil {
		return true
	}

	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
