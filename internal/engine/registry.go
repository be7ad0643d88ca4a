package engine

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	NameRandom     = "Random"
	NameWinChecker = "WinChecker"
	NameBlocker    = "Blocker"
)

// Constructor - builds an engine deciding for state.
type Constructor func(state *tictactoe.GameState, opts ...Option) Engine

// Descriptor - a named strategy offered to clients.
type Descriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	New         Constructor `json:"-"`
}

// registry - offered strategies, the first one is the default.
var registry = []Descriptor{
	{
		Name:        NameRandom,
		Description: "No strategy, just random placement.",
		New: func(state *tictactoe.GameState, opts ...Option) Engine {
			return NewRandom(state, opts...)
		},
	},
	{
		Name:        NameWinChecker,
		Description: "Selects a win if presented with one.",
		New: func(state *tictactoe.GameState, opts ...Option) Engine {
			return NewWinChecker(state, opts...)
		},
	},
	{
		Name:        NameBlocker,
		Description: "Attempts to block opponent from winning.",
		New: func(state *tictactoe.GameState, opts ...Option) Engine {
			return NewBlocker(state, opts...)
		},
	},
}

// Lookup - returns the strategy registered under name.
func Lookup(name string) (Descriptor, error) {
	i := slices.IndexFunc(registry, func(d Descriptor) bool { return d.Name == name })
	if i < 0 {
		return Descriptor{}, fmt.Errorf("%w: %q", apperror.ErrUnknownEngine, name)
	}

	return registry[i], nil
}

// Registry - returns all strategies in registration order.
func Registry() []Descriptor {
	return slices.Clone(registry)
}

func Default() Descriptor {
	return registry[0]
}
