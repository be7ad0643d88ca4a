// Package engine holds the move-selection strategies. Every strategy proposes
// a set of considered moves and picks one of them uniformly at random.
package engine

import (
	"sync"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Engine - decides a move for the position it was created with.
type Engine interface {
	// ConsideredMoves returns the candidate moves, nil when the game has ended.
	ConsideredMoves() []tictactoe.Move
	// Move returns one of the considered moves, false when there is none.
	Move() (tictactoe.Move, bool)
}

// Intner - source of the random tie-break.
type Intner interface {
	Intn(n int) int
}

type Option func(*picker)

// WithRand - picks moves with r instead of the shared source.
// Engines built from the same option share r, so calls to it are serialized.
func WithRand(r Intner) Option {
	locked := &lockedRand{rng: r}

	return func(p *picker) {
		p.rng = locked
	}
}

// WithSeed - picks moves with a private source seeded with seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

type lockedRand struct {
	mu  sync.Mutex
	rng Intner
}

func (that *lockedRand) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Intn(n)
}

type sharedRand struct{}

func (sharedRand) Intn(n int) int {
	return rand.Intn(n)
}

type picker struct {
	rng Intner
}

func newPicker(opts []Option) picker {
	p := picker{rng: sharedRand{}}
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

func (that picker) pick(moves []tictactoe.Move) (tictactoe.Move, bool) {
	if len(moves) == 0 {
		return tictactoe.Move{}, false
	}

	return moves[that.rng.Intn(len(moves))], true
}

// keepEnding - moves that end the game when played from position, or all moves if none do.
func keepEnding(position *tictactoe.GameState, moves []tictactoe.Move) []tictactoe.Move {
	var ending []tictactoe.Move
	for _, move := range moves {
		if position.MakeMove(move).IsEndGame() {
			ending = append(ending, move)
		}
	}

	if len(ending) == 0 {
		return moves
	}

	return ending
}
