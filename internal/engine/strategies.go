package engine

import "github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"

// Random - considers every valid move.
type Random struct {
	picker
	state *tictactoe.GameState
}

func NewRandom(state *tictactoe.GameState, opts ...Option) *Random {
	return &Random{picker: newPicker(opts), state: state}
}

func (that *Random) ConsideredMoves() []tictactoe.Move {
	return that.state.ValidMoves()
}

func (that *Random) Move() (tictactoe.Move, bool) {
	return that.pick(that.ConsideredMoves())
}

// WinChecker - considers the moves that win on the spot, or every move when there is none.
type WinChecker struct {
	picker
	state *tictactoe.GameState
}

func NewWinChecker(state *tictactoe.GameState, opts ...Option) *WinChecker {
	return &WinChecker{picker: newPicker(opts), state: state}
}

func (that *WinChecker) ConsideredMoves() []tictactoe.Move {
	return keepEnding(that.state, that.state.ValidMoves())
}

func (that *WinChecker) Move() (tictactoe.Move, bool) {
	return that.pick(that.ConsideredMoves())
}

// Blocker - considers the cells the opponent would win with if it were their turn,
// or every move when there is no threat. A block is preferred over an own win.
type Blocker struct {
	picker
	state *tictactoe.GameState
}

func NewBlocker(state *tictactoe.GameState, opts ...Option) *Blocker {
	return &Blocker{picker: newPicker(opts), state: state}
}

func (that *Blocker) ConsideredMoves() []tictactoe.Move {
	return keepEnding(that.state.Skip(), that.state.ValidMoves())
}

func (that *Blocker) Move() (tictactoe.Move, bool) {
	return that.pick(that.ConsideredMoves())
}
