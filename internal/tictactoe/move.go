package tictactoe

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Move - a cell to be taken by the player to move in the state it belongs to.
type Move struct {
	x, y  int
	state *GameState
}

// NewMove - returns the move at column x, row y of state.
func NewMove(state *GameState, x, y int) (Move, error) {
	if x < 0 || x >= boardSize || y < 0 || y >= boardSize {
		return Move{}, fmt.Errorf("%w: (%d, %d) must be between (0, 0) and (2, 2)", apperror.ErrOutOfRange, x, y)
	}

	if state == nil {
		return Move{}, fmt.Errorf("%w: move requires a game state", apperror.ErrValidation)
	}

	return Move{x: x, y: y, state: state}, nil
}

func (that Move) X() int {
	return that.x
}

func (that Move) Y() int {
	return that.y
}

// Token - returns the token of the player who would occupy the cell, empty for the zero Move.
func (that Move) Token() string {
	if that.state == nil {
		return ""
	}

	return that.state.TurnToMove()
}

// AsArray - returns the move as column, row and token.
func (that Move) AsArray() (int, int, string) {
	return that.x, that.y, that.Token()
}

func (that Move) String() string {
	return fmt.Sprintf("%s@(%d,%d)", that.Token(), that.x, that.y)
}

// MarshalJSON - encodes the move as [x, y, "token"].
func (that Move) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{that.x, that.y, that.Token()})
}
