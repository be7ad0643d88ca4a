package repository

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type memoryOutcome struct {
	outcomes *xsync.MapOf[string, tictactoe.Result]
}

// NewMemoryOutcomeRepository - keeps outcomes in process memory, used when redis is not configured.
func NewMemoryOutcomeRepository() OutcomeRepository {
	return &memoryOutcome{
		outcomes: xsync.NewMapOf[string, tictactoe.Result](),
	}
}

func (that *memoryOutcome) Save(_ context.Context, board string, result tictactoe.Result) error {
	that.outcomes.Store(board, result)
	return nil
}

func (that *memoryOutcome) Get(_ context.Context, board string) (tictactoe.Result, error) {
	result, ok := that.outcomes.Load(board)
	if !ok {
		return tictactoe.Result{}, apperror.ErrOutcomeNotFound
	}

	return result, nil
}
