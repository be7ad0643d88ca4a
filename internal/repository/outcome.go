package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const outcomeKeyPrefix = "outcome:"

// OutcomeRepository - cache of board results keyed by the 9-character board string.
type OutcomeRepository interface {
	Get(ctx context.Context, board string) (tictactoe.Result, error)
	Save(ctx context.Context, board string, result tictactoe.Result) error
}

type dbOutcome struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOutcomeRepository - stores outcomes in redis, a zero ttl keeps them forever.
func NewOutcomeRepository(client *redis.Client, ttl time.Duration) OutcomeRepository {
	return &dbOutcome{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbOutcome) Save(ctx context.Context, board string, result tictactoe.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal outcome: %w", err)
	}

	if err = that.client.Set(ctx, outcomeKeyPrefix+board, resultJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set outcome: %w", err)
	}

	return nil
}

func (that *dbOutcome) Get(ctx context.Context, board string) (tictactoe.Result, error) {
	response, err := that.client.Get(ctx, outcomeKeyPrefix+board).Result()
	if errors.Is(err, redis.Nil) {
		return tictactoe.Result{}, apperror.ErrOutcomeNotFound
	}

	if err != nil {
		return tictactoe.Result{}, fmt.Errorf("failed to get outcome: %w", err)
	}

	var result tictactoe.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return tictactoe.Result{}, fmt.Errorf("failed to unmarshal outcome: %w", err)
	}

	return result, nil
}
