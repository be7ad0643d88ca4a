package tictactoe

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Outcome - derived status of a board.
type Outcome uint8

const (
	Unfinished Outcome = iota
	Won
	Draw
)

func (that Outcome) String() string {
	switch that {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "unfinished"
	}
}

// Result - outcome of a board, Token is set only when Outcome is Won.
type Result struct {
	Outcome Outcome
	Token   string
}

func (that Result) IsEndGame() bool {
	return that.Outcome != Unfinished
}

// MarshalJSON - encodes a win as the winner's token, a draw as false and an unfinished game as null.
func (that Result) MarshalJSON() ([]byte, error) {
	switch that.Outcome {
	case Won:
		return json.Marshal(that.Token)
	case Draw:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (that *Result) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		*that = Result{Outcome: Unfinished}
	case bytes.Equal(data, []byte("false")):
		*that = Result{Outcome: Draw}
	default:
		var token string
		if err := json.Unmarshal(data, &token); err != nil {
			return fmt.Errorf("failed to decode result %s: %w", data, err)
		}
		*that = Result{Outcome: Won, Token: token}
	}

	return nil
}
