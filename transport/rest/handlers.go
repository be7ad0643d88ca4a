package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const maxRequestBytes = 4 << 10

var (
	ErrBadRequest    = errors.New("bad request")
	ErrUnknownAction = errors.New("unknown action")
)

type gameService interface {
	Engines() []engine.Descriptor

	MakeMove(ctx context.Context, engineName string, grid [][]string, playerToken string) (*tictactoe.Move, error)
	Winner(ctx context.Context, grid [][]string) (tictactoe.Result, error)
}

type handlers struct {
	logger *slog.Logger

	game gameService
}

func newHandlers(logger *slog.Logger, game gameService) *handlers {
	return &handlers{
		logger: logger,
		game:   game,
	}
}

// Engines - lists the strategies clients can play against.
func (that *handlers) Engines(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.game.Engines())
}

// Play - dispatches a makeMove or getWinner request.
func (that *handlers) Play(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Play", "request_id", requestID(r.Context()))

	var req Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		log.Info("failed to decode request", "error", err)
		that.writeError(w, fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}

	if req.Action == "" {
		req.Action = ActionMakeMove
	}

	var (
		response any
		err      error
	)

	switch req.Action {
	case ActionMakeMove:
		response, err = that.makeMove(r.Context(), &req)
	case ActionGetWinner:
		response, err = that.getWinner(r.Context(), &req)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}

	if err != nil {
		log.Info("request failed", "action", req.Action, "error", err)
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, response)
}

func (that *handlers) makeMove(ctx context.Context, req *Request) (*tictactoe.Move, error) {
	if req.BoardState == nil {
		return nil, fmt.Errorf("%w: boardState is required", ErrBadRequest)
	}

	if req.PlayerUnit == nil || utf8.RuneCountInString(*req.PlayerUnit) != 1 {
		return nil, fmt.Errorf("%w: playerUnit must be a single character", ErrBadRequest)
	}

	move, err := that.game.MakeMove(ctx, req.Opponent, req.BoardState, *req.PlayerUnit)
	if err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	return move, nil
}

func (that *handlers) getWinner(ctx context.Context, req *Request) (tictactoe.Result, error) {
	if req.BoardState == nil {
		return tictactoe.Result{}, fmt.Errorf("%w: boardState is required", ErrBadRequest)
	}

	result, err := that.game.Winner(ctx, req.BoardState)
	if err != nil {
		return tictactoe.Result{}, fmt.Errorf("failed to get winner: %w", err)
	}

	return result, nil
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	kind := apperror.Kind(err)

	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrUnknownAction):
		status = http.StatusBadRequest
		kind = apperror.KindValidation
	case apperror.IsClientError(err):
		status = http.StatusBadRequest
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		that.logger.Error("internal error", "error", err)
		message = http.StatusText(status)
	}

	that.writeJSON(w, status, ErrorResponse{Error: kind, Message: message})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
