package tictactoe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const emptyBoard = "         "

var (
	endGameBoards = map[string]string{
		"top":   "XXXOO    ",
		"hMid":  "OO XXX   ",
		"low":   "OO    XXX",
		"left":  "XO XO X  ",
		"vMid":  "OXO X  X ",
		"right": " OXO X  X",
		"ul2lr": "XO OX   X",
		"ur2ll": "  XOXOX  ",
		"multi": "XXXXOOXOO",
		"cross": "XOXOXOXOX",
		"Tyr":   "XXXOXOOXO",
	}

	drawBoard = "XOXXOXOXO"

	midGameBoards = []string{
		"       X ",
		" O     X ",
		" O   X X ",
		" O   X XO",
		" O X X XO",
		" O XOX XO",
		"XO XOX XO",
		"XO XOXOXO",
	}
)

func swapPlayers(board string) string {
	return strings.NewReplacer("X", "O", "O", "X").Replace(board)
}

func allBoards() []string {
	boards := append([]string{emptyBoard, drawBoard}, midGameBoards...)
	for _, board := range endGameBoards {
		boards = append(boards, board)
	}

	return boards
}

func mustFromString(t *testing.T, board, turn string) *GameState {
	t.Helper()

	state, err := FromString(board, turn)
	require.NoError(t, err)

	return state
}

func TestNewGame(t *testing.T) {
	t.Run("Default symbols", func(t *testing.T) {
		// When: creating a new game with the default tokens
		game, err := NewGame(DefaultCrosses, DefaultNoughts)
		require.NoError(t, err)

		// Then: the symbols, turn and board should be the defaults
		assert.Equal(t, DefaultCrosses, game.PlayerASymbol())
		assert.Equal(t, DefaultNoughts, game.PlayerBSymbol())
		assert.Equal(t, DefaultUnused, game.EmptySymbol())
		assert.Equal(t, game.PlayerASymbol(), game.TurnToMove())
		assert.False(t, game.IsEndGame())
		assert.Equal(t, emptyBoard, game.AsString())
	})

	t.Run("Custom symbols", func(t *testing.T) {
		// When: creating a new game with numeric tokens
		game, err := NewGame("1", "2")
		require.NoError(t, err)

		// Then: the custom tokens should be used and the first one moves first
		assert.Equal(t, "1", game.PlayerASymbol())
		assert.Equal(t, "2", game.PlayerBSymbol())
		assert.Equal(t, DefaultUnused, game.EmptySymbol())
		assert.Equal(t, "1", game.TurnToMove())
		assert.Equal(t, emptyBoard, game.AsString())
	})

	t.Run("Multibyte symbols count as one character", func(t *testing.T) {
		game, err := NewGame("❌", "⚫")
		require.NoError(t, err)

		assert.Equal(t, "❌", game.TurnToMove())
	})

	badArguments := map[string][2]string{
		"Same Marker":    {"X", "X"},
		"Empty Marker":   {"X", ""},
		"Space Marker":   {"X", " "},
		"Long Marker":    {"X", "LONG"},
		"Tricky Markers": {"XY", ""},
	}

	for name, args := range badArguments {
		t.Run(name, func(t *testing.T) {
			// When: creating a game with conflicting or malformed tokens
			game, err := NewGame(args[0], args[1])

			// Then: a configuration error should be returned
			require.ErrorIs(t, err, apperror.ErrConfiguration)
			assert.Nil(t, game)
		})
	}
}

func TestFromString(t *testing.T) {
	t.Run("Empty board uses default opponent", func(t *testing.T) {
		// When: creating a state from an empty board with X to move
		game := mustFromString(t, emptyBoard, DefaultCrosses)

		// Then: X and O should be the players and X should move
		assert.Equal(t, DefaultCrosses, game.PlayerASymbol())
		assert.Equal(t, DefaultNoughts, game.PlayerBSymbol())
		assert.Equal(t, DefaultCrosses, game.TurnToMove())
		assert.False(t, game.IsEndGame())
		assert.Equal(t, emptyBoard, game.AsString())
	})

	t.Run("Custom turn symbol", func(t *testing.T) {
		// When: the only known token is H
		game := mustFromString(t, emptyBoard, "H")

		// Then: H should be player A and X the opponent
		assert.Equal(t, "H", game.PlayerASymbol())
		assert.Equal(t, DefaultCrosses, game.PlayerBSymbol())
		assert.Equal(t, "H", game.TurnToMove())
	})

	t.Run("Lone X gets O as opponent", func(t *testing.T) {
		game := mustFromString(t, "   X     ", DefaultCrosses)

		assert.Equal(t, DefaultCrosses, game.PlayerASymbol())
		assert.Equal(t, DefaultNoughts, game.PlayerBSymbol())
	})

	t.Run("Custom symbols on the board", func(t *testing.T) {
		// Given: a board holding H and A
		board := "HA       "

		// When: creating the state with H to move
		game := mustFromString(t, board, "H")

		// Then: both tokens should be players in ascending order and H should move
		assert.Equal(t, "A", game.PlayerASymbol())
		assert.Equal(t, "H", game.PlayerBSymbol())
		assert.Equal(t, "H", game.TurnToMove())
		assert.False(t, game.IsEndGame())
		assert.Equal(t, board, game.AsString())
	})

	badArguments := []struct {
		name    string
		board   string
		turn    string
		message string
	}{
		{"Empty Marker", emptyBoard, "", "turn must be a player symbol"},
		{"Space Marker", emptyBoard, " ", "turn must be a player symbol"},
		{"Long Marker", emptyBoard, "LONG", "turn must be a player symbol"},
		{"Board too Big", "          ", "X", "invalid game state"},
		{"Board too Small", "        ", "X", "invalid game state"},
		{"Unknown Turn Symbol", "XO       ", "+", "invalid game state"},
		{"Unknown Board Symbol", "XOH      ", "X", "invalid game state"},
		{"Invalid UTF-8 Board", "\xff\xfe       ", "X", "not valid UTF-8"},
		{"Invalid UTF-8 Turn", emptyBoard, "\xff", "not valid UTF-8"},
	}

	for _, tc := range badArguments {
		t.Run(tc.name, func(t *testing.T) {
			// When: creating a state from malformed input
			game, err := FromString(tc.board, tc.turn)

			// Then: a validation error should be returned
			require.ErrorIs(t, err, apperror.ErrValidation)
			assert.Contains(t, err.Error(), tc.message)
			assert.Nil(t, game)
		})
	}
}

func TestFromGrid(t *testing.T) {
	t.Run("Spaces and empty strings are unplayed cells", func(t *testing.T) {
		grids := [][][]string{
			{{" ", " ", " "}, {" ", " ", " "}, {" ", " ", " "}},
			{{"", "", ""}, {"", "", ""}, {"", "", ""}},
		}

		for _, grid := range grids {
			// When: creating a state from an empty grid
			game, err := FromGrid(grid, DefaultCrosses)
			require.NoError(t, err)

			// Then: it should be a new game
			assert.Equal(t, emptyBoard, game.AsString())
			assert.Equal(t, DefaultCrosses, game.TurnToMove())
			assert.Equal(t, DefaultNoughts, game.PlayerBSymbol())
		}
	})

	t.Run("Custom symbols", func(t *testing.T) {
		// Given: a grid holding H and A
		grid := [][]string{{"H", "A", ""}, {"", "", ""}, {"", "", ""}}

		// When: creating the state with H to move
		game, err := FromGrid(grid, "H")
		require.NoError(t, err)

		// Then: the board should be preserved
		assert.Equal(t, "H", game.TurnToMove())
		assert.Equal(t, "HA       ", game.AsString())
	})

	badGrids := map[string][][]string{
		"Empty Array": {},
		"Too Short":   {{" ", " ", " "}, {" ", " ", " "}},
		"Too Tall":    {{" ", " ", " "}, {" ", " ", " "}, {" ", " ", " "}, {" ", " ", " "}},
		"Too Fat":     {{" ", " ", " ", " "}, {" ", " ", " ", " "}, {" ", " ", " ", " "}},
		"Too Thin":    {{" ", " "}, {" ", " "}, {" ", " "}},
		"Ragged":      {{" ", " ", " "}, {" ", " "}, {" ", " ", " "}},
	}

	for name, grid := range badGrids {
		t.Run(name, func(t *testing.T) {
			// When: creating a state from a malformed grid
			game, err := FromGrid(grid, DefaultCrosses)

			// Then: a validation error should be returned
			require.ErrorIs(t, err, apperror.ErrValidation)
			assert.Contains(t, err.Error(), "invalid game state")
			assert.Nil(t, game)
		})
	}
}

func TestGameState_RoundTrip(t *testing.T) {
	for _, board := range allBoards() {
		t.Run(board, func(t *testing.T) {
			// Given: a state built from a board string
			fromString := mustFromString(t, board, DefaultCrosses)
			require.Equal(t, board, fromString.AsString())

			// When: rebuilding it from its grid
			fromGrid, err := FromGrid(fromString.AsGrid(), DefaultCrosses)
			require.NoError(t, err)

			// Then: both states should be equal
			assert.Equal(t, board, fromGrid.AsString())
			assert.Equal(t, fromString.AsGrid(), fromGrid.AsGrid())
			assert.Equal(t, fromString, fromGrid)
			assert.Equal(t, board, fromGrid.String())
		})
	}
}

func TestGameState_Winner(t *testing.T) {
	t.Run("Draw", func(t *testing.T) {
		game := mustFromString(t, drawBoard, DefaultCrosses)

		assert.Equal(t, Result{Outcome: Draw}, game.Winner())
		assert.True(t, game.IsEndGame())
	})

	t.Run("Unfinished", func(t *testing.T) {
		for _, board := range append(midGameBoards, emptyBoard) {
			game := mustFromString(t, board, DefaultCrosses)

			assert.Equal(t, Result{Outcome: Unfinished}, game.Winner(), board)
			assert.False(t, game.IsEndGame(), board)
		}
	})

	for name, board := range endGameBoards {
		t.Run("X-"+name, func(t *testing.T) {
			// Given: a board where X has three in a row
			game := mustFromString(t, board, DefaultNoughts)

			// Then: X should be the winner
			assert.Equal(t, Result{Outcome: Won, Token: "X"}, game.Winner())
			assert.True(t, game.IsEndGame())
		})

		t.Run("O-"+name, func(t *testing.T) {
			// Given: the same board with the players swapped
			game := mustFromString(t, swapPlayers(board), DefaultNoughts)

			// Then: O should be the winner
			assert.Equal(t, Result{Outcome: Won, Token: "O"}, game.Winner())
		})
	}

	t.Run("Win is reported with custom tokens", func(t *testing.T) {
		game := mustFromString(t, "111 22   ", "2")

		assert.Equal(t, Result{Outcome: Won, Token: "1"}, game.Winner())
	})
}

func TestGameState_ValidMoves(t *testing.T) {
	t.Run("New game has nine moves in row-major order", func(t *testing.T) {
		// Given: an empty board
		game := mustFromString(t, emptyBoard, DefaultCrosses)

		// When: listing the valid moves
		moves := game.ValidMoves()

		// Then: every cell should be offered, row by row
		require.Len(t, moves, 9)
		for i, move := range moves {
			assert.Equal(t, i%3, move.X())
			assert.Equal(t, i/3, move.Y())
			assert.Equal(t, DefaultCrosses, move.Token())
		}
	})

	t.Run("End game has no moves", func(t *testing.T) {
		boards := []string{drawBoard}
		for _, board := range endGameBoards {
			boards = append(boards, board)
		}

		for _, board := range boards {
			game := mustFromString(t, board, DefaultNoughts)

			require.True(t, game.IsEndGame(), board)
			assert.Nil(t, game.ValidMoves(), board)
		}
	})

	t.Run("Open cells of any game", func(t *testing.T) {
		for _, board := range allBoards() {
			game := mustFromString(t, board, DefaultCrosses)
			moves := game.ValidMoves()

			if game.IsEndGame() {
				assert.Nil(t, moves, board)
				continue
			}

			require.Len(t, moves, strings.Count(board, DefaultUnused), board)
			for _, move := range moves {
				assert.Equal(t, Empty, game.At(move.X(), move.Y()), board)
			}
		}
	})
}

func TestGameState_MakeMove(t *testing.T) {
	t.Run("Places the token and passes the turn", func(t *testing.T) {
		// Given: a new game and a move to the upper left cell
		game := mustFromString(t, emptyBoard, DefaultCrosses)
		move, err := NewMove(game, 0, 0)
		require.NoError(t, err)
		require.Contains(t, game.ValidMoves(), move)

		// When: making the move
		next := game.MakeMove(move)

		// Then: a new state should hold the token with O to move
		assert.NotSame(t, game, next)
		assert.NotEqual(t, game, next)
		assert.Equal(t, "X        ", next.AsString())
		assert.Equal(t, DefaultNoughts, next.TurnToMove())

		// And: the original state should be untouched
		assert.Equal(t, emptyBoard, game.AsString())
		assert.Equal(t, DefaultCrosses, game.TurnToMove())
	})

	t.Run("Derived states keep the symbols", func(t *testing.T) {
		game, err := NewGame("1", "2")
		require.NoError(t, err)

		next := game.MakeMove(game.ValidMoves()[4])
		next = next.MakeMove(next.ValidMoves()[0])

		assert.Equal(t, "2   1    ", next.AsString())
		assert.Equal(t, "1", next.TurnToMove())
		assert.Equal(t, "1", next.PlayerASymbol())
		assert.Equal(t, "2", next.PlayerBSymbol())
	})
}

func TestGameState_Skip(t *testing.T) {
	// Given: a game with O to move
	game := mustFromString(t, "X OX O   ", DefaultNoughts)

	// When: skipping the turn
	skipped := game.Skip()

	// Then: the board should be the same with X to move
	assert.Equal(t, game.AsString(), skipped.AsString())
	assert.Equal(t, DefaultCrosses, skipped.TurnToMove())
	assert.Equal(t, DefaultNoughts, game.TurnToMove())
}

func TestCell_Opponent(t *testing.T) {
	assert.Equal(t, PlayerB, PlayerA.Opponent())
	assert.Equal(t, PlayerA, PlayerB.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}
