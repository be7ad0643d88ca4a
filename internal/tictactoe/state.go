// Package tictactoe implements an immutable 3x3 game state with two
// interchangeable single-character player tokens.
package tictactoe

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Cell - internal value of a board position, decoupled from its display token.
type Cell uint8

const (
	Empty Cell = iota
	PlayerA
	PlayerB
)

// Opponent - returns the other player, Empty stays Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

const (
	DefaultCrosses = "X"
	DefaultNoughts = "O"
	DefaultUnused  = " "

	boardSize = 3
	cellCount = boardSize * boardSize
)

// winMasks - all eight lines, row-major with the upper left cell as the most significant bit.
var winMasks = [8]uint16{
	0b111000000,
	0b000111000,
	0b000000111,
	0b100100100,
	0b010010010,
	0b001001001,
	0b100010001,
	0b001010100,
}

// Board - rows of cells, indexed [y][x]. Being an array it is copied by value.
type Board [boardSize][boardSize]Cell

// GameState - immutable snapshot of a game. Use NewGame, FromString or FromGrid to build one.
type GameState struct {
	board   Board
	symbols [3]rune // indexed by Cell
	turn    Cell
}

// NewGame - returns an unstarted game where tokenA moves first.
func NewGame(tokenA, tokenB string) (*GameState, error) {
	return newState(tokenA, tokenB)
}

func newState(tokenA, tokenB string) (*GameState, error) {
	tokens := [3]string{DefaultUnused, tokenA, tokenB}

	var symbols [3]rune
	for i, token := range tokens {
		if utf8.RuneCountInString(token) != 1 {
			return nil, fmt.Errorf("%w: player symbol %q must be exactly one character", apperror.ErrConfiguration, token)
		}

		symbols[i], _ = utf8.DecodeRuneInString(token)
	}

	if symbols[0] == symbols[1] || symbols[0] == symbols[2] || symbols[1] == symbols[2] {
		return nil, fmt.Errorf("%w: player symbols %q and %q must be unique and not a space", apperror.ErrConfiguration, tokenA, tokenB)
	}

	return &GameState{symbols: symbols, turn: PlayerA}, nil
}

// FromString - builds a state from a 9-character row-major board and the token to move.
//
// The player tokens are the distinct non-space characters of board+turn in
// ascending order. When only one is present the second player gets "X", or
// "O" if the lone token is itself "X".
func FromString(board, turn string) (*GameState, error) {
	if turn == DefaultUnused || utf8.RuneCountInString(turn) != 1 {
		return nil, fmt.Errorf("%w: turn must be a player symbol", apperror.ErrValidation)
	}

	if !utf8.ValidString(board + turn) {
		return nil, fmt.Errorf("%w: invalid game state %q is not valid UTF-8", apperror.ErrValidation, board+turn)
	}

	symbols := distinctSymbols(board + turn)
	if len(symbols) > 2 || utf8.RuneCountInString(board) != cellCount {
		return nil, fmt.Errorf("%w: invalid game state %q", apperror.ErrValidation, board)
	}

	tokenA, tokenB := string(symbols[0]), DefaultCrosses
	switch {
	case len(symbols) == 2:
		tokenB = string(symbols[1])
	case tokenA == DefaultCrosses:
		tokenB = DefaultNoughts
	}

	state, err := newState(tokenA, tokenB)
	if err != nil {
		return nil, err
	}

	turnRune, _ := utf8.DecodeRuneInString(turn)
	if state.turn, err = state.cellFor(turnRune); err != nil || state.turn == Empty {
		return nil, fmt.Errorf("%w: turn %q is not a player of %q", apperror.ErrValidation, turn, board)
	}

	i := 0
	for _, r := range board {
		cell, err := state.cellFor(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperror.ErrValidation, err)
		}

		state.board[i/boardSize][i%boardSize] = cell
		i++
	}

	return state, nil
}

// FromGrid - builds a state from a 3x3 grid of tokens. Empty strings are unplayed cells.
func FromGrid(grid [][]string, turn string) (*GameState, error) {
	if len(grid) != boardSize {
		return nil, fmt.Errorf("%w: invalid game state: expected %d rows, got %d", apperror.ErrValidation, boardSize, len(grid))
	}

	var sb strings.Builder
	for y, row := range grid {
		if len(row) != boardSize {
			return nil, fmt.Errorf("%w: invalid game state: row %d has %d cells", apperror.ErrValidation, y, len(row))
		}

		for _, cell := range row {
			if cell == "" {
				cell = DefaultUnused
			}
			sb.WriteString(cell)
		}
	}

	return FromString(sb.String(), turn)
}

func distinctSymbols(s string) []rune {
	var symbols []rune
	for _, r := range s {
		if string(r) != DefaultUnused && !slices.Contains(symbols, r) {
			symbols = append(symbols, r)
		}
	}
	slices.Sort(symbols)

	return symbols
}

func (that *GameState) PlayerASymbol() string {
	return that.symbol(PlayerA)
}

func (that *GameState) PlayerBSymbol() string {
	return that.symbol(PlayerB)
}

func (that *GameState) EmptySymbol() string {
	return that.symbol(Empty)
}

// TurnToMove - returns the token of the player to move.
func (that *GameState) TurnToMove() string {
	return that.symbol(that.turn)
}

// Turn - returns the internal value of the player to move.
func (that *GameState) Turn() Cell {
	return that.turn
}

// At - returns the internal value at column x, row y.
func (that *GameState) At(x, y int) Cell {
	return that.board[y][x]
}

// IsEndGame - reports whether a player has three in a row or the board is full.
func (that *GameState) IsEndGame() bool {
	return that.Winner().IsEndGame()
}

// Winner - returns the winning token, a draw, or an unfinished result.
func (that *GameState) Winner() Result {
	for _, player := range [2]Cell{PlayerA, PlayerB} {
		if that.hasWon(player) {
			return Result{Outcome: Won, Token: that.symbol(player)}
		}
	}

	if that.occupancy(Empty) == 0 {
		return Result{Outcome: Draw}
	}

	return Result{Outcome: Unfinished}
}

func (that *GameState) hasWon(player Cell) bool {
	mask := that.occupancy(player)
	for _, line := range winMasks {
		if mask&line == line {
			return true
		}
	}

	return false
}

// occupancy - 9-bit mask of the cells holding value, upper left first.
func (that *GameState) occupancy(value Cell) uint16 {
	var mask uint16
	for y := range boardSize {
		for x := range boardSize {
			mask <<= 1
			if that.board[y][x] == value {
				mask |= 1
			}
		}
	}

	return mask
}

// ValidMoves - returns one move per empty cell in row-major order, nil once the game has ended.
func (that *GameState) ValidMoves() []Move {
	if that.IsEndGame() {
		return nil
	}

	moves := make([]Move, 0, cellCount)
	for y := range boardSize {
		for x := range boardSize {
			if that.board[y][x] == Empty {
				moves = append(moves, Move{x: x, y: y, state: that})
			}
		}
	}

	return moves
}

// MakeMove - returns the state after the player to move takes the move's cell.
// The cell is not checked; pass moves obtained from ValidMoves.
func (that *GameState) MakeMove(move Move) *GameState {
	next := *that
	next.board[move.y][move.x] = that.turn
	next.turn = that.turn.Opponent()

	return &next
}

// Skip - returns the same position with the opponent to move, as if the current player passed.
func (that *GameState) Skip() *GameState {
	return that.withTurn(that.turn.Opponent())
}

func (that *GameState) withTurn(turn Cell) *GameState {
	next := *that
	next.turn = turn

	return &next
}

// AsString - returns the board as 9 tokens, row by row.
func (that *GameState) AsString() string {
	var sb strings.Builder
	for y := range boardSize {
		for x := range boardSize {
			sb.WriteString(that.symbol(that.board[y][x]))
		}
	}

	return sb.String()
}

func (that *GameState) String() string {
	return that.AsString()
}

// AsGrid - returns the board as a 3x3 grid of tokens.
func (that *GameState) AsGrid() [][]string {
	grid := make([][]string, boardSize)
	for y := range boardSize {
		grid[y] = make([]string, boardSize)
		for x := range boardSize {
			grid[y][x] = that.symbol(that.board[y][x])
		}
	}

	return grid
}

func (that *GameState) symbol(value Cell) string {
	if int(value) >= len(that.symbols) {
		panic(fmt.Errorf("%w: cell value %d", apperror.ErrLookup, value))
	}

	return string(that.symbols[value])
}

func (that *GameState) cellFor(symbol rune) (Cell, error) {
	for value, r := range that.symbols {
		if r == symbol {
			return Cell(value), nil
		}
	}

	return Empty, fmt.Errorf("%w: %q", apperror.ErrLookup, symbol)
}
