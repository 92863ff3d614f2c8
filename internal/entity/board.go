package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

type OutcomeStatus uint8

const (
	OutcomeOngoing OutcomeStatus = iota
	OutcomeWon
	OutcomeTied
)

func (that OutcomeStatus) String() string {
	switch that {
	case OutcomeWon:
		return "won"
	case OutcomeTied:
		return "tied"
	default:
		return "ongoing"
	}
}

// Combination is a winning line as three linear board indexes.
type Combination [3]int

// WinCombos is scanned in this order; the first complete line wins.
var WinCombos = [...]Combination{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Outcome struct {
	Status      OutcomeStatus
	Winner      Cell
	Combination Combination
}

func (that Outcome) IsConcluded() bool {
	return that.Status == OutcomeWon || that.Status == OutcomeTied
}

// Board holds the grid and the cached win result. The zero value is an empty board.
type Board struct {
	cells [BoardSize]Cell
	moves int

	won     bool
	outcome Outcome
}

func NewBoard() *Board {
	return &Board{}
}

// NewBoardFromCells - builds a board from a prepared grid, useful for fixtures.
func NewBoardFromCells(cells [BoardSize]Cell) *Board {
	board := &Board{cells: cells}
	for _, cell := range cells {
		if cell != CellEmpty {
			board.moves++
		}
	}

	return board
}

func (that *Board) Get(position Position) (Cell, error) {
	if err := position.validate(); err != nil {
		return CellEmpty, err
	}

	return that.cells[position.Index()], nil
}

// Place - writes the player's marker into an empty cell of a board that has no winner yet.
// It never touches the outcome, which is recomputed by EvaluateWin.
func (that *Board) Place(position Position, player Cell) error {
	if err := position.validate(); err != nil {
		return err
	}

	if !player.IsPlayer() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidPlayer, player)
	}

	if _, won := that.EvaluateWin(); won {
		return apperror.ErrGameConcluded
	}

	if that.cells[position.Index()] != CellEmpty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, position)
	}

	that.cells[position.Index()] = player
	that.moves++

	return nil
}

// EvaluateWin - returns the first complete line in WinCombos order. Once a winner is found
// the result is cached and returned without rescanning.
func (that *Board) EvaluateWin() (Outcome, bool) {
	if that.won {
		return that.outcome, true
	}

	for _, combo := range WinCombos {
		a, b, c := that.cells[combo[0]], that.cells[combo[1]], that.cells[combo[2]]
		if a != CellEmpty && a == b && b == c {
			that.won = true
			that.outcome = Outcome{Status: OutcomeWon, Winner: a, Combination: combo}

			return that.outcome, true
		}
	}

	return Outcome{}, false
}

// EvaluateTie reports whether the board is full. It does not look for a winner:
// call EvaluateWin first, a full board with a complete line is a win.
func (that *Board) EvaluateTie() bool {
	for _, cell := range that.cells {
		if cell == CellEmpty {
			return false
		}
	}

	return true
}

// Outcome - evaluates win before tie.
func (that *Board) Outcome() Outcome {
	if outcome, won := that.EvaluateWin(); won {
		return outcome
	}

	if that.EvaluateTie() {
		return Outcome{Status: OutcomeTied}
	}

	return Outcome{Status: OutcomeOngoing}
}

func (that *Board) Cells() [BoardSize]Cell {
	return that.cells
}

// Moves - number of successful placements.
func (that *Board) Moves() int {
	return that.moves
}
