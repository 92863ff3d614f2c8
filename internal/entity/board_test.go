package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = CellCross
	o = CellNought
	e = CellEmpty
)

func TestBoard_Get(t *testing.T) {
	t.Run("Returns the cell at a valid position", func(t *testing.T) {
		// Given: a board with a cross in the middle of the bottom row
		board := NewBoardFromCells([9]Cell{
			e, e, e,
			e, e, e,
			e, x, e,
		})

		// When: reading (3,2)
		cell, err := board.Get(Position{Row: 3, Col: 2})

		// Then: the cross is returned
		require.NoError(t, err)
		assert.Equal(t, CellCross, cell)
	})

	t.Run("Returns ErrPositionOutOfBounds for invalid positions", func(t *testing.T) {
		board := NewBoard()

		for _, position := range []Position{{0, 1}, {1, 0}, {4, 1}, {1, 4}, {-1, -1}} {
			// When: reading outside of the grid
			_, err := board.Get(position)

			// Then: the bounds error is returned
			require.ErrorIs(t, err, apperror.ErrPositionOutOfBounds, position.String())
		}
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Successful placement", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: cross is placed at (2,3)
		err := board.Place(Position{Row: 2, Col: 3}, CellCross)

		// Then: exactly one cell changes
		require.NoError(t, err)
		assert.Equal(t, [9]Cell{
			e, e, e,
			e, e, x,
			e, e, e,
		}, board.Cells())
		assert.Equal(t, 1, board.Moves())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where (1,1) holds a cross
		board := NewBoard()
		require.NoError(t, board.Place(Position{Row: 1, Col: 1}, CellCross))
		before := board.Cells()

		// When: nought tries the same cell
		err := board.Place(Position{Row: 1, Col: 1}, CellNought)

		// Then: ErrCellOccupied is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, board.Cells())
		assert.Equal(t, 1, board.Moves())
	})

	t.Run("Error on placement after the game is won", func(t *testing.T) {
		// Given: a board where cross owns the top row
		board := NewBoardFromCells([9]Cell{
			x, x, x,
			o, o, e,
			e, e, e,
		})
		before := board.Cells()

		// When: nought places into a free cell
		err := board.Place(Position{Row: 2, Col: 3}, CellNought)

		// Then: ErrGameConcluded is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrGameConcluded)
		assert.Equal(t, before, board.Cells())
	})

	t.Run("Error on position out of bounds", func(t *testing.T) {
		board := NewBoard()

		err := board.Place(Position{Row: 4, Col: 1}, CellCross)

		require.ErrorIs(t, err, apperror.ErrPositionOutOfBounds)
		assert.Equal(t, [9]Cell{}, board.Cells())
	})

	t.Run("Error on empty player", func(t *testing.T) {
		board := NewBoard()

		err := board.Place(Position{Row: 1, Col: 1}, CellEmpty)

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
		assert.Equal(t, [9]Cell{}, board.Cells())
	})

	t.Run("Placement does not record the outcome", func(t *testing.T) {
		// Given: cross one move away from the first column
		board := NewBoardFromCells([9]Cell{
			x, o, e,
			x, o, e,
			e, e, e,
		})

		// When: cross completes the column
		require.NoError(t, board.Place(Position{Row: 3, Col: 1}, CellCross))

		// Then: the outcome is found by evaluation
		assert.False(t, board.won)
		outcome, won := board.EvaluateWin()
		require.True(t, won)
		assert.Equal(t, Combination{0, 3, 6}, outcome.Combination)
	})
}

func TestBoard_EvaluateWin(t *testing.T) {
	for i, combo := range WinCombos {
		for _, player := range []Cell{CellCross, CellNought} {
			// Given: a board with only this line filled by the player
			var cells [9]Cell
			for _, index := range combo {
				cells[index] = player
			}
			board := NewBoardFromCells(cells)

			// When: evaluating the win
			outcome, won := board.EvaluateWin()

			// Then: the player and the line are reported
			require.True(t, won, "combo %d", i)
			assert.Equal(t, Outcome{Status: OutcomeWon, Winner: player, Combination: combo}, outcome)
		}
	}

	t.Run("First line in table order wins", func(t *testing.T) {
		// Given: cross owns both the top row and the first column
		board := NewBoardFromCells([9]Cell{
			x, x, x,
			x, o, o,
			x, o, o,
		})

		// When: evaluating the win
		outcome, won := board.EvaluateWin()

		// Then: the row is reported since rows are scanned before columns
		require.True(t, won)
		assert.Equal(t, Combination{0, 1, 2}, outcome.Combination)
	})

	t.Run("Column before diagonal", func(t *testing.T) {
		board := NewBoardFromCells([9]Cell{
			o, x, e,
			o, o, x,
			o, x, o,
		})

		outcome, won := board.EvaluateWin()

		require.True(t, won)
		assert.Equal(t, CellNought, outcome.Winner)
		assert.Equal(t, Combination{0, 3, 6}, outcome.Combination)
	})

	t.Run("No winner on a mixed line", func(t *testing.T) {
		board := NewBoardFromCells([9]Cell{
			x, o, x,
			e, o, e,
			e, x, e,
		})

		outcome, won := board.EvaluateWin()

		assert.False(t, won)
		assert.Equal(t, Outcome{}, outcome)
	})

	t.Run("Result is cached", func(t *testing.T) {
		// Given: a won board that was evaluated once
		board := NewBoardFromCells([9]Cell{
			e, e, o,
			e, o, e,
			o, x, x,
		})
		first, won := board.EvaluateWin()
		require.True(t, won)

		// When: the grid is altered behind the cache
		board.cells = [9]Cell{}

		// Then: the cached result is returned without rescanning
		second, won := board.EvaluateWin()
		require.True(t, won)
		assert.Equal(t, first, second)
		assert.Equal(t, Combination{2, 4, 6}, second.Combination)
	})
}

func TestBoard_EvaluateTie(t *testing.T) {
	t.Run("Full board without line is a tie", func(t *testing.T) {
		// Given: a full board where nobody has three in a row
		board := NewBoardFromCells([9]Cell{
			x, o, x,
			x, o, o,
			o, x, x,
		})

		// Then: tie is reported and no winner
		assert.True(t, board.EvaluateTie())
		_, won := board.EvaluateWin()
		assert.False(t, won)
		assert.Equal(t, Outcome{Status: OutcomeTied}, board.Outcome())
	})

	t.Run("Board with an empty cell is not a tie", func(t *testing.T) {
		board := NewBoardFromCells([9]Cell{
			x, o, x,
			x, o, o,
			o, x, e,
		})

		assert.False(t, board.EvaluateTie())
		assert.Equal(t, Outcome{Status: OutcomeOngoing}, board.Outcome())
	})

	t.Run("Full board with a line is reported full but won", func(t *testing.T) {
		// Given: a full board where cross completed the diagonal with the last move
		board := NewBoardFromCells([9]Cell{
			x, o, x,
			o, x, o,
			o, x, x,
		})

		// Then: the tie check only looks at fullness, the outcome prefers the win
		assert.True(t, board.EvaluateTie())
		outcome := board.Outcome()
		assert.Equal(t, OutcomeWon, outcome.Status)
		assert.Equal(t, CellCross, outcome.Winner)
		assert.Equal(t, Combination{0, 4, 8}, outcome.Combination)
	})
}
