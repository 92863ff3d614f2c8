package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

// Move - shifts the cursor one square in the given direction. Leaving the grid on one side
// enters it again on the opposite side.
func Move(position entity.Position, direction entity.Direction) (entity.Position, error) {
	if !position.Valid() {
		return position, fmt.Errorf("%w: %s", apperror.ErrPositionOutOfBounds, position)
	}

	next := position

	switch direction {
	case entity.DirectionUp:
		next.Row = wrap(next.Row - 1)
	case entity.DirectionDown:
		next.Row = wrap(next.Row + 1)
	case entity.DirectionLeft:
		next.Col = wrap(next.Col - 1)
	case entity.DirectionRight:
		next.Col = wrap(next.Col + 1)
	default:
		return position, fmt.Errorf("%w: %s", apperror.ErrInvalidDirection, direction)
	}

	return next, nil
}

func wrap(coordinate int) int {
	switch coordinate {
	case 0:
		return entity.BoardSide
	case entity.BoardSide + 1:
		return 1
	default:
		return coordinate
	}
}
