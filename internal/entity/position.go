package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// Position addresses a board square, Row and Col are 1-based.
type Position struct {
	Row int
	Col int
}

func (that Position) Valid() bool {
	return that.Row >= 1 && that.Row <= BoardSide && that.Col >= 1 && that.Col <= BoardSide
}

// Index - maps the position to the linear board index (row-major).
func (that Position) Index() int {
	return (that.Row-1)*BoardSide + (that.Col - 1)
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

func (that Position) validate() error {
	if !that.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrPositionOutOfBounds, that)
	}
	return nil
}

// PositionFromIndex - inverse of Position.Index.
func PositionFromIndex(index int) (Position, error) {
	if index < 0 || index >= BoardSize {
		return Position{}, fmt.Errorf("%w: index %d", apperror.ErrPositionOutOfBounds, index)
	}

	return Position{Row: index/BoardSide + 1, Col: index%BoardSide + 1}, nil
}

type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (that Direction) String() string {
	switch that {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}
