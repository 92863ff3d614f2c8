package apperror

import "errors"

var (
	ErrCellOccupied        = errors.New("cell is already occupied")
	ErrGameConcluded       = errors.New("game is already concluded")
	ErrPositionOutOfBounds = errors.New("position out of bounds")
	ErrInvalidDirection    = errors.New("invalid direction")
	ErrInvalidPlayer       = errors.New("invalid player")
)
