package entity

// Cell is the content of one board square. A player is either CellCross or CellNought.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellCross
	CellNought
)

func (that Cell) String() string {
	switch that {
	case CellCross:
		return "Cross"
	case CellNought:
		return "Nought"
	default:
		return "_"
	}
}

// IsPlayer reports whether the cell value is one of the two markers.
func (that Cell) IsPlayer() bool {
	return that == CellCross || that == CellNought
}

// Opponent - returns the other player. CellEmpty has no opponent and is returned as is.
func (that Cell) Opponent() Cell {
	switch that {
	case CellCross:
		return CellNought
	case CellNought:
		return CellCross
	default:
		return CellEmpty
	}
}
