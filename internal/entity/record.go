package entity

import "time"

const (
	MarkX     = "X"
	MarkO     = "O"
	MarkTie   = "-"
	EmptyMark = ""
)

// GameRecord is the summary of a concluded game sent to outcome subscribers.
type GameRecord struct {
	ID          string            `json:"id"`
	Status      string            `json:"status"`
	Winner      string            `json:"winner"`
	Combination []int             `json:"combination,omitempty"`
	Board       [BoardSize]string `json:"board"`
	Moves       int               `json:"moves"`
	StartedAt   time.Time         `json:"started_at"`
	FinishedAt  time.Time         `json:"finished_at"`
}

// Mark - short board notation of the cell.
func (that Cell) Mark() string {
	switch that {
	case CellCross:
		return MarkX
	case CellNought:
		return MarkO
	default:
		return EmptyMark
	}
}

func NewGameRecord(id string, board *Board, startedAt, finishedAt time.Time) GameRecord {
	outcome := board.Outcome()

	record := GameRecord{
		ID:         id,
		Status:     outcome.Status.String(),
		Moves:      board.Moves(),
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
	}

	for i, cell := range board.Cells() {
		record.Board[i] = cell.Mark()
	}

	switch outcome.Status {
	case OutcomeWon:
		record.Winner = outcome.Winner.Mark()
		record.Combination = outcome.Combination[:]
	case OutcomeTied:
		record.Winner = MarkTie
	}

	return record
}
