package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const (
	Title = "Tic Tac Toe"

	messageTie           = "Tie!"
	subMessageOccupied   = "Field already selected"
	subMessagePressToEnd = "Press any key to exit."

	publishTimeout = 2 * time.Second
)

type Phase uint8

const (
	PhaseSelecting Phase = iota
	PhaseConcluded
)

func (that Phase) String() string {
	if that == PhaseConcluded {
		return "concluded"
	}
	return "selecting"
}

// Frame is everything the renderer needs to draw one screen.
type Frame struct {
	Title      string
	Message    string
	Board      string
	SubMessage string
}

type Renderer interface {
	Render(frame Frame) error
}

type InputSource interface {
	ReadEvent(ctx context.Context) (entity.Event, error)
}

type OutcomePublisher interface {
	Publish(ctx context.Context, record entity.GameRecord) error
}

// GameController owns one game: the board, the cursor and whose turn it is.
// It is not safe for concurrent use.
type GameController struct {
	logger    *slog.Logger
	publisher OutcomePublisher
	now       func() time.Time

	id        string
	startedAt time.Time

	board  *entity.Board
	cursor entity.Position
	turn   entity.Cell

	phase      Phase
	message    string
	subMessage string
}

// NewGameController - starts a game with an empty board, Cross to move and the cursor at (1,1).
// publisher may be nil.
func NewGameController(logger *slog.Logger, publisher OutcomePublisher) *GameController {
	controller := &GameController{
		logger:    logger.With("component", "game_controller"),
		publisher: publisher,
		now:       time.Now,
		id:        uuid.NewString(),
		board:     entity.NewBoard(),
		cursor:    entity.Position{Row: 1, Col: 1},
		turn:      entity.CellCross,
	}
	controller.startedAt = controller.now()
	controller.evaluate()

	return controller
}

// Run - drives the game until it concludes and a key is pressed, the quit key is pressed
// or input fails. Contract violations inside the engine are returned as errors.
func (that *GameController) Run(ctx context.Context, input InputSource, renderer Renderer) error {
	that.logger.Info("game started", "game_id", that.id)

	for {
		that.evaluate()

		if err := renderer.Render(that.Frame()); err != nil {
			return fmt.Errorf("failed to render frame: %w", err)
		}

		if that.phase == PhaseConcluded {
			return that.conclude(ctx, input, renderer)
		}

		event, err := input.ReadEvent(ctx)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		done, err := that.HandleEvent(event)
		if err != nil {
			return err
		}

		if done {
			that.logger.Info("game aborted", "game_id", that.id, "moves", that.board.Moves())
			return nil
		}

		// navigation redraws right away with the new highlight
		if event.Kind == entity.EventDirection {
			if err = renderer.Render(that.Frame()); err != nil {
				return fmt.Errorf("failed to render frame: %w", err)
			}
		}
	}
}

// HandleEvent - applies one input event to the state machine. done is true when the
// event ends the game session.
func (that *GameController) HandleEvent(event entity.Event) (bool, error) {
	if event.Kind == entity.EventQuit {
		return true, nil
	}

	if that.phase == PhaseConcluded {
		return true, nil
	}

	switch event.Kind {
	case entity.EventDirection:
		cursor, err := Move(that.cursor, event.Direction)
		if err != nil {
			return false, fmt.Errorf("failed to move cursor: %w", err)
		}
		that.cursor = cursor

	case entity.EventConfirm:
		if err := that.placeMarker(); err != nil {
			return false, err
		}
	}

	that.evaluate()

	return false, nil
}

func (that *GameController) placeMarker() error {
	err := that.board.Place(that.cursor, that.turn)

	switch {
	case err == nil:
		that.logger.Debug("marker placed", "game_id", that.id, "player", that.turn.String(), "position", that.cursor.String())
		that.subMessage = ""
		that.turn = that.turn.Opponent()

		return nil
	case errors.Is(err, apperror.ErrCellOccupied):
		that.subMessage = subMessageOccupied

		return nil
	default:
		return fmt.Errorf("failed to place marker: %w", err)
	}
}

// evaluate - win is checked before tie, a full board with a line is a win.
func (that *GameController) evaluate() {
	outcome := that.board.Outcome()

	switch outcome.Status {
	case entity.OutcomeWon:
		that.phase = PhaseConcluded
		that.message = outcome.Winner.String() + " won!"
	case entity.OutcomeTied:
		that.phase = PhaseConcluded
		that.message = messageTie
	default:
		that.phase = PhaseSelecting
		that.message = turnMessage(that.turn)
	}
}

func (that *GameController) conclude(ctx context.Context, input InputSource, renderer Renderer) error {
	that.subMessage = subMessagePressToEnd

	if err := renderer.Render(that.Frame()); err != nil {
		return fmt.Errorf("failed to render frame: %w", err)
	}

	outcome := that.board.Outcome()
	that.logger.Info("game concluded",
		"game_id", that.id,
		"outcome", outcome.Status.String(),
		"winner", outcome.Winner.String(),
		"moves", that.board.Moves(),
	)

	that.publish(ctx)

	if _, err := input.ReadEvent(ctx); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func (that *GameController) publish(ctx context.Context) {
	if that.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	record := entity.NewGameRecord(that.id, that.board, that.startedAt, that.now())
	if err := that.publisher.Publish(ctx, record); err != nil {
		that.logger.Error("could not publish game outcome", "game_id", that.id, "error", err)
	}
}

// Frame - the current screen. The cursor is only highlighted while selecting.
func (that *GameController) Frame() Frame {
	var highlight *entity.Position
	if that.phase == PhaseSelecting {
		cursor := that.cursor
		highlight = &cursor
	}

	return Frame{
		Title:      Title,
		Message:    that.message,
		Board:      RenderBoard(that.board.Cells(), highlight),
		SubMessage: that.subMessage,
	}
}

func (that *GameController) ID() string {
	return that.id
}

func (that *GameController) Phase() Phase {
	return that.phase
}

func (that *GameController) Cursor() entity.Position {
	return that.cursor
}

func (that *GameController) Turn() entity.Cell {
	return that.turn
}

func (that *GameController) Outcome() entity.Outcome {
	return that.board.Outcome()
}

func (that *GameController) Cells() [entity.BoardSize]entity.Cell {
	return that.board.Cells()
}

func turnMessage(player entity.Cell) string {
	if player == entity.CellCross {
		return "Cross' move"
	}
	return player.String() + "'s move"
}
