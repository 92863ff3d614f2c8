package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

const eventBuffer = 64

var ErrSessionClosed = errors.New("terminal session is closed")

// Session owns the terminal for the lifetime of a game: raw input, the alternate screen
// and the drawing loop. Close must be called on every exit path to give the terminal back.
type Session struct {
	logger  *slog.Logger
	program *tea.Program
	events  chan entity.Event

	done      chan struct{}
	err       error
	closeOnce sync.Once
}

type options struct {
	input  io.Reader
	output io.Writer
}

type Option func(*options)

// WithIO replaces the process stdin/stdout, mostly for tests.
func WithIO(input io.Reader, output io.Writer) Option {
	return func(o *options) {
		o.input = input
		o.output = output
	}
}

// Open - takes over the terminal and starts drawing. Frames are shown once Render is called.
func Open(logger *slog.Logger, keys config.Keys, display config.Display, opts ...Option) *Session {
	settings := options{input: os.Stdin, output: os.Stdout}
	for _, opt := range opts {
		opt(&settings)
	}

	log := logger.With("component", "terminal")

	renderer := lipgloss.NewRenderer(settings.output)
	if display.NoColor || termenv.EnvNoColor() {
		renderer.SetColorProfile(termenv.Ascii)
	}

	events := make(chan entity.Event, eventBuffer)
	programModel := newModel(log, events, newKeyMap(keys), renderer, !display.HideHelp)

	// signals are handled by the application, which cancels the read instead
	programOptions := []tea.ProgramOption{
		tea.WithInput(settings.input),
		tea.WithOutput(settings.output),
		tea.WithoutSignalHandler(),
	}
	if !display.Inline {
		programOptions = append(programOptions, tea.WithAltScreen())
	}

	session := &Session{
		logger:  log,
		program: tea.NewProgram(programModel, programOptions...),
		events:  events,
		done:    make(chan struct{}),
	}

	go session.run()

	return session
}

func (that *Session) run() {
	defer close(that.done)

	if _, err := that.program.Run(); err != nil {
		that.err = fmt.Errorf("terminal program failed: %w", err)
		that.logger.Error("terminal program stopped", "error", err)
	}
}

// Render - hands the frame to the drawing loop.
func (that *Session) Render(frame tictactoe.Frame) error {
	select {
	case <-that.done:
		return ErrSessionClosed
	default:
	}

	that.program.Send(frameMsg(frame))

	return nil
}

// ReadEvent - blocks until a key is pressed, the terminal goes away or ctx is done.
func (that *Session) ReadEvent(ctx context.Context) (entity.Event, error) {
	select {
	case event := <-that.events:
		return event, nil
	case <-that.done:
		return entity.Event{}, ErrSessionClosed
	case <-ctx.Done():
		return entity.Event{}, ctx.Err()
	}
}

// Close - stops the drawing loop and restores the terminal. Safe to call more than once.
func (that *Session) Close() error {
	that.closeOnce.Do(func() {
		that.program.Send(closeMsg{})
		<-that.done
	})

	return that.err
}
