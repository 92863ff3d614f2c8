package terminal

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

type (
	frameMsg tictactoe.Frame
	closeMsg struct{}
)

// model is the bubbletea side of a session. It only displays the last frame and
// forwards key presses; all game state lives in the controller.
type model struct {
	logger *slog.Logger
	events chan<- entity.Event

	keys     keyMap
	help     help.Model
	showHelp bool
	styles   styles

	frame tictactoe.Frame
}

func newModel(logger *slog.Logger, events chan<- entity.Event, keys keyMap, renderer *lipgloss.Renderer, showHelp bool) model {
	return model{
		logger:   logger,
		events:   events,
		keys:     keys,
		help:     help.New(),
		showHelp: showHelp,
		styles:   newStyles(renderer),
	}
}

func (that model) Init() tea.Cmd {
	return nil
}

func (that model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		that.frame = tictactoe.Frame(msg)

	case closeMsg:
		return that, tea.Quit

	case tea.WindowSizeMsg:
		that.help.Width = msg.Width

	case tea.KeyMsg:
		that.deliver(that.keys.event(msg))
	}

	return that, nil
}

// deliver must not block: the controller may itself be waiting on this program to draw.
func (that model) deliver(event entity.Event) {
	select {
	case that.events <- event:
	default:
		that.logger.Warn("input buffer full, key dropped", "kind", event.Kind.String(), "direction", event.Direction.String())
	}
}

func (that model) View() string {
	if that.frame.Title == "" {
		return ""
	}

	view := renderPanel(that.frame, that.styles)
	if that.showHelp {
		view += "\n" + that.help.View(that.keys)
	}

	return view + "\n"
}
