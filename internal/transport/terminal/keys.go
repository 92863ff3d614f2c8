package terminal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const spacebar = " "

// keyMap translates terminal key presses into game events.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Quit    key.Binding

	// Move only exists for the help line.
	Move key.Binding
}

func newKeyMap(keys config.Keys) keyMap {
	up, down, left, right := keyNames(keys.Up), keyNames(keys.Down), keyNames(keys.Left), keyNames(keys.Right)
	confirm, quit := keyNames(keys.Confirm), keyNames(keys.Quit)

	moveKeys := make([]string, 0, len(up)+len(down)+len(left)+len(right))
	moveKeys = append(moveKeys, up...)
	moveKeys = append(moveKeys, down...)
	moveKeys = append(moveKeys, left...)
	moveKeys = append(moveKeys, right...)

	return keyMap{
		Up:      key.NewBinding(key.WithKeys(up...)),
		Down:    key.NewBinding(key.WithKeys(down...)),
		Left:    key.NewBinding(key.WithKeys(left...)),
		Right:   key.NewBinding(key.WithKeys(right...)),
		Confirm: key.NewBinding(key.WithKeys(confirm...), key.WithHelp(helpName(confirm), "place")),
		Quit:    key.NewBinding(key.WithKeys(quit...), key.WithHelp(helpName(quit), "quit")),
		Move: key.NewBinding(
			key.WithKeys(moveKeys...),
			key.WithHelp(strings.Join([]string{helpName(up), helpName(down), helpName(left), helpName(right)}, "/"), "move"),
		),
	}
}

// ShortHelp returns bindings for the single line help view.
func (that keyMap) ShortHelp() []key.Binding {
	return []key.Binding{that.Move, that.Confirm, that.Quit}
}

func (that keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{that.Up, that.Down, that.Left, that.Right},
		{that.Confirm, that.Quit},
	}
}

// event - quit is checked first so it can never be shadowed by another binding.
func (that keyMap) event(msg tea.KeyMsg) entity.Event {
	switch {
	case key.Matches(msg, that.Quit):
		return entity.QuitEvent()
	case key.Matches(msg, that.Up):
		return entity.DirectionEvent(entity.DirectionUp)
	case key.Matches(msg, that.Down):
		return entity.DirectionEvent(entity.DirectionDown)
	case key.Matches(msg, that.Left):
		return entity.DirectionEvent(entity.DirectionLeft)
	case key.Matches(msg, that.Right):
		return entity.DirectionEvent(entity.DirectionRight)
	case key.Matches(msg, that.Confirm):
		return entity.ConfirmEvent()
	default:
		return entity.OtherEvent()
	}
}

func keyNames(names []string) []string {
	result := make([]string, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)

		switch {
		case strings.EqualFold(name, "space"):
			result = append(result, spacebar)
		case name != "":
			result = append(result, name)
		}
	}

	return result
}

func helpName(names []string) string {
	if len(names) == 0 {
		return ""
	}

	switch names[0] {
	case spacebar:
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	default:
		return names[0]
	}
}
