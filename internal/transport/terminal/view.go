package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

type styles struct {
	border     lipgloss.Border
	panel      lipgloss.Style
	title      lipgloss.Style
	message    lipgloss.Style
	subMessage lipgloss.Style
}

func newStyles(renderer *lipgloss.Renderer) styles {
	border := lipgloss.NormalBorder()

	return styles{
		border: border,
		// the top edge is drawn by hand to carry the title
		panel:      renderer.NewStyle().Border(border, false, true, true, true),
		title:      renderer.NewStyle().Bold(true),
		message:    renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		subMessage: renderer.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// renderPanel - message, blank line, board, blank line and sub-message inside a
// border whose top edge carries the title.
func renderPanel(frame tictactoe.Frame, styles styles) string {
	body := strings.Join([]string{
		" " + styles.message.Render(frame.Message),
		"",
		frame.Board,
		"",
		" " + styles.subMessage.Render(frame.SubMessage),
	}, "\n")

	box := styles.panel.Render(body)

	title := styles.title.Render(frame.Title)
	fill := lipgloss.Width(box) - lipgloss.Width(title) - lipgloss.Width(styles.border.TopLeft) - lipgloss.Width(styles.border.TopRight)
	if fill < 0 {
		fill = 0
	}

	top := styles.border.TopLeft + title + strings.Repeat(styles.border.Top, fill) + styles.border.TopRight

	return top + "\n" + box
}
