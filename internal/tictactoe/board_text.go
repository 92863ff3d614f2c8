package tictactoe

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const (
	cellSeparator = " | "
	highlightRune = "#"
)

var rowSeparator = " " + strings.Repeat("-", 24)

// cellRows holds the three text rows of every cell kind, six characters each.
var cellRows = map[entity.Cell][3]string{
	entity.CellEmpty:  {"      ", "      ", "      "},
	entity.CellCross:  {"00  00", "  00  ", "00  00"},
	entity.CellNought: {"  00  ", "00  00", "  00  "},
}

// RenderBoard - draws the grid as 11 text lines. The highlighted cell, if any,
// has its spaces replaced with '#'.
func RenderBoard(cells [entity.BoardSize]entity.Cell, highlight *entity.Position) string {
	selected := -1
	if highlight != nil && highlight.Valid() {
		selected = highlight.Index()
	}

	lines := make([]string, 0, 11)

	for boardRow := 0; boardRow < entity.BoardSide; boardRow++ {
		if boardRow > 0 {
			lines = append(lines, rowSeparator)
		}

		for textRow := 0; textRow < 3; textRow++ {
			parts := make([]string, 0, entity.BoardSide)

			for boardCol := 0; boardCol < entity.BoardSide; boardCol++ {
				index := boardRow*entity.BoardSide + boardCol

				part := cellRows[cells[index]][textRow]
				if index == selected {
					part = strings.ReplaceAll(part, " ", highlightRune)
				}

				parts = append(parts, part)
			}

			lines = append(lines, " "+strings.Join(parts, cellSeparator)+" ")
		}
	}

	// the last line carries no trailing space
	last := len(lines) - 1
	lines[last] = strings.TrimSuffix(lines[last], " ")

	return strings.Join(lines, "\n")
}
