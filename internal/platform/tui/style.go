package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term2048/internal/game"
)

// Tiles cycle through six colors by rank; low ranks render bold so the
// tiles a player is actively working with stand out.
var tileColors = [6]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // rank%6 == 0: cyan
	lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
	lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
	lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
	lipgloss.NewStyle().Foreground(lipgloss.Color("4")), // blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
}

var (
	emptyCellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	hudStyle       = lipgloss.NewStyle().Bold(true)
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	overlayStyle   = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 3).
			Align(lipgloss.Center)
)

// tileStyle returns the style for a tile of the given rank.
func tileStyle(rank int) lipgloss.Style {
	style := tileColors[rank%len(tileColors)]
	if rank < 6 {
		style = style.Bold(true)
	}
	return style
}

// renderCell formats one cell, right-aligned in four columns like the
// score HUD.
func renderCell(rank int) string {
	if rank == 0 {
		return emptyCellStyle.Render("   .")
	}
	return tileStyle(rank).Render(fmt.Sprintf("%4d", 1<<rank))
}

// renderBoard draws the whole grid inside a rounded border.
func renderBoard(g *game.Game) string {
	var rows []string
	size := g.Board.Size()
	for r := 0; r < size; r++ {
		var cells []string
		for c := 0; c < size; c++ {
			cells = append(cells, renderCell(g.Board.Rank(r, c)))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return boardStyle.Render(strings.Join(rows, "\n\n"))
}

// renderHUD draws the score line above the board.
func renderHUD(g *game.Game) string {
	return hudStyle.Render(fmt.Sprintf("Score: %6d  Turns: %4d", g.Score, g.Turns))
}
