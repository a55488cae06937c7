package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/skipcount/internal/model"
)

const tileInnerWidth = 6

// moveCursor shifts a tile index within a grid of count tiles laid out in
// cols columns. Movement clamps at the edges.
func moveCursor(idx, dx, dy, count, cols int) int {
	if count <= 0 {
		return 0
	}
	if cols <= 0 {
		cols = 1
	}
	rows := (count + cols - 1) / cols
	row := idx/cols + dy
	col := idx%cols + dx
	row = clamp(row, 0, rows-1)
	col = clamp(col, 0, cols-1)
	next := row*cols + col
	if next >= count {
		next = count - 1
	}
	return next
}

func tileStyle(mode model.CountingMode, accepted, selected bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Width(tileInnerWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color(mode.Color)).
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(lipgloss.Color(mode.Color)).
		MarginRight(1)
	if accepted {
		style = style.Background(lipgloss.Color(mode.Accent))
	}
	if selected {
		style = style.Border(lipgloss.ThickBorder(), true)
	}
	return style
}

func renderGrid(order []int, isAccepted func(int) bool, cursor, cols int, mode model.CountingMode) string {
	if len(order) == 0 {
		return ""
	}
	if cols <= 0 {
		cols = 1
	}
	rows := make([]string, 0, (len(order)+cols-1)/cols)
	for start := 0; start < len(order); start += cols {
		end := start + cols
		if end > len(order) {
			end = len(order)
		}
		tiles := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			v := order[i]
			tiles = append(tiles, tileStyle(mode, isAccepted(v), i == cursor).Render(strconv.Itoa(v)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
