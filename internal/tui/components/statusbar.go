package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/tripcost/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// info on the right.
func RenderStatusBar(width int, hints, info string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width).
		MaxHeight(1)

	left := " " + hints
	right := info + " "

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return style.Render(left + strings.Repeat(" ", padding) + right)
}
