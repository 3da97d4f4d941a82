package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/tui/components"
	"github.com/theirongolddev/tripcost/internal/tui/theme"
)

// chartColumns turns the stacked rows into chart columns with localized labels.
func (a App) chartColumns() []components.StackedColumn {
	bars := cli.GroupStackedRows(a.chart)
	cols := make([]components.StackedColumn, len(bars))
	for i, bar := range bars {
		cols[i] = components.StackedColumn{
			Label: cli.CategoryLabel(bar.Category, a.lang),
			Min:   bar.Min.InexactFloat64(),
			Delta: bar.Delta.InexactFloat64(),
		}
	}
	return cols
}

func (a App) renderChartTab(cw, h int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	// card border + title + x-axis + labels + legend
	chartH := max(h-7, minChartHeight)

	minStyle := lipgloss.NewStyle().Foreground(t.Min).Background(t.Surface)
	deltaStyle := lipgloss.NewStyle().Foreground(t.Delta).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	b.WriteString(components.StackedColumnChart(a.chartColumns(), innerW, chartH))
	b.WriteString("\n")
	b.WriteString(minStyle.Render("█"))
	b.WriteString(mutedStyle.Render(" Min   "))
	b.WriteString(deltaStyle.Render("█"))
	b.WriteString(mutedStyle.Render(" Delta (max - min)"))

	return components.ContentCard("Per person ("+a.symbol+")", b.String(), cw, false)
}
