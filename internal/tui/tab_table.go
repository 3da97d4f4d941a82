package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/tui/components"
	"github.com/theirongolddev/tripcost/internal/tui/theme"
)

func (a App) renderTableTab(cw int) string {
	money := cli.MoneyFormatter(a.symbol)
	total := a.breakdown.Total()

	// Row 1: headline figures
	metrics := []components.Metric{
		{Label: "Per person", Value: money(total.PerPersonMin) + " – " + money(total.PerPersonMax)},
		{Label: "Group total", Value: money(total.TotalMin) + " – " + money(total.TotalMax)},
	}
	if !a.isCompactLayout() {
		metrics = append(metrics,
			components.Metric{Label: "Cars", Value: pluralCars(a.breakdown.CarsNeeded)},
			components.Metric{Label: "Car time cost", Value: money(a.breakdown.CarTimeCost), Note: "per car"},
		)
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: the six-row cost table
	tbl := cli.BreakdownTable(a.breakdown, a.lang, a.symbol)
	b.WriteString(components.ContentCard("Costs", renderCostTable(tbl, components.CardInnerWidth(cw)), cw, false))

	return b.String()
}

func pluralCars(n int) string {
	if n == 1 {
		return "1 car"
	}
	return fmt.Sprintf("%d cars", n)
}

// renderCostTable lays out a cli.Table inside a card with theme colors.
// The label column takes the remaining width; amounts are right-aligned.
func renderCostTable(tbl cli.Table, innerW int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	totalStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	ruleStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	numCols := len(tbl.Headers)
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range tbl.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range tbl.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	used := numCols - 1 // one space between columns
	for _, w := range widths[1:] {
		used += w
	}
	widths[0] = max(widths[0], innerW-used)
	lineW := used + widths[0]

	cell := func(s string, i int) string {
		pad := strings.Repeat(" ", max(widths[i]-lipgloss.Width(s), 0))
		if i == 0 {
			return s + pad
		}
		return pad + s
	}

	var b strings.Builder
	for i, h := range tbl.Headers {
		if i > 0 {
			b.WriteString(headerStyle.Render(" "))
		}
		b.WriteString(headerStyle.Render(cell(h, i)))
	}
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("─", lineW)))

	afterRule := false
	for _, row := range tbl.Rows {
		b.WriteString("\n")
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(ruleStyle.Render(strings.Repeat("─", lineW)))
			afterRule = true
			continue
		}
		for i := 0; i < numCols; i++ {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			style := valueStyle
			switch {
			case afterRule:
				style = totalStyle
			case i == 0:
				style = labelStyle
			}
			if i > 0 {
				b.WriteString(valueStyle.Render(" "))
			}
			b.WriteString(style.Render(cell(v, i)))
		}
	}
	return b.String()
}
