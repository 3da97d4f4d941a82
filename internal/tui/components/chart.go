package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/tui/theme"
)

// StackedColumn is one column of a two-segment stacked chart.
type StackedColumn struct {
	Label string
	Min   float64
	Delta float64
}

// Top is the full column height.
func (c StackedColumn) Top() float64 { return c.Min + c.Delta }

// StackedColumnChart renders vertical columns with the min segment at the
// bottom and the delta segment stacked on top, against a labeled y-axis.
func StackedColumnChart(cols []StackedColumn, width, height int) string {
	if len(cols) == 0 {
		return ""
	}
	t := theme.Active

	maxVal := 0.0
	for _, c := range cols {
		maxVal = max(maxVal, c.Top())
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Y-axis: nice tick step, doubled until the ticks fit the height
	tickStep := cli.AxisTickStep(maxVal)
	maxIntervals := max(height/2, 2)
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := max(int(math.Round(ceiling/tickStep)), 1)

	rowsPerTick := max(height/numIntervals, 2)
	chartH := rowsPerTick * numIntervals

	yLabelW := max(len(cli.FormatAxisValue(ceiling))+1, 4)
	tickLabels := make(map[int]string, numIntervals)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = cli.FormatAxisValue(tickStep * float64(i))
	}

	n := len(cols)
	gap := 2
	chartW := max(width-yLabelW-1, 5)
	barW := min(max((chartW-(n-1)*gap)/n, 2), 10)
	axisLen := n*barW + (n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	bg := lipgloss.NewStyle().Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	minStyle := lipgloss.NewStyle().Foreground(t.Min).Background(t.Surface)
	deltaStyle := lipgloss.NewStyle().Foreground(t.Delta).Background(t.Surface)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, c := range cols {
			if i > 0 {
				b.WriteString(bg.Render(strings.Repeat(" ", gap)))
			}
			top := c.Top()
			if top <= rowBottom {
				b.WriteString(bg.Render(strings.Repeat(" ", barW)))
				continue
			}

			// The segment under the cell's lower edge owns its color.
			style := deltaStyle
			if rowBottom < c.Min {
				style = minStyle
			}

			if top >= rowTop {
				b.WriteString(style.Render(strings.Repeat("█", barW)))
				continue
			}
			idx := int((top - rowBottom) / (rowTop - rowBottom) * 8)
			idx = min(max(idx, 1), 8)
			b.WriteString(style.Render(strings.Repeat(string(blocks[idx]), barW)))
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	// X-axis labels, one per column, truncated to the column pitch
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	b.WriteString(bg.Render(strings.Repeat(" ", yLabelW+1)))
	for i, c := range cols {
		slot := barW
		if i < n-1 {
			slot += gap
		}
		lbl := truncateRunes(c.Label, max(slot-1, 1))
		b.WriteString(labelStyle.Render(lbl))
		b.WriteString(bg.Render(strings.Repeat(" ", max(slot-lipgloss.Width(lbl), 0))))
	}

	return b.String()
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}
