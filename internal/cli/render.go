package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tripcost/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	minBarStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	deltaBarStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(64).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
// A row holding the single cell "---" renders as a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			widths[i] = max(widths[i], lipgloss.Width(h))
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(" " + padRight(h, widths[i]) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			var padded string
			if i == 0 {
				padded = " " + padRight(cell, widths[i]) + " "
			} else {
				padded = " " + padLeft(cell, widths[i]) + " "
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// padRight and padLeft pad by display width; "€" is one column but three bytes.
func padRight(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padLeft(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

// BreakdownTable shapes a breakdown into the six-row cost table.
func BreakdownTable(b model.CostBreakdown, lang, symbol string) Table {
	money := MoneyFormatter(symbol)
	rows := make([][]string, 0, len(b.Rows)+1)
	for _, c := range model.AllCategories() {
		if c == model.Total {
			rows = append(rows, []string{"---"})
		}
		r := b.Get(c)
		rows = append(rows, []string{
			CategoryLabel(c, lang),
			money(r.TotalMax),
			money(r.TotalMin),
			money(r.PerPersonMax),
			money(r.PerPersonMin),
		})
	}
	return Table{
		Headers: TableHeaders(lang),
		Rows:    rows,
	}
}

// StackedBar is one category of the stacked chart, resolved from its two segments.
type StackedBar struct {
	Category model.Category
	Min      decimal.Decimal
	Delta    decimal.Decimal
}

// Max is the full bar height.
func (s StackedBar) Max() decimal.Decimal { return s.Min.Add(s.Delta) }

// GroupStackedRows folds Min/Delta rows into one bar per category, keeping order.
func GroupStackedRows(rows []model.StackedBarRow) []StackedBar {
	var bars []StackedBar
	index := make(map[model.Category]int)
	for _, r := range rows {
		i, ok := index[r.Category]
		if !ok {
			i = len(bars)
			index[r.Category] = i
			bars = append(bars, StackedBar{Category: r.Category})
		}
		switch r.Segment {
		case model.SegmentMin:
			bars[i].Min = r.Value
		case model.SegmentDelta:
			bars[i].Delta = r.Value
		}
	}
	return bars
}

// SegmentWidths splits a bar of maxWidth cells into min and delta parts
// scaled against peak. Rounding is applied to the bar ends so a zero delta
// never draws a cell.
func SegmentWidths(bar StackedBar, peak float64, maxWidth int) (int, int) {
	if peak <= 0 || maxWidth <= 0 {
		return 0, 0
	}
	lo := bar.Min.InexactFloat64()
	hi := bar.Max().InexactFloat64()
	minW := int(math.Round(lo / peak * float64(maxWidth)))
	totalW := int(math.Round(hi / peak * float64(maxWidth)))
	minW = max(0, min(minW, maxWidth))
	totalW = max(minW, min(totalW, maxWidth))
	return minW, totalW - minW
}

// RenderStackedBars renders the per-person chart as horizontal stacked bars:
// the min segment solid, the max-min range shaded on top of it.
func RenderStackedBars(rows []model.StackedBarRow, lang, symbol string, maxWidth int) string {
	bars := GroupStackedRows(rows)
	if len(bars) == 0 {
		return ""
	}

	peak := 0.0
	labelW := 0
	for _, bar := range bars {
		peak = max(peak, bar.Max().InexactFloat64())
		labelW = max(labelW, lipgloss.Width(CategoryLabel(bar.Category, lang)))
	}

	var b strings.Builder
	for _, bar := range bars {
		minW, deltaW := SegmentWidths(bar, peak, maxWidth)
		rest := maxWidth - minW - deltaW

		b.WriteString("  ")
		b.WriteString(mutedStyle.Render(padRight(CategoryLabel(bar.Category, lang), labelW)))
		b.WriteString("  ")
		b.WriteString(minBarStyle.Render(strings.Repeat("█", minW)))
		b.WriteString(deltaBarStyle.Render(strings.Repeat("▒", deltaW)))
		b.WriteString(strings.Repeat(" ", rest))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(rangeText(bar, symbol)))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(minBarStyle.Render("█"))
	b.WriteString(mutedStyle.Render(" Min   "))
	b.WriteString(deltaBarStyle.Render("▒"))
	b.WriteString(mutedStyle.Render(" Delta (max - min)"))
	b.WriteString("\n")

	return b.String()
}

func rangeText(bar StackedBar, symbol string) string {
	if bar.Delta.IsZero() {
		return FormatMoney(bar.Min, symbol)
	}
	return fmt.Sprintf("%s – %s", FormatMoney(bar.Min, symbol), FormatMoney(bar.Max(), symbol))
}
