package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/estimate"
	"github.com/theirongolddev/tripcost/internal/model"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		sym  string
		want string
	}{
		{"0", "€", "0 €"},
		{"390.40", "€", "390 €"},
		{"1502.40", "€", "1,502 €"},
		{"2762.40", "€", "2,762 €"},
		{"1234567.89", "€", "1,234,568 €"},
		{"0.5", "€", "0 €"},
		{"1.5", "€", "2 €"},
		{"2.5", "€", "2 €"},
		{"1000", "", "1,000"},
		{"-1500", "CHF", "-1,500 CHF"},
	}
	for _, c := range cases {
		got := FormatMoney(decimal.RequireFromString(c.in), c.sym)
		assert.Equal(t, c.want, got, "FormatMoney(%s, %q)", c.in, c.sym)
	}
}

func TestFormatAxisValue(t *testing.T) {
	assert.Equal(t, "0", FormatAxisValue(0))
	assert.Equal(t, "80", FormatAxisValue(80))
	assert.Equal(t, "2k", FormatAxisValue(2000))
	assert.Equal(t, "1.5k", FormatAxisValue(1500))
}

func TestAxisTickStep(t *testing.T) {
	assert.Equal(t, 50.0, AxisTickStep(460))
	assert.Equal(t, 200.0, AxisTickStep(1000))
	assert.Equal(t, 1.0, AxisTickStep(0))
}

func TestCategoryLabel_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Mietwagen", CategoryLabel(model.RentalCar, "de"))
	assert.Equal(t, "Rental car", CategoryLabel(model.RentalCar, "fr"))
	assert.Equal(t, "Gesamt", CategoryLabel(model.Total, "de"))
}

func TestBreakdownTable_SixRowsFiveColumns(t *testing.T) {
	b := estimate.Compute(model.NewTripInputs(6, 7, 0, 0), config.DefaultRates())
	tbl := BreakdownTable(b, "en", "€")

	require.Len(t, tbl.Headers, 5)

	var data [][]string
	for _, r := range tbl.Rows {
		if len(r) == 1 && r[0] == "---" {
			continue
		}
		data = append(data, r)
	}
	require.Len(t, data, 6)
	for _, r := range data {
		assert.Len(t, r, 5)
	}

	assert.Equal(t, []string{"Rental car", "1,502 €", "1,502 €", "250 €", "250 €"}, data[0])
	assert.Equal(t, []string{"Total", "2,762 €", "2,342 €", "460 €", "390 €"}, data[5])
}

func TestRenderTable_AlignsMultibyteSymbols(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"A", "B"},
		Rows:    [][]string{{"x", "1 €"}, {"yy", "1,000 €"}},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	width := lipgloss.Width(lines[0])
	for i, l := range lines {
		assert.Equal(t, width, lipgloss.Width(l), "line %d has a different width", i)
	}
}

func TestSegmentWidths(t *testing.T) {
	bar := StackedBar{Min: decimal.NewFromInt(50), Delta: decimal.NewFromInt(25)}
	lo, delta := SegmentWidths(bar, 100, 40)
	assert.Equal(t, 20, lo)
	assert.Equal(t, 10, delta)

	flat := StackedBar{Min: decimal.NewFromInt(100)}
	lo, delta = SegmentWidths(flat, 100, 40)
	assert.Equal(t, 40, lo)
	assert.Equal(t, 0, delta)

	lo, delta = SegmentWidths(bar, 0, 40)
	assert.Zero(t, lo)
	assert.Zero(t, delta)
}

func TestRenderStackedBars_OneLinePerCategory(t *testing.T) {
	b := estimate.Compute(model.NewTripInputs(6, 7, 0, 0), config.DefaultRates())
	out := RenderStackedBars(estimate.StackedRows(b), "en", "€", 30)

	for _, c := range model.AllCategories() {
		assert.Contains(t, out, CategoryLabel(c, "en"))
	}
	assert.Contains(t, out, "390 € – 460 €")
	assert.Contains(t, out, "Delta")
	assert.Empty(t, RenderStackedBars(nil, "en", "€", 30))
}
