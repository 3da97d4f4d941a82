package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/tui/components"
	"github.com/theirongolddev/tripcost/internal/tui/theme"
)

func (a App) renderRatesTab(cw int) string {
	r := a.est.Rates()
	money := func(v fmt.Stringer) string { return v.String() + " " + a.symbol }

	rates := [][2]string{
		{"Seats per car", fmt.Sprintf("%d", r.SeatsPerCar)},
		{"Fixed price per car", money(r.FixedPricePerCar)},
		{"Base week rate", fmt.Sprintf("%s (up to %d days)", money(r.BaseWeekRate), r.BaseRentalDays)},
		{"Extra day rate", money(r.ExtraDayRate)},
		{"Two base weeks from", fmt.Sprintf("%d days", r.DoubleWeekDays)},
		{"Free lodging after", fmt.Sprintf("%d people", r.FreeLodgingAfter)},
		{"Lodging per night", money(r.LodgingMinPerNight) + " – " + money(r.LodgingMaxPerNight)},
		{"Food per day", money(r.FoodMinPerDay) + " – " + money(r.FoodMaxPerDay)},
		{"Ski per day", money(r.SkiPerDay)},
	}

	settings := [][2]string{
		{"Config file", config.Path()},
		{"Currency", a.symbol},
		{"Labels", fmt.Sprintf("%s (%s)", a.lang, labelLanguages())},
		{"Theme", theme.Active.Name},
	}
	if a.setupErr != nil {
		settings = append(settings, [2]string{"Save error", a.setupErr.Error()})
	}

	if a.isCompactLayout() {
		return components.ContentCard("Rates", renderPairs(rates), cw, false) + "\n" +
			components.ContentCard("Settings", renderPairs(settings), cw, false)
	}

	widths := components.LayoutRow(cw, 2)
	return components.CardRow([]string{
		components.ContentCard("Rates", renderPairs(rates), widths[0], false),
		components.ContentCard("Settings", renderPairs(settings), widths[1], false),
	})
}

func renderPairs(pairs [][2]string) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	labelW := 0
	for _, p := range pairs {
		labelW = max(labelW, lipgloss.Width(p[0]))
	}

	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = labelStyle.Render(p[0]+strings.Repeat(" ", labelW-lipgloss.Width(p[0])+2)) +
			valueStyle.Render(p[1])
	}
	return strings.Join(lines, "\n")
}
