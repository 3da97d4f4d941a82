package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/tui/components"
	"github.com/theirongolddev/tripcost/internal/tui/theme"
)

// field is one of the four trip inputs, in display order.
type field int

const (
	fieldPeople field = iota
	fieldDays
	fieldSkiDays
	fieldActivities
	fieldCount // sentinel
)

var fieldLabels = map[string][fieldCount]string{
	"en": {"People", "Days", "Ski days", "Activities"},
	"de": {"Personen", "Reisetage", "Skitage", "Aktivitäten"},
}

func fieldLabel(f field, lang string) string {
	labels, ok := fieldLabels[lang]
	if !ok {
		labels = fieldLabels["en"]
	}
	return labels[f]
}

// activitiesTrack is the budget shown as a full slider; larger budgets
// extend the track.
const activitiesTrack = 1000

func (a App) sliders() []components.Slider {
	in := a.inputs
	l := a.limits
	act := in.Activities.InexactFloat64()

	return []components.Slider{
		{
			Label: fieldLabel(fieldPeople, a.lang),
			Value: strconv.Itoa(in.People),
			Pos:   components.SliderFraction(float64(in.People), float64(l.MinPeople), float64(l.MaxPeople)),
		},
		{
			Label: fieldLabel(fieldDays, a.lang),
			Value: strconv.Itoa(in.Days),
			Pos:   components.SliderFraction(float64(in.Days), float64(l.MinDays), float64(l.MaxDays)),
		},
		{
			Label: fieldLabel(fieldSkiDays, a.lang),
			Value: strconv.Itoa(in.SkiDays) + " / " + strconv.Itoa(in.Days),
			Pos:   components.SliderFraction(float64(in.SkiDays), 0, float64(in.Days)),
		},
		{
			Label: fieldLabel(fieldActivities, a.lang),
			Value: cli.FormatMoney(in.Activities, a.symbol),
			Pos:   components.SliderFraction(act, 0, max(activitiesTrack, act)),
		},
	}
}

func (a App) renderInputsCard(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	sliders := a.sliders()
	labelW := 0
	for _, s := range sliders {
		labelW = max(labelW, lipgloss.Width(s.Label))
	}
	// marker + label + gap + track + gap + value
	trackW := max(innerW-2-labelW-1-2-14, 10)

	var b strings.Builder
	for i, s := range sliders {
		s.Focused = field(i) == a.focus
		if s.Focused && a.editing && a.focus == fieldActivities {
			s.Value = a.amountIn.View()
		}
		b.WriteString(components.RenderSlider(s, labelW, trackW))
		if i < len(sliders)-1 {
			b.WriteString("\n")
		}
	}

	if a.editErr != "" {
		warnStyle := lipgloss.NewStyle().Foreground(t.Warn).Background(t.Surface)
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("  " + a.editErr))
	}

	return components.ContentCard("Trip", b.String(), cw, true)
}
