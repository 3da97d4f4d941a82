package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/tripcost/internal/tui/theme"
)

// Slider is one adjustable input drawn as a labeled track.
type Slider struct {
	Label   string
	Value   string
	Pos     float64 // position on the track, 0..1
	Focused bool
}

// SliderFraction maps v into 0..1 over [lo, hi], clamped.
func SliderFraction(v, lo, hi float64) float64 {
	if hi <= lo {
		return 1
	}
	return min(1, max(0, (v-lo)/(hi-lo)))
}

// RenderSlider renders label, track and value on one line.
func RenderSlider(s Slider, labelW, trackW int) string {
	t := theme.Active

	fill := t.TextMuted
	labelColor := t.TextMuted
	marker := "  "
	if s.Focused {
		fill = t.Accent
		labelColor = t.TextPrimary
		marker = "▸ "
	}

	track := progress.New(
		progress.WithSolidFill(string(fill)),
		progress.WithWidth(max(trackW, 4)),
		progress.WithoutPercentage(),
	)
	track.EmptyColor = string(t.TextDim)

	markerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(labelColor).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(s.Focused)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return markerStyle.Render(marker) +
		labelStyle.Render(fmt.Sprintf("%-*s", labelW, s.Label)) +
		spaceStyle.Render(" ") +
		track.ViewAs(min(1, max(0, s.Pos))) +
		spaceStyle.Render("  ") +
		valueStyle.Render(s.Value)
}
