package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/tripcost/internal/tui/theme"
)

func TestStackedColumnChart_Shape(t *testing.T) {
	theme.SetActive("flexoki-dark")

	cols := []StackedColumn{
		{Label: "Rental car", Min: 250.4},
		{Label: "Lodging", Min: 70, Delta: 35},
		{Label: "Food", Min: 70, Delta: 35},
		{Label: "Ski"},
		{Label: "Activities"},
		{Label: "Total", Min: 390.4, Delta: 70},
	}
	out := StackedColumnChart(cols, 60, 10)
	lines := strings.Split(out, "\n")

	// 10 chart rows + axis + labels
	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 12:\n%s", len(lines), out)
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w > 60 {
			t.Errorf("line %d is %d wide, limit 60", i, w)
		}
	}
	if !strings.Contains(lines[len(lines)-2], "└") {
		t.Fatal("x-axis missing")
	}
	if !strings.Contains(lines[len(lines)-1], "Foo") {
		t.Fatal("category labels missing")
	}
}

func TestStackedColumnChart_Empty(t *testing.T) {
	if got := StackedColumnChart(nil, 60, 10); got != "" {
		t.Fatalf("empty chart = %q", got)
	}
}

func TestStackedColumnChart_AllZero(t *testing.T) {
	out := StackedColumnChart([]StackedColumn{{Label: "Ski"}}, 40, 6)
	if strings.Contains(out, "█") {
		t.Fatal("zero column drew a bar")
	}
}

func TestSliderFraction(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{3, 3, 12, 0},
		{12, 3, 12, 1},
		{7.5, 3, 12, 0.5},
		{20, 3, 12, 1},
		{0, 3, 12, 0},
		{5, 5, 5, 1},
	}
	for _, c := range cases {
		if got := SliderFraction(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("SliderFraction(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestRenderSlider_MarksFocus(t *testing.T) {
	theme.SetActive("flexoki-dark")
	s := Slider{Label: "People", Value: "6", Pos: 0.3}

	if strings.Contains(RenderSlider(s, 10, 20), "▸") {
		t.Fatal("unfocused slider shows the marker")
	}
	s.Focused = true
	out := RenderSlider(s, 10, 20)
	if !strings.Contains(out, "▸") || !strings.Contains(out, "People") {
		t.Fatalf("focused slider = %q", out)
	}
}

func TestTabBarWidths(t *testing.T) {
	theme.SetActive("flexoki-dark")
	for active := range Tabs {
		want := len(Tabs) - 1
		for i, tab := range Tabs {
			want += TabVisualWidth(tab, i == active)
		}
		bar := RenderTabBar(active, want)
		if got := lipgloss.Width(bar); got != want {
			t.Fatalf("active=%d: bar width %d, want %d", active, got, want)
		}
		if !strings.Contains(bar, "[") {
			t.Fatal("inactive tabs should bracket their shortcut")
		}
	}
	if TabIdxByKey('c') != 1 || TabIdxByKey('z') != -1 {
		t.Fatal("TabIdxByKey lookup wrong")
	}
}
