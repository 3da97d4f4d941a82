package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/tripcost/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22, false)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22, false)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Fatalf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}

	// Below the short card the padding must still carry background styling
	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("Line %d has no ANSI codes - padding is unstyled", i)
		}
	}
}

func TestCardRowWidthConsistency(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "A", 30, false)
	tallCard := ContentCard("Tall", "A\nB\nC\nD\nE\nF", 20, true)

	joined := CardRow([]string{tallCard, shortCard})
	for i, line := range strings.Split(joined, "\n") {
		if w := lipgloss.Width(line); w != 50 {
			t.Errorf("Line %d: width %d, want 50", i, w)
		}
	}
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, c := range []struct{ total, n int }{{100, 3}, {81, 2}, {7, 4}} {
		sum := 0
		for _, w := range LayoutRow(c.total, c.n) {
			sum += w
		}
		if sum != c.total {
			t.Fatalf("LayoutRow(%d, %d) sums to %d", c.total, c.n, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow with n=0 should be nil")
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Per person", Value: "390 € – 460 €"},
		{Label: "Cars", Value: "2 cars", Note: "4 seats each"},
	}, 80)
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 80 {
			t.Errorf("Line %d: width %d, want 80", i, w)
		}
	}
}
