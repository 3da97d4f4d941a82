// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with thousands separators, no decimals and a
// trailing currency symbol, e.g. 1502.40 -> "1,502 €".
// Halves round to even, matching Python's "{:,.0f}".
// This is the only place money is turned into text.
func FormatMoney(amount decimal.Decimal, symbol string) string {
	s := humanize.Comma(amount.RoundBank(0).IntPart())
	if symbol == "" {
		return s
	}
	return s + " " + symbol
}

// MoneyFormatter returns FormatMoney bound to one currency symbol.
func MoneyFormatter(symbol string) func(decimal.Decimal) string {
	return func(d decimal.Decimal) string {
		return FormatMoney(d, symbol)
	}
}

// FormatAxisValue formats a chart tick value compactly.
// e.g., 1500 -> "1.5k", 2000 -> "2k", 80 -> "80"
func FormatAxisValue(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	case v == 0:
		return "0"
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// AxisTickStep computes a nice tick interval targeting ~5 ticks.
func AxisTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}
