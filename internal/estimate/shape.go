package estimate

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tripcost/internal/model"
)

// StackedRows derives the per-person chart dataset: a Min segment and a
// Delta segment (max - min) for every category including Total.
// Both segments are floored at zero.
func StackedRows(b model.CostBreakdown) []model.StackedBarRow {
	out := make([]model.StackedBarRow, 0, 2*len(b.Rows))
	for _, c := range model.AllCategories() {
		r := b.Get(c)
		lo := nonNegative(r.PerPersonMin)
		delta := nonNegative(r.PerPersonMax.Sub(r.PerPersonMin))
		out = append(out,
			model.StackedBarRow{Category: c, Segment: model.SegmentMin, Value: lo},
			model.StackedBarRow{Category: c, Segment: model.SegmentDelta, Value: delta},
		)
	}
	return out
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
