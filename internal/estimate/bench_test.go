package estimate

import (
	"testing"

	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/model"
)

func BenchmarkCompute(b *testing.B) {
	rates := config.DefaultRates()
	in := model.NewTripInputs(10, 12, 5, 450)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compute(in, rates)
	}
}

// BenchmarkSliderSweep recomputes every slider position once, the work a
// user does dragging through the whole input space.
func BenchmarkSliderSweep(b *testing.B) {
	est := New()
	l := config.DefaultLimits

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for p := l.MinPeople; p <= l.MaxPeople; p++ {
			for d := l.MinDays; d <= l.MaxDays; d++ {
				for s := 0; s <= d; s++ {
					bd := est.Compute(model.NewTripInputs(p, d, s, 300))
					_ = StackedRows(bd)
				}
			}
		}
	}
}
