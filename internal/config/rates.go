package config

import "github.com/shopspring/decimal"

// Rates holds every price and threshold the estimator uses.
type Rates struct {
	SeatsPerCar      int
	FixedPricePerCar decimal.Decimal // base fee incl. fuel, per car
	BaseRentalDays   int
	BaseWeekRate     decimal.Decimal // time cost for up to BaseRentalDays
	ExtraDayRate     decimal.Decimal
	DoubleWeekDays   int // from this length on, two base weeks are billed

	FreeLodgingAfter   int // people beyond this count sleep for free
	LodgingMinPerNight decimal.Decimal
	LodgingMaxPerNight decimal.Decimal

	FoodMinPerDay decimal.Decimal
	FoodMaxPerDay decimal.Decimal

	SkiPerDay decimal.Decimal
}

// DefaultRates returns the built-in rate table.
func DefaultRates() Rates {
	return Rates{
		SeatsPerCar:      4,
		FixedPricePerCar: decimal.RequireFromString("582.0"),
		BaseRentalDays:   7,
		BaseWeekRate:     decimal.RequireFromString("169.20"),
		ExtraDayRate:     decimal.RequireFromString("28.20"),
		DoubleWeekDays:   14,

		FreeLodgingAfter:   8,
		LodgingMinPerNight: decimal.NewFromInt(10),
		LodgingMaxPerNight: decimal.NewFromInt(15),

		FoodMinPerDay: decimal.NewFromInt(10),
		FoodMaxPerDay: decimal.NewFromInt(15),

		SkiPerDay: decimal.NewFromInt(60),
	}
}

// RateOverrides allows user-defined values for individual rates.
type RateOverrides struct {
	SeatsPerCar        *int     `toml:"seats_per_car,omitempty"`
	FixedPricePerCar   *float64 `toml:"fixed_price_per_car,omitempty"`
	BaseWeekRate       *float64 `toml:"base_week_rate,omitempty"`
	ExtraDayRate       *float64 `toml:"extra_day_rate,omitempty"`
	FreeLodgingAfter   *int     `toml:"free_lodging_after,omitempty"`
	LodgingMinPerNight *float64 `toml:"lodging_min_per_night,omitempty"`
	LodgingMaxPerNight *float64 `toml:"lodging_max_per_night,omitempty"`
	FoodMinPerDay      *float64 `toml:"food_min_per_day,omitempty"`
	FoodMaxPerDay      *float64 `toml:"food_max_per_day,omitempty"`
	SkiPerDay          *float64 `toml:"ski_per_day,omitempty"`
}

// Apply returns base with every set override replaced. Negative prices and
// non-positive counts are ignored. A min above its max is dropped, and so are
// car time overrides that would make a longer rental cheaper.
func (o RateOverrides) Apply(base Rates) Rates {
	r := base
	if o.SeatsPerCar != nil && *o.SeatsPerCar > 0 {
		r.SeatsPerCar = *o.SeatsPerCar
	}
	if o.FreeLodgingAfter != nil && *o.FreeLodgingAfter >= 0 {
		r.FreeLodgingAfter = *o.FreeLodgingAfter
	}
	setPrice(&r.FixedPricePerCar, o.FixedPricePerCar)
	setPrice(&r.BaseWeekRate, o.BaseWeekRate)
	setPrice(&r.ExtraDayRate, o.ExtraDayRate)
	setPrice(&r.LodgingMinPerNight, o.LodgingMinPerNight)
	setPrice(&r.LodgingMaxPerNight, o.LodgingMaxPerNight)
	setPrice(&r.FoodMinPerDay, o.FoodMinPerDay)
	setPrice(&r.FoodMaxPerDay, o.FoodMaxPerDay)
	setPrice(&r.SkiPerDay, o.SkiPerDay)

	if r.LodgingMinPerNight.GreaterThan(r.LodgingMaxPerNight) {
		r.LodgingMinPerNight, r.LodgingMaxPerNight = base.LodgingMinPerNight, base.LodgingMaxPerNight
	}
	if r.FoodMinPerDay.GreaterThan(r.FoodMaxPerDay) {
		r.FoodMinPerDay, r.FoodMaxPerDay = base.FoodMinPerDay, base.FoodMaxPerDay
	}
	if !r.rentalNonDecreasing() {
		r.BaseWeekRate, r.ExtraDayRate = base.BaseWeekRate, base.ExtraDayRate
	}
	return r
}

// rentalNonDecreasing reports whether the last day billed per extra day costs
// no more than the flat two-week price that replaces it.
func (r Rates) rentalNonDecreasing() bool {
	extraDays := r.DoubleWeekDays - 1 - r.BaseRentalDays
	if extraDays <= 0 {
		return true
	}
	longest := r.BaseWeekRate.Add(r.ExtraDayRate.Mul(decimal.NewFromInt(int64(extraDays))))
	return longest.LessThanOrEqual(r.BaseWeekRate.Mul(decimal.NewFromInt(2)))
}

func setPrice(dst *decimal.Decimal, v *float64) {
	if v == nil || *v < 0 {
		return
	}
	*dst = decimal.NewFromFloat(*v)
}

// EffectiveRates returns the default rate table with the config overrides applied.
func (c Config) EffectiveRates() Rates {
	return c.Rates.Apply(DefaultRates())
}
