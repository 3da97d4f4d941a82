// Package estimate computes the cost breakdown of a group trip.
//
// Compute is a pure function: the same inputs and rates always give the same
// breakdown, and nothing is cached between calls.
package estimate

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/model"
)

// Estimator computes breakdowns against a fixed rate table.
type Estimator struct {
	rates config.Rates
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithRates replaces the whole rate table.
func WithRates(r config.Rates) Option {
	return func(e *Estimator) {
		e.rates = r
	}
}

// WithSeatsPerCar sets how many people fit into one rental car.
func WithSeatsPerCar(seats int) Option {
	return func(e *Estimator) {
		if seats > 0 {
			e.rates.SeatsPerCar = seats
		}
	}
}

// WithFreeLodgingAfter sets the number of paying guests; everyone beyond it sleeps for free.
func WithFreeLodgingAfter(n int) Option {
	return func(e *Estimator) {
		if n >= 0 {
			e.rates.FreeLodgingAfter = n
		}
	}
}

// New creates an Estimator with the default rates, overridden by opts.
func New(opts ...Option) *Estimator {
	e := Estimator{rates: config.DefaultRates()}
	for _, opt := range opts {
		opt(&e)
	}
	return &e
}

// Rates returns the rate table in use.
func (e *Estimator) Rates() config.Rates { return e.rates }

// Compute returns the breakdown for in.
func (e *Estimator) Compute(in model.TripInputs) model.CostBreakdown {
	return Compute(in, e.rates)
}

// Compute returns the full cost breakdown for in under rates.
// It never fails; with zero people every per-person figure is zero.
func Compute(in model.TripInputs, r config.Rates) model.CostBreakdown {
	cars := CarsNeeded(in.People, r.SeatsPerCar)
	carTime := CarTimeCost(in.Days, r)

	rental := decimal.NewFromInt(int64(cars)).Mul(r.FixedPricePerCar.Add(carTime))

	paying := decimal.NewFromInt(int64(PayingPeople(in.People, r.FreeLodgingAfter)))
	people := decimal.NewFromInt(int64(in.People))
	days := decimal.NewFromInt(int64(in.Days))

	lodgingMin := r.LodgingMinPerNight.Mul(paying).Mul(days)
	lodgingMax := r.LodgingMaxPerNight.Mul(paying).Mul(days)

	foodMin := r.FoodMinPerDay.Mul(people).Mul(days)
	foodMax := r.FoodMaxPerDay.Mul(people).Mul(days)

	ski := r.SkiPerDay.Mul(decimal.NewFromInt(int64(in.SkiDays))).Mul(people)

	rows := []model.CategoryCost{
		row(model.RentalCar, rental, rental, in.People),
		row(model.Lodging, lodgingMin, lodgingMax, in.People),
		row(model.Food, foodMin, foodMax, in.People),
		row(model.Ski, ski, ski, in.People),
		row(model.Activities, in.Activities, in.Activities, in.People),
	}

	totalMin, totalMax := decimal.Zero, decimal.Zero
	for _, c := range rows {
		totalMin = totalMin.Add(c.TotalMin)
		totalMax = totalMax.Add(c.TotalMax)
	}
	rows = append(rows, row(model.Total, totalMin, totalMax, in.People))

	return model.CostBreakdown{
		Inputs:      in,
		CarsNeeded:  cars,
		CarTimeCost: carTime,
		Rows:        rows,
	}
}

func row(c model.Category, lo, hi decimal.Decimal, people int) model.CategoryCost {
	return model.CategoryCost{
		Category:     c,
		TotalMin:     lo,
		TotalMax:     hi,
		PerPersonMin: PerPerson(lo, people),
		PerPersonMax: PerPerson(hi, people),
	}
}

// CarsNeeded returns ceil(people / seats). No people need no car.
func CarsNeeded(people, seats int) int {
	if people <= 0 {
		return 0
	}
	if seats <= 0 {
		seats = 1
	}
	return (people + seats - 1) / seats
}

// CarTimeCost returns the duration-dependent rental fee of one car.
//
//	days <= BaseRentalDays                   -> BaseWeekRate
//	BaseRentalDays < days < DoubleWeekDays   -> BaseWeekRate + extra days * ExtraDayRate
//	days >= DoubleWeekDays                   -> 2 * BaseWeekRate
func CarTimeCost(days int, r config.Rates) decimal.Decimal {
	switch {
	case days <= r.BaseRentalDays:
		return r.BaseWeekRate
	case days < r.DoubleWeekDays:
		extra := decimal.NewFromInt(int64(days - r.BaseRentalDays))
		return r.BaseWeekRate.Add(extra.Mul(r.ExtraDayRate))
	default:
		return r.BaseWeekRate.Mul(decimal.NewFromInt(2))
	}
}

// PayingPeople returns how many people pay for lodging.
func PayingPeople(people, freeAfter int) int {
	if people < 0 {
		return 0
	}
	return min(people, freeAfter)
}

// PerPerson divides a group amount by people, yielding zero for no people.
func PerPerson(amount decimal.Decimal, people int) decimal.Decimal {
	if people <= 0 {
		return decimal.Zero
	}
	return amount.Div(decimal.NewFromInt(int64(people)))
}
