package model

import "github.com/shopspring/decimal"

// Category identifies one cost line of the breakdown.
type Category int

const (
	RentalCar Category = iota
	Lodging
	Food
	Ski
	Activities
	Total
)

var categoryKeys = [...]string{
	RentalCar:  "rental_car",
	Lodging:    "lodging",
	Food:       "food",
	Ski:        "ski",
	Activities: "activities",
	Total:      "total",
}

// Key returns the stable machine name used in JSON output and config.
func (c Category) Key() string {
	if c < RentalCar || c > Total {
		return "unknown"
	}
	return categoryKeys[c]
}

func (c Category) String() string { return c.Key() }

// MarshalText encodes the category as its key.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.Key()), nil
}

// Categories returns the five cost categories in display order.
func Categories() []Category {
	return []Category{RentalCar, Lodging, Food, Ski, Activities}
}

// AllCategories returns the cost categories followed by Total.
func AllCategories() []Category {
	return append(Categories(), Total)
}

// CategoryCost is the min/max range of one category, as a group total and per person.
type CategoryCost struct {
	Category     Category        `json:"category"`
	TotalMin     decimal.Decimal `json:"total_min"`
	TotalMax     decimal.Decimal `json:"total_max"`
	PerPersonMin decimal.Decimal `json:"per_person_min"`
	PerPersonMax decimal.Decimal `json:"per_person_max"`
}

// CostBreakdown is the result of one estimate.
// Rows holds every category of AllCategories, in that order.
type CostBreakdown struct {
	Inputs      TripInputs      `json:"-"`
	CarsNeeded  int             `json:"cars_needed"`
	CarTimeCost decimal.Decimal `json:"car_time_cost"`
	Rows        []CategoryCost  `json:"rows"`
}

// Get returns the row for c, or a zero row if the breakdown does not contain it.
func (b CostBreakdown) Get(c Category) CategoryCost {
	for _, r := range b.Rows {
		if r.Category == c {
			return r
		}
	}
	return CategoryCost{Category: c}
}

// Total returns the synthesized Total row.
func (b CostBreakdown) Total() CategoryCost {
	return b.Get(Total)
}

// Segment names one part of a stacked bar.
type Segment string

const (
	SegmentMin   Segment = "Min"
	SegmentDelta Segment = "Delta"
)

// StackedBarRow is one segment of the per-person stacked chart.
// Derived for rendering only.
type StackedBarRow struct {
	Category Category        `json:"category"`
	Segment  Segment         `json:"segment"`
	Value    decimal.Decimal `json:"value"`
}
