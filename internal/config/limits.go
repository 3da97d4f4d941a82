package config

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tripcost/internal/model"
)

// Limits are the input ranges offered by the shells.
type Limits struct {
	MinPeople      int
	MaxPeople      int
	MinDays        int
	MaxDays        int
	ActivitiesStep int
}

// DefaultLimits matches the slider ranges of the calculator page.
var DefaultLimits = Limits{
	MinPeople:      3,
	MaxPeople:      12,
	MinDays:        7,
	MaxDays:        14,
	ActivitiesStep: 50,
}

// Validate checks raw inputs and reports every violated range at once.
func (l Limits) Validate(in model.TripInputs) error {
	var errs []error
	if in.People < l.MinPeople || in.People > l.MaxPeople {
		errs = append(errs, fmt.Errorf("%w: %d (want %d-%d)", model.ErrPeopleRange, in.People, l.MinPeople, l.MaxPeople))
	}
	if in.Days < l.MinDays || in.Days > l.MaxDays {
		errs = append(errs, fmt.Errorf("%w: %d (want %d-%d)", model.ErrDaysRange, in.Days, l.MinDays, l.MaxDays))
	}
	if in.SkiDays < 0 || in.SkiDays > in.Days {
		errs = append(errs, fmt.Errorf("%w: %d (want 0-%d)", model.ErrSkiDaysRange, in.SkiDays, in.Days))
	}
	if in.Activities.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: %s is negative", model.ErrActivities, in.Activities))
	}
	return errors.Join(errs...)
}

// Clamp pulls every input into range, the way a slider would.
// Ski days are clamped after days so they never exceed the trip.
func (l Limits) Clamp(in model.TripInputs) model.TripInputs {
	out := in
	out.People = clampInt(in.People, l.MinPeople, l.MaxPeople)
	out.Days = clampInt(in.Days, l.MinDays, l.MaxDays)
	out.SkiDays = clampInt(in.SkiDays, 0, out.Days)
	if in.Activities.IsNegative() {
		out.Activities = decimal.Zero
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
