// Package model defines the value types shared by the estimator and the shells.
package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Input validation errors returned by the shells before an estimate is built.
var (
	ErrPeopleRange  = errors.New("people count out of range")
	ErrDaysRange    = errors.New("trip days out of range")
	ErrSkiDaysRange = errors.New("ski days out of range")
	ErrActivities   = errors.New("invalid activities budget")
)

// TripInputs holds the four scalar inputs of one estimate.
// A fresh value is built for every evaluation.
type TripInputs struct {
	People     int
	Days       int
	SkiDays    int
	Activities decimal.Decimal // total group spend, not per person
}

// NewTripInputs builds inputs from plain numbers.
func NewTripInputs(people, days, skiDays int, activities float64) TripInputs {
	return TripInputs{
		People:     people,
		Days:       days,
		SkiDays:    skiDays,
		Activities: decimal.NewFromFloat(activities),
	}
}
