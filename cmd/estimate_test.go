package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/estimate"
	"github.com/theirongolddev/tripcost/internal/model"
)

func TestWriteJSON_AmountsAreNumbers(t *testing.T) {
	flagCurrency = "€"
	b := estimate.Compute(model.NewTripInputs(6, 7, 0, 0), config.DefaultRates())

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, b))

	var got struct {
		Inputs struct {
			People int `json:"people"`
			Days   int `json:"days"`
		} `json:"inputs"`
		Currency  string `json:"currency"`
		Breakdown struct {
			CarsNeeded int `json:"cars_needed"`
			Rows       []struct {
				Category string  `json:"category"`
				TotalMax float64 `json:"total_max"`
			} `json:"rows"`
		} `json:"breakdown"`
		Chart []struct {
			Category string  `json:"category"`
			Segment  string  `json:"segment"`
			Value    float64 `json:"value"`
		} `json:"chart"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, 6, got.Inputs.People)
	assert.Equal(t, 7, got.Inputs.Days)
	assert.Equal(t, "€", got.Currency)
	assert.Equal(t, 2, got.Breakdown.CarsNeeded)
	require.Len(t, got.Breakdown.Rows, 6)
	assert.Equal(t, model.RentalCar.Key(), got.Breakdown.Rows[0].Category)
	assert.InDelta(t, 2762.40, got.Breakdown.Rows[5].TotalMax, 1e-9)
	require.Len(t, got.Chart, 12)
	assert.Equal(t, "Delta", got.Chart[11].Segment)
	assert.InDelta(t, 70.0, got.Chart[11].Value, 1e-9)
}

func TestWriteJSON_RestoresDecimalEncoding(t *testing.T) {
	require.False(t, decimal.MarshalJSONWithoutQuotes)

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, estimate.Compute(model.NewTripInputs(3, 7, 0, 0), config.DefaultRates())))
	assert.False(t, decimal.MarshalJSONWithoutQuotes)

	out, err := json.Marshal(decimal.RequireFromString("1.5"))
	require.NoError(t, err)
	assert.Equal(t, `"1.5"`, string(out))
}

func TestTripInputs_RejectsOutOfRange(t *testing.T) {
	flagPeople, flagDays, flagSkiDays, flagActivities = 2, 15, 20, -5
	t.Cleanup(func() {
		flagPeople, flagDays, flagSkiDays, flagActivities = 6, 7, 0, 0
	})

	_, err := tripInputs()
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrPeopleRange)
	assert.ErrorIs(t, err, model.ErrDaysRange)
	assert.ErrorIs(t, err, model.ErrSkiDaysRange)
	assert.ErrorIs(t, err, model.ErrActivities)
}
