package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/tripcost/internal/model"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
}

func TestSaveLoad_RoundTripsOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	seats := 5
	ski := 45.0
	cfg := DefaultConfig()
	cfg.Defaults.People = 9
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Rates.SeatsPerCar = &seats
	cfg.Rates.SkiPerDay = &ski

	require.NoError(t, Save(cfg))
	require.True(t, Exists())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9, got.Defaults.People)
	assert.Equal(t, "tokyo-night", got.Appearance.Theme)
	require.NotNil(t, got.Rates.SeatsPerCar)
	assert.Equal(t, 5, *got.Rates.SeatsPerCar)

	rates := got.EffectiveRates()
	assert.Equal(t, 5, rates.SeatsPerCar)
	assert.True(t, rates.SkiPerDay.Equal(decimal.NewFromInt(45)))
}

func TestLoad_ParseErrorIsWrapped(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tripcost"), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[defaults\npeople = "), 0o600))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestReadEnv_AppliesOverrides(t *testing.T) {
	t.Setenv("TRIPCOST_PEOPLE", "11")
	t.Setenv("TRIPCOST_SKI_DAYS", "3")
	t.Setenv("TRIPCOST_CURRENCY", "CHF")

	env, err := ReadEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", env.LogLevel)

	cfg := env.Apply(DefaultConfig())
	assert.Equal(t, 11, cfg.Defaults.People)
	assert.Equal(t, 7, cfg.Defaults.Days)
	assert.Equal(t, 3, cfg.Defaults.SkiDays)
	assert.Equal(t, "CHF", cfg.Display.Currency)
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
}

func writeConfigFile(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tripcost"), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte(body), 0o600))
}

func TestLoadEffective_BadEnvKeepsFile(t *testing.T) {
	writeConfigFile(t, "[defaults]\npeople = 10\n\n[rates]\nski_per_day = 45.0\n")
	t.Setenv("TRIPCOST_DAYS", "ten")
	t.Setenv("TRIPCOST_PEOPLE", "4")

	cfg, env, err := LoadEffective()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading environment")

	assert.Equal(t, 10, cfg.Defaults.People)
	assert.Equal(t, 7, cfg.Defaults.Days)
	assert.True(t, cfg.EffectiveRates().SkiPerDay.Equal(decimal.NewFromInt(45)))
	assert.Equal(t, Env{}, env)
}

func TestLoadEffective_BadFileStillAppliesEnv(t *testing.T) {
	writeConfigFile(t, "[defaults\npeople = ")
	t.Setenv("TRIPCOST_PEOPLE", "4")

	cfg, env, err := LoadEffective()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")

	assert.Equal(t, 4, cfg.Defaults.People)
	assert.Equal(t, 7, cfg.Defaults.Days)
	require.NotNil(t, env.People)
}

func TestLoadEffective_EnvOverFile(t *testing.T) {
	writeConfigFile(t, "[defaults]\npeople = 10\ndays = 9\n\n[display]\ncurrency = \"CHF\"\n")
	t.Setenv("TRIPCOST_DAYS", "12")

	cfg, _, err := LoadEffective()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Defaults.People)
	assert.Equal(t, 12, cfg.Defaults.Days)
	assert.Equal(t, "CHF", cfg.Display.Currency)
}

func TestRateOverrides_IgnoresInvalid(t *testing.T) {
	zero := 0
	negative := -3.0
	lodgingMin := 20.0
	o := RateOverrides{
		SeatsPerCar:        &zero,
		BaseWeekRate:       &negative,
		LodgingMinPerNight: &lodgingMin, // above the default max of 15
	}

	got := o.Apply(DefaultRates())
	want := DefaultRates()
	assert.Equal(t, want.SeatsPerCar, got.SeatsPerCar)
	assert.True(t, got.BaseWeekRate.Equal(want.BaseWeekRate))
	assert.True(t, got.LodgingMinPerNight.Equal(want.LodgingMinPerNight))
	assert.True(t, got.LodgingMaxPerNight.Equal(want.LodgingMaxPerNight))
}

func TestRateOverrides_KeepsRentalNonDecreasing(t *testing.T) {
	def := DefaultRates()
	cases := []struct {
		name      string
		base      *float64
		extra     *float64
		wantBase  string
		wantExtra string
	}{
		{"extra day too expensive", nil, ptr(40.0), "169.2", "28.2"},
		{"base week too cheap", ptr(100.0), nil, "169.2", "28.2"},
		{"both too steep", ptr(150.0), ptr(30.0), "169.2", "28.2"},
		{"cheaper extra day", nil, ptr(20.0), "169.2", "20"},
		{"dearer base week", ptr(200.0), nil, "200", "28.2"},
		{"exactly two weeks", ptr(120.0), ptr(20.0), "120", "20"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := RateOverrides{BaseWeekRate: c.base, ExtraDayRate: c.extra}.Apply(def)
			assert.True(t, got.BaseWeekRate.Equal(decimal.RequireFromString(c.wantBase)), "base week = %s", got.BaseWeekRate)
			assert.True(t, got.ExtraDayRate.Equal(decimal.RequireFromString(c.wantExtra)), "extra day = %s", got.ExtraDayRate)

			// 13 days must not cost more than 14
			thirteen := got.BaseWeekRate.Add(got.ExtraDayRate.Mul(decimal.NewFromInt(int64(got.DoubleWeekDays - 1 - got.BaseRentalDays))))
			assert.True(t, thirteen.LessThanOrEqual(got.BaseWeekRate.Mul(decimal.NewFromInt(2))))
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestLimits_Validate(t *testing.T) {
	l := DefaultLimits

	require.NoError(t, l.Validate(model.NewTripInputs(6, 7, 0, 0)))
	require.NoError(t, l.Validate(model.NewTripInputs(12, 14, 14, 1500)))

	err := l.Validate(model.NewTripInputs(2, 15, 16, -50))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrPeopleRange))
	assert.True(t, errors.Is(err, model.ErrDaysRange))
	assert.True(t, errors.Is(err, model.ErrSkiDaysRange))
	assert.True(t, errors.Is(err, model.ErrActivities))
}

func TestLimits_Clamp(t *testing.T) {
	got := DefaultLimits.Clamp(model.NewTripInputs(20, 30, 40, -10))

	assert.Equal(t, 12, got.People)
	assert.Equal(t, 14, got.Days)
	assert.Equal(t, 14, got.SkiDays)
	assert.True(t, got.Activities.IsZero())

	low := DefaultLimits.Clamp(model.NewTripInputs(0, 1, -1, 100))
	assert.Equal(t, 3, low.People)
	assert.Equal(t, 7, low.Days)
	assert.Equal(t, 0, low.SkiDays)
	assert.True(t, low.Activities.Equal(decimal.NewFromInt(100)))
}
