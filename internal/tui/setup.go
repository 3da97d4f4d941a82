package tui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/tui/theme"
)

// SetupValues are the answers collected by the setup form.
type SetupValues struct {
	People     int
	Days       int
	Activities string
	Currency   string
	Labels     string
	Theme      string
}

var currencyChoices = []string{"€", "CHF", "$", "£"}

// SetupValuesFrom seeds the form with the current configuration.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		People:     cfg.Defaults.People,
		Days:       cfg.Defaults.Days,
		Activities: strconv.FormatFloat(cfg.Defaults.Activities, 'f', -1, 64),
		Currency:   cfg.Display.Currency,
		Labels:     cfg.Display.Labels,
		Theme:      cfg.Appearance.Theme,
	}
}

// ApplyTo writes the answers into cfg. Ski days are capped at the new trip length.
func (v SetupValues) ApplyTo(cfg config.Config) (config.Config, error) {
	activities, err := parseActivities(v.Activities)
	if err != nil {
		return cfg, err
	}
	cfg.Defaults.People = v.People
	cfg.Defaults.Days = v.Days
	cfg.Defaults.SkiDays = min(cfg.Defaults.SkiDays, v.Days)
	cfg.Defaults.Activities = activities.InexactFloat64()
	cfg.Display.Currency = v.Currency
	cfg.Display.Labels = v.Labels
	cfg.Appearance.Theme = v.Theme
	return cfg, nil
}

func parseActivities(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.New("enter a number, e.g. 300")
	}
	if d.IsNegative() {
		return decimal.Zero, errors.New("must not be negative")
	}
	return d, nil
}

func intRange(lo, hi int) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		opts = append(opts, huh.NewOption(strconv.Itoa(i), i))
	}
	return opts
}

// NewSetupForm builds the first-run form. Answers are written into v.
func NewSetupForm(v *SetupValues, limits config.Limits) *huh.Form {
	currencies := currencyChoices
	if v.Currency != "" && !slices.Contains(currencies, v.Currency) {
		currencies = append([]string{v.Currency}, currencies...)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to tripcost!").
				Description("Pick the starting values for new estimates.\nEverything can be changed later with `tripcost setup`."),
			huh.NewSelect[int]().
				Title("Default group size").
				Options(intRange(limits.MinPeople, limits.MaxPeople)...).
				Value(&v.People),
			huh.NewSelect[int]().
				Title("Default trip length (days)").
				Options(intRange(limits.MinDays, limits.MaxDays)...).
				Value(&v.Days),
			huh.NewInput().
				Title("Default activities budget (group total)").
				Placeholder(fmt.Sprintf("0, in steps of %d", limits.ActivitiesStep)).
				Validate(func(s string) error {
					_, err := parseActivities(s)
					return err
				}).
				Value(&v.Activities),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Currency symbol").
				Options(huh.NewOptions(currencies...)...).
				Value(&v.Currency),
			huh.NewSelect[string]().
				Title("Category labels").
				Options(
					huh.NewOption("English", "en"),
					huh.NewOption("Deutsch", "de"),
				).
				Value(&v.Labels),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&v.Theme),
		),
	).WithShowHelp(true)
}

// SaveSetup applies the answers to the stored config file and saves it.
// Environment overrides are not persisted.
func SaveSetup(v SetupValues) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	cfg, err = v.ApplyTo(cfg)
	if err != nil {
		return cfg, err
	}
	if err := config.Save(cfg); err != nil {
		return cfg, fmt.Errorf("saving config: %w", err)
	}
	return cfg, nil
}

// labelLanguages is used by the settings summary in the Rates tab.
func labelLanguages() string {
	return strings.Join(cli.Languages(), ", ")
}
