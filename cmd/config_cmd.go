package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration and rate table",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appCfg

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Defaults]")
	fmt.Printf("    People:     %d\n", cfg.Defaults.People)
	fmt.Printf("    Days:       %d\n", cfg.Defaults.Days)
	fmt.Printf("    Ski days:   %d\n", cfg.Defaults.SkiDays)
	fmt.Printf("    Activities: %.0f\n", cfg.Defaults.Activities)
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency: %s\n", cfg.Display.Currency)
	fmt.Printf("    Labels:   %s\n", cfg.Display.Labels)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Print(cli.RenderTable(rateTable(cfg.EffectiveRates(), flagCurrency)))
	fmt.Println()
	fmt.Println("  Run `tripcost setup` to reconfigure.")
	return nil
}

func rateTable(r config.Rates, symbol string) cli.Table {
	price := func(label string, v fmt.Stringer) []string {
		return []string{label, v.String() + " " + symbol}
	}
	count := func(label string, v int) []string {
		return []string{label, fmt.Sprintf("%d", v)}
	}
	return cli.Table{
		Title:   "Rates",
		Headers: []string{"Rate", "Value"},
		Rows: [][]string{
			count("Seats per car", r.SeatsPerCar),
			price("Fixed price per car", r.FixedPricePerCar),
			count("Base rental days", r.BaseRentalDays),
			price("Base week rate", r.BaseWeekRate),
			price("Extra day rate", r.ExtraDayRate),
			count("Double week from day", r.DoubleWeekDays),
			{"---"},
			count("Free lodging after", r.FreeLodgingAfter),
			price("Lodging min / night", r.LodgingMinPerNight),
			price("Lodging max / night", r.LodgingMaxPerNight),
			{"---"},
			price("Food min / day", r.FoodMinPerDay),
			price("Food max / day", r.FoodMaxPerDay),
			price("Ski / day", r.SkiPerDay),
		},
	}
}
