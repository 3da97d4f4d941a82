package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/estimate"
	"github.com/theirongolddev/tripcost/internal/model"
)

var (
	flagJSON    bool
	flagNoChart bool
)

const chartWidth = 40

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Cost table and per-person chart for one trip",
	RunE:  runEstimate,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, estimateCmd} {
		c.Flags().BoolVar(&flagJSON, "json", false, "Print the breakdown as JSON")
		c.Flags().BoolVar(&flagNoChart, "no-chart", false, "Skip the per-person chart")
	}
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(_ *cobra.Command, _ []string) error {
	in, err := tripInputs()
	if err != nil {
		return err
	}

	est := newEstimator()
	b := est.Compute(in)
	zap.L().Debug("estimate computed",
		zap.Int("cars_needed", b.CarsNeeded),
		zap.Stringer("car_time_cost", b.CarTimeCost),
		zap.Stringer("total_max", b.Total().TotalMax),
	)

	if flagJSON {
		return writeJSON(os.Stdout, b)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(tripTitle(in)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.BreakdownTable(b, flagLabels, flagCurrency)))
	fmt.Printf("  %d car(s), time cost %s per car\n",
		b.CarsNeeded, cli.FormatMoney(b.CarTimeCost, flagCurrency))

	if !flagNoChart {
		fmt.Println()
		fmt.Print(cli.RenderStackedBars(estimate.StackedRows(b), flagLabels, flagCurrency, chartWidth))
	}
	fmt.Println()
	return nil
}

// newEstimator applies the rate overrides of the effective config.
func newEstimator() *estimate.Estimator {
	return estimate.New(estimate.WithRates(appCfg.EffectiveRates()))
}

func tripTitle(in model.TripInputs) string {
	return fmt.Sprintf("TRIP COST  %d people  %d days  %d ski days", in.People, in.Days, in.SkiDays)
}

type jsonInputs struct {
	People     int             `json:"people"`
	Days       int             `json:"days"`
	SkiDays    int             `json:"ski_days"`
	Activities decimal.Decimal `json:"activities"`
}

type jsonReport struct {
	Inputs   jsonInputs            `json:"inputs"`
	Currency string                `json:"currency"`
	Result   model.CostBreakdown   `json:"breakdown"`
	Chart    []model.StackedBarRow `json:"chart"`
}

// writeJSON prints the breakdown and chart rows with amounts as JSON numbers.
func writeJSON(w io.Writer, b model.CostBreakdown) error {
	prev := decimal.MarshalJSONWithoutQuotes
	decimal.MarshalJSONWithoutQuotes = true
	defer func() { decimal.MarshalJSONWithoutQuotes = prev }()

	report := jsonReport{
		Inputs: jsonInputs{
			People:     b.Inputs.People,
			Days:       b.Inputs.Days,
			SkiDays:    b.Inputs.SkiDays,
			Activities: b.Inputs.Activities,
		},
		Currency: flagCurrency,
		Result:   b,
		Chart:    estimate.StackedRows(b),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
