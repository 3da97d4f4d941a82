package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/estimate"
)

var flagChartWidth int

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Per-person stacked min/max chart",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().IntVarP(&flagChartWidth, "width", "w", chartWidth, "Bar width in cells")
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	in, err := tripInputs()
	if err != nil {
		return err
	}
	if flagChartWidth < 1 {
		return fmt.Errorf("chart width must be positive, got %d", flagChartWidth)
	}

	b := newEstimator().Compute(in)

	fmt.Println()
	fmt.Println(cli.RenderTitle("PER PERSON  " + tripTitle(in)))
	fmt.Println()
	fmt.Print(cli.RenderStackedBars(estimate.StackedRows(b), flagLabels, flagCurrency, flagChartWidth))
	fmt.Println()
	return nil
}
