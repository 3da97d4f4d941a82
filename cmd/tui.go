package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/model"
	"github.com/theirongolddev/tripcost/internal/tui"
	"github.com/theirongolddev/tripcost/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	theme.SetActive(appCfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	// The TUI clamps out-of-range flags instead of rejecting them
	in := config.DefaultLimits.Clamp(model.NewTripInputs(flagPeople, flagDays, flagSkiDays, flagActivities))

	app := tui.NewApp(tui.Options{
		Inputs:    in,
		Limits:    config.DefaultLimits,
		Rates:     appCfg.EffectiveRates(),
		Labels:    flagLabels,
		Currency:  flagCurrency,
		NeedSetup: !config.Exists(),
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
