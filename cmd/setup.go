package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Seed from the file, not the environment, so env overrides are not persisted
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	vals := tui.SetupValuesFrom(cfg)
	if err := tui.NewSetupForm(&vals, config.DefaultLimits).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	saved, err := tui.SaveSetup(vals)
	if err != nil {
		return err
	}
	zap.L().Debug("config saved", zap.String("path", config.Path()), zap.String("theme", saved.Appearance.Theme))

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `tripcost setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
