// Package cmd implements the tripcost CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/logging"
	"github.com/theirongolddev/tripcost/internal/model"
)

var (
	flagPeople     int
	flagDays       int
	flagSkiDays    int
	flagActivities float64
	flagCurrency   string
	flagLabels     string
	flagVerbose    bool
)

// appCfg is the effective config (file + environment) of this invocation.
var (
	appCfg        = config.DefaultConfig()
	appEnv        config.Env
	restoreLogger = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "tripcost",
	Short: "Group trip cost calculator",
	Long: "Estimate rental car, lodging, food, ski and activity costs for a group trip,\n" +
		"as group totals and per person, with a min/max range per category.",
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runEstimate,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaults := config.DefaultConfig()

	rootCmd.PersistentFlags().IntVarP(&flagPeople, "people", "p", defaults.Defaults.People, "Number of people (3-12)")
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", defaults.Defaults.Days, "Trip length in days (7-14)")
	rootCmd.PersistentFlags().IntVarP(&flagSkiDays, "ski-days", "s", defaults.Defaults.SkiDays, "Ski days (0-days)")
	rootCmd.PersistentFlags().Float64VarP(&flagActivities, "activities", "a", defaults.Defaults.Activities, "Activities budget, group total")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", defaults.Display.Currency, "Currency symbol shown after amounts")
	rootCmd.PersistentFlags().StringVar(&flagLabels, "labels", defaults.Display.Labels, "Category label language (en, de)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
}

// setup loads config and environment, fills every flag the user did not set
// from them, and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, env, err := config.LoadEffective()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config partly unavailable (%v), using what could be read\n", err)
	}
	appCfg, appEnv = cfg, env

	if err := installLogger(cmd); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("people") {
		flagPeople = cfg.Defaults.People
	}
	if !flags.Changed("days") {
		flagDays = cfg.Defaults.Days
	}
	if !flags.Changed("ski-days") {
		flagSkiDays = cfg.Defaults.SkiDays
	}
	if !flags.Changed("activities") {
		flagActivities = cfg.Defaults.Activities
	}
	if !flags.Changed("currency") {
		flagCurrency = cfg.Display.Currency
	}
	if !flags.Changed("labels") {
		flagLabels = cfg.Display.Labels
	}

	zap.L().Debug("configuration resolved",
		zap.String("config_path", config.Path()),
		zap.Bool("config_file", config.Exists()),
		zap.Int("people", flagPeople),
		zap.Int("days", flagDays),
		zap.Int("ski_days", flagSkiDays),
		zap.Float64("activities", flagActivities),
	)
	return nil
}

// installLogger writes to stderr for one-shot commands. The TUI owns the
// terminal, so it only logs when TRIPCOST_LOG_FILE names a file.
func installLogger(cmd *cobra.Command) error {
	level := appEnv.LogLevel
	if level == "" {
		level = "info"
	}
	if flagVerbose {
		level = "debug"
	}

	var outputs []string
	if cmd.Name() == tuiCmd.Name() {
		if appEnv.LogFile == "" {
			restoreLogger = zap.ReplaceGlobals(zap.NewNop())
			return nil
		}
		outputs = []string{appEnv.LogFile}
	}

	restore, err := logging.Install(level, outputs...)
	if err != nil {
		return err
	}
	restoreLogger = restore
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	restoreLogger()
	return nil
}

// tripInputs builds and validates the inputs given on the command line.
func tripInputs() (model.TripInputs, error) {
	in := model.NewTripInputs(flagPeople, flagDays, flagSkiDays, flagActivities)
	if err := config.DefaultLimits.Validate(in); err != nil {
		return in, fmt.Errorf("invalid trip: %w", err)
	}
	return in, nil
}
