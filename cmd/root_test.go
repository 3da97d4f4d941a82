package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/tripcost/internal/config"
)

// resetFlags puts every persistent flag back to its default and unmarks it.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
		appCfg, appEnv = config.DefaultConfig(), config.Env{}
	})
}

func TestSetup_Precedence(t *testing.T) {
	cases := []struct {
		name  string
		file  string
		env   map[string]string
		args  []string
		check func(t *testing.T)
	}{
		{
			name: "built-in defaults",
			check: func(t *testing.T) {
				assert.Equal(t, 6, flagPeople)
				assert.Equal(t, 7, flagDays)
				assert.Equal(t, "€", flagCurrency)
				assert.Equal(t, "en", flagLabels)
			},
		},
		{
			name: "file over defaults",
			file: "[defaults]\npeople = 10\ndays = 9\n\n[display]\ncurrency = \"CHF\"\nlabels = \"de\"\n",
			check: func(t *testing.T) {
				assert.Equal(t, 10, flagPeople)
				assert.Equal(t, 9, flagDays)
				assert.Equal(t, "CHF", flagCurrency)
				assert.Equal(t, "de", flagLabels)
			},
		},
		{
			name: "env over file",
			file: "[defaults]\npeople = 10\ndays = 9\n\n[display]\ncurrency = \"CHF\"\nlabels = \"de\"\n",
			env:  map[string]string{"TRIPCOST_PEOPLE": "5", "TRIPCOST_CURRENCY": "$"},
			check: func(t *testing.T) {
				assert.Equal(t, 5, flagPeople)
				assert.Equal(t, 9, flagDays)
				assert.Equal(t, "$", flagCurrency)
				assert.Equal(t, "de", flagLabels)
			},
		},
		{
			name: "explicit flags over env and file",
			file: "[defaults]\npeople = 10\ndays = 9\n\n[display]\ncurrency = \"CHF\"\nlabels = \"de\"\n",
			env:  map[string]string{"TRIPCOST_PEOPLE": "5", "TRIPCOST_DAYS": "8", "TRIPCOST_CURRENCY": "$"},
			args: []string{"--people", "4", "--labels", "en"},
			check: func(t *testing.T) {
				assert.Equal(t, 4, flagPeople)
				assert.Equal(t, 8, flagDays)
				assert.Equal(t, "$", flagCurrency)
				assert.Equal(t, "en", flagLabels)
			},
		},
		{
			name: "bad env keeps file",
			file: "[defaults]\npeople = 10\n\n[rates]\nski_per_day = 45.0\n",
			env:  map[string]string{"TRIPCOST_DAYS": "ten"},
			check: func(t *testing.T) {
				assert.Equal(t, 10, flagPeople)
				assert.Equal(t, 7, flagDays)
				assert.Equal(t, "45", appCfg.EffectiveRates().SkiPerDay.String())
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resetFlags(t)
			dir := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", dir)
			if c.file != "" {
				require.NoError(t, os.MkdirAll(filepath.Join(dir, "tripcost"), 0o755))
				require.NoError(t, os.WriteFile(config.Path(), []byte(c.file), 0o600))
			}
			for k, v := range c.env {
				t.Setenv(k, v)
			}

			require.NoError(t, rootCmd.ParseFlags(c.args))
			require.NoError(t, setup(rootCmd, nil))
			t.Cleanup(restoreLogger)

			c.check(t)
		})
	}
}
