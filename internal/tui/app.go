// Package tui provides the interactive Bubble Tea calculator for tripcost.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/theirongolddev/tripcost/internal/cli"
	"github.com/theirongolddev/tripcost/internal/config"
	"github.com/theirongolddev/tripcost/internal/estimate"
	"github.com/theirongolddev/tripcost/internal/model"
	"github.com/theirongolddev/tripcost/internal/tui/components"
	"github.com/theirongolddev/tripcost/internal/tui/theme"
)

// Options configure a new App.
type Options struct {
	Inputs    model.TripInputs
	Limits    config.Limits
	Rates     config.Rates
	Labels    string // category label language
	Currency  string
	NeedSetup bool // show the first-run form before the calculator
}

// App is the root Bubble Tea model.
type App struct {
	// Inputs and the breakdown derived from them
	inputs    model.TripInputs
	initial   model.TripInputs
	limits    config.Limits
	est       *estimate.Estimator
	breakdown model.CostBreakdown
	chart     []model.StackedBarRow

	lang   string
	symbol string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	focus     field
	help      help.Model

	// Typed activities amount
	editing  bool
	amountIn textinput.Model
	editErr  string

	// First-run setup (huh form). setupVals is a pointer because the
	// form keeps writing into it while App is passed by value.
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool
	setupErr  error
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 160

	minContentHeight = 5
	minChartHeight   = 6
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	a := App{
		inputs:    opts.Inputs,
		initial:   opts.Inputs,
		limits:    opts.Limits,
		est:       estimate.New(estimate.WithRates(opts.Rates)),
		lang:      opts.Labels,
		symbol:    opts.Currency,
		help:      help.New(),
		needSetup: opts.NeedSetup,
	}
	a.recompute()

	if a.needSetup {
		cfg := config.DefaultConfig()
		cfg.Defaults.People = a.inputs.People
		cfg.Defaults.Days = a.inputs.Days
		cfg.Defaults.SkiDays = a.inputs.SkiDays
		cfg.Defaults.Activities = a.inputs.Activities.InexactFloat64()
		cfg.Display.Currency = a.symbol
		cfg.Display.Labels = a.lang
		cfg.Appearance.Theme = theme.Active.Name
		vals := SetupValuesFrom(cfg)
		a.setupVals = &vals
		a.setupForm = NewSetupForm(a.setupVals, a.limits)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// recompute clamps the inputs and rebuilds the breakdown from scratch.
func (a *App) recompute() {
	a.inputs = a.limits.Clamp(a.inputs)
	a.breakdown = a.est.Compute(a.inputs)
	a.chart = estimate.StackedRows(a.breakdown)

	zap.L().Debug("recomputed",
		zap.Int("people", a.inputs.People),
		zap.Int("days", a.inputs.Days),
		zap.Int("ski_days", a.inputs.SkiDays),
		zap.Stringer("activities", a.inputs.Activities),
		zap.Stringer("total_max", a.breakdown.Total().TotalMax),
	)
}

// adjust moves the focused input by dir steps.
func (a *App) adjust(dir int) {
	switch a.focus {
	case fieldPeople:
		a.inputs.People += dir
	case fieldDays:
		a.inputs.Days += dir
	case fieldSkiDays:
		a.inputs.SkiDays += dir
	case fieldActivities:
		step := decimal.NewFromInt(int64(dir * a.limits.ActivitiesStep))
		a.inputs.Activities = a.inputs.Activities.Add(step)
	}
	a.recompute()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.editing || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.adjust(1)
		case tea.MouseButtonWheelDown:
			a.adjust(-1)
		case tea.MouseButtonLeft:
			// Tab bar is the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if a.editing {
			return a.updateAmountInput(msg)
		}

		if key.Matches(msg, keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Up):
			a.focus = (a.focus - 1 + fieldCount) % fieldCount
		case key.Matches(msg, keys.Down):
			a.focus = (a.focus + 1) % fieldCount
		case key.Matches(msg, keys.Dec):
			a.adjust(-1)
		case key.Matches(msg, keys.Inc):
			a.adjust(1)
		case key.Matches(msg, keys.Reset):
			a.inputs = a.initial
			a.recompute()
		case key.Matches(msg, keys.Edit):
			if a.focus == fieldActivities {
				return a.startAmountEdit()
			}
		case key.Matches(msg, keys.NextTab):
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case key.Matches(msg, keys.TableTab, keys.ChartTab, keys.RatesTab):
			if idx := components.TabIdxByKey([]rune(msg.String())[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	// Forward unhandled messages (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.editing {
		var cmd tea.Cmd
		a.amountIn, cmd = a.amountIn.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		cfg, err := SaveSetup(*a.setupVals)
		a.setupErr = err
		if err != nil {
			zap.L().Warn("saving setup failed", zap.Error(err))
		}
		a.applySetup(cfg)
		a.needSetup = false
		a.setupForm = nil
		return a, nil

	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// applySetup adopts the answers of the setup form for this session.
func (a *App) applySetup(cfg config.Config) {
	theme.SetActive(cfg.Appearance.Theme)
	a.lang = cfg.Display.Labels
	a.symbol = cfg.Display.Currency
	a.inputs = model.NewTripInputs(cfg.Defaults.People, cfg.Defaults.Days, cfg.Defaults.SkiDays, cfg.Defaults.Activities)
	a.recompute()
	a.initial = a.inputs
}

func (a App) startAmountEdit() (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = "amount"
	ti.CharLimit = 24
	ti.Width = 14
	ti.SetValue(a.inputs.Activities.String())
	ti.CursorEnd()
	ti.Focus()

	a.amountIn = ti
	a.editing = true
	a.editErr = ""
	return a, textinput.Blink
}

func (a App) updateAmountInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v, err := parseActivities(a.amountIn.Value())
		if err != nil {
			a.editErr = err.Error()
			return a, nil
		}
		a.inputs.Activities = v
		a.editing = false
		a.editErr = ""
		a.recompute()
		return a, nil

	case "esc":
		a.editing = false
		a.editErr = ""
		return a, nil
	}

	var cmd tea.Cmd
	a.amountIn, cmd = a.amountIn.Update(msg)
	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  tripcost needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	h := a.help
	h.ShowAll = true

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(h.View(keys))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Mouse wheel adjusts the focused input. Press any key to close."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar
	header := components.RenderTabBar(a.activeTab, w)

	// 2. Status bar
	total := a.breakdown.Total()
	info := fmt.Sprintf("%d car(s) │ %s – %s p.p.",
		a.breakdown.CarsNeeded,
		cli.FormatMoney(total.PerPersonMin, a.symbol),
		cli.FormatMoney(total.PerPersonMax, a.symbol))
	if a.setupErr != nil {
		info = "config not saved │ " + info
	}
	statusBar := components.RenderStatusBar(w, a.help.ShortHelpView(keys.ShortHelp()), info)

	// 3. Content zone height
	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	// 4. Inputs card, then the tab content below it
	inputs := a.renderInputsCard(cw)
	restH := max(contentH-lipgloss.Height(inputs), minContentHeight)

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderTableTab(cw)
	case 1:
		content = a.renderChartTab(cw, restH)
	case 2:
		content = a.renderRatesTab(cw)
	}
	content = inputs + "\n" + content

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center the content column when the terminal is wider
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the widths used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
