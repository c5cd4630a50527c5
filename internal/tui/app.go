// Package tui provides the interactive Bubble Tea dashboard for runway.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theledgerdev/runway/internal/config"
	"github.com/theledgerdev/runway/internal/engine"
	"github.com/theledgerdev/runway/internal/model"
	"github.com/theledgerdev/runway/internal/store"
	"github.com/theledgerdev/runway/internal/tui/components"
	"github.com/theledgerdev/runway/internal/tui/theme"
)

// DataLoadedMsg is sent when the analysis pass and store reads finish.
type DataLoadedMsg struct {
	Report    *engine.BurnReport
	Alerts    []engine.Alert
	Scenarios []model.Scenario
	Err       error
}

// AlertsUpdatedMsg is sent after an acknowledge round-trips the store.
type AlertsUpdatedMsg struct {
	Alerts []engine.Alert
}

// App is the root Bubble Tea model.
type App struct {
	// Analysis inputs
	input    engine.AnalyzeInput
	scenario string // active scenario label for the alert store

	// Data
	report    *engine.BurnReport
	alerts    []engine.Alert
	scenarios []model.Scenario
	loaded    bool
	loadErr   error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab cursors
	alertCursor    int
	scenarioCursor int
	projScroll     int

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

const (
	minTerminalWidth = 72
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(in engine.AnalyzeInput, scenario string) App {
	return App{
		input:     in,
		scenario:  scenario,
		needSetup: !config.Exists(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return loadDataCmd(a.input, a.scenario)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit

		case "r":
			a.loaded = false
			return a, loadDataCmd(a.input, a.scenario)

		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil

		case "j", "down":
			switch a.activeTab {
			case 1:
				a.projScroll++
			case 2:
				if a.alertCursor < len(a.alerts)-1 {
					a.alertCursor++
				}
			case 3:
				if a.scenarioCursor < len(a.scenarios)-1 {
					a.scenarioCursor++
				}
			}
			return a, nil

		case "k", "up":
			switch a.activeTab {
			case 1:
				if a.projScroll > 0 {
					a.projScroll--
				}
			case 2:
				if a.alertCursor > 0 {
					a.alertCursor--
				}
			case 3:
				if a.scenarioCursor > 0 {
					a.scenarioCursor--
				}
			}
			return a, nil

		case "g":
			a.projScroll = 0
			a.alertCursor = 0
			a.scenarioCursor = 0
			return a, nil

		case "enter":
			switch a.activeTab {
			case 2:
				if a.alertCursor < len(a.alerts) {
					return a, ackAlertCmd(a.scenario, a.alerts[a.alertCursor].ID)
				}
			case 3:
				if a.scenarioCursor < len(a.scenarios) {
					sc := a.scenarios[a.scenarioCursor]
					a.input.Params = sc.Params
					if sc.NetRevenueRetention != nil {
						a.input.NetRevenueRetention = sc.NetRevenueRetention
					}
					a.scenario = sc.Name
					a.loaded = false
					a.activeTab = 0
					return a, loadDataCmd(a.input, a.scenario)
				}
			}
			return a, nil
		}

		if idx := components.TabIdxByKey(firstRune(key)); idx >= 0 {
			a.activeTab = idx
		}
		return a, nil

	case DataLoadedMsg:
		a.report = msg.Report
		a.alerts = msg.Alerts
		a.scenarios = msg.Scenarios
		a.loadErr = msg.Err
		a.loaded = true
		a.alertCursor = 0
		a.projScroll = 0

		if a.needSetup {
			a.setupForm = newSetupForm(&a.setupVals, a.input.Params)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case AlertsUpdatedMsg:
		a.alerts = msg.Alerts
		if a.alertCursor >= len(a.alerts) {
			a.alertCursor = len(a.alerts) - 1
		}
		if a.alertCursor < 0 {
			a.alertCursor = 0
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		if params, ok := a.saveSetupConfig(); ok {
			a.input.Params = params
		}
		a.needSetup = false
		a.setupForm = nil
		a.loaded = false
		return a, loadDataCmd(a.input, a.scenario)
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return ""
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
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  runway needs at least %d columns.\n",
		a.width, minTerminalWidth,
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

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o p a s", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move cursor / scroll"},
		{"Enter", "Acknowledge alert / Load scenario"},
		{"r", "Re-run analysis"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)
	accentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := pillStyle.Render(" ") + accentStyle.Render(a.scenario)
	pillRowStyle := lipgloss.NewStyle().Background(t.Surface).Width(w)

	header := components.RenderTabBar(a.activeTab) + "\n" + pillRowStyle.Render(pill)

	right := ""
	if a.report != nil {
		right = fmt.Sprintf("Grade %s · %s", a.report.Health.Grade, a.report.Health.Label)
	}
	statusBar := components.RenderStatusBar(w, right)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	if a.loadErr != nil {
		content = fmt.Sprintf("\n  Analysis failed: %v\n", a.loadErr)
	} else {
		switch a.activeTab {
		case 0:
			content = a.renderOverviewTab(cw)
		case 1:
			content = a.renderProjectionTab(cw, contentH)
		case 2:
			content = a.renderAlertsTab(cw, contentH)
		case 3:
			content = a.renderScenariosTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Commands ───────────────────────────────────────────────────

// loadDataCmd runs the analysis and syncs the alert store. Store errors
// degrade to an alert list straight from the engine; only engine errors
// surface as load failures.
func loadDataCmd(in engine.AnalyzeInput, scenario string) tea.Cmd {
	return func() tea.Msg {
		report, err := engine.AnalyzeBurn(in)
		if err != nil {
			return DataLoadedMsg{Err: err}
		}

		alerts := report.Alerts
		var scenarios []model.Scenario

		db, dbErr := store.Open(store.DefaultPath())
		if dbErr == nil {
			if err := db.ReplaceAlerts(scenario, report.Alerts); err == nil {
				if stored, err := db.ListAlerts(scenario); err == nil {
					alerts = stored
				}
			}
			scenarios, _ = db.ListScenarios()
			_ = db.Close()
		}

		return DataLoadedMsg{Report: report, Alerts: alerts, Scenarios: scenarios}
	}
}

// ackAlertCmd acknowledges one alert and reloads the stored list.
func ackAlertCmd(scenario, id string) tea.Cmd {
	return func() tea.Msg {
		db, err := store.Open(store.DefaultPath())
		if err != nil {
			return AlertsUpdatedMsg{}
		}
		defer db.Close()

		_ = db.AcknowledgeAlert(id)
		alerts, err := db.ListAlerts(scenario)
		if err != nil {
			return AlertsUpdatedMsg{}
		}
		return AlertsUpdatedMsg{Alerts: alerts}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

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

// fillLinesWithBackground pads each line to width w with background color
// so gaps between cards and empty lines keep the theme background.
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
