package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Workout list"},
		{"3", "Training load history"},
		{"4 or s", "Sync screen"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	}))

	sections = append(sections, m.renderSection("Lists", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"pgdn / pgup", "Page"},
		{"r", "Refresh"},
	}))

	sections = append(sections, m.renderSection("Sync Screen", []keyHelp{
		{"s / enter", "Start sync"},
	}))

	sections = append(sections, m.renderMetricsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderMetricsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Metrics Explained"))
	lines = append(lines, "")

	metrics := []struct {
		name string
		desc string
	}{
		{"Stress Score", "Per-workout load: duration x intensity squared, plus elevation."},
		{"Fitness (CTL)", "Chronic training load - 42 day weighted average of stress."},
		{"Fatigue (ATL)", "Acute training load - 7 day weighted average of stress."},
		{"Form (TSB)", "Fitness minus fatigue. Positive = fresh, very negative = overreached."},
		{"Threshold Pace", "One-hour race pace. Configured, or estimated from tempo/race efforts."},
	}

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	for _, metric := range metrics {
		lines = append(lines, "  "+helpKeyStyle.Render(metric.name))
		lines = append(lines, "  "+mutedStyle.Render(metric.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
