package tui

import (
	"fmt"

	"github.com/nrtang/ai-fitness-coach/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	loadService *service.LoadService
	units       Units
	data        *service.DashboardData
	loading     bool
	err         error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(ls *service.LoadService, units Units) DashboardModel {
	return DashboardModel{
		loadService: ls,
		units:       units,
		loading:     true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.loadService.GetDashboardData()
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	return dashboardDataMsg{data: data}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil || !m.data.HasData {
		return "\n  No workouts yet. Press 's' to sync with Strava."
	}

	var sections []string

	// Top row: Training Load and This Week side by side
	loadCard := m.renderLoadCard()
	weekCard := m.renderWeekCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, loadCard, "  ", weekCard)
	sections = append(sections, topRow)

	if len(m.data.LoadHistory) > 2 {
		sections = append(sections, m.renderChart())
	}

	sections = append(sections, m.renderRecentWorkouts())

	help := statusStyle.Render("Press 'r' to refresh, 's' to sync, '2' for workout list")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderLoadCard() string {
	title := cardTitleStyle.Render("Training Load")

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	lines := []string{
		RenderMetric("Fitness (CTL)", fmt.Sprintf("%.1f", m.data.CurrentFitness)),
		RenderMetric("Fatigue (ATL)", fmt.Sprintf("%.1f", m.data.CurrentFatigue)),
		RenderForm("Form (TSB)", m.data.CurrentForm, fmt.Sprintf("%+.1f", m.data.CurrentForm)),
		"",
		mutedStyle.Render(m.data.FormDescription),
		"",
		mutedStyle.Render(m.renderThreshold()),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(42).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderThreshold() string {
	switch m.data.ThresholdSource {
	case service.ThresholdConfigured:
		return "Threshold pace " + m.units.FormatPace(m.data.ThresholdPace) + " (configured)"
	case service.ThresholdEstimated:
		return "Threshold pace " + m.units.FormatPace(m.data.ThresholdPace) + " (estimated)"
	default:
		return "Threshold pace unknown - scoring by duration"
	}
}

func (m DashboardModel) renderWeekCard() string {
	title := cardTitleStyle.Render("This Week")

	lines := []string{
		RenderMetric("Runs", fmt.Sprintf("%d", m.data.WeekRunCount)),
		RenderMetric("Distance", m.units.FormatDistance(m.data.WeekDistance)),
		RenderMetric("Time", m.units.FormatDuration(m.data.WeekTime)),
		RenderMetric("Stress", fmt.Sprintf("%.0f", m.data.WeekStress)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(32).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderChart() string {
	title := cardTitleStyle.Render("Fitness & Fatigue - Last 90 Days")

	fitness := make([]float64, len(m.data.LoadHistory))
	fatigue := make([]float64, len(m.data.LoadHistory))
	for i, day := range m.data.LoadHistory {
		fitness[i] = day.Fitness
		fatigue[i] = day.Fatigue
	}

	graph := asciigraph.PlotMany([][]float64{fitness, fatigue},
		asciigraph.Height(8),
		asciigraph.Width(64),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
	)

	legend := lipgloss.JoinHorizontal(lipgloss.Left,
		successStyle.Render("── fitness"),
		"   ",
		errorStyle.Render("── fatigue"),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, legend))
}

func (m DashboardModel) renderRecentWorkouts() string {
	title := cardTitleStyle.Render("Recent Workouts")

	if len(m.data.RecentWorkouts) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No workouts yet"))
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %-12s  %10s  %8s  %9s",
		"Date", "Type", "Distance", "Time", "Pace"))

	rows := []string{header}
	for i, w := range m.data.RecentWorkouts {
		if i >= 5 {
			break
		}

		row := tableRowStyle.Render(fmt.Sprintf("%-10s  %-12s  %10s  %8s  %9s",
			w.Date.Format("Jan 02"),
			string(w.RunType),
			m.units.FormatDistance(w.Metrics.Distance),
			m.units.FormatDuration(w.Metrics.MovingTime),
			m.units.FormatPace(w.Metrics.Speed()),
		))
		rows = append(rows, row)
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}
