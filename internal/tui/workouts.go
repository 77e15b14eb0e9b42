package tui

import (
	"fmt"

	"github.com/nrtang/ai-fitness-coach/internal/service"
	"github.com/nrtang/ai-fitness-coach/internal/workout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WorkoutsModel is the workout list screen model
type WorkoutsModel struct {
	loadService *service.LoadService
	units       Units
	workouts    []workout.Workout
	cursor      int
	offset      int
	total       int
	pageSize    int
	loading     bool
	err         error
}

// NewWorkoutsModel creates a new workouts model
func NewWorkoutsModel(ls *service.LoadService, units Units) WorkoutsModel {
	return WorkoutsModel{
		loadService: ls,
		units:       units,
		pageSize:    15,
		loading:     true,
	}
}

// Init initializes the workouts screen
func (m WorkoutsModel) Init() tea.Cmd {
	return m.loadPage
}

type workoutsLoadedMsg struct {
	workouts []workout.Workout
	total    int
	err      error
}

func (m WorkoutsModel) loadPage() tea.Msg {
	workouts, err := m.loadService.WorkoutsPage(m.pageSize, m.offset)
	if err != nil {
		return workoutsLoadedMsg{err: err}
	}

	total, err := m.loadService.WorkoutCount()
	if err != nil {
		return workoutsLoadedMsg{err: err}
	}

	return workoutsLoadedMsg{workouts: workouts, total: total}
}

// Update handles messages
func (m WorkoutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workoutsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.workouts = msg.workouts
		m.total = msg.total
		if m.cursor >= len(m.workouts) && len(m.workouts) > 0 {
			m.cursor = len(m.workouts) - 1
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else if m.offset > 0 {
				m.offset -= m.pageSize
				m.cursor = m.pageSize - 1
				m.loading = true
				return m, m.loadPage
			}
		case "down", "j":
			if m.cursor < len(m.workouts)-1 {
				m.cursor++
			} else if m.offset+m.pageSize < m.total {
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "pgup":
			if m.offset > 0 {
				m.offset -= m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "pgdown":
			if m.offset+m.pageSize < m.total {
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "r":
			m.loading = true
			return m, m.loadPage
		}
	}
	return m, nil
}

// View renders the workout list
func (m WorkoutsModel) View() string {
	if m.loading {
		return "\n  Loading workouts..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.workouts) == 0 {
		return "\n  No workouts yet. Press 's' to sync with Strava."
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %-12s  %10s  %8s  %9s  %6s",
		"Date", "Type", "Distance", "Time", "Pace", "HR"))

	rows := []string{header}
	for i, w := range m.workouts {
		hr := "-"
		if w.Metrics.AverageHeartrate != nil {
			hr = fmt.Sprintf("%.0f", *w.Metrics.AverageHeartrate)
		}

		line := fmt.Sprintf("%-10s  %-12s  %10s  %8s  %9s  %6s",
			w.Date.Format("Jan 02"),
			string(w.RunType),
			m.units.FormatDistance(w.Metrics.Distance),
			m.units.FormatDuration(w.Metrics.MovingTime),
			m.units.FormatPace(w.Metrics.Speed()),
			hr,
		)

		if i == m.cursor {
			rows = append(rows, tableSelectedStyle.Render(line))
		} else {
			rows = append(rows, tableRowStyle.Render(line))
		}
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)

	page := m.offset/m.pageSize + 1
	pages := (m.total + m.pageSize - 1) / m.pageSize
	footer := statusStyle.Render(fmt.Sprintf("  Page %d/%d (%d workouts)  j/k: move  pgup/pgdn: page  r: refresh", page, pages, m.total))

	return lipgloss.JoinVertical(lipgloss.Left, table, footer)
}
