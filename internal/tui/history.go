package tui

import (
	"fmt"
	"strings"

	"github.com/nrtang/ai-fitness-coach/internal/service"
	"github.com/nrtang/ai-fitness-coach/internal/trainingload"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HistoryModel is the training-load history screen model.
// It shows the full daily trajectory in a scrollable viewport
type HistoryModel struct {
	loadService *service.LoadService
	history     []trainingload.TrainingLoad
	viewport    viewport.Model
	loading     bool
	err         error
	width       int
	height      int
	ready       bool
}

// NewHistoryModel creates a new history model
func NewHistoryModel(ls *service.LoadService, width, height int) HistoryModel {
	m := HistoryModel{
		loadService: ls,
		loading:     true,
		width:       width,
		height:      height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the history screen
func (m HistoryModel) Init() tea.Cmd {
	return m.loadHistory
}

type historyLoadedMsg struct {
	history []trainingload.TrainingLoad
	err     error
}

func (m HistoryModel) loadHistory() tea.Msg {
	history, err := m.loadService.LoadHistory()
	return historyLoadedMsg{history: history, err: err}
}

// Update handles messages
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.history = msg.history
		if m.ready {
			m.viewport.SetContent(m.renderContent())
			m.viewport.GotoBottom()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.history != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadHistory
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the history screen
func (m HistoryModel) View() string {
	if m.loading {
		return "\n  Loading history..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.history) == 0 {
		return "\n  No workouts yet. Press 's' to sync with Strava."
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  r: refresh")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m HistoryModel) renderContent() string {
	var lines []string

	title := cardTitleStyle.Render("Daily Training Load")
	lines = append(lines, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("%-12s  %7s  %8s  %8s  %7s",
		"Date", "Stress", "Fitness", "Fatigue", "Form"))
	lines = append(lines, header)

	for _, day := range m.history {
		line := fmt.Sprintf("%-12s  %7.0f  %8.1f  %8.1f  %+7.1f",
			day.Date.Format("2006-01-02"),
			day.Score,
			day.Fitness,
			day.Fatigue,
			day.Form,
		)
		lines = append(lines, tableRowStyle.Render(line))
	}

	return strings.Join(lines, "\n")
}
