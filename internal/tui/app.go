package tui

import (
	"github.com/nrtang/ai-fitness-coach/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenWorkouts
	ScreenHistory
	ScreenSync
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	dashboard  DashboardModel
	workouts   WorkoutsModel
	history    HistoryModel
	syncScreen SyncModel
	help       HelpModel

	// Services
	loadService *service.LoadService
	syncService *service.SyncService
	units       Units

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(loadService *service.LoadService, syncService *service.SyncService, units Units) *App {
	return &App{
		screen:      ScreenDashboard,
		loadService: loadService,
		syncService: syncService,
		units:       units,
		dashboard:   NewDashboardModel(loadService, units),
		workouts:    NewWorkoutsModel(loadService, units),
		history:     NewHistoryModel(loadService, 0, 0),
		syncScreen:  NewSyncModel(syncService),
		help:        NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings (unless a sync is running)
		if a.screen != ScreenSync || !a.syncScreen.syncing {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenDashboard
				a.dashboard = NewDashboardModel(a.loadService, a.units)
				return a, a.dashboard.Init()
			case "2":
				a.screen = ScreenWorkouts
				return a, a.workouts.Init()
			case "3":
				a.screen = ScreenHistory
				a.history = NewHistoryModel(a.loadService, a.width, a.height)
				return a, a.history.Init()
			case "4", "s":
				if a.screen != ScreenSync {
					a.screen = ScreenSync
					return a, a.syncScreen.Init()
				}
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case SyncCompleteMsg:
		// Refresh dashboard after sync
		a.screen = ScreenDashboard
		a.dashboard = NewDashboardModel(a.loadService, a.units)
		return a, a.dashboard.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenDashboard:
		var m tea.Model
		m, cmd = a.dashboard.Update(msg)
		a.dashboard = m.(DashboardModel)
	case ScreenWorkouts:
		var m tea.Model
		m, cmd = a.workouts.Update(msg)
		a.workouts = m.(WorkoutsModel)
	case ScreenHistory:
		var m tea.Model
		m, cmd = a.history.Update(msg)
		a.history = m.(HistoryModel)
	case ScreenSync:
		var m tea.Model
		m, cmd = a.syncScreen.Update(msg)
		a.syncScreen = m.(SyncModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := headerStyle.Render("AI Fitness Coach")
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenWorkouts:
		content = a.workouts.View()
	case ScreenHistory:
		content = a.history.View()
	case ScreenSync:
		content = a.syncScreen.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Dashboard", ScreenDashboard},
		{"2", "Workouts", ScreenWorkouts},
		{"3", "History", ScreenHistory},
		{"4", "Sync", ScreenSync},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

// SyncCompleteMsg is sent when sync finishes
type SyncCompleteMsg struct{}
