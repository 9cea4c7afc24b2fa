package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/hit-calc/internal/state"
	"github.com/rovshanmuradov/hit-calc/internal/ui"
	"github.com/rovshanmuradov/hit-calc/internal/ui/component"
	"github.com/rovshanmuradov/hit-calc/internal/ui/router"
	"github.com/rovshanmuradov/hit-calc/internal/ui/screen"
	"github.com/rovshanmuradov/hit-calc/internal/ui/style"
)

const (
	title    = "H-IT"
	subtitle = "CRYPTO TRADING TOOLS"
)

// headerHeight is the number of lines View draws above the router
const headerHeight = 7

// Model is the root bubbletea model. It owns the header and navigation
// tabs and routes everything else to the screen stack.
type Model struct {
	router    *router.Router
	container *state.Container
	keyMap    ui.KeyMap
	logger    *zap.Logger

	nav   *component.Tabs
	route ui.Route

	width  int
	height int
}

// New creates the application model showing the view persisted in c
func New(c *state.Container, logger *zap.Logger) *Model {
	m := &Model{
		container: c,
		keyMap:    ui.DefaultKeyMap(),
		logger:    logger.Named("ui"),
		nav:       component.NewTabs("LEVERAGE CALC", "AVG PRICE (DCA)"),
	}

	m.route = ui.RouteForView(c.Snapshot().View)
	m.router = router.New(m.screenFor(m.route))
	m.nav.SetActive(int(m.route))
	return m
}

// Init initializes the application
func (m *Model) Init() tea.Cmd {
	return m.router.Init()
}

// Update handles application-level updates
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.router.SetSize(msg.Width, max(msg.Height-headerHeight, 0))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.Quit) {
			m.logger.Info("Quit requested")
			return m, tea.Quit
		}

		// View switching is disabled while a dialog is open
		if !m.router.CanGoBack() {
			switch {
			case key.Matches(msg, m.keyMap.ViewLeverage):
				return m, m.navigate(ui.RouteLeverage)
			case key.Matches(msg, m.keyMap.ViewAverage):
				return m, m.navigate(ui.RouteAverage)
			}
		}

	case ui.RouterMsg:
		return m, m.navigate(msg.To)

	case ui.ConfirmRequestMsg:
		return m, m.router.Push(screen.NewConfirmScreen(msg.Prompt, msg.OnConfirm))

	case ui.BackMsg:
		return m, m.router.Pop()
	}

	var cmd tea.Cmd
	m.router, cmd = m.router.Update(msg)
	return m, cmd
}

// View renders the application
func (m *Model) View() string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		style.TitleStyle.Render(title),
		style.SubtitleStyle.Render(subtitle),
		m.nav.View(),
	)
	if m.width > 0 {
		header = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, header)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.router.View())
}

// Route returns the active top-level route
func (m *Model) Route() ui.Route {
	return m.route
}

// Router exposes the screen stack
func (m *Model) Router() *router.Router {
	return m.router
}

// navigate switches the top-level view and records it in the state
func (m *Model) navigate(route ui.Route) tea.Cmd {
	view, ok := ui.ViewForRoute(route)
	if !ok {
		m.logger.Warn("Ignoring navigation to non top-level route", zap.Stringer("route", route))
		return nil
	}
	if route == m.route && !m.router.CanGoBack() {
		return nil
	}

	m.container.SetView(view)
	m.route = route
	m.nav.SetActive(int(route))
	m.logger.Debug("View switched", zap.Stringer("route", route))
	return m.router.Replace(m.screenFor(route))
}

func (m *Model) screenFor(route ui.Route) router.Screen {
	if route == ui.RouteAverage {
		return screen.NewAverageScreen(m.container, m.logger)
	}
	return screen.NewLeverageScreen(m.container, m.logger)
}
