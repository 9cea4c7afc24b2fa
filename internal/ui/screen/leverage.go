package screen

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/hit-calc/internal/calc"
	"github.com/rovshanmuradov/hit-calc/internal/state"
	"github.com/rovshanmuradov/hit-calc/internal/ui"
	"github.com/rovshanmuradov/hit-calc/internal/ui/component"
	"github.com/rovshanmuradov/hit-calc/internal/ui/router"
	"github.com/rovshanmuradov/hit-calc/internal/ui/style"
)

// Leverage form field names
const (
	FieldBalance   = "balance"
	FieldRisk      = "risk"
	FieldEntry     = "entry"
	FieldStopLoss  = "stopLoss"
	FieldSLPercent = "slPercent"
)

// LeverageScreen is the position-size and leverage calculator
type LeverageScreen struct {
	width     int
	height    int
	keyMap    ui.KeyMap
	container *state.Container
	logger    *zap.Logger

	// UI components
	form    *component.Form
	tabs    *component.Tabs
	result  *component.ResultPanel
	helpBar *component.HelpBar
}

// NewLeverageScreen creates the leverage calculator bound to c
func NewLeverageScreen(c *state.Container, logger *zap.Logger) *LeverageScreen {
	keyMap := ui.DefaultKeyMap()

	s := &LeverageScreen{
		keyMap:    keyMap,
		container: c,
		logger:    logger.Named("leverage"),
		tabs:      component.NewTabs("PRICE ACTION", "PERCENTAGE"),
		result:    component.NewResultPanel("Target Leverage", calc.LeverageIdle),
		helpBar:   component.NewHelpBar().SetKeyBindings(keyMap.ContextualHelp(ui.RouteLeverage)),
	}
	s.buildForm()
	s.recompute()
	return s
}

// Init initializes the screen
func (s *LeverageScreen) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (s *LeverageScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, s.keyMap.ToggleMode) {
		s.toggleMode()
		return s, nil
	}

	name := s.form.Focused()
	before := s.form.Value(name)

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)

	// Focus moves never change a value, so compare against the same field
	if after := s.form.Value(name); after != before {
		if clean := s.store(name, after); clean != after {
			s.form.SetValue(name, clean)
		}
		s.recompute()
	}

	return s, cmd
}

// View renders the screen
func (s *LeverageScreen) View() string {
	snap := s.container.Snapshot()

	capital := lipgloss.JoinVertical(lipgloss.Left,
		style.SubtitleStyle.Render("01 // CAPITAL"),
		s.form.FieldView(FieldBalance),
		s.form.FieldView(FieldRisk),
	)

	var strategyFields []string
	if snap.Tab == calc.ModePercent {
		strategyFields = []string{s.form.FieldView(FieldSLPercent)}
	} else {
		strategyFields = []string{s.form.FieldView(FieldEntry), s.form.FieldView(FieldStopLoss)}
	}
	strategy := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{style.SubtitleStyle.Render("02 // STRATEGY")}, strategyFields...)...)

	inputs := style.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.tabs.View(),
		"",
		capital,
		"",
		strategy,
	))

	var body string
	if s.width > 0 && s.width < 90 {
		body = lipgloss.JoinVertical(lipgloss.Left, inputs, s.result.View())
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, inputs, "  ", s.result.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, s.helpBar.View())
}

// SetSize updates the screen size
func (s *LeverageScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.helpBar.SetWidth(width)

	if width > 0 && width < 90 {
		s.form.SetWidth(width - 16)
		s.result.SetWidth(width - 8)
	} else {
		s.form.SetWidth(28)
		s.result.SetWidth(36)
	}
}

// Form exposes the input form
func (s *LeverageScreen) Form() *component.Form {
	return s.form
}

// Result exposes the result panel
func (s *LeverageScreen) Result() *component.ResultPanel {
	return s.result
}

// toggleMode flips between the price and percent tabs. Each tab keeps its
// own balance and risk, so the form is rebuilt from the new tab's data.
func (s *LeverageScreen) toggleMode() {
	next := calc.ModePercent
	if s.container.Snapshot().Tab == calc.ModePercent {
		next = calc.ModePrice
	}
	s.container.SetTab(next)

	focus := s.form.FocusIndex()
	s.buildForm()
	s.form.FocusAt(focus)
	s.recompute()

	s.logger.Debug("Leverage tab switched", zap.String("tab", string(next)))
}

func (s *LeverageScreen) buildForm() {
	snap := s.container.Snapshot()
	tab := snap.ActiveTab()

	form := component.NewForm(s.keyMap.NextField, s.keyMap.PrevField).
		AddField(FieldBalance, "BALANCE", "$", component.ToneCapital, tab.Balance).
		AddField(FieldRisk, "RISK (1R)", "$", component.ToneRisk, tab.Risk)

	if snap.Tab == calc.ModePercent {
		form.AddField(FieldSLPercent, "STOP LOSS %", "%", component.ToneRisk, snap.SLPercent)
		form.SetPlaceholder(FieldSLPercent, "1.0")
		s.tabs.SetActive(1)
	} else {
		form.AddField(FieldEntry, "ENTRY", "$", component.ToneNeutral, snap.EntryPrice).
			AddField(FieldStopLoss, "STOP LOSS", "$", component.ToneRisk, snap.StopLossPrice)
		s.tabs.SetActive(0)
	}

	if s.form != nil {
		form.SetWidth(s.form.Width())
	}
	s.form = form
}

// store writes raw into the state field behind name and returns the
// sanitized value that was kept
func (s *LeverageScreen) store(name, raw string) string {
	switch name {
	case FieldBalance:
		return s.container.SetBalance(raw)
	case FieldRisk:
		return s.container.SetRisk(raw)
	case FieldEntry:
		return s.container.SetEntryPrice(raw)
	case FieldStopLoss:
		return s.container.SetStopLossPrice(raw)
	case FieldSLPercent:
		return s.container.SetSLPercent(raw)
	}
	return raw
}

func (s *LeverageScreen) recompute() {
	r := s.container.Leverage()
	if r == nil {
		s.result.Clear()
		return
	}
	s.result.Set(calc.FormatLeverage(r),
		component.ResultRow{Label: "Position Size", Value: calc.FormatPositionSize(r.PositionSize)},
		component.ResultRow{Label: "Risk Exposure", Value: calc.FormatPercent(r.RiskPercent), Risk: true},
	)
}
