package screen

import (
	"strconv"
	"strings"

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

// ClearPrompt is asked before every entry is dropped
const ClearPrompt = "Clear all entries?"

// entryRowHeight is how many terminal lines one entry row takes
const entryRowHeight = 4

// AmountField returns the form field name for an entry's invested amount
func AmountField(id string) string {
	return string(state.FieldAmount) + ":" + id
}

// TokensField returns the form field name for an entry's token count
func TokensField(id string) string {
	return string(state.FieldTokens) + ":" + id
}

// splitField reverses AmountField and TokensField
func splitField(name string) (state.EntryField, string, bool) {
	field, id, ok := strings.Cut(name, ":")
	if !ok {
		return "", "", false
	}
	return state.EntryField(field), id, true
}

// AverageScreen is the DCA average-price calculator
type AverageScreen struct {
	width     int
	height    int
	keyMap    ui.KeyMap
	container *state.Container
	logger    *zap.Logger

	// UI components
	form    *component.Form
	result  *component.ResultPanel
	helpBar *component.HelpBar

	// ids in display order, mirrors the container's entry list
	ids []string
}

// NewAverageScreen creates the DCA calculator bound to c
func NewAverageScreen(c *state.Container, logger *zap.Logger) *AverageScreen {
	keyMap := ui.DefaultKeyMap()

	s := &AverageScreen{
		keyMap:    keyMap,
		container: c,
		logger:    logger.Named("average"),
		result:    component.NewResultPanel("Average Price", calc.AverageIdle),
		helpBar:   component.NewHelpBar(),
	}
	s.buildForm()
	s.recompute()
	return s
}

// Init initializes the screen
func (s *AverageScreen) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (s *AverageScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.ClearEntriesMsg:
		s.container.ClearEntries()
		s.buildForm()
		s.recompute()
		s.logger.Info("DCA entries cleared")
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.AddEntry):
			id := s.container.AddEntry()
			s.buildForm()
			s.recompute()
			return s, s.form.Focus(AmountField(id))

		case key.Matches(msg, s.keyMap.RemoveEntry):
			return s, s.removeFocused()

		case key.Matches(msg, s.keyMap.ClearAll):
			return s, ui.RequestConfirm(ClearPrompt, ui.ClearEntriesMsg{})
		}
	}

	name := s.form.Focused()
	before := s.form.Value(name)

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)

	if after := s.form.Value(name); after != before {
		if field, id, ok := splitField(name); ok {
			clean, found := s.container.UpdateEntry(id, field, after)
			if !found {
				s.logger.Warn("Edited entry no longer exists", zap.String("id", id))
			} else if clean != after {
				s.form.SetValue(name, clean)
			}
		}
		s.recompute()
	}

	return s, cmd
}

// View renders the screen
func (s *AverageScreen) View() string {
	rows := make([]string, 0, len(s.ids)+2)
	rows = append(rows, style.SubtitleStyle.Render("ENTRIES // "+strconv.Itoa(len(s.ids))))

	first, last := s.visibleRange()
	if first > 0 {
		rows = append(rows, style.MutedStyle.Render("  ↑ "+strconv.Itoa(first)+" more"))
	}
	for _, id := range s.ids[first:last] {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			s.form.FieldView(AmountField(id)),
			"  ",
			s.form.FieldView(TokensField(id)),
		))
	}
	if last < len(s.ids) {
		rows = append(rows, style.MutedStyle.Render("  ↓ "+strconv.Itoa(len(s.ids)-last)+" more"))
	}

	inputs := style.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	var body string
	if s.width > 0 && s.width < 110 {
		body = lipgloss.JoinVertical(lipgloss.Left, inputs, s.result.View())
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, inputs, "  ", s.result.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, s.helpBar.View())
}

// SetSize updates the screen size
func (s *AverageScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.helpBar.SetWidth(width)

	if width > 0 && width < 110 {
		s.form.SetWidth(max((width-20)/2, 10))
		s.result.SetWidth(width - 8)
	} else {
		s.form.SetWidth(20)
		s.result.SetWidth(36)
	}
}

// Form exposes the input form
func (s *AverageScreen) Form() *component.Form {
	return s.form
}

// Result exposes the result panel
func (s *AverageScreen) Result() *component.ResultPanel {
	return s.result
}

// removeFocused drops the entry owning the focused field and keeps the
// focus on the row that slides into its place
func (s *AverageScreen) removeFocused() tea.Cmd {
	_, id, ok := splitField(s.form.Focused())
	if !ok {
		return nil
	}

	focus := s.form.FocusIndex()
	s.container.RemoveEntry(id)
	s.buildForm()
	s.recompute()

	s.logger.Debug("DCA entry removed", zap.String("id", id))
	return s.form.FocusAt(focus - focus%2)
}

// visibleRange picks the window of entries that fits the terminal and
// contains the focused one
func (s *AverageScreen) visibleRange() (int, int) {
	n := len(s.ids)
	if s.height <= 0 {
		return 0, n
	}

	// header, panel chrome, help bar and the app header
	fit := max((s.height-18)/entryRowHeight, 1)
	if n <= fit {
		return 0, n
	}

	focused := s.form.FocusIndex() / 2
	first := max(focused-fit+1, 0)
	return first, min(first+fit, n)
}

func (s *AverageScreen) buildForm() {
	snap := s.container.Snapshot()

	width := 20
	if s.form != nil {
		width = s.form.Width()
	}

	form := component.NewForm(s.keyMap.NextField, s.keyMap.PrevField).SetWidth(width)
	ids := make([]string, 0, len(snap.Entries))
	for i, e := range snap.Entries {
		n := strconv.Itoa(i + 1)
		form.AddField(AmountField(e.ID), "ENTRY #"+n+" INVESTED", "$", component.ToneCapital, e.Amount).
			AddField(TokensField(e.ID), "ENTRY #"+n+" TOKENS", "", component.ToneRisk, e.Tokens)
		ids = append(ids, e.ID)
	}

	s.form = form
	s.ids = ids
	s.helpBar.SetKeyBindings(s.helpBindings())
}

// helpBindings hides the remove hint while only one entry exists. The key
// still works there and resets the entry.
func (s *AverageScreen) helpBindings() []key.Binding {
	all := s.keyMap.ContextualHelp(ui.RouteAverage)
	if len(s.ids) > 1 {
		return all
	}

	remove := s.keyMap.RemoveEntry.Help()
	bindings := make([]key.Binding, 0, len(all))
	for _, b := range all {
		if b.Help() == remove {
			continue
		}
		bindings = append(bindings, b)
	}
	return bindings
}

func (s *AverageScreen) recompute() {
	r := s.container.Average()
	if r == nil {
		s.result.Clear()
		return
	}
	s.result.Set(calc.FormatAveragePrice(r.AveragePrice),
		component.ResultRow{Label: "Total Invested", Value: calc.FormatInvested(r.TotalAmount)},
		component.ResultRow{Label: "Total Tokens", Value: calc.FormatTokens(r.TotalTokens), Risk: true},
	)
}
