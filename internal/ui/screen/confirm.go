package screen

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/hit-calc/internal/ui"
	"github.com/rovshanmuradov/hit-calc/internal/ui/component"
	"github.com/rovshanmuradov/hit-calc/internal/ui/router"
	"github.com/rovshanmuradov/hit-calc/internal/ui/style"
)

// ConfirmScreen is a yes/no dialog. On yes it closes itself and then
// delivers onConfirm to the screen below.
type ConfirmScreen struct {
	width  int
	height int
	keyMap ui.KeyMap

	prompt    string
	onConfirm tea.Msg
	helpBar   *component.HelpBar
}

// NewConfirmScreen creates a dialog asking prompt
func NewConfirmScreen(prompt string, onConfirm tea.Msg) *ConfirmScreen {
	keyMap := ui.DefaultKeyMap()
	return &ConfirmScreen{
		keyMap:    keyMap,
		prompt:    prompt,
		onConfirm: onConfirm,
		helpBar:   component.NewHelpBar().SetKeyBindings(keyMap.ContextualHelp(ui.RouteConfirm)),
	}
}

func (s *ConfirmScreen) Init() tea.Cmd {
	return nil
}

func (s *ConfirmScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, s.keyMap.Confirm):
		onConfirm := s.onConfirm
		if onConfirm == nil {
			return s, ui.Back()
		}
		return s, tea.Sequence(ui.Back(), func() tea.Msg { return onConfirm })
	case key.Matches(keyMsg, s.keyMap.Cancel):
		return s, ui.Back()
	}
	return s, nil
}

func (s *ConfirmScreen) View() string {
	dialog := style.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		style.RiskLabelStyle.Render(s.prompt),
		"",
		s.helpBar.View(),
	))

	if s.width <= 0 || s.height <= 0 {
		return dialog
	}
	return lipgloss.Place(s.width, s.height/2, lipgloss.Center, lipgloss.Center, dialog)
}

func (s *ConfirmScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.helpBar.SetWidth(width)
}

// Prompt returns the question being asked
func (s *ConfirmScreen) Prompt() string {
	return s.prompt
}
