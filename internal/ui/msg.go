package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rovshanmuradov/hit-calc/internal/state"
)

// Tea message types for UI communication

// RouterMsg requests a switch of the top-level view
type RouterMsg struct {
	To Route
}

// BackMsg closes the screen on top of the stack (a dialog)
type BackMsg struct{}

// ConfirmRequestMsg asks the app to open a yes/no dialog. OnConfirm is
// delivered to the screen underneath once the user accepts.
type ConfirmRequestMsg struct {
	Prompt    string
	OnConfirm tea.Msg
}

// ClearEntriesMsg resets the DCA entry list
type ClearEntriesMsg struct{}

// Route represents different screens in the application
type Route int

const (
	RouteLeverage Route = iota
	RouteAverage
	RouteConfirm
)

// String returns the string representation of the route
func (r Route) String() string {
	switch r {
	case RouteLeverage:
		return "leverage"
	case RouteAverage:
		return "average"
	case RouteConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// RouteForView maps a persisted view to its route
func RouteForView(v state.View) Route {
	if v == state.ViewAverage {
		return RouteAverage
	}
	return RouteLeverage
}

// ViewForRoute maps a top-level route back to the persisted view
func ViewForRoute(r Route) (state.View, bool) {
	switch r {
	case RouteLeverage:
		return state.ViewLeverage, true
	case RouteAverage:
		return state.ViewAverage, true
	default:
		return "", false
	}
}

// Navigate returns a command that switches to route
func Navigate(route Route) tea.Cmd {
	return func() tea.Msg {
		return RouterMsg{To: route}
	}
}

// Back returns a command that closes the top screen
func Back() tea.Cmd {
	return func() tea.Msg {
		return BackMsg{}
	}
}

// RequestConfirm returns a command that opens a confirmation dialog
func RequestConfirm(prompt string, onConfirm tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return ConfirmRequestMsg{Prompt: prompt, OnConfirm: onConfirm}
	}
}
