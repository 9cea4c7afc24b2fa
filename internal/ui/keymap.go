package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard shortcuts for the application. Plain letters are
// left to the text inputs, so every action sits on a modifier or F-key.
type KeyMap struct {
	// Global navigation
	Quit         key.Binding
	ViewLeverage key.Binding
	ViewAverage  key.Binding

	// Field navigation
	NextField key.Binding
	PrevField key.Binding

	// Leverage calculator
	ToggleMode key.Binding

	// DCA entries
	AddEntry    key.Binding
	RemoveEntry key.Binding
	ClearAll    key.Binding

	// Dialogs
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		ViewLeverage: key.NewBinding(
			key.WithKeys("f1", "alt+1"),
			key.WithHelp("F1", "leverage"),
		),
		ViewAverage: key.NewBinding(
			key.WithKeys("f2", "alt+2"),
			key.WithHelp("F2", "avg price"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "down", "enter"),
			key.WithHelp("tab/↓", "next"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev"),
		),

		ToggleMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "price/percent"),
		),

		AddEntry: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "add entry"),
		),
		RemoveEntry: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "remove entry"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear all"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
	}
}

// ContextualHelp returns help text based on the current route
func (k KeyMap) ContextualHelp(route Route) []key.Binding {
	switch route {
	case RouteLeverage:
		return []key.Binding{k.NextField, k.PrevField, k.ToggleMode, k.ViewAverage, k.Quit}
	case RouteAverage:
		return []key.Binding{k.NextField, k.AddEntry, k.RemoveEntry, k.ClearAll, k.ViewLeverage, k.Quit}
	case RouteConfirm:
		return []key.Binding{k.Confirm, k.Cancel}
	default:
		return []key.Binding{k.Quit}
	}
}
