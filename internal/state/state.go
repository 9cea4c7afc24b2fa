// Package state owns the calculator's serializable application state, the
// rules for mutating it, and its rehydration from a storage.Store.
package state

import (
	"slices"

	"github.com/rovshanmuradov/hit-calc/internal/calc"
)

// View is the top-level screen.
type View string

const (
	ViewLeverage View = "leverage"
	ViewAverage  View = "average"
)

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	return v == ViewLeverage || v == ViewAverage
}

// Persisted keys. Scalars are stored as plain strings, composites as JSON.
const (
	KeyView          = "currentView"
	KeyTab           = "activeTab"
	KeyTabData       = "tabData"
	KeyEntryPrice    = "entryPrice"
	KeyStopLossPrice = "stopLossPrice"
	KeySLPercent     = "slPercent"
	KeyEntries       = "dcaEntries"
)

// AllKeys lists every persisted key in a stable order.
var AllKeys = []string{
	KeyView, KeyTab, KeyTabData, KeyEntryPrice, KeyStopLossPrice, KeySLPercent, KeyEntries,
}

// TabData is the balance and risk owned by one leverage tab.
type TabData struct {
	Balance string `json:"balance"`
	Risk    string `json:"risk"`
}

// Tabs holds one TabData per leverage mode.
type Tabs struct {
	Price   TabData `json:"price"`
	Percent TabData `json:"percent"`
}

// For returns the slot belonging to mode.
func (t *Tabs) For(mode calc.Mode) *TabData {
	if mode == calc.ModePercent {
		return &t.Percent
	}
	return &t.Price
}

// AppState is everything the user has entered plus the current selections.
// Derived results are never part of it.
type AppState struct {
	View          View         `json:"currentView"`
	Tab           calc.Mode    `json:"activeTab"`
	TabData       Tabs         `json:"tabData"`
	EntryPrice    string       `json:"entryPrice"`
	StopLossPrice string       `json:"stopLossPrice"`
	SLPercent     string       `json:"slPercent"`
	Entries       []calc.Entry `json:"dcaEntries"`
}

// Default returns the state of a first launch. newID supplies the id of the
// single empty DCA entry.
func Default(newID func() string) AppState {
	return AppState{
		View:    ViewLeverage,
		Tab:     calc.ModePrice,
		Entries: []calc.Entry{{ID: newID()}},
	}
}

// Clone returns a deep copy.
func (s AppState) Clone() AppState {
	s.Entries = slices.Clone(s.Entries)
	return s
}

// ActiveTab returns the balance and risk of the selected tab.
func (s AppState) ActiveTab() TabData {
	return *s.TabData.For(s.Tab)
}

// LeverageInput assembles the engine input for the selected tab.
func (s AppState) LeverageInput() calc.LeverageInput {
	td := s.ActiveTab()
	return calc.LeverageInput{
		Mode:          s.Tab,
		Balance:       td.Balance,
		Risk:          td.Risk,
		EntryPrice:    s.EntryPrice,
		StopLossPrice: s.StopLossPrice,
		SLPercent:     s.SLPercent,
	}
}
