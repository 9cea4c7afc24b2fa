package app

import (
	"fmt"
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/hit-calc/internal/state"
	"github.com/rovshanmuradov/hit-calc/internal/ui"
	"github.com/rovshanmuradov/hit-calc/internal/ui/screen"
)

func newTestModel(t *testing.T, mutate func(c *state.Container)) (*Model, *state.Container) {
	t.Helper()

	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("e%d", n)
	}
	c := state.NewContainer(state.Default(ids), zap.NewNop(), state.WithIDGenerator(ids))
	if mutate != nil {
		mutate(c)
	}

	m := New(c, zap.NewNop())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, c
}

// send delivers msg and then every message its command produces, the way
// the bubbletea runtime would
func send(m *Model, msg tea.Msg) {
	_, cmd := m.Update(msg)
	for _, next := range collect(cmd) {
		send(m, next)
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()

	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice {
		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for i := 0; i < v.Len(); i++ {
		if inner, ok := v.Index(i).Interface().(tea.Cmd); ok {
			msgs = append(msgs, collect(inner)...)
		}
	}
	return msgs
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelStartsOnPersistedView(t *testing.T) {
	m, _ := newTestModel(t, nil)
	assert.Equal(t, ui.RouteLeverage, m.Route())
	assert.IsType(t, &screen.LeverageScreen{}, m.Router().Current())

	m, _ = newTestModel(t, func(c *state.Container) {
		c.SetView(state.ViewAverage)
	})
	assert.Equal(t, ui.RouteAverage, m.Route())
	assert.IsType(t, &screen.AverageScreen{}, m.Router().Current())
}

func TestModelViewSwitching(t *testing.T) {
	m, c := newTestModel(t, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyF2})
	assert.Equal(t, ui.RouteAverage, m.Route())
	assert.Equal(t, state.ViewAverage, c.Snapshot().View)
	assert.IsType(t, &screen.AverageScreen{}, m.Router().Current())

	m.Update(ui.RouterMsg{To: ui.RouteLeverage})
	assert.Equal(t, ui.RouteLeverage, m.Route())
	assert.Equal(t, state.ViewLeverage, c.Snapshot().View)

	before := c.Mutations()
	m.Update(ui.RouterMsg{To: ui.RouteConfirm})
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, ui.RouteLeverage, m.Route())
	assert.Equal(t, before, c.Mutations(), "no-op navigation does not touch the state")
}

func TestModelViewKeepsInputs(t *testing.T) {
	m, c := newTestModel(t, nil)

	send(m, runes("1000"))
	send(m, tea.KeyMsg{Type: tea.KeyF2})
	send(m, tea.KeyMsg{Type: tea.KeyF1})

	lev, ok := m.Router().Current().(*screen.LeverageScreen)
	require.True(t, ok)
	assert.Equal(t, "1000", lev.Form().Value(screen.FieldBalance))
	assert.Equal(t, "1000", c.Snapshot().TabData.Price.Balance)
}

func TestModelClearEntriesFlow(t *testing.T) {
	m, c := newTestModel(t, func(c *state.Container) {
		c.SetView(state.ViewAverage)
	})

	send(m, runes("100"))
	send(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	require.Len(t, c.Snapshot().Entries, 2)

	// Cancelling leaves everything in place
	send(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	require.Equal(t, 2, m.Router().Depth())
	assert.Contains(t, m.View(), screen.ClearPrompt)

	send(m, tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, ui.RouteAverage, m.Route(), "view keys are ignored while a dialog is open")

	send(m, runes("n"))
	assert.Equal(t, 1, m.Router().Depth())
	assert.Len(t, c.Snapshot().Entries, 2)

	// Accepting clears the list down to one empty entry
	send(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	send(m, runes("y"))
	assert.Equal(t, 1, m.Router().Depth())

	entries := c.Snapshot().Entries
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Amount)

	avg, ok := m.Router().Current().(*screen.AverageScreen)
	require.True(t, ok)
	assert.False(t, avg.Result().Ready())
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()
	assert.Contains(t, view, "H-IT")
	assert.Contains(t, view, "CRYPTO TRADING TOOLS")
	assert.Contains(t, view, "LEVERAGE CALC")
	assert.Contains(t, view, "SYSTEM READY")
}
