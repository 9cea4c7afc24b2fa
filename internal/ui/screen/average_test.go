package screen

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/hit-calc/internal/calc"
	"github.com/rovshanmuradov/hit-calc/internal/ui"
)

func TestAverageScreenIdle(t *testing.T) {
	s := NewAverageScreen(newTestContainer(), zap.NewNop())

	assert.False(t, s.Result().Ready())
	assert.Contains(t, s.View(), calc.AverageIdle)
	assert.Equal(t, AmountField("e1"), s.Form().Focused())
	assert.Contains(t, s.View(), "ENTRY #1 INVESTED")
}

func TestAverageScreenEntries(t *testing.T) {
	c := newTestContainer()
	s := NewAverageScreen(c, zap.NewNop())

	typeText(s, "100")
	press(s, tea.KeyTab)
	typeText(s, "4")

	require.True(t, s.Result().Ready())
	assert.Equal(t, "$25", s.Result().Headline())

	press(s, tea.KeyCtrlN)
	assert.Equal(t, AmountField("e2"), s.Form().Focused())
	assert.Contains(t, s.View(), "ENTRY #2 TOKENS")

	typeText(s, "300")
	press(s, tea.KeyTab)
	typeText(s, "4")
	assert.Equal(t, "$50", s.Result().Headline())
	assert.Contains(t, s.View(), "$400.00")

	entries := c.Snapshot().Entries
	require.Len(t, entries, 2)
	assert.Equal(t, "300", entries[1].Amount)
	assert.Equal(t, "4", entries[1].Tokens)

	// Remove the second entry while one of its fields is focused
	press(s, tea.KeyCtrlD)
	require.Len(t, c.Snapshot().Entries, 1)
	assert.Equal(t, "$25", s.Result().Headline())
	assert.Equal(t, TokensField("e1"), s.Form().Focused())
}

func TestAverageScreenRemoveLastEntryResets(t *testing.T) {
	c := newTestContainer()
	s := NewAverageScreen(c, zap.NewNop())

	typeText(s, "100")
	press(s, tea.KeyCtrlD)

	entries := c.Snapshot().Entries
	require.Len(t, entries, 1)
	assert.Equal(t, "e2", entries[0].ID)
	assert.Empty(t, entries[0].Amount)
	assert.Equal(t, "", s.Form().Value(AmountField("e2")))
	assert.False(t, s.Result().Ready())
}

func TestAverageScreenClearNeedsConfirmation(t *testing.T) {
	c := newTestContainer()
	s := NewAverageScreen(c, zap.NewNop())

	typeText(s, "100")
	press(s, tea.KeyCtrlN)

	_, cmd := press(s, tea.KeyCtrlX)
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	req, ok := msgs[0].(ui.ConfirmRequestMsg)
	require.True(t, ok)
	assert.Equal(t, ClearPrompt, req.Prompt)
	assert.Len(t, c.Snapshot().Entries, 2, "nothing is cleared before confirmation")

	s.Update(req.OnConfirm)
	entries := c.Snapshot().Entries
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Amount)
	assert.Equal(t, 2, s.Form().Len())
	assert.Contains(t, s.View(), calc.AverageIdle)
}

func TestAverageScreenSanitizesTokens(t *testing.T) {
	c := newTestContainer()
	s := NewAverageScreen(c, zap.NewNop())

	press(s, tea.KeyTab)
	typeText(s, "0,5x")
	assert.Equal(t, "0.5", s.Form().Value(TokensField("e1")))
	assert.Equal(t, "0.5", c.Snapshot().Entries[0].Tokens)
}

func TestAverageScreenRemoveHint(t *testing.T) {
	s := NewAverageScreen(newTestContainer(), zap.NewNop())
	assert.NotContains(t, s.View(), "remove entry")

	press(s, tea.KeyCtrlN)
	assert.Contains(t, s.View(), "remove entry")

	press(s, tea.KeyCtrlD)
	assert.NotContains(t, s.View(), "remove entry")
}
