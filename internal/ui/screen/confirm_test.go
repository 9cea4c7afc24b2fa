package screen

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/rovshanmuradov/hit-calc/internal/ui"
)

func TestConfirmScreenAccept(t *testing.T) {
	s := NewConfirmScreen(ClearPrompt, ui.ClearEntriesMsg{})
	assert.Contains(t, s.View(), ClearPrompt)

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	assert.Equal(t, []tea.Msg{ui.BackMsg{}, ui.ClearEntriesMsg{}}, collect(cmd))
}

func TestConfirmScreenCancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'n'}},
		{Type: tea.KeyEsc},
	} {
		s := NewConfirmScreen(ClearPrompt, ui.ClearEntriesMsg{})
		_, cmd := s.Update(k)
		assert.Equal(t, []tea.Msg{ui.BackMsg{}}, collect(cmd), k.String())
	}
}

func TestConfirmScreenIgnoresOtherKeys(t *testing.T) {
	s := NewConfirmScreen(ClearPrompt, ui.ClearEntriesMsg{})
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Nil(t, cmd)
}
