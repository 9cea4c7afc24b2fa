package router

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type stubScreen struct {
	name    string
	inits   int
	updates int
	width   int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *stubScreen) View() string { return s.name }

func (s *stubScreen) SetSize(width, height int) { s.width = width }

func TestRouterStack(t *testing.T) {
	base := &stubScreen{name: "base"}
	dialog := &stubScreen{name: "dialog"}

	r := New(base)
	r.SetSize(80, 24)
	assert.Equal(t, 1, r.Depth())
	assert.False(t, r.CanGoBack())
	assert.Nil(t, r.Pop(), "the last screen is never popped")

	r.Push(dialog)
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "dialog", r.View())
	assert.Equal(t, 80, dialog.width)
	assert.Equal(t, 1, dialog.inits)

	r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, dialog.updates)
	assert.Equal(t, 0, base.updates, "only the top screen gets messages")

	r.Pop()
	assert.Equal(t, 1, r.Depth())
	assert.Same(t, base, r.Current())
	assert.Equal(t, 1, base.inits)
}

func TestRouterReplaceDropsDialogs(t *testing.T) {
	r := New(&stubScreen{name: "a"})
	r.Push(&stubScreen{name: "dialog"})

	next := &stubScreen{name: "b"}
	r.Replace(next)

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "b", r.View())
	assert.Equal(t, 1, next.inits)
}
