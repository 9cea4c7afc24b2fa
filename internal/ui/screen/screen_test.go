package screen

import (
	"fmt"
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/hit-calc/internal/state"
	"github.com/rovshanmuradov/hit-calc/internal/ui/router"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("e%d", n)
	}
}

func newTestContainer() *state.Container {
	ids := seqIDs()
	return state.NewContainer(state.Default(ids), zap.NewNop(), state.WithIDGenerator(ids))
}

func typeText(s router.Screen, text string) router.Screen {
	for _, r := range text {
		s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return s
}

func press(s router.Screen, keyType tea.KeyType) (router.Screen, tea.Cmd) {
	return s.Update(tea.KeyMsg{Type: keyType})
}

// collect runs cmd and flattens batches and sequences into their messages
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
