package component

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/hit-calc/internal/ui/style"
)

// Tabs renders a row of labels with one highlighted
type Tabs struct {
	labels []string
	active int
}

// NewTabs creates a tab strip
func NewTabs(labels ...string) *Tabs {
	return &Tabs{labels: labels}
}

// SetActive highlights the tab at i
func (t *Tabs) SetActive(i int) *Tabs {
	if i >= 0 && i < len(t.labels) {
		t.active = i
	}
	return t
}

// Active returns the highlighted index
func (t *Tabs) Active() int {
	return t.active
}

func (t *Tabs) View() string {
	rendered := make([]string, len(t.labels))
	for i, label := range t.labels {
		if i == t.active {
			rendered[i] = style.ActiveTabStyle.Render(label)
		} else {
			rendered[i] = style.TabStyle.Render(label)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.DefaultPalette().Border).
		Render(row)
}
