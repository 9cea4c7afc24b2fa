package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/hit-calc/internal/ui/style"
)

// ResultRow is one labelled line under the headline
type ResultRow struct {
	Label string
	Value string
	Risk  bool
}

// ResultPanel shows a headline figure with supporting rows, or a
// placeholder when there is nothing to show
type ResultPanel struct {
	Caption     string
	Placeholder string

	headline string
	rows     []ResultRow
	ready    bool
	width    int
}

// NewResultPanel creates an empty panel
func NewResultPanel(caption, placeholder string) *ResultPanel {
	return &ResultPanel{
		Caption:     caption,
		Placeholder: placeholder,
		width:       36,
	}
}

// Set fills the panel with a result
func (p *ResultPanel) Set(headline string, rows ...ResultRow) {
	p.headline = headline
	p.rows = rows
	p.ready = true
}

// Clear switches the panel back to its placeholder
func (p *ResultPanel) Clear() {
	p.headline = ""
	p.rows = nil
	p.ready = false
}

// Ready reports whether a result is shown
func (p *ResultPanel) Ready() bool {
	return p.ready
}

// Headline returns the figure currently shown
func (p *ResultPanel) Headline() string {
	return p.headline
}

// SetWidth sets the inner width
func (p *ResultPanel) SetWidth(width int) *ResultPanel {
	if width < 20 {
		width = 20
	}
	p.width = width
	return p
}

func (p *ResultPanel) View() string {
	center := lipgloss.NewStyle().Width(p.width).Align(lipgloss.Center)

	if !p.ready {
		body := center.Padding(3, 0).Render(style.PlaceholderStyle.Render(p.Placeholder))
		return style.ActivePanelStyle.Render(body)
	}

	var b strings.Builder
	b.WriteString(center.Render(style.MutedStyle.Render(strings.ToUpper(p.Caption))))
	b.WriteString("\n")
	b.WriteString(center.Render(style.HeadlineStyle.Render(p.headline)))
	b.WriteString("\n")
	b.WriteString(style.MutedStyle.Render(strings.Repeat("─", p.width)))

	for _, row := range p.rows {
		valueStyle := style.ValueStyle
		if row.Risk {
			valueStyle = style.RiskValueStyle
		}
		label := style.MutedStyle.Render(strings.ToUpper(row.Label))
		value := valueStyle.Render(row.Value)
		gap := p.width - lipgloss.Width(label) - lipgloss.Width(value)
		if gap < 1 {
			gap = 1
		}
		b.WriteString("\n")
		b.WriteString(label + strings.Repeat(" ", gap) + value)
	}

	return style.ActivePanelStyle.Render(b.String())
}
