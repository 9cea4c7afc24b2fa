package style

import (
	"github.com/charmbracelet/lipgloss"
)

var palette = DefaultPalette()

// Header styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(palette.Text).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.ThickBorder(), false, false, true, false).
			BorderForeground(palette.Primary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Bold(true).
			Margin(0, 0, 1, 0)
)

// Layout styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Border).
			Padding(1, 2)

	ActivePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(palette.Primary).
				Padding(1, 2)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(palette.Risk).
			Padding(1, 4)
)

// Text styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true)

	RiskLabelStyle = lipgloss.NewStyle().
			Foreground(palette.Risk).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(palette.TextMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(palette.Text)

	RiskValueStyle = lipgloss.NewStyle().
			Foreground(palette.Risk)

	HeadlineStyle = lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Padding(1, 0)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(palette.Border).
				Bold(true)
)

// Tab styles
var (
	TabStyle = lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Primary).
			Bold(true).
			Padding(0, 2)
)
