package style

import "github.com/charmbracelet/lipgloss"

// Color palette of the H-IT calculators
var (
	// Primary colors
	Cyan   = lipgloss.Color("#00F0FF") // Primary highlight / capital fields
	Orange = lipgloss.Color("#FF4D00") // Risk / stop-loss fields
	Blue   = lipgloss.Color("#0080FF") // Result gradient end

	// Base colors
	Navy   = lipgloss.Color("#0B1026") // Background
	Ink    = lipgloss.Color("#161B33") // Panel background
	Border = lipgloss.Color("#232D4B") // Borders, placeholders
	Slate  = lipgloss.Color("#8B9BB4") // Muted text
	Snow   = lipgloss.Color("#EEF2F6") // Primary text
)

// Palette provides a centralized color management
type Palette struct {
	Primary lipgloss.Color
	Risk    lipgloss.Color
	Accent  lipgloss.Color

	Background    lipgloss.Color
	BackgroundAlt lipgloss.Color
	Border        lipgloss.Color
	Text          lipgloss.Color
	TextMuted     lipgloss.Color
}

// DefaultPalette returns the default color palette
func DefaultPalette() Palette {
	return Palette{
		Primary: Cyan,
		Risk:    Orange,
		Accent:  Blue,

		Background:    Navy,
		BackgroundAlt: Ink,
		Border:        Border,
		Text:          Snow,
		TextMuted:     Slate,
	}
}
