package component

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/hit-calc/internal/ui/style"
)

// FieldTone picks the accent color of a field's label.
type FieldTone int

const (
	ToneCapital FieldTone = iota
	ToneRisk
	ToneNeutral
)

// FormField is a single numeric input
type FormField struct {
	Name   string
	Label  string
	Prefix string
	Tone   FieldTone

	// Internal state
	textInput textinput.Model
}

// Value returns the text currently in the field
func (f *FormField) Value() string {
	return f.textInput.Value()
}

// Form is an ordered set of numeric fields with a single focus. It does not
// interpret values; the owning screen compares values before and after
// Update and decides what to store.
type Form struct {
	fields     []FormField
	focusIndex int
	width      int

	next key.Binding
	prev key.Binding

	// Styling
	inputStyle   lipgloss.Style
	focusedStyle lipgloss.Style
}

// NewForm creates an empty form. next and prev move the focus.
func NewForm(next, prev key.Binding) *Form {
	palette := style.DefaultPalette()

	return &Form{
		next:  next,
		prev:  prev,
		width: 24,

		inputStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Border),

		focusedStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary),
	}
}

// AddField appends a field holding value
func (f *Form) AddField(name, label, prefix string, tone FieldTone, value string) *Form {
	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.Prompt = ""
	if prefix != "" {
		ti.Prompt = prefix + " "
	}
	ti.Width = f.width
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(value)

	f.fields = append(f.fields, FormField{
		Name:      name,
		Label:     label,
		Prefix:    prefix,
		Tone:      tone,
		textInput: ti,
	})

	if len(f.fields) == 1 {
		f.focusIndex = 0
		f.fields[0].textInput.Focus()
	}
	return f
}

// SetPlaceholder changes the hint shown while the named field is empty
func (f *Form) SetPlaceholder(name, placeholder string) {
	for i := range f.fields {
		if f.fields[i].Name == name {
			f.fields[i].textInput.Placeholder = placeholder
			return
		}
	}
}

// Len returns the number of fields
func (f *Form) Len() int {
	return len(f.fields)
}

// Focused returns the name of the focused field, or "" for an empty form
func (f *Form) Focused() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focusIndex].Name
}

// FocusIndex returns the position of the focused field
func (f *Form) FocusIndex() int {
	return f.focusIndex
}

// Focus moves the focus to the named field. Unknown names are ignored.
func (f *Form) Focus(name string) tea.Cmd {
	for i := range f.fields {
		if f.fields[i].Name == name {
			return f.focusAt(i)
		}
	}
	return nil
}

// FocusAt moves the focus to position i, clamped to the field range
func (f *Form) FocusAt(i int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i >= len(f.fields) {
		i = len(f.fields) - 1
	}
	return f.focusAt(i)
}

func (f *Form) focusAt(i int) tea.Cmd {
	f.fields[f.focusIndex].textInput.Blur()
	f.focusIndex = i
	return f.fields[i].textInput.Focus()
}

// Value returns the value of the named field
func (f *Form) Value(name string) string {
	for i := range f.fields {
		if f.fields[i].Name == name {
			return f.fields[i].Value()
		}
	}
	return ""
}

// SetValue replaces the value of the named field
func (f *Form) SetValue(name, value string) {
	for i := range f.fields {
		if f.fields[i].Name == name {
			f.fields[i].textInput.SetValue(value)
			return
		}
	}
}

// Update moves the focus on next/prev keys and otherwise forwards msg to
// the focused input
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, f.next):
			return f, f.focusAt((f.focusIndex + 1) % len(f.fields))
		case key.Matches(keyMsg, f.prev):
			return f, f.focusAt((f.focusIndex - 1 + len(f.fields)) % len(f.fields))
		}
	}

	field := &f.fields[f.focusIndex]
	var cmd tea.Cmd
	field.textInput, cmd = field.textInput.Update(msg)
	return f, cmd
}

// FieldView renders the label and input box of the named field
func (f *Form) FieldView(name string) string {
	for i := range f.fields {
		if f.fields[i].Name == name {
			return f.renderField(i)
		}
	}
	return ""
}

func (f *Form) renderField(i int) string {
	field := &f.fields[i]

	var label string
	switch field.Tone {
	case ToneCapital:
		label = style.LabelStyle.Render("■ " + field.Label)
	case ToneRisk:
		label = style.RiskLabelStyle.Render("■ " + field.Label)
	default:
		label = style.MutedStyle.Bold(true).Render(field.Label)
	}

	boxStyle := f.inputStyle
	if i == f.focusIndex {
		boxStyle = f.focusedStyle
	}
	box := boxStyle.Width(f.width + 4).Render(field.textInput.View())

	return lipgloss.JoinVertical(lipgloss.Left, label, box)
}

// Width returns the input width
func (f *Form) Width() int {
	return f.width
}

// SetWidth sets the input width of every field
func (f *Form) SetWidth(width int) *Form {
	if width < 10 {
		width = 10
	}
	f.width = width
	for i := range f.fields {
		f.fields[i].textInput.Width = width
	}
	return f
}
