package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the control
type Styles struct {
	Title            lipgloss.Style
	Help             lipgloss.Style
	Dim              lipgloss.Style
	Indicator        lipgloss.Style
	CheckBox         lipgloss.Style
	Label            lipgloss.Style
	LabelHighlighted lipgloss.Style
	Scroll           lipgloss.Style
	Status           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Help:             lipgloss.NewStyle().Faint(true),
		Dim:              lipgloss.NewStyle().Faint(true),
		Indicator:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")), // blue
		CheckBox:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Label:            lipgloss.NewStyle(),
		LabelHighlighted: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Scroll:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
	}
}

// Glyphs are the symbols drawn in front of each label
type Glyphs struct {
	Cursor    string
	Checked   string
	Unchecked string
}

// DefaultGlyphs returns the pointer and circle symbols
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Cursor:    "❯",
		Checked:   "◉",
		Unchecked: "◯",
	}
}

// Merge fills empty glyphs from defaults
func (g Glyphs) Merge(defaults Glyphs) Glyphs {
	if g.Cursor == "" {
		g.Cursor = defaults.Cursor
	}
	if g.Checked == "" {
		g.Checked = defaults.Checked
	}
	if g.Unchecked == "" {
		g.Unchecked = defaults.Unchecked
	}
	return g
}
