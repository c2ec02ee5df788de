package views

import (
	"github.com/charmbracelet/lipgloss"

	"focusdeck/internal/textmetrics"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title           lipgloss.Style
	Counter         lipgloss.Style
	Category        lipgloss.Style
	Dim             lipgloss.Style
	Status          lipgloss.Style
	Help            lipgloss.Style
	Main            lipgloss.Style
	Scroll          lipgloss.Style
	CursorBg        lipgloss.Style
	Flash           lipgloss.Style
	Checked         lipgloss.Style
	NoteBox         lipgloss.Style
	Confirm         lipgloss.Style
	CounterNormal   lipgloss.Style
	CounterWarning  lipgloss.Style
	CounterCritical lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Counter:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Category: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		CursorBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Flash:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Checked:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		NoteBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		Confirm:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		CounterNormal:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		CounterWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		CounterCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}

// CounterStyle returns the style for a character counter severity tier
func (s *Styles) CounterStyle(sev textmetrics.Severity) lipgloss.Style {
	switch sev {
	case textmetrics.SeverityWarning:
		return s.CounterWarning
	case textmetrics.SeverityCritical:
		return s.CounterCritical
	default:
		return s.CounterNormal
	}
}
