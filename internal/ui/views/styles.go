package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	InfoBox       lipgloss.Style
	BrowserBox    lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	Match         lipgloss.Style
	SelectionBg   lipgloss.Style
	Header        lipgloss.Style
	Category      lipgloss.Style
	Favorite      lipgloss.Style
	Plugin        lipgloss.Style
	Tags          lipgloss.Style
	Handle        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		BrowserBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("99")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Match:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Underline(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Category:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Favorite:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Plugin:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Tags:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Handle:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
