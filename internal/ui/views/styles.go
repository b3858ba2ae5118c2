package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Header        lipgloss.Style
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Heading       lipgloss.Style
	SearchPrompt  lipgloss.Style
	SearchFocused lipgloss.Style
	Message       lipgloss.Style
	LoadError     lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Star          lipgloss.Style
	StarEmpty     lipgloss.Style
	EntryTitle    lipgloss.Style
	Summary       lipgloss.Style
	SelectionBg   lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("29")).
			Padding(0, 1),
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Heading:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")), // green
		SearchPrompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SearchFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Message:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		LoadError:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:          lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Star:          lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		StarEmpty:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		EntryTitle:    lipgloss.NewStyle().Bold(true),
		Summary:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
