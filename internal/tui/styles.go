package tui

import "github.com/charmbracelet/lipgloss"

var (
	Accent  = lipgloss.Color("#2563eb")
	Muted   = lipgloss.Color("#64748b")
	Faint   = lipgloss.Color("#cbd5e1")
	Clock   = lipgloss.Color("#dc2626")
	Derived = lipgloss.Color("#f1f5f9")
	Warning = lipgloss.Color("#d97706")
)

// Styles groups the lipgloss styles both surfaces draw with.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Cursor    lipgloss.Style
	Estimate  lipgloss.Style
	Rate      lipgloss.Style
	Summary   lipgloss.Style
	Empty     lipgloss.Style
	RowNumber lipgloss.Style
	Separator lipgloss.Style
	Item      lipgloss.Style
	OpenItem  lipgloss.Style
	Status    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Subtitle:  lipgloss.NewStyle().Foreground(Muted),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(Muted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(Accent),
		Header:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:      lipgloss.NewStyle().Padding(0, 1),
		Cursor:    lipgloss.NewStyle().Padding(0, 1).Reverse(true),
		Estimate:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(Clock),
		Rate:      lipgloss.NewStyle().Padding(0, 1).Italic(true).Foreground(Muted).Background(Derived),
		Summary:   lipgloss.NewStyle().Padding(0, 1).Foreground(Muted),
		Empty:     lipgloss.NewStyle().Padding(0, 1).Italic(true).Foreground(Faint),
		RowNumber: lipgloss.NewStyle().Foreground(Muted).Align(lipgloss.Right),
		Separator: lipgloss.NewStyle().Foreground(Faint),
		Item:      lipgloss.NewStyle().PaddingLeft(1),
		OpenItem:  lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(Accent),
		Status:    lipgloss.NewStyle().Foreground(Warning),
	}
}
