package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Title     lipgloss.Style
	Path      lipgloss.Style
	Help      lipgloss.Style
	Separator lipgloss.Style

	Sidebar         lipgloss.Style
	SidebarDir      lipgloss.Style
	SidebarEntry    lipgloss.Style
	SidebarFolder   lipgloss.Style
	SidebarSelected lipgloss.Style

	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	CommandLine lipgloss.Style
	Status      lipgloss.Style
	StatusMode  lipgloss.Style
}

// DefaultStyle builds the default theme from an accent and a muted color.
func DefaultStyle() Style {
	return ThemedStyle(lipgloss.Color("63"), lipgloss.Color("240"))
}

func ThemedStyle(accent, muted lipgloss.TerminalColor) Style {
	mutedStyle := lipgloss.NewStyle().Foreground(muted)
	return Style{
		Title:     lipgloss.NewStyle().Foreground(accent).Bold(true),
		Path:      lipgloss.NewStyle(),
		Help:      mutedStyle,
		Separator: mutedStyle,

		Sidebar:         lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderRight(true).BorderForeground(muted),
		SidebarDir:      lipgloss.NewStyle().Foreground(accent).Bold(true),
		SidebarEntry:    lipgloss.NewStyle(),
		SidebarFolder:   lipgloss.NewStyle().Foreground(accent),
		SidebarSelected: lipgloss.NewStyle().Reverse(true),

		Gutter:        mutedStyle,
		LineNum:       mutedStyle,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),

		Text:      lipgloss.NewStyle(),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    lipgloss.NewStyle().Reverse(true),

		CommandLine: lipgloss.NewStyle(),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		StatusMode:  lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(accent).Bold(true),
	}
}
