package tui

import "github.com/charmbracelet/lipgloss"

// styles contains all lipgloss styles used by the TUI.
var styles = struct {
	// Layout styles
	Container lipgloss.Style
	Divider   lipgloss.Style

	// Header styles
	Title   lipgloss.Style
	Version lipgloss.Style

	// Readout styles
	BPM      lipgloss.Style
	BPMUnit  lipgloss.Style
	Subrate  lipgloss.Style
	NoTempo  lipgloss.Style
	TapLabel lipgloss.Style

	// Selector styles
	SegmentActive   lipgloss.Style
	SegmentInactive lipgloss.Style
	SelectorName    lipgloss.Style

	// Feed and footer
	FeedTime lipgloss.Style
	FeedText lipgloss.Style
	Footer   lipgloss.Style

	// State colors
	StateInitial lipgloss.Style
	StateActive  lipgloss.Style
	StatePaused  lipgloss.Style
}{
	Container: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")),

	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	Version: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	BPM: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("82")),

	BPMUnit: lipgloss.NewStyle().
		Foreground(lipgloss.Color("114")),

	Subrate: lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")),

	NoTempo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	TapLabel: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")),

	SegmentActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		Background(lipgloss.Color("236")),

	SegmentInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	SelectorName: lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")),

	FeedTime: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	FeedText: lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")),

	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	StateInitial: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	StateActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("82")),

	StatePaused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")),
}
