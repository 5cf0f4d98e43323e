package tui

import "github.com/charmbracelet/lipgloss"

// palette is one of the five device themes.
type palette struct {
	accent lipgloss.Color
	text   lipgloss.Color
	muted  lipgloss.Color
	border lipgloss.Color
}

var palettes = map[string]palette{
	"silver": {
		accent: lipgloss.Color("#5A8BB0"),
		text:   lipgloss.Color("#E8E8E8"),
		muted:  lipgloss.Color("#9A9A9A"),
		border: lipgloss.Color("#C0C0C0"),
	},
	"blue": {
		accent: lipgloss.Color("#4A9EFF"),
		text:   lipgloss.Color("#E8F1FF"),
		muted:  lipgloss.Color("#7A9CC6"),
		border: lipgloss.Color("#2D6CB5"),
	},
	"pink": {
		accent: lipgloss.Color("#FF6BB5"),
		text:   lipgloss.Color("#FFE8F3"),
		muted:  lipgloss.Color("#C687A8"),
		border: lipgloss.Color("#D94F96"),
	},
	"yellow": {
		accent: lipgloss.Color("#E8C547"),
		text:   lipgloss.Color("#FFF8E1"),
		muted:  lipgloss.Color("#B5A567"),
		border: lipgloss.Color("#C7A82E"),
	},
	"red": {
		accent: lipgloss.Color("#FF5A5A"),
		text:   lipgloss.Color("#FFE8E8"),
		muted:  lipgloss.Color("#C68787"),
		border: lipgloss.Color("#D93F3F"),
	},
}

// styleSet is the rendered style palette for the active theme.
type styleSet struct {
	title        lipgloss.Style
	statusBar    lipgloss.Style
	selectedItem lipgloss.Style
	normalItem   lipgloss.Style
	mutedText    lipgloss.Style
	errorText    lipgloss.Style
	noticeText   lipgloss.Style
	progressFill lipgloss.Style
	progressRest lipgloss.Style
	modalBox     lipgloss.Style
	frame        lipgloss.Style
}

func newStyleSet(theme string) styleSet {
	p, ok := palettes[theme]
	if !ok {
		p = palettes["silver"]
	}

	return styleSet{
		title: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		statusBar: lipgloss.NewStyle().
			Foreground(p.text).
			Background(p.border).
			Bold(true).
			Padding(0, 1),
		selectedItem: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		normalItem: lipgloss.NewStyle().
			Foreground(p.text),
		mutedText: lipgloss.NewStyle().
			Foreground(p.muted),
		errorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		noticeText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6BFF6B")),
		progressFill: lipgloss.NewStyle().
			Foreground(p.accent),
		progressRest: lipgloss.NewStyle().
			Foreground(p.muted),
		modalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(1, 2),
		frame: lipgloss.NewStyle().
			Foreground(p.border),
	}
}
