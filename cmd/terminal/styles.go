package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	app      lipgloss.Style
	header   lipgloss.Style
	viewport lipgloss.Style
	footer   lipgloss.Style
	inactive lipgloss.Style
	error    lipgloss.Style
	success  lipgloss.Style
	prompt   lipgloss.Style
	command  lipgloss.Style
	ascii    lipgloss.Style
}

type ThemeName string

const (
	ThemeMatrix    ThemeName = "matrix"
	ThemeAmber     ThemeName = "amber"
	ThemeCyberpunk ThemeName = "cyberpunk"
	ThemeIceBlue   ThemeName = "ice"
	ThemeDracula   ThemeName = "dracula"
	ThemeFire      ThemeName = "fire"
	ThemeCyan      ThemeName = "cyan"
)

type ThemePalette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Inactive  lipgloss.Color
}

// ANSI 256 indices; error stays in the red range and inactive stays a
// neutral grey across every theme so state colors read consistently.
var palettes = map[ThemeName]ThemePalette{
	// default: bright cyan chrome over blue accents
	ThemeCyan: {
		Primary:   lipgloss.Color("51"),  // cyan
		Secondary: lipgloss.Color("33"),  // blue
		Success:   lipgloss.Color("46"),  // green
		Warning:   lipgloss.Color("226"), // yellow
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
	},
	// green-on-black phosphor terminal
	ThemeMatrix: {
		Primary:   lipgloss.Color("82"),  // bright green
		Secondary: lipgloss.Color("46"),  // green
		Success:   lipgloss.Color("82"),
		Warning:   lipgloss.Color("190"), // yellow-green
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
	},
	// warm monochrome, amber CRT
	ThemeAmber: {
		Primary:   lipgloss.Color("220"), // gold
		Secondary: lipgloss.Color("214"), // orange
		Success:   lipgloss.Color("220"),
		Warning:   lipgloss.Color("208"), // dark orange
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
	},
	// magenta and violet neon
	ThemeCyberpunk: {
		Primary:   lipgloss.Color("201"), // magenta
		Secondary: lipgloss.Color("141"), // violet
		Success:   lipgloss.Color("51"),  // cyan
		Warning:   lipgloss.Color("213"), // pink
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
	},
	// pale blues, low contrast
	ThemeIceBlue: {
		Primary:   lipgloss.Color("159"), // pale cyan
		Secondary: lipgloss.Color("39"),  // sky blue
		Success:   lipgloss.Color("51"),
		Warning:   lipgloss.Color("159"),
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
	},
	// the classic editor scheme, softened reds
	ThemeDracula: {
		Primary:   lipgloss.Color("141"), // purple
		Secondary: lipgloss.Color("117"), // light blue
		Success:   lipgloss.Color("84"),  // soft green
		Warning:   lipgloss.Color("212"), // pink
		Error:     lipgloss.Color("203"), // soft red
		Inactive:  lipgloss.Color("240"),
	},
	// reds and oranges throughout
	ThemeFire: {
		Primary:   lipgloss.Color("9"),   // red
		Secondary: lipgloss.Color("196"), // bright red
		Success:   lipgloss.Color("226"), // yellow
		Warning:   lipgloss.Color("208"), // orange
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
	},
}

func GetTheme(theme ThemeName) styles {
	if palette, ok := palettes[theme]; ok {
		return newStylesFromPalette(palette)
	}
	return newStylesFromPalette(palettes[ThemeCyan])
}

func ListThemes() []ThemeName {
	return []ThemeName{
		ThemeCyan,
		ThemeMatrix,
		ThemeAmber,
		ThemeCyberpunk,
		ThemeIceBlue,
		ThemeDracula,
		ThemeFire,
	}
}

func newStylesFromPalette(p ThemePalette) styles {
	return styles{
		app: lipgloss.NewStyle().Margin(0, 1),
		header: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Primary).
			Padding(0, 2).
			MarginBottom(1),
		viewport: lipgloss.NewStyle().
			PaddingLeft(1),
		footer: lipgloss.NewStyle().
			MarginTop(1).
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.Primary).
			PaddingTop(1),
		inactive: lipgloss.NewStyle().Foreground(p.Inactive),
		error:    lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		success:  lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		prompt:   lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		command:  lipgloss.NewStyle().Foreground(p.Secondary).Italic(true),
		ascii:    lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
	}
}
