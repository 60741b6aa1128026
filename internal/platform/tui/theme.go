package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flow/internal/core"
)

// Theme contains all configurable visual styles of the puzzle.
type Theme struct {
	Name string

	// Palette maps screen buffer colors to terminal styles.
	Palette map[core.Color]lipgloss.Style

	// Board chrome
	Frame  core.Color
	Empty  core.Color
	Cursor core.Color

	// HUD styles
	HUDTitle    lipgloss.Style
	HUDValue    lipgloss.Style
	HUDControls lipgloss.Style
	HUDStatus   lipgloss.Style

	// Overlay styles
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuGroup       lipgloss.Style
	MenuSolved      lipgloss.Style
	MenuUnsolved    lipgloss.Style
	MenuActive      lipgloss.Style
	MenuDescription lipgloss.Style
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// basePalette uses the 16 standard ANSI colors plus a few 256-color extras.
func basePalette() map[core.Color]lipgloss.Style {
	return map[core.Color]lipgloss.Style{
		core.ColorDefault:       lipgloss.NewStyle(),
		core.ColorRed:           fg("1"),
		core.ColorGreen:         fg("2"),
		core.ColorYellow:        fg("3"),
		core.ColorBlue:          fg("4"),
		core.ColorMagenta:       fg("5"),
		core.ColorCyan:          fg("6"),
		core.ColorWhite:         fg("7"),
		core.ColorBrightRed:     fg("9"),
		core.ColorBrightGreen:   fg("10"),
		core.ColorBrightYellow:  fg("11"),
		core.ColorBrightBlue:    fg("12"),
		core.ColorBrightMagenta: fg("13"),
		core.ColorBrightCyan:    fg("14"),
		core.ColorBrightWhite:   fg("15"),
		core.ColorOrange:        fg("208"),
		core.ColorGray:          fg("245"),
		core.ColorPink:          fg("205"),
		core.ColorMaroon:        fg("88"),
	}
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Palette: basePalette(),

		Frame:  core.ColorGray,
		Empty:  core.ColorGray,
		Cursor: core.ColorBrightWhite,

		HUDTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:    fg("255"),
		HUDControls: fg("241"),
		HUDStatus:   fg("245").Italic(true),

		OverlayBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:  fg("255"),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuGroup:       fg("252").Bold(true),
		MenuSolved:      fg("46"),
		MenuUnsolved:    fg("196"),
		MenuActive:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
		MenuDescription: fg("245"),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "neon"
	theme.Palette[core.ColorRed] = fg("196")
	theme.Palette[core.ColorOrange] = fg("214")
	theme.Palette[core.ColorBlue] = fg("33")
	theme.Palette[core.ColorGreen] = fg("118")
	theme.Palette[core.ColorYellow] = fg("227")
	theme.Palette[core.ColorCyan] = fg("87")
	theme.Palette[core.ColorPink] = fg("199")
	theme.Palette[core.ColorMagenta] = fg("171")
	theme.Palette[core.ColorMaroon] = fg("124")
	return theme
}

// PastelTheme returns a softer pastel theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "pastel"
	theme.Palette[core.ColorRed] = fg("210")
	theme.Palette[core.ColorOrange] = fg("216")
	theme.Palette[core.ColorBlue] = fg("111")
	theme.Palette[core.ColorGreen] = fg("157")
	theme.Palette[core.ColorYellow] = fg("229")
	theme.Palette[core.ColorCyan] = fg("123")
	theme.Palette[core.ColorPink] = fg("218")
	theme.Palette[core.ColorMagenta] = fg("183")
	theme.Palette[core.ColorMaroon] = fg("138")
	return theme
}

// MonochromeTheme returns a grayscale theme. Pipes are told apart by shade.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "mono"
	grays := []string{"255", "252", "250", "248", "246", "244", "242", "240", "238"}
	for i, c := range []core.Color{
		core.ColorRed, core.ColorOrange, core.ColorBlue, core.ColorGreen, core.ColorYellow,
		core.ColorCyan, core.ColorPink, core.ColorMagenta, core.ColorMaroon,
	} {
		theme.Palette[c] = fg(grays[i])
	}
	theme.MenuSolved = fg("255").Bold(true)
	theme.MenuUnsolved = fg("242")
	return theme
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"neon":    NeonTheme,
	"pastel":  PastelTheme,
	"mono":    MonochromeTheme,
}

// ThemeByName returns the named theme.
func ThemeByName(name string) (Theme, bool) {
	build, ok := themes[name]
	if !ok {
		return DefaultTheme(), false
	}
	return build(), true
}

// ThemeNames lists the available themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// style returns the palette entry of a screen color.
func (t Theme) style(c core.Color) lipgloss.Style {
	if s, ok := t.Palette[c]; ok {
		return s
	}
	return t.Palette[core.ColorDefault]
}
