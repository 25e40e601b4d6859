package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/actd/pkg/printers"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Tabs   TabTheme
	Footer FooterTheme
	Panel  PanelTheme
	List   ListTheme
	Modal  ModalTheme
}

// TabTheme styles the Mood/Values/Actions tab strip.
type TabTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Gap      lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Axis  lipgloss.Style
}

// ListTheme styles selectable rows.
type ListTheme struct {
	Selected  lipgloss.Style
	Normal    lipgloss.Style
	Completed lipgloss.Style
	Label     lipgloss.Style
	Empty     lipgloss.Style
}

// ModalTheme styles centered modal overlays (forms, history).
type ModalTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Focus    lipgloss.Style
	Disabled lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")

	return Theme{
		Tabs: TabTheme{
			Active: lipgloss.NewStyle().
				Foreground(accent).
				Bold(true).
				Underline(true).
				Padding(0, 1),
			Inactive: lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Padding(0, 1),
			Gap: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Axis:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		List: ListTheme{
			Selected:  lipgloss.NewStyle().Foreground(accent).Bold(true),
			Normal:    lipgloss.NewStyle(),
			Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
			Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
			Empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title:    lipgloss.NewStyle().Bold(true),
			Body:     lipgloss.NewStyle(),
			Focus:    lipgloss.NewStyle().Foreground(accent),
			Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}

// Score returns the chart color for score on the lo..hi scale.
func Score(score, lo, hi int) color.Color {
	return lipgloss.Color(printers.ScoreColor(score, lo, hi).Hex())
}
