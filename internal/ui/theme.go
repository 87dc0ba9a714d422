package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box border.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Open, Error lipgloss.TerminalColor
	HighlightFG, HighlightBG, CompletedRow     lipgloss.TerminalColor

	Border                   lipgloss.Border
	BoxUnchecked, BoxChecked string
	SymOK, SymFail           string
}

// ThemeNames lists the accepted theme names, default first.
var ThemeNames = []string{"classic", "neon", "mono"}

// ThemeByName returns the named theme; unknown names fall back to classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:  "neon",
			Title: lipgloss.Color("13"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("14"),
			Success: lipgloss.Color("10"), Open: lipgloss.Color("213"), Error: lipgloss.Color("9"),
			HighlightFG: lipgloss.Color("0"), HighlightBG: lipgloss.Color("14"), CompletedRow: lipgloss.Color("11"),
			Border:       lipgloss.RoundedBorder(),
			BoxUnchecked: "◻", BoxChecked: "◼",
			SymOK: "✔", SymFail: "✖",
		}
	case "mono":
		return Theme{
			Name:  "mono",
			Title: lipgloss.NoColor{}, Muted: lipgloss.NoColor{}, Accent: lipgloss.NoColor{},
			Success: lipgloss.NoColor{}, Open: lipgloss.NoColor{}, Error: lipgloss.NoColor{},
			HighlightFG: lipgloss.NoColor{}, HighlightBG: lipgloss.NoColor{}, CompletedRow: lipgloss.NoColor{},
			Border:       lipgloss.NormalBorder(),
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymOK: "ok", SymFail: "error:",
		}
	default: // classic
		return Theme{
			Name:  "classic",
			Title: lipgloss.NoColor{}, Muted: lipgloss.Color("8"), Accent: lipgloss.Color("12"),
			Success: lipgloss.Color("42"), Open: lipgloss.Color("9"), Error: lipgloss.Color("9"),
			HighlightFG: lipgloss.Color("0"), HighlightBG: lipgloss.Color("12"), CompletedRow: lipgloss.Color("3"),
			Border:       lipgloss.NormalBorder(),
			BoxUnchecked: "☐", BoxChecked: "☑",
			SymOK: "✔", SymFail: "✖",
		}
	}
}

// ValidTheme reports whether name is one of ThemeNames.
func ValidTheme(name string) bool {
	for _, n := range ThemeNames {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
