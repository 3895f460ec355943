package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.TerminalColor
	SymDone, SymPending                           string
	Border                                        lipgloss.Border
	Plain                                         bool // no colors at all
}

// ThemeNames lists the accepted theme names.
var ThemeNames = []string{"classic", "neon", "mono"}

// LookupTheme returns the named theme; unknown names give classic.
func LookupTheme(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:    "neon",
			Title:   lipgloss.Color("13"),
			Muted:   lipgloss.Color("8"),
			Accent:  lipgloss.Color("14"),
			Success: lipgloss.Color("10"),
			Error:   lipgloss.Color("9"),
			Pending: lipgloss.Color("11"),
			SymDone: "◼", SymPending: "◻",
			Border: lipgloss.RoundedBorder(),
		}
	case "mono":
		return Theme{
			Name:    "mono",
			Title:   lipgloss.NoColor{},
			Muted:   lipgloss.NoColor{},
			Accent:  lipgloss.NoColor{},
			Success: lipgloss.NoColor{},
			Error:   lipgloss.NoColor{},
			Pending: lipgloss.NoColor{},
			SymDone: "x", SymPending: " ",
			Border: lipgloss.ASCIIBorder(),
			Plain:  true,
		}
	default: // classic
		return Theme{
			Name:    "classic",
			Title:   lipgloss.NoColor{},
			Muted:   lipgloss.Color("8"),
			Accent:  lipgloss.Color("12"),
			Success: lipgloss.Color("42"),
			Error:   lipgloss.Color("9"),
			Pending: lipgloss.Color("214"),
			SymDone: "✓", SymPending: "✗",
			Border: lipgloss.NormalBorder(),
		}
	}
}
