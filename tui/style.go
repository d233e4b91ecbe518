package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleRoomName = lipgloss.NewStyle().
			Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleDanger = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePrompt = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindRoomName
	kindError
	kindDanger
	kindPrompt
)

// classifyLine determines what kind of output line this is. Room name
// lines are short title-case headings; refusals and hazards get their
// own colors.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "It is pitch black"),
		strings.HasPrefix(line, "Oh, no!"),
		strings.Contains(line, "****"):
		return kindDanger
	case strings.HasPrefix(line, "You can't"),
		strings.HasPrefix(line, "You don't"),
		strings.HasPrefix(line, "I don't understand"),
		strings.HasPrefix(line, "I don't know"):
		return kindError
	case strings.HasPrefix(line, "What do you want"),
		strings.HasPrefix(line, "Do you wish"),
		strings.HasPrefix(line, "Enter a file name"):
		return kindPrompt
	case looksLikeRoomName(line):
		return kindRoomName
	default:
		return kindNarrative
	}
}

// looksLikeRoomName reports whether the line is a short heading like
// "West of House": few words, no sentence punctuation, leading capital.
func looksLikeRoomName(line string) bool {
	if len(line) == 0 || len(line) > 40 {
		return false
	}
	if strings.ContainsAny(line, ".!?:\"") {
		return false
	}
	if line[0] < 'A' || line[0] > 'Z' {
		return false
	}
	return len(strings.Fields(line)) <= 6
}
