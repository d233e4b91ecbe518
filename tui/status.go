package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing
// the current room, score, and move count.
func (m Model) renderStatusBar() string {
	w := m.game.World

	roomName := w.Here
	if room := w.HereRoom(); room != nil {
		roomName = room.Name
	}

	left := fmt.Sprintf(" %s", roomName)
	right := fmt.Sprintf("Score: %d/%d | Moves: %d ", w.Score, w.MaxScore, w.Moves)

	// Show carried items if they fit.
	if len(w.Inventory) > 0 {
		var names []string
		for _, id := range w.Inventory {
			if obj := w.Object(id); obj != nil {
				names = append(names, obj.Name)
			}
		}
		candidate := fmt.Sprintf("Inv: %s | Score: %d/%d | Moves: %d ",
			strings.Join(names, ", "), w.Score, w.MaxScore, w.Moves)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
