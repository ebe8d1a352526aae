package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/apsystem/apsview/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// ThemeButtons renders one selector button per theme. A theme's button is
// highlighted when any of its ids is active in states.
func ThemeButtons(states map[string]bool) string {
	parts := make([]string, 0, len(theme.All))
	for _, t := range theme.All {
		label := strings.ToUpper(string(t[:1])) + string(t[1:])
		active := false
		for _, id := range theme.ButtonIDs(t) {
			active = active || states[id]
		}
		if active {
			parts = append(parts, lipgloss.NewStyle().Bold(true).Foreground(ColorHeader).Render("["+label+"]"))
		} else {
			parts = append(parts, Dim(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

// ActiveButtonIDs lists the ids marked active in states, sorted.
func ActiveButtonIDs(states map[string]bool) []string {
	var ids []string
	for id, on := range states {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Truncate shortens s to width visible cells, ending with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
