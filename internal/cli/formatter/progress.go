package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderUtilization renders a machine load bar like [████░░░░]  45%.
// Loads above 85% are red, above 60% yellow, otherwise green.
func RenderUtilization(ratio float64, width int) string {
	ratio = min(max(ratio, 0), 1)
	width = max(width, 2)

	filled := min(int(ratio*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case ratio > 0.85:
		style = StyleRed
	case ratio > 0.60:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), ratio*100)
}
