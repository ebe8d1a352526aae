package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/apsystem/apsview/internal/domain"
	"github.com/apsystem/apsview/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colours one UI theme draws with.
type Palette struct {
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color
	Blue   lipgloss.Color
	Purple lipgloss.Color
	Dim    lipgloss.Color
	Fg     lipgloss.Color
	Header lipgloss.Color
}

var palettes = map[theme.Theme]Palette{
	theme.Light: {
		Green:  "#427b58",
		Yellow: "#b57614",
		Red:    "#9d0006",
		Blue:   "#076678",
		Purple: "#8f3f71",
		Dim:    "#7c6f64",
		Fg:     "#3c3836",
		Header: "#af3a03",
	},
	theme.Gray: {
		Green:  "#98c379",
		Yellow: "#e5c07b",
		Red:    "#e06c75",
		Blue:   "#61afef",
		Purple: "#c678dd",
		Dim:    "#8b8f98",
		Fg:     "#d0d3d8",
		Header: "#d19a66",
	},
	theme.Dark: {
		Green:  "#8ec07c",
		Yellow: "#fabd2f",
		Red:    "#fb4934",
		Blue:   "#83a598",
		Purple: "#d3869b",
		Dim:    "#928374",
		Fg:     "#ebdbb2",
		Header: "#fe8019",
	},
}

// Current colours. ApplyTheme swaps them.
var (
	ColorGreen  lipgloss.Color
	ColorYellow lipgloss.Color
	ColorRed    lipgloss.Color
	ColorBlue   lipgloss.Color
	ColorPurple lipgloss.Color
	ColorDim    lipgloss.Color
	ColorFg     lipgloss.Color
	ColorHeader lipgloss.Color
)

// Predefined lipgloss styles, rebuilt by ApplyTheme.
var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StylePurple lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

func init() {
	ApplyTheme(theme.Light)
}

// PaletteFor returns the palette of t. Unknown themes get the light palette.
func PaletteFor(t theme.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[theme.Light]
}

// ApplyTheme switches the package colours and styles to the palette of t.
// It has the signature of a theme.Manager subscriber.
func ApplyTheme(t theme.Theme) {
	p := PaletteFor(t)
	ColorGreen, ColorYellow, ColorRed, ColorBlue = p.Green, p.Yellow, p.Red, p.Blue
	ColorPurple, ColorDim, ColorFg, ColorHeader = p.Purple, p.Dim, p.Fg, p.Header

	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// BookingPill renders the booking state of a step.
func BookingPill(b domain.BookingStatus) string {
	switch b {
	case domain.BookingWIP:
		return StyleYellow.Render("WIP")
	case domain.BookingFixed:
		return StyleBlue.Render("FIXED")
	case domain.BookingNormal:
		return StyleGreen.Render("PLAN")
	default:
		return StyleDim.Render(fmt.Sprintf("?%d", int(b)))
	}
}

// DelayStyled colours a lot's delay text: green when early or on time,
// yellow for up to two days late, red beyond.
func DelayStyled(r domain.LotPlanResult) string {
	if r.DelayText == "" {
		return StyleDim.Render("—")
	}
	switch {
	case r.Delay <= 0 || r.DelayText == "0:00":
		return StyleGreen.Render(r.DelayText)
	case r.Delay <= 48*time.Hour:
		return StyleYellow.Render(r.DelayText)
	default:
		return StyleRed.Render(r.DelayText)
	}
}

// Header renders a section header with the header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
