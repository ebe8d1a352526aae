package gantt

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Item is one bar on the chart.
type Item struct {
	ID    string
	Row   string
	Label string
	Start time.Time
	End   time.Time
	Color string
}

const (
	defaultMaxColumns = 48
	maxRowLabelWidth  = 16
)

// Timeline is a terminal Gantt chart. It implements Chart: configuration is
// written through Config and takes effect on the next Render.
type Timeline struct {
	cfg        Config
	items      []Item
	maxColumns int
	output     string
	renders    int
}

// NewTimeline returns a chart that draws at most maxColumns subscale cells
// per row. Values below 1 select the default width.
func NewTimeline(maxColumns int) *Timeline {
	if maxColumns < 1 {
		maxColumns = defaultMaxColumns
	}
	return &Timeline{maxColumns: maxColumns}
}

func (t *Timeline) Config() *Config { return &t.cfg }

// SetItems replaces the chart items. The chart is redrawn on the next Render.
func (t *Timeline) SetItems(items []Item) { t.items = items }

func (t *Timeline) Items() []Item { return t.items }

// Render redraws the chart from the current configuration and items.
func (t *Timeline) Render() {
	t.output = t.draw()
	t.renders++
}

// Renders returns how many times Render has been called.
func (t *Timeline) Renders() int { return t.renders }

// View returns the output of the last Render.
func (t *Timeline) View() string { return t.output }

type column struct {
	start time.Time
	end   time.Time
}

func (t *Timeline) draw() string {
	if len(t.items) == 0 || len(t.cfg.Subscales) == 0 {
		return ""
	}
	finest := t.cfg.Subscales[len(t.cfg.Subscales)-1]

	first, last := t.items[0].Start, t.items[0].End
	for _, it := range t.items[1:] {
		if it.Start.Before(first) {
			first = it.Start
		}
		if it.End.After(last) {
			last = it.End
		}
	}

	var cols []column
	for c := truncateTo(finest.Unit, first); c.Before(last) && len(cols) < t.maxColumns; {
		next := advance(finest.Unit, c, finest.Step)
		cols = append(cols, column{start: c, end: next})
		c = next
	}
	if len(cols) == 0 {
		c := truncateTo(finest.Unit, first)
		cols = append(cols, column{start: c, end: advance(finest.Unit, c, finest.Step)})
	}

	cellWidth := 2
	for _, sub := range t.cfg.Subscales {
		for _, col := range cols {
			if w := lipgloss.Width(FormatLabel(sub.Date, col.start)) + 1; w > cellWidth {
				cellWidth = w
			}
		}
	}

	rows, byRow := groupRows(t.items)
	labelWidth := 4
	for _, r := range rows {
		if w := lipgloss.Width(r); w > labelWidth {
			labelWidth = w
		}
	}
	labelWidth = min(labelWidth, maxRowLabelWidth)
	gutter := strings.Repeat(" ", labelWidth+1)

	var b strings.Builder

	b.WriteString(gutter)
	for i := 0; i < len(cols); {
		label := FormatLabel(t.cfg.DateScale, truncateTo(t.cfg.ScaleUnit, cols[i].start))
		span := 1
		for i+span < len(cols) &&
			FormatLabel(t.cfg.DateScale, truncateTo(t.cfg.ScaleUnit, cols[i+span].start)) == label {
			span++
		}
		b.WriteString(fit("│"+label, span*cellWidth))
		i += span
	}
	b.WriteString("\n")

	for _, sub := range t.cfg.Subscales {
		b.WriteString(gutter)
		for _, col := range cols {
			b.WriteString(fit(FormatLabel(sub.Date, col.start), cellWidth))
		}
		b.WriteString("\n")
	}

	for _, row := range rows {
		b.WriteString(fit(row, labelWidth) + " ")
		for _, col := range cols {
			b.WriteString(cell(byRow[row], col, cellWidth))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// groupRows returns row names in order of first appearance with their items.
func groupRows(items []Item) ([]string, map[string][]Item) {
	var rows []string
	byRow := make(map[string][]Item)
	for _, it := range items {
		if _, seen := byRow[it.Row]; !seen {
			rows = append(rows, it.Row)
		}
		byRow[it.Row] = append(byRow[it.Row], it)
	}
	return rows, byRow
}

func cell(items []Item, col column, width int) string {
	for _, it := range items {
		if it.Start.Before(col.end) && it.End.After(col.start) {
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color(it.Color)).
				Render(strings.Repeat("█", width))
		}
	}
	return strings.Repeat(" ", width)
}

// fit pads or cuts s to exactly width terminal cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	for lipgloss.Width(s) > width {
		r := []rune(s)
		s = string(r[:len(r)-1])
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}
