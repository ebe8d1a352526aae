// Package gantt maps zoom levels to chart scale configuration and provides
// the date and colour helpers the Gantt views share.
package gantt

// Mode is a requested time granularity for the chart.
type Mode string

const (
	ModeHour  Mode = "hour"
	ModeDay   Mode = "day"
	ModeWeek  Mode = "week"
	ModeMonth Mode = "month"
)

// Modes lists the recognized granularities from finest to coarsest.
var Modes = []Mode{ModeHour, ModeDay, ModeWeek, ModeMonth}

// ScaleHeight is the fixed chart header height applied by SetScale.
const ScaleHeight = 60

// Subscale describes one secondary header row of the chart.
type Subscale struct {
	Unit string
	Step int
	Date string
}

// Config is the declarative chart configuration. Date formats use the chart
// directives %Y %m %d %H %i %W.
type Config struct {
	ScaleUnit   string
	DateScale   string
	Subscales   []Subscale
	ScaleHeight int
}

// Chart is the boundary to the chart renderer. SetScale writes into Config
// and then asks for a render; it never reads other chart state back.
type Chart interface {
	Config() *Config
	Render()
}

type scale struct {
	unit      string
	dateScale string
	subDate   string
}

var scales = map[Mode]scale{
	ModeHour:  {unit: "day", dateScale: "%Y-%m-%d", subDate: "%H:%i"},
	ModeDay:   {unit: "week", dateScale: "第 %W 週", subDate: "%m/%d"},
	ModeWeek:  {unit: "month", dateScale: "%Y-%m", subDate: "第 %W 週"},
	ModeMonth: {unit: "year", dateScale: "%Y", subDate: "%m月"},
}

// Valid reports whether m is one of the recognized modes.
func (m Mode) Valid() bool {
	_, ok := scales[m]
	return ok
}

// SetScale configures chart for mode and re-renders it. The scale unit is one
// level coarser than mode and mode itself becomes the only subscale.
// Unrecognized modes leave the chart untouched and report false.
func SetScale(chart Chart, mode Mode) bool {
	sc, ok := scales[mode]
	if !ok {
		return false
	}
	cfg := chart.Config()
	cfg.ScaleUnit = sc.unit
	cfg.DateScale = sc.dateScale
	cfg.Subscales = []Subscale{{Unit: string(mode), Step: 1, Date: sc.subDate}}
	cfg.ScaleHeight = ScaleHeight
	chart.Render()
	return true
}
