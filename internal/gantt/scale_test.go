package gantt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChart struct {
	cfg     Config
	renders int
}

func (c *recordingChart) Config() *Config { return &c.cfg }
func (c *recordingChart) Render()         { c.renders++ }

func TestSetScale_Hour(t *testing.T) {
	c := &recordingChart{}

	require.True(t, SetScale(c, ModeHour))

	assert.Equal(t, "day", c.cfg.ScaleUnit)
	assert.Equal(t, "%Y-%m-%d", c.cfg.DateScale)
	assert.Equal(t, []Subscale{{Unit: "hour", Step: 1, Date: "%H:%i"}}, c.cfg.Subscales)
	assert.Equal(t, 60, c.cfg.ScaleHeight)
	assert.Equal(t, 1, c.renders)
}

func TestSetScale_AllModesStepOneLevelUp(t *testing.T) {
	tests := []struct {
		mode     Mode
		unit     string
		scale    string
		subLabel string
	}{
		{ModeHour, "day", "%Y-%m-%d", "%H:%i"},
		{ModeDay, "week", "第 %W 週", "%m/%d"},
		{ModeWeek, "month", "%Y-%m", "第 %W 週"},
		{ModeMonth, "year", "%Y", "%m月"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			c := &recordingChart{}
			require.True(t, SetScale(c, tt.mode))

			assert.Equal(t, tt.unit, c.cfg.ScaleUnit)
			assert.Equal(t, tt.scale, c.cfg.DateScale)
			require.Len(t, c.cfg.Subscales, 1)
			assert.Equal(t, string(tt.mode), c.cfg.Subscales[0].Unit)
			assert.Equal(t, 1, c.cfg.Subscales[0].Step)
			assert.Equal(t, tt.subLabel, c.cfg.Subscales[0].Date)
			assert.Equal(t, ScaleHeight, c.cfg.ScaleHeight)
		})
	}
}

func TestSetScale_InvalidModeLeavesConfigUnchanged(t *testing.T) {
	c := &recordingChart{}
	require.True(t, SetScale(c, ModeWeek))
	before := c.cfg
	before.Subscales = append([]Subscale(nil), c.cfg.Subscales...)

	for _, mode := range []Mode{"invalid", "", "HOUR", "quarter"} {
		assert.False(t, SetScale(c, mode))
	}

	assert.Equal(t, before, c.cfg)
	assert.Equal(t, 1, c.renders)
}

func TestSetScale_InvalidModeOnFreshChart(t *testing.T) {
	c := &recordingChart{}

	assert.False(t, SetScale(c, "invalid"))
	assert.Equal(t, Config{}, c.cfg)
	assert.Zero(t, c.renders)
}

func TestMode_Valid(t *testing.T) {
	for _, m := range Modes {
		assert.True(t, m.Valid(), m)
	}
	assert.False(t, Mode("year").Valid())
}
