package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/apsystem/apsview/internal/domain"
	"github.com/apsystem/apsview/internal/gantt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// choiceFlag is a string flag restricted to a fixed set of values.
type choiceFlag struct {
	value   string
	allowed []string
	kind    string
}

var _ pflag.Value = (*choiceFlag)(nil)

func newChoiceFlag(kind, def string, allowed ...string) *choiceFlag {
	return &choiceFlag{value: def, allowed: allowed, kind: kind}
}

func (f *choiceFlag) String() string { return f.value }
func (f *choiceFlag) Type() string   { return f.kind }

func (f *choiceFlag) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(f.allowed, s) {
		return fmt.Errorf("unknown %s %q (expected %s)", f.kind, s, strings.Join(f.allowed, ", "))
	}
	f.value = s
	return nil
}

func newGanttCmd(app *App) *cobra.Command {
	modes := make([]string, 0, len(gantt.Modes))
	for _, m := range gantt.Modes {
		modes = append(modes, string(m))
	}
	by := newChoiceFlag("grouping", "lot", "lot", "machine")
	mode := newChoiceFlag("mode", string(app.ganttMode()), modes...)
	var scheduleID string
	var columns int

	cmd := &cobra.Command{
		Use:   "gantt",
		Short: "Print a Gantt chart of a schedule by lot or by machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := app.Results.StepResults(context.Background(), scheduleID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s  %s\n", formatter.Bold("Schedule"), set.ScheduleID,
				formatter.Dim(fmt.Sprintf("by %s · %s", by, mode)))
			if len(set.Steps) == 0 {
				fmt.Fprintln(out, formatter.Dim("No planned steps."))
				return nil
			}

			chart := gantt.NewTimeline(columns)
			chart.SetItems(chartItems(by.value, set.Steps))
			gantt.SetScale(chart, gantt.Mode(mode.value))
			fmt.Fprintln(out, chart.View())
			return nil
		},
	}

	cmd.Flags().Var(by, "by", "Row grouping: lot or machine")
	cmd.Flags().Var(mode, "mode", "Time scale: "+strings.Join(modes, ", "))
	cmd.Flags().StringVar(&scheduleID, "schedule", "", "Schedule id (default: latest)")
	cmd.Flags().IntVar(&columns, "columns", app.ChartColumns, "Maximum chart columns")
	return cmd
}

func chartItems(by string, steps []domain.StepResult) []gantt.Item {
	if by == "machine" {
		return gantt.MachineItems(steps)
	}
	return gantt.LotItems(steps)
}
