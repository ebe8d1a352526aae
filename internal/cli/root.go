package cli

import (
	"github.com/apsystem/apsview/internal/gantt"
	"github.com/apsystem/apsview/internal/service"
	"github.com/apsystem/apsview/internal/theme"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands and the TUI.
type App struct {
	Jobs    service.ScheduleJobService
	Results service.ResultService
	Import  service.ImportService
	Theme   *theme.Manager

	// Console receives operator-facing log lines such as the debug log
	// mirror of the schedule editor.
	Console zerolog.Logger

	User         string
	GanttMode    gantt.Mode
	ChartColumns int

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) ganttMode() gantt.Mode {
	if a.GanttMode.Valid() {
		return a.GanttMode
	}
	return gantt.ModeDay
}

// NewRootCmd creates the top-level "apsview" command and registers all
// subcommands against the provided App. Without a subcommand it starts the
// TUI on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "apsview",
		Short:         "Schedule viewer and lot priority editor",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newTUICmd(app),
		newImportCmd(app),
		newLotsCmd(app),
		newPriorityCmd(app),
		newGanttCmd(app),
		newSchedulesCmd(app),
		newModelsCmd(app),
		newThemeCmd(app),
		newRoutesCmd(),
	)

	return root
}
