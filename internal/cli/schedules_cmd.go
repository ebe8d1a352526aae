package cli

import (
	"context"
	"fmt"

	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSchedulesCmd(app *App) *cobra.Command {
	var lotsFor, usageFor bool

	cmd := &cobra.Command{
		Use:   "schedules [SCHEDULE_ID]",
		Short: "List schedules, or show the results of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			id := ""
			if len(args) == 1 {
				id = args[0]
			}

			switch {
			case lotsFor:
				report, err := app.Results.LotResults(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.Header("Lot results "+report.ScheduleID))
				fmt.Fprint(out, formatter.FormatLotResults(report.Lots, report.Stats))
			case usageFor:
				report, err := app.Results.MachineUsage(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.Header("Machine usage "+report.ScheduleID))
				fmt.Fprint(out, formatter.FormatMachineUsage(report.Machines))
			default:
				infos, err := app.Jobs.ListSchedules(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatSchedules(infos, id))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&lotsFor, "lots", false, "Show per-lot plan results")
	cmd.Flags().BoolVar(&usageFor, "usage", false, "Show machine usage")
	cmd.MarkFlagsMutuallyExclusive("lots", "usage")
	return cmd
}

func newModelsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List plan models",
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := app.Jobs.LoadModels(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatModels(models))
			return nil
		},
	}
}
