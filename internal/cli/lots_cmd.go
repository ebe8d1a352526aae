package cli

import (
	"context"
	"fmt"

	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/apsystem/apsview/internal/domain"
	"github.com/apsystem/apsview/internal/schedulejob"
	"github.com/spf13/cobra"
)

func newLotsCmd(app *App) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "lots",
		Short: "List lots, optionally filtered by product or lot id",
		RunE: func(cmd *cobra.Command, args []string) error {
			lots, err := app.Jobs.LoadLots(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLots(schedulejob.FilterLots(lots, filter)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Case-insensitive product or lot id substring")
	return cmd
}

func newPriorityCmd(app *App) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:       "priority up|down",
		Short:     "Raise or lower the priority of the filtered lots by 10",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			lots, err := app.Jobs.LoadLots(ctx)
			if err != nil {
				return err
			}

			edit := schedulejob.New(schedulejob.WithConsole(app.Console))
			edit.SetLots(lots)
			edit.SetProductFilter(filter)

			switch args[0] {
			case "up":
				edit.IncreasePriority()
			case "down":
				edit.DecreasePriority()
			default:
				return fmt.Errorf("unknown direction %q (expected up or down)", args[0])
			}

			affected := edit.FilteredLots()
			if len(affected) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No lots match."))
				return nil
			}

			changed := make([]domain.Lot, 0, len(affected))
			for _, l := range affected {
				changed = append(changed, *l)
			}
			if err := app.Jobs.SaveLotPriorities(ctx, changed); err != nil {
				return err
			}
			edit.AddDebugLog(fmt.Sprintf("priority %s on %d lots (filter %q)", args[0], len(affected), filter))

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLots(affected))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Case-insensitive product or lot id substring")
	return cmd
}
