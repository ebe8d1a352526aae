package cli

import (
	"context"
	"fmt"

	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Load plan models, lots and schedule results from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d models, %d lots, %d schedules, %d steps\n",
				formatter.StyleGreen.Render("Imported"),
				result.ModelCount, result.LotCount, result.ScheduleCount, result.StepCount)
			return nil
		},
	}
}
