package cli

import (
	"fmt"

	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/apsystem/apsview/internal/router"
	"github.com/spf13/cobra"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the screens reachable with :go in the TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoutes(router.Routes()))
			return nil
		},
	}
}
