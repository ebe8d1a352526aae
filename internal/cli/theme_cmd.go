package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/apsystem/apsview/internal/theme"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|gray|dark]",
		Short:     "Show or change the UI theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "gray", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			current, err := app.Theme.Load(ctx)
			if err != nil {
				return err
			}

			value := ""
			switch {
			case len(args) == 1:
				value = args[0]
			case app.interactive():
				value = string(current)
				if err := themeForm(&value).Run(); err != nil {
					return fmt.Errorf("choosing theme: %w", err)
				}
			default:
				fmt.Fprintf(out, "Theme: %s\n", current)
				fmt.Fprintln(out, formatter.ThemeButtons(app.Theme.ButtonStates()))
				return nil
			}

			t, err := app.Theme.Set(ctx, value)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Theme: %s\n", t)
			fmt.Fprintln(out, formatter.Dim("active: "+strings.Join(formatter.ActiveButtonIDs(app.Theme.ButtonStates()), ", ")))
			return nil
		},
	}
}

// themeForm is a single select over the known themes bound to value.
func themeForm(value *string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		label := strings.ToUpper(string(t[:1])) + string(t[1:])
		opts = append(opts, huh.NewOption(label, string(t)))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(opts...).
				Value(value),
		),
	)
}
