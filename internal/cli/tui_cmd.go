package cli

import (
	"context"
	"fmt"

	"github.com/apsystem/apsview/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}

func runTUI(app *App) error {
	if app.Theme != nil {
		if _, err := app.Theme.Load(context.Background()); err != nil {
			app.Console.Warn().Err(err).Msg("theme not loaded, using light")
		}
		formatter.ApplyTheme(app.Theme.Current())
	}

	m := newAppModel(app)
	defer m.close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
