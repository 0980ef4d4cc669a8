package cli

import (
	"github.com/alexanderramin/shiftaudit/internal/config"
	"github.com/alexanderramin/shiftaudit/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and terminal hooks used by CLI commands.
type App struct {
	Audit  service.AuditService
	Config *config.Config

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// PickSheet asks the user to choose a worksheet. Defaults to a huh select.
	PickSheet func(names []string) (string, error)
	// ShowPager displays rendered output in a scrollable view. Defaults to
	// a bubbletea program on the alternate screen.
	ShowPager func(title, content string) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) config() config.Config {
	if a.Config == nil {
		return config.DefaultConfig()
	}
	return *a.Config
}

// NewRootCmd creates the top-level "shiftaudit" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "shiftaudit",
		Short:         "Audit timecards for short days, long shifts and 7-day streaks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAuditCmd(app),
		newSheetsCmd(app),
	)

	return root
}
