package cli

import (
	"fmt"

	"github.com/alexanderramin/shiftaudit/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSheetsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <file>",
		Short: "List the worksheets of a timecard workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.Audit.ListSheets(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSheets(names))
			return nil
		},
	}
}
