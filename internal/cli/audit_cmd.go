package cli

import (
	"fmt"

	"github.com/alexanderramin/shiftaudit/internal/app"
	"github.com/alexanderramin/shiftaudit/internal/cli/formatter"
	"github.com/alexanderramin/shiftaudit/internal/config"
	"github.com/spf13/cobra"
)

func newAuditCmd(a *App) *cobra.Command {
	var in inputFlags
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "audit <file>",
		Short: "Check a timecard export against the attendance rules",
		Long: `Reads an xlsx, csv or json timecard export and reports:
  - days worked between 1 and 10 hours (inclusive)
  - employees whose whole worked-day history is an unbroken run of 7+ days
  - days containing a single shift of 14 hours or more`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := a.config()

			format, err := out.resolve(cfg)
			if err != nil {
				return err
			}

			opts := cfg.TimecardOptions()
			if in.sheet != "" {
				opts.Sheet = in.sheet
			}
			if opts.Sheet == "" && a.interactive() {
				opts.Sheet, err = a.chooseSheet(cmd, args[0])
				if err != nil {
					return err
				}
			}

			resp, err := a.Audit.Audit(ctx, app.AuditRequest{Path: args[0], Options: opts})
			if err != nil {
				return err
			}

			var rendered string
			switch format {
			case config.FormatJSON:
				data, err := formatter.FormatAuditJSON(resp)
				if err != nil {
					return err
				}
				rendered = string(data)
			case config.FormatPlain:
				rendered = formatter.FormatAuditPlain(resp.Report)
			default:
				rendered = formatter.FormatAudit(resp)
			}

			if out.view && a.interactive() {
				return a.showPager("Audit: "+resp.Source, rendered)
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	in.register(cmd.Flags())
	out.register(cmd.Flags())

	return cmd
}

// chooseSheet prompts for a worksheet when the workbook has more than one.
// An empty result selects the first sheet.
func (a *App) chooseSheet(cmd *cobra.Command, path string) (string, error) {
	names, err := a.Audit.ListSheets(cmd.Context(), path)
	if err != nil || len(names) < 2 {
		// Load reports unreadable files with better context.
		return "", nil
	}
	pick := a.PickSheet
	if pick == nil {
		pick = pickSheetForm
	}
	sheet, err := pick(names)
	if err != nil {
		return "", fmt.Errorf("selecting sheet: %w", err)
	}
	return sheet, nil
}

func (a *App) showPager(title, content string) error {
	show := a.ShowPager
	if show == nil {
		show = runPager
	}
	return show(title, content)
}
