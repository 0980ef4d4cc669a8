package cli

import (
	"github.com/alexanderramin/shiftaudit/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// auditHuhTheme matches huh forms to the formatter palette.
func auditHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// sheetSelectForm builds the worksheet select bound to result.
func sheetSelectForm(names []string, result *string) *huh.Form {
	if len(names) > 0 && *result == "" {
		*result = names[0]
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which worksheet should be audited?").
				Description("The workbook has several sheets.").
				Options(huh.NewOptions(names...)...).
				Value(result),
		),
	).WithTheme(auditHuhTheme()).WithShowHelp(false)
}

func pickSheetForm(names []string) (string, error) {
	var sheet string
	if err := sheetSelectForm(names, &sheet).Run(); err != nil {
		return "", err
	}
	return sheet, nil
}
