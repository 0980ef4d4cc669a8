package formatter

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/shiftaudit/internal/app"
	"github.com/alexanderramin/shiftaudit/internal/compliance"
	"github.com/alexanderramin/shiftaudit/internal/domain"
)

// Section titles, in report order.
const (
	TitleShortHours = "Employees who worked for 1 to 10 hours"
	TitleStreaks    = "Employees who worked 7 consecutive days"
	TitleLongShifts = "Employees who worked 14 hours in a day"
)

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(domain.DateLayout)
}

// FormatDates joins dates with ", ".
func FormatDates(dates []time.Time) string {
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = FormatDate(d)
	}
	return strings.Join(parts, ", ")
}

// FormatHours renders decimal hours as "7h 30m".
func FormatHours(h float64) string {
	total := int(h*60 + 0.5)
	if total <= 0 {
		return "0m"
	}
	hh, mm := total/60, total%60
	switch {
	case hh > 0 && mm > 0:
		return fmt.Sprintf("%dh %dm", hh, mm)
	case hh > 0:
		return fmt.Sprintf("%dh", hh)
	default:
		return fmt.Sprintf("%dm", mm)
	}
}

// FormatAudit renders an audit response as a styled terminal report.
func FormatAudit(resp *app.AuditResponse) string {
	var b strings.Builder
	rep := resp.Report

	summary := fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		Dim("Records"), Bold(fmt.Sprintf("%d", resp.Records)),
		Dim("Employees"), Bold(fmt.Sprintf("%d", resp.Employees)),
		Dim("Dropped rows"), CountBadge(len(resp.Dropped)),
		Dim("Flagged"), CountBadge(len(rep.ShortHours)+len(rep.Streaks)+len(rep.LongShifts)),
	)
	source := filepath.Base(resp.Source)
	if resp.Sheet != "" {
		source += " › " + resp.Sheet
	}
	b.WriteString(RenderBox("Timecard Audit", StyleFg.Render(source)+"\n"+summary))
	b.WriteString("\n\n")

	b.WriteString(Header(TitleShortHours) + "\n")
	if len(rep.ShortHours) == 0 {
		b.WriteString(Dim("  None") + "\n")
	} else {
		rows := make([][]string, 0, len(rep.ShortHours))
		for _, r := range rep.ShortHours {
			rows = append(rows, []string{Bold(r.EmployeeName), r.PositionID, StyleYellow.Render(FormatDates(r.Dates))})
		}
		b.WriteString(RenderTable([]string{"NAME", "POSITION ID", "DATES"}, rows))
	}
	b.WriteString("\n")

	b.WriteString(Header(TitleStreaks) + "\n")
	if len(rep.Streaks) == 0 {
		b.WriteString(Dim("  None") + "\n")
	} else {
		rows := make([][]string, 0, len(rep.Streaks))
		for _, r := range rep.Streaks {
			rows = append(rows, []string{Bold(r.EmployeeName), r.PositionID})
		}
		b.WriteString(RenderTable([]string{"NAME", "POSITION ID"}, rows))
	}
	b.WriteString("\n")

	b.WriteString(Header(TitleLongShifts) + "\n")
	if len(rep.LongShifts) == 0 {
		b.WriteString(Dim("  None") + "\n")
	} else {
		rows := make([][]string, 0, len(rep.LongShifts))
		for _, r := range rep.LongShifts {
			rows = append(rows, []string{Bold(r.EmployeeName), r.PositionID, StyleRed.Render(FormatDate(r.Date)), FormatHours(r.Hours)})
		}
		b.WriteString(RenderTable([]string{"NAME", "POSITION ID", "DATE", "DAY TOTAL"}, rows))
	}

	if len(resp.Dropped) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %d row(s) dropped for missing or unparseable time in / hours", len(resp.Dropped))) + "\n")
		for _, d := range resp.Dropped {
			b.WriteString(Dim(fmt.Sprintf("    line %d: %s", d.Line, d.Reason)) + "\n")
		}
	}

	return b.String()
}

// FormatAuditPlain renders the report as unstyled "Summary:" sections.
func FormatAuditPlain(rep compliance.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Summary: %s\n", TitleShortHours)
	for _, r := range rep.ShortHours {
		fmt.Fprintf(&b, "Name: %s, Position ID: %s, Dates: %s\n", r.EmployeeName, r.PositionID, FormatDates(r.Dates))
	}

	fmt.Fprintf(&b, "\nSummary: %s\n", TitleStreaks)
	for _, r := range rep.Streaks {
		fmt.Fprintf(&b, "Name: %s, Position ID: %s\n", r.EmployeeName, r.PositionID)
	}

	fmt.Fprintf(&b, "\nSummary: %s\n", TitleLongShifts)
	for _, r := range rep.LongShifts {
		fmt.Fprintf(&b, "Name: %s, Position ID: %s, Date: %s\n", r.EmployeeName, r.PositionID, FormatDate(r.Date))
	}

	return b.String()
}

type auditJSON struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Source      string          `json:"source"`
	Sheet       string          `json:"sheet,omitempty"`
	Records     int             `json:"records"`
	Employees   int             `json:"employees"`
	Dropped     []droppedJSON   `json:"dropped"`
	ShortHours  []shortJSON     `json:"short_hours"`
	Streaks     []streakJSON    `json:"consecutive_days"`
	LongShifts  []longShiftJSON `json:"long_shifts"`
}

type droppedJSON struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type shortJSON struct {
	EmployeeName string    `json:"employee_name"`
	PositionID   string    `json:"position_id"`
	Dates        []string  `json:"dates"`
	Hours        []float64 `json:"hours"`
}

type streakJSON struct {
	EmployeeName string `json:"employee_name"`
	PositionID   string `json:"position_id"`
}

type longShiftJSON struct {
	EmployeeName string  `json:"employee_name"`
	PositionID   string  `json:"position_id"`
	Date         string  `json:"date"`
	Hours        float64 `json:"hours"`
}

// FormatAuditJSON renders the audit response as indented JSON. Empty
// sections encode as [] rather than null.
func FormatAuditJSON(resp *app.AuditResponse) ([]byte, error) {
	out := auditJSON{
		RunID:       resp.RunID,
		GeneratedAt: resp.GeneratedAt,
		Source:      resp.Source,
		Sheet:       resp.Sheet,
		Records:     resp.Records,
		Employees:   resp.Employees,
		Dropped:     make([]droppedJSON, 0, len(resp.Dropped)),
		ShortHours:  make([]shortJSON, 0, len(resp.Report.ShortHours)),
		Streaks:     make([]streakJSON, 0, len(resp.Report.Streaks)),
		LongShifts:  make([]longShiftJSON, 0, len(resp.Report.LongShifts)),
	}
	for _, d := range resp.Dropped {
		out.Dropped = append(out.Dropped, droppedJSON{Line: d.Line, Reason: d.Reason})
	}
	for _, r := range resp.Report.ShortHours {
		dates := make([]string, len(r.Dates))
		for i, d := range r.Dates {
			dates[i] = FormatDate(d)
		}
		out.ShortHours = append(out.ShortHours, shortJSON{
			EmployeeName: r.EmployeeName,
			PositionID:   r.PositionID,
			Dates:        dates,
			Hours:        r.Hours,
		})
	}
	for _, r := range resp.Report.Streaks {
		out.Streaks = append(out.Streaks, streakJSON{EmployeeName: r.EmployeeName, PositionID: r.PositionID})
	}
	for _, r := range resp.Report.LongShifts {
		out.LongShifts = append(out.LongShifts, longShiftJSON{
			EmployeeName: r.EmployeeName,
			PositionID:   r.PositionID,
			Date:         FormatDate(r.Date),
			Hours:        r.Hours,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding audit report: %w", err)
	}
	return append(data, '\n'), nil
}

// FormatSheets lists workbook sheets, marking the first as the default.
func FormatSheets(names []string) string {
	if len(names) == 0 {
		return Dim("No sheets (single-table file)") + "\n"
	}
	var b strings.Builder
	for i, n := range names {
		line := fmt.Sprintf("%d  %s", i+1, n)
		if i == 0 {
			line += Dim("  (default)")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
