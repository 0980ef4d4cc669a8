package compliance

import (
	"sort"
	"time"

	"github.com/alexanderramin/shiftaudit/internal/domain"
)

// ShortHoursRow lists the short-hours days of one employee.
type ShortHoursRow struct {
	EmployeeName string
	PositionID   string
	Dates        []time.Time
	Hours        []float64 // TotalHours per entry in Dates
}

// StreakRow names an employee whose worked days form an unbroken streak.
type StreakRow struct {
	EmployeeName string
	PositionID   string
}

// LongShiftRow is one day on which an employee worked a long shift.
type LongShiftRow struct {
	EmployeeName string
	PositionID   string
	Date         time.Time
	Hours        float64
}

// Report is the assembled, render-ready result of an audit.
type Report struct {
	ShortHours []ShortHoursRow
	Streaks    []StreakRow
	LongShifts []LongShiftRow
}

// Empty reports whether no rule matched.
func (r Report) Empty() bool {
	return len(r.ShortHours) == 0 && len(r.Streaks) == 0 && len(r.LongShifts) == 0
}

// PositionIndex maps each employee to the PositionID of their first record in
// input order.
func PositionIndex(records []domain.ShiftRecord) map[string]string {
	idx := make(map[string]string)
	for _, r := range records {
		if _, ok := idx[r.EmployeeName]; !ok {
			idx[r.EmployeeName] = r.PositionID
		}
	}
	return idx
}

// AssembleReport joins detections with each employee's position id. Rows are
// ordered by employee name, then date.
func AssembleReport(agg Aggregates, det Detections, records []domain.ShiftRecord) Report {
	positions := PositionIndex(records)
	var rep Report

	for name, dates := range det.ShortHours {
		row := ShortHoursRow{
			EmployeeName: name,
			PositionID:   positions[name],
			Dates:        append([]time.Time(nil), dates...),
			Hours:        make([]float64, len(dates)),
		}
		for i, d := range dates {
			row.Hours[i] = agg[name][d].TotalHours
		}
		rep.ShortHours = append(rep.ShortHours, row)
	}
	sort.Slice(rep.ShortHours, func(i, j int) bool {
		return rep.ShortHours[i].EmployeeName < rep.ShortHours[j].EmployeeName
	})

	for name, ok := range det.Streaks {
		if !ok {
			continue
		}
		rep.Streaks = append(rep.Streaks, StreakRow{EmployeeName: name, PositionID: positions[name]})
	}
	sort.Slice(rep.Streaks, func(i, j int) bool {
		return rep.Streaks[i].EmployeeName < rep.Streaks[j].EmployeeName
	})

	for ed, ok := range det.LongShifts {
		if !ok {
			continue
		}
		rep.LongShifts = append(rep.LongShifts, LongShiftRow{
			EmployeeName: ed.EmployeeName,
			PositionID:   positions[ed.EmployeeName],
			Date:         ed.Date,
			Hours:        agg[ed.EmployeeName][ed.Date].TotalHours,
		})
	}
	SortLongShiftRows(rep.LongShifts)

	return rep
}

// SortLongShiftRows orders rows by employee name, then date.
func SortLongShiftRows(rows []LongShiftRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].EmployeeName != rows[j].EmployeeName {
			return rows[i].EmployeeName < rows[j].EmployeeName
		}
		return rows[i].Date.Before(rows[j].Date)
	})
}

// Evaluate runs aggregation, detection and assembly over records.
func Evaluate(records []domain.ShiftRecord) (Report, Aggregates, error) {
	agg, err := Aggregate(records)
	if err != nil {
		return Report{}, nil, err
	}
	return AssembleReport(agg, Detect(agg), records), agg, nil
}
