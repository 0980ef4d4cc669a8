package timecard

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/shiftaudit/internal/domain"
)

// Table is a header row plus data rows of string cells.
type Table struct {
	Sheet  string
	Header []string
	Rows   [][]string
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

type columnIndex struct {
	name, position, timeIn, hours int
}

func indexColumns(header []string, cols Columns) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, seen := pos[key]; !seen {
			pos[key] = i
		}
	}

	var missing []string
	lookup := func(col string) int {
		i, ok := pos[normalizeHeader(col)]
		if !ok {
			missing = append(missing, fmt.Sprintf("%q", col))
			return -1
		}
		return i
	}

	idx := columnIndex{
		name:     lookup(cols.EmployeeName),
		position: lookup(cols.PositionID),
		timeIn:   lookup(cols.TimeIn),
		hours:    lookup(cols.TimecardHours),
	}
	if len(missing) > 0 {
		return columnIndex{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

// Normalize maps table rows onto shift records. Rows whose time-in or hours
// cannot be parsed are dropped and listed in Result.Dropped. Names and
// position ids are only trimmed.
func Normalize(table *Table, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if table == nil || len(table.Header) == 0 {
		return nil, ErrEmptySheet
	}

	idx, err := indexColumns(table.Header, opts.Columns)
	if err != nil {
		return nil, err
	}

	res := &Result{Sheet: table.Sheet, Records: make([]domain.ShiftRecord, 0, len(table.Rows))}
	for i, row := range table.Rows {
		line := i + 2

		rawIn := cellValue(row, idx.timeIn)
		rawHours := cellValue(row, idx.hours)
		if isBlankRow(row) {
			continue
		}

		timeIn, ok := ParseTimeIn(rawIn, opts.TimeLayouts)
		if !ok {
			res.Dropped = append(res.Dropped, DroppedRow{Line: line, Reason: dropReason("time in", rawIn)})
			continue
		}
		hours, ok := ParseHours(rawHours)
		if !ok {
			res.Dropped = append(res.Dropped, DroppedRow{Line: line, Reason: dropReason("timecard hours", rawHours)})
			continue
		}

		res.Records = append(res.Records, domain.ShiftRecord{
			EmployeeName:  cellValue(row, idx.name),
			PositionID:    cellValue(row, idx.position),
			TimeIn:        timeIn,
			TimecardHours: hours,
		})
	}
	return res, nil
}

func dropReason(field, raw string) string {
	if raw == "" {
		return "missing " + field
	}
	return fmt.Sprintf("unparseable %s %q", field, raw)
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
