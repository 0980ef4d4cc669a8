// Package timecard reads raw timecard exports (xlsx, csv, json) and
// normalizes them into shift records. Rows without a usable time-in or hours
// value are dropped and reported; everything else is passed through for the
// compliance core to validate.
package timecard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/shiftaudit/internal/domain"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported timecard format")
	ErrMissingColumn     = errors.New("missing required column")
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrEmptySheet        = errors.New("sheet is empty")
)

// Columns names the source headers for each record field.
type Columns struct {
	EmployeeName  string `toml:"employee_name"`
	PositionID    string `toml:"position_id"`
	TimeIn        string `toml:"time_in"`
	TimeOut       string `toml:"time_out"`
	TimecardHours string `toml:"timecard_hours"`
}

// DefaultColumns returns the headers of the standard payroll export.
func DefaultColumns() Columns {
	return Columns{
		EmployeeName:  "Employee Name",
		PositionID:    "Position ID",
		TimeIn:        "Time",
		TimeOut:       "Time Out",
		TimecardHours: "Timecard Hours (as Time)",
	}
}

// DefaultTimeLayouts are tried in order when parsing time-in values.
var DefaultTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"1/2/06 15:04",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
}

// Options controls how a source is read.
type Options struct {
	Sheet       string
	Columns     Columns
	TimeLayouts []string
}

func (o Options) withDefaults() Options {
	def := DefaultColumns()
	o.Columns.EmployeeName = domain.CoalesceStr(o.Columns.EmployeeName, def.EmployeeName)
	o.Columns.PositionID = domain.CoalesceStr(o.Columns.PositionID, def.PositionID)
	o.Columns.TimeIn = domain.CoalesceStr(o.Columns.TimeIn, def.TimeIn)
	o.Columns.TimeOut = domain.CoalesceStr(o.Columns.TimeOut, def.TimeOut)
	o.Columns.TimecardHours = domain.CoalesceStr(o.Columns.TimecardHours, def.TimecardHours)
	o.TimeLayouts = domain.CoalesceStrs(o.TimeLayouts, DefaultTimeLayouts)
	return o
}

// DroppedRow is a source row that could not become a shift record.
type DroppedRow struct {
	Line   int // 1-based, header is line 1
	Reason string
}

// Result holds the records read from one source.
type Result struct {
	Source  string
	Sheet   string
	Records []domain.ShiftRecord
	Dropped []DroppedRow
}

// Format identifies a supported source format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and normalizes the timecard file at path.
func Load(path string, opts Options) (*Result, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading timecard file: %w", err)
	}
	defer f.Close()

	var table *Table
	switch format {
	case FormatXLSX:
		table, err = ReadXLSX(f, opts.Sheet)
	case FormatCSV:
		table, err = ReadCSV(f)
	case FormatJSON:
		table, err = ReadJSON(f)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	res, err := Normalize(table, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	res.Source = path
	return res, nil
}

// SheetNames lists the worksheets of an xlsx workbook. Other formats have a
// single unnamed sheet and return nil.
func SheetNames(path string) ([]string, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if format != FormatXLSX {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading timecard file: %w", err)
	}
	defer f.Close()
	return ListSheets(f)
}
