package timecard

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads one worksheet of a workbook. An empty sheet name selects
// the first sheet.
func ReadXLSX(r io.Reader, sheet string) (*Table, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	if sheet == "" {
		sheet = file.GetSheetName(0)
		if sheet == "" {
			return nil, ErrEmptySheet
		}
	} else if idx, err := file.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptySheet, sheet)
	}
	return &Table{Sheet: sheet, Header: rows[0], Rows: rows[1:]}, nil
}

// ListSheets returns the worksheet names of a workbook in tab order.
func ListSheets(r io.Reader) ([]string, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = file.Close() }()
	return file.GetSheetList(), nil
}

// ReadCSV reads a comma-separated export with a header row.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}

// ReadJSON reads an array of objects keyed by column header. Numbers and
// booleans are rendered as strings; nulls become empty cells.
func ReadJSON(r io.Reader) (*Table, error) {
	var objs []map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&objs); err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	if len(objs) == 0 {
		return nil, ErrEmptySheet
	}

	seen := make(map[string]bool)
	var header []string
	for _, obj := range objs {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			if !seen[k] {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			seen[k] = true
			header = append(header, k)
		}
	}

	rows := make([][]string, len(objs))
	for i, obj := range objs {
		row := make([]string, len(header))
		for j, h := range header {
			row[j] = jsonCell(obj[h])
		}
		rows[i] = row
	}
	return &Table{Header: header, Rows: rows}, nil
}

func jsonCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
