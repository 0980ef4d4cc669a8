package timecard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a workbook with one sheet per entry of sheets.
func writeWorkbook(t *testing.T, sheets map[string][][]any, order ...string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "timecards.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoad_XLSX(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		"Week 1": {
			{"Position ID", "Time", "Timecard Hours (as Time)", "Employee Name"},
			{"42", "2024-03-04 09:00:00", "2:00", "Alice"},
			{"42", "2024-03-04 13:00:00", "3:00", "Alice"},
			{"42", "bad", "3:00", "Alice"},
		},
		"Week 2": {
			{"Position ID", "Time", "Timecard Hours (as Time)", "Employee Name"},
			{"7", "2024-03-11 09:00:00", "14:00", "Bob"},
		},
	}, "Week 1", "Week 2")

	res, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Week 1", res.Sheet)
	assert.Equal(t, path, res.Source)
	require.Len(t, res.Records, 2)
	require.Len(t, res.Dropped, 1)
	assert.Equal(t, 4, res.Dropped[0].Line)

	res, err = Load(path, Options{Sheet: "Week 2"})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Bob", res.Records[0].EmployeeName)

	_, err = Load(path, Options{Sheet: "Week 9"})
	assert.ErrorIs(t, err, ErrSheetNotFound)

	names, err := SheetNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Week 1", "Week 2"}, names)
}

func TestLoad_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timecards.csv")
	content := strings.Join([]string{
		"Employee Name,Position ID,Time,Time Out,Timecard Hours (as Time)",
		"Alice,42,2024-03-04 09:00:00,2024-03-04 17:00:00,8:00",
		"Bob,7,,,8:00",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	res, err := Load(path, Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Alice", res.Records[0].EmployeeName)
	assert.Equal(t, []DroppedRow{{Line: 3, Reason: "missing time in"}}, res.Dropped)

	names, err := SheetNames(path)
	require.NoError(t, err)
	assert.Nil(t, names)
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timecards.json")
	content := `[
		{"Employee Name": "Alice", "Position ID": 42, "Time": "2024-03-04 09:00:00", "Timecard Hours (as Time)": "6:30"},
		{"Employee Name": "Alice", "Position ID": 42, "Time": null, "Timecard Hours (as Time)": "1:00"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	res, err := Load(path, Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "42", res.Records[0].PositionID)
	assert.InDelta(t, 6.5, res.Records[0].TimecardHours, 1e-9)
	assert.Len(t, res.Dropped, 1)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("timecards.txt", Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0o644))
	_, err = Load(path, Options{})
	assert.Error(t, err)
}
