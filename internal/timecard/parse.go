package timecard

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Excel serials outside this range are not treated as dates (1954..2119).
const (
	minExcelSerial = 20000
	maxExcelSerial = 80000
)

// ParseTimeIn parses a time-in cell using layouts in order, then as an Excel
// serial date. The wall clock is kept as written; no zone conversion happens.
// The zero instant (0001-01-01 00:00:00) is rejected: downstream it means
// "no time in".
func ParseTimeIn(value string, layouts []string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, !t.IsZero()
		}
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial >= minExcelSerial && serial <= maxExcelSerial {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// ParseHours converts an "HH:MM" duration to decimal hours (h + m/60).
// Seconds, when present, are ignored. Any other shape is rejected.
func ParseHours(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	h, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, false
	}
	m, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, false
	}
	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return 0, false
		}
	}
	hours := h + m/60
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, false
	}
	return hours, true
}
