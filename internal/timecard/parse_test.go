package timecard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseHours(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"08:00", 8, true},
		{"7:30", 7.5, true},
		{"14:00", 14, true},
		{"0:45", 0.75, true},
		{"26:15", 26.25, true},
		{"10:00:00", 10, true},
		{" 1:00 ", 1, true},
		{"", 0, false},
		{"8", 0, false},
		{"8.5", 0, false},
		{"ab:cd", 0, false},
		{"8:xx", 0, false},
		{"1:2:3:4", 0, false},
		{"NaN:00", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseHours(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.InDelta(t, tc.want, got, 1e-9)
			}
		})
	}
}

func TestParseTimeIn(t *testing.T) {
	want := time.Date(2024, 3, 4, 9, 15, 0, 0, time.UTC)

	tests := []struct {
		name   string
		in     string
		wantOK bool
	}{
		{"default layout", "2024-03-04 09:15:00", true},
		{"iso layout", "2024-03-04T09:15:00", true},
		{"excel short", "3/4/24 9:15", true},
		{"empty", "", false},
		{"garbage", "yesterday", false},
		{"small number", "42", false},
		{"zero instant", "0001-01-01 00:00:00", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseTimeIn(tc.in, DefaultTimeLayouts)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestParseTimeIn_ExcelSerial(t *testing.T) {
	// 45355 is 2024-03-04 in the 1900 date system; .5 is noon.
	got, ok := ParseTimeIn("45355.5", DefaultTimeLayouts)
	assert.True(t, ok)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 4, got.Day())
	assert.Equal(t, 12, got.Hour())
}

func TestParseTimeIn_CustomLayoutFirst(t *testing.T) {
	got, ok := ParseTimeIn("04.03.2024 22:00", []string{"02.01.2006 15:04"})
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 4, 22, 0, 0, 0, time.UTC), got)
}
