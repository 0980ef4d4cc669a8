package testutil

import (
	"time"

	"github.com/alexanderramin/shiftaudit/internal/domain"
)

// BaseDay is the default shift date used by fixtures: Monday 2024-03-04.
var BaseDay = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

// Shift options
type ShiftOption func(*domain.ShiftRecord)

func WithHours(h float64) ShiftOption {
	return func(r *domain.ShiftRecord) {
		r.TimecardHours = h
	}
}

func WithPositionID(id string) ShiftOption {
	return func(r *domain.ShiftRecord) {
		r.PositionID = id
	}
}

// OnDay places the shift offset days after BaseDay, starting at 09:00.
func OnDay(offset int) ShiftOption {
	return func(r *domain.ShiftRecord) {
		r.TimeIn = BaseDay.AddDate(0, 0, offset).Add(9 * time.Hour)
	}
}

func WithTimeIn(t time.Time) ShiftOption {
	return func(r *domain.ShiftRecord) {
		r.TimeIn = t
	}
}

// NewTestShift returns an 8h shift on BaseDay for employee with position "P-1".
func NewTestShift(employee string, opts ...ShiftOption) domain.ShiftRecord {
	r := domain.ShiftRecord{
		EmployeeName:  employee,
		PositionID:    "P-1",
		TimeIn:        BaseDay.Add(9 * time.Hour),
		TimecardHours: 8,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// ConsecutiveShifts returns one shift per day for days consecutive days
// starting at BaseDay plus start.
func ConsecutiveShifts(employee string, start, days int, opts ...ShiftOption) []domain.ShiftRecord {
	out := make([]domain.ShiftRecord, 0, days)
	for i := 0; i < days; i++ {
		dayOpts := append([]ShiftOption{OnDay(start + i)}, opts...)
		out = append(out, NewTestShift(employee, dayOpts...))
	}
	return out
}

// Day returns BaseDay plus offset days.
func Day(offset int) time.Time {
	return BaseDay.AddDate(0, 0, offset)
}
