package compliance

import (
	"time"

	"github.com/alexanderramin/shiftaudit/internal/domain"
)

// EmployeeDay identifies one employee on one calendar date.
type EmployeeDay struct {
	EmployeeName string
	Date         time.Time
}

// Detections holds the output of all three rules.
type Detections struct {
	ShortHours map[string][]time.Time
	Streaks    map[string]bool
	LongShifts map[EmployeeDay]bool
}

// Detect runs every rule over agg.
func Detect(agg Aggregates) Detections {
	return Detections{
		ShortHours: DetectShortHours(agg),
		Streaks:    DetectConsecutiveStreak(agg),
		LongShifts: DetectLongShift(agg),
	}
}

// DetectShortHours returns, per employee, the ascending dates whose total hours
// fall within [ShortHoursMin, ShortHoursMax]. Employees with no such day are
// left out.
func DetectShortHours(agg Aggregates) map[string][]time.Time {
	out := make(map[string][]time.Time)
	for name, days := range agg {
		for _, d := range DayIndex(days) {
			total := days[d].TotalHours
			if total >= domain.ShortHoursMin && total <= domain.ShortHoursMax {
				out[name] = append(out[name], d)
			}
		}
	}
	return out
}

// DetectConsecutiveStreak returns the employees whose worked days form an
// unbroken streak of at least StreakDays.
//
// Every window of StreakDays entries across the whole day index must span
// consecutive calendar days. A single gap anywhere disqualifies the employee,
// even when a clean 7-day run exists elsewhere in their history.
func DetectConsecutiveStreak(agg Aggregates) map[string]bool {
	out := make(map[string]bool)
	for name, days := range agg {
		if allWindowsConsecutive(DayIndex(days)) {
			out[name] = true
		}
	}
	return out
}

func allWindowsConsecutive(index []time.Time) bool {
	const span = domain.StreakDays - 1
	if len(index) < domain.StreakDays {
		return false
	}
	for i := span; i < len(index); i++ {
		if domain.DaysBetween(index[i-span], index[i]) > span {
			return false
		}
	}
	return true
}

// DetectLongShift returns one pair per employee day that contained a single
// shift of LongShiftHours or more.
func DetectLongShift(agg Aggregates) map[EmployeeDay]bool {
	out := make(map[EmployeeDay]bool)
	for name, days := range agg {
		for d, day := range days {
			if day.HasLongShift {
				out[EmployeeDay{EmployeeName: name, Date: d}] = true
			}
		}
	}
	return out
}
