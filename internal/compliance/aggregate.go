// Package compliance evaluates shift records against the fixed attendance rules:
// short-hours days, 7-day consecutive streaks, and 14-hour shifts.
package compliance

import (
	"errors"
	"sort"
	"time"

	"github.com/alexanderramin/shiftaudit/internal/domain"
)

// Aggregates maps employee name to calendar date to that day's aggregate.
type Aggregates map[string]map[time.Time]domain.DailyAggregate

// Aggregate groups records by employee and shift date. It validates every
// record first and returns nil with an *domain.InvalidRecordError on the first
// violation, so callers never see a partially built map.
func Aggregate(records []domain.ShiftRecord) (Aggregates, error) {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			var invalid *domain.InvalidRecordError
			if errors.As(err, &invalid) {
				invalid.Index = i
			}
			return nil, err
		}
	}

	type dayKey struct {
		name string
		date time.Time
	}
	hours := make(map[dayKey][]float64)

	agg := make(Aggregates)
	for _, r := range records {
		days, ok := agg[r.EmployeeName]
		if !ok {
			days = make(map[time.Time]domain.DailyAggregate)
			agg[r.EmployeeName] = days
		}

		date := r.ShiftDate()
		day, ok := days[date]
		if !ok {
			day = domain.DailyAggregate{EmployeeName: r.EmployeeName, Date: date}
		}
		day.ShiftCount++
		if r.TimecardHours >= domain.LongShiftHours {
			day.HasLongShift = true
		}
		days[date] = day

		k := dayKey{r.EmployeeName, date}
		hours[k] = append(hours[k], r.TimecardHours)
	}

	// Summing in ascending order makes TotalHours bit-identical for any
	// ordering of the input.
	for k, hs := range hours {
		sort.Float64s(hs)
		var total float64
		for _, h := range hs {
			total += h
		}
		day := agg[k.name][k.date]
		day.TotalHours = total
		agg[k.name][k.date] = day
	}

	return agg, nil
}

// Employees returns the employee names in agg, sorted.
func (a Aggregates) Employees() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DayIndex returns the distinct dates in days, ascending.
func DayIndex(days map[time.Time]domain.DailyAggregate) []time.Time {
	index := make([]time.Time, 0, len(days))
	for d := range days {
		index = append(index, d)
	}
	sort.Slice(index, func(i, j int) bool { return index[i].Before(index[j]) })
	return index
}
