package domain

// Fixed compliance thresholds.
const (
	ShortHoursMin  = 1.0
	ShortHoursMax  = 10.0
	LongShiftHours = 14.0
	StreakDays     = 7
)
