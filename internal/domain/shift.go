package domain

import (
	"fmt"
	"math"
	"time"
)

// ShiftRecord is one normalized timecard row.
//
// Employees are identified by EmployeeName alone: two records with equal names
// belong to the same person. Ingestion is trusted not to merge distinct people
// who share a name.
type ShiftRecord struct {
	EmployeeName  string
	PositionID    string
	TimeIn        time.Time
	TimecardHours float64
}

// ShiftDate returns the calendar date the shift is counted on.
func (r ShiftRecord) ShiftDate() time.Time {
	return DateOf(r.TimeIn)
}

// Validate checks the record against its input contract. A zero TimeIn is
// treated as missing; ingestion never produces one from a parsed cell.
func (r ShiftRecord) Validate() error {
	switch {
	case r.EmployeeName == "":
		return r.invalid(FieldEmployeeName, "employee name is required")
	case r.TimeIn.IsZero():
		return r.invalid(FieldTimeIn, "time in is required")
	case math.IsNaN(r.TimecardHours) || math.IsInf(r.TimecardHours, 0):
		return r.invalid(FieldTimecardHours, "hours must be a finite number")
	case r.TimecardHours < 0:
		return r.invalid(FieldTimecardHours, fmt.Sprintf("hours must not be negative, got %g", r.TimecardHours))
	}
	return nil
}

func (r ShiftRecord) invalid(field, msg string) *InvalidRecordError {
	return &InvalidRecordError{Index: -1, Employee: r.EmployeeName, Field: field, Message: msg}
}

// DailyAggregate combines every shift an employee logged on one calendar date.
type DailyAggregate struct {
	EmployeeName string
	Date         time.Time
	TotalHours   float64
	// HasLongShift is set by a single shift of LongShiftHours or more, never by
	// TotalHours. Two 7h shifts on one day leave it false.
	HasLongShift bool
	ShiftCount   int
}
