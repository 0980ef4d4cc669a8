package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord is matched by every InvalidRecordError.
var ErrInvalidRecord = errors.New("invalid record")

// Record fields named by InvalidRecordError.
const (
	FieldEmployeeName  = "employee_name"
	FieldTimeIn        = "time_in"
	FieldTimecardHours = "timecard_hours"
)

// InvalidRecordError reports a ShiftRecord that violates its input contract.
type InvalidRecordError struct {
	Index    int // position in the input slice, -1 when unknown
	Employee string
	Field    string
	Message  string
}

func (e *InvalidRecordError) Error() string {
	var where string
	if e.Index >= 0 {
		where = fmt.Sprintf("record %d", e.Index)
	} else {
		where = "record"
	}
	if e.Employee != "" {
		where += fmt.Sprintf(" (%s)", e.Employee)
	}
	return fmt.Sprintf("%s: %s: %s", where, e.Field, e.Message)
}

func (e *InvalidRecordError) Unwrap() error {
	return ErrInvalidRecord
}
