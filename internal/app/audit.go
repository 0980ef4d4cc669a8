package app

import (
	"time"

	"github.com/alexanderramin/shiftaudit/internal/compliance"
	"github.com/alexanderramin/shiftaudit/internal/timecard"
)

type AuditRequest struct {
	Path    string
	Options timecard.Options
}

type AuditResponse struct {
	RunID       string
	GeneratedAt time.Time
	Source      string
	Sheet       string
	Records     int
	Employees   int
	Dropped     []timecard.DroppedRow
	Report      compliance.Report
}

type AuditErrorCode string

const (
	AuditErrInvalidInput  AuditErrorCode = "INVALID_INPUT"
	AuditErrInvalidRecord AuditErrorCode = "INVALID_RECORD"
)

type AuditError struct {
	Code    AuditErrorCode
	Message string
	Err     error
}

func (e *AuditError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *AuditError) Unwrap() error {
	return e.Err
}
