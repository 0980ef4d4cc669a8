package service

import (
	"context"

	"github.com/alexanderramin/shiftaudit/internal/app"
	"github.com/alexanderramin/shiftaudit/internal/timecard"
)

type AuditService interface {
	Audit(ctx context.Context, req app.AuditRequest) (*app.AuditResponse, error)
	ListSheets(ctx context.Context, path string) ([]string, error)
}

// TimecardSource reads timecard files. timecard.Load and timecard.SheetNames
// satisfy it through FileSource.
type TimecardSource interface {
	Load(path string, opts timecard.Options) (*timecard.Result, error)
	SheetNames(path string) ([]string, error)
}

// FileSource reads timecards from the local filesystem.
type FileSource struct{}

func (FileSource) Load(path string, opts timecard.Options) (*timecard.Result, error) {
	return timecard.Load(path, opts)
}

func (FileSource) SheetNames(path string) ([]string, error) {
	return timecard.SheetNames(path)
}
