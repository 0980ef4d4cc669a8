package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/shiftaudit/internal/app"
	"github.com/alexanderramin/shiftaudit/internal/compliance"
	"github.com/alexanderramin/shiftaudit/internal/domain"
	"github.com/google/uuid"
)

type auditService struct {
	source   TimecardSource
	observer UseCaseObserver
	now      func() time.Time
}

func NewAuditService(source TimecardSource, observers ...UseCaseObserver) AuditService {
	if source == nil {
		source = FileSource{}
	}
	return &auditService{
		source:   source,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *auditService) Audit(ctx context.Context, req app.AuditRequest) (resp *app.AuditResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"source": req.Path,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "audit",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if req.Path == "" {
		return nil, &app.AuditError{Code: app.AuditErrInvalidInput, Message: "timecard path is required"}
	}

	loaded, err := s.source.Load(req.Path, req.Options)
	if err != nil {
		return nil, &app.AuditError{Code: app.AuditErrInvalidInput, Message: err.Error(), Err: err}
	}
	fields["sheet"] = loaded.Sheet
	fields["records"] = len(loaded.Records)
	fields["dropped_rows"] = len(loaded.Dropped)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agg, err := compliance.Aggregate(loaded.Records)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRecord) {
			return nil, &app.AuditError{Code: app.AuditErrInvalidRecord, Message: err.Error(), Err: err}
		}
		return nil, fmt.Errorf("aggregating shifts: %w", err)
	}
	fields["employees"] = len(agg)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := compliance.AssembleReport(agg, compliance.Detect(agg), loaded.Records)
	fields["short_hours_rows"] = len(report.ShortHours)
	fields["streak_rows"] = len(report.Streaks)
	fields["long_shift_rows"] = len(report.LongShifts)

	return &app.AuditResponse{
		RunID:       uuid.New().String(),
		GeneratedAt: s.now(),
		Source:      req.Path,
		Sheet:       loaded.Sheet,
		Records:     len(loaded.Records),
		Employees:   len(agg),
		Dropped:     loaded.Dropped,
		Report:      report,
	}, nil
}

func (s *auditService) ListSheets(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names, err := s.source.SheetNames(path)
	if err != nil {
		return nil, fmt.Errorf("listing sheets: %w", err)
	}
	return names, nil
}
