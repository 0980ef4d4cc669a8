package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/shiftaudit/internal/app"
	"github.com/alexanderramin/shiftaudit/internal/domain"
	"github.com/alexanderramin/shiftaudit/internal/testutil"
	"github.com/alexanderramin/shiftaudit/internal/timecard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	result *timecard.Result
	sheets []string
	err    error
}

func (s stubSource) Load(path string, opts timecard.Options) (*timecard.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s stubSource) SheetNames(path string) ([]string, error) {
	return s.sheets, s.err
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.events = append(r.events, event)
}

func TestAudit_RunsFullPipeline(t *testing.T) {
	records := testutil.ConsecutiveShifts("Bob", 0, 7, testutil.WithHours(1), testutil.WithPositionID("B-7"))
	records = append(records, testutil.NewTestShift("Carol", testutil.WithHours(14), testutil.WithPositionID("C-2")))
	src := stubSource{result: &timecard.Result{
		Sheet:   "Week 1",
		Records: records,
		Dropped: []timecard.DroppedRow{{Line: 9, Reason: "missing time in"}},
	}}
	obs := &recordingObserver{}

	svc := NewAuditService(src, obs)
	resp, err := svc.Audit(context.Background(), app.AuditRequest{Path: "timecards.xlsx"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.RunID)
	assert.False(t, resp.GeneratedAt.IsZero())
	assert.Equal(t, "Week 1", resp.Sheet)
	assert.Equal(t, 8, resp.Records)
	assert.Equal(t, 2, resp.Employees)
	assert.Len(t, resp.Dropped, 1)

	require.Len(t, resp.Report.ShortHours, 1)
	assert.Equal(t, "B-7", resp.Report.ShortHours[0].PositionID)
	assert.Len(t, resp.Report.ShortHours[0].Dates, 7)
	require.Len(t, resp.Report.Streaks, 1)
	require.Len(t, resp.Report.LongShifts, 1)
	assert.Equal(t, "Carol", resp.Report.LongShifts[0].EmployeeName)

	require.Len(t, obs.events, 1)
	ev := obs.events[0]
	assert.Equal(t, "audit", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 8, ev.Fields["records"])
	assert.Equal(t, 1, ev.Fields["dropped_rows"])
	assert.Equal(t, 2, ev.Fields["employees"])
	assert.Equal(t, 1, ev.Fields["streak_rows"])
}

func TestAudit_InvalidRecordIsCoded(t *testing.T) {
	src := stubSource{result: &timecard.Result{Records: []domain.ShiftRecord{
		testutil.NewTestShift("Alice"),
		testutil.NewTestShift("", testutil.WithHours(3)),
	}}}
	obs := &recordingObserver{}

	_, err := NewAuditService(src, obs).Audit(context.Background(), app.AuditRequest{Path: "x.csv"})
	var auditErr *app.AuditError
	require.ErrorAs(t, err, &auditErr)
	assert.Equal(t, app.AuditErrInvalidRecord, auditErr.Code)
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
}

func TestAudit_LoadFailureIsInvalidInput(t *testing.T) {
	src := stubSource{err: timecard.ErrMissingColumn}

	_, err := NewAuditService(src).Audit(context.Background(), app.AuditRequest{Path: "x.csv"})
	var auditErr *app.AuditError
	require.ErrorAs(t, err, &auditErr)
	assert.Equal(t, app.AuditErrInvalidInput, auditErr.Code)
	assert.ErrorIs(t, err, timecard.ErrMissingColumn)
}

func TestAudit_RequiresPath(t *testing.T) {
	_, err := NewAuditService(stubSource{}).Audit(context.Background(), app.AuditRequest{})
	var auditErr *app.AuditError
	require.ErrorAs(t, err, &auditErr)
	assert.Equal(t, app.AuditErrInvalidInput, auditErr.Code)
}

func TestAudit_CancelledContext(t *testing.T) {
	src := stubSource{result: &timecard.Result{Records: []domain.ShiftRecord{testutil.NewTestShift("Alice")}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAuditService(src).Audit(ctx, app.AuditRequest{Path: "x.csv"})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestAudit_ReadsCSVFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timecards.csv")
	content := strings.Join([]string{
		"Employee Name,Position ID,Time,Timecard Hours (as Time)",
		"Alice,42,2024-03-04 09:00:00,2:00",
		"Alice,42,2024-03-04 12:00:00,3:00",
		"Alice,42,2024-03-04 16:00:00,6:00",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	resp, err := NewAuditService(nil).Audit(context.Background(), app.AuditRequest{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Records)
	assert.True(t, resp.Report.Empty(), "11h day is neither short nor long")
}

func TestListSheets(t *testing.T) {
	svc := NewAuditService(stubSource{sheets: []string{"A", "B"}})
	names, err := svc.ListSheets(context.Background(), "x.xlsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names)
}

func TestLogUseCaseObserver_WritesSortedFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "audit",
		Success: true,
		Fields:  map[string]any{"records": 3, "employees": 1},
	})

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=audit")
	assert.Less(t, strings.Index(out, "employees=1"), strings.Index(out, "records=3"))

	buf.Reset()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "audit", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
