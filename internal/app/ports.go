package app

import "context"

type AuditUseCase interface {
	Audit(ctx context.Context, req AuditRequest) (*AuditResponse, error)
}

type ListSheetsUseCase interface {
	ListSheets(ctx context.Context, path string) ([]string, error)
}
