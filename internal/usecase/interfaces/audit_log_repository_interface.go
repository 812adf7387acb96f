package interfaces

import (
	"context"
	"furniture_warehouse/internal/domain/entities"
)

// IAuditLogRepository persists audit events (relational table or DynamoDB).
type IAuditLogRepository interface {
	Record(ctx context.Context, e entities.AuditEvent) error
	ListRecent(ctx context.Context, limit int) ([]entities.AuditEvent, error)
}
