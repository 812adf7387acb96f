package repository

import (
	"context"
	"fmt"

	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// AuditLogRepository keeps audit events in the relational store, next to the
// data they describe.
type AuditLogRepository struct {
	db *gorm.DB
}

var _ interfaces.IAuditLogRepository = (*AuditLogRepository)(nil)

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Record(ctx context.Context, e entities.AuditEvent) error {
	row := toAuditEventRow(e)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (r *AuditLogRepository) ListRecent(ctx context.Context, limit int) ([]entities.AuditEvent, error) {
	var rows []auditEventRow
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	out := make([]entities.AuditEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromAuditEventRow(row))
	}
	return out, nil
}
