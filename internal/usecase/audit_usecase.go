package usecase

import (
	"context"
	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"
	"log"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultAuditLimit = 50
	MaxAuditLimit     = 500
)

// IAuditUseCase exposes the audit trail to administrators.
type IAuditUseCase interface {
	ListRecent(ctx context.Context, limit int) ([]entities.AuditEvent, error)
}

type AuditUseCase struct {
	repo interfaces.IAuditLogRepository
}

var _ IAuditUseCase = (*AuditUseCase)(nil)

func NewAuditUseCase(repo interfaces.IAuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

func (u *AuditUseCase) ListRecent(ctx context.Context, limit int) ([]entities.AuditEvent, error) {
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	if limit > MaxAuditLimit {
		limit = MaxAuditLimit
	}
	if u.repo == nil {
		return []entities.AuditEvent{}, nil
	}
	return u.repo.ListRecent(ctx, limit)
}

// recordAudit writes an audit event after a committed change. Failures are
// logged and swallowed: the change itself already succeeded.
func recordAudit(ctx context.Context, repo interfaces.IAuditLogRepository, entity string, entityID uint, action entities.AuditAction, detail string) {
	if repo == nil {
		return
	}
	e := entities.AuditEvent{
		ID:        uuid.NewString(),
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
		Detail:    detail,
		Actor:     ActorFrom(ctx),
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Record(ctx, e); err != nil {
		log.Printf("[audit][usecase] record failed entity=%s entity_id=%d action=%s err=%v", entity, entityID, action, err)
	}
}
