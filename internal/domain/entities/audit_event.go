package entities

import "time"

type AuditAction string

const (
	AuditActionCreate         AuditAction = "create"
	AuditActionDelete         AuditAction = "delete"
	AuditActionStatusChange   AuditAction = "status_change"
	AuditActionQuantityChange AuditAction = "quantity_change"
)

// AuditEvent records a change to orders or stock.
//
// Storage model (DynamoDB backend):
//   - PK: id (uuid string)
type AuditEvent struct {
	ID        string      `json:"id"`
	Entity    string      `json:"entity"`
	EntityID  uint        `json:"entity_id"`
	Action    AuditAction `json:"action"`
	Detail    string      `json:"detail"`
	Actor     string      `json:"actor"`
	CreatedAt time.Time   `json:"created_at"`
}
