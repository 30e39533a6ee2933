package shared

import (
	"time"

	"github.com/google/uuid"
)

type AuditAction string

const (
	AuditCodeIssued         AuditAction = "code_issued"
	AuditDrawAssigned       AuditAction = "draw_assigned"
	AuditMaterialTransition AuditAction = "material_transition"
	AuditBlocklistReplaced  AuditAction = "blocklist_replaced"
)

// AuditEntry is written in the same transaction as the change it records.
type AuditEntry struct {
	ActorID    uuid.UUID
	Action     AuditAction
	CustomerID *uuid.UUID
	CodeID     *uuid.UUID
	Detail     map[string]any
	CreatedAt  time.Time
}
