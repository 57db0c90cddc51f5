package domain

import "time"

// AuditAction names a privileged mutation worth keeping a trail of.
type AuditAction string

const (
	AuditJobToggled      AuditAction = "job.toggled"
	AuditJobDeleted      AuditAction = "job.deleted"
	AuditStatusChanged   AuditAction = "application.status_changed"
	AuditUserCreated     AuditAction = "user.created"
	AuditUserDeleted     AuditAction = "user.deleted"
	AuditResourceCreated AuditAction = "resource.created"
	AuditResourceUpdated AuditAction = "resource.updated"
	AuditResourceDeleted AuditAction = "resource.deleted"
	AuditPasswordChanged AuditAction = "user.password_changed"
)

// AuditEvent records who did what to which entity.
type AuditEvent struct {
	Action     AuditAction
	ActorID    int64
	TargetType string
	TargetID   int64
	Detail     string
	At         time.Time
}
