package domain

import "time"

// Audit actions recorded by the background pipeline.
const (
	AuditUserRegistered = "user.registered"
	AuditUserLoggedIn   = "user.logged_in"
	AuditProductCreated = "product.created"
	AuditProductDeleted = "product.deleted"
	AuditTodoCreated    = "todo.created"
	AuditTodoUpdated    = "todo.updated"
	AuditTodoDeleted    = "todo.deleted"
	AuditMessagePosted  = "message.posted"
)

// AuditEvent records one state-changing action performed by an actor.
type AuditEvent struct {
	ActorID   string
	ActorName string
	Action    string
	SubjectID string
	At        time.Time
}
