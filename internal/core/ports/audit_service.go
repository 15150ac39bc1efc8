package ports

import (
	"context"

	"github.com/storelabs/store-api/internal/core/domain"
)

// AuditService records one audit event; invoked by the dispatcher workers.
type AuditService interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// AuditSink is the write side handed to the business services. Emit must
// never block a request and never fail it.
type AuditSink interface {
	Emit(event domain.AuditEvent)
}
