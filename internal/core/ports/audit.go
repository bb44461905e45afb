package ports

import (
	"context"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditService consumes audit events delivered by the dispatcher.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// AuditPublisher is the fire-and-forget side handed to request-path
// services. Publishing never blocks request handling on persistence.
type AuditPublisher interface {
	Publish(event domain.AuditEvent)
}
