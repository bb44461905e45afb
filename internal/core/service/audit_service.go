package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storelane/commerce-api/internal/api/metrics"
	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

// AuditService persists security events delivered by the dispatcher.
type AuditService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

// Process writes one audit event. Failures are logged and counted but not
// retried; the audit trail is best-effort.
func (s *AuditService) Process(ctx context.Context, event domain.AuditEvent) error {
	start := time.Now()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("insert_failed").Inc()
		s.logger.Error().Err(err).
			Str("user_id", event.UserID).
			Str("action", string(event.Action)).
			Msg("audit event insert failed")
		return err
	}

	metrics.AuditEventsProcessedTotal.WithLabelValues(string(event.Action)).Inc()
	metrics.AuditProcessingDuration.WithLabelValues(string(event.Action)).Observe(time.Since(start).Seconds())
	return nil
}
