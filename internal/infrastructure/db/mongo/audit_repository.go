package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

// AuditRepository persists audit events to the audit_events collection.
type AuditRepository struct {
	db *mongo.Database
}

func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	doc := bson.M{
		"user_id":      event.UserID,
		"action":       string(event.Action),
		"success":      event.Success,
		"timestamp":    event.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}
	if event.Detail != "" {
		doc["detail"] = event.Detail
	}

	_, err := r.db.Collection("audit_events").InsertOne(ctx, doc)
	return err
}
