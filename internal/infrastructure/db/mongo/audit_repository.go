package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storelabs/store-api/internal/core/domain"
	"github.com/storelabs/store-api/internal/core/ports"
)

const auditCollection = "audit_events"

// AuditRepository persists audit trail entries to MongoDB.
type AuditRepository struct {
	db *mongo.Database
}

func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{db: db}
}

// Insert persists one audit event.
func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"actor_id":     event.ActorID,
		"actor_name":   event.ActorName,
		"action":       event.Action,
		"subject_id":   event.SubjectID,
		"at":           event.At.UTC(),
		"processed_at": time.Now().UTC(),
	}

	_, err := r.db.Collection(auditCollection).InsertOne(ctx, doc)
	return err
}
