package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

const collectionAudit = "audit_events"

// AuditLog implements ports.AuditLog using MongoDB.
type AuditLog struct {
	col *mongo.Collection
}

// NewAuditLog creates a new AuditLog.
func NewAuditLog(db *mongo.Database) *AuditLog {
	return &AuditLog{col: db.Collection(collectionAudit)}
}

// Record persists an entry to the audit_events collection.
func (l *AuditLog) Record(ctx context.Context, entry domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"actor":  entry.Actor,
		"action": entry.Action,
		"at":     entry.At.UTC(),
	}
	if entry.Detail != "" {
		doc["detail"] = entry.Detail
	}

	_, err := l.col.InsertOne(ctx, doc)
	return err
}

func (l *AuditLog) ListByActor(ctx context.Context, actor string) ([]domain.AuditEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := l.col.Find(ctx, bson.M{"actor": actor}, options.Find().SetSort(bson.D{{Key: "at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.AuditEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode audit events: %w", err)
	}
	return out, nil
}
