package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("insurance-system").
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// Store bundles every Mongo-backed repository over one database.
type Store struct {
	Users     *UserRepository
	Customers *CustomerRepository
	Admins    *AdminRepository
	Claims    *ClaimRepository
	Audit     *AuditLog
}

// NewStore builds the repositories and creates the indexes they query by.
func NewStore(ctx context.Context, db *mongo.Database) (*Store, error) {
	s := &Store{
		Users:     NewUserRepository(db),
		Customers: NewCustomerRepository(db),
		Admins:    NewAdminRepository(db),
		Claims:    NewClaimRepository(db),
		Audit:     NewAuditLog(db),
	}
	if err := s.Customers.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("customer indexes: %w", err)
	}
	return s, nil
}
