package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

const collectionClaims = "claims"

type ClaimRepository struct {
	col *mongo.Collection
}

func NewClaimRepository(db *mongo.Database) *ClaimRepository {
	return &ClaimRepository{col: db.Collection(collectionClaims)}
}

func (r *ClaimRepository) Create(ctx context.Context, c *domain.Claim) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert claim: %w", err)
	}
	return nil
}

func (r *ClaimRepository) Get(ctx context.Context, id string) (*domain.Claim, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Claim
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ClaimRepository) Update(ctx context.Context, c *domain.Claim) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return fmt.Errorf("update claim: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClaimNotFound
	}
	return nil
}

func (r *ClaimRepository) List(ctx context.Context, customerEmail string, status domain.ClaimStatus) ([]*domain.Claim, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, claimFilter(customerEmail, status),
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Claim
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}
	return out, nil
}

func claimFilter(customerEmail string, status domain.ClaimStatus) bson.M {
	filter := bson.M{}
	if customerEmail != "" {
		filter["customer_email"] = customerEmail
	}
	if status != "" {
		filter["status"] = string(status)
	}
	return filter
}
