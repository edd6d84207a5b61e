package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

const (
	collectionCustomers = "customers"
	collectionAdmins    = "admins"
)

// CustomerRepository stores each customer as one document with its policies embedded.
type CustomerRepository struct {
	col *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{col: db.Collection(collectionCustomers)}
}

func (r *CustomerRepository) Get(ctx context.Context, email string) (*domain.Customer, error) {
	return r.findOne(ctx, bson.M{"_id": email}, domain.ErrCustomerNotFound)
}

// Save upserts the whole customer document.
func (r *CustomerRepository) Save(ctx context.Context, c *domain.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if c.Policies == nil {
		c = c.Clone()
	}
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.Email}, c, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Customer
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	return out, nil
}

// FindByPolicyID retrieves the customer whose embedded policies contain policyID.
func (r *CustomerRepository) FindByPolicyID(ctx context.Context, policyID string) (*domain.Customer, error) {
	return r.findOne(ctx, bson.M{"policies.policy_id": policyID}, domain.ErrPolicyNotFound)
}

func (r *CustomerRepository) findOne(ctx context.Context, filter bson.M, notFound error) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Customer
	if err := r.col.FindOne(ctx, filter).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, err
	}
	if c.Policies == nil {
		c.Policies = []domain.Policy{}
	}
	return &c, nil
}

// EnsureIndexes creates necessary indexes on the customers collection.
func (r *CustomerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "policies.policy_id", Value: 1}}},
		{Keys: bson.D{{Key: "policies.status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// AdminRepository stores admin profiles keyed by email.
type AdminRepository struct {
	col *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{col: db.Collection(collectionAdmins)}
}

func (r *AdminRepository) Save(ctx context.Context, a *domain.Admin) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": a.Email}, a, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save admin: %w", err)
	}
	return nil
}

func (r *AdminRepository) Get(ctx context.Context, email string) (*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Admin
	if err := r.col.FindOne(ctx, bson.M{"_id": email}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &a, nil
}
