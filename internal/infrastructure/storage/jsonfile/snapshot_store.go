// Package jsonfile persists a single customer snapshot as a JSON document on
// local disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

// DefaultPath is the snapshot location relative to the working directory.
const DefaultPath = "data/customer_data.json"

// customerDocument is the on-disk layout: the customer's flattened fields
// followed by its policy list.
type customerDocument struct {
	Email         string           `json:"email"`
	Name          string           `json:"name"`
	ContactNumber string           `json:"contact_number"`
	Address       string           `json:"address"`
	CreditScore   int              `json:"credit_score"`
	Policies      []policyDocument `json:"policies"`
}

type policyDocument struct {
	ID      string  `json:"policy_id"`
	Type    string  `json:"policy_type"`
	Premium float64 `json:"premium"`
	Status  string  `json:"status"`
}

// SnapshotStore saves and loads one customer at a fixed path.
type SnapshotStore struct {
	path string
	mu   sync.Mutex
}

func NewSnapshotStore(path string) *SnapshotStore {
	if path == "" {
		path = DefaultPath
	}
	return &SnapshotStore{path: path}
}

// Path returns the file the store reads and writes.
func (s *SnapshotStore) Path() string {
	return s.path
}

// Save writes the snapshot to a temp file in the same directory and renames
// it over the previous one, so readers never observe a partial file.
func (s *SnapshotStore) Save(_ context.Context, customer *domain.Customer) error {
	if customer == nil {
		return fmt.Errorf("%w: nil customer", domain.ErrInvalidInput)
	}

	data, err := json.MarshalIndent(toDocument(customer), "", "    ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".customer-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot back. A missing file yields domain.ErrSnapshotNotFound;
// undecodable content or a document without an email yields domain.ErrSnapshotCorrupt.
func (s *SnapshotStore) Load(_ context.Context) (*domain.Customer, error) {
	s.mu.Lock()
	data, err := os.ReadFile(s.path)
	s.mu.Unlock()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var doc customerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}
	if doc.Email == "" {
		return nil, fmt.Errorf("%w: missing email", domain.ErrSnapshotCorrupt)
	}
	c, err := fromDocument(doc)
	if err != nil {
		return nil, err
	}
	if err := c.ValidatePolicies(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}
	return c, nil
}

func toDocument(c *domain.Customer) customerDocument {
	doc := customerDocument{
		Email:         c.Email,
		Name:          c.Name,
		ContactNumber: c.ContactNumber,
		Address:       c.Address,
		CreditScore:   c.CreditScore,
		Policies:      make([]policyDocument, 0, len(c.Policies)),
	}
	for _, p := range c.Policies {
		doc.Policies = append(doc.Policies, policyDocument{
			ID:      p.ID,
			Type:    p.Type,
			Premium: p.Premium,
			Status:  string(p.Status),
		})
	}
	return doc
}

// fromDocument maps the document onto a customer. A policy without a status
// predates the status field and loads as active.
func fromDocument(doc customerDocument) (*domain.Customer, error) {
	c := &domain.Customer{
		Email:         doc.Email,
		Name:          doc.Name,
		ContactNumber: doc.ContactNumber,
		Address:       doc.Address,
		CreditScore:   doc.CreditScore,
		Policies:      make([]domain.Policy, 0, len(doc.Policies)),
	}
	for _, p := range doc.Policies {
		status := domain.PolicyActive
		if p.Status != "" {
			st, ok := domain.ParsePolicyStatus(p.Status)
			if !ok {
				return nil, fmt.Errorf("%w: policy %s has unknown status %q", domain.ErrSnapshotCorrupt, p.ID, p.Status)
			}
			status = st
		}
		c.Policies = append(c.Policies, domain.Policy{
			ID:      p.ID,
			Type:    p.Type,
			Premium: p.Premium,
			Status:  status,
		})
	}
	return c, nil
}
