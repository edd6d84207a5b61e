package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

func sampleCustomer() *domain.Customer {
	c := domain.NewCustomer("gina@example.com")
	c.ContactNumber = "555-0100"
	c.Address = "1 Main St"
	c.CreditScore = 720
	c.AddPolicy(domain.Policy{ID: "p1", Type: "auto", Premium: 100, Status: domain.PolicyActive})
	c.AddPolicy(domain.Policy{ID: "p2", Type: "home", Premium: 250.5, Status: domain.PolicyPending})
	return c
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "customer_data.json")
	store := NewSnapshotStore(path)
	ctx := context.Background()

	want := sampleCustomer()
	require.NoError(t, store.Save(ctx, want))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)

	assert.Len(t, loaded.Policies, len(want.Policies))
	assert.Equal(t, want.CalculateTotalPremium(), loaded.CalculateTotalPremium())
	assert.Equal(t, want, loaded)
}

func TestSnapshotStore_OverwriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewSnapshotStore(filepath.Join(dir, "customer_data.json"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleCustomer()))
	second := domain.NewCustomer("gina@example.com")
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Policies)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSnapshotStore_LoadMissing(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "absent.json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestSnapshotStore_LoadMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":          "{not-json",
		"missing email":     `{"name":"x","policies":[]}`,
		"wrong types":       `{"email":"a@example.com","credit_score":"high"}`,
		"negative premium":  `{"email":"a@example.com","policies":[{"policy_id":"x","premium":-1,"status":"pending"}]}`,
		"unknown status":    `{"email":"a@example.com","policies":[{"policy_id":"x","premium":5,"status":"bogus"}]}`,
		"duplicate ids":     `{"email":"a@example.com","policies":[{"policy_id":"x","premium":1,"status":"active"},{"policy_id":"x","premium":2,"status":"pending"}]}`,
		"missing policy id": `{"email":"a@example.com","policies":[{"premium":1,"status":"active"}]}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "customer_data.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

			_, err := NewSnapshotStore(path).Load(context.Background())
			assert.ErrorIs(t, err, domain.ErrSnapshotCorrupt)
		})
	}
}

func TestSnapshotStore_LegacyPolicyWithoutStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customer_data.json")
	body := `{"email":"a@example.com","name":"a","policies":[{"policy_id":"p1","policy_type":"life","premium":42}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	loaded, err := NewSnapshotStore(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded.Policies, 1)
	assert.Equal(t, domain.PolicyActive, loaded.Policies[0].Status)
}

func TestSnapshotStore_StatusIsNormalised(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customer_data.json")
	body := `{"email":"a@example.com","policies":[{"policy_id":"p1","policy_type":"auto","premium":10,"status":" Lapsed "}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	loaded, err := NewSnapshotStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyLapsed, loaded.Policies[0].Status)
}

func TestNewSnapshotStore_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewSnapshotStore("").Path())
}
