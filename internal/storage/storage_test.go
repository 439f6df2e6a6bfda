package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/neutech/estates/internal/model"
)

// newTestStorage opens a migrated store backed by a file in a per-test
// temp directory, so parallel tests never share a database.
func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "estates.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testProperty(id string, createdAt time.Time) model.Property {
	return model.Property{
		ID:           id,
		CreatedAt:    createdAt,
		Title:        "Test Property " + id,
		Description:  "A property used in tests.",
		Price:        25_000_000,
		Type:         model.TypeSale,
		Category:     model.CategoryHouse,
		ImageRef:     "/images/" + id + ".jpg",
		ContactPhone: "08000000000",
		Features:     []string{"Borehole", "Fitted Kitchen"},
		Location: model.Location{
			State:   "Lagos",
			LGA:     "Ikeja",
			Address: "1 Test Close",
		},
	}
}

func testUser(id string, status model.UserStatus) model.User {
	return model.User{
		ID:           id,
		Name:         "Publisher " + id,
		Email:        id + "@example.com",
		Phone:        "08011111111",
		BusinessName: "Business " + id,
		Status:       status,
		RequestedAt:  time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}
