package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neutech/estates/internal/model"
)

func TestSaveUsers_PreservesInsertionOrder(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	users := []model.User{
		testUser("usr-b", model.StatusPending),
		testUser("usr-a", model.StatusApproved),
		testUser("usr-c", model.StatusRejected),
	}
	require.NoError(t, store.SaveUsers(ctx, users))

	got, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "usr-b", got[0].ID)
	assert.Equal(t, "usr-a", got[1].ID)
	assert.Equal(t, "usr-c", got[2].ID)
}

func TestSaveUsers_IgnoresDuplicates(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	original := testUser("usr-1", model.StatusPending)
	require.NoError(t, store.SaveUsers(ctx, []model.User{original}))

	// Saving again, even with different fields, keeps the first row.
	changed := original
	changed.Name = "Someone Else"
	require.NoError(t, store.SaveUsers(ctx, []model.User{changed}))

	got, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, original.Name, got[0].Name)
}

func TestSaveUsers_DefaultsEmptyStatusToPending(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	u := testUser("usr-2", "")
	require.NoError(t, store.SaveUsers(ctx, []model.User{u}))

	got, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.StatusPending, got[0].Status)
}

func TestSaveUsers_Validation(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	bad := testUser("", model.StatusPending)
	err := store.SaveUsers(ctx, []model.User{bad})
	assert.ErrorIs(t, err, ErrInvalidUser)

	// The failed batch must not leave partial rows behind.
	got, lerr := store.ListUsers(ctx)
	require.NoError(t, lerr)
	assert.Empty(t, got)
}

func TestSetUserStatus(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveUsers(ctx, []model.User{testUser("usr-3", model.StatusPending)}))

	tests := []struct {
		name   string
		status model.UserStatus
	}{
		{name: "approve", status: model.StatusApproved},
		{name: "reject after approve overwrites", status: model.StatusRejected},
		{name: "re-applying the same status is allowed", status: model.StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, store.SetUserStatus(ctx, "usr-3", tt.status))

			got, err := store.ListUsers(ctx)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.status, got[0].Status)
		})
	}
}

func TestSetUserStatus_UnknownIDIsNoOp(t *testing.T) {
	store := newTestStorage(t)
	assert.NoError(t, store.SetUserStatus(context.Background(), "ghost", model.StatusApproved))
}

func TestSetUserStatus_InvalidStatus(t *testing.T) {
	store := newTestStorage(t)
	err := store.SetUserStatus(context.Background(), "usr-4", model.UserStatus("Maybe"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
