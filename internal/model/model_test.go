package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewListingID(t *testing.T) {
	ts := time.Date(2023, time.November, 14, 22, 13, 20, 0, time.UTC)
	assert.Equal(t, "1700000000000", NewListingID(ts))

	// Later times sort after earlier ones as strings of equal length.
	later := NewListingID(ts.Add(time.Second))
	assert.Greater(t, later, NewListingID(ts))
}

func TestPartitionUsers(t *testing.T) {
	users := []User{
		{ID: "1", Status: StatusPending},
		{ID: "2", Status: StatusApproved},
		{ID: "3", Status: StatusPending},
		{ID: "4", Status: StatusRejected},
		{ID: "5"}, // unset status counts as pending
	}

	pending, approved, rejected := PartitionUsers(users)

	assert.Equal(t, []string{"1", "3", "5"}, userIDs(pending))
	assert.Equal(t, []string{"2"}, userIDs(approved))
	assert.Equal(t, []string{"4"}, userIDs(rejected))
}

func TestPartitionUsers_Empty(t *testing.T) {
	pending, approved, rejected := PartitionUsers(nil)
	assert.Empty(t, pending)
	assert.Empty(t, approved)
	assert.Empty(t, rejected)
}

func userIDs(users []User) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func TestValidTypesAndCategories(t *testing.T) {
	assert.Equal(t, []PropertyType{TypeSale, TypeRent}, ValidTypes())
	assert.Equal(t, []PropertyCategory{CategoryHouse, CategoryLand, CategoryCommercial}, ValidCategories())
}
