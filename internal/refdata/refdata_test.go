package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neutech/estates/internal/model"
)

func TestStateNames_MatchesStates(t *testing.T) {
	names := StateNames()
	all := States()

	require.Equal(t, len(all), len(names))
	for i, s := range all {
		assert.Equal(t, s.Name, names[i])
	}
}

func TestLGAs(t *testing.T) {
	tests := []struct {
		name     string
		state    string
		wantNil  bool
		contains string
	}{
		{name: "known state", state: "Lagos", contains: "Ikeja"},
		{name: "state with parenthesised name", state: "Abuja (FCT)", contains: "Bwari"},
		{name: "unknown state", state: "Atlantis", wantNil: true},
		{name: "empty state", state: "", wantNil: true},
		{name: "lookup is case sensitive", state: "lagos", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LGAs(tt.state)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			assert.Contains(t, got, tt.contains)
		})
	}
}

func TestIsValidLGA(t *testing.T) {
	assert.True(t, IsValidLGA("Lagos", "Epe"))
	assert.True(t, IsValidLGA("Rivers", "Port Harcourt"))
	assert.False(t, IsValidLGA("Lagos", "Port Harcourt"))
	assert.False(t, IsValidLGA("", "Epe"))
	assert.False(t, IsValidLGA("Lagos", ""))
}

func TestEveryStateHasLGAs(t *testing.T) {
	for _, s := range States() {
		assert.NotEmptyf(t, s.LGAs, "state %s has no LGAs", s.Name)
	}
}

func TestSeedListings(t *testing.T) {
	listings := SeedListings()
	require.NotEmpty(t, listings)

	seen := make(map[string]bool, len(listings))
	for _, p := range listings {
		assert.Falsef(t, seen[p.ID], "duplicate seed listing id %s", p.ID)
		seen[p.ID] = true

		// Every seed row must pass the same checks uploads do.
		assert.NotEmpty(t, p.Title)
		assert.Positive(t, p.Price)
		assert.NotEmpty(t, p.ImageRef)
		assert.False(t, p.CreatedAt.IsZero())
		assert.Truef(t, IsValidLGA(p.Location.State, p.Location.LGA),
			"listing %s has LGA %q outside state %q", p.ID, p.Location.LGA, p.Location.State)
	}
}

func TestSeedUsers(t *testing.T) {
	users := SeedUsers()
	require.NotEmpty(t, users)

	pending, approved, rejected := model.PartitionUsers(users)
	assert.NotEmpty(t, pending, "the dashboard demo needs something to review")
	assert.Equal(t, len(users), len(pending)+len(approved)+len(rejected))

	seen := make(map[string]bool, len(users))
	for _, u := range users {
		assert.Falsef(t, seen[u.ID], "duplicate seed user id %s", u.ID)
		seen[u.ID] = true
		assert.NotEmpty(t, u.Name)
		assert.NotEmpty(t, u.Email)
	}
}
