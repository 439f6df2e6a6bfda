package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neutech/estates/internal/filter"
	"github.com/neutech/estates/internal/model"
	"github.com/neutech/estates/internal/tui/themes"
)

func newTestListings() listingsModel {
	m := newListingsModel(themes.Default, DefaultKeyMap())
	m.setListings([]model.Property{
		{ID: "1", Location: model.Location{State: "Lagos", LGA: "Ikeja"}},
		{ID: "2", Location: model.Location{State: "Lagos", LGA: "Epe"}},
		{ID: "3", Location: model.Location{State: "Rivers", LGA: "Bonny"}},
	})
	return m
}

func TestListings_ChangingStateClearsLGA(t *testing.T) {
	m := newTestListings()
	m.criteria = filter.Criteria{State: "Lagos", LGA: "Ikeja"}

	m.focus = focusState
	m.cycleFocused(1)

	assert.NotEqual(t, "Lagos", m.criteria.State)
	assert.Empty(t, m.criteria.LGA, "an LGA from the previous state must not linger")
}

func TestListings_LGALockedWithoutState(t *testing.T) {
	m := newTestListings()

	m.focus = focusLGA
	m.cycleFocused(1)

	assert.Empty(t, m.criteria.LGA)
}

func TestListings_SelectedFollowsFilter(t *testing.T) {
	m := newTestListings()
	m.criteria = filter.Criteria{State: "Rivers"}

	got := m.selected()
	require.NotNil(t, got)
	assert.Equal(t, "3", got.ID)
}

func TestListings_CursorClampsAfterShrink(t *testing.T) {
	m := newTestListings()
	m.cursor = 2

	m.setListings([]model.Property{
		{ID: "1", Location: model.Location{State: "Lagos", LGA: "Ikeja"}},
	})
	assert.Equal(t, 0, m.cursor)
}

func TestCycleOption(t *testing.T) {
	opts := []string{"a", "b"}

	// Forward walks Any -> a -> b -> Any.
	assert.Equal(t, "a", cycleOption(opts, "", 1))
	assert.Equal(t, "b", cycleOption(opts, "a", 1))
	assert.Equal(t, "", cycleOption(opts, "b", 1))

	// Backward wraps the other way.
	assert.Equal(t, "b", cycleOption(opts, "", -1))
}
