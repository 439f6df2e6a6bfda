package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neutech/estates/internal/model"
	"github.com/neutech/estates/internal/tui/themes"
)

func newTestUpload() uploadModel {
	return newUploadModel(themes.Default, DefaultKeyMap(), "09062712610")
}

func (m *uploadModel) fillValid() {
	m.title.SetValue("4 Bedroom Duplex")
	m.price.SetValue("45000000")
	m.address.SetValue("Chevron Drive, Lekki")
	m.image.SetValue("/photos/duplex.jpg")
	m.state = "Lagos"
	m.lga = "Eti-Osa"
}

func TestUploadSubmit_MissingFields(t *testing.T) {
	tests := []struct {
		mutate func(*uploadModel)
		name   string
	}{
		{name: "empty form", mutate: func(_ *uploadModel) {}},
		{name: "missing title", mutate: func(m *uploadModel) { m.fillValid(); m.title.SetValue("") }},
		{name: "missing state", mutate: func(m *uploadModel) { m.fillValid(); m.state = "" }},
		{name: "missing LGA", mutate: func(m *uploadModel) { m.fillValid(); m.lga = "" }},
		{name: "missing image", mutate: func(m *uploadModel) { m.fillValid(); m.image.SetValue("") }},
		{name: "missing price", mutate: func(m *uploadModel) { m.fillValid(); m.price.SetValue("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestUpload()
			tt.mutate(&m)

			got, cmd := m.submit()
			assert.Nil(t, cmd)
			assert.Equal(t, MsgUploadIncomplete, got.errMsg)

			// Inputs must survive a failed submit for correction.
			assert.Equal(t, m.title.Value(), got.title.Value())
		})
	}
}

func TestUploadSubmit_InvalidPrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
	}{
		{name: "not a number", price: "a lot"},
		{name: "negative", price: "-5"},
		{name: "fractional", price: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestUpload()
			m.fillValid()
			m.price.SetValue(tt.price)

			got, cmd := m.submit()
			assert.Nil(t, cmd)
			assert.Equal(t, MsgInvalidPrice, got.errMsg)
		})
	}
}

func TestUploadSubmit_EmitsListing(t *testing.T) {
	m := newTestUpload()
	m.fillValid()
	m.features.SetValue("Pool, BQ, , Fitted Kitchen")
	m.desc.SetValue("A fine home.")

	got, cmd := m.submit()
	require.NotNil(t, cmd)
	assert.Empty(t, got.errMsg)

	msg, ok := cmd().(addListingMsg)
	require.True(t, ok)

	p := msg.property
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, "4 Bedroom Duplex", p.Title)
	assert.Equal(t, "A fine home.", p.Description)
	assert.Equal(t, int64(45_000_000), p.Price)
	assert.Equal(t, model.TypeSale, p.Type)
	assert.Equal(t, model.CategoryHouse, p.Category)
	assert.Equal(t, "09062712610", p.ContactPhone)
	assert.Equal(t, []string{"Pool", "BQ", "Fitted Kitchen"}, p.Features)
	assert.Equal(t, model.Location{State: "Lagos", LGA: "Eti-Osa", Address: "Chevron Drive, Lekki"}, p.Location)
}

func TestUploadSubmit_AddressIsOptional(t *testing.T) {
	m := newTestUpload()
	m.fillValid()
	m.address.SetValue("")

	got, cmd := m.submit()
	require.NotNil(t, cmd)
	assert.Empty(t, got.errMsg)

	msg, ok := cmd().(addListingMsg)
	require.True(t, ok)
	assert.Empty(t, msg.property.Location.Address)
}

func TestUploadSubmit_ZeroPriceAccepted(t *testing.T) {
	m := newTestUpload()
	m.fillValid()
	m.price.SetValue("0")

	got, cmd := m.submit()
	require.NotNil(t, cmd)
	assert.Empty(t, got.errMsg)

	msg, ok := cmd().(addListingMsg)
	require.True(t, ok)
	assert.Equal(t, int64(0), msg.property.Price)
}

func TestUploadSubmit_DefaultDescription(t *testing.T) {
	m := newTestUpload()
	m.fillValid()

	_, cmd := m.submit()
	require.NotNil(t, cmd)

	msg, ok := cmd().(addListingMsg)
	require.True(t, ok)
	assert.Equal(t, DefaultDescription, msg.property.Description)
}

func TestUpload_SuccessResetsFormAndNavigates(t *testing.T) {
	m := newTestUpload()
	m.fillValid()

	got, cmd := m.Update(listingAddedMsg{id: "123"})
	require.NotNil(t, cmd)

	assert.Equal(t, MsgUploadSuccess, got.notice)
	assert.Empty(t, got.title.Value())
	assert.Empty(t, got.state)
	assert.Equal(t, 1, got.generation)
}

func TestUpload_AddErrorKeepsForm(t *testing.T) {
	m := newTestUpload()
	m.fillValid()

	got, _ := m.Update(listingAddedMsg{err: assert.AnError})
	assert.NotEmpty(t, got.errMsg)
	assert.Equal(t, "4 Bedroom Duplex", got.title.Value())
}

func TestSplitFeatures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "single", raw: "Pool", want: []string{"Pool"}},
		{name: "trims and drops blanks", raw: " Pool ,, BQ , ", want: []string{"Pool", "BQ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitFeatures(tt.raw))
		})
	}
}

func TestUpload_GenerateRequiresDetails(t *testing.T) {
	tests := []struct {
		mutate func(*uploadModel)
		name   string
	}{
		{name: "missing title", mutate: func(m *uploadModel) { m.title.SetValue("") }},
		{name: "missing state", mutate: func(m *uploadModel) { m.state = "" }},
		{name: "missing features", mutate: func(m *uploadModel) { m.features.SetValue("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestUpload()
			m.fillValid()
			m.features.SetValue("Pool")
			tt.mutate(&m)

			got, cmd := m.startGenerate()
			assert.Nil(t, cmd)
			assert.False(t, got.generating)
			assert.Equal(t, MsgGenerateNeedsInput, got.errMsg)
		})
	}
}

func TestUpload_GenerateEmitsRequest(t *testing.T) {
	m := newTestUpload()
	m.fillValid()
	m.features.SetValue("Pool, BQ")

	got, cmd := m.startGenerate()
	require.NotNil(t, cmd)
	assert.True(t, got.generating)
}

func TestUpload_DescriptionReady(t *testing.T) {
	m := newTestUpload()
	m.generating = true

	got, _ := m.Update(descriptionReadyMsg{text: "Generated copy."})
	assert.False(t, got.generating)
	assert.Equal(t, "Generated copy.", got.desc.Value())
}
