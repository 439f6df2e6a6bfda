package model

import (
	"strconv"
	"time"
)

// PropertyType indicates the transaction type of a listing.
type PropertyType string

const (
	// TypeSale marks a property offered for outright sale.
	TypeSale PropertyType = "For Sale"
	// TypeRent marks a property offered for rent.
	TypeRent PropertyType = "For Rent"
)

// PropertyCategory classifies what kind of property a listing describes.
type PropertyCategory string

const (
	// CategoryHouse is residential buildings.
	CategoryHouse PropertyCategory = "House"
	// CategoryLand is undeveloped plots.
	CategoryLand PropertyCategory = "Land"
	// CategoryCommercial is shops, offices, and warehouses.
	CategoryCommercial PropertyCategory = "Commercial"
)

// Location places a property within Nigeria's administrative divisions.
type Location struct {
	State   string
	LGA     string
	Address string
}

// Property represents a single real-estate listing. Properties are created
// by the upload flow and removed by admins; they are never mutated in place.
type Property struct {
	CreatedAt    time.Time
	ID           string
	Title        string
	Description  string
	ImageRef     string // Local file path or URL; never uploaded anywhere
	ContactPhone string
	Location     Location
	Features     []string
	Type         PropertyType
	Category     PropertyCategory
	Price        int64 // Whole naira
}

// NewListingID derives a listing identifier from a creation time.
// IDs are unique for the process lifetime as long as listings are not
// created within the same millisecond, matching the session model where a
// single user drives all writes.
func NewListingID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// ValidTypes returns the selectable transaction types in display order.
func ValidTypes() []PropertyType {
	return []PropertyType{TypeSale, TypeRent}
}

// ValidCategories returns the selectable categories in display order.
func ValidCategories() []PropertyCategory {
	return []PropertyCategory{CategoryHouse, CategoryLand, CategoryCommercial}
}
