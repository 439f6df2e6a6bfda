// Package filter implements the listing filter engine: a pure function
// that narrows an ordered collection of properties to the subset matching
// the selected criteria.
package filter

import "github.com/neutech/estates/internal/model"

// Criteria holds the four optional filter fields. A zero value acts as a
// wildcard that matches any listing.
type Criteria struct {
	State    string
	LGA      string
	Type     model.PropertyType
	Category model.PropertyCategory
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c.State == "" && c.LGA == "" && c.Type == "" && c.Category == ""
}

// Matches reports whether a single property satisfies every set criterion.
// String comparisons are exact and case-sensitive.
func (c Criteria) Matches(p model.Property) bool {
	if c.State != "" && p.Location.State != c.State {
		return false
	}
	if c.LGA != "" && p.Location.LGA != c.LGA {
		return false
	}
	if c.Type != "" && p.Type != c.Type {
		return false
	}
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	return true
}

// Apply returns the ordered subsequence of listings matching all set
// criteria. The input is never mutated and relative order is preserved.
// Apply performs no cross-field validation: callers that change the state
// selection must clear any LGA selection themselves, since an LGA from the
// previous state would silently match nothing.
func Apply(listings []model.Property, c Criteria) []model.Property {
	if c.IsZero() {
		return listings
	}

	matched := make([]model.Property, 0, len(listings))
	for _, p := range listings {
		if c.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
