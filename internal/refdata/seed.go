package refdata

import (
	"time"

	"github.com/neutech/estates/internal/model"
)

// SeedListings returns the demo listings shown before anyone uploads.
// IDs are fixed strings rather than timestamps so the seed set is stable
// across sessions; the upload flow never generates colliding IDs because
// it derives them from the current time.
func SeedListings() []model.Property {
	return []model.Property{
		{
			ID:          "1700000000001",
			Title:       "Luxury 4-Bedroom Duplex in Lekki",
			Description: "A tastefully finished duplex in a serene, gated estate with 24-hour power and security.",
			Price:       250_000_000,
			Location: model.Location{
				State:   "Lagos",
				LGA:     "Eti-Osa",
				Address: "Chevron Drive, Lekki",
			},
			Features:     []string{"4 Bedrooms", "Fitted Kitchen", "Swimming Pool", "BQ"},
			Type:         model.TypeSale,
			Category:     model.CategoryHouse,
			ImageRef:     "https://images.neutech.ng/listings/lekki-duplex.jpg",
			CreatedAt:    time.Date(2023, time.November, 14, 22, 13, 20, 0, time.UTC),
			ContactPhone: "09062712610",
		},
		{
			ID:          "1700000000002",
			Title:       "600sqm Corner Plot, Ibeju-Lekki",
			Description: "Dry land with C of O title, minutes from the Lekki Free Trade Zone.",
			Price:       45_000_000,
			Location: model.Location{
				State:   "Lagos",
				LGA:     "Ibeju-Lekki",
				Address: "Eleko Junction, Ibeju-Lekki",
			},
			Features:     []string{"C of O", "Corner Piece", "Dry Land"},
			Type:         model.TypeSale,
			Category:     model.CategoryLand,
			ImageRef:     "https://images.neutech.ng/listings/ibeju-plot.jpg",
			CreatedAt:    time.Date(2023, time.November, 15, 9, 45, 0, 0, time.UTC),
			ContactPhone: "09062712610",
		},
		{
			ID:          "1700000000003",
			Title:       "3-Bedroom Flat, Wuse 2",
			Description: "Spacious upstairs flat with modern finishing in the heart of Abuja.",
			Price:       4_500_000,
			Location: model.Location{
				State:   "Abuja (FCT)",
				LGA:     "Abuja Municipal",
				Address: "Aminu Kano Crescent, Wuse 2",
			},
			Features:     []string{"3 Bedrooms", "All Rooms En-suite", "Ample Parking"},
			Type:         model.TypeRent,
			Category:     model.CategoryHouse,
			ImageRef:     "https://images.neutech.ng/listings/wuse-flat.jpg",
			CreatedAt:    time.Date(2023, time.November, 16, 13, 10, 0, 0, time.UTC),
			ContactPhone: "08033214455",
		},
		{
			ID:          "1700000000004",
			Title:       "Open-Plan Office Space, GRA Port Harcourt",
			Description: "Ground-floor commercial space suitable for banking halls or showrooms.",
			Price:       12_000_000,
			Location: model.Location{
				State:   "Rivers",
				LGA:     "Port Harcourt",
				Address: "Aba Road, GRA Phase 2",
			},
			Features:     []string{"350sqm Floor Area", "Dedicated Transformer", "Street Frontage"},
			Type:         model.TypeRent,
			Category:     model.CategoryCommercial,
			ImageRef:     "https://images.neutech.ng/listings/ph-office.jpg",
			CreatedAt:    time.Date(2023, time.November, 17, 8, 30, 0, 0, time.UTC),
			ContactPhone: "08123004567",
		},
		{
			ID:          "1700000000005",
			Title:       "Newly Built Bungalow, Ibadan",
			Description: "A clean three-bedroom bungalow on a full plot in a developed area.",
			Price:       38_000_000,
			Location: model.Location{
				State:   "Oyo",
				LGA:     "Akinyele",
				Address: "Moniya, Ibadan",
			},
			Features:     []string{"3 Bedrooms", "Full Plot", "Borehole"},
			Type:         model.TypeSale,
			Category:     model.CategoryHouse,
			ImageRef:     "https://images.neutech.ng/listings/ibadan-bungalow.jpg",
			CreatedAt:    time.Date(2023, time.November, 18, 16, 5, 0, 0, time.UTC),
			ContactPhone: "09062712610",
		},
		{
			ID:          "1700000000006",
			Title:       "Warehouse on 2 Plots, Kano",
			Description: "High-roof warehouse with loading bay, ideal for distribution businesses.",
			Price:       95_000_000,
			Location: model.Location{
				State:   "Kano",
				LGA:     "Kano Municipal",
				Address: "Zaria Road Industrial Layout",
			},
			Features:     []string{"Loading Bay", "High Roof", "Perimeter Fence"},
			Type:         model.TypeSale,
			Category:     model.CategoryCommercial,
			ImageRef:     "https://images.neutech.ng/listings/kano-warehouse.jpg",
			CreatedAt:    time.Date(2023, time.November, 19, 11, 0, 0, 0, time.UTC),
			ContactPhone: "08098761234",
		},
	}
}

// SeedUsers returns the publisher applications the admin dashboard starts
// with. There is no self-registration flow; this is the only source of
// users.
func SeedUsers() []model.User {
	return []model.User{
		{
			ID:           "usr-001",
			Name:         "Adewale Johnson",
			Email:        "adewale.johnson@example.com",
			Phone:        "08031112233",
			BusinessName: "Johnson Properties Ltd",
			Status:       model.StatusPending,
			RequestedAt:  time.Date(2023, time.November, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:           "usr-002",
			Name:         "Chiamaka Okafor",
			Email:        "chiamaka.okafor@example.com",
			Phone:        "08064445566",
			BusinessName: "Okafor Realty",
			Status:       model.StatusApproved,
			RequestedAt:  time.Date(2023, time.November, 8, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:           "usr-003",
			Name:         "Ibrahim Musa",
			Email:        "ibrahim.musa@example.com",
			Phone:        "07022334455",
			BusinessName: "Musa & Sons Estates",
			Status:       model.StatusPending,
			RequestedAt:  time.Date(2023, time.November, 12, 11, 15, 0, 0, time.UTC),
		},
		{
			ID:           "usr-004",
			Name:         "Funke Adeyemi",
			Email:        "funke.adeyemi@example.com",
			Phone:        "09011223344",
			BusinessName: "Crownfield Homes",
			Status:       model.StatusRejected,
			RequestedAt:  time.Date(2023, time.November, 5, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:           "usr-005",
			Name:         "Emeka Eze",
			Email:        "emeka.eze@example.com",
			Phone:        "08155667788",
			BusinessName: "Eze Lands & Gardens",
			Status:       model.StatusPending,
			RequestedAt:  time.Date(2023, time.November, 13, 10, 20, 0, 0, time.UTC),
		},
	}
}
