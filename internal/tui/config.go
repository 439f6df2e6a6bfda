package tui

// Config carries the settings the terminal UI needs at startup. Values
// come from the application config layer; defaults live there, not here.
type Config struct {
	// AccessCode is the initial admin secret. A reset inside the session
	// replaces it for the remainder of the process.
	AccessCode string
	// VerificationCode is the one-time code the simulated reset accepts.
	VerificationCode string
	// AdminEmail and AdminPhone are shown as the destinations in the
	// reset flow's "code sent" notice and on the contact screen.
	AdminEmail string
	AdminPhone string
	// ListingContactPhone is stamped onto every uploaded listing.
	ListingContactPhone string
}
