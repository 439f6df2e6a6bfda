package tui

import (
	"time"

	"github.com/neutech/estates/internal/model"
)

// View identifies one of the top-level screens.
type View int

const (
	// ViewHome is the landing screen with the quick search.
	ViewHome View = iota
	// ViewListings is the filterable listing browser.
	ViewListings
	// ViewUpload is the new-listing form.
	ViewUpload
	// ViewContact is the static office/contact card.
	ViewContact
	// ViewAdmin is the access-code-gated dashboard.
	ViewAdmin
)

// Fixed delays for the scheduled transitions. They exist purely to pace
// the UI; every scheduled message carries the epoch or generation it was
// issued under so a stale timer is discarded.
const (
	sendCodeDelay    = 1500 * time.Millisecond
	sentNoticeDelay  = 1500 * time.Millisecond
	resetReturnDelay = 2 * time.Second
	uploadNavDelay   = 1500 * time.Millisecond
)

// Data loading messages.
type listingsLoadedMsg struct {
	err      error
	listings []model.Property
}

type usersLoadedMsg struct {
	err   error
	users []model.User
}

// Mutation request messages emitted by components.
type addListingMsg struct {
	property model.Property
}

type removeListingMsg struct {
	id string
}

type setUserStatusMsg struct {
	id     string
	status model.UserStatus
}

// Mutation completion messages.
type listingAddedMsg struct {
	err error
	id  string
}

type listingRemovedMsg struct {
	err error
}

type userStatusSetMsg struct {
	err error
}

// AI description messages.
type generateDescriptionMsg struct {
	title    string
	propType string
	location string
	features string
}

type descriptionReadyMsg struct {
	text string
}

// Admin reset-flow timer messages; epoch-keyed to the session.
type sendFinishedMsg struct {
	epoch int
}

type codeSentMsg struct {
	epoch int
}

type resetDoneMsg struct {
	epoch int
}

// uploadNavigateMsg fires after a successful upload to move the user to
// the listings view. The generation counter plays the same role as the
// admin epoch: navigating away before the timer fires makes it stale.
type uploadNavigateMsg struct {
	generation int
}

// errorMsg carries a non-fatal error to surface in the status line.
type errorMsg struct {
	err error
}
