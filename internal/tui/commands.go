package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neutech/estates/internal/model"
	"github.com/neutech/estates/internal/service"
)

// opTimeout bounds every storage and provider call issued from the UI.
const opTimeout = 10 * time.Second

func loadListingsCmd(storage service.Storage) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		listings, err := storage.ListListings(ctx)
		return listingsLoadedMsg{listings: listings, err: err}
	}
}

func loadUsersCmd(storage service.Storage) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		users, err := storage.ListUsers(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func addListingCmd(storage service.Storage, property model.Property) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		err := storage.AddListing(ctx, property)
		return listingAddedMsg{id: property.ID, err: err}
	}
}

func removeListingCmd(storage service.Storage, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		err := storage.RemoveListing(ctx, id)
		return listingRemovedMsg{err: err}
	}
}

func setUserStatusCmd(storage service.Storage, id string, status model.UserStatus) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		err := storage.SetUserStatus(ctx, id, status)
		return userStatusSetMsg{err: err}
	}
}

func generateDescriptionCmd(describer service.Describer, req service.DescriptionRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		return descriptionReadyMsg{text: describer.Describe(ctx, req)}
	}
}

// Timer commands for the admin reset flow. Each carries the epoch it was
// scheduled under; the session discards stale ones.

func finishSendCmd(epoch int) tea.Cmd {
	return tea.Tick(sendCodeDelay, func(time.Time) tea.Msg {
		return sendFinishedMsg{epoch: epoch}
	})
}

func codeSentCmd(epoch int) tea.Cmd {
	return tea.Tick(sentNoticeDelay, func(time.Time) tea.Msg {
		return codeSentMsg{epoch: epoch}
	})
}

func resetDoneCmd(epoch int) tea.Cmd {
	return tea.Tick(resetReturnDelay, func(time.Time) tea.Msg {
		return resetDoneMsg{epoch: epoch}
	})
}

func uploadNavigateCmd(generation int) tea.Cmd {
	return tea.Tick(uploadNavDelay, func(time.Time) tea.Msg {
		return uploadNavigateMsg{generation: generation}
	})
}
