// Package tui implements the interactive terminal frontend: the listing
// browser, the upload form, the contact card, and the access-code-gated
// admin dashboard. It follows the Elm architecture via bubbletea: a root
// Model routes messages to per-view sub-models, and all storage and
// provider work runs in commands.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/neutech/estates/internal/admin"
	"github.com/neutech/estates/internal/filter"
	"github.com/neutech/estates/internal/refdata"
	"github.com/neutech/estates/internal/service"
	"github.com/neutech/estates/internal/tui/themes"
)

// Model is the root TUI model.
type Model struct {
	cfg       Config
	keys      KeyMap
	theme     themes.Theme
	storage   service.Storage
	describer service.Describer
	session   *admin.Session

	view      View
	listings  listingsModel
	upload    uploadModel
	adminView adminModel
	help      help.Model

	// homeState backs the quick search on the home screen; it becomes the
	// listings filter when the search is submitted.
	homeState string

	status string
	width  int
	height int
}

// New assembles the root model. The admin session is created here and
// lives for the whole program run, so an access code changed through the
// reset flow keeps working after a logout.
func New(storage service.Storage, describer service.Describer, cfg Config) Model {
	theme := themes.Default
	keys := DefaultKeyMap()
	session := admin.NewSession(
		cfg.AccessCode,
		admin.StaticVerifier{Code: cfg.VerificationCode},
		admin.Contacts{Email: cfg.AdminEmail, Phone: cfg.AdminPhone},
	)

	return Model{
		cfg:       cfg,
		keys:      keys,
		theme:     theme,
		storage:   storage,
		describer: describer,
		session:   session,
		view:      ViewHome,
		listings:  newListingsModel(theme, keys),
		upload:    newUploadModel(theme, keys, cfg.ListingContactPhone),
		adminView: newAdminModel(theme, keys, session),
		help:      help.New(),
	}
}

// Init loads the session data.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadListingsCmd(m.storage),
		loadUsersCmd(m.storage),
	)
}

// Update routes messages: global keys first, then the active view, then
// the data and timer messages that must reach their owners regardless of
// which view is showing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case listingsLoadedMsg:
		if msg.err != nil {
			m.status = "Failed to load listings."
			return m, nil
		}
		m.status = ""
		m.listings.setListings(msg.listings)
		m.adminView.setListings(msg.listings)
		return m, nil

	case usersLoadedMsg:
		if msg.err != nil {
			m.status = "Failed to load publisher applications."
			return m, nil
		}
		m.adminView.setUsers(msg.users)
		return m, nil

	case addListingMsg:
		return m, addListingCmd(m.storage, msg.property)

	case listingAddedMsg:
		var cmd tea.Cmd
		m.upload, cmd = m.upload.Update(msg)
		if msg.err == nil {
			return m, tea.Batch(cmd, loadListingsCmd(m.storage))
		}
		return m, cmd

	case removeListingMsg:
		return m, removeListingCmd(m.storage, msg.id)

	case listingRemovedMsg:
		if msg.err != nil {
			m.status = "Failed to remove the listing."
			return m, nil
		}
		return m, loadListingsCmd(m.storage)

	case setUserStatusMsg:
		return m, setUserStatusCmd(m.storage, msg.id, msg.status)

	case userStatusSetMsg:
		if msg.err != nil {
			m.status = "Failed to update the application."
			return m, nil
		}
		return m, loadUsersCmd(m.storage)

	case generateDescriptionMsg:
		req := service.DescriptionRequest{
			Title:    msg.title,
			Type:     msg.propType,
			Location: msg.location,
			Features: msg.features,
		}
		return m, generateDescriptionCmd(m.describer, req)

	case descriptionReadyMsg:
		var cmd tea.Cmd
		m.upload, cmd = m.upload.Update(msg)
		return m, cmd

	case uploadNavigateMsg:
		if m.view == ViewUpload && m.upload.generation == msg.generation {
			m.view = ViewListings
		}
		return m, nil

	case sendFinishedMsg, codeSentMsg, resetDoneMsg:
		var cmd tea.Cmd
		m.adminView, cmd = m.adminView.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		var adminCmd, uploadCmd tea.Cmd
		m.adminView, adminCmd = m.adminView.Update(msg)
		m.upload, uploadCmd = m.upload.Update(msg)
		return m, tea.Batch(adminCmd, uploadCmd)

	case errorMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always-on bindings, reachable even while typing.
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ClearScreen):
		return m, tea.ClearScreen
	}

	if !m.activeTyping() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.GoHome):
			m.view = ViewHome
			return m, nil
		case key.Matches(msg, m.keys.GoListings):
			m.view = ViewListings
			return m, nil
		case key.Matches(msg, m.keys.GoUpload):
			m.view = ViewUpload
			return m, nil
		case key.Matches(msg, m.keys.GoContact):
			m.view = ViewContact
			return m, nil
		case key.Matches(msg, m.keys.GoAdmin):
			m.view = ViewAdmin
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.view {
	case ViewHome:
		m = m.updateHome(msg)
	case ViewListings:
		m.listings, cmd = m.listings.Update(msg)
	case ViewUpload:
		m.upload, cmd = m.upload.Update(msg)
	case ViewAdmin:
		m.adminView, cmd = m.adminView.Update(msg)
	case ViewContact:
	}
	return m, cmd
}

// updateHome drives the quick search: pick a state, jump to listings with
// it applied.
func (m Model) updateHome(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "left", "h":
		m.homeState = cycleOption(refdata.StateNames(), m.homeState, -1)
	case "right", "l":
		m.homeState = cycleOption(refdata.StateNames(), m.homeState, 1)
	case "enter":
		m.listings.criteria = filter.Criteria{State: m.homeState}
		m.listings.cursor = 0
		m.view = ViewListings
	}
	return m
}

// activeTyping reports whether the active view has a focused text field,
// in which case plain-letter shortcuts must pass through as input.
func (m Model) activeTyping() bool {
	switch m.view {
	case ViewUpload:
		return m.upload.typing()
	case ViewAdmin:
		return m.adminView.typing()
	case ViewHome, ViewListings, ViewContact:
	}
	return false
}
