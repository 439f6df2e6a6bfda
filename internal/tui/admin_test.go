package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neutech/estates/internal/admin"
	"github.com/neutech/estates/internal/model"
	"github.com/neutech/estates/internal/tui/themes"
)

func newTestAdmin() adminModel {
	session := admin.NewSession("admin123", admin.StaticVerifier{Code: "123456"}, admin.Contacts{
		Email: "admin@example.com",
		Phone: "08000000000",
	})
	return newAdminModel(themes.Default, DefaultKeyMap(), session)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestAdmin_LoginThroughKeys(t *testing.T) {
	m := newTestAdmin()

	for _, r := range "admin123" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, _ = m.Update(enter())

	assert.Equal(t, admin.StateDashboard, m.session.State())
}

func TestAdmin_WrongCodeShowsMessage(t *testing.T) {
	m := newTestAdmin()

	m, _ = m.Update(keyRunes("x"))
	m, _ = m.Update(enter())

	assert.Equal(t, admin.StateLoggedOut, m.session.State())
	assert.Equal(t, admin.MsgInvalidAccessCode, m.session.Err())
	assert.Contains(t, m.View(), admin.MsgInvalidAccessCode)
}

// driveToChannelChoice tabs to the forgot link and activates it.
func driveToChannelChoice(t *testing.T, m adminModel) adminModel {
	t.Helper()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(enter())
	require.Equal(t, admin.StateChoosingChannel, m.session.State())
	return m
}

func TestAdmin_ResetTimerChain(t *testing.T) {
	m := driveToChannelChoice(t, newTestAdmin())

	// Selecting a channel starts the send simulation.
	m, cmd := m.Update(enter())
	require.NotNil(t, cmd)
	require.True(t, m.session.Sending())

	// First timer: the code is "sent".
	epoch := m.session.Epoch()
	m, cmd = m.Update(sendFinishedMsg{epoch: epoch})
	require.NotNil(t, cmd)
	assert.False(t, m.session.Sending())
	assert.Contains(t, m.session.Notice(), "Verification code sent to admin@example.com")

	// Second timer: advance to code entry.
	m, _ = m.Update(codeSentMsg{epoch: m.session.Epoch()})
	assert.Equal(t, admin.StateAwaitingCode, m.session.State())
}

func TestAdmin_StaleTimerIsDiscarded(t *testing.T) {
	m := driveToChannelChoice(t, newTestAdmin())

	m, _ = m.Update(enter())
	staleEpoch := m.session.Epoch()

	m, _ = m.Update(sendFinishedMsg{epoch: staleEpoch})
	// The user resends; a leftover advance from the first send must not
	// fire against the new state.
	m, _ = m.Update(codeSentMsg{epoch: staleEpoch})
	assert.Equal(t, admin.StateChoosingChannel, m.session.State())
}

func TestAdmin_FullResetThroughMessages(t *testing.T) {
	m := driveToChannelChoice(t, newTestAdmin())

	m, _ = m.Update(enter())
	m, _ = m.Update(sendFinishedMsg{epoch: m.session.Epoch()})
	m, _ = m.Update(codeSentMsg{epoch: m.session.Epoch()})
	require.Equal(t, admin.StateAwaitingCode, m.session.State())

	for _, r := range "123456" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, _ = m.Update(enter())
	require.Equal(t, admin.StateSettingNewCode, m.session.State())

	for _, r := range "newsecret" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, _ = m.Update(enter()) // move to confirm field
	for _, r := range "newsecret" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, _ = m.Update(enter()) // move to save button
	m, cmd := m.Update(enter())
	require.NotNil(t, cmd)

	m, _ = m.Update(resetDoneMsg{epoch: m.session.Epoch()})
	require.Equal(t, admin.StateLoggedOut, m.session.State())

	// Only the replacement code logs in now.
	for _, r := range "newsecret" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, _ = m.Update(enter())
	assert.Equal(t, admin.StateDashboard, m.session.State())
}

func TestAdmin_DashboardActions(t *testing.T) {
	m := newTestAdmin()
	require.True(t, m.session.Login("admin123"))

	m.setUsers([]model.User{
		{ID: "usr-1", Name: "A", Email: "a@example.com", Status: model.StatusPending},
		{ID: "usr-2", Name: "B", Email: "b@example.com", Status: model.StatusPending},
	})
	m.setListings([]model.Property{
		{ID: "100", Title: "First"},
		{ID: "200", Title: "Second"},
	})

	// Approve the second application.
	m, _ = m.Update(keyRunes("j"))
	m, cmd := m.Update(keyRunes("a"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(setUserStatusMsg)
	require.True(t, ok)
	assert.Equal(t, "usr-2", msg.id)
	assert.Equal(t, model.StatusApproved, msg.status)

	// Deleting a listing requires confirmation.
	m, _ = m.Update(keyRunes("t"))
	m, _ = m.Update(keyRunes("d"))
	assert.True(t, m.confirmDelete)

	m, _ = m.Update(keyRunes("n"))
	assert.False(t, m.confirmDelete)

	m, _ = m.Update(keyRunes("d"))
	m, cmd = m.Update(keyRunes("y"))
	require.NotNil(t, cmd)
	rm, ok := cmd().(removeListingMsg)
	require.True(t, ok)
	assert.Equal(t, "100", rm.id)
}

func TestAdmin_DashboardChangeCode(t *testing.T) {
	m := newTestAdmin()
	require.True(t, m.session.Login("admin123"))

	m, _ = m.Update(keyRunes("c"))
	assert.Equal(t, admin.StateChoosingChannel, m.session.State())
}

func TestAdmin_LogoutClearsInputs(t *testing.T) {
	m := newTestAdmin()
	require.True(t, m.session.Login("admin123"))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, admin.StateLoggedOut, m.session.State())
	assert.Empty(t, m.code.Value())
}
