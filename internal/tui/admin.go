package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neutech/estates/internal/admin"
	"github.com/neutech/estates/internal/cli"
	"github.com/neutech/estates/internal/model"
	"github.com/neutech/estates/internal/tui/themes"
)

// Dashboard tabs.
const (
	tabPublishers = iota
	tabProperties
)

// adminModel renders whatever screen the admin session is in: the login
// gate, the reset flow, or the dashboard. All flow decisions live in the
// session; this model only collects input and schedules the timed
// transitions the session hands back epochs for.
type adminModel struct {
	theme   themes.Theme
	keys    KeyMap
	session *admin.Session

	code    textinput.Model
	otp     textinput.Model
	newCode textinput.Model
	confirm textinput.Model
	spin    spinner.Model

	users    []model.User
	listings []model.Property

	tab           int
	channelCursor int
	loginFocus    int // 0 code input, 1 login button, 2 forgot link
	resetFocus    int // 0 otp input, 1 verify button, 2 resend link
	newFocus      int // 0 new code, 1 confirm, 2 save button
	userCursor    int
	listingCursor int
	confirmDelete bool
}

func newAdminModel(theme themes.Theme, keys KeyMap, session *admin.Session) adminModel {
	mkSecret := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
		ti.CharLimit = 64
		ti.Width = 32
		return ti
	}

	otp := textinput.New()
	otp.Placeholder = "6-digit code"
	otp.CharLimit = 6
	otp.Width = 32

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.StatusInfo

	m := adminModel{
		theme:   theme,
		keys:    keys,
		session: session,
		code:    mkSecret("Access code"),
		otp:     otp,
		newCode: mkSecret("New access code"),
		confirm: mkSecret("Confirm new access code"),
		spin:    sp,
	}
	m.code.Focus()
	return m
}

func (m *adminModel) setUsers(users []model.User)            { m.clampUsers(users) }
func (m *adminModel) setListings(listings []model.Property) { m.clampListings(listings) }

func (m *adminModel) clampUsers(users []model.User) {
	m.users = users
	if m.userCursor >= len(users) {
		m.userCursor = max(0, len(users)-1)
	}
}

func (m *adminModel) clampListings(listings []model.Property) {
	m.listings = listings
	if m.listingCursor >= len(listings) {
		m.listingCursor = max(0, len(listings)-1)
		m.confirmDelete = false
	}
}

// typing reports whether a text field is focused, so the root withholds
// single-letter shortcuts while the user enters codes.
func (m adminModel) typing() bool {
	switch m.session.State() {
	case admin.StateLoggedOut:
		return m.loginFocus == 0
	case admin.StateAwaitingCode:
		return m.resetFocus == 0
	case admin.StateSettingNewCode:
		return m.newFocus < 2
	case admin.StateDashboard, admin.StateChoosingChannel:
	}
	return false
}

func (m adminModel) Update(msg tea.Msg) (adminModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case sendFinishedMsg:
		if epoch, ok := m.session.FinishSend(msg.epoch); ok {
			return m, codeSentCmd(epoch)
		}
		return m, nil

	case codeSentMsg:
		if m.session.AdvanceToCode(msg.epoch) {
			m.otp.SetValue("")
			m.otp.Focus()
			m.resetFocus = 0
		}
		return m, nil

	case resetDoneMsg:
		if m.session.CompleteReset(msg.epoch) {
			m.resetInputs()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.session.Sending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m adminModel) updateKey(msg tea.KeyMsg) (adminModel, tea.Cmd) {
	switch m.session.State() {
	case admin.StateLoggedOut:
		return m.updateLogin(msg)
	case admin.StateDashboard:
		return m.updateDashboard(msg)
	case admin.StateChoosingChannel:
		return m.updateChannel(msg)
	case admin.StateAwaitingCode:
		return m.updateAwaitingCode(msg)
	case admin.StateSettingNewCode:
		return m.updateNewCode(msg)
	}
	return m, nil
}

func (m adminModel) updateLogin(msg tea.KeyMsg) (adminModel, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.loginFocus = (m.loginFocus + 1) % 3
		m.syncLoginFocus()
		return m, nil
	case "shift+tab", "up":
		m.loginFocus = (m.loginFocus + 2) % 3
		m.syncLoginFocus()
		return m, nil
	case "enter":
		switch m.loginFocus {
		case 2:
			m.session.ForgotCode()
			m.channelCursor = 0
			return m, nil
		default:
			if m.session.Login(m.code.Value()) {
				m.code.SetValue("")
			}
			return m, nil
		}
	}
	if m.loginFocus == 0 {
		var cmd tea.Cmd
		m.code, cmd = m.code.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *adminModel) syncLoginFocus() {
	if m.loginFocus == 0 {
		m.code.Focus()
	} else {
		m.code.Blur()
	}
}

func (m adminModel) updateDashboard(msg tea.KeyMsg) (adminModel, tea.Cmd) {
	if m.confirmDelete {
		switch msg.String() {
		case "y", "enter":
			m.confirmDelete = false
			if m.listingCursor < len(m.listings) {
				id := m.listings[m.listingCursor].ID
				return m, func() tea.Msg { return removeListingMsg{id: id} }
			}
			return m, nil
		case "n", "esc":
			m.confirmDelete = false
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case "t", "tab":
		m.tab = (m.tab + 1) % 2
		return m, nil
	case "c":
		m.session.ChangeCode()
		m.channelCursor = 0
		return m, nil
	case "esc":
		m.session.Logout()
		m.resetInputs()
		return m, nil
	case "up", "k":
		if m.tab == tabPublishers && m.userCursor > 0 {
			m.userCursor--
		} else if m.tab == tabProperties && m.listingCursor > 0 {
			m.listingCursor--
		}
		return m, nil
	case "down", "j":
		if m.tab == tabPublishers && m.userCursor < len(m.users)-1 {
			m.userCursor++
		} else if m.tab == tabProperties && m.listingCursor < len(m.listings)-1 {
			m.listingCursor++
		}
		return m, nil
	case "a":
		if m.tab == tabPublishers && m.userCursor < len(m.users) {
			id := m.users[m.userCursor].ID
			return m, func() tea.Msg {
				return setUserStatusMsg{id: id, status: model.StatusApproved}
			}
		}
		return m, nil
	case "r":
		if m.tab == tabPublishers && m.userCursor < len(m.users) {
			id := m.users[m.userCursor].ID
			return m, func() tea.Msg {
				return setUserStatusMsg{id: id, status: model.StatusRejected}
			}
		}
		return m, nil
	case "d":
		if m.tab == tabProperties && m.listingCursor < len(m.listings) {
			m.confirmDelete = true
		}
		return m, nil
	}
	return m, nil
}

func (m adminModel) updateChannel(msg tea.KeyMsg) (adminModel, tea.Cmd) {
	if m.session.Sending() {
		return m, nil
	}
	switch msg.String() {
	case "up", "k", "down", "j", "tab":
		m.channelCursor = (m.channelCursor + 1) % 2
		return m, nil
	case "esc":
		m.session.Back()
		return m, nil
	case "enter":
		channel := admin.ChannelEmail
		if m.channelCursor == 1 {
			channel = admin.ChannelPhone
		}
		if epoch, ok := m.session.BeginSend(channel); ok {
			return m, tea.Batch(m.spin.Tick, finishSendCmd(epoch))
		}
		return m, nil
	}
	return m, nil
}

func (m adminModel) updateAwaitingCode(msg tea.KeyMsg) (adminModel, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.resetFocus = (m.resetFocus + 1) % 3
		m.syncOTPFocus()
		return m, nil
	case "shift+tab", "up":
		m.resetFocus = (m.resetFocus + 2) % 3
		m.syncOTPFocus()
		return m, nil
	case "esc":
		m.session.Back()
		return m, nil
	case "enter":
		switch m.resetFocus {
		case 2:
			m.session.Resend()
			m.channelCursor = 0
			return m, nil
		default:
			if m.session.SubmitCode(m.otp.Value()) {
				m.otp.SetValue("")
				m.newFocus = 0
				m.syncNewCodeFocus()
			}
			return m, nil
		}
	}
	if m.resetFocus == 0 {
		var cmd tea.Cmd
		m.otp, cmd = m.otp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *adminModel) syncOTPFocus() {
	if m.resetFocus == 0 {
		m.otp.Focus()
	} else {
		m.otp.Blur()
	}
}

func (m adminModel) updateNewCode(msg tea.KeyMsg) (adminModel, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.newFocus = (m.newFocus + 1) % 3
		m.syncNewCodeFocus()
		return m, nil
	case "shift+tab", "up":
		m.newFocus = (m.newFocus + 2) % 3
		m.syncNewCodeFocus()
		return m, nil
	case "esc":
		m.session.Back()
		m.resetInputs()
		return m, nil
	case "enter":
		if m.newFocus < 2 {
			m.newFocus++
			m.syncNewCodeFocus()
			return m, nil
		}
		if epoch, ok := m.session.SubmitNewCode(m.newCode.Value(), m.confirm.Value()); ok {
			return m, resetDoneCmd(epoch)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.newFocus {
	case 0:
		m.newCode, cmd = m.newCode.Update(msg)
	case 1:
		m.confirm, cmd = m.confirm.Update(msg)
	}
	return m, cmd
}

func (m *adminModel) syncNewCodeFocus() {
	m.newCode.Blur()
	m.confirm.Blur()
	switch m.newFocus {
	case 0:
		m.newCode.Focus()
	case 1:
		m.confirm.Focus()
	}
}

func (m *adminModel) resetInputs() {
	m.code.SetValue("")
	m.otp.SetValue("")
	m.newCode.SetValue("")
	m.confirm.SetValue("")
	m.loginFocus = 0
	m.resetFocus = 0
	m.newFocus = 0
	m.tab = tabPublishers
	m.confirmDelete = false
	m.syncLoginFocus()
}

func (m adminModel) View() string {
	switch m.session.State() {
	case admin.StateLoggedOut:
		return m.viewLogin()
	case admin.StateDashboard:
		return m.viewDashboard()
	case admin.StateChoosingChannel:
		return m.viewChannel()
	case admin.StateAwaitingCode:
		return m.viewAwaitingCode()
	case admin.StateSettingNewCode:
		return m.viewNewCode()
	}
	return ""
}

func (m adminModel) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Admin Login"))
	b.WriteString("\n")
	b.WriteString(m.code.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderButton("Login", m.loginFocus == 1))
	b.WriteString("  ")
	b.WriteString(m.renderLink("Forgot access code?", m.loginFocus == 2))
	b.WriteString("\n\n")
	b.WriteString(m.renderMessages())
	return b.String()
}

func (m adminModel) viewChannel() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Reset Access Code"))
	b.WriteString("\n")
	b.WriteString(m.theme.Normal.Render("Where should the verification code be sent?"))
	b.WriteString("\n\n")

	if m.session.Sending() {
		b.WriteString(m.spin.View())
		b.WriteString(m.theme.StatusInfo.Render(" Sending verification code..."))
		b.WriteString("\n")
		return b.String()
	}

	options := []string{"Email", "Phone (SMS)"}
	for i, opt := range options {
		if i == m.channelCursor {
			b.WriteString(m.theme.Selected.Render(" ▸ " + opt + " "))
		} else {
			b.WriteString(m.theme.Normal.Render("   " + opt))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Enter to send · Esc to cancel"))
	b.WriteString("\n")
	b.WriteString(m.renderMessages())
	return b.String()
}

func (m adminModel) viewAwaitingCode() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Enter Verification Code"))
	b.WriteString("\n")
	if notice := m.session.Notice(); notice != "" {
		b.WriteString(m.theme.StatusInfo.Render(notice))
		b.WriteString("\n\n")
	}
	b.WriteString(m.otp.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderButton("Verify", m.resetFocus == 1))
	b.WriteString("  ")
	b.WriteString(m.renderLink("Resend code", m.resetFocus == 2))
	b.WriteString("\n\n")
	b.WriteString(m.renderMessages())
	return b.String()
}

func (m adminModel) viewNewCode() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Set a New Access Code"))
	b.WriteString("\n")
	b.WriteString(m.newCode.View())
	b.WriteString("\n")
	b.WriteString(m.confirm.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderButton("Save", m.newFocus == 2))
	b.WriteString("\n\n")
	b.WriteString(m.renderMessages())
	return b.String()
}

func (m adminModel) viewDashboard() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Admin Dashboard"))
	b.WriteString("\n")

	tabs := []string{"PUBLISHERS", "PROPERTIES"}
	rendered := make([]string, 0, len(tabs))
	for i, t := range tabs {
		if i == m.tab {
			rendered = append(rendered, m.theme.TabActive.Render(t))
		} else {
			rendered = append(rendered, m.theme.TabInactive.Render(t))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	b.WriteString("\n\n")

	if m.tab == tabPublishers {
		b.WriteString(m.viewPublishers())
	} else {
		b.WriteString(m.viewProperties())
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("t switch tab · c change access code · Esc log out"))
	b.WriteString("\n")
	return b.String()
}

func (m adminModel) viewPublishers() string {
	if len(m.users) == 0 {
		return m.theme.StatusPending.Render("No publisher applications.")
	}

	pending, approved, rejected := model.PartitionUsers(m.users)

	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf(
		"%d pending · %d approved · %d rejected", len(pending), len(approved), len(rejected))))
	b.WriteString("\n\n")

	for i, u := range m.users {
		line := fmt.Sprintf("%-22s %-28s %s", u.Name, u.BusinessName, u.Email)
		badge := m.statusBadge(u.Status)
		if i == m.userCursor {
			b.WriteString(m.theme.Selected.Render(" " + line + " "))
		} else {
			b.WriteString(m.theme.Normal.Render(" " + line + " "))
		}
		b.WriteString(" ")
		b.WriteString(badge)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("a approve · r reject"))
	return b.String()
}

func (m adminModel) statusBadge(status model.UserStatus) string {
	switch status {
	case model.StatusApproved:
		return m.theme.StatusSuccess.Render(string(status))
	case model.StatusRejected:
		return m.theme.StatusError.Render(string(status))
	default:
		return m.theme.StatusPending.Render(string(status))
	}
}

func (m adminModel) viewProperties() string {
	if len(m.listings) == 0 {
		return m.theme.StatusPending.Render("No listings.")
	}

	var b strings.Builder
	for i, p := range m.listings {
		line := fmt.Sprintf("%-36s %-14s %s, %s",
			p.Title, cli.FormatNaira(p.Price), p.Location.LGA, p.Location.State)
		if i == m.listingCursor {
			b.WriteString(m.theme.Selected.Render(" " + line + " "))
		} else {
			b.WriteString(m.theme.Normal.Render(" " + line + " "))
		}
		b.WriteString("\n")
	}

	if m.confirmDelete && m.listingCursor < len(m.listings) {
		b.WriteString("\n")
		b.WriteString(m.theme.StatusWarning.Render(fmt.Sprintf(
			"Delete %q? (y/n)", m.listings[m.listingCursor].Title)))
	} else {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render("d delete"))
	}
	return b.String()
}

func (m adminModel) renderButton(label string, focused bool) string {
	if focused {
		return m.theme.Selected.Render(" " + label + " ")
	}
	return m.theme.Highlighted.Render(" " + label + " ")
}

func (m adminModel) renderLink(label string, focused bool) string {
	if focused {
		return m.theme.Selected.Render(label)
	}
	return m.theme.StatusInfo.Render(label)
}

func (m adminModel) renderMessages() string {
	var b strings.Builder
	if errMsg := m.session.Err(); errMsg != "" {
		b.WriteString(m.theme.StatusError.Render(errMsg))
		b.WriteString("\n")
	}
	if notice := m.session.Notice(); notice != "" && m.session.State() != admin.StateAwaitingCode {
		b.WriteString(m.theme.StatusSuccess.Render(notice))
		b.WriteString("\n")
	}
	return b.String()
}
