// Package admin implements the access-code gate in front of the admin
// dashboard: login, logout, and the simulated multi-factor reset flow.
//
// The flow is modelled as an explicit state machine owned by a Session
// value. Every transition happens synchronously inside a method call; the
// rendering layer is a pure projection of the session's current state.
// Delayed transitions (the "sending..." simulation and the post-reset
// return to the login screen) are driven by the caller's scheduler and
// keyed to an epoch counter, so a timer scheduled against an earlier state
// of the session is discarded instead of firing late.
package admin

import "fmt"

// State identifies where the admin session currently is.
type State int

const (
	// StateLoggedOut is the initial state: the login form.
	StateLoggedOut State = iota
	// StateDashboard is reached only by presenting the current secret.
	StateDashboard
	// StateChoosingChannel picks email or phone for the reset code.
	StateChoosingChannel
	// StateAwaitingCode waits for the one-time code.
	StateAwaitingCode
	// StateSettingNewCode collects and confirms the replacement secret.
	StateSettingNewCode
)

// String returns a readable state name for logs.
func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged_out"
	case StateDashboard:
		return "dashboard"
	case StateChoosingChannel:
		return "choosing_channel"
	case StateAwaitingCode:
		return "awaiting_code"
	case StateSettingNewCode:
		return "setting_new_code"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Channel is the communication channel chosen for the simulated reset.
type Channel string

const (
	// ChannelEmail delivers the code to the configured admin email.
	ChannelEmail Channel = "email"
	// ChannelPhone delivers the code to the configured admin phone.
	ChannelPhone Channel = "phone"
)

// MinCodeLength is the shortest acceptable replacement access code.
const MinCodeLength = 6

// Messages surfaced inline by the flow. Validation failures are local and
// never fatal; inputs are left intact so the user can correct them.
const (
	MsgInvalidAccessCode = "Invalid access code. Please try again."
	MsgInvalidCode       = "Invalid verification code."
	MsgCodeTooShort      = "Access code must be at least 6 characters."
	MsgCodeMismatch      = "Codes do not match."
	MsgCodeUpdated       = "Access code updated successfully!"
)

// Contacts holds the destinations shown in the "code sent" notice.
type Contacts struct {
	Email string
	Phone string
}

// Session gates the admin area. It is created when the admin view is
// entered and discarded at the end of the terminal session; the secret it
// guards lives only as long as the session does.
type Session struct {
	verifier Verifier
	secret   string
	errMsg   string
	notice   string
	channel  Channel
	contacts Contacts
	state    State
	epoch    int
	sending  bool
}

// NewSession creates a session in StateLoggedOut guarding initialSecret.
// The verifier decides whether a submitted one-time code is acceptable;
// pass a StaticVerifier for the demo behavior.
func NewSession(initialSecret string, verifier Verifier, contacts Contacts) *Session {
	return &Session{
		secret:   initialSecret,
		verifier: verifier,
		contacts: contacts,
		channel:  ChannelEmail,
		state:    StateLoggedOut,
	}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Err returns the current inline error message, if any.
func (s *Session) Err() string { return s.errMsg }

// Notice returns the current informational message, if any.
func (s *Session) Notice() string { return s.notice }

// Sending reports whether a simulated send is in flight; the UI must
// disable re-submission while it is.
func (s *Session) Sending() bool { return s.sending }

// Channel returns the currently selected reset channel.
func (s *Session) Channel() Channel { return s.channel }

// Epoch returns the current epoch. Timer callbacks must present the epoch
// they were scheduled under; any transition since then invalidates them.
func (s *Session) Epoch() int { return s.epoch }

// bump invalidates all outstanding scheduled transitions.
func (s *Session) bump() int {
	s.epoch++
	return s.epoch
}

// Login attempts to enter the dashboard. The secret comparison is against
// whatever the session's current secret is, so a reset invalidates the old
// code immediately.
func (s *Session) Login(code string) bool {
	if s.state != StateLoggedOut {
		return false
	}
	if code != s.secret {
		s.errMsg = MsgInvalidAccessCode
		return false
	}
	s.bump()
	s.state = StateDashboard
	s.errMsg = ""
	return true
}

// Logout returns to the login screen.
func (s *Session) Logout() {
	if s.state != StateDashboard {
		return
	}
	s.bump()
	s.state = StateLoggedOut
	s.clearMessages()
}

// ForgotCode starts the reset flow from the login screen.
func (s *Session) ForgotCode() {
	if s.state != StateLoggedOut {
		return
	}
	s.bump()
	s.state = StateChoosingChannel
	s.sending = false
	s.clearMessages()
}

// ChangeCode starts the reset flow from the dashboard, so a logged-in
// admin can rotate the secret without logging out first.
func (s *Session) ChangeCode() {
	if s.state != StateDashboard {
		return
	}
	s.bump()
	s.state = StateChoosingChannel
	s.sending = false
	s.clearMessages()
}

// Back steps the reset flow backwards: the code-entry screen returns to
// channel selection, every other reset screen returns to the login form.
// It does nothing while a send simulation is in flight.
func (s *Session) Back() {
	if s.sending {
		return
	}
	switch s.state {
	case StateAwaitingCode:
		s.bump()
		s.state = StateChoosingChannel
		s.clearMessages()
	case StateChoosingChannel, StateSettingNewCode:
		s.bump()
		s.state = StateLoggedOut
		s.clearMessages()
	case StateLoggedOut, StateDashboard:
	}
}

// BeginSend starts the simulated code delivery on the chosen channel and
// returns the epoch the caller should schedule FinishSend under. It fails
// when the session is not choosing a channel or a send is already running.
func (s *Session) BeginSend(channel Channel) (int, bool) {
	if s.state != StateChoosingChannel || s.sending {
		return 0, false
	}
	s.channel = channel
	s.sending = true
	s.clearMessages()
	return s.bump(), true
}

// FinishSend completes the first half of the send simulation: the code is
// now "sent" and a notice names the destination. Returns the epoch for
// scheduling AdvanceToCode, or false if the session moved on since
// BeginSend.
func (s *Session) FinishSend(epoch int) (int, bool) {
	if epoch != s.epoch || s.state != StateChoosingChannel || !s.sending {
		return 0, false
	}
	s.sending = false
	s.notice = "Verification code sent to " + s.destination()
	return s.bump(), true
}

// AdvanceToCode moves to the code-entry screen after the "sent" notice has
// been shown. Stale epochs are a no-op.
func (s *Session) AdvanceToCode(epoch int) bool {
	if epoch != s.epoch || s.state != StateChoosingChannel {
		return false
	}
	s.bump()
	s.state = StateAwaitingCode
	s.clearMessages()
	return true
}

// SubmitCode checks the one-time code against the verifier. On success the
// session proceeds to setting a new access code; on failure it stays put
// with an inline error and the input left for correction.
func (s *Session) SubmitCode(code string) bool {
	if s.state != StateAwaitingCode {
		return false
	}
	if !s.verifier.Verify(s.channel, code) {
		s.errMsg = MsgInvalidCode
		return false
	}
	s.bump()
	s.state = StateSettingNewCode
	s.clearMessages()
	return true
}

// Resend returns to channel selection so the send sequence can run again.
func (s *Session) Resend() {
	if s.state != StateAwaitingCode {
		return
	}
	s.bump()
	s.state = StateChoosingChannel
	s.sending = false
	s.clearMessages()
}

// SubmitNewCode validates and installs the replacement secret. On success
// the old secret stops working immediately, a success notice is shown, and
// the caller should schedule CompleteReset under the returned epoch to
// land back on the login screen. On failure the state and secret are
// unchanged.
func (s *Session) SubmitNewCode(newCode, confirmCode string) (int, bool) {
	if s.state != StateSettingNewCode {
		return 0, false
	}
	if len(newCode) < MinCodeLength {
		s.errMsg = MsgCodeTooShort
		return 0, false
	}
	if newCode != confirmCode {
		s.errMsg = MsgCodeMismatch
		return 0, false
	}
	s.secret = newCode
	s.errMsg = ""
	s.notice = MsgCodeUpdated
	return s.bump(), true
}

// CompleteReset finishes a successful code change by returning to the
// login screen with all transient state cleared. Stale epochs are a no-op.
func (s *Session) CompleteReset(epoch int) bool {
	if epoch != s.epoch || s.state != StateSettingNewCode {
		return false
	}
	s.bump()
	s.state = StateLoggedOut
	s.clearMessages()
	return true
}

func (s *Session) clearMessages() {
	s.errMsg = ""
	s.notice = ""
}

func (s *Session) destination() string {
	if s.channel == ChannelPhone {
		return s.contacts.Phone
	}
	return s.contacts.Email
}
