package tui

import "github.com/mvidalg/taskdeck/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgIdentityResolved is sent when the startup token check finished. User is
// nil when no valid session exists.
type MsgIdentityResolved struct {
	User *domain.User
}

func (MsgIdentityResolved) sealed() {}

// MsgLoggedIn is sent after a successful login.
type MsgLoggedIn struct {
	User *domain.User
}

func (MsgLoggedIn) sealed() {}

// MsgMFACodeRequired is sent when the server answered a login with a
// requires-MFA challenge.
type MsgMFACodeRequired struct{}

func (MsgMFACodeRequired) sealed() {}

// MsgRegistered is sent after a successful registration and auto-login.
type MsgRegistered struct {
	User *domain.User
}

func (MsgRegistered) sealed() {}

// MsgAuthError is sent when login or registration is rejected. The screen
// stays put and shows the classified message.
type MsgAuthError struct {
	Err error
}

func (MsgAuthError) sealed() {}

// MsgBoardLoaded is sent when the board is fetched. Seq matches the fetch
// sequence number the command was issued with; stale responses are dropped.
type MsgBoardLoaded struct {
	Board *domain.Board
	Seq   int
}

func (MsgBoardLoaded) sealed() {}

// MsgTaskSaved is sent when the task form was submitted successfully.
type MsgTaskSaved struct {
	Task    *domain.Task
	Created bool
}

func (MsgTaskSaved) sealed() {}

// MsgTaskMoved is sent when the server answered a move confirmation. Board
// is nil on success; when the server refused the move it carries the
// re-fetched replacement and RolledBack is true.
type MsgTaskMoved struct {
	Board      *domain.Board
	RolledBack bool
}

func (MsgTaskMoved) sealed() {}

// MsgTaskDeleted is sent when a task was deleted.
type MsgTaskDeleted struct {
	TaskID string
}

func (MsgTaskDeleted) sealed() {}

// MsgEnrollmentReady is sent when the server issued a fresh MFA secret.
type MsgEnrollmentReady struct {
	Enrollment *domain.MFAEnrollment
}

func (MsgEnrollmentReady) sealed() {}

// MsgMFAEnabled is sent when two-factor auth was turned on.
type MsgMFAEnabled struct{}

func (MsgMFAEnabled) sealed() {}

// MsgMFADisabled is sent when two-factor auth was turned off.
type MsgMFADisabled struct{}

func (MsgMFADisabled) sealed() {}

// MsgLoggedOut is sent when the session ended, by request or because the
// server rejected the token.
type MsgLoggedOut struct {
	SessionExpired bool
}

func (MsgLoggedOut) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
