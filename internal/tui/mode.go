// Package tui provides the terminal user interface for taskdeck.
package tui

// Screen represents the top-level screen being shown. Screens map to
// identity states: an unauthenticated session never sees the board.
type Screen int

const (
	ScreenResolving Screen = iota // Stored token being validated at startup
	ScreenLogin                   // Email/password (and MFA code) form
	ScreenRegister                // Account creation form
	ScreenBoard                   // Three-column task board
	ScreenMFA                     // Two-factor enrollment / disable
)

// String returns the string representation of the screen.
func (s Screen) String() string {
	switch s {
	case ScreenResolving:
		return "resolving"
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	case ScreenBoard:
		return "board"
	case ScreenMFA:
		return "mfa"
	default:
		return "unknown"
	}
}

// Mode represents the current UI mode within the board screen.
type Mode int

const (
	ModeNormal  Mode = iota // Default navigation mode
	ModeFilter              // Column filter input mode
	ModeForm                // Task form (create or edit)
	ModeConfirm             // Confirmation dialog mode
	ModeHelp                // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFilter:
		return "filter"
	case ModeForm:
		return "form"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeFilter, ModeForm:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmDelete               // Delete completed task
	ConfirmLogout               // End the session
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		return "delete"
	case ConfirmLogout:
		return "logout"
	}
	return ""
}

// FormField identifies the focused input in the task form.
type FormField int

const (
	FieldTitle FormField = iota
	FieldDesc
	FieldDue
)

// Next returns the next form field, wrapping around.
func (f FormField) Next() FormField {
	switch f {
	case FieldTitle:
		return FieldDesc
	case FieldDesc:
		return FieldDue
	case FieldDue:
		return FieldTitle
	}
	return FieldTitle
}

// Prev returns the previous form field, wrapping around.
func (f FormField) Prev() FormField {
	switch f {
	case FieldTitle:
		return FieldDue
	case FieldDesc:
		return FieldTitle
	case FieldDue:
		return FieldDesc
	}
	return FieldTitle
}

// AuthField identifies the focused input on the login/register screens.
type AuthField int

const (
	AuthFieldName AuthField = iota // Register only
	AuthFieldEmail
	AuthFieldPassword
	AuthFieldCode // Login only, shown when the server requires MFA
)
