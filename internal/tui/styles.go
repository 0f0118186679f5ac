package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mvidalg/taskdeck/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	// Column colors
	Pending    lipgloss.Color
	InProgress lipgloss.Color
	Completed  lipgloss.Color

	// Password strength colors (score 0-4)
	StrengthVeryWeak lipgloss.Color
	StrengthWeak     lipgloss.Color
	StrengthFair     lipgloss.Color
	StrengthStrong   lipgloss.Color
	StrengthVeryStr  lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray

	Pending:    lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Completed:  lipgloss.Color("#00B894"), // Green

	StrengthVeryWeak: lipgloss.Color("#D63031"), // Red
	StrengthWeak:     lipgloss.Color("#E17055"), // Orange
	StrengthFair:     lipgloss.Color("#FDCB6E"), // Yellow
	StrengthStrong:   lipgloss.Color("#55EFC4"), // Mint
	StrengthVeryStr:  lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Board columns
	Column        lipgloss.Style
	ColumnFocused lipgloss.Style
	ColumnTitle   lipgloss.Style
	ColumnCount   lipgloss.Style

	// Tasks
	TaskTitle         lipgloss.Style
	TaskTitleSelected lipgloss.Style
	TaskDesc          lipgloss.Style
	TaskDue           lipgloss.Style
	TaskDueOverdue    lipgloss.Style
	CursorSelected    lipgloss.Style

	// Status accents
	StatusPending    lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusCompleted  lipgloss.Style

	// Forms
	FormLabel        lipgloss.Style
	FormLabelFocused lipgloss.Style
	Input            lipgloss.Style
	InputPrompt      lipgloss.Style

	// Password strength meter
	CheckPass lipgloss.Style
	CheckFail lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Help
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer / messages
	Footer    lipgloss.Style
	FooterKey lipgloss.Style
	ErrorMsg  lipgloss.Style
	Notice    lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Column: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		ColumnFocused: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		ColumnTitle: lipgloss.NewStyle().
			Bold(true),

		ColumnCount: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TaskDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		TaskDue: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskDueOverdue: lipgloss.NewStyle().
			Foreground(Colors.Error),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		StatusPending: lipgloss.NewStyle().
			Foreground(Colors.Pending),

		StatusInProgress: lipgloss.NewStyle().
			Foreground(Colors.InProgress),

		StatusCompleted: lipgloss.NewStyle().
			Foreground(Colors.Completed),

		FormLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(12),

		FormLabelFocused: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true).
			Width(12),

		Input: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		CheckPass: lipgloss.NewStyle().
			Foreground(Colors.Success),

		CheckFail: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle(),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		Notice: lipgloss.NewStyle().
			Foreground(Colors.Warning),
	}
}

// StatusStyle returns the accent style for a given status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusPending:
		return s.StatusPending
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusCompleted:
		return s.StatusCompleted
	default:
		return s.StatusPending
	}
}

// StatusIcon returns an icon for a given status.
func StatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusPending:
		return "○"
	case domain.StatusInProgress:
		return "●"
	case domain.StatusCompleted:
		return "✓"
	default:
		return "?"
	}
}

// StrengthLabel returns the label for a 0-4 strength score.
func StrengthLabel(score int) string {
	switch score {
	case 0:
		return "Very weak"
	case 1:
		return "Weak"
	case 2:
		return "Fair"
	case 3:
		return "Strong"
	default:
		return "Very strong"
	}
}

// StrengthColor returns the color for a 0-4 strength score.
func StrengthColor(score int) lipgloss.Color {
	switch score {
	case 0:
		return Colors.StrengthVeryWeak
	case 1:
		return Colors.StrengthWeak
	case 2:
		return Colors.StrengthFair
	case 3:
		return Colors.StrengthStrong
	default:
		return Colors.StrengthVeryStr
	}
}
