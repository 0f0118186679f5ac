package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	qrterminal "github.com/mdp/qrterminal/v3"
	"github.com/mvidalg/taskdeck/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.screen {
	case ScreenResolving:
		content = m.viewResolving()
	case ScreenLogin:
		content = m.viewLogin()
	case ScreenRegister:
		content = m.viewRegister()
	case ScreenMFA:
		content = m.viewMFA()
	case ScreenBoard:
		if m.mode == ModeHelp {
			content = m.viewHelp()
		} else {
			content = m.viewBoard()
		}
	}

	return m.styles.App.Render(content)
}

// viewResolving renders the startup token check.
func (m *Model) viewResolving() string {
	return m.styles.Header.Render("taskdeck") + "\n\n" +
		m.styles.Footer.Render("Restoring session...")
}

// viewMessages renders the error and notice lines shared by all screens.
func (m *Model) viewMessages() string {
	var b strings.Builder
	if m.banner != "" {
		b.WriteString(m.styles.ErrorMsg.Render(m.banner) + "\n\n")
	}
	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}
	if m.notice != "" {
		b.WriteString(m.styles.Notice.Render(m.notice) + "\n\n")
	}
	return b.String()
}

// viewLogin renders the login form.
func (m *Model) viewLogin() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("taskdeck — sign in"))
	b.WriteString("\n")
	b.WriteString(m.viewMessages())

	b.WriteString(m.authFieldRow("Email", m.emailInput.View(), m.authField == AuthFieldEmail))
	b.WriteString(m.authFieldRow("Password", m.passwordInput.View(), m.authField == AuthFieldPassword))
	if m.requiresMFA {
		b.WriteString(m.authFieldRow("Code", m.codeInput.View(), m.authField == AuthFieldCode))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" sign in  ") +
		m.styles.FooterKey.Render("tab") + m.styles.Footer.Render(" next field  ") +
		m.styles.FooterKey.Render("ctrl+r") + m.styles.Footer.Render(" register  ") +
		m.styles.FooterKey.Render("ctrl+c") + m.styles.Footer.Render(" quit"))

	return b.String()
}

// viewRegister renders the registration form with the strength meter.
func (m *Model) viewRegister() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("taskdeck — create account"))
	b.WriteString("\n")
	b.WriteString(m.viewMessages())

	b.WriteString(m.authFieldRow("Name", m.nameInput.View(), m.authField == AuthFieldName))
	b.WriteString(m.authFieldRow("Email", m.emailInput.View(), m.authField == AuthFieldEmail))
	b.WriteString(m.authFieldRow("Password", m.passwordInput.View(), m.authField == AuthFieldPassword))

	if m.passwordInput.Value() != "" {
		b.WriteString("\n")
		b.WriteString(m.viewStrengthMeter())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" create  ") +
		m.styles.FooterKey.Render("tab") + m.styles.Footer.Render(" next field  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" back to login"))

	return b.String()
}

// authFieldRow renders one labeled input row.
func (m *Model) authFieldRow(label, input string, focused bool) string {
	style := m.styles.FormLabel
	if focused {
		style = m.styles.FormLabelFocused
	}
	return style.Render(label) + input + "\n"
}

// viewStrengthMeter renders the advisory meter and the five policy checks.
func (m *Model) viewStrengthMeter() string {
	var b strings.Builder

	label := StrengthLabel(m.pwScore)
	bar := strings.Repeat("█", m.pwScore+1) + strings.Repeat("░", 4-m.pwScore)
	scoreStyle := lipgloss.NewStyle().Foreground(StrengthColor(m.pwScore))
	b.WriteString(m.styles.FormLabel.Render("Strength") + scoreStyle.Render(bar+" "+label))
	b.WriteString("\n")

	checks := []struct {
		label string
		ok    bool
	}{
		{fmt.Sprintf("At least %d characters", domain.MinPasswordLength), m.pwChecks.MinLength},
		{"An uppercase letter", m.pwChecks.HasUppercase},
		{"A lowercase letter", m.pwChecks.HasLowercase},
		{"A digit", m.pwChecks.HasDigit},
		{"A special character (" + domain.SpecialChars + ")", m.pwChecks.HasSpecial},
	}
	for _, c := range checks {
		if c.ok {
			b.WriteString(m.styles.CheckPass.Render("  ✓ " + c.label))
		} else {
			b.WriteString(m.styles.CheckFail.Render("  ○ " + c.label))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// viewBoard renders the three-column board.
func (m *Model) viewBoard() string {
	var b strings.Builder

	b.WriteString(m.viewBoardHeader())
	b.WriteString("\n")
	b.WriteString(m.viewMessages())

	if m.mode == ModeFilter {
		b.WriteString(m.styles.InputPrompt.Render("Filter "+m.focusedStatus().Display()+": "))
		b.WriteString(m.filterInput.View())
		b.WriteString("\n\n")
	}

	cols := make([]string, 0, len(columnOrder))
	for i, s := range columnOrder {
		cols = append(cols, m.viewColumn(i, s))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))

	switch m.mode {
	case ModeNormal, ModeFilter, ModeHelp:
		// No overlay for these modes
	case ModeForm:
		b.WriteString("\n\n")
		b.WriteString(m.viewTaskForm())
	case ModeConfirm:
		b.WriteString("\n\n")
		b.WriteString(m.viewConfirmDialog())
	}

	b.WriteString("\n\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewBoardHeader renders the board header with the identity and task count.
func (m *Model) viewBoardHeader() string {
	title := m.styles.HeaderText.Render("Board")

	right := ""
	if m.user != nil {
		right = fmt.Sprintf("%s · %d tasks", m.user.Email, m.board.Len())
	} else {
		right = fmt.Sprintf("%d tasks", m.board.Len())
	}
	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).Render(right)

	headerWidth := m.width - 6
	if headerWidth < 40 {
		headerWidth = 40
	}
	spacing := headerWidth - lipgloss.Width(title) - lipgloss.Width(rightText)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewColumn renders one status column.
func (m *Model) viewColumn(index int, s domain.Status) string {
	colWidth := (m.width - 16) / len(columnOrder)
	if colWidth < 24 {
		colWidth = 24
	}

	focused := index == m.column

	var b strings.Builder
	title := m.styles.StatusStyle(s).Render(StatusIcon(s)+" ") +
		m.styles.ColumnTitle.Render(s.Display())
	tasks := m.visibleColumn(s)
	count := m.styles.ColumnCount.Render(fmt.Sprintf(" (%d)", len(tasks)))
	b.WriteString(title + count)
	if f := m.filters[s]; f != "" {
		b.WriteString("\n" + m.styles.Footer.Render("filter: "+f))
	}
	b.WriteString("\n\n")

	if len(tasks) == 0 {
		b.WriteString(m.styles.Footer.Render("  empty"))
	}

	today := domain.Today(m.container.Clock)
	for i, task := range tasks {
		selected := focused && i == m.cursors[index]
		b.WriteString(m.renderTaskCard(task, selected, today, colWidth))
		if i < len(tasks)-1 {
			b.WriteString("\n")
		}
	}

	style := m.styles.Column
	if focused {
		style = m.styles.ColumnFocused
	}
	return style.Width(colWidth).Render(b.String())
}

// renderTaskCard renders a single task row with its due date.
func (m *Model) renderTaskCard(task *domain.Task, selected bool, today domain.Date, width int) string {
	indicator := "  "
	titleStyle := m.styles.TaskTitle
	if selected {
		indicator = m.styles.CursorSelected.Render("▸ ")
		titleStyle = m.styles.TaskTitleSelected
	}

	title := task.Title
	maxLen := width - 4
	if maxLen > 3 && len(title) > maxLen {
		title = title[:maxLen-3] + "..."
	}

	line := indicator + titleStyle.Render(title)

	if !task.DueDate.IsZero() {
		dueStyle := m.styles.TaskDue
		label := "due " + string(task.DueDate)
		if task.Status != domain.StatusCompleted && task.DueDate.Before(today) {
			dueStyle = m.styles.TaskDueOverdue
			label += " (overdue)"
		}
		line += "\n" + "    " + dueStyle.Render(label)
	}

	return line
}

// viewTaskForm renders the create/edit form dialog.
func (m *Model) viewTaskForm() string {
	header := "◆ New Task"
	if m.editingID != "" {
		header = "◆ Edit Task"
	}
	title := m.styles.DialogTitle.Render(header)

	rows := []string{
		m.formFieldRow("Title", m.titleInput.View(), m.formField == FieldTitle),
		m.formFieldRow("Description", m.descInput.View(), m.formField == FieldDesc),
		m.formFieldRow("Due date", m.dueInput.View(), m.formField == FieldDue),
	}

	hint := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" save  ") +
		m.styles.FooterKey.Render("tab") + m.styles.Footer.Render(" next field  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" cancel")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		rows[0],
		rows[1],
		rows[2],
		"",
		hint,
	)
	return m.styles.Dialog.Render(content)
}

// formFieldRow renders one labeled row in the task form.
func (m *Model) formFieldRow(label, input string, focused bool) string {
	style := m.styles.FormLabel
	if focused {
		style = m.styles.FormLabelFocused
	}
	return style.Render(label) + input
}

// viewConfirmDialog renders the confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	var title, prompt string
	color := Colors.Error

	switch m.confirmAction {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		task, _ := m.board.Find(m.confirmTaskID)
		name := m.confirmTaskID
		if task != nil {
			name = task.Title
		}
		title = fmt.Sprintf("Delete %q?", name)
		prompt = "This action cannot be undone."
	case ConfirmLogout:
		title = "Log out?"
		prompt = "Your session will be closed on this machine."
		color = Colors.Warning
	}

	titleLine := m.styles.DialogTitle.Foreground(color).Render(title)
	yesBtn := m.styles.HelpKey.Render("[ y ] Confirm")
	noBtn := m.styles.Footer.Render("[ n ] Cancel")
	buttons := lipgloss.JoinHorizontal(lipgloss.Left, yesBtn, "  ", noBtn)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleLine,
		"",
		m.styles.DialogPrompt.Render(prompt),
		"",
		buttons,
	)

	return m.styles.Dialog.BorderForeground(color).Render(content)
}

// viewMFA renders the two-factor enrollment / disable screen.
func (m *Model) viewMFA() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("Two-factor authentication"))
	b.WriteString("\n")
	b.WriteString(m.viewMessages())

	switch {
	case m.user != nil && m.user.TwoFactorEnabled:
		b.WriteString("Two-factor authentication is enabled for this account.\n\n")
		b.WriteString(m.authFieldRow("Code", m.codeInput.View(), true))
		b.WriteString("\n")
		b.WriteString(m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" disable  ") +
			m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" back"))

	case m.enrollment == nil:
		b.WriteString(m.styles.Footer.Render("Requesting enrollment secret..."))

	default:
		b.WriteString("Scan the QR code with your authenticator app, or enter the secret manually.\n\n")
		if qr := renderQR(m.enrollment.QRCode); qr != "" {
			b.WriteString(qr)
			b.WriteString("\n")
		}
		b.WriteString(m.styles.FormLabel.Render("Secret") + m.styles.HeaderText.Render(m.enrollment.Secret))
		b.WriteString("\n\n")
		b.WriteString(m.authFieldRow("Code", m.codeInput.View(), true))
		b.WriteString("\n")
		b.WriteString(m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" enable  ") +
			m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" back"))
	}

	return b.String()
}

// renderQR renders an otpauth URI as a terminal QR code. Payloads that are
// not an otpauth URI (e.g. a pre-rendered image data URL) are skipped; the
// secret next to the code always allows manual entry.
func renderQR(payload string) string {
	if !strings.HasPrefix(payload, "otpauth://") {
		return ""
	}
	var buf strings.Builder
	qrterminal.GenerateWithConfig(payload, qrterminal.Config{
		Level:      qrterminal.L,
		Writer:     &buf,
		HalfBlocks: true,
	})
	return buf.String()
}

// viewFooter renders the footer with key hints.
func (m *Model) viewFooter() string {
	switch m.mode {
	case ModeNormal:
		return m.styles.Footer.Render(
			m.styles.FooterKey.Render("h/l") + " column  " +
				m.styles.FooterKey.Render("j/k") + " nav  " +
				m.styles.FooterKey.Render("m") + " move  " +
				m.styles.FooterKey.Render("n") + " new  " +
				m.styles.FooterKey.Render("?") + " help  " +
				m.styles.FooterKey.Render("q") + " quit")
	case ModeFilter:
		return m.styles.Footer.Render(
			m.styles.FooterKey.Render("enter") + " apply  " +
				m.styles.FooterKey.Render("esc") + " clear")
	case ModeForm, ModeConfirm, ModeHelp:
		return ""
	}
	return ""
}

// viewHelp renders the help overlay.
func (m *Model) viewHelp() string {
	groups := []struct {
		title string
		rows  [][2]string
	}{
		{"Navigation", [][2]string{
			{"↑/k ↓/j", "move within column"},
			{"←/h →/l", "switch column"},
		}},
		{"Tasks", [][2]string{
			{"m", "move task to next column"},
			{"n", "new task"},
			{"e", "edit task"},
			{"d", "delete completed task"},
			{"r", "refresh board"},
			{"/", "filter focused column"},
		}},
		{"Session", [][2]string{
			{"M", "two-factor authentication"},
			{"L", "log out"},
		}},
		{"General", [][2]string{
			{"?", "toggle help"},
			{"q", "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Help"))
	b.WriteString("\n")
	for _, g := range groups {
		b.WriteString("\n" + m.styles.HeaderText.Render(g.title) + "\n")
		for _, row := range g.rows {
			b.WriteString("  " + m.styles.HelpKey.Render(fmt.Sprintf("%-10s", row[0])) +
				m.styles.HelpDesc.Render(row[1]) + "\n")
		}
	}

	return m.styles.Help.Render(b.String())
}
