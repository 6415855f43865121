package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/faltula/faltula/internal/models"
	"github.com/faltula/faltula/internal/timetable"
)

const gridCellWidth = 14

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDashboard:
		content = m.viewDashboard()
	case StateSchedule:
		content = m.viewSchedule()
	case StateSubjects:
		content = docStyle.Render(m.subjectList.View())
	case StateAbsences:
		content = docStyle.Render(m.absenceList.View())
	case StateAddSubject, StateAddAbsence:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	var statusLine string
	if m.status != "" {
		statusLine = statusLineStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		statusLine,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Dashboard", "Schedule", "Subjects", "Absences"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	subjects := m.session.Subjects()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Attendance for %s", m.profileName)))
	b.WriteString("\n\n")

	if len(subjects) == 0 {
		b.WriteString(mutedStyle.Render("No subjects yet. Add one in the Subjects tab."))
		return docStyle.Render(b.String())
	}

	for _, sub := range subjects {
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(sub.Color)).Render(sub.Name)
		line := fmt.Sprintf("%s: %d/%d absences (%.0f%%)", name, sub.CurrentAbsences, sub.MaxAbsences, sub.AbsencePercent())
		b.WriteString(line)
		b.WriteString("  ")
		b.WriteString(styleForStatus(sub.Status()).Render(statusLabel(sub.Status())))
		b.WriteString("\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewSchedule() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Weekly schedule"))
	b.WriteString("\n\n")

	b.WriteString(pad("Time"))
	for _, day := range timetable.DayNames {
		b.WriteString(pad(day))
	}
	b.WriteString("\n")

	for slot, window := range timetable.TimeWindows {
		b.WriteString(pad(window))
		for day := 0; day < timetable.NumDays; day++ {
			cell := mutedStyle.Render(pad("-"))
			if s, ok := m.session.SlotAt(day, slot); ok {
				if sub, found := m.session.Subject(s.SubjectID); found {
					cell = lipgloss.NewStyle().Foreground(lipgloss.Color(sub.Color)).Render(pad(sub.Name))
				} else {
					cell = pad("?")
				}
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Use 'faltula schedule add' to assign slots."))
	return docStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	name := m.subjectToDelete
	if sub, ok := m.session.Subject(m.subjectToDelete); ok {
		name = sub.Name
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete subject %q and its schedule slots?", name)),
			warningStyle.Render("Recorded absences keep their history."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func styleForStatus(s models.SubjectStatus) lipgloss.Style {
	switch s {
	case models.StatusFailed, models.StatusDanger:
		return dangerStyle
	case models.StatusWarning:
		return warningStyle
	default:
		return okStyle
	}
}

func statusLabel(s models.SubjectStatus) string {
	return strings.ToUpper(string(s))
}

func pad(s string) string {
	if len(s) > gridCellWidth-1 {
		s = s[:gridCellWidth-1]
	}
	return s + strings.Repeat(" ", gridCellWidth-len(s))
}
