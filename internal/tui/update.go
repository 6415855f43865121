package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/faltula/faltula/internal/constants"
	"github.com/faltula/faltula/internal/tui/components/absencelist"
	"github.com/faltula/faltula/internal/tui/components/subjectlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := msg.Height - 6
		if listHeight < 4 {
			listHeight = 4
		}
		m.subjectList.SetSize(msg.Width-4, listHeight)
		m.absenceList.SetSize(msg.Width-4, listHeight)
		return m, nil

	case subjectlist.AddSubjectMsg:
		m.subjectForm = &SubjectFormModel{Hours: "2"}
		m.form = NewSubjectForm(m.subjectForm)
		m.previousState = m.state
		m.state = StateAddSubject
		return m, m.form.Init()

	case subjectlist.DeleteSubjectMsg:
		m.subjectToDelete = msg.ID
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case absencelist.AddAbsenceMsg:
		m.absenceForm = &AbsenceFormModel{Date: time.Now().Format(constants.DateFormat)}
		m.form = NewAbsenceForm(m.absenceForm)
		m.previousState = m.state
		m.state = StateAddAbsence
		return m, m.form.Init()

	case absencelist.RemoveAbsenceMsg:
		if m.session.RemoveAbsence(msg.ID) {
			m.refresh()
			m.status = "Absence removed, counters restored."
		}
		return m, nil
	}

	switch m.state {
	case StateAddSubject:
		return m.updateSubjectForm(msg)
	case StateAddAbsence:
		return m.updateAbsenceForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := m.handleGlobalKeys(keyMsg); handled {
			return m, cmd
		}
	}

	switch m.state {
	case StateSubjects:
		var cmd tea.Cmd
		m.subjectList, cmd = m.subjectList.Update(msg)
		cmds = append(cmds, cmd)
	case StateAbsences:
		var cmd tea.Cmd
		m.absenceList, cmd = m.absenceList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	case key.Matches(msg, m.keys.Tab):
		m.status = ""
		switch m.state {
		case StateDashboard:
			m.state = StateSchedule
		case StateSchedule:
			m.state = StateSubjects
		case StateSubjects:
			m.state = StateAbsences
		case StateAbsences:
			m.state = StateDashboard
		}
		return true, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.status = ""
		switch m.state {
		case StateDashboard:
			m.state = StateAbsences
		case StateSchedule:
			m.state = StateDashboard
		case StateSubjects:
			m.state = StateSchedule
		case StateAbsences:
			m.state = StateSubjects
		}
		return true, nil
	}
	return false, nil
}

func (m Model) updateSubjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		hours, _ := strconv.Atoi(m.subjectForm.Hours)
		maxAbsences, _ := strconv.Atoi(m.subjectForm.MaxAbsences)
		sub := m.session.AddSubject(m.subjectForm.Name, hours, maxAbsences)
		m.refresh()
		m.status = fmt.Sprintf("Added subject %q.", sub.Name)
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateAbsenceForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		abs, err := m.session.AddAbsence(m.absenceForm.Date)
		if err != nil {
			m.status = fmt.Sprintf("Could not record absence: %v", err)
		} else {
			m.refresh()
			m.status = fmt.Sprintf("Recorded absence for %s.", abs.Date)
		}
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y", "enter":
		if sub, found := m.session.Subject(m.subjectToDelete); found && m.session.DeleteSubject(sub.ID) {
			m.refresh()
			m.status = fmt.Sprintf("Deleted subject %q and its schedule slots.", sub.Name)
		}
		m.subjectToDelete = ""
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.subjectToDelete = ""
		m.state = m.previousState
	}
	return m, nil
}
