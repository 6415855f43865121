package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/faltula/faltula/internal/models"
	"github.com/faltula/faltula/internal/tracker"
	"github.com/faltula/faltula/internal/tui/components/absencelist"
	"github.com/faltula/faltula/internal/tui/components/subjectlist"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateSchedule
	StateSubjects
	StateAbsences
	StateAddSubject
	StateAddAbsence
	StateConfirmDelete
)

type SubjectFormModel struct {
	Name        string
	Hours       string
	MaxAbsences string
}

type AbsenceFormModel struct {
	Date string
}

type Model struct {
	session         *tracker.Tracker
	profileName     string
	state           SessionState
	previousState   SessionState
	keys            KeyMap
	help            help.Model
	subjectList     subjectlist.Model
	absenceList     absencelist.Model
	form            *huh.Form
	subjectForm     *SubjectFormModel
	absenceForm     *AbsenceFormModel
	subjectToDelete string
	status          string
	quitting        bool
	width           int
	height          int
}

func NewModel(session *tracker.Tracker, profileName string) Model {
	return Model{
		session:     session,
		profileName: profileName,
		state:       StateDashboard,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		subjectList: subjectlist.New(session.Subjects(), 0, 0),
		absenceList: absencelist.New(buildAbsenceEntries(session), 0, 0),
	}
}

// Run starts the interactive terminal UI for the given session.
func Run(session *tracker.Tracker, profileName string) error {
	p := tea.NewProgram(NewModel(session, profileName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateSubjects, StateAbsences:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateSubjects, StateAbsences:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

// refresh reloads both list components from the session after a mutation.
func (m *Model) refresh() {
	m.subjectList.SetSubjects(m.session.Subjects())
	m.absenceList.SetEntries(buildAbsenceEntries(m.session))
}

func buildAbsenceEntries(session *tracker.Tracker) []absencelist.Entry {
	absences := session.Absences()
	slices.SortFunc(absences, func(a, b models.Absence) int {
		return strings.Compare(b.Date, a.Date)
	})
	entries := make([]absencelist.Entry, len(absences))
	for i, abs := range absences {
		entries[i] = absencelist.Entry{Absence: abs, Summary: summarizeAbsence(session, abs)}
	}
	return entries
}

func summarizeAbsence(session *tracker.Tracker, abs models.Absence) string {
	summary := ""
	for _, entry := range abs.Subjects {
		sub, ok := session.Subject(entry.SubjectID)
		if !ok {
			continue
		}
		if summary != "" {
			summary += ", "
		}
		noun := "classes"
		if entry.ClassCount == 1 {
			noun = "class"
		}
		summary += fmt.Sprintf("%s (%d %s)", sub.Name, entry.ClassCount, noun)
	}
	if summary == "" {
		return "no matching subjects"
	}
	return summary
}
