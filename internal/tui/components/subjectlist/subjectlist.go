package subjectlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faltula/faltula/internal/models"
)

type AddSubjectMsg struct{}

type DeleteSubjectMsg struct {
	ID string
}

type Item struct {
	Subject models.Subject
}

func (i Item) Title() string { return i.Subject.Name }

func (i Item) Description() string {
	return fmt.Sprintf("%d/%d absences (%.0f%%, %s) | %dh/week",
		i.Subject.CurrentAbsences, i.Subject.MaxAbsences,
		i.Subject.AbsencePercent(), i.Subject.Status(), i.Subject.WeeklyHours)
}

func (i Item) FilterValue() string { return i.Subject.Name }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(subjects []models.Subject, width, height int) Model {
	l := list.New(toItems(subjects), list.NewDefaultDelegate(), width, height)
	l.Title = "Subjects"
	l.SetShowHelp(false)
	return Model{list: l, keys: DefaultKeyMap()}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch {
		case key.Matches(keyMsg, m.keys.Add):
			return m, func() tea.Msg { return AddSubjectMsg{} }
		case key.Matches(keyMsg, m.keys.Delete):
			if item, ok := m.list.SelectedItem().(Item); ok {
				id := item.Subject.ID
				return m, func() tea.Msg { return DeleteSubjectMsg{ID: id} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string { return m.list.View() }

func (m *Model) SetSubjects(subjects []models.Subject) {
	m.list.SetItems(toItems(subjects))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Selected() (models.Subject, bool) {
	if item, ok := m.list.SelectedItem().(Item); ok {
		return item.Subject, true
	}
	return models.Subject{}, false
}

func toItems(subjects []models.Subject) []list.Item {
	items := make([]list.Item, len(subjects))
	for i, s := range subjects {
		items[i] = Item{Subject: s}
	}
	return items
}
