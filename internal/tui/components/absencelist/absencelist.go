package absencelist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faltula/faltula/internal/models"
)

type AddAbsenceMsg struct{}

type RemoveAbsenceMsg struct {
	ID string
}

// Entry pairs an absence record with a display summary built by the caller
// (subject names live outside this component).
type Entry struct {
	Absence models.Absence
	Summary string
}

type Item struct {
	Entry Entry
}

func (i Item) Title() string       { return i.Entry.Absence.Date }
func (i Item) Description() string { return i.Entry.Summary }
func (i Item) FilterValue() string { return i.Entry.Absence.Date }

type KeyMap struct {
	Add    key.Binding
	Remove key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []Entry, width, height int) Model {
	l := list.New(toItems(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "Absences"
	l.SetShowHelp(false)
	return Model{list: l, keys: DefaultKeyMap()}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch {
		case key.Matches(keyMsg, m.keys.Add):
			return m, func() tea.Msg { return AddAbsenceMsg{} }
		case key.Matches(keyMsg, m.keys.Remove):
			if item, ok := m.list.SelectedItem().(Item); ok {
				id := item.Entry.Absence.ID
				return m, func() tea.Msg { return RemoveAbsenceMsg{ID: id} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string { return m.list.View() }

func (m *Model) SetEntries(entries []Entry) {
	m.list.SetItems(toItems(entries))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func toItems(entries []Entry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	return items
}
