package decisionlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifeos-app/lifeos/internal/models"
)

type AddDecisionMsg struct{}

type SetOutcomeMsg struct {
	ID string
}

type Item struct {
	Decision models.Decision
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s", outcomeSymbol(i.Decision.ActualOutcome), i.Decision.Title)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s · felt %s", i.Decision.CreatedAt.Format("2006-01-02"), i.Decision.EmotionalState)
	if i.Decision.ActualOutcome == models.OutcomePending {
		desc += " · outcome pending"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Decision.Title }

func outcomeSymbol(o models.Outcome) string {
	switch o {
	case models.OutcomeSuccessful:
		return "✓"
	case models.OutcomeFailed:
		return "✗"
	case models.OutcomeNeutral:
		return "~"
	default:
		return "·"
	}
}

type KeyMap struct {
	Add     key.Binding
	Outcome key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Outcome: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "record outcome"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(decisions []models.Decision, width, height int) Model {
	l := list.New(buildItems(decisions), list.NewDefaultDelegate(), width, height)
	l.Title = "Decisions"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Outcome}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Outcome}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

func (m *Model) SetDecisions(decisions []models.Decision) {
	m.list.SetItems(buildItems(decisions))
}

func buildItems(decisions []models.Decision) []list.Item {
	items := make([]list.Item, len(decisions))
	for i, d := range decisions {
		items[i] = Item{Decision: d}
	}
	return items
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddDecisionMsg{} }
		case key.Matches(msg, m.keys.Outcome):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return SetOutcomeMsg{ID: i.Decision.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No decisions logged yet.\n  Press 'a' to log one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
