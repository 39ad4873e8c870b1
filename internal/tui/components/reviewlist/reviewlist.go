package reviewlist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifeos-app/lifeos/internal/models"
	"github.com/lifeos-app/lifeos/internal/utils"
)

type AddReviewMsg struct{}

type Item struct {
	Review models.WeeklyReview
}

func (i Item) Title() string {
	return "Week of " + utils.FormatWeekRange(i.Review.WeekStart)
}

func (i Item) Description() string {
	return i.Review.Summary
}

func (i Item) FilterValue() string { return i.Review.WeekStart }

type KeyMap struct {
	Add key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add this week"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(reviews []models.WeeklyReview, width, height int) Model {
	l := list.New(buildItems(reviews), list.NewDefaultDelegate(), width, height)
	l.Title = "Weekly Reviews"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

func (m *Model) SetReviews(reviews []models.WeeklyReview) {
	m.list.SetItems(buildItems(reviews))
}

func buildItems(reviews []models.WeeklyReview) []list.Item {
	items := make([]list.Item, len(reviews))
	for i, r := range reviews {
		items[i] = Item{Review: r}
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
		if key.Matches(msg, m.keys.Add) {
			return m, func() tea.Msg { return AddReviewMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No weekly reviews yet.\n  Press 'a' to write one for this week."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
