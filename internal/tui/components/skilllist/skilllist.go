package skilllist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifeos-app/lifeos/internal/analytics"
	"github.com/lifeos-app/lifeos/internal/models"
)

type AddSkillMsg struct{}

type RateSkillMsg struct {
	ID string
}

type Item struct {
	Skill  models.Skill
	Level  int
	Growth int
}

func (i Item) Title() string {
	if i.Level == 0 {
		return i.Skill.Name + " (unrated)"
	}
	return fmt.Sprintf("%s  [%d/10]", i.Skill.Name, i.Level)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("growth %+d", i.Growth)
	if i.Skill.Category != "" {
		desc += " · " + i.Skill.Category
	}
	return desc
}

func (i Item) FilterValue() string { return i.Skill.Name }

type KeyMap struct {
	Add  key.Binding
	Rate key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Rate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rate"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(skills []models.Skill, ratings []models.SkillRating, width, height int) Model {
	l := list.New(buildItems(skills, ratings), list.NewDefaultDelegate(), width, height)
	l.Title = "Skills"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Rate}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Rate}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

func (m *Model) SetSkills(skills []models.Skill, ratings []models.SkillRating) {
	m.list.SetItems(buildItems(skills, ratings))
}

func buildItems(skills []models.Skill, ratings []models.SkillRating) []list.Item {
	items := make([]list.Item, len(skills))
	for i, s := range skills {
		skillRatings := ratingsFor(ratings, s.ID)
		items[i] = Item{
			Skill:  s,
			Level:  analytics.LatestRating(skillRatings),
			Growth: analytics.Growth(skillRatings),
		}
	}
	return items
}

func ratingsFor(ratings []models.SkillRating, skillID string) []models.SkillRating {
	var out []models.SkillRating
	for _, r := range ratings {
		if r.SkillID == skillID {
			out = append(out, r)
		}
	}
	return out
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
			return m, func() tea.Msg { return AddSkillMsg{} }
		case key.Matches(msg, m.keys.Rate):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return RateSkillMsg{ID: i.Skill.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No skills tracked yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
