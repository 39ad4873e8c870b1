package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifeos-app/lifeos/internal/analytics"
	"github.com/lifeos-app/lifeos/internal/models"
	"github.com/lifeos-app/lifeos/internal/utils"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	insightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

type Model struct {
	profile   models.Profile
	habits    []models.Habit
	checkins  []models.HabitCheckin
	decisions []models.Decision
	skills    []models.Skill
	ratings   []models.SkillRating
	reviews   []models.WeeklyReview
	width     int
	height    int
}

func New(width, height int) Model {
	return Model{width: width, height: height}
}

func (m *Model) SetData(
	profile models.Profile,
	habits []models.Habit,
	checkins []models.HabitCheckin,
	decisions []models.Decision,
	skills []models.Skill,
	ratings []models.SkillRating,
	reviews []models.WeeklyReview,
) {
	m.profile = profile
	m.habits = habits
	m.checkins = checkins
	m.decisions = decisions
	m.skills = skills
	m.ratings = ratings
	m.reviews = reviews
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	today := utils.Today()
	avgConsistency := analytics.AverageConsistency(m.habits, m.checkins, today)

	var b strings.Builder

	name := m.profile.FullName
	if name == "" {
		name = m.profile.Email
	}
	b.WriteString(headerStyle.Render(name) + "\n\n")

	b.WriteString(labelStyle.Render("Decisions") + "\n")
	b.WriteString(fmt.Sprintf("  %d logged, %d%% success rate\n\n",
		len(m.decisions), analytics.SuccessRate(m.decisions)))

	b.WriteString(labelStyle.Render("Habits") + "\n")
	b.WriteString(fmt.Sprintf("  %d active, %d%% consistency, best streak %d\n\n",
		len(m.habits), avgConsistency, analytics.BestStreak(m.habits, m.checkins, today)))

	b.WriteString(labelStyle.Render("Skills") + "\n")
	b.WriteString(fmt.Sprintf("  %d tracked, avg level %.1f, %+d growth points\n\n",
		len(m.skills),
		analytics.AverageSkillLevel(m.skills, m.ratings),
		analytics.TotalGrowthPoints(m.skills, m.ratings)))

	b.WriteString(labelStyle.Render("Weekly reviews") + "\n")
	b.WriteString(fmt.Sprintf("  %d written\n\n", len(m.reviews)))

	b.WriteString(headerStyle.Render("Reality check") + "\n")
	for _, msg := range analytics.Insights(m.profile, m.habits, m.decisions, m.reviews, avgConsistency) {
		b.WriteString(insightStyle.Render("  • "+msg) + "\n")
	}

	return b.String()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
