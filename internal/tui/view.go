package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateDashboard:
		content = docStyle.Render(m.dashboardModel.View())
	case StateHabits:
		content = docStyle.Render(m.habitsModel.View())
	case StateDecisions:
		content = docStyle.Render(m.decisionsModel.View())
	case StateSkills:
		content = docStyle.Render(m.skillsModel.View())
	case StateReviews:
		content = docStyle.Render(m.reviewsModel.View())
	case StateAddHabit, StateAddDecision, StateAddSkill, StateRateSkill, StateSetOutcome, StateAddReview:
		content = m.form.View()
	case StateConfirmArchive:
		content = m.viewConfirmArchive()
	}

	var errorLine string
	if m.formError != "" {
		errorLine = errorStyle.Render("✗ " + m.formError)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		errorLine,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Dashboard", "Habits", "Decisions", "Skills", "Reviews"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmArchive() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Archive this habit?"),
			"Its check-in history is kept and it can be restored later.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
