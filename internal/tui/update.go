package tui

import (
	"errors"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	apperrors "github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/models"
	"github.com/lifeos-app/lifeos/internal/tui/components/decisionlist"
	"github.com/lifeos-app/lifeos/internal/tui/components/habitlist"
	"github.com/lifeos-app/lifeos/internal/tui/components/reviewlist"
	"github.com/lifeos-app/lifeos/internal/tui/components/skilllist"
	"github.com/lifeos-app/lifeos/internal/utils"
)

var mainStates = []SessionState{StateDashboard, StateHabits, StateDecisions, StateSkills, StateReviews}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentWidth := msg.Width - 4
		contentHeight := msg.Height - 6
		m.dashboardModel.SetSize(contentWidth, contentHeight)
		m.habitsModel.SetSize(contentWidth, contentHeight)
		m.decisionsModel.SetSize(contentWidth, contentHeight)
		m.skillsModel.SetSize(contentWidth, contentHeight)
		m.reviewsModel.SetSize(contentWidth, contentHeight)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.isMainState() {
			switch msg.String() {
			case "tab":
				m.state = nextState(m.state, 1)
				return m, nil
			case "shift+tab":
				m.state = nextState(m.state, -1)
				return m, nil
			case "?":
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{Frequency: models.FrequencyDaily}
		m.form = newHabitForm(m.habitForm)
		m.formError = ""
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		if _, err := m.store.ToggleCheckin(m.user.UserID, msg.ID, utils.Today()); err != nil {
			m.formError = err.Error()
		} else {
			m.formError = ""
		}
		m.refreshHabits()
		return m, nil

	case habitlist.ArchiveHabitMsg:
		m.habitToArchiveID = msg.ID
		m.state = StateConfirmArchive
		return m, nil

	case decisionlist.AddDecisionMsg:
		m.decisionForm = &DecisionFormModel{Mood: models.MoodCalm}
		m.form = newDecisionForm(m.decisionForm)
		m.formError = ""
		m.state = StateAddDecision
		return m, m.form.Init()

	case decisionlist.SetOutcomeMsg:
		m.outcomeDecisionID = msg.ID
		m.outcomeForm = &OutcomeFormModel{Outcome: models.OutcomeSuccessful}
		m.form = newOutcomeForm(m.outcomeForm)
		m.formError = ""
		m.state = StateSetOutcome
		return m, m.form.Init()

	case skilllist.AddSkillMsg:
		m.skillForm = &SkillFormModel{}
		m.form = newSkillForm(m.skillForm)
		m.formError = ""
		m.state = StateAddSkill
		return m, m.form.Init()

	case skilllist.RateSkillMsg:
		m.ratingSkillID = msg.ID
		m.ratingForm = &RatingFormModel{}
		m.form = newRatingForm(m.ratingForm)
		m.formError = ""
		m.state = StateRateSkill
		return m, m.form.Init()

	case reviewlist.AddReviewMsg:
		m.reviewForm = &ReviewFormModel{}
		m.form = newReviewForm(m.reviewForm)
		m.formError = ""
		m.state = StateAddReview
		return m, m.form.Init()
	}

	switch m.state {
	case StateDashboard:
		var cmd tea.Cmd
		m.dashboardModel, cmd = m.dashboardModel.Update(msg)
		cmds = append(cmds, cmd)

	case StateHabits:
		var cmd tea.Cmd
		m.habitsModel, cmd = m.habitsModel.Update(msg)
		cmds = append(cmds, cmd)

	case StateDecisions:
		var cmd tea.Cmd
		m.decisionsModel, cmd = m.decisionsModel.Update(msg)
		cmds = append(cmds, cmd)

	case StateSkills:
		var cmd tea.Cmd
		m.skillsModel, cmd = m.skillsModel.Update(msg)
		cmds = append(cmds, cmd)

	case StateReviews:
		var cmd tea.Cmd
		m.reviewsModel, cmd = m.reviewsModel.Update(msg)
		cmds = append(cmds, cmd)

	case StateAddHabit:
		return m.updateAddHabit(msg, cmds)

	case StateAddDecision:
		return m.updateAddDecision(msg, cmds)

	case StateAddSkill:
		return m.updateAddSkill(msg, cmds)

	case StateRateSkill:
		return m.updateRateSkill(msg, cmds)

	case StateSetOutcome:
		return m.updateSetOutcome(msg, cmds)

	case StateAddReview:
		return m.updateAddReview(msg, cmds)

	case StateConfirmArchive:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "y":
				if err := m.store.ArchiveHabit(m.user.UserID, m.habitToArchiveID); err != nil {
					m.formError = err.Error()
				} else {
					m.formError = ""
				}
				m.habitToArchiveID = ""
				m.refreshHabits()
				m.state = StateHabits
			case "n", "esc":
				m.habitToArchiveID = ""
				m.state = StateHabits
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) isMainState() bool {
	for _, s := range mainStates {
		if m.state == s {
			return true
		}
	}
	return false
}

func nextState(s SessionState, dir int) SessionState {
	for i, candidate := range mainStates {
		if candidate == s {
			n := len(mainStates)
			return mainStates[(i+dir+n)%n]
		}
	}
	return s
}

func (m Model) updateForm(msg tea.Msg, cmds []tea.Cmd, cancelTo SessionState) (Model, []tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.formError = ""
		m.state = cancelTo
		return m, cmds, true
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	return m, cmds, false
}

func (m Model) updateAddHabit(msg tea.Msg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	m, cmds, done := m.updateForm(msg, cmds, StateHabits)
	if done {
		return m, tea.Batch(cmds...)
	}

	if m.form.State == huh.StateCompleted {
		habit := models.Habit{
			ID:          uuid.New().String(),
			UserID:      m.user.UserID,
			Name:        strings.TrimSpace(m.habitForm.Name),
			Description: strings.TrimSpace(m.habitForm.Description),
			Frequency:   m.habitForm.Frequency,
			IsActive:    true,
			CreatedAt:   time.Now(),
		}
		if err := m.store.AddHabit(habit); err != nil {
			m.formError = err.Error()
		} else {
			m.formError = ""
		}
		m.refreshHabits()
		m.state = StateHabits
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateAddDecision(msg tea.Msg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	m, cmds, done := m.updateForm(msg, cmds, StateDecisions)
	if done {
		return m, tea.Batch(cmds...)
	}

	if m.form.State == huh.StateCompleted {
		now := time.Now()
		decision := models.Decision{
			ID:                uuid.New().String(),
			UserID:            m.user.UserID,
			Title:             strings.TrimSpace(m.decisionForm.Title),
			Description:       strings.TrimSpace(m.decisionForm.Description),
			OptionsConsidered: models.ParseOptions(m.decisionForm.Options),
			EmotionalState:    m.decisionForm.Mood,
			ExpectedOutcome:   strings.TrimSpace(m.decisionForm.Expected),
			ActualOutcome:     models.OutcomePending,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := m.store.AddDecision(decision); err != nil {
			m.formError = err.Error()
		} else {
			m.formError = ""
		}
		m.refreshDecisions()
		m.state = StateDecisions
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateAddSkill(msg tea.Msg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	m, cmds, done := m.updateForm(msg, cmds, StateSkills)
	if done {
		return m, tea.Batch(cmds...)
	}

	if m.form.State == huh.StateCompleted {
		skill := models.Skill{
			ID:        uuid.New().String(),
			UserID:    m.user.UserID,
			Name:      strings.TrimSpace(m.skillForm.Name),
			Category:  strings.TrimSpace(m.skillForm.Category),
			CreatedAt: time.Now(),
		}
		if err := m.store.AddSkill(skill); err != nil {
			m.formError = err.Error()
		} else {
			m.formError = ""
		}
		m.refreshSkills()
		m.state = StateSkills
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateRateSkill(msg tea.Msg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	m, cmds, done := m.updateForm(msg, cmds, StateSkills)
	if done {
		return m, tea.Batch(cmds...)
	}

	if m.form.State == huh.StateCompleted {
		value, err := strconv.Atoi(m.ratingForm.Rating)
		if err != nil {
			// The form validator already rejects non-numeric input
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		rating := models.SkillRating{
			ID:        uuid.New().String(),
			UserID:    m.user.UserID,
			SkillID:   m.ratingSkillID,
			Rating:    value,
			Notes:     strings.TrimSpace(m.ratingForm.Notes),
			ProofLink: strings.TrimSpace(m.ratingForm.ProofLink),
			RatedAt:   utils.Today(),
			CreatedAt: time.Now(),
		}
		if err := m.store.AddRating(rating); err != nil {
			m.formError = err.Error()
		} else {
			m.formError = ""
		}
		m.ratingSkillID = ""
		m.refreshSkills()
		m.state = StateSkills
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateSetOutcome(msg tea.Msg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	m, cmds, done := m.updateForm(msg, cmds, StateDecisions)
	if done {
		return m, tea.Batch(cmds...)
	}

	if m.form.State == huh.StateCompleted {
		decision, err := m.store.GetDecision(m.user.UserID, m.outcomeDecisionID)
		if err != nil {
			m.formError = err.Error()
		} else {
			decision.ActualOutcome = m.outcomeForm.Outcome
			decision.OutcomeNotes = strings.TrimSpace(m.outcomeForm.Notes)
			decision.UpdatedAt = time.Now()
			if err := m.store.UpdateDecision(decision); err != nil {
				m.formError = err.Error()
			} else {
				m.formError = ""
			}
		}
		m.outcomeDecisionID = ""
		m.refreshDecisions()
		m.state = StateDecisions
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateAddReview(msg tea.Msg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	m, cmds, done := m.updateForm(msg, cmds, StateReviews)
	if done {
		return m, tea.Batch(cmds...)
	}

	if m.form.State == huh.StateCompleted {
		review := models.WeeklyReview{
			ID:              uuid.New().String(),
			UserID:          m.user.UserID,
			WeekStart:       utils.CurrentWeekStart(),
			WhatWorked:      strings.TrimSpace(m.reviewForm.Worked),
			WhatFailed:      strings.TrimSpace(m.reviewForm.Failed),
			MainDistraction: strings.TrimSpace(m.reviewForm.Distraction),
			ImprovementPlan: strings.TrimSpace(m.reviewForm.Plan),
			CreatedAt:       time.Now(),
		}
		review.Summary = review.GenerateSummary()

		if err := m.store.AddWeeklyReview(review); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				m.formError = "a review for this week already exists"
			} else {
				m.formError = err.Error()
			}
		} else {
			m.formError = ""
		}
		m.refreshReviews()
		m.state = StateReviews
	}

	return m, tea.Batch(cmds...)
}
