package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lifeos-app/lifeos/internal/models"
	"github.com/lifeos-app/lifeos/internal/storage"
	"github.com/lifeos-app/lifeos/internal/tui/components/dashboard"
	"github.com/lifeos-app/lifeos/internal/tui/components/decisionlist"
	"github.com/lifeos-app/lifeos/internal/tui/components/habitlist"
	"github.com/lifeos-app/lifeos/internal/tui/components/reviewlist"
	"github.com/lifeos-app/lifeos/internal/tui/components/skilllist"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateHabits
	StateDecisions
	StateSkills
	StateReviews
	StateAddHabit
	StateAddDecision
	StateAddSkill
	StateRateSkill
	StateSetOutcome
	StateAddReview
	StateConfirmArchive
)

type HabitFormModel struct {
	Name        string
	Description string
	Frequency   models.Frequency
}

type DecisionFormModel struct {
	Title       string
	Description string
	Options     string
	Mood        models.EmotionalState
	Expected    string
}

type SkillFormModel struct {
	Name     string
	Category string
}

type RatingFormModel struct {
	Rating    string
	Notes     string
	ProofLink string
}

type OutcomeFormModel struct {
	Outcome models.Outcome
	Notes   string
}

type ReviewFormModel struct {
	Worked      string
	Failed      string
	Distraction string
	Plan        string
}

type Model struct {
	store  storage.Provider
	user   models.Profile
	state  SessionState
	keys   KeyMap
	help   help.Model
	width  int
	height int

	dashboardModel dashboard.Model
	habitsModel    habitlist.Model
	decisionsModel decisionlist.Model
	skillsModel    skilllist.Model
	reviewsModel   reviewlist.Model

	form         *huh.Form
	habitForm    *HabitFormModel
	decisionForm *DecisionFormModel
	skillForm    *SkillFormModel
	ratingForm   *RatingFormModel
	outcomeForm  *OutcomeFormModel
	reviewForm   *ReviewFormModel

	ratingSkillID     string
	outcomeDecisionID string
	habitToArchiveID  string
	formError         string
	quitting          bool
}

func NewModel(store storage.Provider, user models.Profile) Model {
	habits, _ := store.GetAllHabits(user.UserID, false)
	checkins, _ := store.GetCheckins(user.UserID)
	decisions, _ := store.GetAllDecisions(user.UserID)
	skills, _ := store.GetAllSkills(user.UserID)
	ratings, _ := store.GetAllRatings(user.UserID)
	reviews, _ := store.GetAllWeeklyReviews(user.UserID)

	dm := dashboard.New(0, 0)
	dm.SetData(user, habits, checkins, decisions, skills, ratings, reviews)

	m := Model{
		store:          store,
		user:           user,
		state:          StateDashboard,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		dashboardModel: dm,
		habitsModel:    habitlist.New(habits, checkins, 0, 0),
		decisionsModel: decisionlist.New(decisions, 0, 0),
		skillsModel:    skilllist.New(skills, ratings, 0, 0),
		reviewsModel:   reviewlist.New(reviews, 0, 0),
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}
	return [][]key.Binding{global, navigation}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refreshHabits() {
	habits, _ := m.store.GetAllHabits(m.user.UserID, false)
	checkins, _ := m.store.GetCheckins(m.user.UserID)
	m.habitsModel.SetHabits(habits, checkins)
	m.refreshDashboard()
}

func (m *Model) refreshDecisions() {
	decisions, _ := m.store.GetAllDecisions(m.user.UserID)
	m.decisionsModel.SetDecisions(decisions)
	m.refreshDashboard()
}

func (m *Model) refreshSkills() {
	skills, _ := m.store.GetAllSkills(m.user.UserID)
	ratings, _ := m.store.GetAllRatings(m.user.UserID)
	m.skillsModel.SetSkills(skills, ratings)
	m.refreshDashboard()
}

func (m *Model) refreshReviews() {
	reviews, _ := m.store.GetAllWeeklyReviews(m.user.UserID)
	m.reviewsModel.SetReviews(reviews)
	m.refreshDashboard()
}

func (m *Model) refreshDashboard() {
	habits, _ := m.store.GetAllHabits(m.user.UserID, false)
	checkins, _ := m.store.GetCheckins(m.user.UserID)
	decisions, _ := m.store.GetAllDecisions(m.user.UserID)
	skills, _ := m.store.GetAllSkills(m.user.UserID)
	ratings, _ := m.store.GetAllRatings(m.user.UserID)
	reviews, _ := m.store.GetAllWeeklyReviews(m.user.UserID)
	m.dashboardModel.SetData(m.user, habits, checkins, decisions, skills, ratings, reviews)
}
