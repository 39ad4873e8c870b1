package storage

import "github.com/lifeos-app/lifeos/internal/models"

// Provider is the persistence contract shared by the sqlite and postgres
// backends. Every entity operation is scoped by an explicit userID; there is
// no ambient current-user state at this layer.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profiles
	SaveProfile(models.Profile) error
	GetProfile(userID string) (models.Profile, error)
	GetProfileByEmail(email string) (models.Profile, error)

	// Decisions
	AddDecision(models.Decision) error
	GetDecision(userID, id string) (models.Decision, error)
	GetAllDecisions(userID string) ([]models.Decision, error)
	UpdateDecision(models.Decision) error
	DeleteDecision(userID, id string) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(userID, id string) (models.Habit, error)
	GetHabitByName(userID, name string) (models.Habit, error)
	GetAllHabits(userID string, includeInactive bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(userID, id string) error
	RestoreHabit(userID, id string) error

	// Checkins
	// ToggleCheckin flips the completion state of habitID on the given
	// calendar day in a single transaction: if a checkin exists it is
	// removed, otherwise one is created. Returns whether the day ends up
	// checked.
	ToggleCheckin(userID, habitID, day string) (bool, error)
	GetCheckins(userID string) ([]models.HabitCheckin, error)
	GetCheckinsForHabit(userID, habitID string) ([]models.HabitCheckin, error)
	GetCheckin(userID, habitID, day string) (models.HabitCheckin, error)

	// Skills
	AddSkill(models.Skill) error
	GetSkill(userID, id string) (models.Skill, error)
	GetAllSkills(userID string) ([]models.Skill, error)
	DeleteSkill(userID, id string) error

	// Skill ratings
	AddRating(models.SkillRating) error
	GetRatingsForSkill(userID, skillID string) ([]models.SkillRating, error)
	GetAllRatings(userID string) ([]models.SkillRating, error)

	// Weekly reviews
	AddWeeklyReview(models.WeeklyReview) error
	GetWeeklyReview(userID, weekStart string) (models.WeeklyReview, error)
	GetAllWeeklyReviews(userID string) ([]models.WeeklyReview, error)
	UpdateWeeklyReview(models.WeeklyReview) error

	// Utils
	GetConfigPath() string
}
