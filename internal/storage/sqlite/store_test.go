package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "lifeos.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestProfile(t *testing.T, store *Store) models.Profile {
	t.Helper()
	now := time.Now()
	profile := models.Profile{
		UserID:    uuid.New().String(),
		Email:     uuid.New().String() + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("SaveProfile() failed: %v", err)
	}
	return profile
}

func TestLoadBeforeInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on a missing database should fail")
	}
}

func TestLoadAfterInit(t *testing.T) {
	store := newTestStore(t)
	// Load on an already-open store is a no-op
	if err := store.Load(); err != nil {
		t.Errorf("Load() after Init() failed: %v", err)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	store := newTestStore(t)
	profile := newTestProfile(t, store)

	got, err := store.GetProfile(profile.UserID)
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if got.Email != profile.Email {
		t.Errorf("GetProfile() email = %q, want %q", got.Email, profile.Email)
	}

	byEmail, err := store.GetProfileByEmail(profile.Email)
	if err != nil {
		t.Fatalf("GetProfileByEmail() failed: %v", err)
	}
	if byEmail.UserID != profile.UserID {
		t.Errorf("GetProfileByEmail() user = %q, want %q", byEmail.UserID, profile.UserID)
	}

	// SaveProfile is an upsert
	profile.Goals = "Ship the thing"
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("SaveProfile() upsert failed: %v", err)
	}
	got, err = store.GetProfile(profile.UserID)
	if err != nil {
		t.Fatalf("GetProfile() after upsert failed: %v", err)
	}
	if got.Goals != "Ship the thing" {
		t.Errorf("GetProfile() goals = %q after upsert", got.Goals)
	}

	if _, err := store.GetProfile("nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetProfile(missing) error = %v, want ErrNotFound", err)
	}
}

func TestDecisionCRUD(t *testing.T) {
	store := newTestStore(t)
	profile := newTestProfile(t, store)

	base := time.Now()
	first := models.Decision{
		ID:                uuid.New().String(),
		UserID:            profile.UserID,
		Title:             "First",
		OptionsConsidered: []string{"a", "b"},
		EmotionalState:    models.MoodCalm,
		ActualOutcome:     models.OutcomePending,
		CreatedAt:         base,
		UpdatedAt:         base,
	}
	second := first
	second.ID = uuid.New().String()
	second.Title = "Second"
	second.CreatedAt = base.Add(time.Second)
	second.UpdatedAt = second.CreatedAt

	for _, d := range []models.Decision{first, second} {
		if err := store.AddDecision(d); err != nil {
			t.Fatalf("AddDecision(%s) failed: %v", d.Title, err)
		}
	}

	got, err := store.GetDecision(profile.UserID, first.ID)
	if err != nil {
		t.Fatalf("GetDecision() failed: %v", err)
	}
	if len(got.OptionsConsidered) != 2 || got.OptionsConsidered[0] != "a" {
		t.Errorf("GetDecision() options = %v", got.OptionsConsidered)
	}

	all, err := store.GetAllDecisions(profile.UserID)
	if err != nil {
		t.Fatalf("GetAllDecisions() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetAllDecisions() returned %d decisions, want 2", len(all))
	}
	// Newest first
	if all[0].Title != "Second" {
		t.Errorf("GetAllDecisions()[0] = %q, want Second", all[0].Title)
	}

	first.ActualOutcome = models.OutcomeSuccessful
	first.OutcomeNotes = "worked out"
	if err := store.UpdateDecision(first); err != nil {
		t.Fatalf("UpdateDecision() failed: %v", err)
	}
	got, _ = store.GetDecision(profile.UserID, first.ID)
	if got.ActualOutcome != models.OutcomeSuccessful {
		t.Errorf("outcome after update = %q", got.ActualOutcome)
	}

	if err := store.DeleteDecision(profile.UserID, first.ID); err != nil {
		t.Fatalf("DeleteDecision() failed: %v", err)
	}
	if _, err := store.GetDecision(profile.UserID, first.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetDecision(deleted) error = %v, want ErrNotFound", err)
	}
	if err := store.DeleteDecision(profile.UserID, first.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("DeleteDecision(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestDecisionUserScoping(t *testing.T) {
	store := newTestStore(t)
	alice := newTestProfile(t, store)
	bob := newTestProfile(t, store)

	now := time.Now()
	d := models.Decision{
		ID:             uuid.New().String(),
		UserID:         alice.UserID,
		Title:          "Alice's call",
		EmotionalState: models.MoodCalm,
		ActualOutcome:  models.OutcomePending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := store.AddDecision(d); err != nil {
		t.Fatalf("AddDecision() failed: %v", err)
	}

	if _, err := store.GetDecision(bob.UserID, d.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetDecision() across users error = %v, want ErrNotFound", err)
	}
	bobs, err := store.GetAllDecisions(bob.UserID)
	if err != nil {
		t.Fatalf("GetAllDecisions() failed: %v", err)
	}
	if len(bobs) != 0 {
		t.Errorf("GetAllDecisions() for other user returned %d decisions", len(bobs))
	}
}

func TestHabitLifecycle(t *testing.T) {
	store := newTestStore(t)
	profile := newTestProfile(t, store)

	habit := models.Habit{
		ID:        uuid.New().String(),
		UserID:    profile.UserID,
		Name:      "Meditate",
		Frequency: models.FrequencyDaily,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	byName, err := store.GetHabitByName(profile.UserID, "Meditate")
	if err != nil {
		t.Fatalf("GetHabitByName() failed: %v", err)
	}
	if byName.ID != habit.ID {
		t.Errorf("GetHabitByName() id = %q, want %q", byName.ID, habit.ID)
	}

	if err := store.ArchiveHabit(profile.UserID, habit.ID); err != nil {
		t.Fatalf("ArchiveHabit() failed: %v", err)
	}
	active, _ := store.GetAllHabits(profile.UserID, false)
	if len(active) != 0 {
		t.Errorf("archived habit still listed as active")
	}
	all, _ := store.GetAllHabits(profile.UserID, true)
	if len(all) != 1 {
		t.Errorf("GetAllHabits(includeInactive) returned %d habits, want 1", len(all))
	}

	// Archiving twice is a no-op row-wise and reports not found
	if err := store.ArchiveHabit(profile.UserID, habit.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("ArchiveHabit(archived) error = %v, want ErrNotFound", err)
	}

	if err := store.RestoreHabit(profile.UserID, habit.ID); err != nil {
		t.Fatalf("RestoreHabit() failed: %v", err)
	}
	active, _ = store.GetAllHabits(profile.UserID, false)
	if len(active) != 1 {
		t.Errorf("restored habit not listed as active")
	}
}

func TestToggleCheckin(t *testing.T) {
	store := newTestStore(t)
	profile := newTestProfile(t, store)

	habit := models.Habit{
		ID:        uuid.New().String(),
		UserID:    profile.UserID,
		Name:      "Run",
		Frequency: models.FrequencyDaily,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	day := "2026-09-01"

	checked, err := store.ToggleCheckin(profile.UserID, habit.ID, day)
	if err != nil {
		t.Fatalf("ToggleCheckin() failed: %v", err)
	}
	if !checked {
		t.Error("first toggle should check the day")
	}
	if _, err := store.GetCheckin(profile.UserID, habit.ID, day); err != nil {
		t.Errorf("GetCheckin() after toggle-on failed: %v", err)
	}

	checked, err = store.ToggleCheckin(profile.UserID, habit.ID, day)
	if err != nil {
		t.Fatalf("ToggleCheckin() second call failed: %v", err)
	}
	if checked {
		t.Error("second toggle should uncheck the day")
	}
	if _, err := store.GetCheckin(profile.UserID, habit.ID, day); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetCheckin() after toggle-off error = %v, want ErrNotFound", err)
	}

	// A third toggle re-checks, leaving exactly one row
	if _, err := store.ToggleCheckin(profile.UserID, habit.ID, day); err != nil {
		t.Fatalf("ToggleCheckin() third call failed: %v", err)
	}
	checkins, err := store.GetCheckinsForHabit(profile.UserID, habit.ID)
	if err != nil {
		t.Fatalf("GetCheckinsForHabit() failed: %v", err)
	}
	if len(checkins) != 1 {
		t.Errorf("found %d checkins after toggle on-off-on, want 1", len(checkins))
	}
}

func TestSkillsAndRatings(t *testing.T) {
	store := newTestStore(t)
	profile := newTestProfile(t, store)

	skill := models.Skill{
		ID:        uuid.New().String(),
		UserID:    profile.UserID,
		Name:      "Go",
		Category:  "engineering",
		CreatedAt: time.Now(),
	}
	if err := store.AddSkill(skill); err != nil {
		t.Fatalf("AddSkill() failed: %v", err)
	}

	days := []string{"2026-08-01", "2026-08-15", "2026-09-01"}
	values := []int{3, 5, 7}
	for i := range days {
		rating := models.SkillRating{
			ID:        uuid.New().String(),
			UserID:    profile.UserID,
			SkillID:   skill.ID,
			Rating:    values[i],
			RatedAt:   days[i],
			CreatedAt: time.Now(),
		}
		if err := store.AddRating(rating); err != nil {
			t.Fatalf("AddRating() failed: %v", err)
		}
	}

	ratings, err := store.GetRatingsForSkill(profile.UserID, skill.ID)
	if err != nil {
		t.Fatalf("GetRatingsForSkill() failed: %v", err)
	}
	if len(ratings) != 3 {
		t.Fatalf("GetRatingsForSkill() returned %d ratings, want 3", len(ratings))
	}
	// Oldest first so growth math reads first-to-latest
	if ratings[0].Rating != 3 || ratings[2].Rating != 7 {
		t.Errorf("ratings order = [%d %d %d], want [3 5 7]",
			ratings[0].Rating, ratings[1].Rating, ratings[2].Rating)
	}

	// Deleting the skill cascades to its ratings
	if err := store.DeleteSkill(profile.UserID, skill.ID); err != nil {
		t.Fatalf("DeleteSkill() failed: %v", err)
	}
	ratings, err = store.GetRatingsForSkill(profile.UserID, skill.ID)
	if err != nil {
		t.Fatalf("GetRatingsForSkill() after delete failed: %v", err)
	}
	if len(ratings) != 0 {
		t.Errorf("found %d orphaned ratings after skill delete", len(ratings))
	}
}

func TestWeeklyReviewConflict(t *testing.T) {
	store := newTestStore(t)
	profile := newTestProfile(t, store)

	review := models.WeeklyReview{
		ID:         uuid.New().String(),
		UserID:     profile.UserID,
		WeekStart:  "2026-08-31",
		WhatWorked: "morning focus blocks",
		Summary:    "good week",
		CreatedAt:  time.Now(),
	}
	if err := store.AddWeeklyReview(review); err != nil {
		t.Fatalf("AddWeeklyReview() failed: %v", err)
	}

	dup := review
	dup.ID = uuid.New().String()
	if err := store.AddWeeklyReview(dup); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("AddWeeklyReview(duplicate week) error = %v, want ErrConflict", err)
	}

	review.Summary = "revised"
	if err := store.UpdateWeeklyReview(review); err != nil {
		t.Fatalf("UpdateWeeklyReview() failed: %v", err)
	}
	got, err := store.GetWeeklyReview(profile.UserID, review.WeekStart)
	if err != nil {
		t.Fatalf("GetWeeklyReview() failed: %v", err)
	}
	if got.Summary != "revised" {
		t.Errorf("summary after update = %q", got.Summary)
	}

	if _, err := store.GetWeeklyReview(profile.UserID, "2026-09-07"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetWeeklyReview(missing week) error = %v, want ErrNotFound", err)
	}
}
