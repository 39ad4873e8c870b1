package analytics

import (
	"strings"
	"testing"

	"github.com/lifeos-app/lifeos/internal/models"
)

func TestInsights(t *testing.T) {
	profileWithGoals := models.Profile{UserID: "u1", Email: "u@example.com", Goals: "ship more"}
	emptyProfile := models.Profile{UserID: "u1", Email: "u@example.com"}
	oneHabit := []models.Habit{{ID: "h1", Name: "run"}}
	oneReview := []models.WeeklyReview{{ID: "r1", WeekStart: "2026-08-24"}}

	t.Run("goals without habits and no reviews fire rules 1 and 4 in order", func(t *testing.T) {
		got := Insights(profileWithGoals, nil, nil, nil, 0)
		if len(got) != 2 {
			t.Fatalf("Insights() returned %d messages, want 2: %v", len(got), got)
		}
		if !strings.Contains(got[0], "goals") {
			t.Errorf("first insight should mention goals, got %q", got[0])
		}
		if !strings.Contains(got[1], "weekly review") {
			t.Errorf("second insight should mention weekly reviews, got %q", got[1])
		}
	})

	t.Run("more than 3 failed decisions", func(t *testing.T) {
		failed := decisionsWithOutcomes(
			models.OutcomeFailed, models.OutcomeFailed,
			models.OutcomeFailed, models.OutcomeFailed,
		)
		got := Insights(emptyProfile, oneHabit, failed, oneReview, 80)
		if len(got) != 1 || !strings.Contains(got[0], "decision") {
			t.Errorf("expected the failed-decisions insight, got %v", got)
		}
	})

	t.Run("exactly 3 failed decisions does not fire", func(t *testing.T) {
		failed := decisionsWithOutcomes(models.OutcomeFailed, models.OutcomeFailed, models.OutcomeFailed)
		got := Insights(emptyProfile, oneHabit, failed, oneReview, 80)
		if len(got) != 1 || !strings.Contains(got[0], "Keep logging") {
			t.Errorf("expected only the generic message, got %v", got)
		}
	})

	t.Run("low consistency requires at least one habit", func(t *testing.T) {
		got := Insights(emptyProfile, oneHabit, nil, oneReview, 30)
		if len(got) != 1 || !strings.Contains(got[0], "consistency") {
			t.Errorf("expected the consistency insight, got %v", got)
		}

		got = Insights(emptyProfile, nil, nil, oneReview, 30)
		for _, msg := range got {
			if strings.Contains(msg, "consistency") {
				t.Errorf("consistency insight should not fire with zero habits: %v", got)
			}
		}
	})

	t.Run("nothing firing yields one generic message", func(t *testing.T) {
		got := Insights(emptyProfile, oneHabit, nil, oneReview, 80)
		if len(got) != 1 {
			t.Fatalf("Insights() returned %d messages, want 1: %v", len(got), got)
		}
	})
}
