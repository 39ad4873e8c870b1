package analytics

import (
	"testing"
	"time"

	"github.com/lifeos-app/lifeos/internal/constants"
	"github.com/lifeos-app/lifeos/internal/models"
)

const testToday = "2026-09-01"

// checkinOn builds a checkin n days before testToday
func checkinOn(habitID string, daysAgo int) models.HabitCheckin {
	t, _ := time.Parse(constants.DateFormat, testToday)
	return models.HabitCheckin{
		ID:        "c",
		HabitID:   habitID,
		CheckedAt: t.AddDate(0, 0, -daysAgo).Format(constants.DateFormat),
		Completed: true,
	}
}

func checkinsOn(habitID string, daysAgo ...int) []models.HabitCheckin {
	var cs []models.HabitCheckin
	for _, d := range daysAgo {
		cs = append(cs, checkinOn(habitID, d))
	}
	return cs
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name     string
		checkins []models.HabitCheckin
		want     int
	}{
		{
			name:     "empty checkin set",
			checkins: nil,
			want:     0,
		},
		{
			name:     "gap at day 3 breaks the streak",
			checkins: checkinsOn("h1", 0, 1, 2, 4),
			want:     3,
		},
		{
			name:     "today absent is forgiven once",
			checkins: checkinsOn("h1", 1, 2),
			want:     2,
		},
		{
			name:     "today only",
			checkins: checkinsOn("h1", 0),
			want:     1,
		},
		{
			name:     "yesterday absent ends streak at today",
			checkins: checkinsOn("h1", 0, 2, 3),
			want:     1,
		},
		{
			name:     "other habit's checkins do not count",
			checkins: checkinsOn("h2", 0, 1, 2),
			want:     0,
		},
		{
			name: "duplicate days count once",
			checkins: append(checkinsOn("h1", 0, 1), checkinOn("h1", 1)),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.checkins, "h1", testToday); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConsistency(t *testing.T) {
	tests := []struct {
		name     string
		checkins []models.HabitCheckin
		want     int
	}{
		{
			name:     "no checkins",
			checkins: nil,
			want:     0,
		},
		{
			name:     "15 of 30 days",
			checkins: checkinsOn("h1", 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14),
			want:     50,
		},
		{
			name:     "every day",
			checkins: checkinsOn("h1", 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29),
			want:     100,
		},
		{
			name:     "checkins outside the window ignored",
			checkins: checkinsOn("h1", 31, 40, 45),
			want:     0,
		},
		{
			name:     "single day rounds to 3",
			checkins: checkinsOn("h1", 0),
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Consistency(tt.checkins, "h1", testToday); got != tt.want {
				t.Errorf("Consistency() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAverageConsistency(t *testing.T) {
	habits := []models.Habit{{ID: "h1"}, {ID: "h2"}}
	checkins := append(
		checkinsOn("h1", 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14),
		checkinsOn("h2")...)

	// h1 at 50, h2 at 0 -> mean 25
	if got := AverageConsistency(habits, checkins, testToday); got != 25 {
		t.Errorf("AverageConsistency() = %d, want 25", got)
	}

	if got := AverageConsistency(nil, checkins, testToday); got != 0 {
		t.Errorf("AverageConsistency() with no habits = %d, want 0", got)
	}
}

func TestBestStreak(t *testing.T) {
	habits := []models.Habit{{ID: "h1"}, {ID: "h2"}}
	checkins := append(checkinsOn("h1", 0, 1), checkinsOn("h2", 0, 1, 2, 3)...)

	if got := BestStreak(habits, checkins, testToday); got != 4 {
		t.Errorf("BestStreak() = %d, want 4", got)
	}

	if got := BestStreak(nil, checkins, testToday); got != 0 {
		t.Errorf("BestStreak() with no habits = %d, want 0", got)
	}
}

func TestCheckedOn(t *testing.T) {
	checkins := checkinsOn("h1", 0, 2)

	if !CheckedOn(checkins, "h1", testToday) {
		t.Error("expected h1 checked today")
	}
	if CheckedOn(checkins, "h2", testToday) {
		t.Error("expected h2 unchecked today")
	}
}
