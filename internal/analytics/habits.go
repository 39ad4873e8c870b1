// Package analytics derives progress metrics from already-fetched entity
// collections. Everything here is a pure function; all date handling is
// calendar-day string comparison, never timestamp math.
package analytics

import (
	"math"
	"time"

	"github.com/lifeos-app/lifeos/internal/constants"
	"github.com/lifeos-app/lifeos/internal/models"
)

// Streak counts consecutive checked days for a habit scanning backward from
// today. Today's absence is forgiven once: the user may not have acted yet,
// and zeroing the streak before end of day would be wrong. Any later gap
// terminates the scan.
func Streak(checkins []models.HabitCheckin, habitID, today string) int {
	days := checkinDays(checkins, habitID)
	if len(days) == 0 {
		return 0
	}

	t, err := time.Parse(constants.DateFormat, today)
	if err != nil {
		return 0
	}

	streak := 0
	for i := 0; i < constants.StreakLookbackDays; i++ {
		day := t.AddDate(0, 0, -i).Format(constants.DateFormat)
		if days[day] {
			streak++
		} else if i > 0 {
			break
		}
	}

	return streak
}

// Consistency is the percentage of the trailing 30 calendar days (today
// inclusive) on which the habit was checked in, rounded to the nearest whole
// percent.
func Consistency(checkins []models.HabitCheckin, habitID, today string) int {
	days := checkinDays(checkins, habitID)

	t, err := time.Parse(constants.DateFormat, today)
	if err != nil {
		return 0
	}

	completed := 0
	for i := 0; i < constants.ConsistencyWindowDays; i++ {
		day := t.AddDate(0, 0, -i).Format(constants.DateFormat)
		if days[day] {
			completed++
		}
	}

	return int(math.Round(100 * float64(completed) / float64(constants.ConsistencyWindowDays)))
}

// AverageConsistency is the rounded mean consistency across habits, 0 when
// there are none.
func AverageConsistency(habits []models.Habit, checkins []models.HabitCheckin, today string) int {
	if len(habits) == 0 {
		return 0
	}

	total := 0
	for _, h := range habits {
		total += Consistency(checkins, h.ID, today)
	}

	return int(math.Round(float64(total) / float64(len(habits))))
}

// BestStreak is the longest current streak across habits, 0 when there are none.
func BestStreak(habits []models.Habit, checkins []models.HabitCheckin, today string) int {
	best := 0
	for _, h := range habits {
		if s := Streak(checkins, h.ID, today); s > best {
			best = s
		}
	}
	return best
}

// CheckedOn reports whether the habit has a checkin on the given day.
func CheckedOn(checkins []models.HabitCheckin, habitID, day string) bool {
	for _, c := range checkins {
		if c.HabitID == habitID && c.CheckedAt == day {
			return true
		}
	}
	return false
}

// checkinDays collects the distinct checked days for one habit. A day counts
// when at least one checkin matches it.
func checkinDays(checkins []models.HabitCheckin, habitID string) map[string]bool {
	days := make(map[string]bool)
	for _, c := range checkins {
		if c.HabitID == habitID {
			days[c.CheckedAt] = true
		}
	}
	return days
}
