package analytics

import "github.com/lifeos-app/lifeos/internal/models"

// Insights evaluates a fixed, ordered set of advisory rules. Rules are
// independent: several may fire together, and the order of the returned
// messages follows declaration order. When nothing fires a single generic
// encouragement is returned instead.
func Insights(profile models.Profile, habits []models.Habit, decisions []models.Decision, reviews []models.WeeklyReview, avgConsistency int) []string {
	var insights []string

	if profile.Goals != "" && len(habits) == 0 {
		insights = append(insights, "You have goals set but no habits to support them. Create habits that move you toward your goals.")
	}

	failed := 0
	for _, d := range decisions {
		if d.ActualOutcome == models.OutcomeFailed {
			failed++
		}
	}
	if failed > 3 {
		insights = append(insights, "More than 3 of your decisions ended in failure. Review your decision patterns for common causes.")
	}

	if len(habits) > 0 && avgConsistency < 50 {
		insights = append(insights, "Your average habit consistency is below 50%. Prioritize daily follow-through over adding new habits.")
	}

	if len(reviews) == 0 {
		insights = append(insights, "You haven't written a weekly review yet. Start reflecting weekly to spot patterns early.")
	}

	if len(insights) == 0 {
		insights = append(insights, "Keep logging decisions, habits, and skills to receive personalized insights about your growth patterns.")
	}

	return insights
}
