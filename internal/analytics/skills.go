package analytics

import (
	"math"

	"github.com/lifeos-app/lifeos/internal/models"
)

// LatestRating returns the most recent rating for a skill, 0 if it has none.
// Ratings must be sorted ascending by rated_at, as the store returns them.
func LatestRating(ratings []models.SkillRating) int {
	if len(ratings) == 0 {
		return 0
	}
	return ratings[len(ratings)-1].Rating
}

// Growth is the delta between a skill's most recent and earliest rating.
// Fewer than two ratings means no measurable growth.
func Growth(ratings []models.SkillRating) int {
	if len(ratings) < 2 {
		return 0
	}
	return ratings[len(ratings)-1].Rating - ratings[0].Rating
}

// TotalGrowthPoints sums per-skill growth across skills, clamping negative
// growth to zero so regression on one skill does not offset progress on
// another. This is a progress metric, not a net-change metric.
func TotalGrowthPoints(skills []models.Skill, ratings []models.SkillRating) int {
	total := 0
	for _, sk := range skills {
		if g := Growth(ratingsFor(ratings, sk.ID)); g > 0 {
			total += g
		}
	}
	return total
}

// AverageSkillLevel is the mean of latest ratings across skills, rounded to
// one decimal place. 0 when there are no skills.
func AverageSkillLevel(skills []models.Skill, ratings []models.SkillRating) float64 {
	if len(skills) == 0 {
		return 0
	}

	total := 0
	for _, sk := range skills {
		total += LatestRating(ratingsFor(ratings, sk.ID))
	}

	mean := float64(total) / float64(len(skills))
	return math.Round(mean*10) / 10
}

// ratingsFor filters ratings down to one skill, preserving order.
func ratingsFor(ratings []models.SkillRating, skillID string) []models.SkillRating {
	var out []models.SkillRating
	for _, r := range ratings {
		if r.SkillID == skillID {
			out = append(out, r)
		}
	}
	return out
}
