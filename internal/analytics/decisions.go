package analytics

import (
	"math"

	"github.com/lifeos-app/lifeos/internal/models"
)

// OutcomeCount is one bar of the outcome distribution.
type OutcomeCount struct {
	Outcome models.Outcome
	Count   int
}

// MoodCount is one bar of the emotional pattern histogram.
type MoodCount struct {
	Mood  models.EmotionalState
	Count int
}

// SuccessRate is the percentage of decided (non-pending) decisions that were
// successful. Zero decided decisions yields 0, never a division error.
func SuccessRate(decisions []models.Decision) int {
	decided := 0
	successful := 0
	for _, d := range decisions {
		if d.ActualOutcome == models.OutcomePending {
			continue
		}
		decided++
		if d.ActualOutcome == models.OutcomeSuccessful {
			successful++
		}
	}

	if decided == 0 {
		return 0
	}
	return int(math.Round(100 * float64(successful) / float64(decided)))
}

// OutcomeDistribution counts decided decisions per outcome in fixed order
// (successful, neutral, failed). Pending decisions and zero-count outcomes
// are omitted.
func OutcomeDistribution(decisions []models.Decision) []OutcomeCount {
	counts := make(map[models.Outcome]int)
	for _, d := range decisions {
		if d.ActualOutcome != models.OutcomePending {
			counts[d.ActualOutcome]++
		}
	}

	var dist []OutcomeCount
	for _, o := range []models.Outcome{models.OutcomeSuccessful, models.OutcomeNeutral, models.OutcomeFailed} {
		if counts[o] > 0 {
			dist = append(dist, OutcomeCount{Outcome: o, Count: counts[o]})
		}
	}
	return dist
}

// EmotionalPattern counts decisions per emotional state in declaration order,
// omitting states with no decisions.
func EmotionalPattern(decisions []models.Decision) []MoodCount {
	counts := make(map[models.EmotionalState]int)
	for _, d := range decisions {
		counts[d.EmotionalState]++
	}

	var pattern []MoodCount
	for _, m := range models.EmotionalStates {
		if counts[m] > 0 {
			pattern = append(pattern, MoodCount{Mood: m, Count: counts[m]})
		}
	}
	return pattern
}
