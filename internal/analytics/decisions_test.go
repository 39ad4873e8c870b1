package analytics

import (
	"testing"

	"github.com/lifeos-app/lifeos/internal/models"
)

func decisionsWithOutcomes(outcomes ...models.Outcome) []models.Decision {
	var ds []models.Decision
	for _, o := range outcomes {
		ds = append(ds, models.Decision{
			Title:          "d",
			EmotionalState: models.MoodCalm,
			ActualOutcome:  o,
		})
	}
	return ds
}

func TestSuccessRate(t *testing.T) {
	tests := []struct {
		name      string
		decisions []models.Decision
		want      int
	}{
		{
			name:      "no decisions",
			decisions: nil,
			want:      0,
		},
		{
			name:      "all pending",
			decisions: decisionsWithOutcomes(models.OutcomePending, models.OutcomePending),
			want:      0,
		},
		{
			name: "6 successful of 8 decided",
			decisions: decisionsWithOutcomes(
				models.OutcomeSuccessful, models.OutcomeSuccessful, models.OutcomeSuccessful,
				models.OutcomeSuccessful, models.OutcomeSuccessful, models.OutcomeSuccessful,
				models.OutcomeNeutral, models.OutcomeNeutral,
				models.OutcomePending, models.OutcomePending,
			),
			want: 75,
		},
		{
			name:      "1 of 3 rounds to 33",
			decisions: decisionsWithOutcomes(models.OutcomeSuccessful, models.OutcomeFailed, models.OutcomeFailed),
			want:      33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuccessRate(tt.decisions); got != tt.want {
				t.Errorf("SuccessRate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOutcomeDistribution(t *testing.T) {
	decisions := decisionsWithOutcomes(
		models.OutcomeFailed, models.OutcomeSuccessful, models.OutcomeSuccessful,
		models.OutcomePending,
	)

	dist := OutcomeDistribution(decisions)
	want := []OutcomeCount{
		{Outcome: models.OutcomeSuccessful, Count: 2},
		{Outcome: models.OutcomeFailed, Count: 1},
	}

	if len(dist) != len(want) {
		t.Fatalf("OutcomeDistribution() returned %d entries, want %d", len(dist), len(want))
	}
	for i := range want {
		if dist[i] != want[i] {
			t.Errorf("OutcomeDistribution()[%d] = %+v, want %+v", i, dist[i], want[i])
		}
	}
}

func TestEmotionalPattern(t *testing.T) {
	decisions := []models.Decision{
		{EmotionalState: models.MoodAnxious},
		{EmotionalState: models.MoodCalm},
		{EmotionalState: models.MoodAnxious},
	}

	pattern := EmotionalPattern(decisions)
	want := []MoodCount{
		{Mood: models.MoodCalm, Count: 1},
		{Mood: models.MoodAnxious, Count: 2},
	}

	if len(pattern) != len(want) {
		t.Fatalf("EmotionalPattern() returned %d entries, want %d", len(pattern), len(want))
	}
	for i := range want {
		if pattern[i] != want[i] {
			t.Errorf("EmotionalPattern()[%d] = %+v, want %+v", i, pattern[i], want[i])
		}
	}
}
