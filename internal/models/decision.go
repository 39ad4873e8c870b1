package models

import (
	"fmt"
	"strings"
	"time"
)

// EmotionalState captures the mood a decision was made in
type EmotionalState string

const (
	MoodCalm       EmotionalState = "calm"
	MoodStressed   EmotionalState = "stressed"
	MoodExcited    EmotionalState = "excited"
	MoodAnxious    EmotionalState = "anxious"
	MoodConfident  EmotionalState = "confident"
	MoodUncertain  EmotionalState = "uncertain"
	MoodFrustrated EmotionalState = "frustrated"
	MoodMotivated  EmotionalState = "motivated"
)

// EmotionalStates lists all moods in declaration order. The order is load-bearing
// for the emotional pattern histogram.
var EmotionalStates = []EmotionalState{
	MoodCalm, MoodStressed, MoodExcited, MoodAnxious,
	MoodConfident, MoodUncertain, MoodFrustrated, MoodMotivated,
}

// Outcome is the realized result of a decision, distinct from its expected result
type Outcome string

const (
	OutcomePending    Outcome = "pending"
	OutcomeSuccessful Outcome = "successful"
	OutcomeNeutral    Outcome = "neutral"
	OutcomeFailed     Outcome = "failed"
)

// Outcomes lists all outcomes in declaration order
var Outcomes = []Outcome{OutcomePending, OutcomeSuccessful, OutcomeNeutral, OutcomeFailed}

// Decision represents a logged decision and its eventual outcome
type Decision struct {
	ID                string         `json:"id"`
	UserID            string         `json:"user_id"`
	Title             string         `json:"title"`
	Description       string         `json:"description,omitempty"`
	OptionsConsidered []string       `json:"options_considered,omitempty"`
	EmotionalState    EmotionalState `json:"emotional_state"`
	ExpectedOutcome   string         `json:"expected_outcome,omitempty"`
	ActualOutcome     Outcome        `json:"actual_outcome"`
	OutcomeNotes      string         `json:"outcome_notes,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// ValidEmotionalState reports whether s is one of the known moods
func ValidEmotionalState(s EmotionalState) bool {
	for _, m := range EmotionalStates {
		if m == s {
			return true
		}
	}
	return false
}

// ValidOutcome reports whether o is one of the known outcomes
func ValidOutcome(o Outcome) bool {
	for _, known := range Outcomes {
		if known == o {
			return true
		}
	}
	return false
}

// Validate checks required fields and enum membership
func (d Decision) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("decision title cannot be empty")
	}
	if !ValidEmotionalState(d.EmotionalState) {
		return fmt.Errorf("invalid emotional state: %s", d.EmotionalState)
	}
	if !ValidOutcome(d.ActualOutcome) {
		return fmt.Errorf("invalid outcome: %s", d.ActualOutcome)
	}
	return nil
}

// ParseOptions splits a comma-separated options string into an ordered list,
// dropping empty entries
func ParseOptions(s string) []string {
	var options []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			options = append(options, part)
		}
	}
	return options
}
