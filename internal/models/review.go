package models

import (
	"fmt"
	"time"

	"github.com/lifeos-app/lifeos/internal/constants"
)

// WeeklyReview is a structured reflection on one calendar week.
// WeekStart must be a Monday-aligned calendar date; one review per week.
type WeeklyReview struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	WeekStart       string    `json:"week_start"`
	WhatWorked      string    `json:"what_worked,omitempty"`
	WhatFailed      string    `json:"what_failed,omitempty"`
	MainDistraction string    `json:"main_distraction,omitempty"`
	ImprovementPlan string    `json:"improvement_plan,omitempty"`
	Summary         string    `json:"summary,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Validate checks that WeekStart is a Monday-aligned calendar date
func (r WeeklyReview) Validate() error {
	t, err := time.Parse(constants.DateFormat, r.WeekStart)
	if err != nil {
		return fmt.Errorf("invalid week start date: %s", r.WeekStart)
	}
	if t.Weekday() != time.Monday {
		return fmt.Errorf("week start must be a Monday, got %s", t.Weekday())
	}
	return nil
}

// GenerateSummary builds the default one-line summary from the review's
// what-worked and improvement-plan fields
func (r WeeklyReview) GenerateSummary() string {
	summary := "Week Summary: "
	if r.WhatWorked != "" {
		summary += "Achieved: " + truncate(r.WhatWorked, 50) + "... "
	}
	if r.ImprovementPlan != "" {
		summary += "Focus: " + truncate(r.ImprovementPlan, 50)
	}
	return summary
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
