package models

import (
	"strings"
	"testing"
)

func TestWeeklyReviewValidate(t *testing.T) {
	tests := []struct {
		name      string
		weekStart string
		wantErr   bool
	}{
		{
			name:      "monday is valid",
			weekStart: "2026-08-31",
			wantErr:   false,
		},
		{
			name:      "tuesday is rejected",
			weekStart: "2026-09-01",
			wantErr:   true,
		},
		{
			name:      "malformed date",
			weekStart: "last week",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := WeeklyReview{WeekStart: tt.weekStart}
			err := r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateSummary(t *testing.T) {
	r := WeeklyReview{
		WhatWorked:      "Morning workouts",
		ImprovementPlan: "Less social media",
	}
	got := r.GenerateSummary()
	if !strings.Contains(got, "Achieved: Morning workouts") {
		t.Errorf("GenerateSummary() = %q, missing achieved section", got)
	}
	if !strings.Contains(got, "Focus: Less social media") {
		t.Errorf("GenerateSummary() = %q, missing focus section", got)
	}

	empty := WeeklyReview{}
	if got := empty.GenerateSummary(); got != "Week Summary: " {
		t.Errorf("GenerateSummary() on empty review = %q", got)
	}
}
