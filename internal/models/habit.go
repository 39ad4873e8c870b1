package models

import (
	"fmt"
	"strings"
	"time"
)

// Frequency is how often a habit is intended to be practiced
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Habit represents a recurring practice to track
type Habit struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Frequency   Frequency `json:"frequency"`
	Color       string    `json:"color,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// HabitCheckin represents a single day's completion record for a habit.
// CheckedAt is a calendar date (YYYY-MM-DD), not a timestamp; at most one
// checkin per (habit, day) is stored.
type HabitCheckin struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	HabitID   string    `json:"habit_id"`
	CheckedAt string    `json:"checked_at"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks required fields
func (h Habit) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if h.Frequency != FrequencyDaily && h.Frequency != FrequencyWeekly {
		return fmt.Errorf("invalid frequency: %s", h.Frequency)
	}
	return nil
}
