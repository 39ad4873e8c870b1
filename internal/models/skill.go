package models

import (
	"fmt"
	"strings"
	"time"
)

// Skill represents a skill whose growth is tracked via self-ratings
type Skill struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SkillRating is a self-assessment of a skill on a given calendar date.
// Multiple ratings per day are allowed and all retained.
type SkillRating struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SkillID   string    `json:"skill_id"`
	Rating    int       `json:"rating"`
	Notes     string    `json:"notes,omitempty"`
	ProofLink string    `json:"proof_link,omitempty"`
	RatedAt   string    `json:"rated_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks required fields
func (s Skill) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("skill name cannot be empty")
	}
	return nil
}

// Validate checks the rating range
func (r SkillRating) Validate() error {
	if r.SkillID == "" {
		return fmt.Errorf("rating must reference a skill")
	}
	if r.Rating < 1 || r.Rating > 10 {
		return fmt.Errorf("rating must be between 1 and 10, got %d", r.Rating)
	}
	return nil
}
