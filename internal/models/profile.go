package models

import (
	"fmt"
	"strings"
	"time"
)

// Profile holds a user's identity and self-assessment. One profile per user.
type Profile struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name,omitempty"`
	Goals      string    `json:"goals,omitempty"`
	Strengths  string    `json:"strengths,omitempty"`
	Weaknesses string    `json:"weaknesses,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Validate checks required fields
func (p Profile) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("profile must have a user id")
	}
	email := strings.TrimSpace(p.Email)
	if email == "" {
		return fmt.Errorf("profile email cannot be empty")
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}
