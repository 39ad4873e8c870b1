package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/models"
)

func (s *Store) SaveProfile(profile models.Profile) error {
	_, err := s.db.Exec(`
		INSERT INTO profiles (user_id, email, full_name, goals, strengths, weaknesses, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT(user_id) DO UPDATE SET
			email = excluded.email,
			full_name = excluded.full_name,
			goals = excluded.goals,
			strengths = excluded.strengths,
			weaknesses = excluded.weaknesses,
			updated_at = excluded.updated_at`,
		profile.UserID, profile.Email, profile.FullName, profile.Goals,
		profile.Strengths, profile.Weaknesses,
		profile.CreatedAt.Format(time.RFC3339), profile.UpdatedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		// A different user already owns this email
		return fmt.Errorf("profile with email %s: %w", profile.Email, apperrors.ErrConflict)
	}
	return err
}

func (s *Store) GetProfile(userID string) (models.Profile, error) {
	row := s.db.QueryRow(`
		SELECT user_id, email, full_name, goals, strengths, weaknesses, created_at, updated_at
		FROM profiles WHERE user_id = $1`, userID)
	return scanProfile(row)
}

func (s *Store) GetProfileByEmail(email string) (models.Profile, error) {
	row := s.db.QueryRow(`
		SELECT user_id, email, full_name, goals, strengths, weaknesses, created_at, updated_at
		FROM profiles WHERE email = $1`, email)
	return scanProfile(row)
}

func scanProfile(row *sql.Row) (models.Profile, error) {
	var p models.Profile
	var createdAt, updatedAt string

	err := row.Scan(&p.UserID, &p.Email, &p.FullName, &p.Goals, &p.Strengths, &p.Weaknesses, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, fmt.Errorf("profile: %w", apperrors.ErrNotFound)
		}
		return models.Profile{}, err
	}

	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return p, nil
}
