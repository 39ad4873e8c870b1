package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/models"
)

// AddWeeklyReview inserts a review. A second review for the same (user, week)
// trips the UNIQUE(user_id, week_start) index and comes back as ErrConflict.
func (s *Store) AddWeeklyReview(review models.WeeklyReview) error {
	_, err := s.db.Exec(`
		INSERT INTO weekly_reviews (id, user_id, week_start, what_worked, what_failed,
			main_distraction, improvement_plan, summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		review.ID, review.UserID, review.WeekStart, review.WhatWorked, review.WhatFailed,
		review.MainDistraction, review.ImprovementPlan, review.Summary,
		review.CreatedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		return fmt.Errorf("review for week of %s: %w", review.WeekStart, apperrors.ErrConflict)
	}
	return err
}

func (s *Store) GetWeeklyReview(userID, weekStart string) (models.WeeklyReview, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, week_start, what_worked, what_failed, main_distraction,
			improvement_plan, summary, created_at
		FROM weekly_reviews WHERE user_id = $1 AND week_start = $2`, userID, weekStart)

	r, err := scanReview(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WeeklyReview{}, fmt.Errorf("review for week of %s: %w", weekStart, apperrors.ErrNotFound)
		}
		return models.WeeklyReview{}, err
	}
	return r, nil
}

func (s *Store) GetAllWeeklyReviews(userID string) ([]models.WeeklyReview, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, week_start, what_worked, what_failed, main_distraction,
			improvement_plan, summary, created_at
		FROM weekly_reviews WHERE user_id = $1
		ORDER BY week_start DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.WeeklyReview
	for rows.Next() {
		r, err := scanReview(rows.Scan)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}

	return reviews, rows.Err()
}

func (s *Store) UpdateWeeklyReview(review models.WeeklyReview) error {
	result, err := s.db.Exec(`
		UPDATE weekly_reviews SET
			what_worked = $1, what_failed = $2, main_distraction = $3, improvement_plan = $4, summary = $5
		WHERE user_id = $6 AND id = $7`,
		review.WhatWorked, review.WhatFailed, review.MainDistraction,
		review.ImprovementPlan, review.Summary,
		review.UserID, review.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("review %s: %w", review.ID, apperrors.ErrNotFound)
	}

	return nil
}

func scanReview(scan func(...any) error) (models.WeeklyReview, error) {
	var r models.WeeklyReview
	var createdAt string

	err := scan(&r.ID, &r.UserID, &r.WeekStart, &r.WhatWorked, &r.WhatFailed,
		&r.MainDistraction, &r.ImprovementPlan, &r.Summary, &createdAt)
	if err != nil {
		return models.WeeklyReview{}, err
	}

	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.WeeklyReview{}, fmt.Errorf("failed to parse created_at for review %s: %w", r.ID, err)
	}

	return r, nil
}
