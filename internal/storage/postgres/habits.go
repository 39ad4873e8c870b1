package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/models"
)

func (s *Store) AddHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (id, user_id, name, description, frequency, color, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		habit.ID, habit.UserID, habit.Name, habit.Description, string(habit.Frequency),
		habit.Color, habit.IsActive, habit.CreatedAt.Format(time.RFC3339))

	return err
}

func (s *Store) GetHabit(userID, id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, name, description, frequency, color, is_active, created_at
		FROM habits WHERE user_id = $1 AND id = $2`, userID, id)

	h, err := scanHabit(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, fmt.Errorf("habit %s: %w", id, apperrors.ErrNotFound)
		}
		return models.Habit{}, err
	}
	return h, nil
}

func (s *Store) GetHabitByName(userID, name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, name, description, frequency, color, is_active, created_at
		FROM habits WHERE user_id = $1 AND name = $2`, userID, name)

	h, err := scanHabit(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, fmt.Errorf("habit %q: %w", name, apperrors.ErrNotFound)
		}
		return models.Habit{}, err
	}
	return h, nil
}

func (s *Store) GetAllHabits(userID string, includeInactive bool) ([]models.Habit, error) {
	query := `
		SELECT id, user_id, name, description, frequency, color, is_active, created_at
		FROM habits WHERE user_id = $1`
	if !includeInactive {
		query += " AND is_active = TRUE"
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows.Scan)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	result, err := s.db.Exec(`
		UPDATE habits SET name = $1, description = $2, frequency = $3, color = $4, is_active = $5
		WHERE user_id = $6 AND id = $7`,
		habit.Name, habit.Description, string(habit.Frequency), habit.Color, habit.IsActive,
		habit.UserID, habit.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit %s: %w", habit.ID, apperrors.ErrNotFound)
	}

	return nil
}

func (s *Store) ArchiveHabit(userID, id string) error {
	return s.setHabitActive(userID, id, false)
}

func (s *Store) RestoreHabit(userID, id string) error {
	return s.setHabitActive(userID, id, true)
}

func (s *Store) setHabitActive(userID, id string, active bool) error {
	result, err := s.db.Exec(`
		UPDATE habits SET is_active = $1 WHERE user_id = $2 AND id = $3 AND is_active = $4`,
		active, userID, id, !active)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit %s: %w", id, apperrors.ErrNotFound)
	}

	return nil
}

// Checkins

// ToggleCheckin flips the checkin state for (habitID, day) in a single
// transaction. Racing toggles that both reach the insert are caught by the
// UNIQUE(habit_id, checked_at) index and surface as a conflict.
func (s *Store) ToggleCheckin(userID, habitID, day string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, err
	}

	result, err := tx.Exec(`
		DELETE FROM habit_checkins WHERE user_id = $1 AND habit_id = $2 AND checked_at = $3`,
		userID, habitID, day)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}

	if deleted > 0 {
		return false, tx.Commit()
	}

	_, err = tx.Exec(`
		INSERT INTO habit_checkins (id, user_id, habit_id, checked_at, completed, created_at)
		VALUES ($1, $2, $3, $4, TRUE, $5)`,
		uuid.NewString(), userID, habitID, day, time.Now().Format(time.RFC3339))
	if err != nil {
		_ = tx.Rollback()
		if isUniqueViolation(err) {
			return false, fmt.Errorf("checkin for %s on %s: %w", habitID, day, apperrors.ErrConflict)
		}
		return false, err
	}

	return true, tx.Commit()
}

func (s *Store) GetCheckins(userID string) ([]models.HabitCheckin, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, habit_id, checked_at, completed, created_at
		FROM habit_checkins WHERE user_id = $1
		ORDER BY checked_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCheckins(rows)
}

func (s *Store) GetCheckinsForHabit(userID, habitID string) ([]models.HabitCheckin, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, habit_id, checked_at, completed, created_at
		FROM habit_checkins WHERE user_id = $1 AND habit_id = $2
		ORDER BY checked_at DESC`, userID, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCheckins(rows)
}

func (s *Store) GetCheckin(userID, habitID, day string) (models.HabitCheckin, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, habit_id, checked_at, completed, created_at
		FROM habit_checkins WHERE user_id = $1 AND habit_id = $2 AND checked_at = $3`,
		userID, habitID, day)

	c, err := scanCheckin(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HabitCheckin{}, fmt.Errorf("checkin for %s on %s: %w", habitID, day, apperrors.ErrNotFound)
		}
		return models.HabitCheckin{}, err
	}
	return c, nil
}

func scanHabit(scan func(...any) error) (models.Habit, error) {
	var h models.Habit
	var frequency, createdAt string

	err := scan(&h.ID, &h.UserID, &h.Name, &h.Description, &frequency, &h.Color, &h.IsActive, &createdAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Frequency = models.Frequency(frequency)
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}

	return h, nil
}

func scanCheckin(scan func(...any) error) (models.HabitCheckin, error) {
	var c models.HabitCheckin
	var createdAt string

	err := scan(&c.ID, &c.UserID, &c.HabitID, &c.CheckedAt, &c.Completed, &createdAt)
	if err != nil {
		return models.HabitCheckin{}, err
	}

	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.HabitCheckin{}, fmt.Errorf("failed to parse created_at for checkin %s: %w", c.ID, err)
	}

	return c, nil
}

func collectCheckins(rows *sql.Rows) ([]models.HabitCheckin, error) {
	var checkins []models.HabitCheckin
	for rows.Next() {
		c, err := scanCheckin(rows.Scan)
		if err != nil {
			return nil, err
		}
		checkins = append(checkins, c)
	}
	return checkins, rows.Err()
}
