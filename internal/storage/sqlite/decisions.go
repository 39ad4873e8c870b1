package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/lifeos-app/lifeos/internal/errors"
	"github.com/lifeos-app/lifeos/internal/models"
)

func (s *Store) AddDecision(decision models.Decision) error {
	options, err := marshalOptions(decision.OptionsConsidered)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO decisions (id, user_id, title, description, options_considered,
			emotional_state, expected_outcome, actual_outcome, outcome_notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		decision.ID, decision.UserID, decision.Title, decision.Description, options,
		string(decision.EmotionalState), decision.ExpectedOutcome, string(decision.ActualOutcome),
		decision.OutcomeNotes,
		decision.CreatedAt.Format(time.RFC3339), decision.UpdatedAt.Format(time.RFC3339))

	return err
}

func (s *Store) GetDecision(userID, id string) (models.Decision, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, title, description, options_considered, emotional_state,
			expected_outcome, actual_outcome, outcome_notes, created_at, updated_at
		FROM decisions WHERE user_id = ? AND id = ?`, userID, id)

	d, err := scanDecision(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Decision{}, fmt.Errorf("decision %s: %w", id, apperrors.ErrNotFound)
		}
		return models.Decision{}, err
	}
	return d, nil
}

func (s *Store) GetAllDecisions(userID string) ([]models.Decision, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, title, description, options_considered, emotional_state,
			expected_outcome, actual_outcome, outcome_notes, created_at, updated_at
		FROM decisions WHERE user_id = ?
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decisions []models.Decision
	for rows.Next() {
		d, err := scanDecision(rows.Scan)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, d)
	}

	return decisions, rows.Err()
}

func (s *Store) UpdateDecision(decision models.Decision) error {
	options, err := marshalOptions(decision.OptionsConsidered)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(`
		UPDATE decisions SET
			title = ?, description = ?, options_considered = ?, emotional_state = ?,
			expected_outcome = ?, actual_outcome = ?, outcome_notes = ?, updated_at = ?
		WHERE user_id = ? AND id = ?`,
		decision.Title, decision.Description, options, string(decision.EmotionalState),
		decision.ExpectedOutcome, string(decision.ActualOutcome), decision.OutcomeNotes,
		decision.UpdatedAt.Format(time.RFC3339),
		decision.UserID, decision.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("decision %s: %w", decision.ID, apperrors.ErrNotFound)
	}

	return nil
}

func (s *Store) DeleteDecision(userID, id string) error {
	result, err := s.db.Exec(`DELETE FROM decisions WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("decision %s: %w", id, apperrors.ErrNotFound)
	}

	return nil
}

func scanDecision(scan func(...any) error) (models.Decision, error) {
	var d models.Decision
	var options, emotionalState, actualOutcome string
	var createdAt, updatedAt string

	err := scan(&d.ID, &d.UserID, &d.Title, &d.Description, &options, &emotionalState,
		&d.ExpectedOutcome, &actualOutcome, &d.OutcomeNotes, &createdAt, &updatedAt)
	if err != nil {
		return models.Decision{}, err
	}

	d.EmotionalState = models.EmotionalState(emotionalState)
	d.ActualOutcome = models.Outcome(actualOutcome)

	if options != "" {
		if err := json.Unmarshal([]byte(options), &d.OptionsConsidered); err != nil {
			return models.Decision{}, fmt.Errorf("failed to parse options for decision %s: %w", d.ID, err)
		}
	}

	d.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Decision{}, fmt.Errorf("failed to parse created_at for decision %s: %w", d.ID, err)
	}
	d.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.Decision{}, fmt.Errorf("failed to parse updated_at for decision %s: %w", d.ID, err)
	}

	return d, nil
}

// marshalOptions stores the ordered options list as a JSON array in a TEXT column
func marshalOptions(options []string) (string, error) {
	if options == nil {
		options = []string{}
	}
	data, err := json.Marshal(options)
	if err != nil {
		return "", fmt.Errorf("failed to encode options: %w", err)
	}
	return string(data), nil
}
